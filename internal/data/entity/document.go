package entity

import (
	"encoding/json"
	"strconv"
)

// Document is a schemaless body as submitted by a client.
type Document map[string]any

func (d Document) String(key string) string {
	if v, ok := d[key].(string); ok {
		return v
	}
	return ""
}

// Float reads a numeric field, accepting JSON numbers and numeric strings.
func (d Document) Float(key string) (float64, bool) {
	switch v := d[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	}
	return 0, false
}

func (d Document) Strings(key string) []string {
	switch v := d[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// Without returns a copy of d minus the given keys.
func (d Document) Without(keys ...string) Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}
