package utils

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields under their JSON names, the names the web
// client sends.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

// ValidateStruct returns field name → message for every failed rule, nil
// when data is valid.
func ValidateStruct(data any) map[string]string {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return map[string]string{"body": err.Error()}
	}

	out := make(map[string]string, len(fieldErrors))
	for _, fe := range fieldErrors {
		out[fe.Field()] = describeRule(fe)
	}
	return out
}

func describeRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "gt":
		return fmt.Sprintf("Must be greater than %s", fe.Param())
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("Must contain at least %s item(s)", fe.Param())
		}
		return fmt.Sprintf("Minimum is %s", fe.Param())
	case "max":
		return fmt.Sprintf("Maximum is %s", fe.Param())
	case "uuid":
		return "Must be a valid id"
	default:
		return fmt.Sprintf("Failed %s rule", fe.Tag())
	}
}

// FormatValidationErrors flattens field errors into one log-friendly line.
func FormatValidationErrors(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for field := range fields {
		keys = append(keys, field)
	}
	sort.Strings(keys)

	msgs := make([]string, len(keys))
	for i, field := range keys {
		msgs[i] = field + ": " + fields[field]
	}
	return strings.Join(msgs, "; ")
}
