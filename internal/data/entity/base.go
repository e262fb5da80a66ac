package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// IDField is the key under which a record's identifier is rendered.
const IDField = "_id"

type Base struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Record is one stored document with its store-assigned metadata.
type Record struct {
	Base
	Doc Document `db:"doc"`
}

// MarshalJSON renders the document body with its id under "_id".
func (r Record) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Doc)+1)
	for k, v := range r.Doc {
		out[k] = v
	}
	out[IDField] = r.ID.String()
	return json.Marshal(out)
}
