package models

import (
	"encoding/json"
	"math"
	"strconv"
)

// FieldID is the reserved identity key of a contact payload.
const FieldID = "id"

// Contact is the address-book entity. ID is nil until the contact has been
// created upstream; Fields holds every other attribute, with the address
// nested under "address".
type Contact struct {
	ID     *int64
	Fields Record
}

// NewContact wraps a raw payload, lifting its "id" out of the fields.
// Non-integral ids are dropped.
func NewContact(raw Record) Contact {
	fields := raw.Clone()
	if fields == nil {
		fields = Record{}
	}
	var id *int64
	if v, ok := fields[FieldID]; ok {
		id = parseID(v)
		delete(fields, FieldID)
	}
	return Contact{ID: id, Fields: fields}
}

func parseID(v any) *int64 {
	var n int64
	switch typed := v.(type) {
	case int64:
		n = typed
	case int:
		n = int64(typed)
	case float64:
		if typed != math.Trunc(typed) {
			return nil
		}
		n = int64(typed)
	case json.Number:
		parsed, err := typed.Int64()
		if err != nil {
			return nil
		}
		n = parsed
	case string:
		parsed, err := strconv.ParseInt(typed, 10, 64)
		if err != nil {
			return nil
		}
		n = parsed
	default:
		return nil
	}
	return &n
}

// WithID returns a copy of the contact stamped with id.
func (c Contact) WithID(id int64) Contact {
	c.ID = &id
	return c
}

// Get resolves a dotted field path.
func (c Contact) Get(path string) (any, bool) {
	return c.Fields.Get(path)
}

// Address returns the nested address object when present.
func (c Contact) Address() (Record, bool) {
	v, ok := c.Fields["address"]
	if !ok {
		return nil, false
	}
	return Object(v)
}

// Record flattens the contact back into a payload; "id" is always present.
func (c Contact) Record() Record {
	out := c.Fields.Clone()
	if out == nil {
		out = Record{}
	}
	if c.ID != nil {
		out[FieldID] = *c.ID
	} else {
		out[FieldID] = nil
	}
	return out
}

// SameFields reports whether both contacts carry structurally equal fields.
// Identity is not compared.
func (c Contact) SameFields(other Contact) bool {
	a, b := c.Fields, other.Fields
	if a == nil {
		a = Record{}
	}
	if b == nil {
		b = Record{}
	}
	return Equal(a, b)
}

func (c Contact) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Record())
}

func (c *Contact) UnmarshalJSON(data []byte) error {
	var raw Record
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*c = NewContact(raw)
	return nil
}
