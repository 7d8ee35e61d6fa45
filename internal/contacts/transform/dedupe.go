package transform

import (
	"encoding/json"
	"fmt"

	"regcontacts/internal/contacts/models"
)

var (
	fingerprintFields        = []string{"lastName", "firstName", "email"}
	fingerprintAddressFields = []string{"country", "line1", "zip", "city"}
)

// Dedupe drops contacts whose fingerprint was already seen. The first
// occurrence of each fingerprint survives and input order is preserved, so
// the caller's ordering decides which duplicate is kept.
func Dedupe(contacts []models.Contact) []models.Contact {
	if contacts == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(contacts))
	out := make([]models.Contact, 0, len(contacts))
	for _, c := range contacts {
		key := Fingerprint(c)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}
	return out
}

// Fingerprint derives the near-duplicate key of a contact from its names,
// email and, when it has one, the country/line1/zip/city of its address.
// Absent fields and explicit nulls produce different keys.
func Fingerprint(c models.Contact) string {
	fp := pick(c.Fields, fingerprintFields)
	if addr, ok := c.Address(); ok {
		fp["address"] = pick(addr, fingerprintAddressFields)
	}
	// encoding/json sorts map keys, which makes the key order-independent.
	b, err := json.Marshal(fp)
	if err != nil {
		return fmt.Sprintf("%#v", fp)
	}
	return string(b)
}

func pick(rec models.Record, keys []string) map[string]any {
	out := make(map[string]any, len(keys)+1)
	for _, k := range keys {
		if v, ok := rec[k]; ok {
			out[k] = v
		}
	}
	return out
}

// FindMatchingContact returns the first contact whose fields equal the
// candidate's, ignoring ids on both sides. With no match the candidate
// itself is returned unchanged.
func FindMatchingContact(candidate models.Contact, contacts []models.Contact) models.Contact {
	for _, c := range contacts {
		if c.SameFields(candidate) {
			return c
		}
	}
	return candidate
}
