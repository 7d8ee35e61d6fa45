// Package mapping resolves contact field paths to registry field names.
//
// Registry APIs are inconsistent about key casing across locales, so every
// lookup tries the mapped key first and then its lower-cased form.
package mapping

import (
	"strings"

	"regcontacts/internal/contacts/models"
)

// Table maps a canonical contact path to a registry field name.
type Table map[string]string

// DefaultTable returns the registrar's contact-to-identity field table.
// Each call returns a fresh copy.
func DefaultTable() Table {
	return Table{
		"lastName":                           "name",
		"firstName":                          "firstname",
		"gender":                             "sex",
		"legalForm":                          "legalform",
		"organisationName":                   "organisation",
		"organisationType":                   "corporationType",
		"companyNationalIdentificationNumber": "companyNationalIdentificationNumber",
		"address.line1":                      "address",
		"address.zip":                        "zip",
		"address.city":                       "city",
		"address.country":                    "country",
		"address.province":                   "area",
	}
}

// Mapper resolves names through a Table.
type Mapper struct {
	table Table
}

// New builds a Mapper over a copy of table. A nil table maps nothing.
func New(table Table) *Mapper {
	cp := make(Table, len(table))
	for k, v := range table {
		cp[k] = v
	}
	return &Mapper{table: cp}
}

// Default is a Mapper over DefaultTable.
func Default() *Mapper {
	return New(DefaultTable())
}

// Resolve returns the registry name mapped to path, or name when path is unmapped.
func (m *Mapper) Resolve(name, path string) string {
	if m != nil {
		if mapped, ok := m.table[path]; ok {
			return mapped
		}
	}
	return name
}

// Lookup fetches the value stored under the resolved key, retrying with the
// lower-cased key. A key present with a nil value counts as found.
func Lookup[V any](m *Mapper, src map[string]V, name, path string) (V, bool) {
	key := m.Resolve(name, path)
	if v, ok := src[key]; ok {
		return v, true
	}
	if v, ok := src[strings.ToLower(key)]; ok {
		return v, true
	}
	var zero V
	return zero, false
}

// LookupRecord is Lookup over a Record, resolving dotted keys. Absent values are nil.
func (m *Mapper) LookupRecord(rec models.Record, name, path string) any {
	key := m.Resolve(name, path)
	if v, ok := rec.Get(key); ok {
		return v
	}
	if v, ok := rec.Get(strings.ToLower(key)); ok {
		return v
	}
	return nil
}
