// Package transform holds the pure reconciliation steps between registry
// identity records and contacts: conversion, descriptor derivation, rule
// merging, de-duplication and matching. Nothing here performs I/O.
package transform

import (
	"fmt"
	"regexp"
	"strconv"

	"regcontacts/internal/contacts/mapping"
	"regcontacts/internal/contacts/models"
)

// FieldBirthDay is read verbatim from the registry record and reformatted.
const FieldBirthDay = "birthDay"

var localeDate = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)

// ConvertRegistryToContact builds a contact holding one value per descriptor
// path. Values missing from the record are explicit nils. The contact id is
// never set.
func ConvertRegistryToContact(rec models.Record, props models.PropertySet, m *mapping.Mapper) models.Contact {
	fields := models.Record{}
	for _, prop := range props {
		if prop.Path == models.FieldID {
			continue
		}
		if prop.Name == FieldBirthDay {
			fields.Set(FieldBirthDay, parseBirthDay(rec[FieldBirthDay]))
			continue
		}
		fields.Set(prop.Path, m.LookupRecord(rec, prop.Name, prop.Path))
	}
	return models.Contact{Fields: fields}
}

// parseBirthDay turns "D/M/YYYY" into "YYYY-MM-DD"; anything else is nil.
func parseBirthDay(v any) any {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	match := localeDate.FindStringSubmatch(s)
	if match == nil {
		return nil
	}
	day, _ := strconv.Atoi(match[1])
	month, _ := strconv.Atoi(match[2])
	return fmt.Sprintf("%s-%02d-%02d", match[3], month, day)
}
