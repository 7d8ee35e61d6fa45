package transform

import (
	"regexp"
	"strings"
	"time"

	"regcontacts/internal/contacts/models"
)

const isoDate = "2006-01-02"

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	isoDate,
	"2006/01/02",
	"01/02/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	time.RFC1123,
	time.RFC1123Z,
}

// NormalizeDate formats a date-like value as YYYY-MM-DD. Empty, unparseable
// or unsupported values yield nil. Slashed dates are read month first.
func NormalizeDate(v any) any {
	switch typed := v.(type) {
	case time.Time:
		if typed.IsZero() {
			return nil
		}
		return typed.Format(isoDate)
	case string:
		s := strings.TrimSpace(typed)
		if s == "" {
			return nil
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.Format(isoDate)
			}
		}
		return nil
	default:
		return nil
	}
}

var (
	whitespace        = regexp.MustCompile(`\s`)
	dashBeforeDigit   = regexp.MustCompile(`-(\d)`)
	dotBeforeDigit    = regexp.MustCompile(`\.(\d)`)
	parenthesedDigits = regexp.MustCompile(`\((\d+)\)`)
)

// NormalizePhoneNumber strips formatting from a phone number and rewrites an
// international "00<code>" prefix to the given "+<code>" prefix.
func NormalizePhoneNumber(number, prefix string) string {
	if number == "" {
		return number
	}
	number = whitespace.ReplaceAllString(number, "")
	number = dashBeforeDigit.ReplaceAllString(number, "$1")
	number = dotBeforeDigit.ReplaceAllString(number, "$1")
	number = parenthesedDigits.ReplaceAllString(number, "$1")

	if prefix != "" {
		alternative := "00" + strings.Replace(prefix, "+", "", 1)
		if rest, ok := strings.CutPrefix(number, alternative); ok {
			number = prefix + rest
		}
	}
	return number
}

var phoneFields = []string{"phone", "cellPhone", "fax"}

// PrepareInput builds a contact from raw form input, normalizing the birth
// day and phone fields. The payload's id, if any, is kept.
func PrepareInput(rec models.Record, phonePrefix string) models.Contact {
	c := models.NewContact(rec)
	if v, ok := c.Fields[FieldBirthDay]; ok {
		c.Fields[FieldBirthDay] = NormalizeDate(v)
	}
	for _, field := range phoneFields {
		if s, ok := c.Fields[field].(string); ok {
			c.Fields[field] = NormalizePhoneNumber(s, phonePrefix)
		}
	}
	return c
}
