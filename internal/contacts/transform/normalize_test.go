package transform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"regcontacts/internal/contacts/models"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected any
	}{
		{name: "nil", input: nil, expected: nil},
		{name: "empty string", input: "", expected: nil},
		{name: "iso date", input: "1990-07-03", expected: "1990-07-03"},
		{name: "rfc3339", input: "1990-07-03T10:00:00Z", expected: "1990-07-03"},
		{name: "slashed month first", input: "07/03/1990", expected: "1990-07-03"},
		{name: "long form", input: "July 3, 1990", expected: "1990-07-03"},
		{name: "time value", input: time.Date(1990, 7, 3, 0, 0, 0, 0, time.UTC), expected: "1990-07-03"},
		{name: "zero time", input: time.Time{}, expected: nil},
		{name: "garbage", input: "not a date", expected: nil},
		{name: "number", input: 42, expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeDate(tt.input))
		})
	}
}

func TestNormalizePhoneNumber(t *testing.T) {
	tests := []struct {
		name     string
		number   string
		prefix   string
		expected string
	}{
		{name: "empty", number: "", prefix: "+33", expected: ""},
		{name: "whitespace", number: "01 23 45 67 89", expected: "0123456789"},
		{name: "dashes and dots before digits", number: "01-23.45-67.89", expected: "0123456789"},
		{name: "parentheses around digits", number: "(0)1 23", expected: "0123"},
		{name: "international prefix rewritten", number: "0033 1 23 45", prefix: "+33", expected: "+3312345"},
		{name: "already prefixed", number: "+33 1 23", prefix: "+33", expected: "+33123"},
		{name: "other country left alone", number: "0049 30 1234", prefix: "+33", expected: "0049301234"},
		{name: "trailing dash kept", number: "123-", expected: "123-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizePhoneNumber(tt.number, tt.prefix))
		})
	}
}

func TestPrepareInput(t *testing.T) {
	c := PrepareInput(models.Record{
		"id":        float64(3),
		"firstName": "Jane",
		"birthDay":  "1990-07-03T00:00:00Z",
		"phone":     "0033 1 23 45",
		"cellPhone": "06.12.34",
		"fax":       nil,
	}, "+33")

	if assert.NotNil(t, c.ID) {
		assert.Equal(t, int64(3), *c.ID)
	}
	assert.Equal(t, "1990-07-03", c.Fields["birthDay"])
	assert.Equal(t, "+3312345", c.Fields["phone"])
	assert.Equal(t, "061234", c.Fields["cellPhone"])
	assert.Nil(t, c.Fields["fax"])
	assert.Equal(t, "Jane", c.Fields["firstName"])
}
