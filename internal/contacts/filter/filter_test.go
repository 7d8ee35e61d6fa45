package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regcontacts/internal/contacts/models"
	dErrors "regcontacts/pkg/domain-errors"
)

func contacts() []models.Contact {
	return []models.Contact{
		models.NewContact(models.Record{
			"id": float64(1), "lastName": "Doe",
			"address": models.Record{"country": "FR", "city": "Paris"},
		}),
		models.NewContact(models.Record{
			"id": float64(2), "lastName": "Roe",
			"address": map[string]any{"country": "BE"},
		}),
		models.NewContact(models.Record{"id": float64(3), "lastName": "Doe"}),
	}
}

func ids(list []models.Contact) []int64 {
	out := make([]int64, 0, len(list))
	for _, c := range list {
		out = append(out, *c.ID)
	}
	return out
}

func TestCompile(t *testing.T) {
	compiler := NewCompiler(0)

	tests := []struct {
		name       string
		expression string
		expect     []int64
	}{
		{"top level field", `lastName == "Doe"`, []int64{1, 3}},
		{"nested field", `address?.country in ["FR", "BE"]`, []int64{1, 2}},
		{"identifier", `id > 1`, []int64{2, 3}},
		{"undefined field is nil", `missing == nil`, []int64{1, 2, 3}},
		{"evaluation failure drops contact", `address.city == "Paris"`, []int64{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, err := compiler.Compile(tt.expression)
			require.NoError(t, err)
			assert.Equal(t, tt.expect, ids(fn(contacts())))
		})
	}
}

func TestCompileErrors(t *testing.T) {
	compiler := NewCompiler(0)

	t.Run("empty", func(t *testing.T) {
		_, err := compiler.Compile("   ")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	t.Run("syntax", func(t *testing.T) {
		_, err := compiler.Compile(`lastName ==`)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	t.Run("not boolean", func(t *testing.T) {
		_, err := compiler.Compile(`"Doe"`)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
	})
}

func TestCompileReusesPrograms(t *testing.T) {
	compiler := NewCompiler(0)

	_, err := compiler.Compile(`lastName == "Doe"`)
	require.NoError(t, err)
	_, err = compiler.Compile(` lastName == "Doe" `)
	require.NoError(t, err)

	assert.Equal(t, 1, compiler.programs.ItemCount())
}
