package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regcontacts/internal/contacts/mapping"
	"regcontacts/internal/contacts/models"
)

func sampleRules() models.CreationRules {
	return models.IndexCreationRules([]models.CreationRule{
		{FieldName: "firstname", RegularExpression: "^.+$", Examples: []string{"Jane"}},
		{FieldName: "email", RegularExpression: "^.+@.+$", DefaultValue: "nobody@x.test"},
		{FieldName: "country", DefaultValue: "FR", In: []string{"FR", "DE"}},
		{FieldName: "phoneCountry", DefaultValue: "FR", In: []string{"FR", "DE"}},
		{FieldName: "area", In: []string{"FR-69", "FR-75"}},
		{FieldName: "sex", In: []string{"female", "male"}},
		{FieldName: "phone", Prefix: "+33"},
	})
}

func TestMergeRulesWithCreationRules(t *testing.T) {
	props := sampleProperties()
	m := mapping.Default()

	t.Run("nil whitelist keeps only phoneCountry", func(t *testing.T) {
		rules := MergeRulesWithCreationRules(props, sampleRules(), nil, nil, m)
		require.Len(t, rules, 1)
		phone, ok := rules[PathPhoneCountry]
		require.True(t, ok)
		assert.Equal(t, "phoneCountry", phone.Name)
		assert.Equal(t, "Phone country", phone.Description)
		assert.Equal(t, "nichandle.CountryEnum", phone.FullType)
		assert.Equal(t, "FR", phone.DefaultValue)
	})

	t.Run("phoneCountry is included regardless of the whitelist", func(t *testing.T) {
		rules := MergeRulesWithCreationRules(props, sampleRules(), []string{"email"}, nil, m)
		assert.Contains(t, rules, PathPhoneCountry)
		assert.Contains(t, rules, "email")
		assert.Len(t, rules, 2)
	})

	t.Run("descriptors without a rule are dropped", func(t *testing.T) {
		rules := MergeRulesWithCreationRules(props, sampleRules(), []string{"lastName", "address.zip", "birthDay"}, nil, m)
		assert.NotContains(t, rules, "lastName")
		assert.NotContains(t, rules, "address.zip")
		assert.NotContains(t, rules, "birthDay")
	})

	t.Run("rule metadata is copied", func(t *testing.T) {
		rules := MergeRulesWithCreationRules(props, sampleRules(), []string{"firstName", "email", "phone"}, nil, m)
		assert.Equal(t, "^.+$", rules["firstName"].RegularExpression)
		assert.Equal(t, []string{"Jane"}, rules["firstName"].Examples)
		assert.Equal(t, "nobody@x.test", rules["email"].DefaultValue)
		assert.Equal(t, "+33", rules["phone"].Prefix)
	})

	t.Run("initial values are keyed by name", func(t *testing.T) {
		initial := map[string]any{"country": "DE", "address.country": "GB", "phoneCountry": "GB"}
		rules := MergeRulesWithCreationRules(props, sampleRules(), []string{"address.country"}, initial, m)
		assert.Equal(t, "DE", rules["address.country"].InitialValue)
		assert.Equal(t, "GB", rules[PathPhoneCountry].InitialValue)
	})

	t.Run("enum only for string typed fields", func(t *testing.T) {
		rules := MergeRulesWithCreationRules(props, sampleRules(), []string{"address.province", "gender", "address.country"}, nil, m)
		assert.Equal(t, []models.EnumOption{{Value: "FR-69"}, {Value: "FR-75"}}, rules["address.province"].Enum)
		assert.Nil(t, rules["gender"].Enum, "named enum types are not overridden by rules")
		assert.Nil(t, rules["address.country"].Enum)
	})

	t.Run("lower-cased rule key fallback", func(t *testing.T) {
		rules := models.IndexCreationRules([]models.CreationRule{{FieldName: "phonecountry", DefaultValue: "DE"}})
		out := MergeRulesWithCreationRules(props, rules, nil, nil, m)
		require.Contains(t, out, PathPhoneCountry)
		assert.Equal(t, "DE", out[PathPhoneCountry].DefaultValue)
	})

	t.Run("no phoneCountry without an address country", func(t *testing.T) {
		trimmed := models.PropertySet{"email": props["email"]}
		out := MergeRulesWithCreationRules(trimmed, sampleRules(), nil, nil, m)
		assert.Empty(t, out)
	})

	t.Run("inputs are not mutated", func(t *testing.T) {
		before := props["address.country"]
		rules := sampleRules()
		out := MergeRulesWithCreationRules(props, rules, []string{"firstName"}, nil, m)
		out["firstName"].Examples[0] = "changed"
		assert.Equal(t, before, props["address.country"])
		assert.NotContains(t, props, PathPhoneCountry)
		assert.Equal(t, []string{"Jane"}, rules["firstname"].Examples)
	})
}
