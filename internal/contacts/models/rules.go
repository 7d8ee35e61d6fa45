package models

// CreationRule is registry-supplied validation and default metadata for one field.
type CreationRule struct {
	FieldName         string   `json:"fieldName"`
	Mandatory         bool     `json:"mandatory"`
	DefaultValue      any      `json:"defaultValue,omitempty"`
	RegularExpression string   `json:"regularExpression,omitempty"`
	Prefix            string   `json:"prefix,omitempty"`
	Examples          []string `json:"examples,omitempty"`
	In                []string `json:"in,omitempty"`
	Description       string   `json:"description,omitempty"`
}

// CreationRules indexes creation rules by field name.
type CreationRules map[string]CreationRule

// IndexCreationRules keys rules by FieldName. When several rules share a
// field name the last one wins.
func IndexCreationRules(rules []CreationRule) CreationRules {
	out := make(CreationRules, len(rules))
	for _, rule := range rules {
		out[rule.FieldName] = rule
	}
	return out
}

// Rule option keys. The registrar uses the same names in the /me identity
// record and in the creation-rules request body.
const (
	OptionCompany      = "ovhCompany"
	OptionSubsidiary   = "ovhSubsidiary"
	OptionCountry      = "country"
	OptionPhoneCountry = "phoneCountry"
)

// RuleOptions parameterizes a creation-rules fetch. Extra carries any other
// registry input (legal form, language, ...) verbatim.
type RuleOptions struct {
	Company      string         `json:"ovhCompany,omitempty"`
	Subsidiary   string         `json:"ovhSubsidiary,omitempty"`
	Country      string         `json:"country,omitempty"`
	PhoneCountry string         `json:"phoneCountry,omitempty"`
	Extra        map[string]any `json:"extra,omitempty"`
}

// Values flattens the options into one map. Typed fields override Extra and
// empty typed fields are omitted.
func (o RuleOptions) Values() map[string]any {
	out := make(map[string]any, len(o.Extra)+4)
	for k, v := range o.Extra {
		out[k] = v
	}
	set := func(key, value string) {
		if value != "" {
			out[key] = value
		}
	}
	set(OptionCompany, o.Company)
	set(OptionSubsidiary, o.Subsidiary)
	set(OptionCountry, o.Country)
	set(OptionPhoneCountry, o.PhoneCountry)
	return out
}
