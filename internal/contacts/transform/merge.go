package transform

import (
	"slices"

	"regcontacts/internal/contacts/mapping"
	"regcontacts/internal/contacts/models"
)

// Synthetic phone-country field, cloned from the address country.
const (
	PathPhoneCountry   = "phoneCountry"
	pathAddressCountry = "address.country"
)

// MergeRulesWithCreationRules produces render-ready rules for the fields the
// caller declared in predefined, plus the synthetic phoneCountry field. A
// descriptor without a matching creation rule is dropped. Initial values are
// keyed by descriptor name.
func MergeRulesWithCreationRules(
	props models.PropertySet,
	rules models.CreationRules,
	predefined []string,
	initial map[string]any,
	m *mapping.Mapper,
) models.RuleSet {
	candidates := make(models.PropertySet, len(props)+1)
	for path, prop := range props {
		candidates[path] = prop
	}
	if country, ok := props[pathAddressCountry]; ok {
		phone := country.Clone()
		phone.Name = PathPhoneCountry
		phone.Path = PathPhoneCountry
		phone.Description = "Phone country"
		candidates[PathPhoneCountry] = phone
	}

	out := models.RuleSet{}
	for _, prop := range candidates {
		if prop.Name != PathPhoneCountry && !slices.Contains(predefined, prop.Path) {
			continue
		}
		rule, ok := mapping.Lookup(m, rules, prop.Name, prop.Path)
		if !ok {
			continue
		}
		out[prop.Path] = applyRule(prop.Clone(), rule, initial)
	}
	return out
}

func applyRule(prop models.PropertyDescriptor, rule models.CreationRule, initial map[string]any) models.PropertyDescriptor {
	prop.DefaultValue = rule.DefaultValue
	prop.InitialValue = initial[prop.Name]
	prop.RegularExpression = rule.RegularExpression
	prop.Prefix = rule.Prefix
	prop.Examples = slices.Clone(rule.Examples)
	if len(rule.In) > 0 && prop.FullType == models.TypeString {
		prop.Enum = make([]models.EnumOption, 0, len(rule.In))
		for _, v := range rule.In {
			prop.Enum = append(prop.Enum, models.EnumOption{Value: v})
		}
	}
	return prop
}
