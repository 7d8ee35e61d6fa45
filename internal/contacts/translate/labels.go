package translate

// DefaultLabels returns the built-in English labels for the "contact_form"
// key prefix. Deployments without a Redis catalog serve these.
func DefaultLabels() Catalog {
	return Catalog{
		"contact_form_nichandle_gender_enum_female": "Female",
		"contact_form_nichandle_gender_enum_male":   "Male",

		"contact_form_nichandle_legal_form_enum_administration": "Administration",
		"contact_form_nichandle_legal_form_enum_association":    "Association",
		"contact_form_nichandle_legal_form_enum_corporation":    "Corporation",
		"contact_form_nichandle_legal_form_enum_individual":     "Individual",
		"contact_form_nichandle_legal_form_enum_other":          "Other",

		"contact_form_nichandle_legal_form_enum_personalcorporation": "Personal corporation",

		"contact_form_nichandle_country_enum_BE": "Belgium",
		"contact_form_nichandle_country_enum_CA": "Canada",
		"contact_form_nichandle_country_enum_DE": "Germany",
		"contact_form_nichandle_country_enum_ES": "Spain",
		"contact_form_nichandle_country_enum_FR": "France",
		"contact_form_nichandle_country_enum_GB": "United Kingdom",
		"contact_form_nichandle_country_enum_IT": "Italy",
		"contact_form_nichandle_country_enum_PL": "Poland",
		"contact_form_nichandle_country_enum_PT": "Portugal",

		"contact_form_address_province_ES_CT": "Catalonia",
		"contact_form_address_province_ES_MD": "Community of Madrid",
		"contact_form_address_province_IT_MI": "Milan",
		"contact_form_address_province_IT_RM": "Rome",
	}
}
