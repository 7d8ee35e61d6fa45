package service

import (
	"net/http"

	"regcontacts/internal/contacts/models"
)

func registrarSchema() *models.Schema {
	return &models.Schema{
		APIs: []models.APIPath{
			{
				Path: "/me/contact",
				Operations: []models.Operation{
					{HTTPMethod: http.MethodGet},
					{
						HTTPMethod: http.MethodPost,
						Parameters: []models.Parameter{
							{Name: "firstName", Required: true},
							{Name: "lastName", Required: true},
							{Name: "email", Required: true},
							{Name: "address", Required: true},
						},
					},
				},
			},
		},
		Models: map[string]models.Model{
			"contact.Contact": {
				Properties: map[string]models.Property{
					"id":        {Type: "long", FullType: "long", ReadOnly: true},
					"firstName": {Type: "string", FullType: "string", CanBeNull: true},
					"lastName":  {Type: "string", FullType: "string", CanBeNull: true},
					"email":     {Type: "string", FullType: "string", CanBeNull: true},
					"birthDay":  {Type: "date", FullType: "date", CanBeNull: true},
					"gender":    {Type: "nichandle.GenderEnum", FullType: "nichandle.GenderEnum", CanBeNull: true},
					"address":   {Type: "contact.Address", FullType: "contact.Address"},
				},
			},
			"contact.Address": {
				Properties: map[string]models.Property{
					"line1":    {Type: "string", FullType: "string"},
					"zip":      {Type: "string", FullType: "string"},
					"city":     {Type: "string", FullType: "string"},
					"country":  {Type: "nichandle.CountryEnum", FullType: "nichandle.CountryEnum"},
					"province": {Type: "string", FullType: "string", CanBeNull: true},
				},
			},
			"nichandle.CountryEnum": {Enum: []string{"FR", "DE"}},
			"nichandle.GenderEnum":  {Enum: []string{"female", "male"}},
		},
	}
}

// registryIdentity is a registry record as the registrar returns it, with
// registry field names.
func registryIdentity() models.Record {
	return models.Record{
		"nichandle":     "dj1234-ovh",
		"name":          "Doe",
		"firstname":     "Jane",
		"email":         "jane@example.com",
		"sex":           "female",
		"birthDay":      "1/2/1990",
		"address":       "1 rue de la Paix",
		"zip":           "75002",
		"city":          "Paris",
		"country":       "FR",
		"area":          "IDF",
		"ovhCompany":    "acme",
		"ovhSubsidiary": "FR",
	}
}

// identityContactFields is registryIdentity converted with the default table.
func identityContactFields() models.Record {
	return models.Record{
		"firstName": "Jane",
		"lastName":  "Doe",
		"email":     "jane@example.com",
		"birthDay":  "1990-02-01",
		"gender":    "female",
		"address": models.Record{
			"line1":    "1 rue de la Paix",
			"zip":      "75002",
			"city":     "Paris",
			"country":  "FR",
			"province": "IDF",
		},
	}
}

func creationRules() []models.CreationRule {
	return []models.CreationRule{
		{FieldName: "firstname", Mandatory: true, RegularExpression: "^.+$"},
		{FieldName: "sex"},
		{FieldName: "country", DefaultValue: "FR"},
		{FieldName: "phoneCountry", Examples: []string{"FR"}},
		{FieldName: "area", In: []string{"IDF", "PACA"}},
		{FieldName: "city", In: []string{"Paris"}},
	}
}
