package transform

import (
	"net/http"

	"regcontacts/internal/contacts/models"
)

func sampleSchema() *models.Schema {
	return &models.Schema{
		APIs: []models.APIPath{
			{Path: "/me"},
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
							{Name: "birthDay", Required: false},
							{Name: "address", Required: true},
						},
					},
				},
			},
		},
		Models: map[string]models.Model{
			"contact.Contact": {
				Properties: map[string]models.Property{
					"id":        {Type: "long", FullType: "long", CanBeNull: false, ReadOnly: true},
					"firstName": {Type: "string", FullType: "string", CanBeNull: true},
					"lastName":  {Type: "string", FullType: "string", CanBeNull: true},
					"email":     {Type: "string", FullType: "string", CanBeNull: true},
					"birthDay":  {Type: "date", FullType: "date", CanBeNull: true},
					"gender":    {Type: "nichandle.GenderEnum", FullType: "nichandle.GenderEnum", CanBeNull: true},
					"phone":     {Type: "phoneNumber", FullType: "phoneNumber", CanBeNull: false},
					"address":   {Type: "contact.Address", FullType: "contact.Address", CanBeNull: false},
				},
			},
			"contact.Address": {
				Properties: map[string]models.Property{
					"line1":    {Type: "string", FullType: "string", CanBeNull: false},
					"zip":      {Type: "string", FullType: "string", CanBeNull: false},
					"city":     {Type: "string", FullType: "string", CanBeNull: false},
					"country":  {Type: "nichandle.CountryEnum", FullType: "nichandle.CountryEnum", CanBeNull: false},
					"province": {Type: "string", FullType: "string", CanBeNull: true},
				},
			},
			"nichandle.CountryEnum": {Enum: []string{"FR", "DE", "GB"}},
			"nichandle.GenderEnum":  {Enum: []string{"female", "male"}},
		},
	}
}

func sampleProperties() models.PropertySet {
	props, err := DeriveContactProperties(sampleSchema(), models.DefaultSchemaLayout())
	if err != nil {
		panic(err)
	}
	return props
}
