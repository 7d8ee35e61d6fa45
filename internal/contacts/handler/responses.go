package handler

import "regcontacts/internal/contacts/models"

type ContactListResponse struct {
	Contacts []models.Contact `json:"contacts"`
	Count    int              `json:"count"`
}

type PropertiesResponse struct {
	Properties models.PropertySet `json:"properties"`
}

type RulesResponse struct {
	Rules models.RuleSet `json:"rules"`
}

type MatchResponse struct {
	Contact models.Contact `json:"contact"`
	Matched bool           `json:"matched"`
}

func toContactList(contacts []models.Contact) *ContactListResponse {
	if contacts == nil {
		contacts = []models.Contact{}
	}
	return &ContactListResponse{Contacts: contacts, Count: len(contacts)}
}
