package handler

import "regcontacts/internal/contacts/models"

// FromRegistryRequest carries an optional registry record. Without one the
// connected account's identity is converted.
type FromRegistryRequest struct {
	Record models.Record `json:"record"`
}

// CreationRulesRequest selects the rules to render.
type CreationRulesRequest struct {
	Options         models.RuleOptions `json:"options"`
	PredefinedPaths []string           `json:"predefined_paths"`
}

// MatchRequest looks record up among contacts. A missing record means the
// connected account's identity; missing contacts are listed from the registrar.
type MatchRequest struct {
	Record   models.Record    `json:"record"`
	Contacts []models.Contact `json:"contacts"`
}
