package service

import (
	"context"

	"regcontacts/internal/contacts/models"
)

// IdentitySource loads the registry identity record of the connected account.
type IdentitySource interface {
	CurrentIdentity(ctx context.Context) (models.Record, error)
}

// SchemaSource loads the registrar API description.
type SchemaSource interface {
	FetchSchema(ctx context.Context) (*models.Schema, error)
}

// RulesSource loads the registrar's field creation rules for the given options.
type RulesSource interface {
	FetchCreationRules(ctx context.Context, options map[string]any) ([]models.CreationRule, error)
}

// ContactStore lists and persists contacts at the registrar.
type ContactStore interface {
	ListContacts(ctx context.Context) ([]models.Record, error)
	ListExpandedContacts(ctx context.Context) ([]models.ExpandedRecord, error)
	// CreateContact persists c and returns the identifier assigned by the registrar.
	CreateContact(ctx context.Context, c models.Contact) (int64, error)
}

// Translator resolves a lookup key to a display label. Implementations
// return the key itself when no label exists.
type Translator interface {
	Translate(ctx context.Context, key string) (string, error)
}
