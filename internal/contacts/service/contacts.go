package service

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"regcontacts/internal/contacts/models"
	"regcontacts/internal/contacts/transform"
	dErrors "regcontacts/pkg/domain-errors"
)

// ListOptions tunes ListContacts.
type ListOptions struct {
	// AvoidDuplicates drops contacts whose fingerprint was already listed.
	AvoidDuplicates bool
	// CustomFilter runs last, on the wrapped and de-duplicated list.
	CustomFilter func([]models.Contact) []models.Contact
}

// ConvertRegistryRecordToContact builds a contact from rec, or from the
// current identity when rec is nil.
func (s *Service) ConvertRegistryRecordToContact(ctx context.Context, rec models.Record) (_ models.Contact, err error) {
	ctx, finish := s.begin(ctx, "convert_registry_record",
		attribute.Bool("contacts.current_identity", rec == nil))
	defer func() { finish(err) }()

	return s.convert(ctx, rec)
}

func (s *Service) convert(ctx context.Context, rec models.Record) (models.Contact, error) {
	var props models.PropertySet
	g, gctx := errgroup.WithContext(ctx)
	if rec == nil {
		g.Go(func() error {
			identity, err := s.currentIdentity(gctx)
			if err != nil {
				return err
			}
			rec = identity
			return nil
		})
	}
	g.Go(func() error {
		p, err := s.contactProperties(gctx)
		if err != nil {
			return err
		}
		props = p
		return nil
	})
	if err := g.Wait(); err != nil {
		return models.Contact{}, err
	}
	return transform.ConvertRegistryToContact(rec, props, s.mapper), nil
}

// CreateContact persists c at the registrar and returns it stamped with the
// assigned identifier.
func (s *Service) CreateContact(ctx context.Context, c models.Contact) (_ models.Contact, err error) {
	ctx, finish := s.begin(ctx, "create_contact")
	defer func() { finish(err) }()

	if len(c.Fields) == 0 {
		return models.Contact{}, dErrors.New(dErrors.CodeValidation, "contact fields are required")
	}
	id, err := s.contacts.CreateContact(ctx, c)
	if err != nil {
		return models.Contact{}, upstreamError(err, "contact")
	}
	s.logger.InfoContext(ctx, "contact created", "contact_id", id)
	return c.WithID(id), nil
}

// ListContacts lists the account's contacts.
func (s *Service) ListContacts(ctx context.Context, opts ListOptions) (_ []models.Contact, err error) {
	ctx, finish := s.begin(ctx, "list_contacts",
		attribute.String("contacts.list_mode", string(s.listMode)),
		attribute.Bool("contacts.avoid_duplicates", opts.AvoidDuplicates),
	)
	defer func() { finish(err) }()

	return s.list(ctx, opts)
}

func (s *Service) list(ctx context.Context, opts ListOptions) ([]models.Contact, error) {
	records, err := s.listRecords(ctx)
	if err != nil {
		return nil, upstreamError(err, "contact list")
	}

	contacts := make([]models.Contact, 0, len(records))
	for _, rec := range records {
		contacts = append(contacts, models.NewContact(rec))
	}
	if opts.AvoidDuplicates {
		before := len(contacts)
		contacts = transform.Dedupe(contacts)
		s.metrics.AddDuplicatesDropped(before - len(contacts))
	}
	if opts.CustomFilter != nil {
		contacts = opts.CustomFilter(contacts)
	}
	return contacts, nil
}

func (s *Service) listRecords(ctx context.Context) ([]models.Record, error) {
	if s.listMode != ListModeExpanded {
		return s.contacts.ListContacts(ctx)
	}
	entries, err := s.contacts.ListExpandedContacts(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]models.Record, 0, len(entries))
	for _, entry := range entries {
		if entry.Value == nil {
			s.logger.DebugContext(ctx, "skipping unloadable contact",
				"path", entry.Path,
				"error", entry.Error,
			)
			continue
		}
		records = append(records, entry.Value)
	}
	return records, nil
}

// FindMatchingContact converts rec (or the current identity when nil) and
// returns the first of contacts with the same fields. A nil contacts list is
// fetched with default options. Without a match the converted contact is
// returned unchanged.
func (s *Service) FindMatchingContact(ctx context.Context, rec models.Record, contacts []models.Contact) (_ models.Contact, err error) {
	ctx, finish := s.begin(ctx, "find_matching_contact")
	defer func() { finish(err) }()

	var candidate models.Contact
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := s.convert(gctx, rec)
		if err != nil {
			return err
		}
		candidate = c
		return nil
	})
	if contacts == nil {
		g.Go(func() error {
			listed, err := s.list(gctx, ListOptions{})
			if err != nil {
				return err
			}
			contacts = listed
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return models.Contact{}, err
	}
	return transform.FindMatchingContact(candidate, contacts), nil
}
