package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"regcontacts/internal/contacts/cache"
	"regcontacts/internal/contacts/mapping"
	"regcontacts/internal/contacts/metrics"
	"regcontacts/internal/contacts/models"
	"regcontacts/internal/contacts/transform"
	dErrors "regcontacts/pkg/domain-errors"
	"regcontacts/pkg/platform/sentinel"
	"regcontacts/pkg/requestcontext"
)

const tracerName = "regcontacts/contacts"

// ListMode selects which registrar listing backs ListContacts.
type ListMode string

const (
	// ListModeFlat lists contact records directly.
	ListModeFlat ListMode = "flat"
	// ListModeExpanded lists wrapped entries and drops the ones that failed to load.
	ListModeExpanded ListMode = "expanded"
)

// ParseListMode validates a configured list mode.
func ParseListMode(raw string) (ListMode, error) {
	switch ListMode(raw) {
	case ListModeFlat, ListModeExpanded:
		return ListMode(raw), nil
	case "":
		return ListModeFlat, nil
	default:
		return "", fmt.Errorf("unknown list mode %q", raw)
	}
}

// DefaultTranslationPrefix heads every enum label lookup key.
const DefaultTranslationPrefix = "contact_form"

// DefaultCountryKeyedPaths lists the fields whose enum labels depend on the country.
func DefaultCountryKeyedPaths() []string {
	return []string{"address.province"}
}

// schemaSnapshot memoizes a fetched schema together with the contact
// properties derived from it. A schema that lacks the contact layout is
// cached with its derivation error.
type schemaSnapshot struct {
	schema     *models.Schema
	properties models.PropertySet
	err        error
}

// Service orchestrates registry identities, the registrar schema, creation
// rules and the contact store.
type Service struct {
	identity   IdentitySource
	schemas    SchemaSource
	rules      RulesSource
	contacts   ContactStore
	translator Translator

	mapper            *mapping.Mapper
	layout            models.SchemaLayout
	listMode          ListMode
	countryKeyedPaths []string
	translationPrefix string

	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer

	identitySnap *cache.Snapshot[models.Record]
	schemaSnap   *cache.Snapshot[*schemaSnapshot]
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithTracer overrides the tracer taken from the global provider.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tracer
	}
}

// WithMapper replaces the default registry-to-contact field table.
func WithMapper(m *mapping.Mapper) Option {
	return func(s *Service) {
		s.mapper = m
	}
}

func WithSchemaLayout(layout models.SchemaLayout) Option {
	return func(s *Service) {
		s.layout = layout
	}
}

func WithListMode(mode ListMode) Option {
	return func(s *Service) {
		s.listMode = mode
	}
}

// WithCountryKeyedPaths sets the fields whose enum label keys embed the country.
func WithCountryKeyedPaths(paths []string) Option {
	return func(s *Service) {
		s.countryKeyedPaths = paths
	}
}

func WithTranslationPrefix(prefix string) Option {
	return func(s *Service) {
		s.translationPrefix = prefix
	}
}

// New constructs a Service. Every port is required.
func New(
	identity IdentitySource,
	schemas SchemaSource,
	rules RulesSource,
	contacts ContactStore,
	translator Translator,
	opts ...Option,
) (*Service, error) {
	switch {
	case identity == nil:
		return nil, errors.New("identity source is required")
	case schemas == nil:
		return nil, errors.New("schema source is required")
	case rules == nil:
		return nil, errors.New("rules source is required")
	case contacts == nil:
		return nil, errors.New("contact store is required")
	case translator == nil:
		return nil, errors.New("translator is required")
	}

	s := &Service{
		identity:          identity,
		schemas:           schemas,
		rules:             rules,
		contacts:          contacts,
		translator:        translator,
		mapper:            mapping.Default(),
		layout:            models.DefaultSchemaLayout(),
		listMode:          ListModeFlat,
		countryKeyedPaths: DefaultCountryKeyedPaths(),
		translationPrefix: DefaultTranslationPrefix,
		logger:            slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer(tracerName)
	}

	var snapOpts []cache.Option
	if s.metrics != nil {
		snapOpts = append(snapOpts, cache.WithObserver(s.metrics))
	}
	s.identitySnap = cache.NewSnapshot("identity", s.fetchIdentity, snapOpts...)
	s.schemaSnap = cache.NewSnapshot("schema", s.fetchSchema, snapOpts...)
	return s, nil
}

func (s *Service) fetchIdentity(ctx context.Context) (models.Record, error) {
	rec, err := s.identity.CurrentIdentity(ctx)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		rec = models.Record{}
	}
	return rec, nil
}

func (s *Service) fetchSchema(ctx context.Context) (*schemaSnapshot, error) {
	schema, err := s.schemas.FetchSchema(ctx)
	if err != nil {
		return nil, err
	}
	props, err := transform.DeriveContactProperties(schema, s.layout)
	if err != nil {
		s.logger.WarnContext(ctx, "registrar schema lacks contact layout",
			"error", err,
			"contact_model", s.layout.ContactModel,
			"create_path", s.layout.CreatePath,
		)
	}
	return &schemaSnapshot{schema: schema, properties: props, err: err}, nil
}

// CurrentIdentity returns the cached registry identity of the connected account.
func (s *Service) CurrentIdentity(ctx context.Context) (_ models.Record, err error) {
	ctx, finish := s.begin(ctx, "current_identity")
	defer func() { finish(err) }()

	rec, err := s.currentIdentity(ctx)
	if err != nil {
		return nil, err
	}
	return rec.Clone(), nil
}

func (s *Service) currentIdentity(ctx context.Context) (models.Record, error) {
	rec, err := s.identitySnap.Get(ctx)
	if err != nil {
		return nil, upstreamError(err, "registry identity")
	}
	return rec, nil
}

// Schema returns the cached registrar API description.
func (s *Service) Schema(ctx context.Context) (_ *models.Schema, err error) {
	ctx, finish := s.begin(ctx, "schema")
	defer func() { finish(err) }()

	snap, err := s.schemaSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	if snap.schema == nil {
		return nil, shapeError(snap.err)
	}
	return snap.schema, nil
}

// ContactProperties returns the contact property descriptors derived from
// the cached schema.
func (s *Service) ContactProperties(ctx context.Context) (_ models.PropertySet, err error) {
	ctx, finish := s.begin(ctx, "contact_properties")
	defer func() { finish(err) }()

	props, err := s.contactProperties(ctx)
	if err != nil {
		return nil, err
	}
	out := make(models.PropertySet, len(props))
	for path, prop := range props {
		out[path] = prop.Clone()
	}
	return out, nil
}

func (s *Service) schemaSnapshot(ctx context.Context) (*schemaSnapshot, error) {
	snap, err := s.schemaSnap.Get(ctx)
	if err != nil {
		return nil, upstreamError(err, "registrar schema")
	}
	return snap, nil
}

func (s *Service) contactProperties(ctx context.Context) (models.PropertySet, error) {
	snap, err := s.schemaSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	if snap.err != nil {
		return nil, shapeError(snap.err)
	}
	return snap.properties, nil
}

// InvalidateCaches drops the cached identity and schema. The next operation
// fetches them again.
func (s *Service) InvalidateCaches(ctx context.Context) {
	s.identitySnap.Invalidate()
	s.schemaSnap.Invalidate()
	s.logger.InfoContext(ctx, "contact caches invalidated",
		"request_id", requestcontext.RequestID(ctx),
	)
}

// begin opens a span for op. The returned func ends it and records the
// outcome in metrics and logs.
func (s *Service) begin(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "contacts."+op, trace.WithAttributes(attrs...))
	return ctx, func(err error) {
		defer span.End()
		s.metrics.ObserveOperation(op, start, err)
		durationMs := time.Since(start).Milliseconds()
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			s.logger.ErrorContext(ctx, "contacts operation failed",
				"operation", op,
				"error", err,
				"request_id", requestcontext.RequestID(ctx),
				"duration_ms", durationMs,
			)
			return
		}
		span.SetStatus(codes.Ok, "")
		s.logger.DebugContext(ctx, "contacts operation completed",
			"operation", op,
			"request_id", requestcontext.RequestID(ctx),
			"duration_ms", durationMs,
		)
	}
}

func shapeError(err error) error {
	return dErrors.Wrap(err, dErrors.CodeInvariantViolation, "registrar schema does not describe contacts")
}

// upstreamError translates port failures into domain errors. Errors that
// already carry a code and context errors pass through unchanged.
func upstreamError(err error, what string) error {
	var de *dErrors.Error
	switch {
	case err == nil:
		return nil
	case errors.As(err, &de),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.Wrap(err, dErrors.CodeNotFound, what+" not found")
	case errors.Is(err, sentinel.ErrConflict):
		return dErrors.Wrap(err, dErrors.CodeConflict, what+" conflicts with an existing resource")
	case errors.Is(err, sentinel.ErrRejected):
		return dErrors.Wrap(err, dErrors.CodeBadRequest, what+" rejected by the registrar")
	default:
		return dErrors.Wrap(err, dErrors.CodeUnavailable, what+" unavailable")
	}
}
