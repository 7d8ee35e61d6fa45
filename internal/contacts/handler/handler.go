package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"regcontacts/internal/contacts/filter"
	"regcontacts/internal/contacts/models"
	"regcontacts/internal/contacts/service"
	"regcontacts/internal/contacts/transform"
	dErrors "regcontacts/pkg/domain-errors"
	"regcontacts/pkg/platform/httputil"
	"regcontacts/pkg/requestcontext"
)

// Service defines the contact operations exposed over HTTP.
type Service interface {
	ListContacts(ctx context.Context, opts service.ListOptions) ([]models.Contact, error)
	CreateContact(ctx context.Context, c models.Contact) (models.Contact, error)
	ContactProperties(ctx context.Context) (models.PropertySet, error)
	ConvertRegistryRecordToContact(ctx context.Context, rec models.Record) (models.Contact, error)
	GetCreationRules(ctx context.Context, opts models.RuleOptions, predefinedPaths []string) (models.RuleSet, error)
	FindMatchingContact(ctx context.Context, rec models.Record, contacts []models.Contact) (models.Contact, error)
	InvalidateCaches(ctx context.Context)
}

// FilterCompiler turns a filter query parameter into a list filter.
type FilterCompiler interface {
	Compile(expression string) (filter.Func, error)
}

// Handler handles contact endpoints.
type Handler struct {
	contacts Service
	filters  FilterCompiler
	logger   *slog.Logger
}

// New creates a new contact Handler.
func New(contacts Service, filters FilterCompiler, logger *slog.Logger) *Handler {
	return &Handler{contacts: contacts, filters: filters, logger: logger}
}

// Register registers the contact routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/contacts", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/properties", h.handleProperties)
		r.Post("/from-registry", h.handleFromRegistry)
		r.Post("/creation-rules", h.handleCreationRules)
		r.Post("/match", h.handleMatch)
		r.Delete("/cache", h.handleInvalidate)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	var opts service.ListOptions
	if raw := query.Get("avoid_duplicates"); raw != "" {
		avoid, err := strconv.ParseBool(raw)
		if err != nil {
			h.fail(ctx, w, dErrors.New(dErrors.CodeBadRequest, "avoid_duplicates must be a boolean"))
			return
		}
		opts.AvoidDuplicates = avoid
	}
	if expression := query.Get("filter"); expression != "" {
		fn, err := h.filters.Compile(expression)
		if err != nil {
			h.fail(ctx, w, err)
			return
		}
		opts.CustomFilter = fn
	}

	contacts, err := h.contacts.ListContacts(ctx, opts)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toContactList(contacts))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input models.Record
	if err := httputil.DecodeJSON(r, &input, false); err != nil {
		h.fail(ctx, w, err)
		return
	}
	prepared := transform.PrepareInput(input, r.URL.Query().Get("phone_prefix"))

	created, err := h.contacts.CreateContact(ctx, prepared)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleProperties(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	props, err := h.contacts.ContactProperties(ctx)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &PropertiesResponse{Properties: props})
}

func (h *Handler) handleFromRegistry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req FromRegistryRequest
	if err := httputil.DecodeJSON(r, &req, true); err != nil {
		h.fail(ctx, w, err)
		return
	}

	contact, err := h.contacts.ConvertRegistryRecordToContact(ctx, req.Record)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, contact)
}

func (h *Handler) handleCreationRules(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreationRulesRequest
	if err := httputil.DecodeJSON(r, &req, true); err != nil {
		h.fail(ctx, w, err)
		return
	}

	rules, err := h.contacts.GetCreationRules(ctx, req.Options, req.PredefinedPaths)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &RulesResponse{Rules: rules})
}

func (h *Handler) handleMatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req MatchRequest
	if err := httputil.DecodeJSON(r, &req, true); err != nil {
		h.fail(ctx, w, err)
		return
	}

	contact, err := h.contacts.FindMatchingContact(ctx, req.Record, req.Contacts)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &MatchResponse{Contact: contact, Matched: contact.ID != nil})
}

func (h *Handler) handleInvalidate(w http.ResponseWriter, r *http.Request) {
	h.contacts.InvalidateCaches(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// fail writes err, logging server-side failures.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	if httputil.StatusFor(code) >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, "contact request failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	} else {
		h.logger.WarnContext(ctx, "contact request rejected",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	}
	httputil.WriteError(w, err)
}
