// Package upstream talks to the registrar HTTP API: the account identity,
// the API schema, creation rules and the contact collection.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"regcontacts/internal/contacts/models"
	"regcontacts/pkg/platform/circuit"
	"regcontacts/pkg/platform/sentinel"
	"regcontacts/pkg/requestcontext"
)

const (
	pathIdentity = "/me"
	pathSchema   = "/me.json"
	pathRules    = "/newAccount/rules"
	pathContacts = "/me/contact"

	headerRequestID = "X-Request-ID"

	maxResponseBytes   = 4 << 20
	defaultConcurrency = 8
)

// Client implements the contact service ports over the registrar API.
type Client struct {
	baseURL     string
	http        *http.Client
	logger      *slog.Logger
	concurrency int
	breaker     *circuit.Breaker
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the client built from the timeout.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.http = c
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(cl *Client) {
		cl.logger = logger
	}
}

// WithConcurrency bounds the per-contact fetches of a flat listing.
func WithConcurrency(n int) Option {
	return func(cl *Client) {
		if n > 0 {
			cl.concurrency = n
		}
	}
}

// WithBreaker fails calls fast while b is open. Only transport failures and
// 5xx responses count against it.
func WithBreaker(b *circuit.Breaker) Option {
	return func(cl *Client) {
		cl.breaker = b
	}
}

// New builds a Client for the registrar API rooted at baseURL.
func New(baseURL string, timeout time.Duration, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid registrar base URL %q", baseURL)
	}
	c := &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		http:        &http.Client{Timeout: timeout},
		logger:      slog.Default(),
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// CurrentIdentity fetches the registry record of the connected account.
func (c *Client) CurrentIdentity(ctx context.Context) (models.Record, error) {
	var rec models.Record
	if err := c.do(ctx, http.MethodGet, pathIdentity, nil, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// FetchSchema fetches the API description of the account endpoints.
func (c *Client) FetchSchema(ctx context.Context) (*models.Schema, error) {
	var schema models.Schema
	if err := c.do(ctx, http.MethodGet, pathSchema, nil, &schema); err != nil {
		return nil, err
	}
	return &schema, nil
}

// FetchCreationRules fetches the field rules for an account matching options.
func (c *Client) FetchCreationRules(ctx context.Context, options map[string]any) ([]models.CreationRule, error) {
	var rules []models.CreationRule
	if err := c.do(ctx, http.MethodPost, pathRules, options, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

// ListContacts fetches the contact ids, then every contact concurrently.
// The listing order is kept.
func (c *Client) ListContacts(ctx context.Context) ([]models.Record, error) {
	var ids []int64
	if err := c.do(ctx, http.MethodGet, pathContacts, nil, &ids); err != nil {
		return nil, err
	}

	records := make([]models.Record, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			var rec models.Record
			path := pathContacts + "/" + strconv.FormatInt(id, 10)
			if err := c.do(gctx, http.MethodGet, path, nil, &rec); err != nil {
				return err
			}
			records[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

// ListExpandedContacts fetches every contact in one call. Entries the
// registrar failed to load carry an error and no value.
func (c *Client) ListExpandedContacts(ctx context.Context) ([]models.ExpandedRecord, error) {
	var entries []models.ExpandedRecord
	if err := c.do(ctx, http.MethodGet, pathContacts+"?expand=true", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// CreateContact posts the contact fields and returns the assigned id.
func (c *Client) CreateContact(ctx context.Context, contact models.Contact) (int64, error) {
	var created models.Record
	if err := c.do(ctx, http.MethodPost, pathContacts, contact.Fields, &created); err != nil {
		return 0, err
	}
	stored := models.NewContact(created)
	if stored.ID == nil {
		return 0, fmt.Errorf("%s %s: response carries no contact id", http.MethodPost, pathContacts)
	}
	return *stored.ID, nil
}

// apiError is the registrar's error payload.
type apiError struct {
	Message   string `json:"message"`
	ErrorCode string `json:"errorCode,omitempty"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if c.breaker == nil {
		return c.roundTrip(ctx, method, path, body, out)
	}
	if !c.breaker.Allow() {
		return fmt.Errorf("%s %s: %w: circuit %s open", method, path, sentinel.ErrUnavailable, c.breaker.Name())
	}

	err := c.roundTrip(ctx, method, path, body, out)
	if errors.Is(err, sentinel.ErrUnavailable) {
		if _, change := c.breaker.RecordFailure(); change.Opened {
			c.logger.WarnContext(ctx, "registrar circuit opened", "breaker", c.breaker.Name(), "error", err)
		}
		return err
	}
	if ctx.Err() == nil {
		if _, change := c.breaker.RecordSuccess(); change.Closed {
			c.logger.InfoContext(ctx, "registrar circuit closed", "breaker", c.breaker.Name())
		}
	}
	return err
}

func (c *Client) roundTrip(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: encode body: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if requestID := requestcontext.RequestID(ctx); requestID != "" {
		req.Header.Set(headerRequestID, requestID)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s %s: %w", method, path, ctxErr)
		}
		return fmt.Errorf("%s %s: %w: %w", method, path, sentinel.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "registrar call",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%s %s: read body: %w: %w", method, path, sentinel.ErrUnavailable, err)
	}
	if err := statusError(resp.StatusCode, data); err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s %s: decode body: %w: %w", method, path, sentinel.ErrUnavailable, err)
	}
	return nil
}

// statusError maps a non-2xx registrar response onto the sentinel errors.
func statusError(status int, body []byte) error {
	if status >= 200 && status < 300 {
		return nil
	}
	var payload apiError
	_ = json.Unmarshal(body, &payload)
	message := payload.Message
	if message == "" {
		message = http.StatusText(status)
	}

	var kind error
	switch {
	case status == http.StatusNotFound:
		kind = sentinel.ErrNotFound
	case status == http.StatusConflict:
		kind = sentinel.ErrConflict
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		kind = sentinel.ErrRejected
	case status >= 500:
		kind = sentinel.ErrUnavailable
	default:
		return fmt.Errorf("registrar returned status %d: %s", status, message)
	}
	return fmt.Errorf("%w: %s", kind, message)
}
