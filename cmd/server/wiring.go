package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"regcontacts/internal/contacts/filter"
	"regcontacts/internal/contacts/handler"
	contactmetrics "regcontacts/internal/contacts/metrics"
	"regcontacts/internal/contacts/service"
	"regcontacts/internal/contacts/translate"
	"regcontacts/internal/contacts/upstream"
	"regcontacts/internal/platform/config"
	httpmetrics "regcontacts/internal/platform/metrics"
	"regcontacts/internal/platform/middleware"
	"regcontacts/internal/platform/redis"
	"regcontacts/pkg/platform/circuit"
	"regcontacts/pkg/platform/httputil"
	"regcontacts/pkg/platform/middleware/metadata"
)

type app struct {
	contacts *service.Service
	router   http.Handler
}

func buildApp(ctx context.Context, cfg config.Server, log *slog.Logger, reg *prometheus.Registry, redisClient *redis.Client) (*app, error) {
	clientOpts := []upstream.Option{
		upstream.WithLogger(log),
		upstream.WithConcurrency(cfg.Registrar.Concurrency),
	}
	if cfg.Registrar.BreakerFailures > 0 {
		clientOpts = append(clientOpts, upstream.WithBreaker(circuit.New("registrar",
			circuit.WithFailureThreshold(cfg.Registrar.BreakerFailures),
			circuit.WithCooldown(cfg.Registrar.BreakerCooldown),
		)))
	}
	registrar, err := upstream.New(cfg.Registrar.BaseURL, cfg.Registrar.Timeout, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("registrar client: %w", err)
	}

	translator, err := buildTranslator(ctx, cfg.Contacts, log, redisClient)
	if err != nil {
		return nil, err
	}

	mode, err := service.ParseListMode(cfg.Contacts.ListMode)
	if err != nil {
		return nil, err
	}

	contacts, err := service.New(registrar, registrar, registrar, registrar, translator,
		service.WithLogger(log),
		service.WithMetrics(contactmetrics.New(reg)),
		service.WithListMode(mode),
		service.WithCountryKeyedPaths(cfg.Contacts.CountryKeyedPaths),
		service.WithTranslationPrefix(cfg.Contacts.TranslationPrefix),
	)
	if err != nil {
		return nil, fmt.Errorf("contact service: %w", err)
	}

	filters := filter.NewCompiler(cfg.Contacts.FilterCacheTTL)
	h := handler.New(contacts, filters, log)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(metadata.ClientMetadata)
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logger(log))
	r.Use(httpmetrics.New(reg).Middleware)

	r.Get("/healthz", healthHandler(redisClient))
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	h.Register(r)

	return &app{contacts: contacts, router: r}, nil
}

// buildTranslator serves labels from Redis when configured, otherwise from
// the built-in catalog. Either way lookups are memoized.
func buildTranslator(ctx context.Context, cfg config.Contacts, log *slog.Logger, redisClient *redis.Client) (translate.Translator, error) {
	if redisClient == nil {
		log.Info("serving built-in labels")
		return translate.NewMemo(translate.DefaultLabels(), cfg.LabelCacheTTL), nil
	}

	catalog := translate.NewRedisCatalog(redisClient, translate.WithHash(cfg.LabelsHash))
	if cfg.SeedLabels {
		if err := catalog.Load(ctx, translate.DefaultLabels()); err != nil {
			return nil, fmt.Errorf("seed labels: %w", err)
		}
		log.Info("seeded label catalog", "hash", cfg.LabelsHash)
	}
	return translate.NewMemo(catalog, cfg.LabelCacheTTL), nil
}

func healthHandler(redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := redisClient.Health(ctx); err != nil {
			httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded", "redis": err.Error()})
			return
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
