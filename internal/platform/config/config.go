package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	str "regcontacts/pkg/platform/strings"
)

// Server captures process level configuration.
type Server struct {
	Addr      string
	LogLevel  string
	LogFormat string

	Registrar Registrar
	Contacts  Contacts
	Redis     RedisConfig
}

// Registrar configures the upstream registrar API client.
type Registrar struct {
	BaseURL     string
	Timeout     time.Duration
	Concurrency int

	// BreakerFailures consecutive outages open the circuit; 0 disables it.
	BreakerFailures int
	BreakerCooldown time.Duration
}

// Contacts configures the contact orchestrator.
type Contacts struct {
	ListMode          string
	TranslationPrefix string
	CountryKeyedPaths []string
	LabelCacheTTL     time.Duration
	LabelsHash        string
	SeedLabels        bool
	FilterCacheTTL    time.Duration
}

// RedisConfig configures the label catalog connection. An empty URL disables
// Redis and the built-in labels are served instead.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	var errs []error
	duration := func(key string, def time.Duration) time.Duration {
		raw := os.Getenv(key)
		if raw == "" {
			return def
		}
		d, err := time.ParseDuration(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
			return def
		}
		return d
	}
	boolean := func(key string, def bool) bool {
		raw := os.Getenv(key)
		if raw == "" {
			return def
		}
		b, err := strconv.ParseBool(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
			return def
		}
		return b
	}
	integer := func(key string, def int) int {
		raw := os.Getenv(key)
		if raw == "" {
			return def
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
			return def
		}
		return n
	}

	cfg := Server{
		Addr:      getenv("REGCONTACTS_ADDR", ":8080"),
		LogLevel:  getenv("LOG_LEVEL", "info"),
		LogFormat: getenv("LOG_FORMAT", "json"),
		Registrar: Registrar{
			BaseURL:     getenv("REGISTRAR_BASE_URL", "http://localhost:9090/1.0"),
			Timeout:     duration("REGISTRAR_TIMEOUT", 10*time.Second),
			Concurrency: integer("REGISTRAR_CONCURRENCY", 8),

			BreakerFailures: integer("REGISTRAR_BREAKER_FAILURES", 5),
			BreakerCooldown: duration("REGISTRAR_BREAKER_COOLDOWN", 30*time.Second),
		},
		Contacts: Contacts{
			ListMode:          getenv("CONTACT_LIST_MODE", "flat"),
			TranslationPrefix: getenv("TRANSLATION_PREFIX", "contact_form"),
			CountryKeyedPaths: str.SplitList(getenv("COUNTRY_KEYED_PATHS", "address.province")),
			LabelCacheTTL:     duration("LABEL_CACHE_TTL", 10*time.Minute),
			LabelsHash:        getenv("LABELS_HASH", "regcontacts:labels"),
			SeedLabels:        boolean("SEED_LABELS", false),
			FilterCacheTTL:    duration("FILTER_CACHE_TTL", 10*time.Minute),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     integer("REDIS_POOL_SIZE", 10),
			MinIdleConns: integer("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  duration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  duration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: duration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
	}
	if len(errs) > 0 {
		return Server{}, fmt.Errorf("invalid configuration: %w", errs[0])
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
