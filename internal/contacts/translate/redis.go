package translate

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"regcontacts/pkg/platform/sentinel"
)

// DefaultLabelsHash is the Redis hash holding the label catalog.
const DefaultLabelsHash = "regcontacts:labels"

// RedisCatalog reads labels from a Redis hash keyed by lookup key.
type RedisCatalog struct {
	client redis.Cmdable
	hash   string
}

// RedisCatalogOption configures a RedisCatalog instance.
type RedisCatalogOption func(*RedisCatalog)

// WithHash overrides the hash name.
func WithHash(hash string) RedisCatalogOption {
	return func(c *RedisCatalog) {
		c.hash = hash
	}
}

// NewRedisCatalog constructs a Redis-backed label catalog.
func NewRedisCatalog(client redis.Cmdable, opts ...RedisCatalogOption) *RedisCatalog {
	c := &RedisCatalog{client: client, hash: DefaultLabelsHash}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Translate returns the label stored under key, or key when there is none.
func (c *RedisCatalog) Translate(ctx context.Context, key string) (string, error) {
	label, err := c.client.HGet(ctx, c.hash, key).Result()
	if errors.Is(err, redis.Nil) || (err == nil && label == "") {
		return key, nil
	}
	if err != nil {
		return "", fmt.Errorf("read label %q: %w: %w", key, sentinel.ErrUnavailable, err)
	}
	return label, nil
}

// Load stores labels in the catalog, replacing existing entries.
func (c *RedisCatalog) Load(ctx context.Context, labels Catalog) error {
	if len(labels) == 0 {
		return nil
	}
	values := make(map[string]any, len(labels))
	for key, label := range labels {
		values[key] = label
	}
	if err := c.client.HSet(ctx, c.hash, values).Err(); err != nil {
		return fmt.Errorf("load labels: %w", err)
	}
	return nil
}
