// Package translate resolves enum label lookup keys to display labels.
// Every implementation answers a missing label with the key itself.
package translate

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Translator resolves a lookup key to a display label.
type Translator interface {
	Translate(ctx context.Context, key string) (string, error)
}

// Catalog is an in-memory label table.
type Catalog map[string]string

// Translate returns the label for key, or key when the catalog has none.
func (c Catalog) Translate(_ context.Context, key string) (string, error) {
	if label, ok := c[key]; ok && label != "" {
		return label, nil
	}
	return key, nil
}

// Memo caches the labels resolved by another Translator. Failed lookups are
// not cached.
type Memo struct {
	next   Translator
	labels *gocache.Cache
}

// NewMemo wraps next, keeping each label for ttl.
func NewMemo(next Translator, ttl time.Duration) *Memo {
	return &Memo{
		next:   next,
		labels: gocache.New(ttl, 2*ttl),
	}
}

func (m *Memo) Translate(ctx context.Context, key string) (string, error) {
	if cached, ok := m.labels.Get(key); ok {
		return cached.(string), nil
	}
	label, err := m.next.Translate(ctx, key)
	if err != nil {
		return "", err
	}
	m.labels.SetDefault(key, label)
	return label, nil
}

// Flush drops every memoized label.
func (m *Memo) Flush() {
	m.labels.Flush()
}
