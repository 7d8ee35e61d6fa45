// Package cache provides fetch-once snapshots with single-flight coalescing.
package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// FetchFunc loads the value a Snapshot memoizes.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// Observer receives snapshot cache events.
type Observer interface {
	ObserveHit(name string)
	ObserveMiss(name string)
	ObserveFetch(name string, duration time.Duration, err error)
}

// Option configures a Snapshot.
type Option func(*options)

type options struct {
	observer Observer
}

// WithObserver reports hits, misses and fetches to o.
func WithObserver(o Observer) Option {
	return func(opts *options) {
		opts.observer = o
	}
}

// Snapshot memoizes one value: Empty -> Fetching -> Cached.
//
// Concurrent callers of an empty snapshot share a single fetch. The value is
// published only once the fetch succeeds; failures leave the snapshot empty.
// The shared fetch ignores caller cancellation, so a caller that gives up
// still lets the fetch populate the snapshot for later callers.
type Snapshot[T any] struct {
	name     string
	fetch    FetchFunc[T]
	observer Observer
	group    singleflight.Group

	mu         sync.RWMutex
	value      T
	loaded     bool
	generation uint64
}

// NewSnapshot builds an empty snapshot named name.
func NewSnapshot[T any](name string, fetch FetchFunc[T], opts ...Option) *Snapshot[T] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	return &Snapshot[T]{name: name, fetch: fetch, observer: o.observer}
}

// Name identifies the snapshot in logs and metrics.
func (s *Snapshot[T]) Name() string {
	return s.name
}

// Get returns the cached value, fetching it on first use.
func (s *Snapshot[T]) Get(ctx context.Context) (T, error) {
	if v, ok := s.cached(); ok {
		s.hit()
		return v, nil
	}
	s.miss()

	ch := s.group.DoChan(s.name, func() (any, error) {
		if v, ok := s.cached(); ok {
			return v, nil
		}
		generation := s.currentGeneration()
		start := time.Now()
		v, err := s.fetch(context.WithoutCancel(ctx))
		s.fetched(time.Since(start), err)
		if err != nil {
			return nil, err
		}
		s.store(v, generation)
		return v, nil
	})

	var zero T
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}

// Peek returns the cached value without fetching.
func (s *Snapshot[T]) Peek() (T, bool) {
	return s.cached()
}

// Invalidate empties the snapshot. A fetch already in flight completes for
// its callers but does not repopulate the snapshot.
func (s *Snapshot[T]) Invalidate() {
	s.mu.Lock()
	var zero T
	s.value = zero
	s.loaded = false
	s.generation++
	s.mu.Unlock()
	s.group.Forget(s.name)
}

func (s *Snapshot[T]) cached() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value, s.loaded
}

func (s *Snapshot[T]) currentGeneration() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

func (s *Snapshot[T]) store(v T, generation uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if generation != s.generation {
		return
	}
	s.value = v
	s.loaded = true
}

func (s *Snapshot[T]) hit() {
	if s.observer != nil {
		s.observer.ObserveHit(s.name)
	}
}

func (s *Snapshot[T]) miss() {
	if s.observer != nil {
		s.observer.ObserveMiss(s.name)
	}
}

func (s *Snapshot[T]) fetched(d time.Duration, err error) {
	if s.observer != nil {
		s.observer.ObserveFetch(s.name, d, err)
	}
}
