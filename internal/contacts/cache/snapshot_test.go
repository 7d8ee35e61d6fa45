package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

// =============================================================================
// Snapshot Test Suite
// =============================================================================
// Justification for unit tests: coalescing and cancellation behaviour depends on
// goroutine interleavings that HTTP-level tests cannot pin down.

type SnapshotSuite struct {
	suite.Suite
	calls atomic.Int32
}

func TestSnapshotSuite(t *testing.T) {
	suite.Run(t, new(SnapshotSuite))
}

func (s *SnapshotSuite) SetupTest() {
	s.calls.Store(0)
}

func (s *SnapshotSuite) countingFetch(value string) FetchFunc[string] {
	return func(context.Context) (string, error) {
		s.calls.Add(1)
		return value, nil
	}
}

func (s *SnapshotSuite) TestFetchOnce() {
	snap := NewSnapshot("identity", s.countingFetch("nic-1"))

	for i := 0; i < 3; i++ {
		v, err := snap.Get(context.Background())
		s.Require().NoError(err)
		s.Equal("nic-1", v)
	}
	s.Equal(int32(1), s.calls.Load())
}

func (s *SnapshotSuite) TestConcurrentCallersShareOneFetch() {
	release := make(chan struct{})
	snap := NewSnapshot("schema", func(context.Context) (string, error) {
		s.calls.Add(1)
		<-release
		return "schema", nil
	})

	const callers = 16
	var wg sync.WaitGroup
	results := make(chan string, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := snap.Get(context.Background())
			if err == nil {
				results <- v
			}
		}()
	}

	s.Eventually(func() bool { return s.calls.Load() == 1 }, time.Second, time.Millisecond)
	close(release)
	wg.Wait()
	close(results)

	count := 0
	for v := range results {
		s.Equal("schema", v)
		count++
	}
	s.Equal(callers, count)
	s.Equal(int32(1), s.calls.Load())
}

func (s *SnapshotSuite) TestErrorsAreNotCached() {
	fail := true
	snap := NewSnapshot("identity", func(context.Context) (string, error) {
		s.calls.Add(1)
		if fail {
			return "", errors.New("registrar down")
		}
		return "nic-1", nil
	})

	_, err := snap.Get(context.Background())
	s.Error(err)
	_, ok := snap.Peek()
	s.False(ok)

	fail = false
	v, err := snap.Get(context.Background())
	s.NoError(err)
	s.Equal("nic-1", v)
	s.Equal(int32(2), s.calls.Load())
}

func (s *SnapshotSuite) TestCancelledCallerStillPopulatesCache() {
	release := make(chan struct{})
	done := make(chan struct{})
	snap := NewSnapshot("schema", func(ctx context.Context) (string, error) {
		defer close(done)
		s.calls.Add(1)
		<-release
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "schema", nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := snap.Get(ctx)
		errCh <- err
	}()

	s.Eventually(func() bool { return s.calls.Load() == 1 }, time.Second, time.Millisecond)
	cancel()
	s.ErrorIs(<-errCh, context.Canceled)

	close(release)
	<-done
	s.Eventually(func() bool {
		_, ok := snap.Peek()
		return ok
	}, time.Second, time.Millisecond)

	v, err := snap.Get(context.Background())
	s.NoError(err)
	s.Equal("schema", v)
	s.Equal(int32(1), s.calls.Load())
}

func (s *SnapshotSuite) TestInvalidate() {
	snap := NewSnapshot("identity", s.countingFetch("nic-1"))

	_, err := snap.Get(context.Background())
	s.Require().NoError(err)
	snap.Invalidate()
	_, ok := snap.Peek()
	s.False(ok)

	_, err = snap.Get(context.Background())
	s.Require().NoError(err)
	s.Equal(int32(2), s.calls.Load())
}

func (s *SnapshotSuite) TestInvalidateDuringFetchDiscardsResult() {
	release := make(chan struct{})
	snap := NewSnapshot("identity", func(context.Context) (string, error) {
		s.calls.Add(1)
		<-release
		return "stale", nil
	})

	errCh := make(chan error, 1)
	go func() {
		_, err := snap.Get(context.Background())
		errCh <- err
	}()
	s.Eventually(func() bool { return s.calls.Load() == 1 }, time.Second, time.Millisecond)

	snap.Invalidate()
	close(release)
	s.NoError(<-errCh)

	_, ok := snap.Peek()
	s.False(ok)
}

type recordingObserver struct {
	mu      sync.Mutex
	hits    int
	misses  int
	fetches int
}

func (o *recordingObserver) ObserveHit(string)  { o.mu.Lock(); o.hits++; o.mu.Unlock() }
func (o *recordingObserver) ObserveMiss(string) { o.mu.Lock(); o.misses++; o.mu.Unlock() }
func (o *recordingObserver) ObserveFetch(string, time.Duration, error) {
	o.mu.Lock()
	o.fetches++
	o.mu.Unlock()
}

func (s *SnapshotSuite) TestObserver() {
	obs := &recordingObserver{}
	snap := NewSnapshot("identity", s.countingFetch("nic-1"), WithObserver(obs))

	for i := 0; i < 3; i++ {
		_, err := snap.Get(context.Background())
		s.Require().NoError(err)
	}
	s.Equal(2, obs.hits)
	s.Equal(1, obs.misses)
	s.Equal(1, obs.fetches)
	s.Equal("identity", snap.Name())
}
