// internal/cache/testutil_test.go
package cache

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vmunix/marquee/internal/kv"
)

// testLogger returns a discard logger for tests.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func setupTestBackend(t *testing.T) *kv.SQLite {
	t.Helper()

	b, err := kv.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })
	return b
}

func setupTestStore(t *testing.T, opts ...Option) (*Store, *kv.SQLite, *fakeClock) {
	t.Helper()

	b := setupTestBackend(t)
	clock := newFakeClock()
	opts = append([]Option{WithClock(clock.Now), WithLogger(testLogger())}, opts...)
	s, err := Open(context.Background(), b, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, b, clock
}

// failingBackend wraps a backend and fails Put or Delete when the
// matching flag is set.
type failingBackend struct {
	kv.Backend
	failPut    bool
	failDelete bool
}

var errDiskFull = errors.New("disk full")

func (f *failingBackend) Put(ctx context.Context, key string, value []byte) error {
	if f.failPut {
		return errDiskFull
	}
	return f.Backend.Put(ctx, key, value)
}

func (f *failingBackend) Delete(ctx context.Context, keys ...string) error {
	if f.failDelete {
		return errDiskFull
	}
	return f.Backend.Delete(ctx, keys...)
}
