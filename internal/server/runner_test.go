// internal/server/runner_test.go
package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type countingSweeper struct {
	calls atomic.Int64
	err   error
}

func (s *countingSweeper) Sweep(_ context.Context) (int, error) {
	s.calls.Inc()
	return 1, s.err
}

type blockingMonitor struct {
	started atomic.Bool
}

func (m *blockingMonitor) Run(ctx context.Context) error {
	m.started.Store(true)
	<-ctx.Done()
	return nil
}

type failingMonitor struct{}

func (failingMonitor) Run(context.Context) error {
	return errors.New("probe misconfigured")
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
}

func listen(t *testing.T) net.Listener {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	return ln
}

func TestNewRunner_Defaults(t *testing.T) {
	r := NewRunner(Config{}, okHandler(), nil, nil, nil)
	assert.Equal(t, DefaultShutdownTimeout, r.config.ShutdownTimeout)
	assert.NotNil(t, r.logger)
}

func TestRunner_ServesUntilCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	monitor := &blockingMonitor{}
	sweeper := &countingSweeper{}
	r := NewRunner(Config{SweepInterval: 10 * time.Millisecond}, okHandler(), monitor, sweeper, testLogger())

	ln := listen(t)
	done := make(chan error, 1)
	go func() { done <- r.Serve(ctx, ln) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	require.Eventually(t, func() bool { return sweeper.calls.Load() >= 2 }, 2*time.Second, 5*time.Millisecond)
	assert.True(t, monitor.started.Load())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("runner did not stop after cancel")
	}
}

func TestRunner_SweepErrorsDoNotStop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sweeper := &countingSweeper{err: errors.New("backend unavailable")}
	r := NewRunner(Config{SweepInterval: 5 * time.Millisecond}, okHandler(), nil, sweeper, testLogger())

	done := make(chan error, 1)
	go func() { done <- r.Serve(ctx, listen(t)) }()

	require.Eventually(t, func() bool { return sweeper.calls.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)
	cancel()
	assert.NoError(t, <-done)
}

func TestRunner_SweepDisabled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sweeper := &countingSweeper{}
	r := NewRunner(Config{}, okHandler(), nil, sweeper, testLogger())

	done := make(chan error, 1)
	go func() { done <- r.Serve(ctx, listen(t)) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	require.NoError(t, <-done)
	assert.Zero(t, sweeper.calls.Load())
}

func TestRunner_MonitorFailureStopsServer(t *testing.T) {
	r := NewRunner(Config{}, okHandler(), failingMonitor{}, nil, testLogger())

	done := make(chan error, 1)
	go func() { done <- r.Serve(context.Background(), listen(t)) }()

	select {
	case err := <-done:
		assert.ErrorContains(t, err, "probe misconfigured")
	case <-time.After(5 * time.Second):
		t.Fatal("runner did not stop after monitor failure")
	}
}

func TestRunner_ListenError(t *testing.T) {
	ln := listen(t)
	defer func() { _ = ln.Close() }()

	r := NewRunner(Config{Addr: ln.Addr().String()}, okHandler(), nil, nil, testLogger())
	err := r.Run(context.Background())
	assert.ErrorContains(t, err, "listen")
}
