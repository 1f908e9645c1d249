package connectivity

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStatus_Online(t *testing.T) {
	tests := []struct {
		name string
		st   Status
		want bool
	}{
		{"both", Status{Connected: true, InternetReachable: true}, true},
		{"link only", Status{Connected: true}, false},
		{"reachable without link", Status{InternetReachable: true}, false},
		{"neither", Status{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.st.Online())
		})
	}
}

func TestGate_StartsOnline(t *testing.T) {
	g := NewGate(testLogger())
	assert.True(t, g.Online())
}

func TestMonitor_Notify(t *testing.T) {
	g := NewGate(testLogger())
	m := NewMonitor(g, ProbeFunc(func(context.Context) Status { return Status{} }), time.Hour, testLogger())

	m.Notify(Status{Connected: true, InternetReachable: false})
	assert.False(t, g.Online())

	m.Notify(Status{Connected: true, InternetReachable: true})
	assert.True(t, g.Online())
}

func TestMonitor_Sample(t *testing.T) {
	g := NewGate(testLogger())
	online := false
	m := NewMonitor(g, ProbeFunc(func(context.Context) Status {
		return Status{Connected: true, InternetReachable: online}
	}), time.Hour, testLogger())

	m.Sample(context.Background())
	assert.False(t, g.Online())

	online = true
	m.Sample(context.Background())
	assert.True(t, g.Online())
}

func TestMonitor_Run_PollsUntilCanceled(t *testing.T) {
	g := NewGate(testLogger())
	var calls atomic.Int32
	m := NewMonitor(g, ProbeFunc(func(context.Context) Status {
		calls.Add(1)
		return Status{Connected: true}
	}), 5*time.Millisecond, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Run(ctx) }()

	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, time.Millisecond)
	assert.False(t, g.Online())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop")
	}
}

func TestMonitor_Sample_IgnoresCanceledProbe(t *testing.T) {
	g := NewGate(testLogger())
	m := NewMonitor(g, ProbeFunc(func(context.Context) Status { return Status{} }), time.Hour, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m.Sample(ctx)
	assert.True(t, g.Online(), "a canceled probe must not flip the gate")
}

func TestNewMonitor_DefaultInterval(t *testing.T) {
	m := NewMonitor(NewGate(nil), ProbeFunc(func(context.Context) Status { return Status{} }), 0, nil)
	assert.Equal(t, DefaultInterval, m.interval)
}
