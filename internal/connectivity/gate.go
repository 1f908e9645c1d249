// Package connectivity tracks whether the catalog API is reachable.
package connectivity

import (
	"context"
	"log/slog"
	"time"

	"go.uber.org/atomic"
)

// DefaultInterval is how often the monitor samples its probe.
const DefaultInterval = 30 * time.Second

// Status is one probe observation.
type Status struct {
	Connected         bool `json:"connected"`
	InternetReachable bool `json:"internet_reachable"`
}

// Online reports whether the observation counts as online. A link-layer
// connection without internet reachability is offline.
func (s Status) Online() bool {
	return s.Connected && s.InternetReachable
}

// Gate holds the last known reachability. Reads never block.
// It starts online so the first fetch is attempted before any probe completes.
type Gate struct {
	online *atomic.Bool
	log    *slog.Logger
}

// NewGate creates a gate in the online state.
func NewGate(log *slog.Logger) *Gate {
	if log == nil {
		log = slog.Default()
	}
	return &Gate{
		online: atomic.NewBool(true),
		log:    log,
	}
}

// Online returns the last known reachability.
func (g *Gate) Online() bool {
	return g.online.Load()
}

func (g *Gate) update(st Status) {
	now := st.Online()
	if was := g.online.Swap(now); was != now {
		g.log.Info("connectivity changed",
			"online", now,
			"connected", st.Connected,
			"internet_reachable", st.InternetReachable)
	}
}

// Probe samples current reachability.
type Probe interface {
	Check(ctx context.Context) Status
}

// ProbeFunc adapts a function to Probe.
type ProbeFunc func(ctx context.Context) Status

// Check implements Probe.
func (f ProbeFunc) Check(ctx context.Context) Status { return f(ctx) }

// Monitor feeds a Gate from a probe on a fixed interval and from pushed
// platform notifications.
type Monitor struct {
	gate     *Gate
	probe    Probe
	interval time.Duration
	log      *slog.Logger
}

// NewMonitor creates a monitor. A non-positive interval uses DefaultInterval.
func NewMonitor(gate *Gate, probe Probe, interval time.Duration, log *slog.Logger) *Monitor {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if log == nil {
		log = slog.Default()
	}
	return &Monitor{
		gate:     gate,
		probe:    probe,
		interval: interval,
		log:      log,
	}
}

// Run probes immediately and then on every tick until ctx is canceled.
func (m *Monitor) Run(ctx context.Context) error {
	m.log.Debug("connectivity monitor started", "interval", m.interval)
	m.Sample(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.log.Debug("connectivity monitor stopped")
			return nil
		case <-ticker.C:
			m.Sample(ctx)
		}
	}
}

// Sample runs the probe once and records the result.
func (m *Monitor) Sample(ctx context.Context) {
	st := m.probe.Check(ctx)
	if ctx.Err() != nil {
		// A probe cut short by shutdown says nothing about the network.
		return
	}
	m.gate.update(st)
}

// Notify records a status pushed by the platform's connectivity signal.
func (m *Monitor) Notify(st Status) {
	m.gate.update(st)
}
