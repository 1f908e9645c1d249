package dispatch

import "go.uber.org/atomic"

// metrics counts dispatch outcomes.
type metrics struct {
	remoteOK     *atomic.Int64
	remoteFailed *atomic.Int64
	cacheServed  *atomic.Int64
	noData       *atomic.Int64
}

func newMetrics() *metrics {
	return &metrics{
		remoteOK:     atomic.NewInt64(0),
		remoteFailed: atomic.NewInt64(0),
		cacheServed:  atomic.NewInt64(0),
		noData:       atomic.NewInt64(0),
	}
}

// Metrics is a point-in-time view of dispatch outcomes.
type Metrics struct {
	RemoteOK     int64  `json:"remote_ok"`
	RemoteFailed int64  `json:"remote_failed"`
	CacheServed  int64  `json:"cache_served"`
	NoData       int64  `json:"no_data"`
	Breaker      string `json:"breaker"`
}

// Metrics returns current counters and the circuit breaker state.
func (d *Dispatcher) Metrics() Metrics {
	return Metrics{
		RemoteOK:     d.metrics.remoteOK.Load(),
		RemoteFailed: d.metrics.remoteFailed.Load(),
		CacheServed:  d.metrics.cacheServed.Load(),
		NoData:       d.metrics.noData.Load(),
		Breaker:      d.breaker.State().String(),
	}
}
