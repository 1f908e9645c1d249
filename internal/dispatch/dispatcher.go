// Package dispatch runs remote catalog fetches online-first and falls back
// to the TTL Store when the device is offline or the remote fails.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"

	"github.com/vmunix/marquee/internal/cache"
)

const (
	// DefaultMaxFailures is the number of consecutive remote failures that
	// opens the breaker.
	DefaultMaxFailures = 5
	// DefaultOpenTimeout is how long the breaker stays open before probing.
	DefaultOpenTimeout = 30 * time.Second

	tracerName = "github.com/vmunix/marquee/internal/dispatch"
)

// Connectivity reports the last known reachability of the remote catalog.
type Connectivity interface {
	Online() bool
}

// Cache is the subset of the TTL Store the dispatcher reads and writes.
type Cache interface {
	Set(ctx context.Context, key cache.Key, payload any, ttl time.Duration) error
	GetInto(ctx context.Context, key cache.Key, dst any) error
}

// Dispatcher wraps remote calls with connectivity gating, a circuit breaker,
// duplicate suppression and cache write-through.
type Dispatcher struct {
	gate    Connectivity
	cache   Cache
	breaker *gobreaker.CircuitBreaker
	group   singleflight.Group
	tracer  trace.Tracer
	metrics *metrics
	log     *slog.Logger

	maxFailures uint32
	openTimeout time.Duration
	permanent   func(error) bool
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithBreaker sets the consecutive failure threshold and open timeout.
func WithBreaker(maxFailures uint32, openTimeout time.Duration) Option {
	return func(d *Dispatcher) {
		if maxFailures > 0 {
			d.maxFailures = maxFailures
		}
		if openTimeout > 0 {
			d.openTimeout = openTimeout
		}
	}
}

// WithPermanentErrors marks fetch errors that describe the request rather
// than the remote's health, such as an unknown id. They still fall back to
// the cache but never count toward opening the breaker.
func WithPermanentErrors(fn func(error) bool) Option {
	return func(d *Dispatcher) {
		d.permanent = fn
	}
}

// WithTracer sets the tracer used for per-call spans.
func WithTracer(t trace.Tracer) Option {
	return func(d *Dispatcher) {
		d.tracer = t
	}
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(d *Dispatcher) {
		d.log = log
	}
}

// New creates a Dispatcher over the given gate and cache.
func New(gate Connectivity, c Cache, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		gate:        gate,
		cache:       c,
		metrics:     newMetrics(),
		maxFailures: DefaultMaxFailures,
		openTimeout: DefaultOpenTimeout,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.log == nil {
		d.log = slog.Default()
	}
	if d.tracer == nil {
		d.tracer = otel.Tracer(tracerName)
	}
	d.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "catalog",
		MaxRequests: 1,
		Timeout:     d.openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= d.maxFailures
		},
		IsSuccessful: d.healthy,
		OnStateChange: func(name string, from, to gobreaker.State) {
			d.log.Info("circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	})
	return d
}

// healthy reports whether err leaves the remote's failure count untouched.
func (d *Dispatcher) healthy(err error) bool {
	return err == nil || (d.permanent != nil && d.permanent(err))
}

// Online reports the gate state.
func (d *Dispatcher) Online() bool {
	return d.gate.Online()
}

// Execute fetches key online-first. On success the result is written through
// to the cache with ttl (ttl <= 0 uses the kind's policy). When offline or the
// fetch fails, the cached value is returned. When neither yields data the
// error is a *NoDataError.
//
// The remote fetch and write-through run detached from ctx cancellation so
// an abandoned request still populates the cache. Concurrent calls for the
// same key share a single fetch.
func Execute[T any](ctx context.Context, d *Dispatcher, key cache.Key, ttl time.Duration, fetch func(context.Context) (T, error)) (T, error) {
	ctx, span := d.tracer.Start(ctx, "dispatch.Execute", trace.WithAttributes(
		attribute.String("cache.kind", string(key.Kind)),
		attribute.String("cache.key", key.String()),
	))
	defer span.End()

	var remoteErr error
	if d.gate.Online() {
		v, err := remote(ctx, d, key, ttl, fetch)
		if err == nil {
			d.metrics.remoteOK.Inc()
			span.SetAttributes(attribute.String("dispatch.source", "remote"))
			return v, nil
		}
		d.metrics.remoteFailed.Inc()
		remoteErr = fmt.Errorf("%w: %w", ErrRemoteFetchFailed, err)
		d.log.Warn("remote fetch failed", "key", key.String(), "error", err)
	} else {
		span.SetAttributes(attribute.Bool("dispatch.offline", true))
	}

	var cached T
	if err := d.cache.GetInto(ctx, key, &cached); err == nil {
		d.metrics.cacheServed.Inc()
		span.SetAttributes(attribute.String("dispatch.source", "cache"))
		if remoteErr != nil {
			d.log.Info("serving cached data after remote failure", "key", key.String())
		}
		return cached, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		d.log.Warn("cache read failed", "key", key.String(), "error", err)
	}

	d.metrics.noData.Inc()
	noData := &NoDataError{Key: key, Cause: remoteErr}
	span.RecordError(noData)
	span.SetStatus(codes.Error, ErrNoDataAvailable.Error())
	var zero T
	return zero, noData
}

// remote runs fetch through the breaker and the singleflight group, writing
// the result to the cache once per shared fetch.
func remote[T any](ctx context.Context, d *Dispatcher, key cache.Key, ttl time.Duration, fetch func(context.Context) (T, error)) (T, error) {
	var zero T
	detached := context.WithoutCancel(ctx)

	ch := d.group.DoChan(key.String(), func() (any, error) {
		v, err := d.breaker.Execute(func() (any, error) {
			return fetch(detached)
		})
		if err != nil {
			return nil, err
		}
		if err := d.cache.Set(detached, key, v, ttl); err != nil {
			d.log.Warn("cache write failed", "key", key.String(), "error", err)
		}
		return v, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		if res.Val == nil {
			return zero, nil
		}
		v, ok := res.Val.(T)
		if !ok {
			return zero, fmt.Errorf("unexpected result type %T for %s", res.Val, key)
		}
		return v, nil
	}
}
