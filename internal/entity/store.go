package entity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/dgraph-io/ristretto"

	"github.com/vmunix/marquee/internal/kv"
)

const (
	// DefaultHotRecords bounds the in-memory record cache.
	DefaultHotRecords = 1000

	keyPrefix = "entity_"
)

// Store persists records in a kv.Backend with a hot in-memory cache.
// Writes to one (kind, id) are serialized; different ids never contend.
type Store struct {
	backend kv.Backend
	hot     *ristretto.Cache
	locks   *keyedMutex
	now     func() time.Time
	log     *slog.Logger

	hotRecords int64
}

// Option configures a Store.
type Option func(*Store)

// WithHotRecords sets the number of records kept in memory.
func WithHotRecords(n int64) Option {
	return func(s *Store) {
		if n > 0 {
			s.hotRecords = n
		}
	}
}

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) {
		s.log = log
	}
}

// New creates a Store over backend. The backend is owned by the caller.
func New(backend kv.Backend, opts ...Option) (*Store, error) {
	s := &Store{
		backend:    backend,
		locks:      newKeyedMutex(),
		now:        time.Now,
		hotRecords: DefaultHotRecords,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = slog.Default()
	}

	hot, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: s.hotRecords * 10,
		MaxCost:     s.hotRecords,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create hot record cache: %w", err)
	}
	s.hot = hot
	return s, nil
}

// Close releases the hot cache.
func (s *Store) Close() error {
	s.hot.Close()
	return nil
}

func storageKey(kind Kind, id int64) string {
	return keyPrefix + string(kind) + "_" + strconv.FormatInt(id, 10)
}

// load reads a record, returning nil when absent. Callers hold the id lock.
func (s *Store) load(ctx context.Context, key string) (*Record, error) {
	if v, ok := s.hot.Get(key); ok {
		r := v.(Record)
		return &r, nil
	}

	data, err := s.backend.Get(ctx, key)
	if errors.Is(err, kv.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read record %s: %w", key, err)
	}

	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode record %s: %w", key, err)
	}
	s.hot.Set(key, r, 1)
	return &r, nil
}

// save writes a record, then refreshes the hot cache. Callers hold the id lock.
//
// Del is applied synchronously and queued behind any buffered Set for key,
// so a dropped Set below leaves a miss rather than an older record.
func (s *Store) save(ctx context.Context, key string, r Record) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode record %s: %w", key, err)
	}
	s.hot.Del(key)
	if err := s.backend.Put(ctx, key, data); err != nil {
		return fmt.Errorf("write record %s: %w", key, err)
	}
	s.hot.Set(key, r, 1)
	return nil
}

// update runs a read-merge-write cycle under the id lock.
func (s *Store) update(ctx context.Context, kind Kind, id int64, merge func(*Record) (Record, error)) error {
	if !kind.valid() {
		return fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}
	key := storageKey(kind, id)
	unlock := s.locks.Lock(key)
	defer unlock()

	existing, err := s.load(ctx, key)
	if err != nil {
		return err
	}
	r, err := merge(existing)
	if err != nil {
		return err
	}
	return s.save(ctx, key, r)
}

// UpsertBasic writes basic-tier fields, creating the record if needed.
func (s *Store) UpsertBasic(ctx context.Context, kind Kind, id int64, in BasicFields) error {
	return s.update(ctx, kind, id, func(existing *Record) (Record, error) {
		return MergeBasic(existing, kind, id, in, s.now()), nil
	})
}

// UpsertDetails writes media-tier fields, creating the record if needed.
// Nil cast, crew or videos keep the stored lists.
func (s *Store) UpsertDetails(ctx context.Context, kind Kind, id int64, in DetailFields, cast []CastMember, crew []CrewMember, videos []Video) error {
	return s.update(ctx, kind, id, func(existing *Record) (Record, error) {
		return MergeDetails(existing, kind, id, in, cast, crew, videos, s.now()), nil
	})
}

// UpsertAI writes AI-tier fields. It returns ErrNotFound when no record
// exists for (kind, id).
func (s *Store) UpsertAI(ctx context.Context, kind Kind, id int64, in AIFields) error {
	return s.update(ctx, kind, id, func(existing *Record) (Record, error) {
		return MergeAI(existing, in, s.now())
	})
}

// Get returns the record for (kind, id) or ErrNotFound. The returned record
// is a copy; its slices are shared with the cache and must not be modified.
func (s *Store) Get(ctx context.Context, kind Kind, id int64) (*Record, error) {
	if !kind.valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}
	key := storageKey(kind, id)
	if v, ok := s.hot.Get(key); ok {
		r := v.(Record)
		return &r, nil
	}

	unlock := s.locks.Lock(key)
	defer unlock()

	r, err := s.load(ctx, key)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, ErrNotFound
	}
	return r, nil
}

// NeedsRefresh reports whether the tier of (kind, id) should be fetched
// again: the record is missing, or the tier was never written or is older
// than its TTL.
func (s *Store) NeedsRefresh(ctx context.Context, kind Kind, id int64, tier Tier) (bool, error) {
	r, err := s.Get(ctx, kind, id)
	if errors.Is(err, ErrNotFound) {
		return true, nil
	}
	if err != nil {
		return true, err
	}
	return r.Stale(tier, s.now()), nil
}

// BatchUpsertBasic upserts each item by its ID. A failing item is logged
// and skipped; the failures are returned joined.
func (s *Store) BatchUpsertBasic(ctx context.Context, kind Kind, items []BasicFields) error {
	var errs []error
	for _, item := range items {
		if err := s.UpsertBasic(ctx, kind, item.ID, item); err != nil {
			s.log.Warn("entity upsert failed", "kind", kind, "id", item.ID, "error", err)
			errs = append(errs, fmt.Errorf("%s %d: %w", kind, item.ID, err))
		}
	}
	return errors.Join(errs...)
}
