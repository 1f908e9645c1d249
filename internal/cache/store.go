// Package cache provides a persistent TTL store for catalog API responses.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/vmunix/marquee/internal/kv"
)

const (
	// DefaultPrefix namespaces cache keys inside a shared backend.
	DefaultPrefix = "marquee_cache_"
	// DefaultMaxItems bounds the number of live entries.
	DefaultMaxItems = 500
	// DefaultMaxBytes bounds the cumulative serialized size of live entries.
	DefaultMaxBytes = 50 << 20

	// evictFraction of MaxItems is removed, oldest first, when the store is full.
	evictFraction = 0.3

	indexSuffix = "@index"
)

// entry is the serialized form of a cached value.
type entry struct {
	Key       string          `json:"key"`
	Kind      Kind            `json:"kind"`
	Payload   json.RawMessage `json:"payload"`
	StoredAt  time.Time       `json:"stored_at"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// meta mirrors an entry's bookkeeping so capacity checks need no backend scan.
type meta struct {
	kind      Kind
	storedAt  time.Time
	expiresAt time.Time
	size      int64
}

// Store is a TTL-bounded key/value cache with count and size eviction.
type Store struct {
	backend  kv.Backend
	policy   *Policy
	prefix   string
	maxItems int
	maxBytes int64
	now      func() time.Time
	log      *slog.Logger

	mu         sync.Mutex
	entries    map[string]meta
	totalBytes int64
}

// Option configures a Store.
type Option func(*Store)

// WithPrefix sets the storage key prefix.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// WithMaxItems sets the item count bound.
func WithMaxItems(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.maxItems = n
		}
	}
}

// WithMaxBytes sets the cumulative size bound.
func WithMaxBytes(n int64) Option {
	return func(s *Store) {
		if n > 0 {
			s.maxBytes = n
		}
	}
}

// WithPolicy sets the TTL policy.
func WithPolicy(p *Policy) Option {
	return func(s *Store) {
		if p != nil {
			s.policy = p
		}
	}
}

// WithClock sets the time source (for testing).
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// Open creates a Store over backend and loads its persisted index.
// Index keys whose payload is missing or unreadable are dropped while loading.
func Open(ctx context.Context, backend kv.Backend, opts ...Option) (*Store, error) {
	s := &Store{
		backend:  backend,
		policy:   DefaultPolicy(),
		prefix:   DefaultPrefix,
		maxItems: DefaultMaxItems,
		maxBytes: DefaultMaxBytes,
		now:      time.Now,
		log:      slog.Default(),
		entries:  make(map[string]meta),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.load(ctx); err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	return s, nil
}

// Close releases the store. The backend is owned by the caller.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]meta)
	s.totalBytes = 0
	return nil
}

func (s *Store) indexKey() string {
	return s.prefix + indexSuffix
}

func (s *Store) storageKey(k Key) string {
	return s.prefix + k.String()
}

func (s *Store) load(ctx context.Context) error {
	keys, err := s.readIndex(ctx)
	if err != nil {
		return err
	}

	healed := false
	for _, skey := range keys {
		data, err := s.backend.Get(ctx, skey)
		if errors.Is(err, kv.ErrNotFound) {
			healed = true
			continue
		}
		if err != nil {
			return fmt.Errorf("load entry %q: %w", skey, err)
		}
		e, err := decodeEntry(data)
		if err != nil {
			s.log.Warn("dropping corrupt cache entry", "key", skey, "error", err)
			_ = s.backend.Delete(ctx, skey)
			healed = true
			continue
		}
		s.entries[skey] = meta{kind: e.Kind, storedAt: e.StoredAt, expiresAt: e.ExpiresAt, size: int64(len(data))}
		s.totalBytes += int64(len(data))
	}

	if healed {
		if err := s.writeIndexLocked(ctx); err != nil {
			s.log.Warn("failed to persist healed cache index", "error", err)
		}
	}
	s.log.Debug("cache index loaded", "entries", len(s.entries), "bytes", s.totalBytes)
	return nil
}

// readIndex returns the persisted key set, rebuilding it from a backend
// scan when the index blob itself is unreadable.
func (s *Store) readIndex(ctx context.Context) ([]string, error) {
	data, err := s.backend.Get(ctx, s.indexKey())
	if errors.Is(err, kv.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read index: %w", err)
	}

	var keys []string
	if err := json.Unmarshal(data, &keys); err == nil {
		return keys, nil
	}

	s.log.Warn("cache index unreadable, rebuilding from backend scan")
	all, err := s.backend.Keys(ctx, s.prefix)
	if err != nil {
		return nil, fmt.Errorf("rebuild index: %w", err)
	}
	keys = all[:0]
	for _, k := range all {
		if k != s.indexKey() {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func (s *Store) writeIndexLocked(ctx context.Context) error {
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	data, err := json.Marshal(keys)
	if err != nil {
		return fmt.Errorf("encode index: %w", err)
	}
	if err := s.backend.Put(ctx, s.indexKey(), data); err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	return nil
}

func decodeEntry(data []byte) (*entry, error) {
	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptEntry, err)
	}
	if len(e.Payload) == 0 || e.StoredAt.IsZero() || e.ExpiresAt.IsZero() {
		return nil, fmt.Errorf("%w: missing fields", ErrCorruptEntry)
	}
	return &e, nil
}

func encodePayload(payload any) (json.RawMessage, error) {
	switch p := payload.(type) {
	case json.RawMessage:
		if !json.Valid(p) {
			return nil, errors.New("payload is not valid JSON")
		}
		return p, nil
	default:
		return json.Marshal(payload)
	}
}

// Set stores payload under key for ttl, or for the kind's policy TTL when
// ttl <= 0. A full store evicts its oldest entries first. Errors are
// returned for the caller to log; a failed payload write leaves the
// previous entry, if any, in place.
func (s *Store) Set(ctx context.Context, key Key, payload any, ttl time.Duration) error {
	if !key.valid() {
		return fmt.Errorf("cache set %q: %w", key.String(), ErrInvalidKey)
	}
	raw, err := encodePayload(payload)
	if err != nil {
		return fmt.Errorf("cache set %s: encode payload: %w", key, err)
	}
	if ttl <= 0 {
		ttl = s.policy.TTL(key.Kind)
	}

	skey := s.storageKey(key)
	now := s.now()
	e := entry{Key: skey, Kind: key.Kind, Payload: raw, StoredAt: now, ExpiresAt: now.Add(ttl)}
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("cache set %s: encode entry: %w", key, err)
	}
	size := int64(len(data))
	if size > s.maxBytes {
		return fmt.Errorf("cache set %s: %d bytes: %w", key, size, ErrEntryTooLarge)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.evictLocked(ctx, size); err != nil && s.overBoundLocked(skey, size) {
		return fmt.Errorf("cache set %s: %w: %w", key, ErrStoreFull, err)
	}

	if err := s.backend.Put(ctx, skey, data); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}

	old, existed := s.entries[skey]
	if existed {
		s.totalBytes -= old.size
	}
	s.entries[skey] = meta{kind: key.Kind, storedAt: now, expiresAt: e.ExpiresAt, size: size}
	s.totalBytes += size

	if !existed {
		if err := s.writeIndexLocked(ctx); err != nil {
			return fmt.Errorf("cache set %s: %w", key, err)
		}
	}
	return nil
}

// evictLocked makes room for an entry of the given size. When the store is
// at its count or size bound it drops the oldest ceil(0.3*maxItems) entries,
// then keeps dropping oldest entries while the new entry would overflow maxBytes.
// A failed backend delete leaves every entry in place.
func (s *Store) evictLocked(ctx context.Context, incoming int64) error {
	full := len(s.entries) >= s.maxItems || s.totalBytes >= s.maxBytes
	overflow := s.totalBytes+incoming > s.maxBytes
	if !full && !overflow {
		return nil
	}

	oldest := s.oldestLocked()
	var victims []string
	var freed int64
	if full {
		n := int(math.Ceil(evictFraction * float64(s.maxItems)))
		for i := 0; i < n && i < len(oldest); i++ {
			victims = append(victims, oldest[i])
			freed += s.entries[oldest[i]].size
		}
	}
	for i := len(victims); i < len(oldest) && s.totalBytes-freed+incoming > s.maxBytes; i++ {
		victims = append(victims, oldest[i])
		freed += s.entries[oldest[i]].size
	}
	if len(victims) == 0 {
		return nil
	}

	if err := s.backend.Delete(ctx, victims...); err != nil {
		s.log.Warn("cache eviction failed", "entries", len(victims), "error", err)
		return fmt.Errorf("evict %d entries: %w", len(victims), err)
	}
	for _, k := range victims {
		s.dropLocked(k)
	}
	if err := s.writeIndexLocked(ctx); err != nil {
		s.log.Warn("failed to persist cache index after eviction", "error", err)
	}
	s.log.Debug("cache evicted entries", "entries", len(victims), "bytes", freed, "remaining", len(s.entries))
	return nil
}

// overBoundLocked reports whether writing size bytes under skey would leave
// the store above its count or size bound.
func (s *Store) overBoundLocked(skey string, size int64) bool {
	count, bytes := len(s.entries), s.totalBytes+size
	if old, ok := s.entries[skey]; ok {
		bytes -= old.size
	} else {
		count++
	}
	return count > s.maxItems || bytes > s.maxBytes
}

// oldestLocked returns storage keys ordered by storedAt ascending.
func (s *Store) oldestLocked() []string {
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := s.entries[keys[i]], s.entries[keys[j]]
		if a.storedAt.Equal(b.storedAt) {
			return keys[i] < keys[j]
		}
		return a.storedAt.Before(b.storedAt)
	})
	return keys
}

func (s *Store) dropLocked(skey string) {
	if m, ok := s.entries[skey]; ok {
		s.totalBytes -= m.size
		delete(s.entries, skey)
	}
}

// Get returns the payload stored under key. Expired, missing and corrupt
// entries all yield ErrCacheMiss and are removed from the store and index.
func (s *Store) Get(ctx context.Context, key Key) (json.RawMessage, error) {
	if !key.valid() {
		return nil, ErrCacheMiss
	}
	skey := s.storageKey(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.backend.Get(ctx, skey)
	if errors.Is(err, kv.ErrNotFound) {
		if _, indexed := s.entries[skey]; indexed {
			s.log.Debug("healing dangling cache index entry", "key", skey)
			s.forgetLocked(ctx, skey, false)
		}
		return nil, ErrCacheMiss
	}
	if err != nil {
		s.log.Warn("cache read failed", "key", skey, "error", err)
		return nil, ErrCacheMiss
	}

	e, err := decodeEntry(data)
	if err != nil {
		s.log.Warn("removing corrupt cache entry", "key", skey, "error", err)
		s.forgetLocked(ctx, skey, true)
		return nil, ErrCacheMiss
	}
	if s.now().After(e.ExpiresAt) {
		s.forgetLocked(ctx, skey, true)
		return nil, ErrCacheMiss
	}
	return e.Payload, nil
}

// GetInto decodes the payload stored under key into dst. A payload that
// does not decode into dst is removed and reported as ErrCacheMiss.
func (s *Store) GetInto(ctx context.Context, key Key, dst any) error {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		s.log.Warn("cached payload does not match requested type", "key", key.String(), "error", err)
		_ = s.Remove(ctx, key)
		return ErrCacheMiss
	}
	return nil
}

// forgetLocked removes skey from the mirror and index, and from the backend
// when deletePayload is set. Failures are logged; the next read retries.
func (s *Store) forgetLocked(ctx context.Context, skey string, deletePayload bool) {
	if deletePayload {
		if err := s.backend.Delete(ctx, skey); err != nil {
			s.log.Warn("cache delete failed", "key", skey, "error", err)
			return
		}
	}
	if _, ok := s.entries[skey]; !ok {
		return
	}
	s.dropLocked(skey)
	if err := s.writeIndexLocked(ctx); err != nil {
		s.log.Warn("failed to persist cache index", "key", skey, "error", err)
	}
}

// Has reports whether a live entry exists for key.
func (s *Store) Has(ctx context.Context, key Key) bool {
	_, err := s.Get(ctx, key)
	return err == nil
}

// Remove deletes the entry for key. Removing a missing key is not an error.
func (s *Store) Remove(ctx context.Context, key Key) error {
	skey := s.storageKey(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.backend.Delete(ctx, skey); err != nil {
		return fmt.Errorf("cache remove %s: %w", key, err)
	}
	if _, ok := s.entries[skey]; !ok {
		return nil
	}
	s.dropLocked(skey)
	if err := s.writeIndexLocked(ctx); err != nil {
		return fmt.Errorf("cache remove %s: %w", key, err)
	}
	return nil
}

// Clear deletes every entry under the store's prefix, including entries
// that were never indexed, and the index itself.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys, err := s.backend.Keys(ctx, s.prefix)
	if err != nil {
		return fmt.Errorf("cache clear: %w", err)
	}
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		seen[k] = true
	}
	for k := range s.entries {
		if !seen[k] {
			keys = append(keys, k)
		}
	}

	if err := s.backend.Delete(ctx, keys...); err != nil {
		return fmt.Errorf("cache clear: %w", err)
	}
	s.entries = make(map[string]meta)
	s.totalBytes = 0
	s.log.Info("cache cleared", "entries", len(keys))
	return nil
}

// Keys returns the indexed storage keys in sorted order.
func (s *Store) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of indexed entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Size returns the cumulative serialized size of indexed entries.
func (s *Store) Size() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalBytes
}
