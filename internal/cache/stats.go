package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vmunix/marquee/internal/kv"
)

// Stats summarizes the entries currently stored.
type Stats struct {
	Count       int          `json:"count"`
	TotalBytes  int64        `json:"total_bytes"`
	Oldest      time.Time    `json:"oldest,omitzero"`
	Newest      time.Time    `json:"newest,omitzero"`
	CountByKind map[Kind]int `json:"count_by_kind"`
}

// Stats scans every indexed entry in the backend. Entries that fail to
// parse and index keys without a payload are removed during the scan.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	st := Stats{CountByKind: make(map[Kind]int)}

	for _, skey := range s.Keys() {
		if err := ctx.Err(); err != nil {
			return st, err
		}

		e, size, err := s.scanOne(ctx, skey)
		if err != nil {
			return st, fmt.Errorf("cache stats: %w", err)
		}
		if e == nil {
			continue
		}

		st.Count++
		st.TotalBytes += size
		st.CountByKind[e.Kind]++
		if st.Oldest.IsZero() || e.StoredAt.Before(st.Oldest) {
			st.Oldest = e.StoredAt
		}
		if e.StoredAt.After(st.Newest) {
			st.Newest = e.StoredAt
		}
	}
	return st, nil
}

// scanOne reads and validates one entry under the lock, healing it when
// it is missing or corrupt. A nil entry means the key was healed away.
func (s *Store) scanOne(ctx context.Context, skey string) (*entry, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.backend.Get(ctx, skey)
	if errors.Is(err, kv.ErrNotFound) {
		s.forgetLocked(ctx, skey, false)
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, err
	}
	e, err := decodeEntry(data)
	if err != nil {
		s.log.Warn("removing corrupt cache entry", "key", skey, "error", err)
		s.forgetLocked(ctx, skey, true)
		return nil, 0, nil
	}
	return e, int64(len(data)), nil
}

// Sweep removes expired entries. Lazy expiry in Get already guarantees
// correctness; sweeping only reclaims space early. The lock is taken once
// per candidate so foreground calls interleave freely.
func (s *Store) Sweep(ctx context.Context) (int, error) {
	now := s.now()

	s.mu.Lock()
	var candidates []string
	for k, m := range s.entries {
		if now.After(m.expiresAt) {
			candidates = append(candidates, k)
		}
	}
	s.mu.Unlock()

	removed := 0
	for _, skey := range candidates {
		if err := ctx.Err(); err != nil {
			return removed, err
		}
		ok, err := s.sweepOne(ctx, skey, now)
		if err != nil {
			return removed, fmt.Errorf("cache sweep: %w", err)
		}
		if ok {
			removed++
		}
	}

	if removed > 0 {
		s.mu.Lock()
		err := s.writeIndexLocked(ctx)
		s.mu.Unlock()
		if err != nil {
			return removed, fmt.Errorf("cache sweep: %w", err)
		}
		s.log.Debug("cache sweep removed expired entries", "entries", removed)
	}
	return removed, nil
}

func (s *Store) sweepOne(ctx context.Context, skey string, now time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// A concurrent Set may have refreshed the entry since the snapshot.
	m, ok := s.entries[skey]
	if !ok || !now.After(m.expiresAt) {
		return false, nil
	}
	if err := s.backend.Delete(ctx, skey); err != nil {
		return false, err
	}
	s.dropLocked(skey)
	return true, nil
}
