package cache

import "time"

const day = 24 * time.Hour

// DefaultTTL applies to kinds without an explicit policy.
const DefaultTTL = 7 * day

var defaultTTLs = map[Kind]time.Duration{
	MovieList("popular"):        12 * time.Hour,
	MovieList("now_playing"):    12 * time.Hour,
	MovieList("top_rated"):      24 * time.Hour,
	MovieList("upcoming"):       24 * time.Hour,
	TVList("popular"):           12 * time.Hour,
	TVList("airing_today"):      12 * time.Hour,
	TVList("top_rated"):         24 * time.Hour,
	TVList("on_the_air"):        24 * time.Hour,
	KindTrending:                2 * time.Hour,
	KindSearchMovies:            24 * time.Hour,
	KindSearchTV:                24 * time.Hour,
	KindDiscoverMovies:          6 * time.Hour,
	KindDiscoverTV:              6 * time.Hour,
	KindPersonDetails:           30 * day,
	KindPersonMovieCredits:      30 * day,
	KindPersonTVCredits:         30 * day,
	KindGenres:                  30 * day,
	KindWatchProviders:          30 * day,
	KindAvailableWatchProviders: 30 * day,
	KindAIContent:               180 * day,
}

// Policy maps kinds to their default TTL.
type Policy struct {
	ttls     map[Kind]time.Duration
	fallback time.Duration
}

// DefaultPolicy returns the built-in TTL table.
func DefaultPolicy() *Policy {
	p := &Policy{ttls: make(map[Kind]time.Duration, len(defaultTTLs)), fallback: DefaultTTL}
	for k, v := range defaultTTLs {
		p.ttls[k] = v
	}
	return p
}

// WithOverrides returns a copy of p with the given TTLs replacing the defaults.
// Non-positive durations are ignored.
func (p *Policy) WithOverrides(overrides map[Kind]time.Duration) *Policy {
	c := &Policy{ttls: make(map[Kind]time.Duration, len(p.ttls)+len(overrides)), fallback: p.fallback}
	for k, v := range p.ttls {
		c.ttls[k] = v
	}
	for k, v := range overrides {
		if v > 0 {
			c.ttls[k] = v
		}
	}
	return c
}

// TTL returns the TTL for kind.
func (p *Policy) TTL(kind Kind) time.Duration {
	if ttl, ok := p.ttls[kind]; ok {
		return ttl
	}
	return p.fallback
}
