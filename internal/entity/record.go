// Package entity stores per-title records whose fields are filled in tiers
// (basic, media, ai), each refreshed on its own schedule.
package entity

import (
	"fmt"
	"time"
)

// Kind is the entity type.
type Kind string

const (
	KindMovie  Kind = "movie"
	KindTVShow Kind = "tv"
)

// ParseKind accepts "movie", "tv" and "tvshow".
func ParseKind(s string) (Kind, error) {
	switch s {
	case "movie", "movies":
		return KindMovie, nil
	case "tv", "tvshow", "show":
		return KindTVShow, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
}

func (k Kind) valid() bool {
	return k == KindMovie || k == KindTVShow
}

// Tier is a group of record fields refreshed together.
type Tier string

const (
	TierBasic Tier = "basic"
	TierMedia Tier = "media"
	TierAI    Tier = "ai"
)

const day = 24 * time.Hour

// Tier freshness windows.
const (
	BasicTTL = 30 * day
	MediaTTL = 7 * day
	AITTL    = 180 * day
)

// TTL returns how long data in the tier stays fresh.
func (t Tier) TTL() time.Duration {
	switch t {
	case TierBasic:
		return BasicTTL
	case TierMedia:
		return MediaTTL
	case TierAI:
		return AITTL
	}
	return 0
}

// Record accumulates everything known about one movie or show.
type Record struct {
	Kind Kind  `json:"kind"`
	ID   int64 `json:"id"`

	// Basic tier.
	Title            string    `json:"title"`
	OriginalTitle    string    `json:"original_title,omitempty"`
	Overview         string    `json:"overview,omitempty"`
	PosterPath       string    `json:"poster_path,omitempty"`
	BackdropPath     string    `json:"backdrop_path,omitempty"`
	VoteAverage      float64   `json:"vote_average"`
	VoteCount        int       `json:"vote_count"`
	OriginalLanguage string    `json:"original_language,omitempty"`
	Popularity       float64   `json:"popularity"`
	GenreIDs         []int     `json:"genre_ids,omitempty"`
	ReleaseDate      string    `json:"release_date,omitempty"` // first air date for shows
	CachedAt         time.Time `json:"cached_at,omitzero"`

	// Media tier.
	GenreNames          []string     `json:"genre_names,omitempty"`
	Runtime             int          `json:"runtime,omitempty"`
	Budget              int64        `json:"budget,omitempty"`
	Revenue             int64        `json:"revenue,omitempty"`
	Status              string       `json:"status,omitempty"`
	Tagline             string       `json:"tagline,omitempty"`
	Homepage            string       `json:"homepage,omitempty"`
	IMDBID              string       `json:"imdb_id,omitempty"`
	NumberOfSeasons     int          `json:"number_of_seasons,omitempty"`
	NumberOfEpisodes    int          `json:"number_of_episodes,omitempty"`
	Cast                []CastMember `json:"cast,omitempty"`
	Crew                []CrewMember `json:"crew,omitempty"`
	TrailerKey          string       `json:"trailer_key,omitempty"`
	Videos              []Video      `json:"videos,omitempty"`
	Images              *Images      `json:"images,omitempty"`
	Keywords            []string     `json:"keywords,omitempty"`
	ProductionCompanies []string     `json:"production_companies,omitempty"`
	Networks            []string     `json:"networks,omitempty"`
	Certification       string       `json:"certification,omitempty"`
	HasFullDetails      bool         `json:"has_full_details"`
	MediaCachedAt       time.Time    `json:"media_cached_at,omitzero"`

	// AI tier.
	Similar       []SimilarTitle `json:"similar,omitempty"`
	Trivia        []string       `json:"trivia,omitempty"`
	Tags          []string       `json:"tags,omitempty"`
	AIGeneratedAt time.Time      `json:"ai_generated_at,omitzero"`
}

// TierTime returns the timestamp of the last write to the tier.
func (r *Record) TierTime(t Tier) time.Time {
	switch t {
	case TierBasic:
		return r.CachedAt
	case TierMedia:
		return r.MediaCachedAt
	case TierAI:
		return r.AIGeneratedAt
	}
	return time.Time{}
}

// Stale reports whether the tier was never written or is older than its TTL.
func (r *Record) Stale(t Tier, now time.Time) bool {
	ts := r.TierTime(t)
	if ts.IsZero() {
		return true
	}
	return now.Sub(ts) > t.TTL()
}

// CastMember is a billed performer.
type CastMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character,omitempty"`
	ProfilePath string `json:"profile_path,omitempty"`
	Order       int    `json:"order"`
}

// CrewMember is a key crew credit.
type CrewMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Job         string `json:"job"`
	ProfilePath string `json:"profile_path,omitempty"`
}

// Video is a trailer or clip hosted on a video site.
type Video struct {
	Key      string `json:"key"`
	Name     string `json:"name,omitempty"`
	Site     string `json:"site"`
	Type     string `json:"type"`
	Official bool   `json:"official,omitempty"`
}

// Images holds image paths.
type Images struct {
	Posters   []string `json:"posters,omitempty"`
	Backdrops []string `json:"backdrops,omitempty"`
}

// SimilarTitle is an AI-suggested related title. ID is zero when the title
// could not be matched to a catalog entry.
type SimilarTitle struct {
	ID     int64  `json:"id,omitempty"`
	Title  string `json:"title"`
	Year   int    `json:"year,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// BasicFields carries basic-tier values. Nil fields are left unchanged.
type BasicFields struct {
	ID               int64
	Title            *string
	OriginalTitle    *string
	Overview         *string
	PosterPath       *string
	BackdropPath     *string
	VoteAverage      *float64
	VoteCount        *int
	OriginalLanguage *string
	Popularity       *float64
	GenreIDs         []int
	ReleaseDate      *string
}

func (b *BasicFields) empty() bool {
	return b.Title == nil && b.OriginalTitle == nil && b.Overview == nil &&
		b.PosterPath == nil && b.BackdropPath == nil && b.VoteAverage == nil &&
		b.VoteCount == nil && b.OriginalLanguage == nil && b.Popularity == nil &&
		b.GenreIDs == nil && b.ReleaseDate == nil
}

// DetailFields carries media-tier values and optionally basic-tier values.
// Nil fields are left unchanged.
type DetailFields struct {
	BasicFields

	GenreNames          []string
	Runtime             *int
	Budget              *int64
	Revenue             *int64
	Status              *string
	Tagline             *string
	Homepage            *string
	IMDBID              *string
	NumberOfSeasons     *int
	NumberOfEpisodes    *int
	TrailerKey          *string
	Images              *Images
	Keywords            []string
	ProductionCompanies []string
	Networks            []string
	Certification       *string
}

// AIFields carries AI-tier values. Nil fields are left unchanged.
type AIFields struct {
	Similar []SimilarTitle
	Trivia  []string
	Tags    []string
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
