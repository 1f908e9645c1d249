package cache

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Kind discriminates cached resources and selects their default TTL.
type Kind string

// Resource kinds.
const (
	KindSearchMovies            Kind = "search_movies"
	KindSearchTV                Kind = "search_tv"
	KindDiscoverMovies          Kind = "discover_movies"
	KindDiscoverTV              Kind = "discover_tv"
	KindMovieDetails            Kind = "movie_details"
	KindTVDetails               Kind = "tv_details"
	KindGenres                  Kind = "genres"
	KindSimilarMovies           Kind = "similar_movies"
	KindSimilarTV               Kind = "similar_tv"
	KindMovieRecommendations    Kind = "movie_recommendations"
	KindTVRecommendations       Kind = "tv_recommendations"
	KindTrending                Kind = "trending"
	KindPersonDetails           Kind = "person_details"
	KindPersonMovieCredits      Kind = "person_movie_credits"
	KindPersonTVCredits         Kind = "person_tv_credits"
	KindWatchProviders          Kind = "watch_providers"
	KindAvailableWatchProviders Kind = "available_watch_providers"
	KindAIContent               Kind = "ai_content"
)

// MovieList returns the kind for a movie list page, e.g. "movies_popular".
func MovieList(listType string) Kind { return Kind("movies_" + listType) }

// TVList returns the kind for a TV list page, e.g. "tvshows_top_rated".
func TVList(listType string) Kind { return Kind("tvshows_" + listType) }

// Key identifies one cached result. ID must encode every parameter that
// affects the result; use the constructors below rather than concatenating.
type Key struct {
	Kind Kind
	ID   string
}

// String returns the unprefixed storage form "<kind>_<id>".
func (k Key) String() string {
	return string(k.Kind) + "_" + k.ID
}

func (k Key) valid() bool {
	return k.Kind != "" && k.ID != ""
}

// PageKey keys an unparameterized list page.
func PageKey(kind Kind, page int) Key {
	return Key{Kind: kind, ID: "page_" + strconv.Itoa(page)}
}

// IDKey keys a single resource by catalog id.
func IDKey(kind Kind, id int64) Key {
	return Key{Kind: kind, ID: strconv.FormatInt(id, 10)}
}

// QueryKey keys a page of search results. Queries that differ only in
// Unicode normalization, case or whitespace share a key.
func QueryKey(kind Kind, query string, page int) Key {
	return ParamsKey(kind, Params{"query": NormalizeQuery(query)}, page)
}

// ParamsKey keys a page of a parameterized query such as discover.
func ParamsKey(kind Kind, params Params, page int) Key {
	p := make(Params, len(params)+1)
	for k, v := range params {
		p[k] = v
	}
	p["page"] = strconv.Itoa(page)
	return Key{Kind: kind, ID: p.Canonical()}
}

// Params are request parameters folded into a key identifier.
type Params map[string]string

// Canonical serializes params with sorted keys and escaped values,
// so insertion order never changes the result.
func (p Params) Canonical() string {
	names := make([]string, 0, len(p))
	for k := range p {
		names = append(names, k)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, k := range names {
		parts[i] = url.QueryEscape(k) + "=" + url.QueryEscape(p[k])
	}
	return strings.Join(parts, "&")
}

// Join builds a composite identifier such as "42_page_1".
func Join(parts ...string) string {
	return strings.Join(parts, "_")
}

// NormalizeQuery applies NFC normalization, case folding and whitespace collapsing.
func NormalizeQuery(q string) string {
	s := norm.NFC.String(q)
	// A Caser is stateful and must not be shared between goroutines.
	s = cases.Fold().String(s)
	return strings.Join(strings.Fields(s), " ")
}
