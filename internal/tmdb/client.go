package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	defaultBaseURL = "https://api.themoviedb.org"
	defaultTimeout = 10 * time.Second
)

// Sub-resources appended to detail requests.
const (
	movieAppend = "credits,videos,images,keywords,release_dates"
	tvAppend    = "credits,videos,images,keywords,content_ratings,external_ids"
)

// Client is a TMDB API client.
type Client struct {
	apiKey     string
	baseURL    string
	language   string
	region     string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient = &http.Client{Timeout: d}
		}
	}
}

// WithLanguage sets the language parameter sent with every request, e.g. "en-US".
func WithLanguage(lang string) Option {
	return func(c *Client) {
		c.language = lang
	}
}

// WithRegion sets the region used for movie lists, discover and providers, e.g. "US".
func WithRegion(region string) Option {
	return func(c *Client) {
		c.region = region
	}
}

// NewClient creates a new TMDB client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// getJSON issues a GET for path under /3 and decodes the response into dst.
func (c *Client) getJSON(ctx context.Context, path string, q url.Values, dst any) error {
	if q == nil {
		q = url.Values{}
	}
	q.Set("api_key", c.apiKey)
	if c.language != "" && q.Get("language") == "" {
		q.Set("language", c.language)
	}

	u := c.baseURL + "/3" + path + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		return fmt.Errorf("TMDB API error: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func pageQuery(page int) url.Values {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	return q
}

func (c *Client) withRegion(q url.Values, param string) url.Values {
	if c.region != "" && q.Get(param) == "" {
		q.Set(param, c.region)
	}
	return q
}

// MovieList fetches a page of a movie list: popular, now_playing, top_rated or upcoming.
func (c *Client) MovieList(ctx context.Context, list string, page int) (*Page[MovieSummary], error) {
	var p Page[MovieSummary]
	q := c.withRegion(pageQuery(page), "region")
	if err := c.getJSON(ctx, "/movie/"+url.PathEscape(list), q, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// TVList fetches a page of a TV list: popular, airing_today, top_rated or on_the_air.
func (c *Client) TVList(ctx context.Context, list string, page int) (*Page[TVSummary], error) {
	var p Page[TVSummary]
	if err := c.getJSON(ctx, "/tv/"+url.PathEscape(list), pageQuery(page), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// SearchMovies searches movies by title.
func (c *Client) SearchMovies(ctx context.Context, query string, page int) (*Page[MovieSummary], error) {
	var p Page[MovieSummary]
	q := pageQuery(page)
	q.Set("query", query)
	if err := c.getJSON(ctx, "/search/movie", q, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// SearchTV searches shows by name.
func (c *Client) SearchTV(ctx context.Context, query string, page int) (*Page[TVSummary], error) {
	var p Page[TVSummary]
	q := pageQuery(page)
	q.Set("query", query)
	if err := c.getJSON(ctx, "/search/tv", q, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func discoverQuery(params map[string]string, page int) url.Values {
	q := pageQuery(page)
	for k, v := range params {
		q.Set(k, v)
	}
	return q
}

// DiscoverMovies runs a movie discover query with the given filter parameters.
func (c *Client) DiscoverMovies(ctx context.Context, params map[string]string, page int) (*Page[MovieSummary], error) {
	var p Page[MovieSummary]
	q := c.withRegion(discoverQuery(params, page), "region")
	if err := c.getJSON(ctx, "/discover/movie", q, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DiscoverTV runs a TV discover query with the given filter parameters.
func (c *Client) DiscoverTV(ctx context.Context, params map[string]string, page int) (*Page[TVSummary], error) {
	var p Page[TVSummary]
	if err := c.getJSON(ctx, "/discover/tv", discoverQuery(params, page), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetMovie fetches movie metadata by TMDB ID with credits, videos, images,
// keywords and release dates appended.
func (c *Client) GetMovie(ctx context.Context, tmdbID int64) (*Movie, error) {
	var m Movie
	q := url.Values{"append_to_response": {movieAppend}}
	if err := c.getJSON(ctx, fmt.Sprintf("/movie/%d", tmdbID), q, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// GetTV fetches show metadata by TMDB ID with credits, videos, images,
// keywords, content ratings and external ids appended.
func (c *Client) GetTV(ctx context.Context, tmdbID int64) (*TVShow, error) {
	var s TVShow
	q := url.Values{"append_to_response": {tvAppend}}
	if err := c.getJSON(ctx, fmt.Sprintf("/tv/%d", tmdbID), q, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Genres fetches the genre list for a media type.
func (c *Client) Genres(ctx context.Context, media MediaType) (*GenreList, error) {
	if !media.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMediaType, media)
	}
	var g GenreList
	if err := c.getJSON(ctx, "/genre/"+string(media)+"/list", nil, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// SimilarMovies fetches movies similar to tmdbID.
func (c *Client) SimilarMovies(ctx context.Context, tmdbID int64, page int) (*Page[MovieSummary], error) {
	var p Page[MovieSummary]
	if err := c.getJSON(ctx, fmt.Sprintf("/movie/%d/similar", tmdbID), pageQuery(page), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// SimilarTV fetches shows similar to tmdbID.
func (c *Client) SimilarTV(ctx context.Context, tmdbID int64, page int) (*Page[TVSummary], error) {
	var p Page[TVSummary]
	if err := c.getJSON(ctx, fmt.Sprintf("/tv/%d/similar", tmdbID), pageQuery(page), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// MovieRecommendations fetches recommendations for a movie.
func (c *Client) MovieRecommendations(ctx context.Context, tmdbID int64, page int) (*Page[MovieSummary], error) {
	var p Page[MovieSummary]
	if err := c.getJSON(ctx, fmt.Sprintf("/movie/%d/recommendations", tmdbID), pageQuery(page), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// TVRecommendations fetches recommendations for a show.
func (c *Client) TVRecommendations(ctx context.Context, tmdbID int64, page int) (*Page[TVSummary], error) {
	var p Page[TVSummary]
	if err := c.getJSON(ctx, fmt.Sprintf("/tv/%d/recommendations", tmdbID), pageQuery(page), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Trending fetches trending titles. media is "all", "movie" or "tv"; window
// is "day" or "week".
func (c *Client) Trending(ctx context.Context, media, window string, page int) (*Page[TrendingItem], error) {
	var p Page[TrendingItem]
	path := "/trending/" + url.PathEscape(media) + "/" + url.PathEscape(window)
	if err := c.getJSON(ctx, path, pageQuery(page), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetPerson fetches person details.
func (c *Client) GetPerson(ctx context.Context, personID int64) (*Person, error) {
	var p Person
	if err := c.getJSON(ctx, fmt.Sprintf("/person/%d", personID), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// PersonMovieCredits fetches a person's movie credits.
func (c *Client) PersonMovieCredits(ctx context.Context, personID int64) (*PersonCredits[MovieCredit], error) {
	var pc PersonCredits[MovieCredit]
	if err := c.getJSON(ctx, fmt.Sprintf("/person/%d/movie_credits", personID), nil, &pc); err != nil {
		return nil, err
	}
	return &pc, nil
}

// PersonTVCredits fetches a person's TV credits.
func (c *Client) PersonTVCredits(ctx context.Context, personID int64) (*PersonCredits[TVCredit], error) {
	var pc PersonCredits[TVCredit]
	if err := c.getJSON(ctx, fmt.Sprintf("/person/%d/tv_credits", personID), nil, &pc); err != nil {
		return nil, err
	}
	return &pc, nil
}

// WatchProviders fetches where a title can be watched, by region.
func (c *Client) WatchProviders(ctx context.Context, media MediaType, tmdbID int64) (*WatchProviders, error) {
	if !media.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMediaType, media)
	}
	var wp WatchProviders
	if err := c.getJSON(ctx, fmt.Sprintf("/%s/%d/watch/providers", media, tmdbID), nil, &wp); err != nil {
		return nil, err
	}
	return &wp, nil
}

// AvailableProviders lists the watch providers available for a media type.
// An empty region uses the client's configured region.
func (c *Client) AvailableProviders(ctx context.Context, media MediaType, region string) (*ProviderList, error) {
	if !media.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMediaType, media)
	}
	q := url.Values{}
	if region != "" {
		q.Set("watch_region", region)
	}
	var pl ProviderList
	if err := c.getJSON(ctx, "/watch/providers/"+string(media), c.withRegion(q, "watch_region"), &pl); err != nil {
		return nil, err
	}
	return &pl, nil
}
