package catalog

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/vmunix/marquee/internal/cache"
	"github.com/vmunix/marquee/internal/dispatch"
	"github.com/vmunix/marquee/internal/tmdb"
)

// List types served by the movie and TV list endpoints.
var (
	MovieLists = []string{"popular", "now_playing", "top_rated", "upcoming"}
	TVLists    = []string{"popular", "airing_today", "top_rated", "on_the_air"}
)

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func normPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// pagedID joins parts with a page suffix, e.g. "550_page_2".
func pagedID(page int, parts ...string) string {
	return cache.Join(append(parts, "page", strconv.Itoa(page))...)
}

// moviePage dispatches a movie page fetch and records the fetched basics.
func (s *Service) moviePage(ctx context.Context, key cache.Key, fetch func(context.Context) (*tmdb.Page[tmdb.MovieSummary], error)) (*tmdb.Page[tmdb.MovieSummary], error) {
	return dispatch.Execute(ctx, s.dispatcher, key, 0, func(ctx context.Context) (*tmdb.Page[tmdb.MovieSummary], error) {
		p, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		s.rememberMovies(ctx, p.Results)
		return p, nil
	})
}

// showPage dispatches a TV page fetch and records the fetched basics.
func (s *Service) showPage(ctx context.Context, key cache.Key, fetch func(context.Context) (*tmdb.Page[tmdb.TVSummary], error)) (*tmdb.Page[tmdb.TVSummary], error) {
	return dispatch.Execute(ctx, s.dispatcher, key, 0, func(ctx context.Context) (*tmdb.Page[tmdb.TVSummary], error) {
		p, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		s.rememberShows(ctx, p.Results)
		return p, nil
	})
}

// MovieList returns a page of a movie list such as "popular".
func (s *Service) MovieList(ctx context.Context, list string, page int) (*tmdb.Page[tmdb.MovieSummary], error) {
	if !contains(MovieLists, list) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidList, list)
	}
	page = normPage(page)
	return s.moviePage(ctx, cache.PageKey(cache.MovieList(list), page), func(ctx context.Context) (*tmdb.Page[tmdb.MovieSummary], error) {
		return s.api.MovieList(ctx, list, page)
	})
}

// TVList returns a page of a TV list such as "airing_today".
func (s *Service) TVList(ctx context.Context, list string, page int) (*tmdb.Page[tmdb.TVSummary], error) {
	if !contains(TVLists, list) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidList, list)
	}
	page = normPage(page)
	return s.showPage(ctx, cache.PageKey(cache.TVList(list), page), func(ctx context.Context) (*tmdb.Page[tmdb.TVSummary], error) {
		return s.api.TVList(ctx, list, page)
	})
}

// SearchMovies searches movies by title.
func (s *Service) SearchMovies(ctx context.Context, query string, page int) (*tmdb.Page[tmdb.MovieSummary], error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrInvalidQuery
	}
	page = normPage(page)
	return s.moviePage(ctx, cache.QueryKey(cache.KindSearchMovies, query, page), func(ctx context.Context) (*tmdb.Page[tmdb.MovieSummary], error) {
		return s.api.SearchMovies(ctx, query, page)
	})
}

// SearchTV searches shows by name.
func (s *Service) SearchTV(ctx context.Context, query string, page int) (*tmdb.Page[tmdb.TVSummary], error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrInvalidQuery
	}
	page = normPage(page)
	return s.showPage(ctx, cache.QueryKey(cache.KindSearchTV, query, page), func(ctx context.Context) (*tmdb.Page[tmdb.TVSummary], error) {
		return s.api.SearchTV(ctx, query, page)
	})
}

// DiscoverMovies runs a movie discover query.
func (s *Service) DiscoverMovies(ctx context.Context, params map[string]string, page int) (*tmdb.Page[tmdb.MovieSummary], error) {
	page = normPage(page)
	return s.moviePage(ctx, cache.ParamsKey(cache.KindDiscoverMovies, params, page), func(ctx context.Context) (*tmdb.Page[tmdb.MovieSummary], error) {
		return s.api.DiscoverMovies(ctx, params, page)
	})
}

// DiscoverTV runs a TV discover query.
func (s *Service) DiscoverTV(ctx context.Context, params map[string]string, page int) (*tmdb.Page[tmdb.TVSummary], error) {
	page = normPage(page)
	return s.showPage(ctx, cache.ParamsKey(cache.KindDiscoverTV, params, page), func(ctx context.Context) (*tmdb.Page[tmdb.TVSummary], error) {
		return s.api.DiscoverTV(ctx, params, page)
	})
}

// SimilarMovies returns movies similar to id.
func (s *Service) SimilarMovies(ctx context.Context, id int64, page int) (*tmdb.Page[tmdb.MovieSummary], error) {
	page = normPage(page)
	key := cache.Key{Kind: cache.KindSimilarMovies, ID: pagedID(page, strconv.FormatInt(id, 10))}
	return s.moviePage(ctx, key, func(ctx context.Context) (*tmdb.Page[tmdb.MovieSummary], error) {
		return s.api.SimilarMovies(ctx, id, page)
	})
}

// SimilarTV returns shows similar to id.
func (s *Service) SimilarTV(ctx context.Context, id int64, page int) (*tmdb.Page[tmdb.TVSummary], error) {
	page = normPage(page)
	key := cache.Key{Kind: cache.KindSimilarTV, ID: pagedID(page, strconv.FormatInt(id, 10))}
	return s.showPage(ctx, key, func(ctx context.Context) (*tmdb.Page[tmdb.TVSummary], error) {
		return s.api.SimilarTV(ctx, id, page)
	})
}

// MovieRecommendations returns recommendations for a movie.
func (s *Service) MovieRecommendations(ctx context.Context, id int64, page int) (*tmdb.Page[tmdb.MovieSummary], error) {
	page = normPage(page)
	key := cache.Key{Kind: cache.KindMovieRecommendations, ID: pagedID(page, strconv.FormatInt(id, 10))}
	return s.moviePage(ctx, key, func(ctx context.Context) (*tmdb.Page[tmdb.MovieSummary], error) {
		return s.api.MovieRecommendations(ctx, id, page)
	})
}

// TVRecommendations returns recommendations for a show.
func (s *Service) TVRecommendations(ctx context.Context, id int64, page int) (*tmdb.Page[tmdb.TVSummary], error) {
	page = normPage(page)
	key := cache.Key{Kind: cache.KindTVRecommendations, ID: pagedID(page, strconv.FormatInt(id, 10))}
	return s.showPage(ctx, key, func(ctx context.Context) (*tmdb.Page[tmdb.TVSummary], error) {
		return s.api.TVRecommendations(ctx, id, page)
	})
}

// Trending returns trending titles. media is "all", "movie" or "tv"; window
// is "day" or "week".
func (s *Service) Trending(ctx context.Context, media, window string, page int) (*tmdb.Page[tmdb.TrendingItem], error) {
	if media != "all" && !tmdb.MediaType(media).Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMedia, media)
	}
	if window != "day" && window != "week" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidWindow, window)
	}
	page = normPage(page)
	key := cache.Key{Kind: cache.KindTrending, ID: pagedID(page, media, window)}
	return dispatch.Execute(ctx, s.dispatcher, key, 0, func(ctx context.Context) (*tmdb.Page[tmdb.TrendingItem], error) {
		return s.api.Trending(ctx, media, window, page)
	})
}

// Genres returns the genre list for a media type.
func (s *Service) Genres(ctx context.Context, media tmdb.MediaType) (*tmdb.GenreList, error) {
	if !media.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMedia, media)
	}
	key := cache.Key{Kind: cache.KindGenres, ID: string(media)}
	return dispatch.Execute(ctx, s.dispatcher, key, 0, func(ctx context.Context) (*tmdb.GenreList, error) {
		return s.api.Genres(ctx, media)
	})
}

// Person returns person details.
func (s *Service) Person(ctx context.Context, id int64) (*tmdb.Person, error) {
	return dispatch.Execute(ctx, s.dispatcher, cache.IDKey(cache.KindPersonDetails, id), 0, func(ctx context.Context) (*tmdb.Person, error) {
		return s.api.GetPerson(ctx, id)
	})
}

// PersonMovieCredits returns a person's movie credits.
func (s *Service) PersonMovieCredits(ctx context.Context, id int64) (*tmdb.PersonCredits[tmdb.MovieCredit], error) {
	return dispatch.Execute(ctx, s.dispatcher, cache.IDKey(cache.KindPersonMovieCredits, id), 0, func(ctx context.Context) (*tmdb.PersonCredits[tmdb.MovieCredit], error) {
		return s.api.PersonMovieCredits(ctx, id)
	})
}

// PersonTVCredits returns a person's TV credits.
func (s *Service) PersonTVCredits(ctx context.Context, id int64) (*tmdb.PersonCredits[tmdb.TVCredit], error) {
	return dispatch.Execute(ctx, s.dispatcher, cache.IDKey(cache.KindPersonTVCredits, id), 0, func(ctx context.Context) (*tmdb.PersonCredits[tmdb.TVCredit], error) {
		return s.api.PersonTVCredits(ctx, id)
	})
}

// WatchProviders returns where a title can be watched, by region.
func (s *Service) WatchProviders(ctx context.Context, media tmdb.MediaType, id int64) (*tmdb.WatchProviders, error) {
	if !media.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMedia, media)
	}
	key := cache.Key{Kind: cache.KindWatchProviders, ID: cache.Join(string(media), strconv.FormatInt(id, 10))}
	return dispatch.Execute(ctx, s.dispatcher, key, 0, func(ctx context.Context) (*tmdb.WatchProviders, error) {
		return s.api.WatchProviders(ctx, media, id)
	})
}

// AvailableProviders lists the providers available for a media type in
// region. An empty region means the service's configured region.
func (s *Service) AvailableProviders(ctx context.Context, media tmdb.MediaType, region string) (*tmdb.ProviderList, error) {
	if !media.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMedia, media)
	}
	if region == "" {
		region = s.region
	}
	id := string(media)
	if region != "" {
		id = cache.Join(id, strings.ToUpper(region))
	}
	key := cache.Key{Kind: cache.KindAvailableWatchProviders, ID: id}
	return dispatch.Execute(ctx, s.dispatcher, key, 0, func(ctx context.Context) (*tmdb.ProviderList, error) {
		return s.api.AvailableProviders(ctx, media, region)
	})
}
