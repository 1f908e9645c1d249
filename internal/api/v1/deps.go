// internal/api/v1/deps.go
package v1

import (
	"context"
	"errors"
	"log/slog"

	"github.com/vmunix/marquee/internal/cache"
	"github.com/vmunix/marquee/internal/catalog"
	"github.com/vmunix/marquee/internal/dispatch"
	"github.com/vmunix/marquee/internal/entity"
	"github.com/vmunix/marquee/internal/tmdb"
)

// ErrMissingDependency is returned when a required dependency is nil.
var ErrMissingDependency = errors.New("missing required dependency")

// Catalog serves catalog resources. *catalog.Service implements it.
type Catalog interface {
	MovieList(ctx context.Context, list string, page int) (*tmdb.Page[tmdb.MovieSummary], error)
	TVList(ctx context.Context, list string, page int) (*tmdb.Page[tmdb.TVSummary], error)
	SearchMovies(ctx context.Context, query string, page int) (*tmdb.Page[tmdb.MovieSummary], error)
	SearchTV(ctx context.Context, query string, page int) (*tmdb.Page[tmdb.TVSummary], error)
	DiscoverMovies(ctx context.Context, params map[string]string, page int) (*tmdb.Page[tmdb.MovieSummary], error)
	DiscoverTV(ctx context.Context, params map[string]string, page int) (*tmdb.Page[tmdb.TVSummary], error)
	Details(ctx context.Context, kind entity.Kind, id int64) (*entity.Record, error)
	Insights(ctx context.Context, kind entity.Kind, id int64) (*entity.Record, error)
	SimilarMovies(ctx context.Context, id int64, page int) (*tmdb.Page[tmdb.MovieSummary], error)
	SimilarTV(ctx context.Context, id int64, page int) (*tmdb.Page[tmdb.TVSummary], error)
	MovieRecommendations(ctx context.Context, id int64, page int) (*tmdb.Page[tmdb.MovieSummary], error)
	TVRecommendations(ctx context.Context, id int64, page int) (*tmdb.Page[tmdb.TVSummary], error)
	Trending(ctx context.Context, media, window string, page int) (*tmdb.Page[tmdb.TrendingItem], error)
	Genres(ctx context.Context, media tmdb.MediaType) (*tmdb.GenreList, error)
	Person(ctx context.Context, id int64) (*tmdb.Person, error)
	PersonMovieCredits(ctx context.Context, id int64) (*tmdb.PersonCredits[tmdb.MovieCredit], error)
	PersonTVCredits(ctx context.Context, id int64) (*tmdb.PersonCredits[tmdb.TVCredit], error)
	WatchProviders(ctx context.Context, media tmdb.MediaType, id int64) (*tmdb.WatchProviders, error)
	AvailableProviders(ctx context.Context, media tmdb.MediaType, region string) (*tmdb.ProviderList, error)
}

// CacheAdmin reports on and clears the response cache.
type CacheAdmin interface {
	Stats(ctx context.Context) (cache.Stats, error)
	Clear(ctx context.Context) error
}

// Dispatcher reports connectivity and fetch counters.
type Dispatcher interface {
	Online() bool
	Metrics() dispatch.Metrics
}

var (
	_ Catalog    = (*catalog.Service)(nil)
	_ CacheAdmin = (*cache.Store)(nil)
	_ Dispatcher = (*dispatch.Dispatcher)(nil)
)

// ServerDeps contains all dependencies for the API server.
type ServerDeps struct {
	Catalog    Catalog
	Cache      CacheAdmin
	Dispatcher Dispatcher

	// Optional: nil uses slog.Default().
	Logger *slog.Logger
}

// Validate checks that all required dependencies are provided.
func (d ServerDeps) Validate() error {
	if d.Catalog == nil {
		return errors.New("catalog is required")
	}
	if d.Cache == nil {
		return errors.New("cache is required")
	}
	if d.Dispatcher == nil {
		return errors.New("dispatcher is required")
	}
	return nil
}
