// Package catalog exposes catalog resources through the fetch dispatcher
// and keeps the entity store in step with what is fetched.
package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/vmunix/marquee/internal/ai"
	"github.com/vmunix/marquee/internal/dispatch"
	"github.com/vmunix/marquee/internal/entity"
	"github.com/vmunix/marquee/internal/tmdb"
)

//go:generate mockgen -source=catalog.go -destination=mocks/mock_catalog.go -package=mocks

// API is the remote catalog. *tmdb.Client implements it.
type API interface {
	MovieList(ctx context.Context, list string, page int) (*tmdb.Page[tmdb.MovieSummary], error)
	TVList(ctx context.Context, list string, page int) (*tmdb.Page[tmdb.TVSummary], error)
	SearchMovies(ctx context.Context, query string, page int) (*tmdb.Page[tmdb.MovieSummary], error)
	SearchTV(ctx context.Context, query string, page int) (*tmdb.Page[tmdb.TVSummary], error)
	DiscoverMovies(ctx context.Context, params map[string]string, page int) (*tmdb.Page[tmdb.MovieSummary], error)
	DiscoverTV(ctx context.Context, params map[string]string, page int) (*tmdb.Page[tmdb.TVSummary], error)
	GetMovie(ctx context.Context, tmdbID int64) (*tmdb.Movie, error)
	GetTV(ctx context.Context, tmdbID int64) (*tmdb.TVShow, error)
	Genres(ctx context.Context, media tmdb.MediaType) (*tmdb.GenreList, error)
	SimilarMovies(ctx context.Context, tmdbID int64, page int) (*tmdb.Page[tmdb.MovieSummary], error)
	SimilarTV(ctx context.Context, tmdbID int64, page int) (*tmdb.Page[tmdb.TVSummary], error)
	MovieRecommendations(ctx context.Context, tmdbID int64, page int) (*tmdb.Page[tmdb.MovieSummary], error)
	TVRecommendations(ctx context.Context, tmdbID int64, page int) (*tmdb.Page[tmdb.TVSummary], error)
	Trending(ctx context.Context, media, window string, page int) (*tmdb.Page[tmdb.TrendingItem], error)
	GetPerson(ctx context.Context, personID int64) (*tmdb.Person, error)
	PersonMovieCredits(ctx context.Context, personID int64) (*tmdb.PersonCredits[tmdb.MovieCredit], error)
	PersonTVCredits(ctx context.Context, personID int64) (*tmdb.PersonCredits[tmdb.TVCredit], error)
	WatchProviders(ctx context.Context, media tmdb.MediaType, tmdbID int64) (*tmdb.WatchProviders, error)
	AvailableProviders(ctx context.Context, media tmdb.MediaType, region string) (*tmdb.ProviderList, error)
}

// InsightsGenerator produces AI content for a title.
type InsightsGenerator interface {
	Generate(ctx context.Context, t ai.Title) (*ai.Insights, error)
}

var (
	_ API               = (*tmdb.Client)(nil)
	_ InsightsGenerator = (*ai.Generator)(nil)
)

// Service serves catalog resources online-first with cache fallback.
type Service struct {
	api        API
	dispatcher *dispatch.Dispatcher
	entities   *entity.Store
	insights   InsightsGenerator
	region     string
	now        func() time.Time
	log        *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithInsights enables AI insights.
func WithInsights(g InsightsGenerator) Option {
	return func(s *Service) {
		s.insights = g
	}
}

// WithRegion sets the region the remote client applies when a request names
// none. It becomes part of region-scoped cache keys.
func WithRegion(region string) Option {
	return func(s *Service) {
		s.region = region
	}
}

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		s.log = log
	}
}

// NewService creates a Service.
func NewService(api API, d *dispatch.Dispatcher, entities *entity.Store, opts ...Option) *Service {
	s := &Service{
		api:        api,
		dispatcher: d,
		entities:   entities,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	return s
}

// Online reports whether remote fetches are currently attempted.
func (s *Service) Online() bool {
	return s.dispatcher.Online()
}

// InsightsEnabled reports whether AI insights are configured.
func (s *Service) InsightsEnabled() bool {
	return s.insights != nil
}

// rememberMovies records basic fields of fetched movies. Failures are logged.
func (s *Service) rememberMovies(ctx context.Context, items []tmdb.MovieSummary) {
	if len(items) == 0 {
		return
	}
	fields := make([]entity.BasicFields, 0, len(items))
	for i := range items {
		fields = append(fields, entity.MovieBasic(&items[i]))
	}
	if err := s.entities.BatchUpsertBasic(ctx, entity.KindMovie, fields); err != nil {
		s.log.Warn("failed to record movie basics", "count", len(items), "error", err)
	}
}

// rememberShows records basic fields of fetched shows. Failures are logged.
func (s *Service) rememberShows(ctx context.Context, items []tmdb.TVSummary) {
	if len(items) == 0 {
		return
	}
	fields := make([]entity.BasicFields, 0, len(items))
	for i := range items {
		fields = append(fields, entity.TVBasic(&items[i]))
	}
	if err := s.entities.BatchUpsertBasic(ctx, entity.KindTVShow, fields); err != nil {
		s.log.Warn("failed to record show basics", "count", len(items), "error", err)
	}
}
