// Package v1 implements the read API over the catalog and its caches.
package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vmunix/marquee/internal/catalog"
	"github.com/vmunix/marquee/internal/dispatch"
	"github.com/vmunix/marquee/internal/entity"
	"github.com/vmunix/marquee/internal/tmdb"
)

// Server is the v1 API server.
type Server struct {
	deps ServerDeps
	log  *slog.Logger
}

// New creates a v1 API server after validating deps.
func New(deps ServerDeps) (*Server, error) {
	if err := deps.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingDependency, err)
	}
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Server{deps: deps, log: log}, nil
}

// Handler returns the router serving every v1 route plus /health.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(logRequests(s.log))
	r.Use(chimw.Recoverer)

	r.Get("/health", s.health)

	r.Route("/api/v1", func(r chi.Router) {
		// Lists & queries
		r.Get("/movies/lists/{list}", s.movieList)
		r.Get("/tv/lists/{list}", s.tvList)
		r.Get("/search/{media}", s.search)
		r.Get("/discover/{media}", s.discover)
		r.Get("/trending/{media}/{window}", s.trending)
		r.Get("/genres/{media}", s.genres)
		r.Get("/providers/{media}", s.availableProviders)

		// People
		r.Route("/person/{id}", func(r chi.Router) {
			r.Get("/", s.person)
			r.Get("/movie_credits", s.personMovieCredits)
			r.Get("/tv_credits", s.personTVCredits)
		})

		// Cache
		r.Get("/cache/stats", s.cacheStats)
		r.Delete("/cache", s.clearCache)

		// Titles
		r.Route("/{media}/{id}", func(r chi.Router) {
			r.Get("/", s.details)
			r.Get("/similar", s.similar)
			r.Get("/recommendations", s.recommendations)
			r.Get("/providers", s.watchProviders)
			r.Post("/insights", s.insights)
		})
	})
	return r
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message, Code: errCode})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

// writeServiceError maps catalog errors to HTTP responses. A request that
// cannot be answered from the network or the cache gets 503 NO_DATA so
// clients can show an empty or retry state.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, tmdb.ErrNotFound), errors.Is(err, entity.ErrNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, dispatch.ErrNoDataAvailable):
		writeError(w, http.StatusServiceUnavailable, "NO_DATA", err.Error())
	case errors.Is(err, catalog.ErrAIDisabled):
		writeError(w, http.StatusNotImplemented, "AI_DISABLED", err.Error())
	case errors.Is(err, catalog.ErrInvalidList),
		errors.Is(err, catalog.ErrInvalidQuery),
		errors.Is(err, catalog.ErrInvalidMedia),
		errors.Is(err, catalog.ErrInvalidWindow),
		errors.Is(err, entity.ErrInvalidKind):
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
	default:
		s.log.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", err.Error())
	}
}

// respond writes v as JSON, or the mapped error.
func respond[T any](s *Server, w http.ResponseWriter, r *http.Request, v T, err error) {
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// pathID extracts a positive integer ID from the URL path.
func pathID(r *http.Request, name string) (int64, error) {
	idStr := chi.URLParam(r, name)
	if idStr == "" {
		return 0, fmt.Errorf("missing path parameter: %s", name)
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", name, idStr)
	}
	return id, nil
}

// pathMedia parses the {media} path parameter.
func pathMedia(r *http.Request) (entity.Kind, error) {
	return entity.ParseKind(chi.URLParam(r, "media"))
}

// queryInt extracts an optional integer from query string.
func queryInt(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return i
}
