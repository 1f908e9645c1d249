package v1

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vmunix/marquee/internal/entity"
	"github.com/vmunix/marquee/internal/tmdb"
)

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Online: s.deps.Dispatcher.Online()})
}

func (s *Server) movieList(w http.ResponseWriter, r *http.Request) {
	p, err := s.deps.Catalog.MovieList(r.Context(), chi.URLParam(r, "list"), queryInt(r, "page", 1))
	respond(s, w, r, p, err)
}

func (s *Server) tvList(w http.ResponseWriter, r *http.Request) {
	p, err := s.deps.Catalog.TVList(r.Context(), chi.URLParam(r, "list"), queryInt(r, "page", 1))
	respond(s, w, r, p, err)
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	kind, err := pathMedia(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	query := r.URL.Query().Get("query")
	page := queryInt(r, "page", 1)
	if kind == entity.KindMovie {
		p, err := s.deps.Catalog.SearchMovies(r.Context(), query, page)
		respond(s, w, r, p, err)
		return
	}
	p, err := s.deps.Catalog.SearchTV(r.Context(), query, page)
	respond(s, w, r, p, err)
}

// discover passes every query parameter except page through as a filter.
func (s *Server) discover(w http.ResponseWriter, r *http.Request) {
	kind, err := pathMedia(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	params := make(map[string]string)
	for k, v := range r.URL.Query() {
		if k == "page" || len(v) == 0 {
			continue
		}
		params[k] = v[0]
	}
	page := queryInt(r, "page", 1)
	if kind == entity.KindMovie {
		p, err := s.deps.Catalog.DiscoverMovies(r.Context(), params, page)
		respond(s, w, r, p, err)
		return
	}
	p, err := s.deps.Catalog.DiscoverTV(r.Context(), params, page)
	respond(s, w, r, p, err)
}

func (s *Server) trending(w http.ResponseWriter, r *http.Request) {
	p, err := s.deps.Catalog.Trending(r.Context(), chi.URLParam(r, "media"), chi.URLParam(r, "window"), queryInt(r, "page", 1))
	respond(s, w, r, p, err)
}

func (s *Server) genres(w http.ResponseWriter, r *http.Request) {
	kind, err := pathMedia(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	g, err := s.deps.Catalog.Genres(r.Context(), tmdb.MediaType(kind))
	respond(s, w, r, g, err)
}

func (s *Server) availableProviders(w http.ResponseWriter, r *http.Request) {
	kind, err := pathMedia(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	p, err := s.deps.Catalog.AvailableProviders(r.Context(), tmdb.MediaType(kind), r.URL.Query().Get("region"))
	respond(s, w, r, p, err)
}

func (s *Server) person(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}
	p, err := s.deps.Catalog.Person(r.Context(), id)
	respond(s, w, r, p, err)
}

func (s *Server) personMovieCredits(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}
	c, err := s.deps.Catalog.PersonMovieCredits(r.Context(), id)
	respond(s, w, r, c, err)
}

func (s *Server) personTVCredits(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}
	c, err := s.deps.Catalog.PersonTVCredits(r.Context(), id)
	respond(s, w, r, c, err)
}

func (s *Server) cacheStats(w http.ResponseWriter, r *http.Request) {
	st, err := s.deps.Cache.Stats(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, statsResponse{
		Online:     s.deps.Dispatcher.Online(),
		Cache:      st,
		Dispatcher: s.deps.Dispatcher.Metrics(),
	})
}

func (s *Server) clearCache(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.Cache.Clear(r.Context()); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.log.Info("cache cleared")
	w.WriteHeader(http.StatusNoContent)
}

// title parses the {media}/{id} pair shared by the per-title routes.
func (s *Server) title(w http.ResponseWriter, r *http.Request) (entity.Kind, int64, bool) {
	kind, err := pathMedia(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return "", 0, false
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return "", 0, false
	}
	return kind, id, true
}

func (s *Server) details(w http.ResponseWriter, r *http.Request) {
	kind, id, ok := s.title(w, r)
	if !ok {
		return
	}
	rec, err := s.deps.Catalog.Details(r.Context(), kind, id)
	respond(s, w, r, rec, err)
}

func (s *Server) similar(w http.ResponseWriter, r *http.Request) {
	kind, id, ok := s.title(w, r)
	if !ok {
		return
	}
	page := queryInt(r, "page", 1)
	if kind == entity.KindMovie {
		p, err := s.deps.Catalog.SimilarMovies(r.Context(), id, page)
		respond(s, w, r, p, err)
		return
	}
	p, err := s.deps.Catalog.SimilarTV(r.Context(), id, page)
	respond(s, w, r, p, err)
}

func (s *Server) recommendations(w http.ResponseWriter, r *http.Request) {
	kind, id, ok := s.title(w, r)
	if !ok {
		return
	}
	page := queryInt(r, "page", 1)
	if kind == entity.KindMovie {
		p, err := s.deps.Catalog.MovieRecommendations(r.Context(), id, page)
		respond(s, w, r, p, err)
		return
	}
	p, err := s.deps.Catalog.TVRecommendations(r.Context(), id, page)
	respond(s, w, r, p, err)
}

func (s *Server) watchProviders(w http.ResponseWriter, r *http.Request) {
	kind, id, ok := s.title(w, r)
	if !ok {
		return
	}
	p, err := s.deps.Catalog.WatchProviders(r.Context(), tmdb.MediaType(kind), id)
	respond(s, w, r, p, err)
}

func (s *Server) insights(w http.ResponseWriter, r *http.Request) {
	kind, id, ok := s.title(w, r)
	if !ok {
		return
	}
	rec, err := s.deps.Catalog.Insights(r.Context(), kind, id)
	respond(s, w, r, rec, err)
}
