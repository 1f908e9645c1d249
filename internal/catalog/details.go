package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/marquee/internal/ai"
	"github.com/vmunix/marquee/internal/cache"
	"github.com/vmunix/marquee/internal/dispatch"
	"github.com/vmunix/marquee/internal/entity"
)

// resolveConcurrency bounds parallel searches when matching AI suggestions.
const resolveConcurrency = 4

// MovieDetails returns the full record for a movie.
func (s *Service) MovieDetails(ctx context.Context, id int64) (*entity.Record, error) {
	return details(ctx, s, entity.KindMovie, id, cache.KindMovieDetails, s.api.GetMovie, entity.MovieDetails)
}

// TVDetails returns the full record for a show.
func (s *Service) TVDetails(ctx context.Context, id int64) (*entity.Record, error) {
	return details(ctx, s, entity.KindTVShow, id, cache.KindTVDetails, s.api.GetTV, entity.TVDetails)
}

// Details dispatches to MovieDetails or TVDetails.
func (s *Service) Details(ctx context.Context, kind entity.Kind, id int64) (*entity.Record, error) {
	switch kind {
	case entity.KindMovie:
		return s.MovieDetails(ctx, id)
	case entity.KindTVShow:
		return s.TVDetails(ctx, id)
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidMedia, kind)
}

func (s *Service) record(ctx context.Context, kind entity.Kind, id int64) *entity.Record {
	r, err := s.entities.Get(ctx, kind, id)
	if err != nil {
		if !errors.Is(err, entity.ErrNotFound) {
			s.log.Warn("entity read failed", "kind", kind, "id", id, "error", err)
		}
		return nil
	}
	return r
}

// details serves a record whose media tier is fresh straight from the
// entity store. Otherwise the detail payload is dispatched; a remote fetch
// is written through to the store. When no payload is available a stale
// record is still returned.
func details[T any](ctx context.Context, s *Service, kind entity.Kind, id int64, cacheKind cache.Kind,
	get func(context.Context, int64) (*T, error), derive func(*T) entity.Details,
) (*entity.Record, error) {
	existing := s.record(ctx, kind, id)
	if existing != nil && existing.HasFullDetails && !existing.Stale(entity.TierMedia, s.now()) {
		return existing, nil
	}

	payload, err := dispatch.Execute(ctx, s.dispatcher, cache.IDKey(cacheKind, id), 0, func(ctx context.Context) (*T, error) {
		v, err := get(ctx, id)
		if err != nil {
			return nil, err
		}
		d := derive(v)
		if err := s.entities.UpsertDetails(ctx, kind, id, d.Fields, d.Cast, d.Crew, d.Videos); err != nil {
			s.log.Warn("failed to record details", "kind", kind, "id", id, "error", err)
		}
		return v, nil
	})
	if err != nil {
		if existing != nil && errors.Is(err, dispatch.ErrNoDataAvailable) {
			s.log.Info("serving stale entity record", "kind", kind, "id", id)
			return existing, nil
		}
		return nil, err
	}

	current := s.record(ctx, kind, id)
	if current != nil && current.HasFullDetails && !current.Stale(entity.TierMedia, s.now()) {
		return current, nil
	}

	// Served from the response cache: overlay it without touching tier timestamps.
	d := derive(payload)
	merged := entity.MergeDetails(current, kind, id, d.Fields, d.Cast, d.Crew, d.Videos, s.now())
	merged.CachedAt, merged.MediaCachedAt = time.Time{}, time.Time{}
	if current != nil {
		merged.CachedAt = current.CachedAt
		merged.MediaCachedAt = current.MediaCachedAt
	}
	return &merged, nil
}

// aiContent is the cached form of generated insights.
type aiContent struct {
	Similar []entity.SimilarTitle `json:"similar"`
	Trivia  []string              `json:"trivia"`
	Tags    []string              `json:"tags"`
}

func (c *aiContent) fields() entity.AIFields {
	return entity.AIFields{Similar: c.Similar, Trivia: c.Trivia, Tags: c.Tags}
}

// Insights returns the record for a title with its AI tier filled in,
// generating insights when the tier is missing or stale.
func (s *Service) Insights(ctx context.Context, kind entity.Kind, id int64) (*entity.Record, error) {
	if s.insights == nil {
		return nil, ErrAIDisabled
	}
	rec, err := s.Details(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	if !rec.Stale(entity.TierAI, s.now()) {
		return rec, nil
	}

	key := cache.Key{Kind: cache.KindAIContent, ID: cache.Join(string(kind), strconv.FormatInt(id, 10))}
	title := ai.Title{
		Kind:     string(kind),
		Name:     rec.Title,
		Year:     year(rec.ReleaseDate),
		Overview: rec.Overview,
	}
	content, err := dispatch.Execute(ctx, s.dispatcher, key, 0, func(ctx context.Context) (*aiContent, error) {
		ins, err := s.insights.Generate(ctx, title)
		if err != nil {
			return nil, err
		}
		c := &aiContent{
			Similar: s.resolveSimilar(ctx, kind, ins.Similar),
			Trivia:  ins.Trivia,
			Tags:    ins.Tags,
		}
		if err := s.entities.UpsertAI(ctx, kind, id, c.fields()); err != nil {
			s.log.Warn("dropping ai content", "kind", kind, "id", id, "error", err)
		}
		return c, nil
	})
	if err != nil {
		if !rec.AIGeneratedAt.IsZero() && errors.Is(err, dispatch.ErrNoDataAvailable) {
			return rec, nil
		}
		return nil, err
	}

	if current := s.record(ctx, kind, id); current != nil && !current.Stale(entity.TierAI, s.now()) {
		return current, nil
	}
	merged, err := entity.MergeAI(rec, content.fields(), rec.AIGeneratedAt)
	if err != nil {
		return nil, err
	}
	return &merged, nil
}

// resolveSimilar matches suggested titles to catalog ids through search.
// Unmatched suggestions keep a zero id. It runs inside the insights fetch,
// so searches go straight to the remote instead of back through the
// dispatcher, whose breaker admits one request while half-open.
func (s *Service) resolveSimilar(ctx context.Context, kind entity.Kind, suggestions []ai.Suggestion) []entity.SimilarTitle {
	out := make([]entity.SimilarTitle, len(suggestions))
	var g errgroup.Group
	g.SetLimit(resolveConcurrency)
	for i, sg := range suggestions {
		out[i] = entity.SimilarTitle{Title: sg.Title, Year: sg.Year, Reason: sg.Reason}
		g.Go(func() error {
			id, ok := s.resolveTitle(ctx, kind, sg.Title, sg.Year)
			if ok {
				out[i].ID = id
			}
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func (s *Service) resolveTitle(ctx context.Context, kind entity.Kind, title string, yr int) (int64, bool) {
	query := strings.TrimSpace(title)
	if query == "" {
		return 0, false
	}

	var candidates []ai.Candidate
	switch kind {
	case entity.KindMovie:
		p, err := s.api.SearchMovies(ctx, query, 1)
		if err != nil {
			s.log.Debug("similar title search failed", "title", title, "error", err)
			return 0, false
		}
		s.rememberMovies(ctx, p.Results)
		for i := range p.Results {
			m := &p.Results[i]
			candidates = append(candidates, ai.Candidate{ID: m.ID, Title: m.Title, Year: m.Year()})
		}
	case entity.KindTVShow:
		p, err := s.api.SearchTV(ctx, query, 1)
		if err != nil {
			s.log.Debug("similar title search failed", "title", title, "error", err)
			return 0, false
		}
		s.rememberShows(ctx, p.Results)
		for i := range p.Results {
			t := &p.Results[i]
			candidates = append(candidates, ai.Candidate{ID: t.ID, Title: t.Name, Year: t.Year()})
		}
	}

	best, score, ok := ai.BestMatch(title, yr, candidates)
	if !ok {
		s.log.Debug("no catalog match for similar title", "title", title, "score", score)
		return 0, false
	}
	return best.ID, true
}

func year(date string) int {
	if len(date) < 4 {
		return 0
	}
	y, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return y
}
