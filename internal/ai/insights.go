package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

const (
	maxSimilar = 8
	maxTrivia  = 5
	maxTags    = 8
)

// ErrMalformedInsights is returned when the reply is not the requested JSON object.
var ErrMalformedInsights = errors.New("ai: malformed insights")

// Title identifies the movie or show insights are generated for.
type Title struct {
	Kind     string // "movie" or "tv"
	Name     string
	Year     int
	Overview string
}

// Suggestion is a related title proposed by the model.
type Suggestion struct {
	Title  string `json:"title"`
	Year   int    `json:"year,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// Insights is the AI-generated content for one title.
type Insights struct {
	Similar []Suggestion `json:"similar"`
	Trivia  []string     `json:"trivia"`
	Tags    []string     `json:"tags"`
}

// Generator produces Insights using a Provider.
type Generator struct {
	provider Provider
	log      *slog.Logger
}

// NewGenerator creates a Generator.
func NewGenerator(provider Provider, log *slog.Logger) *Generator {
	if log == nil {
		log = slog.Default()
	}
	return &Generator{provider: provider, log: log}
}

const systemPrompt = `You are a film and television expert. Answer only with a JSON object of the form
{"similar":[{"title":"...","year":1999,"reason":"..."}],"trivia":["..."],"tags":["..."]}.
"similar" lists up to 8 related titles of the same medium, "trivia" up to 5 short verified facts,
"tags" up to 8 lowercase mood or theme keywords. Do not add commentary.`

func userPrompt(t Title) string {
	medium := "movie"
	if t.Kind == "tv" {
		medium = "TV series"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Give insights for the %s %q", medium, t.Name)
	if t.Year > 0 {
		fmt.Fprintf(&b, " (%d)", t.Year)
	}
	b.WriteString(".")
	if t.Overview != "" {
		fmt.Fprintf(&b, "\nSynopsis: %s", t.Overview)
	}
	return b.String()
}

// Generate asks the provider for insights about t.
func (g *Generator) Generate(ctx context.Context, t Title) (*Insights, error) {
	resp, err := g.provider.Chat(ctx, Request{
		Messages: []Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt(t)},
		},
		JSON:      true,
		MaxTokens: 1024,
	})
	if err != nil {
		return nil, fmt.Errorf("generate insights for %q: %w", t.Name, err)
	}

	ins, err := ParseInsights(resp.Content)
	if err != nil {
		g.log.Warn("discarding malformed insights", "title", t.Name, "error", err)
		return nil, err
	}
	g.log.Debug("generated insights", "title", t.Name, "similar", len(ins.Similar), "trivia", len(ins.Trivia), "tags", len(ins.Tags))
	return ins, nil
}

// ParseInsights extracts the JSON object from a model reply, tolerating code
// fences and surrounding prose, and trims each list to its limit.
func ParseInsights(content string) (*Insights, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end < start {
		return nil, fmt.Errorf("%w: no JSON object", ErrMalformedInsights)
	}

	var ins Insights
	if err := json.Unmarshal([]byte(content[start:end+1]), &ins); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInsights, err)
	}

	similar := ins.Similar[:0]
	for _, s := range ins.Similar {
		s.Title = strings.TrimSpace(s.Title)
		if s.Title != "" {
			similar = append(similar, s)
		}
	}
	ins.Similar = truncate(similar, maxSimilar)
	ins.Trivia = truncate(nonEmpty(ins.Trivia), maxTrivia)
	ins.Tags = truncate(tags(ins.Tags), maxTags)

	if len(ins.Similar) == 0 && len(ins.Trivia) == 0 && len(ins.Tags) == 0 {
		return nil, fmt.Errorf("%w: empty object", ErrMalformedInsights)
	}
	return &ins, nil
}

func truncate[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func nonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func tags(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range nonEmpty(in) {
		s = strings.ToLower(s)
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
