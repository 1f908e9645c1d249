package ai

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubProvider returns a canned reply and records the request.
type stubProvider struct {
	reply string
	err   error
	got   Request
}

func (s *stubProvider) Chat(_ context.Context, req Request) (*Response, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &Response{Content: s.reply}, nil
}

func TestGenerator_Generate(t *testing.T) {
	p := &stubProvider{reply: "```json\n" + `{"similar":[{"title":"Se7en","year":1995,"reason":"Fincher"},{"title":" "}],` +
		`"trivia":["Filmed in LA"],"tags":["Dark","dark","twist"]}` + "\n```"}
	g := NewGenerator(p, testLogger())

	ins, err := g.Generate(context.Background(), Title{Kind: "movie", Name: "Fight Club", Year: 1999, Overview: "Soap."})
	require.NoError(t, err)
	assert.Equal(t, []Suggestion{{Title: "Se7en", Year: 1995, Reason: "Fincher"}}, ins.Similar)
	assert.Equal(t, []string{"Filmed in LA"}, ins.Trivia)
	assert.Equal(t, []string{"dark", "twist"}, ins.Tags)

	assert.True(t, p.got.JSON)
	require.Len(t, p.got.Messages, 2)
	assert.Contains(t, p.got.Messages[1].Content, `"Fight Club" (1999)`)
	assert.Contains(t, p.got.Messages[1].Content, "Synopsis: Soap.")
}

func TestGenerator_ProviderError(t *testing.T) {
	boom := errors.New("boom")
	g := NewGenerator(&stubProvider{err: boom}, testLogger())

	_, err := g.Generate(context.Background(), Title{Kind: "tv", Name: "Lost"})
	assert.ErrorIs(t, err, boom)
}

func TestParseInsights_Malformed(t *testing.T) {
	tests := []string{
		"I cannot help with that.",
		"{not json}",
		`{"similar":[],"trivia":[],"tags":[]}`,
	}
	for _, content := range tests {
		_, err := ParseInsights(content)
		assert.ErrorIs(t, err, ErrMalformedInsights, content)
	}
}

func TestParseInsights_Limits(t *testing.T) {
	content := `{"trivia":["1","2","3","4","5","6","7"],"tags":["a","b","c","d","e","f","g","h","i","j"]}`
	ins, err := ParseInsights(content)
	require.NoError(t, err)
	assert.Len(t, ins.Trivia, maxTrivia)
	assert.Len(t, ins.Tags, maxTags)
}

func TestUserPrompt_TV(t *testing.T) {
	assert.Equal(t, `Give insights for the TV series "Lost".`, userPrompt(Title{Kind: "tv", Name: "Lost"}))
}
