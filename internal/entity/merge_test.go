package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestMergeBasic_New(t *testing.T) {
	r := MergeBasic(nil, KindMovie, 42, BasicFields{Title: Ptr("X"), VoteAverage: Ptr(7.1)}, t0)

	assert.Equal(t, KindMovie, r.Kind)
	assert.Equal(t, int64(42), r.ID)
	assert.Equal(t, "X", r.Title)
	assert.Equal(t, 7.1, r.VoteAverage)
	assert.Equal(t, t0, r.CachedAt)
	assert.True(t, r.MediaCachedAt.IsZero())
	assert.False(t, r.HasFullDetails)
}

func TestMergeBasic_KeepsOmittedAndOtherTiers(t *testing.T) {
	existing := &Record{
		Kind:           KindMovie,
		ID:             42,
		Title:          "X",
		Overview:       "old overview",
		VoteCount:      100,
		Budget:         1000000,
		HasFullDetails: true,
		MediaCachedAt:  t0,
		Trivia:         []string{"fact"},
		AIGeneratedAt:  t0,
	}
	later := t0.Add(time.Hour)

	r := MergeBasic(existing, KindMovie, 42, BasicFields{Overview: Ptr("new overview"), VoteCount: Ptr(0)}, later)

	assert.Equal(t, "X", r.Title)
	assert.Equal(t, "new overview", r.Overview)
	assert.Equal(t, 0, r.VoteCount, "explicit zero is a supplied value")
	assert.Equal(t, int64(1000000), r.Budget)
	assert.True(t, r.HasFullDetails)
	assert.Equal(t, []string{"fact"}, r.Trivia)
	assert.Equal(t, later, r.CachedAt)
	assert.Equal(t, t0, r.MediaCachedAt)
	assert.Equal(t, "old overview", existing.Overview, "existing must not be mutated")
}

func TestMergeDetails_PreservesBasicAndAI(t *testing.T) {
	existing := &Record{
		Kind:          KindMovie,
		ID:            42,
		Title:         "X",
		VoteAverage:   7.1,
		CachedAt:      t0,
		Trivia:        []string{"shot in 30 days"},
		Tags:          []string{"heist"},
		AIGeneratedAt: t0,
	}
	later := t0.Add(time.Hour)

	r := MergeDetails(existing, KindMovie, 42, DetailFields{Budget: Ptr(int64(1000000))}, nil, nil, nil, later)

	assert.Equal(t, "X", r.Title)
	assert.Equal(t, 7.1, r.VoteAverage)
	assert.Equal(t, int64(1000000), r.Budget)
	assert.True(t, r.HasFullDetails)
	assert.Equal(t, later, r.MediaCachedAt)
	assert.Equal(t, t0, r.CachedAt, "no basic fields supplied")
	assert.Equal(t, []string{"shot in 30 days"}, r.Trivia)
	assert.Equal(t, []string{"heist"}, r.Tags)
	assert.Equal(t, t0, r.AIGeneratedAt)
}

func TestMergeDetails_CastCrewVideos(t *testing.T) {
	existing := &Record{
		Kind: KindTVShow,
		ID:   1,
		Cast: []CastMember{{ID: 1, Name: "Old"}},
		Crew: []CrewMember{{ID: 2, Name: "Keeper", Job: "Director"}},
	}
	cast := []CastMember{{ID: 3, Name: "New"}}

	r := MergeDetails(existing, KindTVShow, 1, DetailFields{}, cast, nil, []Video{}, t0)

	assert.Equal(t, cast, r.Cast)
	assert.Equal(t, existing.Crew, r.Crew, "nil crew keeps stored crew")
	assert.NotNil(t, r.Videos)
	assert.Empty(t, r.Videos, "empty videos replace stored videos")
}

func TestMergeDetails_BasicFieldsBumpCachedAt(t *testing.T) {
	in := DetailFields{BasicFields: BasicFields{Title: Ptr("Y")}, Runtime: Ptr(120)}
	r := MergeDetails(nil, KindMovie, 7, in, nil, nil, nil, t0)

	assert.Equal(t, "Y", r.Title)
	assert.Equal(t, 120, r.Runtime)
	assert.Equal(t, t0, r.CachedAt)
	assert.Equal(t, t0, r.MediaCachedAt)
}

func TestMergeAI(t *testing.T) {
	_, err := MergeAI(nil, AIFields{Trivia: []string{"x"}}, t0)
	assert.ErrorIs(t, err, ErrNotFound)

	existing := &Record{Kind: KindMovie, ID: 1, Title: "X", Tags: []string{"keep"}, Budget: 5}
	r, err := MergeAI(existing, AIFields{Trivia: []string{"a", "b"}}, t0)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, r.Trivia)
	assert.Equal(t, []string{"keep"}, r.Tags)
	assert.Equal(t, int64(5), r.Budget)
	assert.Equal(t, t0, r.AIGeneratedAt)
}

func TestRecord_Stale(t *testing.T) {
	r := &Record{CachedAt: t0, MediaCachedAt: t0}

	tests := []struct {
		name string
		tier Tier
		age  time.Duration
		want bool
	}{
		{"basic fresh", TierBasic, 29 * day, false},
		{"basic at ttl", TierBasic, 30 * day, false},
		{"basic stale", TierBasic, 31 * day, true},
		{"media fresh", TierMedia, 6 * day, false},
		{"media stale", TierMedia, 8 * day, true},
		{"ai never written", TierAI, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Stale(tt.tier, t0.Add(tt.age)))
		})
	}
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("movie")
	require.NoError(t, err)
	assert.Equal(t, KindMovie, k)

	k, err = ParseKind("tv")
	require.NoError(t, err)
	assert.Equal(t, KindTVShow, k)

	_, err = ParseKind("book")
	assert.ErrorIs(t, err, ErrInvalidKind)
}
