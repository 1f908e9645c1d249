package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/marquee/internal/tmdb"
)

func TestTrailerKey(t *testing.T) {
	tests := []struct {
		name   string
		videos []tmdb.Video
		want   string
	}{
		{"none", nil, ""},
		{
			name: "official preferred",
			videos: []tmdb.Video{
				{Key: "teaser", Site: "YouTube", Type: "Teaser", Official: true},
				{Key: "fan", Site: "YouTube", Type: "Trailer"},
				{Key: "vimeo", Site: "Vimeo", Type: "Trailer", Official: true},
				{Key: "official", Site: "YouTube", Type: "Trailer", Official: true},
			},
			want: "official",
		},
		{
			name: "falls back to first youtube trailer",
			videos: []tmdb.Video{
				{Key: "clip", Site: "YouTube", Type: "Clip"},
				{Key: "first", Site: "YouTube", Type: "Trailer"},
				{Key: "second", Site: "YouTube", Type: "Trailer"},
			},
			want: "first",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TrailerKey(tt.videos))
		})
	}
}

func TestMovieBasic(t *testing.T) {
	b := MovieBasic(&tmdb.MovieSummary{ID: 603, Title: "The Matrix", VoteAverage: 8.2, GenreIDs: []int{28, 878}, ReleaseDate: "1999-03-31"})

	assert.Equal(t, int64(603), b.ID)
	assert.Equal(t, "The Matrix", *b.Title)
	assert.Equal(t, 8.2, *b.VoteAverage)
	assert.Equal(t, []int{28, 878}, b.GenreIDs)
	assert.Equal(t, "1999-03-31", *b.ReleaseDate)
}

func TestTVBasic(t *testing.T) {
	b := TVBasic(&tmdb.TVSummary{ID: 1396, Name: "Breaking Bad", FirstAirDate: "2008-01-20"})

	assert.Equal(t, "Breaking Bad", *b.Title)
	assert.Equal(t, "2008-01-20", *b.ReleaseDate)
}

func TestMovieDetails(t *testing.T) {
	m := &tmdb.Movie{
		MovieSummary: tmdb.MovieSummary{ID: 550, Title: "Fight Club"},
		Runtime:      139,
		Budget:       63000000,
		Genres:       []tmdb.Genre{{ID: 18, Name: "Drama"}, {ID: 53, Name: "Thriller"}},
		Credits: &tmdb.Credits{
			Cast: []tmdb.CastMember{{ID: 819, Name: "Edward Norton", Character: "Narrator"}},
			Crew: []tmdb.CrewMember{
				{ID: 7467, Name: "David Fincher", Job: "Director"},
				{ID: 1, Name: "Grip", Job: "Key Grip"},
				{ID: 7469, Name: "Jim Uhls", Job: "Screenplay"},
			},
		},
		Videos:   &tmdb.Videos{Results: []tmdb.Video{{Key: "abc", Site: "YouTube", Type: "Trailer"}}},
		Keywords: &tmdb.Keywords{Keywords: []tmdb.Keyword{{Name: "support group"}}},
		ReleaseDates: &tmdb.ReleaseDates{Results: []tmdb.CountryReleases{
			{Country: "DE", Releases: []tmdb.Release{{Certification: "18"}}},
			{Country: "US", Releases: []tmdb.Release{{Certification: ""}, {Certification: "R"}}},
		}},
		Images: &tmdb.Images{Posters: []tmdb.Image{{FilePath: "/p.jpg"}}},
	}

	d := MovieDetails(m)

	assert.Equal(t, "Fight Club", *d.Fields.Title)
	assert.Equal(t, []int{18, 53}, d.Fields.GenreIDs)
	assert.Equal(t, []string{"Drama", "Thriller"}, d.Fields.GenreNames)
	assert.Equal(t, 139, *d.Fields.Runtime)
	assert.Equal(t, int64(63000000), *d.Fields.Budget)
	assert.Equal(t, "R", *d.Fields.Certification)
	assert.Equal(t, "abc", *d.Fields.TrailerKey)
	assert.Equal(t, []string{"support group"}, d.Fields.Keywords)
	assert.Equal(t, []string{"/p.jpg"}, d.Fields.Images.Posters)
	require.Len(t, d.Cast, 1)
	assert.Equal(t, "Narrator", d.Cast[0].Character)
	require.Len(t, d.Crew, 2)
	assert.Equal(t, "Director", d.Crew[0].Job)
	assert.Equal(t, "Screenplay", d.Crew[1].Job)
	assert.Len(t, d.Videos, 1)
}

func TestMovieDetails_MissingSubresourcesStayNil(t *testing.T) {
	d := MovieDetails(&tmdb.Movie{MovieSummary: tmdb.MovieSummary{ID: 1, Title: "Bare"}})

	assert.Nil(t, d.Cast)
	assert.Nil(t, d.Crew)
	assert.Nil(t, d.Videos)
	assert.Nil(t, d.Fields.TrailerKey)
	assert.Nil(t, d.Fields.Certification)
	assert.Nil(t, d.Fields.Keywords)
	assert.Nil(t, d.Fields.Images)
}

func TestMovieDetails_CastLimit(t *testing.T) {
	var cast []tmdb.CastMember
	for i := range 30 {
		cast = append(cast, tmdb.CastMember{ID: int64(i), Order: i})
	}
	d := MovieDetails(&tmdb.Movie{Credits: &tmdb.Credits{Cast: cast}})
	assert.Len(t, d.Cast, maxCast)
}

func TestTVDetails(t *testing.T) {
	s := &tmdb.TVShow{
		TVSummary:        tmdb.TVSummary{ID: 1396, Name: "Breaking Bad"},
		EpisodeRunTime:   []int{47, 45},
		NumberOfSeasons:  5,
		NumberOfEpisodes: 62,
		CreatedBy:        []tmdb.Creator{{ID: 66633, Name: "Vince Gilligan"}},
		Networks:         []tmdb.Company{{ID: 174, Name: "AMC"}},
		Credits: &tmdb.Credits{
			Crew: []tmdb.CrewMember{{ID: 2, Name: "Dave Porter", Job: "Original Music Composer"}},
		},
		ContentRatings: &tmdb.ContentRatings{Results: []tmdb.ContentRating{{Country: "US", Rating: "TV-MA"}}},
		ExternalIDs:    &tmdb.ExternalIDs{IMDBID: "tt0903747"},
		Keywords:       &tmdb.Keywords{Results: []tmdb.Keyword{{Name: "drug dealer"}}},
	}

	d := TVDetails(s)

	assert.Equal(t, "Breaking Bad", *d.Fields.Title)
	assert.Equal(t, 47, *d.Fields.Runtime)
	assert.Equal(t, 5, *d.Fields.NumberOfSeasons)
	assert.Equal(t, 62, *d.Fields.NumberOfEpisodes)
	assert.Equal(t, "TV-MA", *d.Fields.Certification)
	assert.Equal(t, "tt0903747", *d.Fields.IMDBID)
	assert.Equal(t, []string{"AMC"}, d.Fields.Networks)
	assert.Equal(t, []string{"drug dealer"}, d.Fields.Keywords)
	require.Len(t, d.Crew, 2)
	assert.Equal(t, CrewMember{ID: 66633, Name: "Vince Gilligan", Job: "Creator"}, d.Crew[0])
	assert.Equal(t, "Original Music Composer", d.Crew[1].Job)
}
