package entity

import (
	"slices"
	"time"
)

func pick[T any](in *T, existing T) T {
	if in != nil {
		return *in
	}
	return existing
}

func pickSlice[T any](in, existing []T) []T {
	if in != nil {
		return slices.Clone(in)
	}
	return existing
}

func base(existing *Record, kind Kind, id int64) Record {
	if existing != nil {
		return *existing
	}
	return Record{Kind: kind, ID: id}
}

func applyBasic(r *Record, in *BasicFields) {
	r.Title = pick(in.Title, r.Title)
	r.OriginalTitle = pick(in.OriginalTitle, r.OriginalTitle)
	r.Overview = pick(in.Overview, r.Overview)
	r.PosterPath = pick(in.PosterPath, r.PosterPath)
	r.BackdropPath = pick(in.BackdropPath, r.BackdropPath)
	r.VoteAverage = pick(in.VoteAverage, r.VoteAverage)
	r.VoteCount = pick(in.VoteCount, r.VoteCount)
	r.OriginalLanguage = pick(in.OriginalLanguage, r.OriginalLanguage)
	r.Popularity = pick(in.Popularity, r.Popularity)
	r.GenreIDs = pickSlice(in.GenreIDs, r.GenreIDs)
	r.ReleaseDate = pick(in.ReleaseDate, r.ReleaseDate)
}

// MergeBasic returns existing with the supplied basic-tier fields applied
// and CachedAt set to now. Other tiers are carried over unchanged.
func MergeBasic(existing *Record, kind Kind, id int64, in BasicFields, now time.Time) Record {
	r := base(existing, kind, id)
	applyBasic(&r, &in)
	r.CachedAt = now
	return r
}

// MergeDetails returns existing with the supplied media-tier fields, cast,
// crew and videos applied, MediaCachedAt set to now and HasFullDetails set.
// Basic-tier fields carried in the details are applied with the same rule;
// when any is present CachedAt is also set to now. AI fields are untouched.
func MergeDetails(existing *Record, kind Kind, id int64, in DetailFields, cast []CastMember, crew []CrewMember, videos []Video, now time.Time) Record {
	r := base(existing, kind, id)
	if !in.BasicFields.empty() {
		applyBasic(&r, &in.BasicFields)
		r.CachedAt = now
	}

	r.GenreNames = pickSlice(in.GenreNames, r.GenreNames)
	r.Runtime = pick(in.Runtime, r.Runtime)
	r.Budget = pick(in.Budget, r.Budget)
	r.Revenue = pick(in.Revenue, r.Revenue)
	r.Status = pick(in.Status, r.Status)
	r.Tagline = pick(in.Tagline, r.Tagline)
	r.Homepage = pick(in.Homepage, r.Homepage)
	r.IMDBID = pick(in.IMDBID, r.IMDBID)
	r.NumberOfSeasons = pick(in.NumberOfSeasons, r.NumberOfSeasons)
	r.NumberOfEpisodes = pick(in.NumberOfEpisodes, r.NumberOfEpisodes)
	r.TrailerKey = pick(in.TrailerKey, r.TrailerKey)
	if in.Images != nil {
		img := Images{
			Posters:   slices.Clone(in.Images.Posters),
			Backdrops: slices.Clone(in.Images.Backdrops),
		}
		r.Images = &img
	}
	r.Keywords = pickSlice(in.Keywords, r.Keywords)
	r.ProductionCompanies = pickSlice(in.ProductionCompanies, r.ProductionCompanies)
	r.Networks = pickSlice(in.Networks, r.Networks)
	r.Certification = pick(in.Certification, r.Certification)
	r.Cast = pickSlice(cast, r.Cast)
	r.Crew = pickSlice(crew, r.Crew)
	r.Videos = pickSlice(videos, r.Videos)

	r.HasFullDetails = true
	r.MediaCachedAt = now
	return r
}

// MergeAI returns existing with the supplied AI-tier fields applied and
// AIGeneratedAt set to now. AI data only attaches to a known title, so a
// nil existing record yields ErrNotFound.
func MergeAI(existing *Record, in AIFields, now time.Time) (Record, error) {
	if existing == nil {
		return Record{}, ErrNotFound
	}
	r := *existing
	r.Similar = pickSlice(in.Similar, r.Similar)
	r.Trivia = pickSlice(in.Trivia, r.Trivia)
	r.Tags = pickSlice(in.Tags, r.Tags)
	r.AIGeneratedAt = now
	return r, nil
}
