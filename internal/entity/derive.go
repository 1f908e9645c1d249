package entity

import (
	"slices"

	"github.com/vmunix/marquee/internal/tmdb"
)

// maxCast bounds the number of billed cast members kept per title.
const maxCast = 20

// keyCrewJobs are the crew jobs kept on a record.
var keyCrewJobs = map[string]bool{
	"Director":                true,
	"Producer":                true,
	"Executive Producer":      true,
	"Screenplay":              true,
	"Writer":                  true,
	"Novel":                   true,
	"Original Music Composer": true,
	"Director of Photography": true,
	"Creator":                 true,
}

const certificationCountry = "US"

// Details bundles everything derived from a detail payload.
type Details struct {
	Fields DetailFields
	Cast   []CastMember
	Crew   []CrewMember
	Videos []Video
}

// MovieBasic derives basic-tier fields from a movie list or search result.
func MovieBasic(m *tmdb.MovieSummary) BasicFields {
	return BasicFields{
		ID:               m.ID,
		Title:            Ptr(m.Title),
		OriginalTitle:    Ptr(m.OriginalTitle),
		Overview:         Ptr(m.Overview),
		PosterPath:       Ptr(m.PosterPath),
		BackdropPath:     Ptr(m.BackdropPath),
		VoteAverage:      Ptr(m.VoteAverage),
		VoteCount:        Ptr(m.VoteCount),
		OriginalLanguage: Ptr(m.OriginalLanguage),
		Popularity:       Ptr(m.Popularity),
		GenreIDs:         slices.Clone(m.GenreIDs),
		ReleaseDate:      Ptr(m.ReleaseDate),
	}
}

// TVBasic derives basic-tier fields from a show list or search result.
func TVBasic(s *tmdb.TVSummary) BasicFields {
	return BasicFields{
		ID:               s.ID,
		Title:            Ptr(s.Name),
		OriginalTitle:    Ptr(s.OriginalName),
		Overview:         Ptr(s.Overview),
		PosterPath:       Ptr(s.PosterPath),
		BackdropPath:     Ptr(s.BackdropPath),
		VoteAverage:      Ptr(s.VoteAverage),
		VoteCount:        Ptr(s.VoteCount),
		OriginalLanguage: Ptr(s.OriginalLanguage),
		Popularity:       Ptr(s.Popularity),
		GenreIDs:         slices.Clone(s.GenreIDs),
		ReleaseDate:      Ptr(s.FirstAirDate),
	}
}

// MovieDetails derives basic and media tier fields from a movie
// detail payload. Sub-resources absent from the payload stay nil so the
// merge keeps what the record already has.
func MovieDetails(m *tmdb.Movie) Details {
	basic := MovieBasic(&m.MovieSummary)
	if len(m.Genres) > 0 {
		basic.GenreIDs = genreIDs(m.Genres)
	}

	d := Details{
		Fields: DetailFields{
			BasicFields:         basic,
			GenreNames:          genreNames(m.Genres),
			Runtime:             Ptr(m.Runtime),
			Budget:              Ptr(m.Budget),
			Revenue:             Ptr(m.Revenue),
			Status:              Ptr(m.Status),
			Tagline:             Ptr(m.Tagline),
			Homepage:            Ptr(m.Homepage),
			IMDBID:              Ptr(m.IMDBID),
			Images:              images(m.Images),
			ProductionCompanies: companyNames(m.ProductionCompanies),
		},
	}
	if m.Keywords != nil {
		d.Fields.Keywords = keywordNames(m.Keywords.All())
	}
	if m.ReleaseDates != nil {
		d.Fields.Certification = Ptr(movieCertification(m.ReleaseDates))
	}
	if m.Credits != nil {
		d.Cast = cast(m.Credits.Cast)
		d.Crew = crew(m.Credits.Crew)
	}
	if m.Videos != nil {
		d.Videos = videos(m.Videos.Results)
		d.Fields.TrailerKey = Ptr(TrailerKey(m.Videos.Results))
	}
	return d
}

// TVDetails derives basic and media tier fields from a show
// detail payload. Creators are folded into the crew with job "Creator".
func TVDetails(s *tmdb.TVShow) Details {
	basic := TVBasic(&s.TVSummary)
	if len(s.Genres) > 0 {
		basic.GenreIDs = genreIDs(s.Genres)
	}

	d := Details{
		Fields: DetailFields{
			BasicFields:         basic,
			GenreNames:          genreNames(s.Genres),
			Status:              Ptr(s.Status),
			Tagline:             Ptr(s.Tagline),
			Homepage:            Ptr(s.Homepage),
			NumberOfSeasons:     Ptr(s.NumberOfSeasons),
			NumberOfEpisodes:    Ptr(s.NumberOfEpisodes),
			Images:              images(s.Images),
			ProductionCompanies: companyNames(s.ProductionCompanies),
			Networks:            companyNames(s.Networks),
		},
	}
	if len(s.EpisodeRunTime) > 0 {
		d.Fields.Runtime = Ptr(s.EpisodeRunTime[0])
	}
	if s.ExternalIDs != nil {
		d.Fields.IMDBID = Ptr(s.ExternalIDs.IMDBID)
	}
	if s.Keywords != nil {
		d.Fields.Keywords = keywordNames(s.Keywords.All())
	}
	if s.ContentRatings != nil {
		d.Fields.Certification = Ptr(tvCertification(s.ContentRatings))
	}

	var creators []CrewMember
	for _, c := range s.CreatedBy {
		creators = append(creators, CrewMember{ID: c.ID, Name: c.Name, Job: "Creator", ProfilePath: c.ProfilePath})
	}
	if s.Credits != nil {
		d.Cast = cast(s.Credits.Cast)
		d.Crew = append(creators, crew(s.Credits.Crew)...)
	} else if creators != nil {
		d.Crew = creators
	}
	if s.Videos != nil {
		d.Videos = videos(s.Videos.Results)
		d.Fields.TrailerKey = Ptr(TrailerKey(s.Videos.Results))
	}
	return d
}

// TrailerKey returns the YouTube key of the first official trailer, else
// the first YouTube trailer, else "".
func TrailerKey(vs []tmdb.Video) string {
	first := ""
	for _, v := range vs {
		if v.Site != "YouTube" || v.Type != "Trailer" {
			continue
		}
		if v.Official {
			return v.Key
		}
		if first == "" {
			first = v.Key
		}
	}
	return first
}

func genreIDs(gs []tmdb.Genre) []int {
	ids := make([]int, 0, len(gs))
	for _, g := range gs {
		ids = append(ids, g.ID)
	}
	return ids
}

func genreNames(gs []tmdb.Genre) []string {
	if gs == nil {
		return nil
	}
	names := make([]string, 0, len(gs))
	for _, g := range gs {
		names = append(names, g.Name)
	}
	return names
}

func companyNames(cs []tmdb.Company) []string {
	if cs == nil {
		return nil
	}
	names := make([]string, 0, len(cs))
	for _, c := range cs {
		names = append(names, c.Name)
	}
	return names
}

func keywordNames(ks []tmdb.Keyword) []string {
	names := make([]string, 0, len(ks))
	for _, k := range ks {
		names = append(names, k.Name)
	}
	return names
}

func images(img *tmdb.Images) *Images {
	if img == nil {
		return nil
	}
	out := &Images{}
	for _, p := range img.Posters {
		out.Posters = append(out.Posters, p.FilePath)
	}
	for _, b := range img.Backdrops {
		out.Backdrops = append(out.Backdrops, b.FilePath)
	}
	return out
}

func cast(cs []tmdb.CastMember) []CastMember {
	out := make([]CastMember, 0, min(len(cs), maxCast))
	for _, c := range cs {
		if len(out) == maxCast {
			break
		}
		out = append(out, CastMember{
			ID:          c.ID,
			Name:        c.Name,
			Character:   c.Character,
			ProfilePath: c.ProfilePath,
			Order:       c.Order,
		})
	}
	return out
}

func crew(cs []tmdb.CrewMember) []CrewMember {
	out := make([]CrewMember, 0)
	for _, c := range cs {
		if !keyCrewJobs[c.Job] {
			continue
		}
		out = append(out, CrewMember{ID: c.ID, Name: c.Name, Job: c.Job, ProfilePath: c.ProfilePath})
	}
	return out
}

func videos(vs []tmdb.Video) []Video {
	out := make([]Video, 0, len(vs))
	for _, v := range vs {
		out = append(out, Video{Key: v.Key, Name: v.Name, Site: v.Site, Type: v.Type, Official: v.Official})
	}
	return out
}

func movieCertification(rd *tmdb.ReleaseDates) string {
	for _, country := range rd.Results {
		if country.Country != certificationCountry {
			continue
		}
		for _, r := range country.Releases {
			if r.Certification != "" {
				return r.Certification
			}
		}
	}
	return ""
}

func tvCertification(cr *tmdb.ContentRatings) string {
	for _, r := range cr.Results {
		if r.Country == certificationCountry {
			return r.Rating
		}
	}
	return ""
}
