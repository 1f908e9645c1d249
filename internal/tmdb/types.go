// Package tmdb provides a client for The Movie Database API.
package tmdb

import "strconv"

// MediaType selects the movie or TV flavor of an endpoint.
type MediaType string

const (
	MediaMovie MediaType = "movie"
	MediaTV    MediaType = "tv"
)

// Valid reports whether m is a known media type.
func (m MediaType) Valid() bool {
	return m == MediaMovie || m == MediaTV
}

// Page is one page of a paginated result list.
type Page[T any] struct {
	Page         int `json:"page"`
	Results      []T `json:"results"`
	TotalPages   int `json:"total_pages"`
	TotalResults int `json:"total_results"`
}

// MovieSummary is a movie as it appears in lists and search results.
type MovieSummary struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title"`
	OriginalTitle    string  `json:"original_title,omitempty"`
	Overview         string  `json:"overview"`
	ReleaseDate      string  `json:"release_date"` // "2024-03-01"
	PosterPath       string  `json:"poster_path"`  // "/abc123.jpg"
	BackdropPath     string  `json:"backdrop_path"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	Popularity       float64 `json:"popularity"`
	OriginalLanguage string  `json:"original_language,omitempty"`
	GenreIDs         []int   `json:"genre_ids,omitempty"`
	Adult            bool    `json:"adult,omitempty"`
}

// Year extracts the year from ReleaseDate.
func (m *MovieSummary) Year() int {
	return year(m.ReleaseDate)
}

// PosterURL returns the full poster image URL.
// Size can be: w92, w154, w185, w342, w500, w780, original
func (m *MovieSummary) PosterURL(size string) string {
	return imageURL(size, m.PosterPath)
}

// TVSummary is a show as it appears in lists and search results.
type TVSummary struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	OriginalName     string   `json:"original_name,omitempty"`
	Overview         string   `json:"overview"`
	FirstAirDate     string   `json:"first_air_date"`
	PosterPath       string   `json:"poster_path"`
	BackdropPath     string   `json:"backdrop_path"`
	VoteAverage      float64  `json:"vote_average"`
	VoteCount        int      `json:"vote_count"`
	Popularity       float64  `json:"popularity"`
	OriginalLanguage string   `json:"original_language,omitempty"`
	GenreIDs         []int    `json:"genre_ids,omitempty"`
	OriginCountry    []string `json:"origin_country,omitempty"`
}

// Year extracts the year from FirstAirDate.
func (s *TVSummary) Year() int {
	return year(s.FirstAirDate)
}

// PosterURL returns the full poster image URL.
func (s *TVSummary) PosterURL(size string) string {
	return imageURL(size, s.PosterPath)
}

// Movie is full movie metadata with appended sub-resources.
type Movie struct {
	MovieSummary
	IMDBID              string        `json:"imdb_id,omitempty"` // e.g., "tt0133093"
	Runtime             int           `json:"runtime"`           // minutes
	Budget              int64         `json:"budget"`
	Revenue             int64         `json:"revenue"`
	Status              string        `json:"status"`
	Tagline             string        `json:"tagline"`
	Homepage            string        `json:"homepage"`
	Genres              []Genre       `json:"genres"`
	ProductionCompanies []Company     `json:"production_companies,omitempty"`
	Credits             *Credits      `json:"credits,omitempty"`
	Videos              *Videos       `json:"videos,omitempty"`
	Images              *Images       `json:"images,omitempty"`
	Keywords            *Keywords     `json:"keywords,omitempty"`
	ReleaseDates        *ReleaseDates `json:"release_dates,omitempty"`
}

// TVShow is full show metadata with appended sub-resources.
type TVShow struct {
	TVSummary
	EpisodeRunTime      []int           `json:"episode_run_time,omitempty"`
	NumberOfSeasons     int             `json:"number_of_seasons"`
	NumberOfEpisodes    int             `json:"number_of_episodes"`
	Status              string          `json:"status"`
	Tagline             string          `json:"tagline"`
	Homepage            string          `json:"homepage"`
	Genres              []Genre         `json:"genres"`
	CreatedBy           []Creator       `json:"created_by,omitempty"`
	Networks            []Company       `json:"networks,omitempty"`
	ProductionCompanies []Company       `json:"production_companies,omitempty"`
	Credits             *Credits        `json:"credits,omitempty"`
	Videos              *Videos         `json:"videos,omitempty"`
	Images              *Images         `json:"images,omitempty"`
	Keywords            *Keywords       `json:"keywords,omitempty"`
	ContentRatings      *ContentRatings `json:"content_ratings,omitempty"`
	ExternalIDs         *ExternalIDs    `json:"external_ids,omitempty"`
}

// Genre represents a movie or TV genre.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// GenreList is the response of the genre list endpoints.
type GenreList struct {
	Genres []Genre `json:"genres"`
}

// Company is a production company or network.
type Company struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	LogoPath      string `json:"logo_path,omitempty"`
	OriginCountry string `json:"origin_country,omitempty"`
}

// Creator is a show creator.
type Creator struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	ProfilePath string `json:"profile_path,omitempty"`
}

// Credits holds cast and crew.
type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// CastMember is one billed performer.
type CastMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path,omitempty"`
	Order       int    `json:"order"`
}

// CrewMember is one crew credit.
type CrewMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Job         string `json:"job"`
	Department  string `json:"department"`
	ProfilePath string `json:"profile_path,omitempty"`
}

// Videos wraps appended video results.
type Videos struct {
	Results []Video `json:"results"`
}

// Video is a trailer, teaser, clip or featurette.
type Video struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Site     string `json:"site"` // "YouTube", "Vimeo"
	Type     string `json:"type"` // "Trailer", "Teaser", ...
	Official bool   `json:"official"`
}

// Images wraps appended image lists.
type Images struct {
	Backdrops []Image `json:"backdrops"`
	Posters   []Image `json:"posters"`
	Logos     []Image `json:"logos,omitempty"`
}

// Image is one image asset.
type Image struct {
	FilePath    string  `json:"file_path"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	AspectRatio float64 `json:"aspect_ratio"`
	VoteAverage float64 `json:"vote_average"`
}

// Keywords holds keywords. Movies use "keywords", shows use "results".
type Keywords struct {
	Keywords []Keyword `json:"keywords,omitempty"`
	Results  []Keyword `json:"results,omitempty"`
}

// All returns keywords regardless of which field the endpoint populated.
func (k *Keywords) All() []Keyword {
	if k == nil {
		return nil
	}
	if len(k.Keywords) > 0 {
		return k.Keywords
	}
	return k.Results
}

// Keyword is a single keyword.
type Keyword struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ReleaseDates holds per-country movie release dates.
type ReleaseDates struct {
	Results []CountryReleases `json:"results"`
}

// CountryReleases lists the releases in one country.
type CountryReleases struct {
	Country  string    `json:"iso_3166_1"`
	Releases []Release `json:"release_dates"`
}

// Release is one dated release with its certification.
type Release struct {
	Certification string `json:"certification"`
	ReleaseDate   string `json:"release_date"`
	Type          int    `json:"type"`
}

// ContentRatings holds per-country TV ratings.
type ContentRatings struct {
	Results []ContentRating `json:"results"`
}

// ContentRating is the rating of a show in one country.
type ContentRating struct {
	Country string `json:"iso_3166_1"`
	Rating  string `json:"rating"`
}

// ExternalIDs holds ids in other databases.
type ExternalIDs struct {
	IMDBID string `json:"imdb_id,omitempty"`
	TVDBID int64  `json:"tvdb_id,omitempty"`
}

// TrendingItem is an entry of a trending list. Movies fill Title, shows Name.
type TrendingItem struct {
	ID           int64     `json:"id"`
	MediaType    MediaType `json:"media_type"`
	Title        string    `json:"title,omitempty"`
	Name         string    `json:"name,omitempty"`
	Overview     string    `json:"overview"`
	PosterPath   string    `json:"poster_path"`
	BackdropPath string    `json:"backdrop_path"`
	ReleaseDate  string    `json:"release_date,omitempty"`
	FirstAirDate string    `json:"first_air_date,omitempty"`
	VoteAverage  float64   `json:"vote_average"`
	VoteCount    int       `json:"vote_count"`
	Popularity   float64   `json:"popularity"`
	GenreIDs     []int     `json:"genre_ids,omitempty"`
}

// DisplayTitle returns Title or Name, whichever is set.
func (t *TrendingItem) DisplayTitle() string {
	if t.Title != "" {
		return t.Title
	}
	return t.Name
}

// Person is person details.
type Person struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	Biography          string  `json:"biography"`
	Birthday           string  `json:"birthday,omitempty"`
	Deathday           string  `json:"deathday,omitempty"`
	PlaceOfBirth       string  `json:"place_of_birth,omitempty"`
	ProfilePath        string  `json:"profile_path,omitempty"`
	KnownForDepartment string  `json:"known_for_department,omitempty"`
	Popularity         float64 `json:"popularity"`
}

// MovieCredit is a movie credit of a person.
type MovieCredit struct {
	MovieSummary
	Character string `json:"character,omitempty"`
	Job       string `json:"job,omitempty"`
}

// TVCredit is a TV credit of a person.
type TVCredit struct {
	TVSummary
	Character    string `json:"character,omitempty"`
	Job          string `json:"job,omitempty"`
	EpisodeCount int    `json:"episode_count,omitempty"`
}

// PersonCredits lists a person's credits as cast and crew.
type PersonCredits[T any] struct {
	ID   int64 `json:"id"`
	Cast []T   `json:"cast"`
	Crew []T   `json:"crew"`
}

// WatchProviders maps region codes to where a title can be watched.
type WatchProviders struct {
	ID      int64                      `json:"id"`
	Results map[string]RegionProviders `json:"results"`
}

// RegionProviders lists providers by offer type in one region.
type RegionProviders struct {
	Link     string     `json:"link,omitempty"`
	Flatrate []Provider `json:"flatrate,omitempty"`
	Rent     []Provider `json:"rent,omitempty"`
	Buy      []Provider `json:"buy,omitempty"`
	Free     []Provider `json:"free,omitempty"`
	Ads      []Provider `json:"ads,omitempty"`
}

// Provider is a streaming or purchase service.
type Provider struct {
	ProviderID      int64  `json:"provider_id"`
	ProviderName    string `json:"provider_name"`
	LogoPath        string `json:"logo_path,omitempty"`
	DisplayPriority int    `json:"display_priority"`
}

// ProviderList is the response of the available providers endpoint.
type ProviderList struct {
	Results []Provider `json:"results"`
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

func imageURL(size, path string) string {
	if path == "" {
		return ""
	}
	return "https://image.tmdb.org/t/p/" + size + path
}
