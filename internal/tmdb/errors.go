// internal/tmdb/errors.go
package tmdb

import "errors"

var (
	// ErrNotFound is returned when a resource doesn't exist in TMDB.
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthorized is returned when the API key is missing or rejected.
	ErrUnauthorized = errors.New("tmdb: unauthorized")

	// ErrRateLimited is returned on HTTP 429.
	ErrRateLimited = errors.New("tmdb: rate limited")

	// ErrInvalidMediaType is returned for media types other than movie and tv.
	ErrInvalidMediaType = errors.New("invalid media type")
)
