// internal/catalog/errors.go
package catalog

import "errors"

var (
	// ErrInvalidList is returned for unknown list types.
	ErrInvalidList = errors.New("invalid list type")

	// ErrInvalidQuery is returned for blank search queries.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrInvalidMedia is returned for media types the endpoint does not serve.
	ErrInvalidMedia = errors.New("invalid media type")

	// ErrInvalidWindow is returned for trending windows other than day and week.
	ErrInvalidWindow = errors.New("invalid time window")

	// ErrAIDisabled is returned when insights are requested without a generator.
	ErrAIDisabled = errors.New("ai insights disabled")
)
