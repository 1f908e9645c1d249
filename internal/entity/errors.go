// internal/entity/errors.go
package entity

import "errors"

var (
	// ErrNotFound is returned when no record exists for (kind, id).
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidKind is returned for kinds other than movie and tv.
	ErrInvalidKind = errors.New("invalid entity kind")
)
