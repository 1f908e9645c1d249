// internal/cache/errors.go
package cache

import "errors"

var (
	// ErrCacheMiss indicates the key is absent, expired, or was corrupt.
	ErrCacheMiss = errors.New("cache miss")

	// ErrCorruptEntry indicates a stored entry failed to decode.
	// Corrupt entries are deleted on sight and reported to callers as ErrCacheMiss.
	ErrCorruptEntry = errors.New("corrupt cache entry")

	// ErrEntryTooLarge indicates a single entry larger than the store's size bound.
	ErrEntryTooLarge = errors.New("cache entry exceeds size bound")

	// ErrStoreFull indicates a write refused because eviction could not make room.
	ErrStoreFull = errors.New("cache store full")

	// ErrInvalidKey indicates a key with an empty kind or identifier.
	ErrInvalidKey = errors.New("invalid cache key")
)
