// internal/kv/errors.go
package kv

import "errors"

// ErrNotFound indicates the key has no stored value.
var ErrNotFound = errors.New("key not found")
