// internal/dispatch/errors.go
package dispatch

import (
	"errors"
	"fmt"

	"github.com/vmunix/marquee/internal/cache"
)

var (
	// ErrRemoteFetchFailed wraps the error returned by a remote fetch.
	ErrRemoteFetchFailed = errors.New("remote fetch failed")

	// ErrNoDataAvailable indicates neither the remote nor the cache could
	// satisfy a request. Screens render it as an empty/retry state.
	ErrNoDataAvailable = errors.New("no data available")
)

// NoDataError reports an exhausted request. It matches ErrNoDataAvailable
// and, when the remote attempt failed, the remote error.
type NoDataError struct {
	Key   cache.Key
	Cause error
}

func (e *NoDataError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", ErrNoDataAvailable, e.Key)
	}
	return fmt.Sprintf("%s: %s: %v", ErrNoDataAvailable, e.Key, e.Cause)
}

// Unwrap exposes both the sentinel and the cause to errors.Is/As.
func (e *NoDataError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrNoDataAvailable}
	}
	return []error{ErrNoDataAvailable, e.Cause}
}
