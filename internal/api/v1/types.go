// internal/api/v1/types.go
package v1

import (
	"github.com/vmunix/marquee/internal/cache"
	"github.com/vmunix/marquee/internal/dispatch"
)

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// healthResponse is the response for GET /health.
type healthResponse struct {
	Status string `json:"status"`
	Online bool   `json:"online"`
}

// statsResponse is the response for GET /api/v1/cache/stats.
type statsResponse struct {
	Online     bool             `json:"online"`
	Cache      cache.Stats      `json:"cache"`
	Dispatcher dispatch.Metrics `json:"dispatcher"`
}
