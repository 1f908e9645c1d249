package connectivity

import (
	"context"
	"net"
	"net/http"
	"time"
)

// DefaultProbeURL is requested to decide internet reachability.
const DefaultProbeURL = "https://api.themoviedb.org"

// DefaultProbeTimeout bounds one reachability request.
const DefaultProbeTimeout = 5 * time.Second

// HTTPProbe considers the host connected when a non-loopback interface is
// up, and the internet reachable when a HEAD request to URL gets any reply.
type HTTPProbe struct {
	URL        string
	Client     *http.Client
	Interfaces func() ([]net.Interface, error)
}

// NewHTTPProbe creates a probe for url with the given request timeout.
func NewHTTPProbe(url string, timeout time.Duration) *HTTPProbe {
	if url == "" {
		url = DefaultProbeURL
	}
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	return &HTTPProbe{
		URL:        url,
		Client:     &http.Client{Timeout: timeout},
		Interfaces: net.Interfaces,
	}
}

// Check implements Probe.
func (p *HTTPProbe) Check(ctx context.Context) Status {
	st := Status{Connected: p.connected()}
	if !st.Connected {
		return st
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.URL, nil)
	if err != nil {
		return st
	}
	resp, err := p.Client.Do(req)
	if err != nil {
		return st
	}
	_ = resp.Body.Close()
	st.InternetReachable = true
	return st
}

func (p *HTTPProbe) connected() bool {
	ifaces, err := p.Interfaces()
	if err != nil {
		return false
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp != 0 && iface.Flags&net.FlagLoopback == 0 {
			return true
		}
	}
	return false
}
