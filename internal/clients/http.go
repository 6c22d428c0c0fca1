package clients

import (
	"crypto/tls"
	"log/slog"
	"net/http"
	"time"
)

// HTTPOptions configures the dedicated *http.Client each upstream client gets.
// TLS verification is only relaxed for the client built from these options.
type HTTPOptions struct {
	Timeout            time.Duration
	InsecureSkipVerify bool
}

// NewHTTPClient builds an *http.Client for component. A zero Timeout falls
// back to DEFAULT_TIMEOUT.
func NewHTTPClient(component string, opts HTTPOptions) *http.Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DEFAULT_TIMEOUT
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if opts.InsecureSkipVerify {
		slog.Warn("[HTTPClient] TLS certificate verification disabled",
			slog.String("component", component))
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
