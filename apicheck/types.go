// Package apicheck defines the injected-client interface, options, and
// sentinel errors for the apicheck subpackage of github.com/fringelab/beamkit.
package apicheck

import (
	"errors"
	"log/slog"
	"net/http"
	"time"
)

// Sentinel errors for probe execution.
var (
	// ErrBadURL indicates a base URL that is empty or not absolute http(s).
	ErrBadURL = errors.New("apicheck: base URL must be absolute http or https")
	// ErrUnreachable indicates the request never produced a response.
	ErrUnreachable = errors.New("apicheck: endpoint unreachable")
	// ErrBadStatus indicates the endpoint answered outside the 2xx range.
	ErrBadStatus = errors.New("apicheck: endpoint returned non-2xx status")
)

// Doer is the injected HTTP client. *http.Client satisfies it, and so does
// any test double.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Options holds parameters to customize the probe.
type Options struct {
	// Client performs the request. Defaults to http.DefaultClient.
	Client Doer

	// Timeout bounds the probe when the caller's context carries no
	// deadline. A value of 0 disables the extra deadline.
	Timeout time.Duration

	// Logger receives probe diagnostics at Debug/Warn level.
	// Defaults to a logger that discards everything.
	Logger *slog.Logger
}

// DefaultOptions returns an Options with sane defaults:
//   - http.DefaultClient
//   - 10 s timeout
//   - silent logger
func DefaultOptions() Options {
	return Options{
		Client:  http.DefaultClient,
		Timeout: 10 * time.Second,
		Logger:  silentLogger(),
	}
}

// Result is the outcome of one probe.
type Result struct {
	// Status is the HTTP status code received (0 when unreachable).
	Status int
	// Latency is the request round-trip time.
	Latency time.Duration
	// OK is true for a 2xx answer.
	OK bool
}
