package apicheck

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// healthPath is the well-known endpoint every pipeline API exposes.
const healthPath = "/health"

// Ping probes <baseURL>/health with one GET and reports status and latency.
//
// The caller's ctx bounds the probe; when opts.Timeout is positive it adds
// a deadline on top. nil opts means DefaultOptions.
//
// Errors:
//   - ErrBadURL      — baseURL is empty or not absolute http(s).
//   - ErrUnreachable — the request produced no response; the transport
//     error is attached to the message.
//   - ErrBadStatus   — the endpoint answered outside 2xx; the returned
//     Result still carries the status and latency.
func Ping(ctx context.Context, baseURL string, opts *Options) (Result, error) {
	resolved := DefaultOptions()
	if opts != nil {
		resolved = *opts
		if resolved.Client == nil {
			resolved.Client = http.DefaultClient
		}
		if resolved.Logger == nil {
			resolved.Logger = silentLogger()
		}
	}

	target, err := probeURL(baseURL)
	if err != nil {
		return Result{}, err
	}

	if resolved.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, resolved.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrBadURL, err)
	}

	resolved.Logger.Debug("probing pipeline API", "url", target)

	start := time.Now()
	resp, err := resolved.Client.Do(req)
	latency := time.Since(start)
	if err != nil {
		resolved.Logger.Warn("probe failed", "url", target, "err", err)

		return Result{Latency: latency}, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body) // keep the connection reusable

	res := Result{
		Status:  resp.StatusCode,
		Latency: latency,
		OK:      resp.StatusCode >= 200 && resp.StatusCode < 300,
	}
	if !res.OK {
		resolved.Logger.Warn("probe unhealthy", "url", target, "status", resp.StatusCode)

		return res, fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}

	resolved.Logger.Debug("probe ok", "url", target, "status", res.Status, "latency", latency)

	return res, nil
}

// probeURL validates the base URL and appends the health path.
func probeURL(baseURL string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", ErrBadURL
	}

	return strings.TrimRight(baseURL, "/") + healthPath, nil
}
