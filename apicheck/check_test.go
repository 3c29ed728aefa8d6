package apicheck_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fringelab/beamkit/apicheck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// doerFunc adapts a function to the Doer interface for test doubles.
type doerFunc func(req *http.Request) (*http.Response, error)

func (f doerFunc) Do(req *http.Request) (*http.Response, error) { return f(req) }

// TestPing_Healthy probes a live test server answering 200 on /health.
func TestPing_Healthy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path, "probe must hit the health endpoint")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	res, err := apicheck.Ping(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.Equal(t, http.StatusOK, res.Status)
	assert.Greater(t, res.Latency.Nanoseconds(), int64(0), "latency must be measured")
}

// TestPing_TrailingSlash verifies the base URL is joined cleanly.
func TestPing_TrailingSlash(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
	}))
	defer srv.Close()

	_, err := apicheck.Ping(context.Background(), srv.URL+"/", nil)
	require.NoError(t, err)
	assert.Equal(t, "/health", gotPath, "trailing slash must not double up")
}

// TestPing_BadStatus: a 500 answer is ErrBadStatus but still reports
// status and latency.
func TestPing_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	res, err := apicheck.Ping(context.Background(), srv.URL, nil)
	assert.ErrorIs(t, err, apicheck.ErrBadStatus)
	assert.False(t, res.OK)
	assert.Equal(t, http.StatusInternalServerError, res.Status)
}

// TestPing_Unreachable: a transport failure maps to ErrUnreachable.
func TestPing_Unreachable(t *testing.T) {
	boom := errors.New("connection refused")
	opts := apicheck.DefaultOptions()
	opts.Client = doerFunc(func(req *http.Request) (*http.Response, error) {
		return nil, boom
	})

	_, err := apicheck.Ping(context.Background(), "http://freesim.invalid", &opts)
	assert.ErrorIs(t, err, apicheck.ErrUnreachable)
	assert.Contains(t, err.Error(), "connection refused", "transport error must be attached")
}

// TestPing_BadURL rejects empty, relative, and non-http base URLs.
func TestPing_BadURL(t *testing.T) {
	for _, bad := range []string{"", "freesim.lab", "ftp://freesim.lab", "http://"} {
		_, err := apicheck.Ping(context.Background(), bad, nil)
		assert.ErrorIs(t, err, apicheck.ErrBadURL, "base URL %q must be rejected", bad)
	}
}

// TestPing_InjectedClient confirms the probe goes through the supplied Doer
// and never touches the network.
func TestPing_InjectedClient(t *testing.T) {
	var seen *http.Request
	opts := apicheck.DefaultOptions()
	opts.Client = doerFunc(func(req *http.Request) (*http.Response, error) {
		seen = req

		return &http.Response{StatusCode: http.StatusNoContent, Body: http.NoBody}, nil
	})

	res, err := apicheck.Ping(context.Background(), "http://freesim.lab.example", &opts)
	require.NoError(t, err)
	require.NotNil(t, seen)
	assert.Equal(t, "http://freesim.lab.example/health", seen.URL.String())
	assert.True(t, res.OK, "204 counts as healthy")
}

// TestPing_CanceledContext propagates cancellation as ErrUnreachable.
func TestPing_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := apicheck.DefaultOptions()
	opts.Client = http.DefaultClient

	_, err := apicheck.Ping(ctx, "http://127.0.0.1:1", &opts)
	assert.ErrorIs(t, err, apicheck.ErrUnreachable)
}
