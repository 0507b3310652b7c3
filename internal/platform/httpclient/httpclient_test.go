package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoJSON_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/echo", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("X-Api-Key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"echo": in["name"]})
	}))
	defer srv.Close()

	c, err := NewWithBaseURL(srv.URL+"/", time.Second)
	require.NoError(t, err)

	var out map[string]string
	err = c.DoJSON(context.Background(), http.MethodPost, "v1/echo",
		map[string]string{"X-Api-Key": "secret", " ": "skip"},
		map[string]string{"name": "Rex"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "Rex", out["echo"])
}

func TestDoJSON_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(time.Second)
	err := c.DoJSON(context.Background(), http.MethodGet, srv.URL+"/missing", nil, nil, nil)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	assert.Equal(t, "nope", httpErr.Body)
	assert.Contains(t, httpErr.Error(), "status=404")
}

func TestDoJSON_RetriesOn5xx(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c, err := NewWithBaseURL(srv.URL, time.Second)
	require.NoError(t, err)
	c.WithRetries(2, time.Millisecond)

	require.NoError(t, c.DoJSON(context.Background(), http.MethodGet, "/flaky", nil, nil, nil))
	assert.Equal(t, int32(3), calls.Load())
}

func TestDoJSON_URLResolution(t *testing.T) {
	c := New(0)

	err := c.DoJSON(context.Background(), http.MethodGet, "/relative", nil, nil, nil)
	assert.ErrorContains(t, err, "relative path requires BaseURL")

	err = c.DoJSON(context.Background(), http.MethodGet, "  ", nil, nil, nil)
	assert.ErrorContains(t, err, "empty url")

	var nilClient *Client
	assert.Error(t, nilClient.DoJSON(context.Background(), http.MethodGet, "http://x", nil, nil, nil))
}

func TestNewWithBaseURL_Invalid(t *testing.T) {
	_, err := NewWithBaseURL("::not-a-url", time.Second)
	assert.ErrorContains(t, err, "invalid base url")

	c, err := NewWithBaseURL("", time.Second)
	require.NoError(t, err)
	assert.Empty(t, c.BaseURL)
}
