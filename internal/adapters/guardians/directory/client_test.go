package directory_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"vet-clinic-backend/internal/adapters/guardians/directory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, status int, wantKey string) (*directory.Client, uuid.UUID) {
	t.Helper()

	id := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/guardians/"+id.String(), r.URL.Path)
		assert.Equal(t, wantKey, r.Header.Get("X-Api-Key"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status == http.StatusOK {
			_, _ = w.Write([]byte(`{"id":"` + id.String() + `"}`))
		}
	}))
	t.Cleanup(srv.Close)

	c, err := directory.NewClient(directory.Config{BaseURL: srv.URL, APIKey: wantKey})
	require.NoError(t, err)
	return c, id
}

func TestClient_Exists(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		want    bool
		wantErr error
	}{
		{name: "found", status: http.StatusOK, want: true},
		{name: "not found", status: http.StatusNotFound, want: false},
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: directory.ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, wantErr: directory.ErrUnauthorized},
		{name: "bad request", status: http.StatusBadRequest, wantErr: directory.ErrUpstream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, id := newClient(t, tt.status, "k-123")

			got, err := c.Exists(context.Background(), id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_UpstreamDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c, err := directory.NewClient(directory.Config{BaseURL: url})
	require.NoError(t, err)

	_, err = c.Exists(context.Background(), uuid.New())
	assert.ErrorIs(t, err, directory.ErrUpstream)
}

func TestClient_NotConfigured(t *testing.T) {
	c, err := directory.NewClient(directory.Config{})
	require.NoError(t, err)
	assert.False(t, c.IsConfigured())

	_, err = c.Exists(context.Background(), uuid.New())
	assert.ErrorIs(t, err, directory.ErrNotConfigured)
}
