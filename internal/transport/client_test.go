package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loukach/infocar-eurotax-mapper/pkg/errors"
)

func TestClientGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/trims", r.URL.Path)
		assert.Equal(t, "it", r.URL.Query().Get("country"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"count": 3}`))
	}))
	defer srv.Close()

	client := New("catalogue", srv.URL, nil, "")

	var out struct {
		Count int `json:"count"`
	}
	query := url.Values{"country": {"it"}}
	require.NoError(t, client.Get(context.Background(), "/trims", query, &out))
	assert.Equal(t, 3, out.Count)
}

func TestClientPutJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"ok": true}`))
	}))
	defer srv.Close()

	client := New("catalogue", srv.URL, nil, "")

	var out struct {
		OK bool `json:"ok"`
	}
	err := client.PutJSON(context.Background(), "/trim/search", map[string]string{"source": "infocar"}, &out)
	require.NoError(t, err)
	assert.True(t, out.OK)
}

func TestClientAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sekrit", r.Header.Get("Authorization"))
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := New("mapping", srv.URL, &BearerAuth{}, "sekrit")
	require.NoError(t, client.Get(context.Background(), "/", nil, nil))
}

func TestClientErrorStatuses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/missing":
			http.Error(w, "nope", http.StatusNotFound)
		case "/broken":
			http.Error(w, "boom", http.StatusInternalServerError)
		default:
			w.Write([]byte(`{}`))
		}
	}))
	defer srv.Close()

	client := New("catalogue", srv.URL, nil, "")

	err := client.Get(context.Background(), "/missing", nil, nil)
	assert.ErrorIs(t, err, errors.ErrNotFound)

	err = client.Get(context.Background(), "/broken", nil, nil)
	assert.ErrorIs(t, err, errors.ErrProviderUnavailable)

	var apiErr *errors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestClientEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := New("mapping", srv.URL, nil, "")

	var out map[string]any
	assert.NoError(t, client.PostJSON(context.Background(), "/mapping", map[string]string{}, &out))
	assert.Empty(t, out)
}
