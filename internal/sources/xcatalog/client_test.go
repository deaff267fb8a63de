package xcatalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loukach/infocar-eurotax-mapper/pkg/vehicles"
)

func TestFetchTrim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/trim/search", r.URL.Path)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "infocar", req["source"])
		assert.Equal(t, "201812128598", req["referenceCode"])
		assert.Equal(t, "it", req["country"])

		w.Write([]byte(`[{"name": "500X 1.0 Sport", "normalizedMake": "FIAT", "normalizedModel": "500X"}]`))
	}))
	defer srv.Close()

	client := New(srv.URL, "")
	trim, err := client.FetchTrim(context.Background(), "201812128598", "it")
	require.NoError(t, err)
	require.NotNil(t, trim)
	assert.Equal(t, "FIAT", trim.NormalizedMake)
}

func TestFetchTrimNotFound(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"status object", `{"code": "TRIM_NOT_FOUND"}`},
		{"empty list", `[]`},
		{"empty object", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			trim, err := New(srv.URL, "").FetchTrim(context.Background(), "201812128598", "it")
			require.NoError(t, err)
			assert.Nil(t, trim)
		})
	}
}

func TestFetchTrimSingleObject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name": "Panda 1.2", "make": "FIAT"}`))
	}))
	defer srv.Close()

	trim, err := New(srv.URL, "").FetchTrim(context.Background(), "201812128598", "it")
	require.NoError(t, err)
	require.NotNil(t, trim)
	assert.Equal(t, "Panda 1.2", trim.Name)
}

func TestExistingMapping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/private/mapping/infocar/201812128598", r.URL.Path)
		assert.Equal(t, "car", r.URL.Query().Get("vehicleType"))
		w.Write([]byte(`[
			{"id": "65a0", "destProvider": "eurotax", "destCode": "111"},
			{"id": "65b1", "destProvider": "eurotax", "destCode": "222"},
			{"id": "65c2", "destProvider": "otherprov", "destCode": "333"}
		]`))
	}))
	defer srv.Close()

	mapping, err := New(srv.URL, "").ExistingMapping(context.Background(), "201812128598", "car", "it")
	require.NoError(t, err)
	require.NotNil(t, mapping)

	// Greatest id among eurotax mappings wins; other providers are
	// ignored entirely.
	assert.Equal(t, "222", mapping.DestCode)
}

func TestExistingMappingNone(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id": "65c2", "destProvider": "otherprov"}]`))
	}))
	defer srv.Close()

	mapping, err := New(srv.URL, "").ExistingMapping(context.Background(), "201812128598", "car", "it")
	require.NoError(t, err)
	assert.Nil(t, mapping)
}

func TestSubmitMapping(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/private/mapping", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	err := New(srv.URL, "").SubmitMapping(context.Background(), "201812128598", "100000000001", 120, 157, vehicles.ClassCar, "it")
	require.NoError(t, err)

	assert.Equal(t, "manual", got["strategy"])
	assert.Equal(t, "car", got["vehicleType"])
	assert.Equal(t, "eurotax", got["destProvider"])
	assert.Equal(t, "infocar", got["sourceProvider"])
	assert.InDelta(t, 0.7643, got["score"], 0.0001)
}

func TestSubmitMappingValidation(t *testing.T) {
	err := New("http://localhost:1", "").SubmitMapping(context.Background(), "", "x", 1, 157, vehicles.ClassCar, "it")
	assert.Error(t, err)
}
