package geo_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"dispatch/internal/adapters/out/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Geocode(t *testing.T) {
	t.Run("resolves an area", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/geocode/search", r.URL.Path)
			assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
			assert.Equal(t, "Andheri, Mumbai", r.URL.Query().Get("text"))
			assert.Equal(t, "IND", r.URL.Query().Get("boundary.country"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"features": [
					{"geometry": {"coordinates": [72.8467, 19.1197]}}
				]
			}`))
		}))
		defer server.Close()

		client := geo.NewClient(server.URL, "test-key", "Mumbai", "IND")
		point, err := client.Geocode(t.Context(), "Andheri")

		require.NoError(t, err)
		assert.InDelta(t, 19.1197, point.Lat, 1e-9)
		assert.InDelta(t, 72.8467, point.Lng, 1e-9)
	})

	t.Run("no match", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"features": []}`))
		}))
		defer server.Close()

		client := geo.NewClient(server.URL, "test-key", "Mumbai", "IND")
		_, err := client.Geocode(t.Context(), "Atlantis")

		require.ErrorIs(t, err, geo.ErrAreaNotFound)
	})

	t.Run("upstream error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		client := geo.NewClient(server.URL, "bad-key", "Mumbai", "IND")
		_, err := client.Geocode(t.Context(), "Andheri")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 403")
	})

	t.Run("malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer server.Close()

		client := geo.NewClient(server.URL, "test-key", "Mumbai", "IND")
		_, err := client.Geocode(t.Context(), "Andheri")

		require.Error(t, err)
	})
}
