package index

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "releasecraft/internal/errors"
)

func indexServer(t *testing.T, versions []string, hits *int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			*hits++
		}
		releases := "{"
		for i, v := range versions {
			if i > 0 {
				releases += ","
			}
			releases += fmt.Sprintf("%q: []", v)
		}
		releases += "}"
		_, _ = fmt.Fprintf(w, `{"info": {"version": %q}, "releases": %s}`, versions[0], releases)
	}))
}

func TestProductionVersion_ExcludesPrereleases(t *testing.T) {
	server := indexServer(t, []string{"1.0.0", "2.0.0-beta.1", "1.1.0"}, nil)
	defer server.Close()

	client := NewClient(server.URL, server.URL, "adri", time.Minute)

	version, err := client.ProductionVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.1.0", version)
}

func TestStagingVersion_IncludesPrereleases(t *testing.T) {
	server := indexServer(t, []string{"1.0.0", "2.0.0-beta.1", "1.1.0"}, nil)
	defer server.Close()

	client := NewClient(server.URL, server.URL, "adri", time.Minute)

	version, err := client.StagingVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2.0.0-beta.1", version)
}

func TestFetch_CachesWithinTTL(t *testing.T) {
	hits := 0
	server := indexServer(t, []string{"1.0.0"}, &hits)
	defer server.Close()

	client := NewClient(server.URL, server.URL, "adri", time.Minute)
	ctx := context.Background()

	_, err := client.ProductionVersion(ctx)
	require.NoError(t, err)
	_, err = client.ProductionVersion(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, hits, "second lookup should be served from cache")
}

func TestFetch_PackageNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := NewClient(server.URL, server.URL, "missing", time.Minute)

	_, err := client.ProductionVersion(context.Background())
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.TypeIndex, appErr.Type)
}

func TestFetch_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, server.URL, "adri", time.Minute)

	_, err := client.StagingVersion(context.Background())
	assert.Error(t, err)
}

func TestFetch_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.URL, "adri", time.Minute)

	_, err := client.ProductionVersion(context.Background())
	assert.Error(t, err)
}

func TestProductionVersion_NoReleases(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"info": {"version": ""}, "releases": {}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.URL, "adri", time.Minute)

	version, err := client.ProductionVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", version)
}
