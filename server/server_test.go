package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nextlevelsbs/sopbuilder/config"
	"github.com/nextlevelsbs/sopbuilder/pkg/auth/static"
	"github.com/nextlevelsbs/sopbuilder/pkg/brand"
	"github.com/nextlevelsbs/sopbuilder/pkg/catalog"
	"github.com/nextlevelsbs/sopbuilder/pkg/compliance"
	"github.com/nextlevelsbs/sopbuilder/pkg/document"
	"github.com/nextlevelsbs/sopbuilder/pkg/generator"
	"github.com/nextlevelsbs/sopbuilder/pkg/job"

	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	documents, err := document.NewStore(t.TempDir())
	require.NoError(t, err)

	brands, err := brand.NewStore(t.TempDir(), t.TempDir())
	require.NoError(t, err)

	set := compliance.New()

	g := generator.New(nil, set)

	store := job.NewMemoryStore()

	return &config.Config{
		Catalog:    catalog.New(),
		Compliance: set,

		Generator: g,

		Jobs:       store,
		Dispatcher: job.NewDispatcher(store, g),

		Documents: documents,
		Renderer:  document.NewRenderer(),

		Brand: brands,
	}
}

func TestHealth(t *testing.T) {
	s, err := New(testConfig(t))
	require.NoError(t, err)

	server := httptest.NewServer(s)
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/health")
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Status  string `json:"status"`
		Version string `json:"version"`

		Services map[string]string `json:"services"`
	}

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	require.Equal(t, "healthy", result.Status)
	require.Equal(t, Version, result.Version)
	require.Equal(t, "operational", result.Services["api"])
}

func TestAuth(t *testing.T) {
	cfg := testConfig(t)

	authorizer, err := static.New("test-token")
	require.NoError(t, err)

	cfg.Authorizers = append(cfg.Authorizers, authorizer)

	s, err := New(cfg)
	require.NoError(t, err)

	server := httptest.NewServer(s)
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/v1/templates")
	require.NoError(t, err)

	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// health stays open
	resp, err = http.Get(server.URL + "/api/health")
	require.NoError(t, err)

	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req, err := http.NewRequest(http.MethodGet, server.URL+"/api/v1/templates", nil)
	require.NoError(t, err)

	req.Header.Set("Authorization", "Bearer test-token")

	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)

	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
