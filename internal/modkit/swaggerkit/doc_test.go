package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	phttp "toxmanager/internal/platform/net/http"
)

func noop(http.ResponseWriter, *http.Request) {}

func testInfo() Info {
	return Info{Title: "ToxManager API", Version: "test", Base: "/api/v1", Public: []string{"/auth/login", "/meta/*"}}
}

func TestBuild(t *testing.T) {
	mux := chi.NewRouter()
	mux.Get("/metrics", noop)
	mux.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", noop)
		r.Get("/meta/health", noop)
		r.Get("/collaborators/", noop)
		r.Patch("/collaborators/{id}/status", noop)
		r.Post("/sorteios/{id}/picks/{employeeID}/confirm", noop)
	})

	spec, err := Build(mux, testInfo())
	require.NoError(t, err)

	paths := spec["paths"].(map[string]any)
	assert.NotContains(t, paths, "/metrics")
	require.Contains(t, paths, "/collaborators")
	require.Contains(t, paths, "/collaborators/{id}/status")

	patch := paths["/collaborators/{id}/status"].(map[string]any)["patch"].(map[string]any)
	assert.Equal(t, "patchCollaboratorsIdStatus", patch["operationId"])
	assert.Equal(t, []any{"collaborators"}, patch["tags"])
	assert.Len(t, patch["parameters"], 1)
	assert.Contains(t, patch, "security")

	confirm := paths["/sorteios/{id}/picks/{employeeID}/confirm"].(map[string]any)["post"].(map[string]any)
	assert.Len(t, confirm["parameters"], 2)

	login := paths["/auth/login"].(map[string]any)["post"].(map[string]any)
	assert.NotContains(t, login, "security")
	health := paths["/meta/health"].(map[string]any)["get"].(map[string]any)
	assert.NotContains(t, health, "security")

	assert.Equal(t, "3.0.3", spec["openapi"])
}

func TestMount(t *testing.T) {
	r := phttp.AdaptChi(chi.NewRouter())
	r.Route("/api/v1", func(api phttp.Router) { api.Get("/meta/version", noop) })
	Mount(r, true, testInfo())

	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var spec map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &spec))
	assert.Equal(t, "ToxManager API", spec["info"].(map[string]any)["title"])

	rr = httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/docs", nil))
	assert.Equal(t, http.StatusPermanentRedirect, rr.Code)

	off := phttp.AdaptChi(chi.NewRouter())
	Mount(off, false, testInfo())
	rr = httptest.NewRecorder()
	off.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
