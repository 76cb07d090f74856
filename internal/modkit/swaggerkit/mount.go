// Package swaggerkit serves Swagger UI and an OpenAPI document built from
// the routes mounted on the router
package swaggerkit

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	phttp "toxmanager/internal/platform/net/http"
)

// Mount serves the UI at /api/docs and the document at /api/docs/doc.json
func Mount(r phttp.Router, enabled bool, info Info) {
	if !enabled {
		return
	}
	r.Get("/api/docs", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get("/api/docs/doc.json", serveDocJSON(r, info))
	r.Handle("/api/docs/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL("/api/docs/doc.json"),
	))
}
