// Package http provides the dashboard endpoints
package http

import (
	stdhttp "net/http"

	"toxmanager/internal/modkit/httpkit"
	"toxmanager/internal/platform/net/middleware"
	collabhttp "toxmanager/internal/services/api/collaborators/http"
	svc "toxmanager/internal/services/api/dashboard/service"
)

// Register mounts the dashboard endpoints behind the bearer port
func Register(r httpkit.Router, s svc.Service, auth middleware.AuthPort) {
	h := &handlers{svc: s}
	httpkit.Protected(r, auth, func(pr httpkit.Router) {
		httpkit.Get(pr, "/kpis", h.kpis)
		httpkit.Get(pr, "/recent", h.recent)
	})
}

type handlers struct{ svc svc.Service }

// @Summary Dashboard tiles
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.KPIs
// @Router /dashboard/kpis [get]
func (h *handlers) kpis(r *stdhttp.Request) (any, error) {
	return h.svc.KPIs(r.Context())
}

// @Summary Dashboard roster table
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Param q query string false "Matches name, registration number or department"
// @Param sort query string false "asc or desc"
// @Param page query int false "1 based page"
// @Success 200 {object} roster.Page
// @Router /dashboard/recent [get]
func (h *handlers) recent(r *stdhttp.Request) (any, error) {
	in, err := collabhttp.ListQuery(r)
	if err != nil {
		return nil, err
	}
	p, err := h.svc.Recent(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.List(p.Items, httpkit.Page{
		Total:      p.Total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
	}), nil
}
