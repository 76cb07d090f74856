// Package http provides the settings endpoints
package http

import (
	stdhttp "net/http"

	"toxmanager/internal/modkit/httpkit"
	"toxmanager/internal/platform/net/middleware"
	"toxmanager/internal/services/api/settings/domain"
	svc "toxmanager/internal/services/api/settings/service"
)

// Register mounts the settings endpoints behind the bearer port
func Register(r httpkit.Router, s svc.Service, auth middleware.AuthPort) {
	h := &handlers{svc: s}
	httpkit.Protected(r, auth, func(pr httpkit.Router) {
		httpkit.Get(pr, "/", h.get)
		httpkit.PutJSON(pr, "/", h.put)
	})
}

type handlers struct{ svc svc.Service }

// @Summary Operator profile and preferences
// @Tags Settings
// @Security BearerAuth
// @Produce json
// @Success 200 {object} store.Profile
// @Router /settings [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.svc.Get(r.Context())
}

// @Summary Update profile and preferences
// @Tags Settings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param payload body domain.ProfileInput true "Profile"
// @Success 200 {object} store.Profile
// @Router /settings [put]
func (h *handlers) put(r *stdhttp.Request, in domain.ProfileInput) (any, error) {
	return h.svc.Update(r.Context(), in)
}
