// Package http provides the auth endpoints
package http

import (
	stdhttp "net/http"

	"toxmanager/internal/modkit/httpkit"
	"toxmanager/internal/platform/net/middleware"
	"toxmanager/internal/services/api/auth/domain"
	svc "toxmanager/internal/services/api/auth/service"
)

// Register mounts login publicly and me behind the bearer port
func Register(r httpkit.Router, s svc.Service, auth middleware.AuthPort) {
	h := &handlers{svc: s}
	httpkit.PostJSON(r, "/login", h.login)
	httpkit.Protected(r, auth, func(pr httpkit.Router) {
		httpkit.Get(pr, "/me", h.me)
	})
}

type handlers struct{ svc svc.Service }

// @Summary Sign in and receive a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body domain.LoginInput true "Credentials"
// @Success 200 {object} domain.Session
// @Router /auth/login [post]
func (h *handlers) login(r *stdhttp.Request, in domain.LoginInput) (any, error) {
	return h.svc.Login(r.Context(), in)
}

// @Summary Current operator
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.Operator
// @Router /auth/me [get]
func (h *handlers) me(r *stdhttp.Request) (any, error) {
	user, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Me(r.Context(), user)
}
