// Package http provides the exam lottery endpoints
package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	"toxmanager/internal/modkit/httpkit"
	"toxmanager/internal/platform/net/middleware"
	"toxmanager/internal/services/api/sorteios/domain"
	svc "toxmanager/internal/services/api/sorteios/service"
)

// Register mounts the lottery endpoints behind the bearer port
func Register(r httpkit.Router, s svc.Service, auth middleware.AuthPort) {
	h := &handlers{svc: s}
	httpkit.Protected(r, auth, func(pr httpkit.Router) {
		httpkit.Get(pr, "/eligible", h.pool)
		httpkit.Get(pr, "/", h.list)
		httpkit.PostJSON(pr, "/", h.draw)
		httpkit.Get(pr, "/{id}", h.get)
		httpkit.Post(pr, "/{id}/picks/{employeeID}/confirm", h.confirm)
	})
}

type handlers struct{ svc svc.Service }

// @Summary Eligible pool size
// @Tags Sorteios
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.PoolInfo
// @Router /sorteios/eligible [get]
func (h *handlers) pool(r *stdhttp.Request) (any, error) {
	return h.svc.Pool(r.Context())
}

// @Summary Run a draw
// @Tags Sorteios
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param payload body domain.DrawInput true "How many to pick"
// @Success 201 {object} store.Draw
// @Failure 409 {object} phttp.Envelope
// @Router /sorteios [post]
func (h *handlers) draw(r *stdhttp.Request, in domain.DrawInput) (any, error) {
	d, err := h.svc.Draw(r.Context(), httpkit.MustUser(r), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(d), nil
}

// @Summary Draw history
// @Tags Sorteios
// @Security BearerAuth
// @Produce json
// @Success 200 {array} store.Draw
// @Router /sorteios [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	return h.svc.List(r.Context())
}

// @Summary One draw
// @Tags Sorteios
// @Security BearerAuth
// @Produce json
// @Param id path string true "Draw id"
// @Success 200 {object} store.Draw
// @Router /sorteios/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.svc.Get(r.Context(), chi.URLParam(r, "id"))
}

// @Summary Confirm collection scheduling for a pick
// @Tags Sorteios
// @Security BearerAuth
// @Produce json
// @Param id path string true "Draw id"
// @Param employeeID path string true "Employee id"
// @Success 200 {object} store.Pick
// @Router /sorteios/{id}/picks/{employeeID}/confirm [post]
func (h *handlers) confirm(r *stdhttp.Request) (any, error) {
	return h.svc.Confirm(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "employeeID"))
}
