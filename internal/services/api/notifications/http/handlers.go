// Package http provides the inbox endpoints
package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	"toxmanager/internal/modkit/httpkit"
	"toxmanager/internal/platform/net/middleware"
	svc "toxmanager/internal/services/api/notifications/service"
)

// Register mounts the notifications endpoints behind the bearer port
func Register(r httpkit.Router, s svc.Service, auth middleware.AuthPort) {
	h := &handlers{svc: s}
	httpkit.Protected(r, auth, func(pr httpkit.Router) {
		httpkit.Get(pr, "/", h.list)
		httpkit.Post(pr, "/read-all", h.readAll)
		httpkit.Post(pr, "/{id}/read", h.read)
		pr.Delete("/{id}", httpkit.Handle(h.delete))
	})
}

type handlers struct{ svc svc.Service }

// @Summary Inbox with unread count
// @Tags Notifications
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.Inbox
// @Router /notifications [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	return h.svc.Inbox(r.Context())
}

// @Summary Mark one notification read
// @Tags Notifications
// @Security BearerAuth
// @Produce json
// @Param id path string true "Notification id"
// @Success 200 {object} store.Notification
// @Router /notifications/{id}/read [post]
func (h *handlers) read(r *stdhttp.Request) (any, error) {
	return h.svc.MarkRead(r.Context(), chi.URLParam(r, "id"))
}

// @Summary Mark every notification read
// @Tags Notifications
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.ReadAllResult
// @Router /notifications/read-all [post]
func (h *handlers) readAll(r *stdhttp.Request) (any, error) {
	return h.svc.MarkAllRead(r.Context())
}

// @Summary Delete one notification
// @Tags Notifications
// @Security BearerAuth
// @Param id path string true "Notification id"
// @Success 204
// @Router /notifications/{id} [delete]
func (h *handlers) delete(r *stdhttp.Request) httpkit.Response {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		return httpkit.Error(err)
	}
	return httpkit.NoContent()
}
