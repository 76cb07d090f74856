// Package http provides the roster endpoints
package http

import (
	stdhttp "net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"toxmanager/internal/core/roster"
	"toxmanager/internal/modkit/httpkit"
	perr "toxmanager/internal/platform/errors"
	"toxmanager/internal/platform/net/middleware"
	"toxmanager/internal/services/api/collaborators/domain"
	svc "toxmanager/internal/services/api/collaborators/service"
)

// Register mounts the collaborators endpoints behind the bearer port
func Register(r httpkit.Router, s svc.Service, auth middleware.AuthPort) {
	h := &handlers{svc: s}
	httpkit.Protected(r, auth, func(pr httpkit.Router) {
		httpkit.Get(pr, "/", h.list)
		httpkit.PostJSON(pr, "/", h.create)
		httpkit.PostJSON(pr, "/import", h.importRecords)
		httpkit.Get(pr, "/{id}", h.get)
		httpkit.PatchJSON(pr, "/{id}/status", h.updateStatus)
	})
}

type handlers struct{ svc svc.Service }

// ListQuery reads q, sort, page and size from the query string
func ListQuery(r *stdhttp.Request) (domain.ListInput, error) {
	q := r.URL.Query()
	dir, err := roster.ParseDirection(q.Get("sort"))
	if err != nil {
		return domain.ListInput{}, err
	}
	page, err := intParam(q.Get("page"), "page")
	if err != nil {
		return domain.ListInput{}, err
	}
	size, err := intParam(q.Get("size"), "size")
	if err != nil {
		return domain.ListInput{}, err
	}
	return domain.ListInput{Query: q.Get("q"), Sort: dir, Page: page, Size: size}, nil
}

func intParam(v, field string) (int, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, perr.WithField(perr.InvalidArgf("%s must be a positive integer", field), field)
	}
	return n, nil
}

// @Summary Search and page the roster
// @Tags Collaborators
// @Security BearerAuth
// @Produce json
// @Param q query string false "Matches name, registration number or department"
// @Param sort query string false "asc or desc"
// @Param page query int false "1 based page"
// @Param size query int false "Page size"
// @Success 200 {object} roster.Page
// @Router /collaborators [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	in, err := ListQuery(r)
	if err != nil {
		return nil, err
	}
	p, err := h.svc.List(r.Context(), in)
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

// @Summary One employee
// @Tags Collaborators
// @Security BearerAuth
// @Produce json
// @Param id path string true "Employee id"
// @Success 200 {object} roster.Employee
// @Router /collaborators/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.svc.Get(r.Context(), chi.URLParam(r, "id"))
}

// @Summary Register one employee
// @Tags Collaborators
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Employee"
// @Success 201 {object} roster.Employee
// @Router /collaborators [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	e, err := h.svc.Create(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(e), nil
}

// @Summary Import a batch of employees
// @Tags Collaborators
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param payload body domain.ImportInput true "Rows"
// @Success 201 {object} domain.ImportResult
// @Router /collaborators/import [post]
func (h *handlers) importRecords(r *stdhttp.Request, in domain.ImportInput) (any, error) {
	res, err := h.svc.Import(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(res), nil
}

// @Summary Change an employee status
// @Tags Collaborators
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Employee id"
// @Param payload body domain.StatusInput true "Status"
// @Success 200 {object} roster.Employee
// @Router /collaborators/{id}/status [patch]
func (h *handlers) updateStatus(r *stdhttp.Request, in domain.StatusInput) (any, error) {
	return h.svc.UpdateStatus(r.Context(), chi.URLParam(r, "id"), in)
}
