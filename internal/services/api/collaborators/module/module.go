// Package module wires the roster endpoints into the API
package module

import (
	"toxmanager/internal/modkit"
	"toxmanager/internal/modkit/httpkit"

	collabhttp "toxmanager/internal/services/api/collaborators/http"
	collabsvc "toxmanager/internal/services/api/collaborators/service"
)

// Module implements modkit.Module
type Module struct {
	modkit.Base
	svc collabsvc.Service
}

// New constructs the collaborators module. Page sizes come from
// ROSTER_PAGE_SIZE and ROSTER_MAX_PAGE_SIZE
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	cfg := deps.Cfg.Prefix("ROSTER_")
	m := &Module{svc: collabsvc.New(deps.Store.Roster, collabsvc.Options{
		PageSize:    cfg.MayInt("PAGE_SIZE", 10),
		MaxPageSize: cfg.MayInt("MAX_PAGE_SIZE", 100),
		Rand:        deps.Lottery,
		Metrics:     deps.Metrics,
	})}
	m.Base = modkit.NewBase(
		[]modkit.Option{modkit.WithName("collaborators"), modkit.WithPrefix("/collaborators")},
		opts,
		func(r httpkit.Router) { collabhttp.Register(r, m.svc, deps.Auth) },
	)
	return m
}

// Ports exposes the collaborators service
func (m *Module) Ports() any { return m.svc }
