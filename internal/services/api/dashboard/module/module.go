// Package module wires the dashboard endpoints into the API
package module

import (
	"toxmanager/internal/modkit"
	"toxmanager/internal/modkit/httpkit"

	dashhttp "toxmanager/internal/services/api/dashboard/http"
	dashsvc "toxmanager/internal/services/api/dashboard/service"
)

// Module implements modkit.Module
type Module struct {
	modkit.Base
	svc dashsvc.Service
}

// New constructs the dashboard module, DASHBOARD_PAGE_SIZE sets the table size
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	size := deps.Cfg.Prefix("DASHBOARD_").MayInt("PAGE_SIZE", 5)
	m := &Module{svc: dashsvc.New(deps.Store.Roster, size)}
	m.Base = modkit.NewBase(
		[]modkit.Option{modkit.WithName("dashboard"), modkit.WithPrefix("/dashboard")},
		opts,
		func(r httpkit.Router) { dashhttp.Register(r, m.svc, deps.Auth) },
	)
	return m
}

// Ports exposes the dashboard service
func (m *Module) Ports() any { return m.svc }
