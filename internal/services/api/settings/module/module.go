// Package module wires the settings endpoints into the API
package module

import (
	"toxmanager/internal/modkit"
	"toxmanager/internal/modkit/httpkit"

	settingshttp "toxmanager/internal/services/api/settings/http"
	settingssvc "toxmanager/internal/services/api/settings/service"
)

// Module implements modkit.Module
type Module struct {
	modkit.Base
	svc settingssvc.Service
}

// New constructs the settings module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	m := &Module{svc: settingssvc.New(deps.Store.Settings)}
	m.Base = modkit.NewBase(
		[]modkit.Option{modkit.WithName("settings"), modkit.WithPrefix("/settings")},
		opts,
		func(r httpkit.Router) { settingshttp.Register(r, m.svc, deps.Auth) },
	)
	return m
}

// Ports exposes the settings service
func (m *Module) Ports() any { return m.svc }
