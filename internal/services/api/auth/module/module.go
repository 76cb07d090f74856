// Package module wires the auth endpoints into the API
package module

import (
	"toxmanager/internal/modkit"
	"toxmanager/internal/modkit/httpkit"

	authhttp "toxmanager/internal/services/api/auth/http"
	authsvc "toxmanager/internal/services/api/auth/service"
)

// Module implements modkit.Module
type Module struct {
	modkit.Base
	svc authsvc.Service
}

// New constructs the auth module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	m := &Module{svc: authsvc.New(deps.Tokens, deps.Store.Settings, deps.Logger("auth"))}
	m.Base = modkit.NewBase(
		[]modkit.Option{modkit.WithName("auth"), modkit.WithPrefix("/auth")},
		opts,
		func(r httpkit.Router) { authhttp.Register(r, m.svc, deps.Auth) },
	)
	return m
}

// Ports exposes the auth service
func (m *Module) Ports() any { return m.svc }
