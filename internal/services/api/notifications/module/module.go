// Package module wires the inbox endpoints into the API
package module

import (
	"toxmanager/internal/modkit"
	"toxmanager/internal/modkit/httpkit"

	"toxmanager/internal/services/api/notifications/domain"
	notifhttp "toxmanager/internal/services/api/notifications/http"
	notifsvc "toxmanager/internal/services/api/notifications/service"
)

// Ports is what the notifications module offers other modules
type Ports struct {
	Notifier domain.Notifier
}

// Module implements modkit.Module
type Module struct {
	modkit.Base
	svc notifsvc.Service
}

// New constructs the notifications module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	m := &Module{svc: notifsvc.New(deps.Store.Notifications)}
	m.Base = modkit.NewBase(
		[]modkit.Option{modkit.WithName("notifications"), modkit.WithPrefix("/notifications")},
		opts,
		func(r httpkit.Router) { notifhttp.Register(r, m.svc, deps.Auth) },
	)
	return m
}

// Ports exposes the Notifier port
func (m *Module) Ports() any { return Ports{Notifier: m.svc} }
