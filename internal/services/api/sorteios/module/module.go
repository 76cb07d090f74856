// Package module wires the exam lottery endpoints into the API
package module

import (
	"toxmanager/internal/modkit"
	"toxmanager/internal/modkit/httpkit"

	"toxmanager/internal/services/api/sorteios/domain"
	sorteioshttp "toxmanager/internal/services/api/sorteios/http"
	sorteiossvc "toxmanager/internal/services/api/sorteios/service"
)

// Module implements modkit.Module
type Module struct {
	modkit.Base
	svc sorteiossvc.Service
}

// New constructs the lottery module. LOTTERY_MAX bounds one draw, the
// Notifier comes from modkit.WithPorts(domain.Ports{...})
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	m := &Module{}
	m.Base = modkit.NewBase(
		[]modkit.Option{modkit.WithName("sorteios"), modkit.WithPrefix("/sorteios")},
		opts,
		func(r httpkit.Router) { sorteioshttp.Register(r, m.svc, deps.Auth) },
	)
	ports, _ := m.Base.Ports().(domain.Ports)
	m.svc = sorteiossvc.New(deps.Store.Roster, deps.Store.Draws, sorteiossvc.Options{
		Max:     deps.Cfg.Prefix("LOTTERY_").MayInt("MAX", 10),
		Rand:    deps.Lottery,
		Now:     deps.Now,
		Metrics: deps.Metrics,
		Ports:   ports,
	})
	return m
}
