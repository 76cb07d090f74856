// Package module wires meta endpoints into the API
package module

import (
	"time"

	"toxmanager/internal/core/version"
	"toxmanager/internal/modkit"
	"toxmanager/internal/modkit/httpkit"

	metahttp "toxmanager/internal/services/api/meta/http"
)

// Module implements modkit.Module
type Module struct {
	modkit.Base
	startedAt time.Time
}

// New constructs the meta module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	m := &Module{startedAt: deps.Now()}
	m.Base = modkit.NewBase(
		[]modkit.Option{modkit.WithName("meta"), modkit.WithPrefix("/meta")},
		opts,
		func(r httpkit.Router) {
			d := metahttp.Deps{
				ServiceName: version.Service,
				StartedAt:   m.startedAt,
				Now:         deps.Now,
			}
			if deps.Store != nil {
				d.Store = deps.Store
			}
			metahttp.Register(r, d)
		},
	)
	return m
}
