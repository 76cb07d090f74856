package modkit

import (
	"net/http"

	phttp "toxmanager/internal/platform/net/http"
	str "toxmanager/internal/platform/strings"
)

// Base carries the routing state every module shares. Feature modules embed
// it and supply their own register function
type Base struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	ports  any

	subrouter func(phttp.Router) phttp.Router
	register  func(phttp.Router)
}

// NewBase resolves defaults and opts, then registers own before any extra
// endpoints passed with WithRegister
func NewBase(defaults []Option, opts []Option, own func(phttp.Router)) Base {
	b := Build(append(defaults, opts...)...)
	extra := b.Register
	return Base{
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		ports:     b.Ports,
		subrouter: b.Subrouter,
		register: func(r phttp.Router) {
			if own != nil {
				own(r)
			}
			extra(r)
		},
	}
}

// MountRoutes mounts the module under its prefix with its middlewares
func (m *Base) MountRoutes(r phttp.Router) {
	r.Route(m.Prefix(), func(rr phttp.Router) {
		if len(m.mws) > 0 {
			rr.Use(m.mws...)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Base) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the normalized route prefix
func (m *Base) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Base) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports returns the ports injected with WithPorts, modules that own ports override it
func (m *Base) Ports() any { return m.ports }
