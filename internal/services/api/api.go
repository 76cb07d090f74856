// Package api composes the feature modules into the HTTP API
package api

import (
	"toxmanager/internal/core/version"
	"toxmanager/internal/platform/config"
	"toxmanager/internal/platform/logger"
	phttp "toxmanager/internal/platform/net/http"

	"toxmanager/internal/modkit"
	"toxmanager/internal/modkit/httpkit"
	"toxmanager/internal/modkit/module"
	"toxmanager/internal/modkit/swaggerkit"

	authmod "toxmanager/internal/services/api/auth/module"
	collabmod "toxmanager/internal/services/api/collaborators/module"
	dashmod "toxmanager/internal/services/api/dashboard/module"
	metamod "toxmanager/internal/services/api/meta/module"
	notifdomain "toxmanager/internal/services/api/notifications/domain"
	notifmod "toxmanager/internal/services/api/notifications/module"
	settingsmod "toxmanager/internal/services/api/settings/module"
	sorteiosdomain "toxmanager/internal/services/api/sorteios/domain"
	sorteiosmod "toxmanager/internal/services/api/sorteios/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Deps           modkit.Deps
	EnableSwagger  bool
	EnableProfiler bool
	EnableMetrics  bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) []modkit.Module {
	deps := opt.Deps

	// notifications owns the Notifier port the lottery pushes through
	notif := notifmod.New(deps)
	lottery := sorteiosmod.New(deps, modkit.WithPorts(sorteiosdomain.Ports{
		Notifier: module.MustPortsOf[notifdomain.Notifier](notif),
	}))

	mods := []modkit.Module{
		metamod.New(deps),
		authmod.New(deps),
		collabmod.New(deps),
		dashmod.New(deps),
		notif,
		lottery,
		settingsmod.New(deps),
	}

	swaggerkit.Mount(r, opt.EnableSwagger, swaggerkit.Info{
		Title:   "ToxManager API",
		Version: version.Info().Version,
		Base:    "/api/v1",
		Public:  []string{"/auth/login", "/meta/*"},
	})
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
	if opt.EnableMetrics && deps.Metrics != nil {
		r.Handle("/metrics", deps.Metrics.Handler())
	}

	httpkit.MountAPIV1(r, httpkit.CommonStack(opt.Config, deps.Metrics), func(api httpkit.Router) {
		for _, m := range mods {
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})
	logger.Named("api").Info().Strs("modules", module.Names()).Msg("api mounted")
	return mods
}
