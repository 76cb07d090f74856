package modkit

import (
	"time"

	"toxmanager/internal/core/lottery"
	"toxmanager/internal/platform/config"
	"toxmanager/internal/platform/logger"
	"toxmanager/internal/platform/metrics"
	"toxmanager/internal/platform/net/middleware"
	"toxmanager/internal/platform/token"
	"toxmanager/internal/store"
)

// Deps holds the core dependencies passed to modules
type Deps struct {
	Log     *logger.Logger
	Cfg     config.Conf
	Store   *store.Store
	Lottery lottery.Source
	Metrics *metrics.Metrics
	Tokens  *token.Issuer
	Auth    middleware.AuthPort
	Clock   func() time.Time
}

// Now reads Clock, falling back to time.Now
func (d Deps) Now() time.Time {
	if d.Clock != nil {
		return d.Clock()
	}
	return time.Now()
}

// Logger returns Log or a child of the root logger named component
func (d Deps) Logger(component string) *logger.Logger {
	if d.Log != nil {
		l := d.Log.With().Str("component", component).Logger()
		return &l
	}
	return logger.Named(component)
}
