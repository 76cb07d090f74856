package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"toxmanager/internal/platform/config"
	"toxmanager/internal/platform/metrics"
	phttp "toxmanager/internal/platform/net/http"
	"toxmanager/internal/platform/net/middleware"
)

// CommonStack is the middleware every API router gets. cfg supplies
// CORS_ORIGINS and SLOW_REQUEST, m may be nil
func CommonStack(cfg config.Conf, m *metrics.Metrics) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.LogContext,
		middleware.RecoverJSON,
		middleware.NoCache(),
		middleware.AccessLog(middleware.AccessLogOptions{
			Slow: cfg.MayDuration("SLOW_REQUEST", 500*time.Millisecond),
		}),
		m.Middleware,
		middleware.CORS(middleware.CORSOptions{
			AllowedOrigins: cfg.MayCSV("CORS_ORIGINS", nil),
		}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.Timeout(30 * time.Second),
	}
}

// Auth wires the auth middleware to the platform JSON writer
func Auth(p middleware.AuthPort) func(http.Handler) http.Handler {
	return middleware.Auth(p, phttp.JSON)
}
