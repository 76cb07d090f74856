// Package metrics exposes Prometheus collectors for the roster, the lottery
// and the HTTP layer
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds every collector. A nil *Metrics is a valid no-op
type Metrics struct {
	reg *prometheus.Registry

	Draws         prometheus.Counter
	Picks         prometheus.Counter
	Shortfalls    prometheus.Counter
	StatusUpdates *prometheus.CounterVec
	Imported      prometheus.Counter
	RosterSize    prometheus.Gauge
	EligiblePool  prometheus.Gauge

	Requests *prometheus.HistogramVec
}

// New registers all collectors on a fresh registry, with Go and process
// collectors alongside
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		reg: reg,
		Draws: f.NewCounter(prometheus.CounterOpts{
			Name: "toxmanager_draws_total",
			Help: "Lottery draws recorded",
		}),
		Picks: f.NewCounter(prometheus.CounterOpts{
			Name: "toxmanager_draw_picks_total",
			Help: "Employees selected across all draws",
		}),
		Shortfalls: f.NewCounter(prometheus.CounterOpts{
			Name: "toxmanager_draw_shortfalls_total",
			Help: "Draws that returned fewer picks than requested because the eligible pool was smaller",
		}),
		StatusUpdates: f.NewCounterVec(prometheus.CounterOpts{
			Name: "toxmanager_status_updates_total",
			Help: "Employee status changes by new status",
		}, []string{"status"}),
		Imported: f.NewCounter(prometheus.CounterOpts{
			Name: "toxmanager_employees_added_total",
			Help: "Employees added by manual registration or import",
		}),
		RosterSize: f.NewGauge(prometheus.GaugeOpts{
			Name: "toxmanager_roster_size",
			Help: "Employees currently on the roster",
		}),
		EligiblePool: f.NewGauge(prometheus.GaugeOpts{
			Name: "toxmanager_eligible_pool_size",
			Help: "Active employees eligible for the next draw",
		}),
		Requests: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "toxmanager_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status code",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"method", "route", "code"}),
	}
}

// Registry returns the underlying registry, nil for a nil receiver
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.reg
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}

// ObserveDraw counts one draw of picked employees out of requested
func (m *Metrics) ObserveDraw(requested, picked int) {
	if m == nil {
		return
	}
	m.Draws.Inc()
	m.Picks.Add(float64(picked))
	if picked < requested {
		m.Shortfalls.Inc()
	}
}

// ObserveStatus counts one status change
func (m *Metrics) ObserveStatus(status string) {
	if m != nil {
		m.StatusUpdates.WithLabelValues(status).Inc()
	}
}

// ObserveAdded counts employees added to the roster
func (m *Metrics) ObserveAdded(n int) {
	if m != nil && n > 0 {
		m.Imported.Add(float64(n))
	}
}

// SetRoster publishes the roster and eligible pool sizes
func (m *Metrics) SetRoster(size, eligible int) {
	if m == nil {
		return
	}
	m.RosterSize.Set(float64(size))
	m.EligiblePool.Set(float64(eligible))
}

// Middleware records request latency labelled by chi route pattern
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.Requests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Observe(time.Since(start).Seconds())
	})
}
