// Package metrics exposes Prometheus counters for calls, claims, push sends and HTTP traffic.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"callbell/internal/domain/entity"
	"callbell/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const namespace = "callbell"

// Metrics owns a dedicated registry so tests and multiple binaries never collide
// on the global one.
type Metrics struct {
	registry *prometheus.Registry

	pushSends    *prometheus.CounterVec
	claims       *prometheus.CounterVec
	callsCreated prometheus.Counter
	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec
}

// New creates the collectors and registers them together with the Go and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		pushSends: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "push_sends_total",
				Help:      "Push send attempts by event and outcome.",
			},
			[]string{"event", "outcome"},
		),
		claims: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "claims_total",
				Help:      "Claim attempts by result.",
			},
			[]string{"result"},
		),
		callsCreated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "calls_created_total",
				Help:      "Calls raised by tables.",
			},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests.",
			},
			[]string{"method", "path", "status"},
		),
		httpLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}

	m.registry.MustRegister(
		m.pushSends,
		m.claims,
		m.callsCreated,
		m.httpRequests,
		m.httpLatency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

var _ service.MetricsRecorder = (*Metrics)(nil)

func (m *Metrics) PushSent(event entity.PushEventType, outcome service.DeliveryOutcome) {
	m.pushSends.WithLabelValues(string(event), outcome.String()).Inc()
}

func (m *Metrics) ClaimResult(result string) {
	m.claims.WithLabelValues(result).Inc()
}

func (m *Metrics) CallCreated() {
	m.callsCreated.Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware counts requests and observes latency per route template.
// Unmatched routes fall back to the raw URL path.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}
			method := c.Request().Method

			m.httpRequests.WithLabelValues(method, path, strconv.Itoa(c.Response().Status)).Inc()
			m.httpLatency.WithLabelValues(method, path).Observe(time.Since(start).Seconds())

			return nil
		}
	}
}

func asRecorder(m *Metrics) service.MetricsRecorder {
	return m
}

// Module provides the metrics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		New,
		asRecorder,
	),
)
