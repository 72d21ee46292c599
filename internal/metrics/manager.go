package metrics

import (
	"bytes"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

// Manager owns the custom registry for the dashboard's request metrics and
// gathers them after the per-service gauges.
type Manager struct {
	namespace        string
	histogramBuckets []float64
	enabled          bool
	registry         *prometheus.Registry
	services         *ServiceCollector

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// NewManager creates a metrics manager on a fresh registry unless one is given.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "teamboard",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}

	auto := promauto.With(m.registry)
	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests served by the dashboard",
	}, []string{"method", "path", "status"})
	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration in seconds",
		Buckets:   m.histogramBuckets,
	}, []string{"method", "path", "status"})

	return m
}

// Registry returns the underlying registry
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// RecordHTTPRequest counts one served request. path is the route pattern.
func (m *Manager) RecordHTTPRequest(method, path, status string, d time.Duration) {
	if !m.enabled {
		return
	}
	m.httpRequests.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path, status).Observe(d.Seconds())
}

// Gather implements prometheus.Gatherer
func (m *Manager) Gather() ([]*dto.MetricFamily, error) {
	var families []*dto.MetricFamily
	if m.services != nil {
		svc, err := m.services.Families()
		if err != nil {
			return nil, err
		}
		families = append(families, svc...)
	}
	own, err := m.registry.Gather()
	if err != nil {
		return families, err
	}
	return append(families, own...), nil
}

// Handler serves the gathered families
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m, promhttp.HandlerOpts{})
}

// Render encodes everything g gathers in the text exposition format
func Render(g prometheus.Gatherer) (string, error) {
	families, err := g.Gather()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(&buf, mf); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}
