package metrics

import (
	"math"

	"teamboard/internal/history"
	"teamboard/internal/registry"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const (
	serviceLabel = "service"

	upHelp      = "1 if the service is UP, 0 if DOWN"
	latencyHelp = "Latency of /health in ms (latest reading)"
	uptimeHelp  = "Uptime in % within the local window"
)

// ServiceCollector turns the latest history sample of every registered
// service into gauges. Services never probed still get a series.
type ServiceCollector struct {
	source registry.Source
	store  *history.Store

	up      *prometheus.Desc
	latency *prometheus.Desc
	uptime  *prometheus.Desc
}

// NewServiceCollector creates a collector reading from source and store
func NewServiceCollector(source registry.Source, store *history.Store) *ServiceCollector {
	return &ServiceCollector{
		source: source,
		store:  store,
		up:      prometheus.NewDesc("service_up", upHelp, []string{serviceLabel}, nil),
		latency: prometheus.NewDesc("service_latency_ms", latencyHelp, []string{serviceLabel}, nil),
		uptime:  prometheus.NewDesc("service_uptime_pct", uptimeHelp, []string{serviceLabel}, nil),
	}
}

// Describe implements prometheus.Collector
func (c *ServiceCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.up
	ch <- c.latency
	ch <- c.uptime
}

// Collect implements prometheus.Collector. Names come in registry order;
// duplicates collapse into one series.
func (c *ServiceCollector) Collect(ch chan<- prometheus.Metric) {
	for _, name := range c.names() {
		up, latency := 0.0, math.NaN()
		if s, ok := c.store.Latest(name); ok {
			up = float64(s.Up)
			if s.LatencyMS != nil {
				latency = float64(*s.LatencyMS)
			}
		}
		ch <- prometheus.MustNewConstMetric(c.up, prometheus.GaugeValue, up, name)
		ch <- prometheus.MustNewConstMetric(c.latency, prometheus.GaugeValue, latency, name)
		ch <- prometheus.MustNewConstMetric(c.uptime, prometheus.GaugeValue, c.store.UptimePct(name), name)
	}
}

func (c *ServiceCollector) names() []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, name := range registry.Names(c.source.Teams()) {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}

// Families collects into metric families without the sorting a
// prometheus.Registry applies, so series keep registry order.
func (c *ServiceCollector) Families() ([]*dto.MetricFamily, error) {
	families := []*dto.MetricFamily{
		gaugeFamily("service_up", upHelp),
		gaugeFamily("service_latency_ms", latencyHelp),
		gaugeFamily("service_uptime_pct", uptimeHelp),
	}
	byDesc := map[*prometheus.Desc]*dto.MetricFamily{
		c.up:      families[0],
		c.latency: families[1],
		c.uptime:  families[2],
	}

	ch := make(chan prometheus.Metric)
	go func() {
		c.Collect(ch)
		close(ch)
	}()

	var firstErr error
	for metric := range ch {
		out := &dto.Metric{}
		if err := metric.Write(out); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		fam := byDesc[metric.Desc()]
		fam.Metric = append(fam.Metric, out)
	}
	if firstErr != nil {
		return nil, firstErr
	}
	// An empty registry must not produce families without series.
	if len(families[0].Metric) == 0 {
		return nil, nil
	}
	return families, nil
}

func gaugeFamily(name, help string) *dto.MetricFamily {
	typ := dto.MetricType_GAUGE
	return &dto.MetricFamily{Name: &name, Help: &help, Type: &typ, Metric: []*dto.Metric{}}
}
