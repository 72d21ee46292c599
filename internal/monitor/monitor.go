// Package monitor probes every registered service on demand and merges the
// outcomes with the rolling history into snapshots.
package monitor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"teamboard/internal/constants"
	"teamboard/internal/history"
	"teamboard/internal/logger"
	"teamboard/internal/registry"
)

// Monitor aggregates probes over a registry source. It holds no schedule of
// its own: every Status call is an independent fan-out.
type Monitor struct {
	source      registry.Source
	store       *history.Store
	prober      *Prober
	host        string
	diagTimeout time.Duration
}

// Config holds the monitor collaborators
type Config struct {
	Source      registry.Source
	Store       *history.Store
	Prober      *Prober
	Host        string
	DiagTimeout time.Duration
}

// New creates a monitor. A nil store or prober gets a default one.
func New(cfg Config) *Monitor {
	m := &Monitor{
		source:      cfg.Source,
		store:       cfg.Store,
		prober:      cfg.Prober,
		host:        cfg.Host,
		diagTimeout: cfg.DiagTimeout,
	}
	if m.source == nil {
		m.source = registry.Static(nil)
	}
	if m.store == nil {
		m.store = history.NewStore(constants.DefaultHistoryWindow)
	}
	if m.prober == nil {
		m.prober = NewProber()
	}
	if m.diagTimeout <= 0 {
		m.diagTimeout = constants.DefaultDiagTimeout
	}
	return m
}

// History returns the store the monitor records into
func (m *Monitor) History() *history.Store {
	return m.store
}

// Source returns the registry source
func (m *Monitor) Source() registry.Source {
	return m.source
}

// Host returns the public host label
func (m *Monitor) Host() string {
	return m.host
}

// CheckAll probes every descriptor with a name concurrently and waits for
// all of them. Results keep registry order.
func (m *Monitor) CheckAll(ctx context.Context, teams []registry.ServiceDescriptor, host string) []ProbeResult {
	named := make([]registry.ServiceDescriptor, 0, len(teams))
	for _, t := range teams {
		if t.Name != "" {
			named = append(named, t)
		}
	}

	results := make([]ProbeResult, len(named))
	var wg sync.WaitGroup
	for i, t := range named {
		wg.Add(1)
		go func(i int, d registry.ServiceDescriptor) {
			defer wg.Done()
			results[i] = m.prober.Probe(ctx, d, host)
		}(i, t)
	}
	wg.Wait()

	logger.Debugf("Health check completed for %d services", len(results))
	return results
}

// Status runs one aggregation pass: probe, record, then attach uptime and
// the latched last error.
func (m *Monitor) Status(ctx context.Context) Snapshot {
	results := m.CheckAll(ctx, m.source.Teams(), m.host)

	now := m.store.Now()
	m.record(now, results)

	for i := range results {
		r := &results[i]
		r.UptimePct = m.store.UptimePct(r.Name)
		if r.ErrorText() == "" {
			if last := m.store.LastError(r.Name); last != "" {
				r.Error = &last
			}
		}
	}

	return Snapshot{Host: m.host, Results: results, TS: int64(now)}
}

func (m *Monitor) record(ts float64, results []ProbeResult) {
	for _, r := range results {
		latency := r.LatencyMS
		m.store.RecordAt(ts, r.Name, r.Up(), &latency, r.Error)
	}
}

// Teams returns the current registry with the host label
func (m *Monitor) Teams() TeamsView {
	return TeamsView{Host: m.host, Teams: m.source.Teams()}
}

// Diag checks internal reachability one service at a time with the short
// diag timeout. Only failures are reported. History is not touched.
func (m *Monitor) Diag(ctx context.Context) DiagReport {
	report := DiagReport{OK: true, Errors: []string{}, InternalChecks: []DiagCheck{}}

	if v, ok := m.source.(registry.Validator); ok {
		if err := v.Validate(); err != nil {
			report.OK = false
			report.Errors = append(report.Errors, fmt.Sprintf("TEAMS_JSON invalid: %v", err))
		}
	}

	for _, t := range m.source.Teams() {
		if t.Name == "" {
			continue
		}
		code, err := m.prober.get(ctx, m.prober.InternalURL(t.Name), m.diagTimeout, nil)
		switch {
		case err != nil:
			report.InternalChecks = append(report.InternalChecks, DiagCheck{Name: t.Name, Error: err.Error()})
		case code < 200 || code >= 300:
			report.InternalChecks = append(report.InternalChecks, DiagCheck{Name: t.Name, Status: code})
		}
	}
	return report
}

// Stream hands a fresh snapshot to fn immediately and then once per
// interval until ctx is done or fn returns an error.
func (m *Monitor) Stream(ctx context.Context, interval time.Duration, fn func(Snapshot) error) error {
	if interval <= 0 {
		interval = constants.DefaultStreamInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := fn(m.Status(ctx)); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
