package monitor

import "teamboard/internal/registry"

// Status is the derived liveness of one probe
type Status string

const (
	StatusUp   Status = "up"
	StatusDown Status = "down"
)

// ProbeResult is the outcome of probing one service. It is never persisted.
type ProbeResult struct {
	Name        string  `json:"name"`
	Tag         string  `json:"tag"`
	Port        int     `json:"port"`
	Repo        *string `json:"repo"`
	InternalURL string  `json:"internal_url"`
	ExternalURL *string `json:"external_url"`
	Status      Status  `json:"status"`
	HTTPCode    *int    `json:"http_code"`
	LatencyMS   int64   `json:"latency_ms"`
	Error       *string `json:"error"`
	UptimePct   float64 `json:"uptime_pct"`
}

// Up reports whether the probe passed
func (r ProbeResult) Up() bool {
	return r.Status == StatusUp
}

// ErrorText returns the error message or an empty string
func (r ProbeResult) ErrorText() string {
	if r.Error == nil {
		return ""
	}
	return *r.Error
}

// Snapshot is one aggregation pass over the whole registry
type Snapshot struct {
	Host    string        `json:"host"`
	Results []ProbeResult `json:"results"`
	TS      int64         `json:"ts"`
}

// TeamsView is the registry as shown to clients
type TeamsView struct {
	Host  string                        `json:"host"`
	Teams []registry.ServiceDescriptor `json:"teams"`
}

// DiagCheck is one failed internal reachability check. Exactly one of
// Status or Error is set.
type DiagCheck struct {
	Name   string `json:"name"`
	Status int    `json:"status,omitempty"`
	Error  string `json:"error,omitempty"`
}

// DiagReport lists configuration problems and failed internal checks only
type DiagReport struct {
	OK             bool        `json:"ok"`
	Errors         []string    `json:"errors"`
	InternalChecks []DiagCheck `json:"internal_checks"`
}
