package monitor

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"teamboard/internal/constants"
	"teamboard/internal/registry"
)

// Prober issues single health checks against a service's internal endpoint
type Prober struct {
	client  *http.Client
	port    int
	timeout time.Duration
}

// ProberOption configures a Prober
type ProberOption func(*Prober)

// WithClient replaces the HTTP client used for probes
func WithClient(c *http.Client) ProberOption {
	return func(p *Prober) {
		p.client = c
	}
}

// WithPort sets the fixed internal port every service listens on
func WithPort(port int) ProberOption {
	return func(p *Prober) {
		p.port = port
	}
}

// WithTimeout sets the per-probe deadline
func WithTimeout(d time.Duration) ProberOption {
	return func(p *Prober) {
		p.timeout = d
	}
}

// NewProber creates a prober with the default port and timeout
func NewProber(opts ...ProberOption) *Prober {
	p := &Prober{
		client: &http.Client{
			// Redirects are not followed; a 3xx is a failed health check.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		port:    constants.DefaultProbePort,
		timeout: constants.DefaultProbeTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// InternalURL is the health endpoint dialed for a service name
func (p *Prober) InternalURL(name string) string {
	return fmt.Sprintf("http://%s:%d/health", name, p.port)
}

// ExternalURL is the user-facing URL on the public host, nil without a port
func ExternalURL(host string, port int) *string {
	if port == 0 {
		return nil
	}
	u := fmt.Sprintf("http://%s:%d/", host, port)
	return &u
}

// Probe performs one GET against the descriptor's internal health URL.
// Failures are captured in the result; Probe itself never errors.
func (p *Prober) Probe(ctx context.Context, d registry.ServiceDescriptor, host string) ProbeResult {
	res := ProbeResult{
		Name:        d.Name,
		Tag:         d.ResolvedTag(),
		Port:        d.Port,
		Repo:        d.Repo,
		InternalURL: p.InternalURL(d.Name),
		ExternalURL: ExternalURL(host, d.Port),
		Status:      StatusDown,
	}

	code, err := p.get(ctx, res.InternalURL, p.timeout, &res.LatencyMS)
	if code != 0 {
		res.HTTPCode = &code
	}
	switch {
	case err != nil:
		msg := err.Error()
		res.Error = &msg
	case code >= 200 && code < 300:
		res.Status = StatusUp
	default:
		msg := fmt.Sprintf("HTTP %d %s", code, http.StatusText(code))
		res.Error = &msg
	}
	return res
}

// get returns the status code of one request, storing the attempt's
// wall-clock duration in milliseconds when latency is non-nil.
func (p *Prober) get(ctx context.Context, url string, timeout time.Duration, latency *int64) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	started := time.Now()
	defer func() {
		if latency != nil {
			*latency = time.Since(started).Milliseconds()
		}
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	return resp.StatusCode, nil
}
