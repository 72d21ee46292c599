// Package history keeps a fixed-size rolling window of probe outcomes per
// service, in memory only. Nothing here survives a restart.
package history

import (
	"math"
	"sort"
	"sync"
	"time"
)

// UnknownName is the key used for results that carry no service name
const UnknownName = "unknown"

// Sample is one recorded probe outcome
type Sample struct {
	Timestamp float64 `json:"timestamp"`
	Up        int     `json:"up"`
	LatencyMS *int64  `json:"latency_ms"`
	Error     *string `json:"error"`
}

// IsUp reports whether the sample was observed up
func (s Sample) IsUp() bool {
	return s.Up == 1
}

// Store owns every per-service ring buffer and the last-error latch.
// One RWMutex guards both; reads hand out copies.
type Store struct {
	mu        sync.RWMutex
	window    int
	buffers   map[string]*ring
	lastError map[string]string
	now       func() time.Time
}

// Option configures a Store
type Option func(*Store)

// WithClock overrides the time source
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates a store keeping window samples per service
func NewStore(window int, opts ...Option) *Store {
	if window < 1 {
		window = 1
	}
	s := &Store{
		window:    window,
		buffers:   make(map[string]*ring),
		lastError: make(map[string]string),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Window returns the per-service capacity
func (s *Store) Window() int {
	return s.window
}

// Now returns the store clock as float epoch seconds
func (s *Store) Now() float64 {
	return epochSeconds(s.now())
}

// Record appends one outcome stamped with the current time
func (s *Store) Record(name string, up bool, latencyMS *int64, errMsg *string) {
	s.RecordAt(s.Now(), name, up, latencyMS, errMsg)
}

// RecordAt appends one outcome with an explicit timestamp, evicting the
// oldest sample when the buffer is full. A non-empty error updates the
// latch; an up sample never clears it.
func (s *Store) RecordAt(ts float64, name string, up bool, latencyMS *int64, errMsg *string) {
	if name == "" {
		name = UnknownName
	}
	sample := Sample{Timestamp: ts, LatencyMS: copyInt64(latencyMS), Error: copyString(errMsg)}
	if up {
		sample.Up = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	buf, ok := s.buffers[name]
	if !ok {
		buf = newRing(s.window)
		s.buffers[name] = buf
	}
	buf.push(sample)

	if errMsg != nil && *errMsg != "" {
		s.lastError[name] = *errMsg
	}
}

// UptimePct is 100 * ups / samples rounded to one decimal, 0 without samples
func (s *Store) UptimePct(name string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	buf, ok := s.buffers[name]
	if !ok || buf.len() == 0 {
		return 0.0
	}
	ups := 0
	buf.each(func(smp Sample) {
		ups += smp.Up
	})
	return round1(100.0 * float64(ups) / float64(buf.len()))
}

// LastError returns the most recent non-empty error recorded for name
func (s *Store) LastError(name string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError[name]
}

// Latest returns the newest sample for name
func (s *Store) Latest(name string) (Sample, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	buf, ok := s.buffers[name]
	if !ok || buf.len() == 0 {
		return Sample{}, false
	}
	return buf.last(), true
}

// Samples returns a copy of the buffer for name, oldest first
func (s *Store) Samples(name string) []Sample {
	s.mu.RLock()
	defer s.mu.RUnlock()

	buf, ok := s.buffers[name]
	if !ok {
		return []Sample{}
	}
	return buf.slice()
}

// Snapshot copies every buffer. Names removed from the registry stay here.
func (s *Store) Snapshot() map[string][]Sample {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string][]Sample, len(s.buffers))
	for name, buf := range s.buffers {
		out[name] = buf.slice()
	}
	return out
}

// Names returns every tracked name, sorted
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.buffers))
	for name := range s.buffers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func epochSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}

func copyInt64(v *int64) *int64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyString(v *string) *string {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
