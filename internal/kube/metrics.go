// File: internal/kube/metrics.go
// Brief: API request latency accounting for debug diagnostics.

package kube

import (
	"net/http"
	"sync"
	"time"

	"k8s.io/client-go/rest"
)

// RequestStats accumulates latency observations for every API server
// round trip made through the client. Safe for concurrent use.
type RequestStats struct {
	mu    sync.Mutex
	count int
	total time.Duration
	max   time.Duration
}

// RequestSnapshot is a point-in-time copy of the accumulated stats.
type RequestSnapshot struct {
	Count int
	Total time.Duration
	Max   time.Duration
}

func newRequestStats() *RequestStats {
	return &RequestStats{}
}

func (s *RequestStats) observe(d time.Duration) {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.count++
	s.total += d
	if d > s.max {
		s.max = d
	}
	s.mu.Unlock()
}

// Snapshot returns the stats accumulated so far.
func (s *RequestStats) Snapshot() RequestSnapshot {
	if s == nil {
		return RequestSnapshot{}
	}
	s.mu.Lock()
	out := RequestSnapshot{
		Count: s.count,
		Total: s.total,
		Max:   s.max,
	}
	s.mu.Unlock()
	return out
}

// Avg returns the mean request duration, zero when nothing was observed.
func (m RequestSnapshot) Avg() time.Duration {
	if m.Count == 0 {
		return 0
	}
	return time.Duration(int64(m.Total) / int64(m.Count))
}

type statsRoundTripper struct {
	base  http.RoundTripper
	stats *RequestStats
}

func (rt *statsRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	base := rt.base
	if base == nil {
		base = http.DefaultTransport
	}
	start := time.Now()
	resp, err := base.RoundTrip(req)
	rt.stats.observe(time.Since(start))
	return resp, err
}

// attachRequestStats wraps the REST config transport so every request the
// clientset makes is timed. Composes with any wrapper already installed.
func attachRequestStats(cfg *rest.Config, stats *RequestStats) {
	if cfg == nil || stats == nil {
		return
	}
	wrap := cfg.WrapTransport
	cfg.WrapTransport = func(rt http.RoundTripper) http.RoundTripper {
		if wrap != nil {
			rt = wrap(rt)
		}
		return &statsRoundTripper{base: rt, stats: stats}
	}
}
