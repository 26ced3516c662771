package metrics

import (
	"sync"
	"time"
)

type upstreamStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

type cacheStats struct {
	hits      int
	refreshes int
	stales    int
	colds     int
}

type httpStats struct {
	requests    int
	lastStatus  int
	lastLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about upstream calls
// and cache lookups. It is intentionally simple so it can be swapped for
// a real backend later.
type Recorder struct {
	mu       sync.Mutex
	upstream map[string]*upstreamStats
	cache    map[string]*cacheStats
	http     map[string]*httpStats
	otel     *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		upstream: make(map[string]*upstreamStats),
		cache:    make(map[string]*cacheStats),
		http:     make(map[string]*httpStats),
		otel:     otel,
	}
}

// RecordUpstreamAttempt increments counters for an upstream fetch and
// stores the last observed latency.
func (r *Recorder) RecordUpstreamAttempt(endpoint string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureUpstream(endpoint)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordUpstreamAttempt(endpoint, duration, err)
	}
}

// RecordCacheLookup tracks the outcome of a tiered-cache fetch.
func (r *Recorder) RecordCacheLookup(category, outcome string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureCache(category)
	switch outcome {
	case OutcomeHit:
		stats.hits++
	case OutcomeRefresh:
		stats.refreshes++
	case OutcomeStale:
		stats.stales++
	case OutcomeCold:
		stats.colds++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCacheLookup(category, outcome)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics keyed by method and route.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	key := method + " " + path
	stats, ok := r.http[key]
	if !ok {
		stats = &httpStats{}
		r.http[key] = stats
	}
	stats.requests++
	stats.lastStatus = status
	stats.lastLatency = duration
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordHTTPRequest(method, path, status, duration)
	}
}

// UpstreamSnapshot is a copy of the stats recorded for one endpoint.
type UpstreamSnapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

// CacheSnapshot is a copy of the stats recorded for one cache category.
type CacheSnapshot struct {
	Hits      int
	Refreshes int
	Stales    int
	Colds     int
}

// Upstream returns a copy of the current stats for the endpoint.
func (r *Recorder) Upstream(endpoint string) UpstreamSnapshot {
	if r == nil {
		return UpstreamSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.upstream[endpoint]; ok && stats != nil {
		return UpstreamSnapshot{
			Calls:           stats.calls,
			Errors:          stats.errors,
			LastCallLatency: stats.lastCallLatency,
		}
	}
	return UpstreamSnapshot{}
}

// Cache returns a copy of the current stats for the category.
func (r *Recorder) Cache(category string) CacheSnapshot {
	if r == nil {
		return CacheSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.cache[category]; ok && stats != nil {
		return CacheSnapshot{
			Hits:      stats.hits,
			Refreshes: stats.refreshes,
			Stales:    stats.stales,
			Colds:     stats.colds,
		}
	}
	return CacheSnapshot{}
}

// HTTPSnapshot is a copy of the stats recorded for one route.
type HTTPSnapshot struct {
	Requests    int
	LastStatus  int
	LastLatency time.Duration
}

// HTTP returns a copy of the current stats for the method and route.
func (r *Recorder) HTTP(method, path string) HTTPSnapshot {
	if r == nil {
		return HTTPSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.http[method+" "+path]; ok && stats != nil {
		return HTTPSnapshot{
			Requests:    stats.requests,
			LastStatus:  stats.lastStatus,
			LastLatency: stats.lastLatency,
		}
	}
	return HTTPSnapshot{}
}

func (r *Recorder) ensureUpstream(endpoint string) *upstreamStats {
	stats, ok := r.upstream[endpoint]
	if !ok {
		stats = &upstreamStats{}
		r.upstream[endpoint] = stats
	}
	return stats
}

func (r *Recorder) ensureCache(category string) *cacheStats {
	stats, ok := r.cache[category]
	if !ok {
		stats = &cacheStats{}
		r.cache[category] = stats
	}
	return stats
}
