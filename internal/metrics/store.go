package metrics

import (
	"math"
	"sort"
	"sync"
	"time"
)

const (
	// windowSize bounds the per-endpoint sample window used for percentile
	// estimation. The average is derived from the full-history sum instead.
	windowSize = 100

	// degradedErrorRate is the aggregate error rate at or above which the
	// service reports itself degraded.
	degradedErrorRate = 0.05
)

// EndpointKey identifies one aggregation bucket.
type EndpointKey struct {
	Method   string
	Endpoint string
}

// String renders the key in the external "METHOD:endpoint" form.
func (k EndpointKey) String() string {
	return k.Method + ":" + k.Endpoint
}

// endpointMetrics accumulates raw counters for one key. All access goes
// through the owning store's lock.
type endpointMetrics struct {
	count      uint64
	totalTime  float64
	errors     uint64
	lastAccess time.Time
	recent     *durationWindow
}

// durationWindow is a fixed-capacity FIFO of the most recent samples.
type durationWindow struct {
	samples []float64
	next    int
}

func newDurationWindow() *durationWindow {
	return &durationWindow{samples: make([]float64, 0, windowSize)}
}

func (w *durationWindow) push(v float64) {
	if len(w.samples) < windowSize {
		w.samples = append(w.samples, v)
		return
	}
	w.samples[w.next] = v
	w.next = (w.next + 1) % windowSize
}

func (w *durationWindow) snapshot() []float64 {
	out := make([]float64, len(w.samples))
	copy(out, w.samples)
	return out
}

// EndpointSummary is the derived read view for one key.
type EndpointSummary struct {
	TotalRequests     uint64  `json:"total_requests"`
	TotalErrors       uint64  `json:"total_errors"`
	ErrorRate         float64 `json:"error_rate"`
	AvgResponseTimeMs float64 `json:"avg_response_time_ms"`
	P95ResponseTimeMs float64 `json:"p95_response_time_ms"`
	LastAccess        *string `json:"last_access"`
}

// HealthReport aggregates service-wide request statistics.
type HealthReport struct {
	UptimeSeconds    int64   `json:"uptime_seconds"`
	UptimeHuman      string  `json:"uptime_human"`
	TotalRequests    uint64  `json:"total_requests"`
	TotalErrors      uint64  `json:"total_errors"`
	OverallErrorRate float64 `json:"overall_error_rate"`
	EndpointsCount   int     `json:"endpoints_count"`
	ServiceStatus    string  `json:"service_status"`
}

// Service status values derived by Health.
const (
	StatusUnknown  = "unknown"
	StatusHealthy  = "healthy"
	StatusDegraded = "degraded"
)

// Store accumulates per-endpoint request metrics for the process lifetime.
// A single mutex guards the bucket map and every bucket, so the counter
// triple of any one key is always read in a mutually consistent state.
type Store struct {
	mu        sync.Mutex
	buckets   map[EndpointKey]*endpointMetrics
	order     []EndpointKey
	startTime time.Time
}

// NewStore initializes an empty store and pins its start time.
func NewStore() *Store {
	return &Store{
		buckets:   make(map[EndpointKey]*endpointMetrics),
		startTime: time.Now(),
	}
}

// Record registers one completed request. Buckets are created lazily on the
// first request for a new (method, endpoint) pair and never removed.
func (s *Store) Record(method, endpoint string, statusCode int, elapsed time.Duration) {
	key := EndpointKey{Method: method, Endpoint: endpoint}
	seconds := elapsed.Seconds()

	s.mu.Lock()
	defer s.mu.Unlock()

	bucket, ok := s.buckets[key]
	if !ok {
		bucket = &endpointMetrics{recent: newDurationWindow()}
		s.buckets[key] = bucket
		s.order = append(s.order, key)
	}

	bucket.count++
	bucket.totalTime += seconds
	bucket.lastAccess = time.Now()
	bucket.recent.push(seconds)
	if statusCode >= 400 {
		bucket.errors++
	}
}

// Query returns derived views keyed by "METHOD:endpoint". An empty key
// returns every bucket; an unknown key returns an empty map, not an error.
// The lock is held across the whole iteration so the returned views form a
// consistent cross-key snapshot.
func (s *Store) Query(key string) map[string]EndpointSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make(map[string]EndpointSummary)
	for _, k := range s.order {
		name := k.String()
		if key != "" && key != name {
			continue
		}
		result[name] = deriveSummary(s.buckets[k])
	}
	return result
}

// Summary returns derived views for every known key.
func (s *Store) Summary() map[string]EndpointSummary {
	return s.Query("")
}

// Health derives the service-wide view from the accumulated counters. The
// status is a pure function of the current aggregates, recomputed per call.
func (s *Store) Health() HealthReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	var totalRequests, totalErrors uint64
	for _, bucket := range s.buckets {
		totalRequests += bucket.count
		totalErrors += bucket.errors
	}

	var errorRate float64
	if totalRequests > 0 {
		errorRate = float64(totalErrors) / float64(totalRequests)
	}

	status := StatusUnknown
	if totalRequests > 0 {
		if errorRate < degradedErrorRate {
			status = StatusHealthy
		} else {
			status = StatusDegraded
		}
	}

	uptime := time.Since(s.startTime)
	return HealthReport{
		UptimeSeconds:    int64(uptime.Seconds()),
		UptimeHuman:      uptime.Truncate(time.Second).String(),
		TotalRequests:    totalRequests,
		TotalErrors:      totalErrors,
		OverallErrorRate: errorRate,
		EndpointsCount:   len(s.buckets),
		ServiceStatus:    status,
	}
}

func deriveSummary(bucket *endpointMetrics) EndpointSummary {
	summary := EndpointSummary{
		TotalRequests: bucket.count,
		TotalErrors:   bucket.errors,
	}

	if bucket.count > 0 {
		summary.ErrorRate = float64(bucket.errors) / float64(bucket.count)
		summary.AvgResponseTimeMs = round2(bucket.totalTime / float64(bucket.count) * 1000)
	}

	recent := bucket.recent.snapshot()
	if len(recent) > 0 {
		sort.Float64s(recent)
		idx := int(float64(len(recent)) * 0.95)
		summary.P95ResponseTimeMs = round2(recent[idx] * 1000)
	}

	if !bucket.lastAccess.IsZero() {
		formatted := bucket.lastAccess.Format(time.RFC3339Nano)
		summary.LastAccess = &formatted
	}

	return summary
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
