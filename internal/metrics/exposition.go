package metrics

import (
	"strconv"
	"strings"
	"time"
)

// RenderPrometheus writes the store's state in Prometheus text exposition
// format: an uptime block followed by one requests/errors/duration triple per
// known endpoint, in first-seen order. The HELP and TYPE comment lines are
// repeated for every endpoint, matching the format consumed by the existing
// dashboards. An empty store yields the uptime block alone.
func (s *Store) RenderPrometheus() string {
	var b strings.Builder
	b.Grow(4096)

	uptime := time.Since(s.startTime).Seconds()
	b.WriteString("# HELP service_uptime_seconds Service uptime in seconds\n")
	b.WriteString("# TYPE service_uptime_seconds counter\n")
	b.WriteString("service_uptime_seconds ")
	b.WriteString(formatFloat(uptime))
	b.WriteByte('\n')

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range s.order {
		bucket := s.buckets[key]
		labels := `method="` + key.Method + `",endpoint="` + key.Endpoint + `"`

		writeLabeledCounter(&b, "http_requests_total",
			"Total number of HTTP requests", labels, bucket.count)
		writeLabeledCounter(&b, "http_errors_total",
			"Total number of HTTP errors", labels, bucket.errors)

		var avg float64
		if bucket.count > 0 {
			avg = bucket.totalTime / float64(bucket.count)
		}
		writeLabeledGauge(&b, "http_request_duration_seconds",
			"Average request duration", labels, avg)
	}

	return b.String()
}

func writeLabeledCounter(b *strings.Builder, name, help, labels string, value uint64) {
	writeHeader(b, name, help, "counter")
	b.WriteString(name)
	b.WriteByte('{')
	b.WriteString(labels)
	b.WriteString("} ")
	b.WriteString(strconv.FormatUint(value, 10))
	b.WriteByte('\n')
}

func writeLabeledGauge(b *strings.Builder, name, help, labels string, value float64) {
	writeHeader(b, name, help, "gauge")
	b.WriteString(name)
	b.WriteByte('{')
	b.WriteString(labels)
	b.WriteString("} ")
	b.WriteString(formatFloat(value))
	b.WriteByte('\n')
}

func writeHeader(b *strings.Builder, name, help, metricType string) {
	b.WriteString("# HELP ")
	b.WriteString(name)
	b.WriteByte(' ')
	b.WriteString(help)
	b.WriteByte('\n')
	b.WriteString("# TYPE ")
	b.WriteString(name)
	b.WriteByte(' ')
	b.WriteString(metricType)
	b.WriteByte('\n')
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
