package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRenderPrometheusEmptyStore(t *testing.T) {
	store := NewStore()

	out := store.RenderPrometheus()
	require.Contains(t, out, "# HELP service_uptime_seconds Service uptime in seconds")
	require.Contains(t, out, "# TYPE service_uptime_seconds counter")
	require.Contains(t, out, "service_uptime_seconds ")
	require.NotContains(t, out, "http_requests_total")
	require.NotContains(t, out, "http_errors_total")
}

func TestRenderPrometheusSingleEndpoint(t *testing.T) {
	store := NewStore()
	store.Record("GET", "/health", 200, 10*time.Millisecond)

	out := store.RenderPrometheus()
	require.Contains(t, out, `http_requests_total{method="GET",endpoint="/health"} 1`)
	require.Contains(t, out, `http_errors_total{method="GET",endpoint="/health"} 0`)
	require.Contains(t, out, `http_request_duration_seconds{method="GET",endpoint="/health"} 0.01`)
	require.Contains(t, out, "# TYPE http_requests_total counter")
	require.Contains(t, out, "# TYPE http_errors_total counter")
	require.Contains(t, out, "# TYPE http_request_duration_seconds gauge")
}

// The HELP/TYPE comment lines are intentionally repeated per endpoint rather
// than emitted once per metric name; this pins that choice.
func TestRenderPrometheusRepeatsHeadersPerEndpoint(t *testing.T) {
	store := NewStore()
	store.Record("GET", "/health", 200, time.Millisecond)
	store.Record("POST", "/api/v1/ml/train", 500, time.Millisecond)

	out := store.RenderPrometheus()
	require.Equal(t, 2, strings.Count(out, "# HELP http_requests_total"))
	require.Equal(t, 2, strings.Count(out, "# TYPE http_requests_total counter"))
	require.Equal(t, 2, strings.Count(out, "# HELP http_errors_total"))

	require.Contains(t, out, `http_errors_total{method="POST",endpoint="/api/v1/ml/train"} 1`)
}

func TestRenderPrometheusStableOrdering(t *testing.T) {
	store := NewStore()
	store.Record("GET", "/a", 200, time.Millisecond)
	store.Record("GET", "/b", 200, time.Millisecond)
	store.Record("GET", "/a", 200, time.Millisecond)

	out := store.RenderPrometheus()
	first := strings.Index(out, `endpoint="/a"`)
	second := strings.Index(out, `endpoint="/b"`)
	require.Greater(t, first, -1)
	require.Greater(t, second, first, "endpoints must render in first-seen order")

	require.Contains(t, out, `http_requests_total{method="GET",endpoint="/a"} 2`)
}
