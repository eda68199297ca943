package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/analytics-service/internal/api/http/handlers"
	"github.com/spec-kit/analytics-service/internal/auth"
	"github.com/spec-kit/analytics-service/internal/config"
	"github.com/spec-kit/analytics-service/internal/metrics"
	"github.com/spec-kit/analytics-service/internal/persistence"
	"github.com/spec-kit/analytics-service/internal/service"
)

type testApp struct {
	app    *fiber.App
	store  *metrics.Store
	tokens *auth.TokenManager
}

func newTestApp(t *testing.T, guardMetrics bool) *testApp {
	t.Helper()

	logger := zap.NewNop()
	mr := miniredis.RunT(t)
	cache := persistence.NewRedis(config.RedisConfig{Addr: mr.Addr()}, logger)
	t.Cleanup(cache.Close)

	store := metrics.NewStore()
	formats := []string{"csv", "json", "xlsx", "xls", "parquet"}

	app := fiber.New()
	RegisterMiddlewares(app, logger, store, 5*time.Second)

	routeConfig := RouteConfig{
		Health:        handlers.NewHealthHandler("data-analytics-service", "test", "test"),
		Metrics:       handlers.NewMetricsHandler(store, logger),
		Analysis:      handlers.NewAnalysisHandler(service.NewStatsService(1)),
		Visualization: handlers.NewVisualizationHandler(service.NewChartService(1)),
		ML:            handlers.NewMLHandler(service.NewModelService(1)),
		Validation:    handlers.NewValidationHandler(service.NewValidationService(1)),
		Reports:       handlers.NewReportsHandler(service.NewReportService(cache, time.Hour, logger, 1)),
		Data:          handlers.NewDataHandler(service.NewDatasetService(cache, time.Hour, formats, logger, 1), "", 1024, logger),
	}

	tokens := auth.NewTokenManager("test-secret", 1)
	if guardMetrics {
		routeConfig.MetricsGuard = auth.Guard(tokens, auth.ScopeMetrics)
	}
	RegisterRoutes(app, routeConfig)

	return &testApp{app: app, store: store, tokens: tokens}
}

func (ta *testApp) postJSON(t *testing.T, path string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (ta *testApp) get(t *testing.T, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestHealthEndpoint(t *testing.T) {
	ta := newTestApp(t, false)

	resp := ta.get(t, "/health?detailed=true")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeJSON(t, resp)
	require.Equal(t, "healthy", body["status"])
	require.Contains(t, body, "services")
}

func TestAnalysisEndpoints(t *testing.T) {
	ta := newTestApp(t, false)

	resp := ta.postJSON(t, "/api/v1/analysis/descriptive", map[string]any{
		"columns": []string{"age", "income"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeJSON(t, resp)
	stats := body["descriptive_statistics"].(map[string]any)
	require.Len(t, stats, 2)

	resp = ta.postJSON(t, "/api/v1/analysis/correlation", map[string]any{
		"method": "kendall", "columns": []string{"a", "b"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = ta.postJSON(t, "/api/v1/analysis/correlation", map[string]any{"method": "bogus"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body = decodeJSON(t, resp)
	require.Equal(t, "VALIDATION_FAILED", body["error"].(map[string]any)["code"])
}

func TestMLTrainPredictFlow(t *testing.T) {
	ta := newTestApp(t, false)

	resp := ta.postJSON(t, "/api/v1/ml/train", map[string]any{
		"model_type": "classification",
		"algorithm":  "random_forest",
		"model_name": "demo",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = ta.postJSON(t, "/api/v1/ml/predict", map[string]any{
		"model_name": "demo",
		"rows":       []map[string]any{{"x": 1}, {"x": 2}},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeJSON(t, resp)
	require.Len(t, body["predictions"], 2)

	resp = ta.postJSON(t, "/api/v1/ml/predict", map[string]any{"model_name": "missing"})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestReportGenerateExportFlow(t *testing.T) {
	ta := newTestApp(t, false)

	resp := ta.postJSON(t, "/api/v1/reports/generate", map[string]any{
		"report_type": "data_quality",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeJSON(t, resp)
	report := body["report"].(map[string]any)
	reportID := report["report_id"].(string)
	require.NotEmpty(t, reportID)

	resp = ta.postJSON(t, "/api/v1/reports/export", map[string]any{
		"report_id": reportID,
		"format":    "csv",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeJSON(t, resp)
	require.Equal(t, reportID+".csv", body["filename"])
}

func TestUnknownRouteReturnsJSON404(t *testing.T) {
	ta := newTestApp(t, false)

	resp := ta.get(t, "/api/v1/nope")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodeJSON(t, resp)
	require.Equal(t, "NOT_FOUND", body["error"].(map[string]any)["code"])
}

func TestRequestsFeedMetricsStore(t *testing.T) {
	ta := newTestApp(t, false)

	for i := 0; i < 3; i++ {
		resp := ta.get(t, "/health")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}
	resp := ta.get(t, "/api/v1/nope")
	resp.Body.Close()

	resp = ta.get(t, "/api/v1/metrics")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeJSON(t, resp)
	healthSummary := body["GET:/health"].(map[string]any)
	require.Equal(t, float64(3), healthSummary["total_requests"])
	require.Equal(t, float64(0), healthSummary["total_errors"])
	require.NotNil(t, healthSummary["last_access"])

	nopeSummary := body["GET:/api/v1/nope"].(map[string]any)
	require.Equal(t, float64(1), nopeSummary["total_errors"])

	resp = ta.get(t, "/api/v1/metrics/health")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	health := decodeJSON(t, resp)
	require.Contains(t, []any{"healthy", "degraded"}, health["service_status"])
}

func TestMetricsQueryFilter(t *testing.T) {
	ta := newTestApp(t, false)

	resp := ta.get(t, "/health")
	resp.Body.Close()

	resp = ta.get(t, "/api/v1/metrics?endpoint=GET:/health")
	body := decodeJSON(t, resp)
	require.Len(t, body, 1)
	require.Contains(t, body, "GET:/health")

	resp = ta.get(t, "/api/v1/metrics?endpoint=GET:/unknown")
	body = decodeJSON(t, resp)
	require.Empty(t, body)
}

func TestPrometheusEndpoint(t *testing.T) {
	ta := newTestApp(t, false)

	resp := ta.get(t, "/health")
	resp.Body.Close()

	resp = ta.get(t, "/metrics")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "text/plain; charset=utf-8", resp.Header.Get("Content-Type"))

	raw, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	text := string(raw)
	require.Contains(t, text, "service_uptime_seconds")
	require.Contains(t, text, `http_requests_total{method="GET",endpoint="/health"} 1`)
	require.Contains(t, text, `http_errors_total{method="GET",endpoint="/health"} 0`)
	require.True(t, strings.HasPrefix(text, "# HELP service_uptime_seconds"))
}

func TestMetricsGuard(t *testing.T) {
	ta := newTestApp(t, true)

	resp := ta.get(t, "/api/v1/metrics")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// The scrape endpoint stays open for collectors.
	resp = ta.get(t, "/metrics")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	token, _, err := ta.tokens.GenerateToken("ops", auth.ScopeMetrics)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/metrics", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = ta.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}
