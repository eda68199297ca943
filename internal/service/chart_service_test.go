package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateChartValidatesType(t *testing.T) {
	charts := NewChartService(1)

	result, err := charts.GenerateChart("line", 5)
	require.NoError(t, err)
	require.Len(t, result.ChartData.Values, 5)
	require.Len(t, result.ChartData.Labels, 5)

	_, err = charts.GenerateChart("gantt", 5)
	require.Error(t, err)
}

func TestCreateDashboardBuildsPanels(t *testing.T) {
	charts := NewChartService(1)

	dashboard, err := charts.CreateDashboard([]string{"line", "pie", "heatmap"}, 30)
	require.NoError(t, err)
	require.Len(t, dashboard.Panels, 3)
	require.NotEmpty(t, dashboard.DashboardID)
	require.Equal(t, 30, dashboard.RefreshInterval)

	_, err = charts.CreateDashboard([]string{"gantt"}, 0)
	require.Error(t, err)
}
