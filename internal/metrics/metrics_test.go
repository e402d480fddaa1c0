package metrics

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func getTestMetrics() *Metrics {
	return NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())
}

func getCounterValue(t *testing.T, counter prometheus.Counter) float64 {
	t.Helper()
	metric := &dto.Metric{}
	if err := counter.Write(metric); err != nil {
		t.Fatalf("Failed to write counter metric: %v", err)
	}
	return metric.Counter.GetValue()
}

func getGaugeValue(t *testing.T, gauge prometheus.Gauge) float64 {
	t.Helper()
	metric := &dto.Metric{}
	if err := gauge.Write(metric); err != nil {
		t.Fatalf("Failed to write gauge metric: %v", err)
	}
	return metric.Gauge.GetValue()
}

func TestMetricsInitialization(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewWithRegistry(registry, nil)
	require.NotNil(t, m)

	m.RecordHTTPRequest("GET", "/api/goals", 200, 10*time.Millisecond)
	m.IncrementGoalCreated()

	families, err := registry.Gather()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, f := range families {
		names[f.GetName()] = true
		assert.NotEmpty(t, f.GetHelp(), "metric %s must have help text", f.GetName())
	}
	assert.True(t, names["roadmap_dashboard_http_requests_total"])
	assert.True(t, names["roadmap_dashboard_goal_created_total"])
}

func TestCategorizeStatus(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{200, "2xx"}, {201, "2xx"}, {304, "3xx"}, {404, "4xx"}, {409, "4xx"}, {503, "5xx"}, {100, "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, categorizeStatus(tt.code))
	}
}

func TestShouldSkipEndpoint(t *testing.T) {
	assert.True(t, ShouldSkipEndpoint("/metrics"))
	assert.True(t, ShouldSkipEndpoint("/api/health"))
	assert.True(t, ShouldSkipEndpoint("/swagger/index.html"))
	assert.False(t, ShouldSkipEndpoint("/api/goals"))
}

func TestRecordDBQuery_CountsErrors(t *testing.T) {
	m := getTestMetrics()

	m.RecordDBQuery("SELECT", "goals", time.Millisecond, nil)
	m.RecordDBQuery("SELECT", "goals", time.Millisecond, errors.New("boom"))

	assert.Equal(t, float64(1), getCounterValue(t, m.DBQueryErrors.WithLabelValues("select", "goals")))
}

func TestUpdateDBStats(t *testing.T) {
	m := getTestMetrics()
	m.UpdateDBStats(sql.DBStats{OpenConnections: 4, InUse: 1, Idle: 3})

	assert.Equal(t, float64(4), getGaugeValue(t, m.DBConnectionsOpen))
	assert.Equal(t, float64(1), getGaugeValue(t, m.DBConnectionsInUse))
	assert.Equal(t, float64(3), getGaugeValue(t, m.DBConnectionsIdle))
}

func TestSetPlanningSnapshot(t *testing.T) {
	m := getTestMetrics()

	m.SetPlanningSnapshot(PlanningSnapshot{
		Goals:           3,
		Milestones:      5,
		Tasks:           8,
		Members:         2,
		OverallProgress: 42,
		IdeasByStatus:   map[string]int{"open": 2, "converted": 1},
	})

	assert.Equal(t, float64(3), getGaugeValue(t, m.GoalsTotal))
	assert.Equal(t, float64(8), getGaugeValue(t, m.TasksTotal))
	assert.Equal(t, float64(42), getGaugeValue(t, m.OverallProgress))
	assert.Equal(t, float64(2), getGaugeValue(t, m.IdeasByStatus.WithLabelValues("open")))

	m.SetPlanningSnapshot(PlanningSnapshot{IdeasByStatus: map[string]int{"open": 1}})
	assert.Equal(t, float64(0), getGaugeValue(t, m.GoalsTotal))
	assert.Equal(t, float64(1), getGaugeValue(t, m.IdeasByStatus.WithLabelValues("open")))
}

func TestBusinessCounters(t *testing.T) {
	m := getTestMetrics()

	m.IncrementGoalRelocated("Q3")
	m.IncrementGoalRelocated("Q3")
	m.IncrementIdeaTransition("converted")
	m.IncrementProgressEdit("task")

	assert.Equal(t, float64(2), getCounterValue(t, m.GoalRelocatedTotal.WithLabelValues("Q3")))
	assert.Equal(t, float64(1), getCounterValue(t, m.IdeaTransitionsTotal.WithLabelValues("converted")))
	assert.Equal(t, float64(1), getCounterValue(t, m.ProgressEditsTotal.WithLabelValues("task")))
}

func TestSafeExecuteWithPanic(t *testing.T) {
	m := getTestMetrics()
	assert.NotPanics(t, func() {
		m.safeExecute("panic", func() { panic("metric failure") })
	})
}

func TestNilMetricsAreNoops(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncrementGoalCreated()
		m.RecordHTTPRequest("GET", "/", 200, time.Millisecond)
	})
}
