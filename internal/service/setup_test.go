package service

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	io_prometheus_client "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"roadmap-dashboard-api/internal/metrics"
	"roadmap-dashboard-api/internal/repository"
	"roadmap-dashboard-api/internal/response"
	"roadmap-dashboard-api/internal/store"
	"roadmap-dashboard-api/internal/testutil"
)

const testYear = 2026

// fixture wires every service onto an in-memory database
type fixture struct {
	persistence *repository.Persistence
	planning    *Planning
	store       *store.EntityStore
	metrics     *metrics.Metrics
	publisher   *RecordingPublisher

	goals      GoalService
	milestones MilestoneService
	tasks      TaskService
	members    MemberService
	ideas      IdeaService
	schedule   ScheduleService
	timeline   TimelineService
	dashboard  DashboardService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t)
	p := repository.NewPersistence(db)
	m := metrics.NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())
	st := store.New(p, testYear, zap.NewNop(), m)
	pub := &RecordingPublisher{}
	planning := NewPlanning(st, m, pub, zap.NewNop())

	return &fixture{
		persistence: p,
		planning:    planning,
		store:       st,
		metrics:     m,
		publisher:   pub,
		goals:       NewGoalService(planning, p.Goals),
		milestones:  NewMilestoneService(planning, p.Milestones),
		tasks:       NewTaskService(planning, p.Tasks),
		members:     NewMemberService(planning, p.Members),
		ideas:       NewIdeaService(planning, p.Ideas, repository.NewCommentRepository(db), p.Goals),
		schedule:    NewScheduleService(planning, p.Goals),
		timeline:    NewTimelineService(planning, p.Goals),
		dashboard:   NewDashboardService(planning, repository.NewYearRepository(db), testYear),
	}
}

// assertAppError checks that err is an AppError carrying code
func assertAppError(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *response.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m io_prometheus_client.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m io_prometheus_client.Metric
	require.NoError(t, g.Write(&m))
	return m.GetGauge().GetValue()
}
