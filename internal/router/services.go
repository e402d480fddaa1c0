package router

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"roadmap-dashboard-api/internal/event"
	"roadmap-dashboard-api/internal/metrics"
	"roadmap-dashboard-api/internal/repository"
	"roadmap-dashboard-api/internal/service"
	"roadmap-dashboard-api/internal/store"
)

// Services is the assembled service layer shared by the HTTP router, the jobs and the CLI
type Services struct {
	Store     *store.EntityStore
	Goal      service.GoalService
	Milestone service.MilestoneService
	Task      service.TaskService
	Member    service.MemberService
	Idea      service.IdeaService
	Schedule  service.ScheduleService
	Timeline  service.TimelineService
	Dashboard service.DashboardService
}

// NewServices wires repositories, the entity store and services on db.
// The store starts scoped to defaultYear and empty; callers load it.
func NewServices(db *gorm.DB, m *metrics.Metrics, publisher event.Publisher, defaultYear int, logger *zap.Logger) *Services {
	if m == nil {
		m = metrics.NewWithRegistry(prometheus.NewRegistry(), logger)
	}

	goalRepo := repository.NewGoalRepository(db)
	milestoneRepo := repository.NewMilestoneRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	ideaRepo := repository.NewIdeaRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	yearRepo := repository.NewYearRepository(db)

	st := store.New(repository.NewPersistence(db), defaultYear, logger, m)
	planning := service.NewPlanning(st, m, publisher, logger)

	return &Services{
		Store:     st,
		Goal:      service.NewGoalService(planning, goalRepo),
		Milestone: service.NewMilestoneService(planning, milestoneRepo),
		Task:      service.NewTaskService(planning, taskRepo),
		Member:    service.NewMemberService(planning, memberRepo),
		Idea:      service.NewIdeaService(planning, ideaRepo, commentRepo, goalRepo),
		Schedule:  service.NewScheduleService(planning, goalRepo),
		Timeline:  service.NewTimelineService(planning, goalRepo),
		Dashboard: service.NewDashboardService(planning, yearRepo, defaultYear),
	}
}
