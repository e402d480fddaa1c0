package service

import (
	"context"

	"roadmap-dashboard-api/internal/aggregate"
	"roadmap-dashboard-api/internal/dto"
	"roadmap-dashboard-api/internal/metrics"
	"roadmap-dashboard-api/internal/repository"
)

// DashboardService defines the interface for the summary views
type DashboardService interface {
	GetSummary(ctx context.Context, year int) (*dto.SummaryResponse, error)
	GetYears(ctx context.Context) (*dto.YearsResponse, error)
	RefreshMetrics(ctx context.Context) error
}

type dashboardServiceImpl struct {
	planning    *Planning
	yearRepo    repository.YearRepository
	defaultYear int
}

// NewDashboardService creates a new instance of DashboardService.
// defaultYear is reported by GetYears when no planning data exists.
func NewDashboardService(planning *Planning, yearRepo repository.YearRepository, defaultYear int) DashboardService {
	return &dashboardServiceImpl{planning: planning, yearRepo: yearRepo, defaultYear: defaultYear}
}

// GetSummary aggregates the goals and ideas of a year
func (s *dashboardServiceImpl) GetSummary(ctx context.Context, year int) (*dto.SummaryResponse, error) {
	snap, err := s.planning.scope(ctx, year)
	if err != nil {
		return nil, err
	}
	return &dto.SummaryResponse{
		Year:          snap.Year(),
		Summary:       aggregate.Summarize(snap.Goals()),
		IdeasByStatus: aggregate.IdeasByStatus(snap.Ideas()),
	}, nil
}

// GetYears lists the years holding planning data, newest first
func (s *dashboardServiceImpl) GetYears(ctx context.Context) (*dto.YearsResponse, error) {
	years, err := s.yearRepo.AvailableYears(ctx)
	if err != nil {
		return nil, mapError(err, "Failed to fetch years")
	}
	if len(years) == 0 {
		years = []int{s.defaultYear}
	}
	return &dto.YearsResponse{Years: years}, nil
}

// RefreshMetrics reloads the active year and publishes its totals as gauges
func (s *dashboardServiceImpl) RefreshMetrics(ctx context.Context) error {
	st := s.planning.store
	if err := st.Refresh(ctx); err != nil {
		return mapError(err, "Failed to load planning data")
	}
	snap := st.Snapshot()
	summary := aggregate.Summarize(snap.Goals())
	s.planning.metrics.SetPlanningSnapshot(metrics.PlanningSnapshot{
		Goals:           summary.TotalGoals,
		Milestones:      summary.TotalMilestones,
		Tasks:           summary.TotalTasks,
		Members:         len(snap.Members()),
		IdeasByStatus:   aggregate.IdeasByStatus(snap.Ideas()),
		OverallProgress: summary.OverallProgress,
	})
	return nil
}
