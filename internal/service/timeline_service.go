package service

import (
	"context"

	"roadmap-dashboard-api/internal/aggregate"
	"roadmap-dashboard-api/internal/domain"
	"roadmap-dashboard-api/internal/dto"
	"roadmap-dashboard-api/internal/event"
	"roadmap-dashboard-api/internal/repository"
	"roadmap-dashboard-api/internal/timeline"
)

// TimelineService defines the interface for the Gantt projection
type TimelineService interface {
	GetTimeline(ctx context.Context, year int, mode string) (*timeline.Projection, error)
	UpdateProgress(ctx context.Context, req *dto.ProgressRequest) (*dto.ProgressResponse, error)
	OpenBar(ctx context.Context, barID string) (*dto.OpenBarResponse, error)
	ScrollTarget(ctx context.Context, year, quarter int) (*dto.ScrollResponse, error)
}

type timelineServiceImpl struct {
	planning *Planning
	goalRepo repository.GoalRepository
}

// NewTimelineService creates a new instance of TimelineService
func NewTimelineService(planning *Planning, goalRepo repository.GoalRepository) TimelineService {
	return &timelineServiceImpl{planning: planning, goalRepo: goalRepo}
}

// GetTimeline projects the store's full entity set for year in the given view mode
func (s *timelineServiceImpl) GetTimeline(ctx context.Context, year int, mode string) (*timeline.Projection, error) {
	viewMode, err := timeline.ParseViewMode(mode)
	if err != nil {
		return nil, validationError(err)
	}
	snap, err := s.planning.scope(ctx, year)
	if err != nil {
		return nil, err
	}
	projection := timeline.Project(snap.Year(), snap.Goals(), viewMode)
	return &projection, nil
}

// UpdateProgress applies a progress drag to the bar's source entity and returns the refreshed summary
func (s *timelineServiceImpl) UpdateProgress(ctx context.Context, req *dto.ProgressRequest) (*dto.ProgressResponse, error) {
	mutation, err := timeline.ProgressEdit(req.BarID, req.Progress)
	if err != nil {
		return nil, validationError(err)
	}
	if err := s.planning.apply(ctx, mutation, "Failed to update progress"); err != nil {
		return nil, err
	}

	progress, _ := mutation.Fields["progress"].(int)
	s.planning.metrics.IncrementProgressEdit(string(mutation.Kind))
	s.planning.publish(ctx, event.ProgressUpdated, event.ProgressUpdatedPayload{
		Kind:     string(mutation.Kind),
		ID:       mutation.ID,
		Progress: progress,
	})

	return &dto.ProgressResponse{
		BarID:    timeline.BarRef(mutation.Kind, mutation.ID),
		Progress: progress,
		Summary:  aggregate.Summarize(s.planning.store.Snapshot().Goals()),
	}, nil
}

// OpenBar resolves a bar click; only goal bars open an editor
func (s *timelineServiceImpl) OpenBar(ctx context.Context, barID string) (*dto.OpenBarResponse, error) {
	goalID, open, err := timeline.Click(barID)
	if err != nil {
		return nil, validationError(err)
	}
	if !open {
		return &dto.OpenBarResponse{Open: false}, nil
	}

	goal, err := s.goalRepo.FindByID(ctx, goalID)
	if err != nil {
		return nil, s.planning.lookupFailed(ctx, err, "Failed to fetch goal")
	}
	resp := dto.ToGoalResponse(*goal)
	return &dto.OpenBarResponse{Open: true, Goal: &resp}, nil
}

// ScrollTarget is the first day of the quarter the timeline scrolls to
func (s *timelineServiceImpl) ScrollTarget(ctx context.Context, year, quarter int) (*dto.ScrollResponse, error) {
	if year == 0 {
		year = s.planning.store.Year()
	}
	target, err := timeline.QuarterStart(year, quarter)
	if err != nil {
		return nil, validationError(err)
	}
	return &dto.ScrollResponse{
		Year:    year,
		Quarter: quarter,
		Target:  *domain.FormatDate(&target),
	}, nil
}
