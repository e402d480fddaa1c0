package service

import (
	"context"

	"roadmap-dashboard-api/internal/domain"
	"roadmap-dashboard-api/internal/dto"
	"roadmap-dashboard-api/internal/event"
	"roadmap-dashboard-api/internal/repository"
	"roadmap-dashboard-api/internal/scheduler"
)

// ScheduleService defines the interface for the quarter board
type ScheduleService interface {
	GetBoard(ctx context.Context, year int) (*dto.BoardResponse, error)
	Relocate(ctx context.Context, req *dto.RelocateRequest) (*dto.RelocateResponse, error)
}

type scheduleServiceImpl struct {
	planning *Planning
	goalRepo repository.GoalRepository
}

// NewScheduleService creates a new instance of ScheduleService
func NewScheduleService(planning *Planning, goalRepo repository.GoalRepository) ScheduleService {
	return &scheduleServiceImpl{planning: planning, goalRepo: goalRepo}
}

// GetBoard builds the backlog and Q1..Q4 columns from the store
func (s *scheduleServiceImpl) GetBoard(ctx context.Context, year int) (*dto.BoardResponse, error) {
	snap, err := s.planning.scope(ctx, year)
	if err != nil {
		return nil, err
	}
	board := dto.ToBoardResponse(scheduler.BuildBoard(snap.Year(), snap.Goals()))
	return &board, nil
}

// Relocate drops a goal on a bucket: both dates are overwritten with the bucket's range,
// or cleared for the backlog, in a single update
func (s *scheduleServiceImpl) Relocate(ctx context.Context, req *dto.RelocateRequest) (*dto.RelocateResponse, error) {
	bucket, err := scheduler.ParseBucket(req.Bucket)
	if err != nil {
		return nil, validationError(err)
	}
	goal, err := s.goalRepo.FindByID(ctx, req.GoalID)
	if err != nil {
		return nil, s.planning.lookupFailed(ctx, err, "Failed to fetch goal")
	}

	year := req.Year
	if year == 0 {
		year = goal.Year
	}
	mutation, err := scheduler.Relocate(goal.ID, bucket, year)
	if err != nil {
		return nil, mapError(err, "Failed to relocate goal")
	}
	if err := s.planning.apply(ctx, mutation, "Failed to relocate goal"); err != nil {
		return nil, err
	}

	start, end := scheduler.RangeOfBucket(bucket, year)
	s.planning.metrics.IncrementGoalRelocated(string(bucket))
	s.planning.publish(ctx, event.GoalRelocated, event.GoalRelocatedPayload{
		GoalID:    goal.ID,
		Year:      year,
		Bucket:    string(bucket),
		StartDate: domain.FormatDate(start),
		EndDate:   domain.FormatDate(end),
	})

	moved, err := s.goalRepo.FindByID(ctx, goal.ID)
	if err != nil {
		return nil, s.planning.lookupFailed(ctx, err, "Failed to fetch goal")
	}
	board, err := s.GetBoard(ctx, year)
	if err != nil {
		return nil, err
	}
	return &dto.RelocateResponse{
		Goal:  dto.ToGoalResponse(*moved),
		Board: *board,
	}, nil
}
