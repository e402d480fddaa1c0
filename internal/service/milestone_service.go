package service

import (
	"context"

	"roadmap-dashboard-api/internal/domain"
	"roadmap-dashboard-api/internal/dto"
	"roadmap-dashboard-api/internal/repository"
)

// MilestoneService defines the interface for milestone business logic
type MilestoneService interface {
	ListMilestones(ctx context.Context, goalID uint) ([]dto.MilestoneResponse, error)
	GetMilestone(ctx context.Context, id uint) (*dto.MilestoneResponse, error)
	CreateMilestone(ctx context.Context, req *dto.CreateMilestoneRequest) (*dto.MilestoneResponse, error)
	UpdateMilestone(ctx context.Context, id uint, req *dto.UpdateMilestoneRequest) (*dto.MilestoneResponse, error)
	DeleteMilestone(ctx context.Context, id uint) error
}

type milestoneServiceImpl struct {
	planning      *Planning
	milestoneRepo repository.MilestoneRepository
}

// NewMilestoneService creates a new instance of MilestoneService
func NewMilestoneService(planning *Planning, milestoneRepo repository.MilestoneRepository) MilestoneService {
	return &milestoneServiceImpl{planning: planning, milestoneRepo: milestoneRepo}
}

func (s *milestoneServiceImpl) ListMilestones(ctx context.Context, goalID uint) ([]dto.MilestoneResponse, error) {
	milestones, err := s.milestoneRepo.FindByGoal(ctx, goalID)
	if err != nil {
		return nil, mapError(err, "Failed to fetch milestones")
	}
	out := make([]dto.MilestoneResponse, 0, len(milestones))
	for _, m := range milestones {
		out = append(out, dto.ToMilestoneResponse(m))
	}
	return out, nil
}

func (s *milestoneServiceImpl) GetMilestone(ctx context.Context, id uint) (*dto.MilestoneResponse, error) {
	milestone, err := s.milestoneRepo.FindByID(ctx, id)
	if err != nil {
		return nil, s.planning.lookupFailed(ctx, err, "Failed to fetch milestone")
	}
	resp := dto.ToMilestoneResponse(*milestone)
	return &resp, nil
}

// CreateMilestone creates a milestone under an existing goal
func (s *milestoneServiceImpl) CreateMilestone(ctx context.Context, req *dto.CreateMilestoneRequest) (*dto.MilestoneResponse, error) {
	if err := domain.ValidateProgress(req.Progress); err != nil {
		return nil, validationError(err)
	}
	start, err := parseOptionalDate(req.StartDate)
	if err != nil {
		return nil, validationError(err)
	}
	due, err := parseOptionalDate(req.DueDate)
	if err != nil {
		return nil, validationError(err)
	}
	if err := domain.ValidateDateRange(start, due); err != nil {
		return nil, validationError(err)
	}

	milestone := &domain.Milestone{
		GoalID:      req.GoalID,
		Title:       req.Title,
		Description: req.Description,
		StartDate:   start,
		DueDate:     due,
		Progress:    req.Progress,
	}
	if err := s.planning.commit(ctx, func(ctx context.Context) error {
		return s.milestoneRepo.Create(ctx, milestone)
	}, "Failed to create milestone"); err != nil {
		return nil, err
	}

	resp := dto.ToMilestoneResponse(*milestone)
	return &resp, nil
}

func (s *milestoneServiceImpl) UpdateMilestone(ctx context.Context, id uint, req *dto.UpdateMilestoneRequest) (*dto.MilestoneResponse, error) {
	current, err := s.milestoneRepo.FindByID(ctx, id)
	if err != nil {
		return nil, s.planning.lookupFailed(ctx, err, "Failed to fetch milestone")
	}
	if err := validateProgressPtr(req.Progress); err != nil {
		return nil, validationError(err)
	}

	f := fields{}
	f.setString("title", req.Title)
	f.setString("description", req.Description)
	f.setInt("progress", req.Progress)
	start, err := f.setDate("start_date", req.StartDate, current.StartDate)
	if err != nil {
		return nil, validationError(err)
	}
	due, err := f.setDate("due_date", req.DueDate, current.DueDate)
	if err != nil {
		return nil, validationError(err)
	}
	if err := domain.ValidateDateRange(start, due); err != nil {
		return nil, validationError(err)
	}

	if err := s.planning.apply(ctx, domain.Mutation{Kind: domain.KindMilestone, ID: id, Fields: f}, "Failed to update milestone"); err != nil {
		return nil, err
	}
	return s.GetMilestone(ctx, id)
}

// DeleteMilestone removes a milestone and its tasks
func (s *milestoneServiceImpl) DeleteMilestone(ctx context.Context, id uint) error {
	return s.planning.commit(ctx, func(ctx context.Context) error {
		return s.milestoneRepo.Delete(ctx, id)
	}, "Failed to delete milestone")
}
