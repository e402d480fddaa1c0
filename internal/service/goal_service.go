package service

import (
	"context"

	"gorm.io/datatypes"

	"roadmap-dashboard-api/internal/domain"
	"roadmap-dashboard-api/internal/dto"
	"roadmap-dashboard-api/internal/event"
	"roadmap-dashboard-api/internal/repository"
	"roadmap-dashboard-api/internal/scheduler"
	"roadmap-dashboard-api/internal/store"
)

// GoalService defines the interface for goal business logic
type GoalService interface {
	ListGoals(ctx context.Context, query dto.GoalListQuery) ([]dto.GoalResponse, error)
	GetGoal(ctx context.Context, id uint) (*dto.GoalResponse, error)
	CreateGoal(ctx context.Context, req *dto.CreateGoalRequest) (*dto.GoalResponse, error)
	UpdateGoal(ctx context.Context, id uint, req *dto.UpdateGoalRequest) (*dto.GoalResponse, error)
	DeleteGoal(ctx context.Context, id uint) error
}

// goalServiceImpl is the implementation of GoalService
type goalServiceImpl struct {
	planning *Planning
	goalRepo repository.GoalRepository
}

// NewGoalService creates a new instance of GoalService
func NewGoalService(planning *Planning, goalRepo repository.GoalRepository) GoalService {
	return &goalServiceImpl{planning: planning, goalRepo: goalRepo}
}

// ListGoals lists the goals of a year from the store in Q1..Q4 order, backlog last
func (s *goalServiceImpl) ListGoals(ctx context.Context, query dto.GoalListQuery) ([]dto.GoalResponse, error) {
	filter := store.GoalFilter{
		Type:    domain.GoalType(query.Type),
		Team:    query.Team,
		Product: query.Product,
	}
	if filter.Type != "" && !filter.Type.Valid() {
		return nil, validationError(domain.ValidationError("type", "unknown goal type %q", query.Type))
	}
	if query.Quarter != "" {
		bucket, err := scheduler.ParseBucket(query.Quarter)
		if err != nil {
			return nil, validationError(err)
		}
		filter.Quarter = bucket
	}

	snap, err := s.planning.scope(ctx, query.Year)
	if err != nil {
		return nil, err
	}
	return dto.ToGoalResponses(scheduler.SortByQuarter(snap.ListGoals(filter))), nil
}

// GetGoal reads a goal with its milestones and tasks
func (s *goalServiceImpl) GetGoal(ctx context.Context, id uint) (*dto.GoalResponse, error) {
	goal, err := s.goalRepo.FindByID(ctx, id)
	if err != nil {
		return nil, s.planning.lookupFailed(ctx, err, "Failed to fetch goal")
	}
	resp := dto.ToGoalResponse(*goal)
	return &resp, nil
}

// CreateGoal creates a goal; quarter is derived from the start date
func (s *goalServiceImpl) CreateGoal(ctx context.Context, req *dto.CreateGoalRequest) (*dto.GoalResponse, error) {
	goalType := domain.GoalType(req.Type)
	if !goalType.Valid() {
		return nil, validationError(domain.ValidationError("type", "unknown goal type %q", req.Type))
	}
	if err := domain.ValidateProgress(req.Progress); err != nil {
		return nil, validationError(err)
	}
	start, err := parseOptionalDate(req.StartDate)
	if err != nil {
		return nil, validationError(err)
	}
	end, err := parseOptionalDate(req.EndDate)
	if err != nil {
		return nil, validationError(err)
	}
	if err := domain.ValidateDateRange(start, end); err != nil {
		return nil, validationError(err)
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	goal := &domain.Goal{
		Type:           goalType,
		Title:          req.Title,
		Description:    req.Description,
		ExpectedEffect: req.ExpectedEffect,
		Year:           req.Year,
		Quarter:        scheduler.QuarterOf(start),
		Team:           req.Team,
		Product:        req.Product,
		Tags:           tags,
		Progress:       req.Progress,
		StartDate:      start,
		EndDate:        end,
	}

	if err := s.planning.commit(ctx, func(ctx context.Context) error {
		return s.goalRepo.Create(ctx, goal)
	}, "Failed to create goal"); err != nil {
		return nil, err
	}

	s.planning.metrics.IncrementGoalCreated()
	s.planning.publish(ctx, event.GoalCreated, event.GoalCreatedPayload{
		GoalID: goal.ID,
		Year:   goal.Year,
		Type:   string(goal.Type),
		Title:  goal.Title,
	})

	resp := dto.ToGoalResponse(*goal)
	return &resp, nil
}

// UpdateGoal applies a partial update; changing the start date recomputes the quarter
func (s *goalServiceImpl) UpdateGoal(ctx context.Context, id uint, req *dto.UpdateGoalRequest) (*dto.GoalResponse, error) {
	current, err := s.goalRepo.FindByID(ctx, id)
	if err != nil {
		return nil, s.planning.lookupFailed(ctx, err, "Failed to fetch goal")
	}

	f := fields{}
	if req.Type != nil {
		if !domain.GoalType(*req.Type).Valid() {
			return nil, validationError(domain.ValidationError("type", "unknown goal type %q", *req.Type))
		}
		f["type"] = *req.Type
	}
	if err := validateProgressPtr(req.Progress); err != nil {
		return nil, validationError(err)
	}
	f.setString("title", req.Title)
	f.setString("description", req.Description)
	f.setString("expected_effect", req.ExpectedEffect)
	f.setString("team", req.Team)
	f.setString("product", req.Product)
	f.setInt("year", req.Year)
	f.setInt("progress", req.Progress)
	if req.Tags != nil {
		tags := *req.Tags
		if tags == nil {
			tags = []string{}
		}
		f["tags"] = datatypes.JSONSlice[string](tags)
	}

	start, err := f.setDate("start_date", req.StartDate, current.StartDate)
	if err != nil {
		return nil, validationError(err)
	}
	end, err := f.setDate("end_date", req.EndDate, current.EndDate)
	if err != nil {
		return nil, validationError(err)
	}
	if err := domain.ValidateDateRange(start, end); err != nil {
		return nil, validationError(err)
	}
	if req.StartDate.Set {
		if q := scheduler.QuarterOf(start); q != nil {
			f["quarter"] = *q
		} else {
			f["quarter"] = nil
		}
	}

	if err := s.planning.apply(ctx, domain.Mutation{Kind: domain.KindGoal, ID: id, Fields: f}, "Failed to update goal"); err != nil {
		return nil, err
	}
	return s.GetGoal(ctx, id)
}

// DeleteGoal removes a goal and all of its milestones and tasks
func (s *goalServiceImpl) DeleteGoal(ctx context.Context, id uint) error {
	return s.planning.commit(ctx, func(ctx context.Context) error {
		return s.goalRepo.Delete(ctx, id)
	}, "Failed to delete goal")
}
