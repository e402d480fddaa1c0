package service

import (
	"context"

	"roadmap-dashboard-api/internal/domain"
	"roadmap-dashboard-api/internal/dto"
	"roadmap-dashboard-api/internal/event"
	"roadmap-dashboard-api/internal/lifecycle"
	"roadmap-dashboard-api/internal/repository"
	"roadmap-dashboard-api/internal/store"
)

// IdeaService defines the interface for idea intake and lifecycle logic
type IdeaService interface {
	ListIdeas(ctx context.Context, query dto.IdeaListQuery) ([]dto.IdeaResponse, error)
	GetIdea(ctx context.Context, id uint) (*dto.IdeaResponse, error)
	CreateIdea(ctx context.Context, req *dto.CreateIdeaRequest) (*dto.IdeaResponse, error)
	UpdateIdea(ctx context.Context, id uint, req *dto.UpdateIdeaRequest) (*dto.IdeaResponse, error)
	DeleteIdea(ctx context.Context, id uint) error
	ApproveIdea(ctx context.Context, id uint) (*dto.IdeaResponse, error)
	RejectIdea(ctx context.Context, id uint) (*dto.IdeaResponse, error)
	ConvertIdea(ctx context.Context, id uint) (*dto.ConvertIdeaResponse, error)
	ListComments(ctx context.Context, ideaID uint) ([]dto.CommentResponse, error)
	AddComment(ctx context.Context, ideaID uint, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	DeleteComment(ctx context.Context, commentID uint) error
}

type ideaServiceImpl struct {
	planning    *Planning
	ideaRepo    repository.IdeaRepository
	commentRepo repository.CommentRepository
	goalRepo    repository.GoalRepository
}

// NewIdeaService creates a new instance of IdeaService
func NewIdeaService(planning *Planning, ideaRepo repository.IdeaRepository, commentRepo repository.CommentRepository, goalRepo repository.GoalRepository) IdeaService {
	return &ideaServiceImpl{
		planning:    planning,
		ideaRepo:    ideaRepo,
		commentRepo: commentRepo,
		goalRepo:    goalRepo,
	}
}

// ListIdeas lists ideas by priority, newest first within a priority
func (s *ideaServiceImpl) ListIdeas(ctx context.Context, query dto.IdeaListQuery) ([]dto.IdeaResponse, error) {
	filter := store.IdeaFilter{
		Status:  domain.IdeaStatus(query.Status),
		Type:    domain.GoalType(query.Type),
		Product: query.Product,
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, validationError(domain.ValidationError("status", "unknown idea status %q", query.Status))
	}
	if filter.Type != "" && !filter.Type.Valid() {
		return nil, validationError(domain.ValidationError("type", "unknown idea type %q", query.Type))
	}
	if query.Priority != nil {
		p := domain.Priority(*query.Priority)
		if !p.Valid() {
			return nil, validationError(domain.ValidationError("priority", "must be between 0 and 3, got %d", *query.Priority))
		}
		filter.Priority = &p
	}

	snap, err := s.planning.scope(ctx, query.Year)
	if err != nil {
		return nil, err
	}
	return dto.ToIdeaResponses(snap.ListIdeas(filter)), nil
}

func (s *ideaServiceImpl) GetIdea(ctx context.Context, id uint) (*dto.IdeaResponse, error) {
	idea, err := s.ideaRepo.FindByID(ctx, id)
	if err != nil {
		return nil, s.planning.lookupFailed(ctx, err, "Failed to fetch idea")
	}
	resp := dto.ToIdeaResponse(*idea)
	return &resp, nil
}

// CreateIdea submits an idea in the open state
func (s *ideaServiceImpl) CreateIdea(ctx context.Context, req *dto.CreateIdeaRequest) (*dto.IdeaResponse, error) {
	ideaType := domain.GoalType(req.Type)
	if !ideaType.Valid() {
		return nil, validationError(domain.ValidationError("type", "unknown idea type %q", req.Type))
	}
	priority := domain.Priority(req.Priority)
	if !priority.Valid() {
		return nil, validationError(domain.ValidationError("priority", "must be between 0 and 3, got %d", req.Priority))
	}

	idea := &domain.Idea{
		Type:        ideaType,
		Title:       req.Title,
		Description: req.Description,
		Year:        req.Year,
		Product:     req.Product,
		Priority:    priority,
		Status:      domain.IdeaStatusOpen,
	}
	if err := s.planning.commit(ctx, func(ctx context.Context) error {
		return s.ideaRepo.Create(ctx, idea)
	}, "Failed to create idea"); err != nil {
		return nil, err
	}

	resp := dto.ToIdeaResponse(*idea)
	return &resp, nil
}

// UpdateIdea edits idea content; status is never touched here
func (s *ideaServiceImpl) UpdateIdea(ctx context.Context, id uint, req *dto.UpdateIdeaRequest) (*dto.IdeaResponse, error) {
	f := fields{}
	if req.Type != nil {
		if !domain.GoalType(*req.Type).Valid() {
			return nil, validationError(domain.ValidationError("type", "unknown idea type %q", *req.Type))
		}
		f["type"] = *req.Type
	}
	if req.Priority != nil && !domain.Priority(*req.Priority).Valid() {
		return nil, validationError(domain.ValidationError("priority", "must be between 0 and 3, got %d", *req.Priority))
	}
	f.setString("title", req.Title)
	f.setString("description", req.Description)
	f.setString("product", req.Product)
	f.setInt("year", req.Year)
	f.setInt("priority", req.Priority)

	if err := s.planning.apply(ctx, domain.Mutation{Kind: domain.KindIdea, ID: id, Fields: f}, "Failed to update idea"); err != nil {
		return nil, err
	}
	return s.GetIdea(ctx, id)
}

func (s *ideaServiceImpl) DeleteIdea(ctx context.Context, id uint) error {
	return s.planning.commit(ctx, func(ctx context.Context) error {
		return s.ideaRepo.Delete(ctx, id)
	}, "Failed to delete idea")
}

// ApproveIdea moves an open idea to approved
func (s *ideaServiceImpl) ApproveIdea(ctx context.Context, id uint) (*dto.IdeaResponse, error) {
	return s.transition(ctx, id, domain.IdeaStatusApproved)
}

// RejectIdea moves an open idea to rejected
func (s *ideaServiceImpl) RejectIdea(ctx context.Context, id uint) (*dto.IdeaResponse, error) {
	return s.transition(ctx, id, domain.IdeaStatusRejected)
}

func (s *ideaServiceImpl) transition(ctx context.Context, id uint, to domain.IdeaStatus) (*dto.IdeaResponse, error) {
	idea, err := s.ideaRepo.FindByID(ctx, id)
	if err != nil {
		return nil, s.planning.lookupFailed(ctx, err, "Failed to fetch idea")
	}
	if _, err := lifecycle.Transition(*idea, to); err != nil {
		return nil, mapError(err, "Failed to change idea status")
	}

	from := idea.Status
	if err := s.planning.commit(ctx, func(ctx context.Context) error {
		return s.ideaRepo.TransitionStatus(ctx, id, from, to)
	}, "Failed to change idea status"); err != nil {
		return nil, err
	}

	s.planning.metrics.IncrementIdeaTransition(string(to))
	s.planning.publish(ctx, event.IdeaTransitioned, event.IdeaTransitionedPayload{
		IdeaID: id,
		From:   string(from),
		To:     string(to),
	})
	return s.GetIdea(ctx, id)
}

// ConvertIdea promotes an approved idea to a goal; the goal and the status change commit together
func (s *ideaServiceImpl) ConvertIdea(ctx context.Context, id uint) (*dto.ConvertIdeaResponse, error) {
	idea, err := s.ideaRepo.FindByID(ctx, id)
	if err != nil {
		return nil, s.planning.lookupFailed(ctx, err, "Failed to fetch idea")
	}
	goal, err := lifecycle.Convert(*idea)
	if err != nil {
		return nil, mapError(err, "Failed to convert idea")
	}

	if err := s.planning.commit(ctx, func(ctx context.Context) error {
		return s.ideaRepo.ConvertToGoal(ctx, id, goal)
	}, "Failed to convert idea"); err != nil {
		return nil, err
	}

	s.planning.metrics.IncrementIdeaTransition(string(domain.IdeaStatusConverted))
	s.planning.metrics.IncrementGoalCreated()
	s.planning.publish(ctx, event.IdeaConverted, event.IdeaConvertedPayload{
		IdeaID: id,
		GoalID: goal.ID,
		Year:   goal.Year,
	})

	converted, err := s.GetIdea(ctx, id)
	if err != nil {
		return nil, err
	}
	created, err := s.goalRepo.FindByID(ctx, goal.ID)
	if err != nil {
		return nil, mapError(err, "Failed to fetch goal")
	}
	return &dto.ConvertIdeaResponse{
		Idea: *converted,
		Goal: dto.ToGoalResponse(*created),
	}, nil
}

// ListComments lists an idea's comments oldest first
func (s *ideaServiceImpl) ListComments(ctx context.Context, ideaID uint) ([]dto.CommentResponse, error) {
	if _, err := s.ideaRepo.FindByID(ctx, ideaID); err != nil {
		return nil, s.planning.lookupFailed(ctx, err, "Failed to fetch idea")
	}
	comments, err := s.commentRepo.FindByIdea(ctx, ideaID)
	if err != nil {
		return nil, mapError(err, "Failed to fetch comments")
	}
	return dto.ToCommentResponses(comments), nil
}

// AddComment appends a comment in any idea state
func (s *ideaServiceImpl) AddComment(ctx context.Context, ideaID uint, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	comment := &domain.Comment{
		IdeaID:  ideaID,
		Author:  req.Author,
		Content: req.Content,
	}
	if err := s.planning.commit(ctx, func(ctx context.Context) error {
		return s.commentRepo.Create(ctx, comment)
	}, "Failed to add comment"); err != nil {
		return nil, err
	}
	resp := dto.ToCommentResponse(*comment)
	return &resp, nil
}

func (s *ideaServiceImpl) DeleteComment(ctx context.Context, commentID uint) error {
	return s.planning.commit(ctx, func(ctx context.Context) error {
		return s.commentRepo.Delete(ctx, commentID)
	}, "Failed to delete comment")
}
