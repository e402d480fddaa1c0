package handler

import (
	"context"

	"roadmap-dashboard-api/internal/dto"
	"roadmap-dashboard-api/internal/timeline"
)

// MockGoalService is a mock implementation of GoalService
type MockGoalService struct {
	ListGoalsFunc  func(ctx context.Context, query dto.GoalListQuery) ([]dto.GoalResponse, error)
	GetGoalFunc    func(ctx context.Context, id uint) (*dto.GoalResponse, error)
	CreateGoalFunc func(ctx context.Context, req *dto.CreateGoalRequest) (*dto.GoalResponse, error)
	UpdateGoalFunc func(ctx context.Context, id uint, req *dto.UpdateGoalRequest) (*dto.GoalResponse, error)
	DeleteGoalFunc func(ctx context.Context, id uint) error
}

func (m *MockGoalService) ListGoals(ctx context.Context, query dto.GoalListQuery) ([]dto.GoalResponse, error) {
	if m.ListGoalsFunc != nil {
		return m.ListGoalsFunc(ctx, query)
	}
	return []dto.GoalResponse{}, nil
}

func (m *MockGoalService) GetGoal(ctx context.Context, id uint) (*dto.GoalResponse, error) {
	if m.GetGoalFunc != nil {
		return m.GetGoalFunc(ctx, id)
	}
	return &dto.GoalResponse{ID: id}, nil
}

func (m *MockGoalService) CreateGoal(ctx context.Context, req *dto.CreateGoalRequest) (*dto.GoalResponse, error) {
	if m.CreateGoalFunc != nil {
		return m.CreateGoalFunc(ctx, req)
	}
	return &dto.GoalResponse{ID: 1, Title: req.Title}, nil
}

func (m *MockGoalService) UpdateGoal(ctx context.Context, id uint, req *dto.UpdateGoalRequest) (*dto.GoalResponse, error) {
	if m.UpdateGoalFunc != nil {
		return m.UpdateGoalFunc(ctx, id, req)
	}
	return &dto.GoalResponse{ID: id}, nil
}

func (m *MockGoalService) DeleteGoal(ctx context.Context, id uint) error {
	if m.DeleteGoalFunc != nil {
		return m.DeleteGoalFunc(ctx, id)
	}
	return nil
}

// MockIdeaService is a mock implementation of IdeaService
type MockIdeaService struct {
	ApproveIdeaFunc   func(ctx context.Context, id uint) (*dto.IdeaResponse, error)
	RejectIdeaFunc    func(ctx context.Context, id uint) (*dto.IdeaResponse, error)
	ConvertIdeaFunc   func(ctx context.Context, id uint) (*dto.ConvertIdeaResponse, error)
	AddCommentFunc    func(ctx context.Context, ideaID uint, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	DeleteCommentFunc func(ctx context.Context, commentID uint) error
}

func (m *MockIdeaService) ListIdeas(ctx context.Context, query dto.IdeaListQuery) ([]dto.IdeaResponse, error) {
	return []dto.IdeaResponse{}, nil
}

func (m *MockIdeaService) GetIdea(ctx context.Context, id uint) (*dto.IdeaResponse, error) {
	return &dto.IdeaResponse{ID: id}, nil
}

func (m *MockIdeaService) CreateIdea(ctx context.Context, req *dto.CreateIdeaRequest) (*dto.IdeaResponse, error) {
	return &dto.IdeaResponse{ID: 1, Title: req.Title, Status: "open"}, nil
}

func (m *MockIdeaService) UpdateIdea(ctx context.Context, id uint, req *dto.UpdateIdeaRequest) (*dto.IdeaResponse, error) {
	return &dto.IdeaResponse{ID: id}, nil
}

func (m *MockIdeaService) DeleteIdea(ctx context.Context, id uint) error {
	return nil
}

func (m *MockIdeaService) ApproveIdea(ctx context.Context, id uint) (*dto.IdeaResponse, error) {
	if m.ApproveIdeaFunc != nil {
		return m.ApproveIdeaFunc(ctx, id)
	}
	return &dto.IdeaResponse{ID: id, Status: "approved"}, nil
}

func (m *MockIdeaService) RejectIdea(ctx context.Context, id uint) (*dto.IdeaResponse, error) {
	if m.RejectIdeaFunc != nil {
		return m.RejectIdeaFunc(ctx, id)
	}
	return &dto.IdeaResponse{ID: id, Status: "rejected"}, nil
}

func (m *MockIdeaService) ConvertIdea(ctx context.Context, id uint) (*dto.ConvertIdeaResponse, error) {
	if m.ConvertIdeaFunc != nil {
		return m.ConvertIdeaFunc(ctx, id)
	}
	return &dto.ConvertIdeaResponse{Idea: dto.IdeaResponse{ID: id, Status: "converted"}}, nil
}

func (m *MockIdeaService) ListComments(ctx context.Context, ideaID uint) ([]dto.CommentResponse, error) {
	return []dto.CommentResponse{}, nil
}

func (m *MockIdeaService) AddComment(ctx context.Context, ideaID uint, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if m.AddCommentFunc != nil {
		return m.AddCommentFunc(ctx, ideaID, req)
	}
	return &dto.CommentResponse{ID: 1, IdeaID: ideaID, Author: req.Author, Content: req.Content}, nil
}

func (m *MockIdeaService) DeleteComment(ctx context.Context, commentID uint) error {
	if m.DeleteCommentFunc != nil {
		return m.DeleteCommentFunc(ctx, commentID)
	}
	return nil
}

// MockScheduleService is a mock implementation of ScheduleService
type MockScheduleService struct {
	GetBoardFunc func(ctx context.Context, year int) (*dto.BoardResponse, error)
	RelocateFunc func(ctx context.Context, req *dto.RelocateRequest) (*dto.RelocateResponse, error)
}

func (m *MockScheduleService) GetBoard(ctx context.Context, year int) (*dto.BoardResponse, error) {
	if m.GetBoardFunc != nil {
		return m.GetBoardFunc(ctx, year)
	}
	return &dto.BoardResponse{Year: year}, nil
}

func (m *MockScheduleService) Relocate(ctx context.Context, req *dto.RelocateRequest) (*dto.RelocateResponse, error) {
	if m.RelocateFunc != nil {
		return m.RelocateFunc(ctx, req)
	}
	return &dto.RelocateResponse{Goal: dto.GoalResponse{ID: req.GoalID, Bucket: req.Bucket}}, nil
}

// MockTimelineService is a mock implementation of TimelineService
type MockTimelineService struct {
	GetTimelineFunc    func(ctx context.Context, year int, mode string) (*timeline.Projection, error)
	UpdateProgressFunc func(ctx context.Context, req *dto.ProgressRequest) (*dto.ProgressResponse, error)
	OpenBarFunc        func(ctx context.Context, barID string) (*dto.OpenBarResponse, error)
	ScrollTargetFunc   func(ctx context.Context, year, quarter int) (*dto.ScrollResponse, error)
}

func (m *MockTimelineService) GetTimeline(ctx context.Context, year int, mode string) (*timeline.Projection, error) {
	if m.GetTimelineFunc != nil {
		return m.GetTimelineFunc(ctx, year, mode)
	}
	return &timeline.Projection{Year: year, Mode: timeline.ViewMonth}, nil
}

func (m *MockTimelineService) UpdateProgress(ctx context.Context, req *dto.ProgressRequest) (*dto.ProgressResponse, error) {
	if m.UpdateProgressFunc != nil {
		return m.UpdateProgressFunc(ctx, req)
	}
	return &dto.ProgressResponse{BarID: req.BarID, Progress: int(req.Progress)}, nil
}

func (m *MockTimelineService) OpenBar(ctx context.Context, barID string) (*dto.OpenBarResponse, error) {
	if m.OpenBarFunc != nil {
		return m.OpenBarFunc(ctx, barID)
	}
	return &dto.OpenBarResponse{}, nil
}

func (m *MockTimelineService) ScrollTarget(ctx context.Context, year, quarter int) (*dto.ScrollResponse, error) {
	if m.ScrollTargetFunc != nil {
		return m.ScrollTargetFunc(ctx, year, quarter)
	}
	return &dto.ScrollResponse{Year: year, Quarter: quarter}, nil
}
