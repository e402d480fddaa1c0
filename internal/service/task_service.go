package service

import (
	"context"

	"roadmap-dashboard-api/internal/domain"
	"roadmap-dashboard-api/internal/dto"
	"roadmap-dashboard-api/internal/repository"
)

// TaskService defines the interface for task business logic
type TaskService interface {
	ListTasks(ctx context.Context, query dto.TaskListQuery) ([]dto.TaskResponse, error)
	GetTask(ctx context.Context, id uint) (*dto.TaskResponse, error)
	CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	UpdateTask(ctx context.Context, id uint, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error)
	DeleteTask(ctx context.Context, id uint) error
}

type taskServiceImpl struct {
	planning *Planning
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new instance of TaskService
func NewTaskService(planning *Planning, taskRepo repository.TaskRepository) TaskService {
	return &taskServiceImpl{planning: planning, taskRepo: taskRepo}
}

func (s *taskServiceImpl) ListTasks(ctx context.Context, query dto.TaskListQuery) ([]dto.TaskResponse, error) {
	tasks, err := s.taskRepo.Find(ctx, repository.TaskFilter{
		MilestoneID: query.MilestoneID,
		AssigneeID:  query.AssigneeID,
	})
	if err != nil {
		return nil, mapError(err, "Failed to fetch tasks")
	}
	return dto.ToTaskResponses(tasks), nil
}

func (s *taskServiceImpl) GetTask(ctx context.Context, id uint) (*dto.TaskResponse, error) {
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, s.planning.lookupFailed(ctx, err, "Failed to fetch task")
	}
	resp := dto.ToTaskResponse(*task)
	return &resp, nil
}

// CreateTask creates a task; the milestone and the assignee, if any, must exist
func (s *taskServiceImpl) CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
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

	task := &domain.Task{
		MilestoneID: req.MilestoneID,
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
		StartDate:   start,
		DueDate:     due,
		Progress:    req.Progress,
	}
	if err := s.planning.commit(ctx, func(ctx context.Context) error {
		return s.taskRepo.Create(ctx, task)
	}, "Failed to create task"); err != nil {
		return nil, err
	}
	return s.GetTask(ctx, task.ID)
}

// UpdateTask applies a partial update; a null assigneeId unassigns the task
func (s *taskServiceImpl) UpdateTask(ctx context.Context, id uint, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	current, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, s.planning.lookupFailed(ctx, err, "Failed to fetch task")
	}
	if err := validateProgressPtr(req.Progress); err != nil {
		return nil, validationError(err)
	}

	f := fields{}
	if req.MilestoneID != nil {
		f["milestone_id"] = *req.MilestoneID
	}
	f.setString("title", req.Title)
	f.setString("description", req.Description)
	f.setInt("progress", req.Progress)
	if req.AssigneeID.Set {
		if req.AssigneeID.Value == nil {
			f["assignee_id"] = nil
		} else {
			f["assignee_id"] = *req.AssigneeID.Value
		}
	}
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

	if err := s.planning.apply(ctx, domain.Mutation{Kind: domain.KindTask, ID: id, Fields: f}, "Failed to update task"); err != nil {
		return nil, err
	}
	return s.GetTask(ctx, id)
}

func (s *taskServiceImpl) DeleteTask(ctx context.Context, id uint) error {
	return s.planning.commit(ctx, func(ctx context.Context) error {
		return s.taskRepo.Delete(ctx, id)
	}, "Failed to delete task")
}
