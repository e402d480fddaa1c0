package dto

import (
	"time"

	"roadmap-dashboard-api/internal/domain"
)

// CreateTaskRequest represents the request to create a task
type CreateTaskRequest struct {
	MilestoneID uint    `json:"milestoneId" binding:"required" example:"1"`
	Title       string  `json:"title" binding:"required,max=200" example:"API 초안"`
	Description string  `json:"description"`
	AssigneeID  *uint   `json:"assigneeId,omitempty" example:"3"`
	StartDate   *string `json:"startDate,omitempty"`
	DueDate     *string `json:"dueDate,omitempty"`
	Progress    int     `json:"progress" binding:"min=0,max=100"`
}

// UpdateTaskRequest represents a partial task update; assigneeId accepts null to unassign
type UpdateTaskRequest struct {
	MilestoneID *uint            `json:"milestoneId"`
	Title       *string          `json:"title" binding:"omitempty,max=200"`
	Description *string          `json:"description"`
	AssigneeID  Nullable[uint]   `json:"assigneeId" swaggertype:"integer"`
	StartDate   Nullable[string] `json:"startDate" swaggertype:"string"`
	DueDate     Nullable[string] `json:"dueDate" swaggertype:"string"`
	Progress    *int             `json:"progress"`
}

// TaskListQuery filters the task listing
type TaskListQuery struct {
	MilestoneID uint `form:"milestoneId"`
	AssigneeID  uint `form:"assigneeId"`
}

// TaskResponse represents a task
type TaskResponse struct {
	ID          uint            `json:"id"`
	MilestoneID uint            `json:"milestoneId"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	AssigneeID  *uint           `json:"assigneeId"`
	Assignee    *MemberResponse `json:"assignee,omitempty"`
	StartDate   *string         `json:"startDate"`
	DueDate     *string         `json:"dueDate"`
	Progress    int             `json:"progress"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ToTaskResponse converts a task
func ToTaskResponse(t domain.Task) TaskResponse {
	resp := TaskResponse{
		ID:          t.ID,
		MilestoneID: t.MilestoneID,
		Title:       t.Title,
		Description: t.Description,
		AssigneeID:  t.AssigneeID,
		StartDate:   domain.FormatDate(t.StartDate),
		DueDate:     domain.FormatDate(t.DueDate),
		Progress:    t.Progress,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if t.Assignee != nil {
		m := ToMemberResponse(*t.Assignee)
		resp.Assignee = &m
	}
	return resp
}

// ToTaskResponses converts a task list
func ToTaskResponses(tasks []domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, ToTaskResponse(t))
	}
	return out
}
