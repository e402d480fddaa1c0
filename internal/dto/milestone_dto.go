package dto

import (
	"time"

	"roadmap-dashboard-api/internal/domain"
)

// CreateMilestoneRequest represents the request to create a milestone
type CreateMilestoneRequest struct {
	GoalID      uint    `json:"goalId" binding:"required" example:"1"`
	Title       string  `json:"title" binding:"required,max=200" example:"설계"`
	Description string  `json:"description"`
	StartDate   *string `json:"startDate,omitempty" example:"2026-02-10"`
	DueDate     *string `json:"dueDate,omitempty" example:"2026-02-28"`
	Progress    int     `json:"progress" binding:"min=0,max=100"`
}

// UpdateMilestoneRequest represents a partial milestone update
type UpdateMilestoneRequest struct {
	Title       *string          `json:"title" binding:"omitempty,max=200"`
	Description *string          `json:"description"`
	StartDate   Nullable[string] `json:"startDate" swaggertype:"string"`
	DueDate     Nullable[string] `json:"dueDate" swaggertype:"string"`
	Progress    *int             `json:"progress"`
}

// MilestoneResponse represents a milestone with its tasks
type MilestoneResponse struct {
	ID          uint           `json:"id"`
	GoalID      uint           `json:"goalId"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	StartDate   *string        `json:"startDate"`
	DueDate     *string        `json:"dueDate"`
	Progress    int            `json:"progress"`
	Tasks       []TaskResponse `json:"tasks"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// ToMilestoneResponse converts a milestone and its tasks
func ToMilestoneResponse(m domain.Milestone) MilestoneResponse {
	tasks := make([]TaskResponse, 0, len(m.Tasks))
	for _, t := range m.Tasks {
		tasks = append(tasks, ToTaskResponse(t))
	}
	return MilestoneResponse{
		ID:          m.ID,
		GoalID:      m.GoalID,
		Title:       m.Title,
		Description: m.Description,
		StartDate:   domain.FormatDate(m.StartDate),
		DueDate:     domain.FormatDate(m.DueDate),
		Progress:    m.Progress,
		Tasks:       tasks,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
