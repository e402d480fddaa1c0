// Package dto holds the request and response shapes of the HTTP API.
package dto

import (
	"time"

	"roadmap-dashboard-api/internal/domain"
	"roadmap-dashboard-api/internal/scheduler"
)

// CreateGoalRequest represents the request to create a goal
// @Description Dates use YYYY-MM-DD; quarter is derived from startDate
type CreateGoalRequest struct {
	Type           string   `json:"type" binding:"required,oneof=issue feature feedback" example:"feature"`
	Title          string   `json:"title" binding:"required,max=200" example:"검색 개선"`
	Description    string   `json:"description" example:"Improve search relevance"`
	ExpectedEffect string   `json:"expectedEffect" example:"CTR +5%"`
	Year           int      `json:"year" binding:"required,min=1" example:"2026"`
	Team           string   `json:"team" binding:"max=100" example:"Platform"`
	Product        string   `json:"product" binding:"max=100" example:"Search"`
	Tags           []string `json:"tags"`
	Progress       int      `json:"progress" binding:"min=0,max=100" example:"0"`
	StartDate      *string  `json:"startDate,omitempty" example:"2026-02-10"`
	EndDate        *string  `json:"endDate,omitempty" example:"2026-03-31"`
}

// UpdateGoalRequest represents a partial goal update; dates accept null to clear them
type UpdateGoalRequest struct {
	Type           *string          `json:"type" binding:"omitempty,oneof=issue feature feedback"`
	Title          *string          `json:"title" binding:"omitempty,max=200"`
	Description    *string          `json:"description"`
	ExpectedEffect *string          `json:"expectedEffect"`
	Year           *int             `json:"year" binding:"omitempty,min=1"`
	Team           *string          `json:"team" binding:"omitempty,max=100"`
	Product        *string          `json:"product" binding:"omitempty,max=100"`
	Tags           *[]string        `json:"tags"`
	Progress       *int             `json:"progress"`
	StartDate      Nullable[string] `json:"startDate" swaggertype:"string"`
	EndDate        Nullable[string] `json:"endDate" swaggertype:"string"`
}

// GoalListQuery filters the goal listing
type GoalListQuery struct {
	Year    int    `form:"year"`
	Type    string `form:"type"`
	Team    string `form:"team"`
	Product string `form:"product"`
	Quarter string `form:"quarter"`
}

// GoalResponse represents a goal with its milestones
type GoalResponse struct {
	ID             uint                `json:"id" example:"1"`
	Type           string              `json:"type" example:"feature"`
	Title          string              `json:"title"`
	Description    string              `json:"description"`
	ExpectedEffect string              `json:"expectedEffect"`
	Year           int                 `json:"year" example:"2026"`
	Quarter        *string             `json:"quarter" example:"Q1"`
	Bucket         string              `json:"bucket" example:"Q1"`
	Team           string              `json:"team"`
	Product        string              `json:"product"`
	Tags           []string            `json:"tags"`
	Progress       int                 `json:"progress" example:"40"`
	StartDate      *string             `json:"startDate" example:"2026-02-10"`
	EndDate        *string             `json:"endDate" example:"2026-03-31"`
	Milestones     []MilestoneResponse `json:"milestones"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

// ToGoalResponse converts a goal and its children
func ToGoalResponse(g domain.Goal) GoalResponse {
	tags := []string(g.Tags)
	if tags == nil {
		tags = []string{}
	}
	milestones := make([]MilestoneResponse, 0, len(g.Milestones))
	for _, m := range g.Milestones {
		milestones = append(milestones, ToMilestoneResponse(m))
	}
	return GoalResponse{
		ID:             g.ID,
		Type:           string(g.Type),
		Title:          g.Title,
		Description:    g.Description,
		ExpectedEffect: g.ExpectedEffect,
		Year:           g.Year,
		Quarter:        g.Quarter,
		Bucket:         string(scheduler.BucketOf(g.StartDate)),
		Team:           g.Team,
		Product:        g.Product,
		Tags:           tags,
		Progress:       g.Progress,
		StartDate:      domain.FormatDate(g.StartDate),
		EndDate:        domain.FormatDate(g.EndDate),
		Milestones:     milestones,
		CreatedAt:      g.CreatedAt,
		UpdatedAt:      g.UpdatedAt,
	}
}

// ToGoalResponses converts a goal list
func ToGoalResponses(goals []domain.Goal) []GoalResponse {
	out := make([]GoalResponse, 0, len(goals))
	for _, g := range goals {
		out = append(out, ToGoalResponse(g))
	}
	return out
}
