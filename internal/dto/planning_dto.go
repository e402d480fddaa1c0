package dto

import (
	"roadmap-dashboard-api/internal/aggregate"
	"roadmap-dashboard-api/internal/scheduler"
)

// RelocateRequest drops a goal on a board bucket
type RelocateRequest struct {
	GoalID uint   `json:"goalId" binding:"required" example:"1"`
	Bucket string `json:"bucket" binding:"required" example:"Q3"`
	Year   int    `json:"year" example:"2026"`
}

// BoardColumnResponse is one bucket of the quarter board
type BoardColumnResponse struct {
	Bucket string         `json:"bucket" example:"Q1"`
	Count  int            `json:"count" example:"2"`
	Goals  []GoalResponse `json:"goals"`
}

// BoardResponse is the quarter board of a year
type BoardResponse struct {
	Year    int                   `json:"year" example:"2026"`
	Columns []BoardColumnResponse `json:"columns"`
	Counts  map[string]int        `json:"counts"`
}

// ToBoardResponse converts a board
func ToBoardResponse(b scheduler.Board) BoardResponse {
	resp := BoardResponse{
		Year:    b.Year,
		Columns: make([]BoardColumnResponse, 0, len(b.Columns)),
		Counts:  make(map[string]int, len(b.Counts)),
	}
	for _, col := range b.Columns {
		resp.Columns = append(resp.Columns, BoardColumnResponse{
			Bucket: string(col.Bucket),
			Count:  col.Count,
			Goals:  ToGoalResponses(col.Goals),
		})
	}
	for bucket, n := range b.Counts {
		resp.Counts[string(bucket)] = n
	}
	return resp
}

// RelocateResponse carries the moved goal and the recomputed board
type RelocateResponse struct {
	Goal  GoalResponse  `json:"goal"`
	Board BoardResponse `json:"board"`
}

// TimelineQuery selects the projection year and view mode
type TimelineQuery struct {
	Year int    `form:"year"`
	Mode string `form:"mode"`
}

// ProgressRequest is a progress drag on a timeline bar
type ProgressRequest struct {
	BarID    string  `json:"barId" binding:"required" example:"task-9"`
	Progress float64 `json:"progress" example:"62.4"`
}

// ProgressResponse carries the applied value and the refreshed summary
type ProgressResponse struct {
	BarID    string            `json:"barId" example:"task-9"`
	Progress int               `json:"progress" example:"62"`
	Summary  aggregate.Summary `json:"summary"`
}

// OpenBarResponse reports whether a click opens a goal editor
type OpenBarResponse struct {
	Open bool          `json:"open"`
	Goal *GoalResponse `json:"goal,omitempty"`
}

// ScrollResponse is the timeline scroll target for a quarter
type ScrollResponse struct {
	Year    int    `json:"year" example:"2026"`
	Quarter int    `json:"quarter" example:"3"`
	Target  string `json:"target" example:"2026-07-01"`
}

// SummaryResponse is the dashboard summary of a year
type SummaryResponse struct {
	Year int `json:"year" example:"2026"`
	aggregate.Summary
	IdeasByStatus map[string]int `json:"ideasByStatus"`
}

// YearsResponse lists the years with planning data
type YearsResponse struct {
	Years []int `json:"years"`
}
