package dto

import (
	"time"

	"roadmap-dashboard-api/internal/domain"
)

// CreateIdeaRequest represents the request to submit an idea
type CreateIdeaRequest struct {
	Type        string `json:"type" binding:"required,oneof=issue feature feedback" example:"feature"`
	Title       string `json:"title" binding:"required,max=200" example:"다크 모드"`
	Description string `json:"description"`
	Year        int    `json:"year" binding:"required,min=1" example:"2026"`
	Product     string `json:"product" binding:"max=100"`
	Priority    int    `json:"priority" binding:"min=0,max=3" example:"1"`
}

// UpdateIdeaRequest edits idea content; status is not accepted here
type UpdateIdeaRequest struct {
	Type        *string `json:"type" binding:"omitempty,oneof=issue feature feedback"`
	Title       *string `json:"title" binding:"omitempty,max=200"`
	Description *string `json:"description"`
	Year        *int    `json:"year" binding:"omitempty,min=1"`
	Product     *string `json:"product" binding:"omitempty,max=100"`
	Priority    *int    `json:"priority" binding:"omitempty,min=0,max=3"`
}

// IdeaListQuery filters the idea listing
type IdeaListQuery struct {
	Year     int    `form:"year"`
	Status   string `form:"status"`
	Type     string `form:"type"`
	Product  string `form:"product"`
	Priority *int   `form:"priority"`
}

// CreateCommentRequest represents a new comment on an idea
type CreateCommentRequest struct {
	Author  string `json:"author" binding:"required,max=100" example:"PM"`
	Content string `json:"content" binding:"required" example:"좋은 아이디어입니다"`
}

// CommentResponse represents a comment
type CommentResponse struct {
	ID        uint      `json:"id"`
	IdeaID    uint      `json:"ideaId"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// IdeaResponse represents an idea with its comments
type IdeaResponse struct {
	ID          uint              `json:"id"`
	Type        string            `json:"type"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Year        int               `json:"year"`
	Product     string            `json:"product"`
	Priority    int               `json:"priority"`
	Status      string            `json:"status"`
	Comments    []CommentResponse `json:"comments"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// ConvertIdeaResponse carries the converted idea and its new goal
type ConvertIdeaResponse struct {
	Idea IdeaResponse `json:"idea"`
	Goal GoalResponse `json:"goal"`
}

// ToCommentResponse converts a comment
func ToCommentResponse(c domain.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		IdeaID:    c.IdeaID,
		Author:    c.Author,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}

// ToCommentResponses converts a comment list
func ToCommentResponses(comments []domain.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, ToCommentResponse(c))
	}
	return out
}

// ToIdeaResponse converts an idea and its comments
func ToIdeaResponse(i domain.Idea) IdeaResponse {
	return IdeaResponse{
		ID:          i.ID,
		Type:        string(i.Type),
		Title:       i.Title,
		Description: i.Description,
		Year:        i.Year,
		Product:     i.Product,
		Priority:    int(i.Priority),
		Status:      string(i.Status),
		Comments:    ToCommentResponses(i.Comments),
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

// ToIdeaResponses converts an idea list
func ToIdeaResponses(ideas []domain.Idea) []IdeaResponse {
	out := make([]IdeaResponse, 0, len(ideas))
	for _, i := range ideas {
		out = append(out, ToIdeaResponse(i))
	}
	return out
}
