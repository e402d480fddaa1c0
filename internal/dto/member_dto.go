package dto

import (
	"time"

	"roadmap-dashboard-api/internal/aggregate"
	"roadmap-dashboard-api/internal/domain"
)

// CreateMemberRequest represents the request to create a member
type CreateMemberRequest struct {
	Name     string  `json:"name" binding:"required,max=100" example:"김민수"`
	Role     string  `json:"role" binding:"required,max=50" example:"Backend"`
	Team     string  `json:"team" binding:"max=100" example:"Platform"`
	Product  string  `json:"product" binding:"max=100" example:"Search"`
	Type     string  `json:"type" binding:"required,oneof=existing new" example:"existing"`
	Year     int     `json:"year" binding:"required,min=1" example:"2026"`
	JoinDate *string `json:"joinDate,omitempty" example:"2026-03-02"`
}

// UpdateMemberRequest represents a partial member update
type UpdateMemberRequest struct {
	Name     *string          `json:"name" binding:"omitempty,max=100"`
	Role     *string          `json:"role" binding:"omitempty,max=50"`
	Team     *string          `json:"team" binding:"omitempty,max=100"`
	Product  *string          `json:"product" binding:"omitempty,max=100"`
	Type     *string          `json:"type" binding:"omitempty,oneof=existing new"`
	Year     *int             `json:"year" binding:"omitempty,min=1"`
	JoinDate Nullable[string] `json:"joinDate" swaggertype:"string"`
}

// MemberListQuery filters the member listing
type MemberListQuery struct {
	Year int    `form:"year"`
	Type string `form:"type"`
	Role string `form:"role"`
	Team string `form:"team"`
}

// MemberResponse represents a member
type MemberResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Team      string    `json:"team"`
	Product   string    `json:"product"`
	Type      string    `json:"type"`
	Year      int       `json:"year"`
	JoinDate  *string   `json:"joinDate"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToMemberResponse converts a member
func ToMemberResponse(m domain.Member) MemberResponse {
	return MemberResponse{
		ID:        m.ID,
		Name:      m.Name,
		Role:      m.Role,
		Team:      m.Team,
		Product:   m.Product,
		Type:      string(m.Type),
		Year:      m.Year,
		JoinDate:  domain.FormatDate(m.JoinDate),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ToMemberResponses converts a member list
func ToMemberResponses(members []domain.Member) []MemberResponse {
	out := make([]MemberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, ToMemberResponse(m))
	}
	return out
}

// MemberSummaryResponse is the staffing summary of a year
type MemberSummaryResponse struct {
	Year int `json:"year"`
	aggregate.MemberSummary
}
