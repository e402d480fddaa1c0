package domain

import "time"

// IdeaStatus is the lifecycle state of an idea
type IdeaStatus string

const (
	IdeaStatusOpen      IdeaStatus = "open"
	IdeaStatusApproved  IdeaStatus = "approved"
	IdeaStatusRejected  IdeaStatus = "rejected"
	IdeaStatusConverted IdeaStatus = "converted"
)

// Valid reports whether s is a known idea status
func (s IdeaStatus) Valid() bool {
	switch s {
	case IdeaStatusOpen, IdeaStatusApproved, IdeaStatusRejected, IdeaStatusConverted:
		return true
	}
	return false
}

// Priority ranks ideas; lower non-zero values are more urgent
type Priority int

const (
	PriorityNone   Priority = 0
	PriorityHigh   Priority = 1
	PriorityMedium Priority = 2
	PriorityLow    Priority = 3
)

// Valid reports whether p is a known priority
func (p Priority) Valid() bool {
	return p >= PriorityNone && p <= PriorityLow
}

// Idea is an intake item that may be promoted to a goal
type Idea struct {
	BaseModel
	Type        GoalType   `gorm:"type:varchar(20);not null" json:"type"`
	Title       string     `gorm:"type:varchar(200);not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Year        int        `gorm:"not null;index:idx_ideas_year" json:"year"`
	Product     string     `gorm:"type:varchar(100)" json:"product"`
	Priority    Priority   `gorm:"not null;default:0" json:"priority"`
	Status      IdeaStatus `gorm:"type:varchar(20);not null;default:'open';index:idx_ideas_status" json:"status"`
	Comments    []Comment  `gorm:"foreignKey:IdeaID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
}

// TableName specifies the table name for Idea
func (Idea) TableName() string {
	return "ideas"
}

// Comment is an immutable note on an idea
type Comment struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	IdeaID    uint      `gorm:"not null;index:idx_comments_idea_id" json:"idea_id"`
	Author    string    `gorm:"type:varchar(100);not null" json:"author"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
