package domain

import (
	"time"

	"gorm.io/datatypes"
)

// GoalType classifies goals and ideas
type GoalType string

const (
	GoalTypeIssue    GoalType = "issue"
	GoalTypeFeature  GoalType = "feature"
	GoalTypeFeedback GoalType = "feedback"
)

// Valid reports whether t is a known goal type
func (t GoalType) Valid() bool {
	switch t {
	case GoalTypeIssue, GoalTypeFeature, GoalTypeFeedback:
		return true
	}
	return false
}

// Goal is the root of the planning hierarchy
type Goal struct {
	BaseModel
	Type           GoalType                    `gorm:"type:varchar(20);not null;index:idx_goals_type" json:"type"`
	Title          string                      `gorm:"type:varchar(200);not null" json:"title"`
	Description    string                      `gorm:"type:text" json:"description"`
	ExpectedEffect string                      `gorm:"type:text" json:"expected_effect"`
	Year           int                         `gorm:"not null;index:idx_goals_year" json:"year"`
	Quarter        *string                     `gorm:"type:varchar(10)" json:"quarter"`
	Team           string                      `gorm:"type:varchar(100)" json:"team"`
	Product        string                      `gorm:"type:varchar(100)" json:"product"`
	Tags           datatypes.JSONSlice[string] `json:"tags"`
	Progress       int                         `gorm:"not null;default:0" json:"progress"`
	StartDate      *time.Time                  `gorm:"type:date" json:"start_date"`
	EndDate        *time.Time                  `gorm:"type:date" json:"end_date"`
	Milestones     []Milestone                 `gorm:"foreignKey:GoalID;constraint:OnDelete:CASCADE" json:"milestones,omitempty"`
}

// TableName specifies the table name for Goal
func (Goal) TableName() string {
	return "goals"
}

// Milestone groups tasks under a goal
type Milestone struct {
	BaseModel
	GoalID      uint       `gorm:"not null;index:idx_milestones_goal_id" json:"goal_id"`
	Title       string     `gorm:"type:varchar(200);not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	StartDate   *time.Time `gorm:"type:date" json:"start_date"`
	DueDate     *time.Time `gorm:"type:date" json:"due_date"`
	Progress    int        `gorm:"not null;default:0" json:"progress"`
	Tasks       []Task     `gorm:"foreignKey:MilestoneID;constraint:OnDelete:CASCADE" json:"tasks,omitempty"`
}

// TableName specifies the table name for Milestone
func (Milestone) TableName() string {
	return "milestones"
}

// Task is the leaf of the planning hierarchy
type Task struct {
	BaseModel
	MilestoneID uint       `gorm:"not null;index:idx_tasks_milestone_id" json:"milestone_id"`
	Title       string     `gorm:"type:varchar(200);not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	AssigneeID  *uint      `gorm:"index:idx_tasks_assignee_id" json:"assignee_id"`
	StartDate   *time.Time `gorm:"type:date" json:"start_date"`
	DueDate     *time.Time `gorm:"type:date" json:"due_date"`
	Progress    int        `gorm:"not null;default:0" json:"progress"`
	Assignee    *Member    `gorm:"foreignKey:AssigneeID;constraint:OnDelete:SET NULL" json:"assignee,omitempty"`
}

// TableName specifies the table name for Task
func (Task) TableName() string {
	return "tasks"
}
