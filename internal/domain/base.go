package domain

import "time"

// BaseModel carries the identity and audit columns shared by planning entities
type BaseModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// EntityKind names a persisted entity type
type EntityKind string

const (
	KindGoal      EntityKind = "goal"
	KindMilestone EntityKind = "milestone"
	KindTask      EntityKind = "task"
	KindMember    EntityKind = "member"
	KindIdea      EntityKind = "idea"
	KindComment   EntityKind = "comment"
)

// Mutation is a partial update decided by the planning layer and executed by persistence.
// Fields are keyed by column name; a nil value clears the column.
type Mutation struct {
	Kind   EntityKind
	ID     uint
	Fields map[string]interface{}
}
