package domain

import "time"

// MemberType distinguishes current staff from planned hires
type MemberType string

const (
	MemberTypeExisting MemberType = "existing"
	MemberTypeNew      MemberType = "new"
)

// Valid reports whether t is a known member type
func (t MemberType) Valid() bool {
	return t == MemberTypeExisting || t == MemberTypeNew
}

// Member is a staffing entry for a year
type Member struct {
	BaseModel
	Name     string     `gorm:"type:varchar(100);not null" json:"name"`
	Role     string     `gorm:"type:varchar(50);not null;index:idx_members_role" json:"role"`
	Team     string     `gorm:"type:varchar(100)" json:"team"`
	Product  string     `gorm:"type:varchar(100)" json:"product"`
	Type     MemberType `gorm:"type:varchar(20);not null" json:"type"`
	Year     int        `gorm:"not null;index:idx_members_year" json:"year"`
	JoinDate *time.Time `gorm:"type:date" json:"join_date"`
}

// TableName specifies the table name for Member
func (Member) TableName() string {
	return "members"
}
