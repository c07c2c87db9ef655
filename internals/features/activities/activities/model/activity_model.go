package model

import "time"

// ParentKind names the table an activity hangs off. parent_id is a weak reference:
// there is no foreign key, lookups go through the parent directory.
type ParentKind string

const (
	ParentContact        ParentKind = "contact"
	ParentOrganization   ParentKind = "organization"
	ParentPartnerCompany ParentKind = "partner_company"
	ParentRelation       ParentKind = "relation"
)

type ParentRef struct {
	Kind ParentKind
	ID   int64
}

const (
	ActivityNote    = "note"
	ActivityTask    = "task"
	ActivityCall    = "call"
	ActivityMeeting = "meeting"
	ActivityEmail   = "email"
)

type ActivityModel struct {
	ID           int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ParentType   ParentKind `gorm:"column:parent_type;type:text;not null" json:"parent_type"`
	ParentID     int64      `gorm:"column:parent_id;not null" json:"parent_id"`
	ActivityType string     `gorm:"column:activity_type;not null" json:"activity_type"`
	Title        *string    `gorm:"column:title" json:"title"`
	Content      string     `gorm:"column:content;not null" json:"content"`
	DueDate      *time.Time `gorm:"column:due_date" json:"due_date"`
	IsCompleted  bool       `gorm:"column:is_completed;not null;default:false" json:"is_completed"`
	Priority     *string    `gorm:"column:priority" json:"priority"`
	CreatedBy    *string    `gorm:"column:created_by" json:"created_by"`
	AssignedTo   *string    `gorm:"column:assigned_to" json:"assigned_to"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ActivityModel) TableName() string { return "activities" }

func (m ActivityModel) Parent() ParentRef {
	return ParentRef{Kind: m.ParentType, ID: m.ParentID}
}
