package model

import (
	"time"

	"gorm.io/datatypes"
)

const (
	StatusInquiry  = "inquiry"
	StatusCurrent  = "current"
	StatusArchived = "archived"
)

var Statuses = []string{StatusInquiry, StatusCurrent, StatusArchived}

type RelationModel struct {
	ID        int64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	MentorID  int64          `gorm:"column:mentor_id;not null" json:"mentor_id"`
	MenteeID  int64          `gorm:"column:mentee_id;not null" json:"mentee_id"`
	Status    string         `gorm:"column:status;not null;default:inquiry" json:"status"`
	StartDate *time.Time     `gorm:"column:start_date;type:date" json:"start_date"`
	EndDate   *time.Time     `gorm:"column:end_date;type:date" json:"end_date"`
	Goals     datatypes.JSON `gorm:"column:goals;type:jsonb;not null;default:'[]'" json:"goals"`
	Notes     *string        `gorm:"column:notes" json:"notes"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (RelationModel) TableName() string { return "mentor_mentee_relations" }

// RelationRow is a relation with both contact names joined in.
type RelationRow struct {
	RelationModel
	MentorName string `gorm:"column:mentor_name"`
	MenteeName string `gorm:"column:mentee_name"`
}
