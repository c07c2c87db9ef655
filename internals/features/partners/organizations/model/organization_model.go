package model

import "time"

type OrganizationModel struct {
	ID             int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name           string    `gorm:"column:name;not null" json:"name"`
	ContactPerson  *string   `gorm:"column:contact_person" json:"contact_person"`
	Email          *string   `gorm:"column:email" json:"email"`
	Status         string    `gorm:"column:status;not null;default:active" json:"status"`
	SummaryComment *string   `gorm:"column:summary_comment" json:"summary_comment"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (OrganizationModel) TableName() string { return "organizations" }
