package model

import (
	"time"

	"gorm.io/datatypes"
)

var CompanySizes = []string{"startup", "small", "medium", "large", "enterprise"}

type PartnerCompanyModel struct {
	ID              int64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name            string         `gorm:"column:name;not null" json:"name"`
	Industry        *string        `gorm:"column:industry" json:"industry"`
	Size            *string        `gorm:"column:size" json:"size"`
	ContactPerson   *string        `gorm:"column:contact_person" json:"contact_person"`
	Email           *string        `gorm:"column:email" json:"email"`
	Phone           *string        `gorm:"column:phone" json:"phone"`
	Website         *string        `gorm:"column:website" json:"website"`
	CooperationType datatypes.JSON `gorm:"column:cooperation_type;type:jsonb;not null;default:'[]'" json:"cooperation_type"`
	Status          string         `gorm:"column:status;not null;default:active" json:"status"`
	SummaryComment  *string        `gorm:"column:summary_comment" json:"summary_comment"`
	CreatedAt       time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PartnerCompanyModel) TableName() string { return "partner_companies" }
