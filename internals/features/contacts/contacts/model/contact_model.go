package model

import (
	"time"

	"gorm.io/datatypes"
)

type ContactType string

const (
	ContactTypeMentor    ContactType = "mentor"
	ContactTypeMentee    ContactType = "mentee"
	ContactTypeSupporter ContactType = "supporter"
)

var ContactTypes = []ContactType{ContactTypeMentor, ContactTypeMentee, ContactTypeSupporter}

func (t ContactType) Valid() bool {
	switch t {
	case ContactTypeMentor, ContactTypeMentee, ContactTypeSupporter:
		return true
	}
	return false
}

// Plural is the path segment: /contacts/mentors.
func (t ContactType) Plural() string { return string(t) + "s" }

// Title is used in client messages: "Mentor not found".
func (t ContactType) Title() string {
	switch t {
	case ContactTypeMentor:
		return "Mentor"
	case ContactTypeMentee:
		return "Mentee"
	case ContactTypeSupporter:
		return "Supporter"
	}
	return "Contact"
}

// SearchField is the detail key covered by free-text search and the exact-match filter.
func (t ContactType) SearchField() string {
	switch t {
	case ContactTypeMentor:
		return "specialization"
	case ContactTypeMentee:
		return "area_of_interest"
	case ContactTypeSupporter:
		return "support_area"
	}
	return ""
}

type ContactModel struct {
	ID             int64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Type           ContactType    `gorm:"column:type;type:text;not null" json:"type"`
	Name           string         `gorm:"column:name;not null" json:"name"`
	Email          string         `gorm:"column:email;not null;uniqueIndex:uq_contacts_email" json:"email"`
	Status         string         `gorm:"column:status;not null;default:new_lead" json:"status"`
	SummaryComment *string        `gorm:"column:summary_comment" json:"summary_comment"`
	Details        datatypes.JSON `gorm:"column:details;type:jsonb;not null;default:'{}'" json:"details"`
	CompanyID      *int64         `gorm:"column:company_id" json:"company_id"`
	CreatedAt      time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ContactModel) TableName() string { return "contacts" }

// ContactRow is a contact joined with its partner company name.
type ContactRow struct {
	ContactModel `gorm:"embedded"`
	CompanyName  *string `gorm:"column:company_name"`
}

// RelatedContact is the other side of a mentor–mentee relation.
type RelatedContact struct {
	ID             int64          `gorm:"column:id"`
	Name           string         `gorm:"column:name"`
	Email          string         `gorm:"column:email"`
	Status         string         `gorm:"column:status"`
	Focus          *string        `gorm:"column:focus"`
	RelationID     int64          `gorm:"column:relation_id"`
	RelationStatus string         `gorm:"column:relation_status"`
	StartDate      *time.Time     `gorm:"column:start_date"`
	Goals          datatypes.JSON `gorm:"column:goals"`
}
