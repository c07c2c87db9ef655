package dto

import (
	"time"

	"mentoring_backend/internals/features/activities/activities/model"
	helper "mentoring_backend/internals/helpers"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreateActivityRequest struct {
	ParentType   string     `json:"parent_type" validate:"required"`
	ParentID     int64      `json:"parent_id" validate:"required,min=1"`
	ActivityType string     `json:"activity_type" validate:"required,oneof=note task call meeting email"`
	Title        *string    `json:"title" validate:"omitempty,max=200"`
	Content      string     `json:"content" validate:"required,max=5000"`
	DueDate      *time.Time `json:"due_date"`
	IsCompleted  bool       `json:"is_completed"`
	Priority     *string    `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	CreatedBy    *string    `json:"created_by" validate:"omitempty,max=120"`
	AssignedTo   *string    `json:"assigned_to" validate:"omitempty,max=120"`
}

func (r *CreateActivityRequest) Normalize() {
	r.Title = helper.SanitizePtr(r.Title)
	r.Content = helper.SanitizeText(r.Content)
	r.Priority = helper.TrimPtr(r.Priority)
	r.CreatedBy = helper.SanitizePtr(r.CreatedBy)
	r.AssignedTo = helper.SanitizePtr(r.AssignedTo)
}

func (r CreateActivityRequest) ToModel() model.ActivityModel {
	return model.ActivityModel{
		ParentType:   model.ParentKind(r.ParentType),
		ParentID:     r.ParentID,
		ActivityType: r.ActivityType,
		Title:        r.Title,
		Content:      r.Content,
		DueDate:      r.DueDate,
		IsCompleted:  r.IsCompleted,
		Priority:     r.Priority,
		CreatedBy:    r.CreatedBy,
		AssignedTo:   r.AssignedTo,
	}
}

// PatchActivityRequest: the parent of an activity never changes.
type PatchActivityRequest struct {
	ActivityType helper.Optional[string]                     `json:"activity_type"`
	Title        helper.Optional[helper.Nullable[string]]    `json:"title"`
	Content      helper.Optional[string]                     `json:"content"`
	DueDate      helper.Optional[helper.Nullable[time.Time]] `json:"due_date"`
	IsCompleted  helper.Optional[bool]                       `json:"is_completed"`
	Priority     helper.Optional[helper.Nullable[string]]    `json:"priority"`
	AssignedTo   helper.Optional[helper.Nullable[string]]    `json:"assigned_to"`
}

func (p *PatchActivityRequest) Normalize() {
	if p.Title.Present && p.Title.Value.Valid {
		p.Title.Value.Value = helper.SanitizeText(p.Title.Value.Value)
	}
	if p.Content.Present {
		p.Content.Value = helper.SanitizeText(p.Content.Value)
	}
	if p.AssignedTo.Present && p.AssignedTo.Value.Valid {
		p.AssignedTo.Value.Value = helper.SanitizeText(p.AssignedTo.Value.Value)
	}
}

func (p *PatchActivityRequest) BuildUpdateMap() map[string]any {
	up := make(map[string]any)
	helper.SetOptional(up, "activity_type", p.ActivityType)
	helper.SetNullable(up, "title", p.Title)
	helper.SetOptional(up, "content", p.Content)
	helper.SetNullable(up, "due_date", p.DueDate)
	helper.SetOptional(up, "is_completed", p.IsCompleted)
	helper.SetNullable(up, "priority", p.Priority)
	helper.SetNullable(up, "assigned_to", p.AssignedTo)
	return up
}

/* =======================================================
   QUERY
   ======================================================= */

type ListActivitiesQuery struct {
	helper.Paging
	ParentType   string
	ParentID     *int64
	ActivityType string
	IsCompleted  *bool
}

/* =======================================================
   RESPONSE
   ======================================================= */

type ActivityResponse struct {
	ID           int64            `json:"id"`
	ParentType   model.ParentKind `json:"parent_type"`
	ParentID     int64            `json:"parent_id"`
	ParentName   *string          `json:"parent_name,omitempty"`
	ActivityType string           `json:"activity_type"`
	Title        *string          `json:"title"`
	Content      string           `json:"content"`
	DueDate      *time.Time       `json:"due_date"`
	IsCompleted  bool             `json:"is_completed"`
	Priority     *string          `json:"priority"`
	CreatedBy    *string          `json:"created_by"`
	AssignedTo   *string          `json:"assigned_to"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

type ActivityList struct {
	Data       []ActivityResponse `json:"data"`
	Pagination helper.Pagination  `json:"pagination"`
}

func ToActivityResponse(m model.ActivityModel) ActivityResponse {
	return ActivityResponse{
		ID:           m.ID,
		ParentType:   m.ParentType,
		ParentID:     m.ParentID,
		ActivityType: m.ActivityType,
		Title:        m.Title,
		Content:      m.Content,
		DueDate:      m.DueDate,
		IsCompleted:  m.IsCompleted,
		Priority:     m.Priority,
		CreatedBy:    m.CreatedBy,
		AssignedTo:   m.AssignedTo,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
