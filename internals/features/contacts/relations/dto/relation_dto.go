package dto

import (
	"encoding/json"
	"slices"
	"strings"
	"time"

	"gorm.io/datatypes"

	"mentoring_backend/internals/features/contacts/relations/model"
	helper "mentoring_backend/internals/helpers"
)

const DateLayout = "2006-01-02"

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreateRelationRequest struct {
	MentorID  int64    `json:"mentor_id" validate:"required,min=1"`
	MenteeID  int64    `json:"mentee_id" validate:"required,min=1"`
	Status    *string  `json:"status" validate:"omitempty,oneof=inquiry current archived"`
	StartDate *string  `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   *string  `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Goals     []string `json:"goals" validate:"omitempty,dive,required,max=300"`
	Notes     *string  `json:"notes" validate:"omitempty,max=5000"`
}

func (r *CreateRelationRequest) Normalize() {
	r.Status = helper.NilIfEmpty(helper.TrimPtr(r.Status))
	r.StartDate = helper.NilIfEmpty(helper.TrimPtr(r.StartDate))
	r.EndDate = helper.NilIfEmpty(helper.TrimPtr(r.EndDate))
	r.Goals = cleanGoals(r.Goals)
	r.Notes = helper.NilIfEmpty(helper.SanitizePtr(r.Notes))
}

// ToModel expects a validated request.
func (r CreateRelationRequest) ToModel() (model.RelationModel, error) {
	m := model.RelationModel{
		MentorID: r.MentorID,
		MenteeID: r.MenteeID,
		Status:   model.StatusInquiry,
		Goals:    encodeGoals(r.Goals),
		Notes:    r.Notes,
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
	var err error
	if m.StartDate, err = parseDate("start_date", r.StartDate); err != nil {
		return m, err
	}
	if m.EndDate, err = parseDate("end_date", r.EndDate); err != nil {
		return m, err
	}
	if m.StartDate != nil && m.EndDate != nil && m.EndDate.Before(*m.StartDate) {
		return m, helper.Validation("end_date cannot be before start_date")
	}
	return m, nil
}

// PatchRelationRequest: mentor and mentee are fixed once the relation exists.
type PatchRelationRequest struct {
	Status    helper.Optional[string]                  `json:"status"`
	StartDate helper.Optional[helper.Nullable[string]] `json:"start_date"`
	EndDate   helper.Optional[helper.Nullable[string]] `json:"end_date"`
	Goals     helper.Optional[[]string]                `json:"goals"`
	Notes     helper.Optional[helper.Nullable[string]] `json:"notes"`
}

func (p *PatchRelationRequest) Normalize() {
	p.Status.Value = strings.TrimSpace(p.Status.Value)
	p.StartDate.Value.Value = strings.TrimSpace(p.StartDate.Value.Value)
	p.EndDate.Value.Value = strings.TrimSpace(p.EndDate.Value.Value)
	p.Goals.Value = cleanGoals(p.Goals.Value)
	if p.Notes.Value.Valid {
		p.Notes.Value.Value = helper.SanitizeText(p.Notes.Value.Value)
	}
}

// BuildUpdateMap validates the sent fields while building the column map.
func (p *PatchRelationRequest) BuildUpdateMap() (map[string]any, error) {
	up := make(map[string]any)
	if p.Status.Present {
		if !slices.Contains(model.Statuses, p.Status.Value) {
			return nil, helper.Validation("status must be one of [%s]", strings.Join(model.Statuses, " "))
		}
		up["status"] = p.Status.Value
	}
	for _, f := range []struct {
		col string
		val helper.Optional[helper.Nullable[string]]
	}{{"start_date", p.StartDate}, {"end_date", p.EndDate}} {
		if !f.val.Present {
			continue
		}
		if !f.val.Value.Valid || f.val.Value.Value == "" {
			up[f.col] = nil
			continue
		}
		d, err := parseDate(f.col, &f.val.Value.Value)
		if err != nil {
			return nil, err
		}
		up[f.col] = *d
	}
	if p.Goals.Present {
		up["goals"] = encodeGoals(p.Goals.Value)
	}
	helper.SetNullable(up, "notes", p.Notes)
	return up, nil
}

/* =======================================================
   QUERY & RESPONSE
   ======================================================= */

type ListRelationsQuery struct {
	helper.Paging
	Status   string
	MentorID *int64
	MenteeID *int64
}

type RelationResponse struct {
	ID         int64     `json:"id"`
	MentorID   int64     `json:"mentor_id"`
	MentorName string    `json:"mentor_name"`
	MenteeID   int64     `json:"mentee_id"`
	MenteeName string    `json:"mentee_name"`
	Status     string    `json:"status"`
	StartDate  *string   `json:"start_date"`
	EndDate    *string   `json:"end_date"`
	Goals      []string  `json:"goals"`
	Notes      *string   `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type RelationList struct {
	Data       []RelationResponse `json:"data"`
	Pagination helper.Pagination  `json:"pagination"`
}

func ToRelationResponse(r model.RelationRow) RelationResponse {
	goals := []string{}
	if len(r.Goals) > 0 {
		_ = json.Unmarshal(r.Goals, &goals)
	}
	return RelationResponse{
		ID:         r.ID,
		MentorID:   r.MentorID,
		MentorName: r.MentorName,
		MenteeID:   r.MenteeID,
		MenteeName: r.MenteeName,
		Status:     r.Status,
		StartDate:  formatDate(r.StartDate),
		EndDate:    formatDate(r.EndDate),
		Goals:      goals,
		Notes:      r.Notes,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

/* =======================================================
   small helpers
   ======================================================= */

func parseDate(field string, s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, *s)
	if err != nil {
		return nil, helper.Validation("%s must be a date (YYYY-MM-DD)", field)
	}
	return &t, nil
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}

func cleanGoals(in []string) []string {
	out := make([]string, 0, len(in))
	for _, g := range in {
		if g = helper.SanitizeText(g); g != "" {
			out = append(out, g)
		}
	}
	return out
}

func encodeGoals(goals []string) datatypes.JSON {
	if goals == nil {
		goals = []string{}
	}
	b, _ := json.Marshal(goals)
	return datatypes.JSON(b)
}
