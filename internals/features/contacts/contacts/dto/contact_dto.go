package dto

import (
	"encoding/json"
	"strings"
	"time"

	"mentoring_backend/internals/features/contacts/contacts/model"
	helper "mentoring_backend/internals/helpers"
)

/* =======================================================
   REQUEST
   ======================================================= */

// ContactRequest carries the common contact columns. Type-specific detail fields
// travel flat in the same JSON body and are merged from Raw.
type ContactRequest struct {
	Name           *string                                 `json:"name" validate:"omitempty,max=200"`
	Email          *string                                 `json:"email" validate:"omitempty,email,max=254"`
	Status         *string                                 `json:"status" validate:"omitempty,max=40"`
	SummaryComment helper.Optional[helper.Nullable[string]] `json:"summary_comment"`
	CompanyID      helper.Optional[helper.Nullable[int64]]  `json:"company_id"`
}

type ContactPayload struct {
	ContactRequest
	Raw []byte
}

// ParseContactPayload decodes the body once for the common columns and keeps the raw
// bytes for the detail merge.
func ParseContactPayload(body []byte) (ContactPayload, error) {
	var req ContactRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return ContactPayload{}, helper.Validation("Invalid request body")
	}
	raw := make([]byte, len(body))
	copy(raw, body)
	return ContactPayload{ContactRequest: req, Raw: raw}, nil
}

func (r *ContactRequest) Normalize() {
	r.Name = helper.SanitizePtr(r.Name)
	if r.Email != nil {
		e := strings.ToLower(strings.TrimSpace(*r.Email))
		r.Email = &e
	}
	r.Status = helper.TrimPtr(r.Status)
	if r.SummaryComment.Present && r.SummaryComment.Value.Valid {
		r.SummaryComment.Value.Value = helper.SanitizeText(r.SummaryComment.Value.Value)
	}
}

/* =======================================================
   QUERY
   ======================================================= */

type ListContactsQuery struct {
	helper.Paging
	Search     string
	Status     string
	FieldValue string // exact match on the type's searchable detail field
}

/* =======================================================
   RESPONSE
   ======================================================= */

type ContactResponse struct {
	ID             int64             `json:"id"`
	Type           model.ContactType `json:"type"`
	Name           string            `json:"name"`
	Email          string            `json:"email"`
	Status         string            `json:"status"`
	SummaryComment *string           `json:"summary_comment"`
	Details        model.Details     `json:"details"`
	CompanyID      *int64            `json:"company_id"`
	CompanyName    *string           `json:"company_name"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

type RelatedContactResponse struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Status         string     `json:"status"`
	Focus          *string    `json:"focus"`
	RelationID     int64      `json:"relation_id"`
	RelationStatus string     `json:"relation_status"`
	StartDate      *time.Time `json:"start_date"`
	Goals          []string   `json:"goals"`
}

// ContactDetailResponse is the single-record view. Mentors list their mentees and
// mentees their mentors; supporters carry neither key.
type ContactDetailResponse struct {
	ContactResponse
	Mentees *[]RelatedContactResponse `json:"mentees,omitempty"`
	Mentors *[]RelatedContactResponse `json:"mentors,omitempty"`
}

type ContactList struct {
	Data       []ContactResponse `json:"data"`
	Pagination helper.Pagination `json:"pagination"`
}

// ToContactResponse never fails: an unreadable stored document renders as an empty
// record of the contact's type.
func ToContactResponse(row model.ContactRow) ContactResponse {
	details, _ := model.DecodeDetails(row.Type, row.Details)
	return ContactResponse{
		ID:             row.ID,
		Type:           row.Type,
		Name:           row.Name,
		Email:          row.Email,
		Status:         row.Status,
		SummaryComment: row.SummaryComment,
		Details:        details,
		CompanyID:      row.CompanyID,
		CompanyName:    row.CompanyName,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

func ToRelatedContactResponses(rows []model.RelatedContact) []RelatedContactResponse {
	out := make([]RelatedContactResponse, 0, len(rows))
	for _, r := range rows {
		goals := []string{}
		if len(r.Goals) > 0 {
			_ = json.Unmarshal(r.Goals, &goals)
		}
		out = append(out, RelatedContactResponse{
			ID:             r.ID,
			Name:           r.Name,
			Email:          r.Email,
			Status:         r.Status,
			Focus:          r.Focus,
			RelationID:     r.RelationID,
			RelationStatus: r.RelationStatus,
			StartDate:      r.StartDate,
			Goals:          goals,
		})
	}
	return out
}
