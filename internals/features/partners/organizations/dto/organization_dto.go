package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"mentoring_backend/internals/features/partners/organizations/model"
	helper "mentoring_backend/internals/helpers"
)

type CreateOrganizationRequest struct {
	Name           string  `json:"name" validate:"required,max=200"`
	ContactPerson  *string `json:"contact_person" validate:"omitempty,max=120"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Status         *string `json:"status" validate:"omitempty,max=40"`
	SummaryComment *string `json:"summary_comment" validate:"omitempty,max=5000"`
}

func (r *CreateOrganizationRequest) Normalize() {
	r.Name = helper.SanitizeText(r.Name)
	r.ContactPerson = helper.NilIfEmpty(helper.SanitizePtr(r.ContactPerson))
	if e := helper.NilIfEmpty(helper.TrimPtr(r.Email)); e != nil {
		lower := strings.ToLower(*e)
		r.Email = &lower
	} else {
		r.Email = nil
	}
	r.Status = helper.NilIfEmpty(helper.TrimPtr(r.Status))
	r.SummaryComment = helper.NilIfEmpty(helper.SanitizePtr(r.SummaryComment))
}

func (r CreateOrganizationRequest) ToModel() model.OrganizationModel {
	status := "active"
	if r.Status != nil {
		status = *r.Status
	}
	return model.OrganizationModel{
		Name:           r.Name,
		ContactPerson:  r.ContactPerson,
		Email:          r.Email,
		Status:         status,
		SummaryComment: r.SummaryComment,
	}
}

type PatchOrganizationRequest struct {
	Name           helper.Optional[string]                  `json:"name"`
	ContactPerson  helper.Optional[helper.Nullable[string]] `json:"contact_person"`
	Email          helper.Optional[helper.Nullable[string]] `json:"email"`
	Status         helper.Optional[string]                  `json:"status"`
	SummaryComment helper.Optional[helper.Nullable[string]] `json:"summary_comment"`
}

func (p *PatchOrganizationRequest) Normalize() {
	p.Name.Value = helper.SanitizeText(p.Name.Value)
	p.Status.Value = strings.TrimSpace(p.Status.Value)
	if p.ContactPerson.Value.Valid {
		p.ContactPerson.Value.Value = helper.SanitizeText(p.ContactPerson.Value.Value)
	}
	if p.SummaryComment.Value.Valid {
		p.SummaryComment.Value.Value = helper.SanitizeText(p.SummaryComment.Value.Value)
	}
	if p.Email.Value.Valid {
		p.Email.Value.Value = strings.ToLower(strings.TrimSpace(p.Email.Value.Value))
	}
}

func (p *PatchOrganizationRequest) Validate(v *validator.Validate) error {
	if p.Name.Present && p.Name.Value == "" {
		return helper.Validation("name cannot be empty")
	}
	if p.Status.Present && p.Status.Value == "" {
		return helper.Validation("status cannot be empty")
	}
	if p.Email.Present && p.Email.Value.Valid && p.Email.Value.Value != "" {
		if err := v.Var(p.Email.Value.Value, "email"); err != nil {
			return helper.Validation("email must be a valid email address")
		}
	}
	return nil
}

func (p *PatchOrganizationRequest) BuildUpdateMap() map[string]any {
	up := make(map[string]any)
	helper.SetOptional(up, "name", p.Name)
	helper.SetNullable(up, "contact_person", p.ContactPerson)
	helper.SetNullable(up, "email", p.Email)
	helper.SetOptional(up, "status", p.Status)
	helper.SetNullable(up, "summary_comment", p.SummaryComment)
	return up
}

type OrganizationResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	ContactPerson  *string   `json:"contact_person"`
	Email          *string   `json:"email"`
	Status         string    `json:"status"`
	SummaryComment *string   `json:"summary_comment"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func ToOrganizationResponse(m model.OrganizationModel) OrganizationResponse {
	return OrganizationResponse{
		ID:             m.ID,
		Name:           m.Name,
		ContactPerson:  m.ContactPerson,
		Email:          m.Email,
		Status:         m.Status,
		SummaryComment: m.SummaryComment,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
