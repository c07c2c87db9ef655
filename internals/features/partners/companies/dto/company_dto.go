package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"

	"mentoring_backend/internals/features/partners/companies/model"
	helper "mentoring_backend/internals/helpers"
)

const DefaultStatus = "active"

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreateCompanyRequest struct {
	Name            string   `json:"name" validate:"required,max=200"`
	Industry        *string  `json:"industry" validate:"omitempty,max=120"`
	Size            *string  `json:"size" validate:"omitempty,oneof=startup small medium large enterprise"`
	ContactPerson   *string  `json:"contact_person" validate:"omitempty,max=120"`
	Email           *string  `json:"email" validate:"omitempty,email"`
	Phone           *string  `json:"phone" validate:"omitempty,max=40"`
	Website         *string  `json:"website" validate:"omitempty,url"`
	CooperationType []string `json:"cooperation_type" validate:"omitempty,dive,required,max=80"`
	Status          *string  `json:"status" validate:"omitempty,max=40"`
	SummaryComment  *string  `json:"summary_comment" validate:"omitempty,max=5000"`
}

func (r *CreateCompanyRequest) Normalize() {
	r.Name = helper.SanitizeText(r.Name)
	r.Industry = helper.NilIfEmpty(helper.SanitizePtr(r.Industry))
	r.Size = helper.NilIfEmpty(helper.TrimPtr(r.Size))
	r.ContactPerson = helper.NilIfEmpty(helper.SanitizePtr(r.ContactPerson))
	r.Email = helper.NilIfEmpty(lowerPtr(helper.TrimPtr(r.Email)))
	r.Phone = helper.NilIfEmpty(helper.TrimPtr(r.Phone))
	r.Website = helper.NilIfEmpty(helper.TrimPtr(r.Website))
	r.CooperationType = cleanList(r.CooperationType)
	r.Status = helper.NilIfEmpty(helper.TrimPtr(r.Status))
	r.SummaryComment = helper.NilIfEmpty(helper.SanitizePtr(r.SummaryComment))
}

func (r CreateCompanyRequest) ToModel() model.PartnerCompanyModel {
	status := DefaultStatus
	if r.Status != nil {
		status = *r.Status
	}
	return model.PartnerCompanyModel{
		Name:            r.Name,
		Industry:        r.Industry,
		Size:            r.Size,
		ContactPerson:   r.ContactPerson,
		Email:           r.Email,
		Phone:           r.Phone,
		Website:         r.Website,
		CooperationType: encodeList(r.CooperationType),
		Status:          status,
		SummaryComment:  r.SummaryComment,
	}
}

type PatchCompanyRequest struct {
	Name            helper.Optional[string]                  `json:"name"`
	Industry        helper.Optional[helper.Nullable[string]] `json:"industry"`
	Size            helper.Optional[helper.Nullable[string]] `json:"size"`
	ContactPerson   helper.Optional[helper.Nullable[string]] `json:"contact_person"`
	Email           helper.Optional[helper.Nullable[string]] `json:"email"`
	Phone           helper.Optional[helper.Nullable[string]] `json:"phone"`
	Website         helper.Optional[helper.Nullable[string]] `json:"website"`
	CooperationType helper.Optional[[]string]                `json:"cooperation_type"`
	Status          helper.Optional[string]                  `json:"status"`
	SummaryComment  helper.Optional[helper.Nullable[string]] `json:"summary_comment"`
}

func (p *PatchCompanyRequest) Normalize() {
	p.Name.Value = helper.SanitizeText(p.Name.Value)
	p.Status.Value = strings.TrimSpace(p.Status.Value)
	sanitizeNullable(&p.Industry)
	sanitizeNullable(&p.ContactPerson)
	sanitizeNullable(&p.SummaryComment)
	trimNullable(&p.Size)
	trimNullable(&p.Phone)
	trimNullable(&p.Website)
	trimNullable(&p.Email)
	if p.Email.Value.Valid {
		p.Email.Value.Value = strings.ToLower(p.Email.Value.Value)
	}
	p.CooperationType.Value = cleanList(p.CooperationType.Value)
}

// Validate checks only the fields that were sent.
func (p *PatchCompanyRequest) Validate(v *validator.Validate) error {
	if p.Name.Present && p.Name.Value == "" {
		return helper.Validation("name cannot be empty")
	}
	if p.Status.Present && p.Status.Value == "" {
		return helper.Validation("status cannot be empty")
	}
	checks := []struct {
		field string
		value helper.Optional[helper.Nullable[string]]
		tag   string
	}{
		{"size", p.Size, "oneof=startup small medium large enterprise"},
		{"email", p.Email, "email"},
		{"website", p.Website, "url"},
		{"phone", p.Phone, "max=40"},
	}
	for _, c := range checks {
		if !c.value.Present || !c.value.Value.Valid || c.value.Value.Value == "" {
			continue
		}
		if err := v.Var(c.value.Value.Value, c.tag); err != nil {
			return helper.Validation("%s is invalid", c.field)
		}
	}
	return nil
}

func (p *PatchCompanyRequest) BuildUpdateMap() map[string]any {
	up := make(map[string]any)
	helper.SetOptional(up, "name", p.Name)
	helper.SetNullable(up, "industry", p.Industry)
	helper.SetNullable(up, "size", p.Size)
	helper.SetNullable(up, "contact_person", p.ContactPerson)
	helper.SetNullable(up, "email", p.Email)
	helper.SetNullable(up, "phone", p.Phone)
	helper.SetNullable(up, "website", p.Website)
	if p.CooperationType.Present {
		up["cooperation_type"] = encodeList(p.CooperationType.Value)
	}
	helper.SetOptional(up, "status", p.Status)
	helper.SetNullable(up, "summary_comment", p.SummaryComment)
	return up
}

/* =======================================================
   QUERY & RESPONSE
   ======================================================= */

type ListCompaniesQuery struct {
	helper.Paging
	Search string
	Status string
}

type CompanyResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Industry        *string   `json:"industry"`
	Size            *string   `json:"size"`
	ContactPerson   *string   `json:"contact_person"`
	Email           *string   `json:"email"`
	Phone           *string   `json:"phone"`
	Website         *string   `json:"website"`
	CooperationType []string  `json:"cooperation_type"`
	Status          string    `json:"status"`
	SummaryComment  *string   `json:"summary_comment"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func ToCompanyResponse(m model.PartnerCompanyModel) CompanyResponse {
	coop := []string{}
	if len(m.CooperationType) > 0 {
		_ = json.Unmarshal(m.CooperationType, &coop)
	}
	return CompanyResponse{
		ID:              m.ID,
		Name:            m.Name,
		Industry:        m.Industry,
		Size:            m.Size,
		ContactPerson:   m.ContactPerson,
		Email:           m.Email,
		Phone:           m.Phone,
		Website:         m.Website,
		CooperationType: coop,
		Status:          m.Status,
		SummaryComment:  m.SummaryComment,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

/* =======================================================
   small helpers
   ======================================================= */

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = helper.SanitizeText(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func encodeList(in []string) datatypes.JSON {
	if in == nil {
		in = []string{}
	}
	b, _ := json.Marshal(in)
	return datatypes.JSON(b)
}

func lowerPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.ToLower(*p)
	return &v
}

func sanitizeNullable(f *helper.Optional[helper.Nullable[string]]) {
	if f.Present && f.Value.Valid {
		f.Value.Value = helper.SanitizeText(f.Value.Value)
	}
}

func trimNullable(f *helper.Optional[helper.Nullable[string]]) {
	if f.Present && f.Value.Valid {
		f.Value.Value = strings.TrimSpace(f.Value.Value)
	}
}
