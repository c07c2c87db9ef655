package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	helper "mentoring_backend/internals/helpers"
)

// Details is the per-type record stored in contacts.details. Each implementation is a
// closed set of fields; unknown keys are dropped on decode.
type Details interface {
	ContactType() ContactType
	Normalize()
}

type MentorDetails struct {
	Specialization  *string  `json:"specialization" validate:"omitempty,max=120"`
	YearsExperience *int     `json:"years_experience" validate:"omitempty,min=0,max=80"`
	Availability    *string  `json:"availability" validate:"omitempty,oneof=full_time part_time evenings weekends flexible"`
	MentoringType   *string  `json:"mentoring_type" validate:"omitempty,oneof=1_on_1 group online offline hybrid"`
	MentoringAreas  []string `json:"mentoring_areas,omitempty" validate:"omitempty,max=20,dive,max=80"`
	LinkedInURL     *string  `json:"linkedin_url,omitempty" validate:"omitempty,url,max=300"`
	Bio             *string  `json:"bio,omitempty" validate:"omitempty,max=1000"`
	MaxMentees      *int     `json:"max_mentees,omitempty" validate:"omitempty,min=1,max=10"`
}

type MenteeDetails struct {
	AreaOfInterest         *string  `json:"area_of_interest" validate:"omitempty,max=120"`
	CareerStage            *string  `json:"career_stage" validate:"omitempty,max=80"`
	Goals                  []string `json:"goals,omitempty" validate:"omitempty,max=20,dive,max=200"`
	PreferredMentoringType *string  `json:"preferred_mentoring_type,omitempty" validate:"omitempty,oneof=1_on_1 group online offline hybrid"`
}

type SupporterDetails struct {
	SupportArea   *string `json:"support_area" validate:"omitempty,max=120"`
	SupportType   *string `json:"support_type" validate:"omitempty,oneof=financial in_kind volunteer expertise"`
	HoursPerMonth *int    `json:"hours_per_month,omitempty" validate:"omitempty,min=0,max=744"`
}

func (*MentorDetails) ContactType() ContactType    { return ContactTypeMentor }
func (*MenteeDetails) ContactType() ContactType    { return ContactTypeMentee }
func (*SupporterDetails) ContactType() ContactType { return ContactTypeSupporter }

func (d *MentorDetails) Normalize() {
	d.Specialization = blankToNil(helper.SanitizePtr(d.Specialization))
	d.Availability = blankToNil(helper.TrimPtr(d.Availability))
	d.MentoringType = blankToNil(helper.TrimPtr(d.MentoringType))
	d.MentoringAreas = cleanList(d.MentoringAreas)
	d.LinkedInURL = blankToNil(helper.TrimPtr(d.LinkedInURL))
	d.Bio = blankToNil(helper.SanitizePtr(d.Bio))
}

func (d *MenteeDetails) Normalize() {
	d.AreaOfInterest = blankToNil(helper.SanitizePtr(d.AreaOfInterest))
	d.CareerStage = blankToNil(helper.SanitizePtr(d.CareerStage))
	d.Goals = cleanList(d.Goals)
	d.PreferredMentoringType = blankToNil(helper.TrimPtr(d.PreferredMentoringType))
}

func (d *SupporterDetails) Normalize() {
	d.SupportArea = blankToNil(helper.SanitizePtr(d.SupportArea))
	d.SupportType = blankToNil(helper.TrimPtr(d.SupportType))
}

// NewDetails returns an empty record for t.
func NewDetails(t ContactType) (Details, error) {
	switch t {
	case ContactTypeMentor:
		return &MentorDetails{}, nil
	case ContactTypeMentee:
		return &MenteeDetails{}, nil
	case ContactTypeSupporter:
		return &SupporterDetails{}, nil
	}
	return nil, fmt.Errorf("unknown contact type %q", t)
}

// DecodeDetails parses a stored document into the record for t. Empty input gives an
// empty record.
func DecodeDetails(t ContactType, raw []byte) (Details, error) {
	d, err := NewDetails(t)
	if err != nil {
		return nil, err
	}
	if err := MergeDetails(d, raw); err != nil {
		return d, err
	}
	return d, nil
}

// MergeDetails overlays the keys present in raw onto d: present keys replace, null
// clears, absent keys keep their value.
func MergeDetails(d Details, raw []byte) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(raw, d); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return fmt.Errorf("invalid value for %s", typeErr.Field)
		}
		return fmt.Errorf("invalid details: %w", err)
	}
	return nil
}

func EncodeDetails(d Details) ([]byte, error) {
	return json.Marshal(d)
}

func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

func cleanList(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = helper.SanitizeText(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
