package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"

	"mentoring_backend/internals/constants"
	"mentoring_backend/internals/features/contacts/contacts/dto"
	"mentoring_backend/internals/features/contacts/contacts/model"
	"mentoring_backend/internals/features/contacts/contacts/repository"
	helper "mentoring_backend/internals/helpers"
	"mentoring_backend/internals/logging"
)

var errMissingAfterWrite = errors.New("contact missing right after write")

type ContactService struct {
	repo     repository.Store
	validate *validator.Validate
	labels   constants.Labels
	now      func() time.Time
}

func NewContactService(repo repository.Store, labels constants.Labels) *ContactService {
	return &ContactService{
		repo:     repo,
		validate: helper.NewValidator(),
		labels:   labels,
		now:      time.Now,
	}
}

/* ===================== Listing ===================== */

func (s *ContactService) List(ctx context.Context, t model.ContactType, q dto.ListContactsQuery) (*dto.ContactList, error) {
	f := repository.Filter{
		Type:       t,
		Search:     strings.TrimSpace(q.Search),
		Status:     strings.TrimSpace(q.Status),
		FieldValue: strings.TrimSpace(q.FieldValue),
	}

	rows, err := s.repo.List(ctx, f, q.Limit, q.Offset)
	if err != nil {
		return nil, helper.Internal(err)
	}
	total, err := s.repo.Count(ctx, f)
	if err != nil {
		return nil, helper.Internal(err)
	}

	data := make([]dto.ContactResponse, 0, len(rows))
	for _, r := range rows {
		data = append(data, dto.ToContactResponse(r))
	}
	return &dto.ContactList{Data: data, Pagination: helper.BuildPagination(total, q.Paging)}, nil
}

// DetailValues lists the distinct non-blank values of the type's searchable detail
// field (specializations for mentors), sorted with the configured locale's collation.
func (s *ContactService) DetailValues(ctx context.Context, t model.ContactType) ([]string, error) {
	values, err := s.repo.DistinctDetailValues(ctx, t, t.SearchField())
	if err != nil {
		return nil, helper.Internal(err)
	}

	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	s.labels.Collator().SortStrings(out)
	return out, nil
}

func (s *ContactService) Get(ctx context.Context, t model.ContactType, id int64) (*dto.ContactDetailResponse, error) {
	row, err := s.repo.FindByID(ctx, t, id)
	if err != nil {
		return nil, helper.Internal(err)
	}
	if row == nil {
		return nil, helper.NotFound("%s not found", t.Title())
	}

	res := &dto.ContactDetailResponse{ContactResponse: dto.ToContactResponse(*row)}
	switch t {
	case model.ContactTypeMentor:
		related := s.related(ctx, t, id)
		res.Mentees = &related
	case model.ContactTypeMentee:
		related := s.related(ctx, t, id)
		res.Mentors = &related
	}
	return res, nil
}

// related degrades to an empty list: the contact itself is still worth returning.
func (s *ContactService) related(ctx context.Context, t model.ContactType, id int64) []dto.RelatedContactResponse {
	rows, err := s.repo.RelatedContacts(ctx, t, id)
	if err != nil {
		logging.L().Warn().Err(err).
			Str("type", string(t)).
			Int64("id", id).
			Str("reason", relatedFailureReason(err)).
			Msg("related contacts unavailable")
		return []dto.RelatedContactResponse{}
	}
	return dto.ToRelatedContactResponses(rows)
}

// relatedFailureReason tells an unmigrated database apart from a failing query.
func relatedFailureReason(err error) string {
	if helper.IsUndefinedTable(err) {
		return "relations table missing, run migrate"
	}
	return "query failed"
}

/* ===================== Mutations ===================== */

func (s *ContactService) Create(ctx context.Context, t model.ContactType, p dto.ContactPayload) (*dto.ContactResponse, error) {
	req := p.ContactRequest
	req.Normalize()
	if req.Name == nil || *req.Name == "" || req.Email == nil || *req.Email == "" {
		return nil, helper.Validation("Name and email are required")
	}
	if err := s.validate.Struct(&req); err != nil {
		return nil, helper.ValidationError(err)
	}

	details, err := model.NewDetails(t)
	if err != nil {
		return nil, helper.Validation("%v", err)
	}
	if err := s.applyDetails(details, p.Raw); err != nil {
		return nil, err
	}
	companyID := req.CompanyID.Value.Ptr()
	if err := s.validateCompanyID(companyID); err != nil {
		return nil, err
	}
	encoded, err := model.EncodeDetails(details)
	if err != nil {
		return nil, helper.Internal(err)
	}

	status := constants.StatusNewLead
	if req.Status != nil && *req.Status != "" {
		status = *req.Status
	}
	now := s.now()
	m := &model.ContactModel{
		Type:      t,
		Name:      *req.Name,
		Email:     *req.Email,
		Status:    status,
		Details:   datatypes.JSON(encoded),
		CompanyID: companyID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.SummaryComment.Present {
		m.SummaryComment = req.SummaryComment.Value.Ptr()
	}

	var created *model.ContactRow
	err = s.repo.Transaction(ctx, func(tx repository.Store) error {
		if err := checkCompany(ctx, tx, companyID); err != nil {
			return err
		}
		if err := checkEmail(ctx, tx, m.Email, 0); err != nil {
			return err
		}
		if err := tx.Create(ctx, m); err != nil {
			return mapWriteError(err)
		}
		row, err := tx.FindByID(ctx, t, m.ID)
		if err != nil {
			return helper.Internal(err)
		}
		if row == nil {
			return helper.Internal(errMissingAfterWrite)
		}
		created = row
		return nil
	})
	if err != nil {
		return nil, helper.AsAppError(err)
	}

	res := dto.ToContactResponse(*created)
	return &res, nil
}

// Update applies a partial update: absent fields keep their stored value and detail
// keys merge into the stored record.
func (s *ContactService) Update(ctx context.Context, t model.ContactType, id int64, p dto.ContactPayload) (*dto.ContactResponse, error) {
	req := p.ContactRequest
	req.Normalize()
	if req.Name != nil && *req.Name == "" {
		return nil, helper.Validation("Name cannot be empty")
	}
	if req.Email != nil && *req.Email == "" {
		return nil, helper.Validation("Email cannot be empty")
	}
	if err := s.validate.Struct(&req); err != nil {
		return nil, helper.ValidationError(err)
	}
	if req.CompanyID.Present {
		if err := s.validateCompanyID(req.CompanyID.Value.Ptr()); err != nil {
			return nil, err
		}
	}

	var updated *model.ContactRow
	err := s.repo.Transaction(ctx, func(tx repository.Store) error {
		existing, err := tx.FindByID(ctx, t, id)
		if err != nil {
			return helper.Internal(err)
		}
		if existing == nil {
			return helper.NotFound("%s not found", t.Title())
		}

		details, err := model.DecodeDetails(t, existing.Details)
		if err != nil {
			logging.L().Warn().Err(err).Int64("id", id).Msg("stored details unreadable, starting from empty record")
			details, _ = model.NewDetails(t)
		}
		if err := s.applyDetails(details, p.Raw); err != nil {
			return err
		}
		encoded, err := model.EncodeDetails(details)
		if err != nil {
			return helper.Internal(err)
		}

		up := map[string]any{
			"details":    datatypes.JSON(encoded),
			"updated_at": s.now(),
		}
		if req.Name != nil {
			up["name"] = *req.Name
		}
		if req.Email != nil && *req.Email != existing.Email {
			if err := checkEmail(ctx, tx, *req.Email, id); err != nil {
				return err
			}
			up["email"] = *req.Email
		}
		if req.Status != nil && *req.Status != "" {
			up["status"] = *req.Status
		}
		helper.SetNullable(up, "summary_comment", req.SummaryComment)
		if req.CompanyID.Present {
			if err := checkCompany(ctx, tx, req.CompanyID.Value.Ptr()); err != nil {
				return err
			}
			helper.SetNullable(up, "company_id", req.CompanyID)
		}

		n, err := tx.Update(ctx, t, id, up)
		if err != nil {
			return mapWriteError(err)
		}
		if n == 0 {
			return helper.NotFound("%s not found", t.Title())
		}

		row, err := tx.FindByID(ctx, t, id)
		if err != nil {
			return helper.Internal(err)
		}
		if row == nil {
			return helper.NotFound("%s not found", t.Title())
		}
		updated = row
		return nil
	})
	if err != nil {
		return nil, helper.AsAppError(err)
	}

	res := dto.ToContactResponse(*updated)
	return &res, nil
}

// Delete removes the contact's relations and then the contact in one transaction; when
// no contact of that type matches, the relation delete is rolled back.
func (s *ContactService) Delete(ctx context.Context, t model.ContactType, id int64) error {
	err := s.repo.Transaction(ctx, func(tx repository.Store) error {
		if _, err := tx.DeleteRelations(ctx, id); err != nil {
			return helper.Internal(err)
		}
		n, err := tx.Delete(ctx, t, id)
		if err != nil {
			return helper.Internal(err)
		}
		if n == 0 {
			return helper.NotFound("%s not found", t.Title())
		}
		return nil
	})
	if err != nil {
		return helper.AsAppError(err)
	}
	return nil
}

/* ===================== helpers ===================== */

func (s *ContactService) applyDetails(details model.Details, raw []byte) error {
	if err := model.MergeDetails(details, raw); err != nil {
		return helper.Validation("%v", err)
	}
	details.Normalize()
	if err := s.validate.Struct(details); err != nil {
		return helper.ValidationError(err)
	}
	return nil
}

func (s *ContactService) validateCompanyID(id *int64) error {
	if id != nil && *id < 1 {
		return helper.Validation("company_id must be a positive integer")
	}
	return nil
}

func checkCompany(ctx context.Context, tx repository.Store, id *int64) error {
	if id == nil {
		return nil
	}
	ok, err := tx.CompanyExists(ctx, *id)
	if err != nil {
		return helper.Internal(err)
	}
	if !ok {
		return helper.Validation("Partner company not found")
	}
	return nil
}

func checkEmail(ctx context.Context, tx repository.Store, email string, excludeID int64) error {
	taken, err := tx.EmailTaken(ctx, email, excludeID)
	if err != nil {
		return helper.Internal(err)
	}
	if taken {
		return helper.Conflict("Email already exists")
	}
	return nil
}

func mapWriteError(err error) error {
	switch {
	case helper.IsUniqueViolation(err):
		return helper.Conflict("Email already exists")
	case helper.IsForeignKeyViolation(err):
		return helper.Validation("Partner company not found")
	default:
		return helper.Internal(err)
	}
}
