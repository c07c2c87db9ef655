package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"

	contactmodel "mentoring_backend/internals/features/contacts/contacts/model"
	"mentoring_backend/internals/features/contacts/relations/dto"
	"mentoring_backend/internals/features/contacts/relations/model"
	"mentoring_backend/internals/features/contacts/relations/repository"
	helper "mentoring_backend/internals/helpers"
)

var errRelationNotFound = helper.NotFound("Relation not found")

type RelationService struct {
	repo     repository.Store
	validate *validator.Validate
	now      func() time.Time
}

func NewRelationService(repo repository.Store) *RelationService {
	return &RelationService{repo: repo, validate: helper.NewValidator(), now: time.Now}
}

func (s *RelationService) List(ctx context.Context, q dto.ListRelationsQuery) (*dto.RelationList, error) {
	f := repository.Filter{Status: q.Status, MentorID: q.MentorID, MenteeID: q.MenteeID}

	rows, err := s.repo.List(ctx, f, q.Limit, q.Offset)
	if err != nil {
		return nil, helper.Internal(err)
	}
	total, err := s.repo.Count(ctx, f)
	if err != nil {
		return nil, helper.Internal(err)
	}

	data := make([]dto.RelationResponse, 0, len(rows))
	for _, r := range rows {
		data = append(data, dto.ToRelationResponse(r))
	}
	return &dto.RelationList{Data: data, Pagination: helper.BuildPagination(total, q.Paging)}, nil
}

func (s *RelationService) Get(ctx context.Context, id int64) (*dto.RelationResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, helper.Internal(err)
	}
	if row == nil {
		return nil, errRelationNotFound
	}
	res := dto.ToRelationResponse(*row)
	return &res, nil
}

func (s *RelationService) Create(ctx context.Context, req dto.CreateRelationRequest) (*dto.RelationResponse, error) {
	req.Normalize()
	if err := s.validate.Struct(&req); err != nil {
		return nil, helper.ValidationError(err)
	}
	m, err := req.ToModel()
	if err != nil {
		return nil, err
	}

	var created *model.RelationRow
	err = s.repo.Transaction(ctx, func(tx repository.Store) error {
		if err := expectType(ctx, tx, "mentor_id", m.MentorID, contactmodel.ContactTypeMentor); err != nil {
			return err
		}
		if err := expectType(ctx, tx, "mentee_id", m.MenteeID, contactmodel.ContactTypeMentee); err != nil {
			return err
		}
		exists, err := tx.PairExists(ctx, m.MentorID, m.MenteeID)
		if err != nil {
			return helper.Internal(err)
		}
		if exists {
			return helper.Conflict("Relation already exists")
		}

		now := s.now()
		m.CreatedAt, m.UpdatedAt = now, now
		if err := tx.Create(ctx, &m); err != nil {
			return mapWriteError(err)
		}
		row, err := tx.FindByID(ctx, m.ID)
		if err != nil {
			return helper.Internal(err)
		}
		if row == nil {
			return helper.Internal(errors.New("relation missing after insert"))
		}
		created = row
		return nil
	})
	if err != nil {
		return nil, helper.AsAppError(err)
	}
	res := dto.ToRelationResponse(*created)
	return &res, nil
}

func (s *RelationService) Update(ctx context.Context, id int64, p dto.PatchRelationRequest) (*dto.RelationResponse, error) {
	p.Normalize()
	up, err := p.BuildUpdateMap()
	if err != nil {
		return nil, err
	}
	if len(up) == 0 {
		return s.Get(ctx, id)
	}

	err = s.repo.Transaction(ctx, func(tx repository.Store) error {
		cur, err := tx.FindByID(ctx, id)
		if err != nil {
			return helper.Internal(err)
		}
		if cur == nil {
			return errRelationNotFound
		}
		if err := checkDateOrder(cur.RelationModel, up); err != nil {
			return err
		}

		up["updated_at"] = s.now()
		n, err := tx.Update(ctx, id, up)
		if err != nil {
			return mapWriteError(err)
		}
		if n == 0 {
			return errRelationNotFound
		}
		return nil
	})
	if err != nil {
		return nil, helper.AsAppError(err)
	}
	return s.Get(ctx, id)
}

func (s *RelationService) Delete(ctx context.Context, id int64) error {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return helper.Internal(err)
	}
	if n == 0 {
		return errRelationNotFound
	}
	return nil
}

func expectType(ctx context.Context, tx repository.Store, field string, id int64, want contactmodel.ContactType) error {
	got, err := tx.ContactType(ctx, id)
	if err != nil {
		return helper.Internal(err)
	}
	if contactmodel.ContactType(got) != want {
		return helper.Validation("%s must reference an existing %s", field, want)
	}
	return nil
}

// checkDateOrder compares the dates the row will have after the update.
func checkDateOrder(cur model.RelationModel, up map[string]any) error {
	start, end := cur.StartDate, cur.EndDate
	if v, ok := up["start_date"]; ok {
		start = datePtr(v)
	}
	if v, ok := up["end_date"]; ok {
		end = datePtr(v)
	}
	if start != nil && end != nil && end.Before(*start) {
		return helper.Validation("end_date cannot be before start_date")
	}
	return nil
}

func datePtr(v any) *time.Time {
	if t, ok := v.(time.Time); ok {
		return &t
	}
	return nil
}

func mapWriteError(err error) error {
	switch {
	case helper.IsUniqueViolation(err):
		return helper.Conflict("Relation already exists")
	case helper.IsForeignKeyViolation(err):
		return helper.Validation("mentor_id and mentee_id must reference existing contacts")
	default:
		return helper.Internal(err)
	}
}
