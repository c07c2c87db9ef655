package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"mentoring_backend/internals/features/activities/activities/dto"
	"mentoring_backend/internals/features/activities/activities/model"
	"mentoring_backend/internals/features/activities/activities/repository"
	helper "mentoring_backend/internals/helpers"
	"mentoring_backend/internals/logging"
)

type ActivityService struct {
	repo     repository.Store
	parents  repository.ParentDirectory
	validate *validator.Validate
	now      func() time.Time
}

func NewActivityService(repo repository.Store, parents repository.ParentDirectory) *ActivityService {
	return &ActivityService{
		repo:     repo,
		parents:  parents,
		validate: helper.NewValidator(),
		now:      time.Now,
	}
}

func (s *ActivityService) List(ctx context.Context, q dto.ListActivitiesQuery) (*dto.ActivityList, error) {
	if q.ParentType != "" {
		if _, err := s.parents.Lookup(model.ParentKind(q.ParentType)); err != nil {
			return nil, s.unknownKind()
		}
	}
	f := repository.Filter{
		ParentType:   q.ParentType,
		ParentID:     q.ParentID,
		ActivityType: q.ActivityType,
		IsCompleted:  q.IsCompleted,
	}

	rows, err := s.repo.List(ctx, f, q.Limit, q.Offset)
	if err != nil {
		return nil, helper.Internal(err)
	}
	total, err := s.repo.Count(ctx, f)
	if err != nil {
		return nil, helper.Internal(err)
	}

	data := make([]dto.ActivityResponse, 0, len(rows))
	for _, m := range rows {
		data = append(data, dto.ToActivityResponse(m))
	}
	s.attachParentNames(ctx, data)
	return &dto.ActivityList{Data: data, Pagination: helper.BuildPagination(total, q.Paging)}, nil
}

// attachParentNames resolves names one query per parent kind. Names are decoration, so
// a failed lookup leaves them empty.
func (s *ActivityService) attachParentNames(ctx context.Context, data []dto.ActivityResponse) {
	byKind := map[model.ParentKind][]int64{}
	for _, a := range data {
		byKind[a.ParentType] = append(byKind[a.ParentType], a.ParentID)
	}
	for kind, ids := range byKind {
		names, err := s.parents.Names(ctx, kind, ids)
		if err != nil {
			logging.L().Warn().Err(err).Str("parent_type", string(kind)).Msg("parent names unavailable")
			continue
		}
		for i := range data {
			if data[i].ParentType != kind {
				continue
			}
			if n, ok := names[data[i].ParentID]; ok {
				name := n
				data[i].ParentName = &name
			}
		}
	}
}

func (s *ActivityService) Get(ctx context.Context, id int64) (*dto.ActivityResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, helper.Internal(err)
	}
	if m == nil {
		return nil, helper.NotFound("Activity not found")
	}
	res := []dto.ActivityResponse{dto.ToActivityResponse(*m)}
	s.attachParentNames(ctx, res)
	return &res[0], nil
}

func (s *ActivityService) Create(ctx context.Context, req dto.CreateActivityRequest) (*dto.ActivityResponse, error) {
	req.Normalize()
	if err := s.validate.Struct(&req); err != nil {
		return nil, helper.ValidationError(err)
	}

	m := req.ToModel()
	ok, err := s.parents.Exists(ctx, m.Parent())
	if errors.Is(err, repository.ErrUnknownParentKind) {
		return nil, s.unknownKind()
	}
	if err != nil {
		return nil, helper.Internal(err)
	}
	if !ok {
		return nil, helper.NotFound("Parent %s not found", strings.ReplaceAll(string(m.ParentType), "_", " "))
	}

	now := s.now()
	m.CreatedAt, m.UpdatedAt = now, now
	if err := s.repo.Create(ctx, &m); err != nil {
		return nil, helper.Internal(err)
	}
	return s.Get(ctx, m.ID)
}

var (
	activityTypes = map[string]bool{
		model.ActivityNote: true, model.ActivityTask: true, model.ActivityCall: true,
		model.ActivityMeeting: true, model.ActivityEmail: true,
	}
	priorities = map[string]bool{"low": true, "medium": true, "high": true, "urgent": true}
)

func (s *ActivityService) Update(ctx context.Context, id int64, p dto.PatchActivityRequest) (*dto.ActivityResponse, error) {
	p.Normalize()
	if p.ActivityType.Present && !activityTypes[p.ActivityType.Value] {
		return nil, helper.Validation("activity_type must be one of [call email meeting note task]")
	}
	if p.Content.Present && p.Content.Value == "" {
		return nil, helper.Validation("content cannot be empty")
	}
	if p.Priority.Present && p.Priority.Value.Valid && !priorities[p.Priority.Value.Value] {
		return nil, helper.Validation("priority must be one of [low medium high urgent]")
	}

	up := p.BuildUpdateMap()
	if len(up) == 0 {
		return s.Get(ctx, id)
	}
	up["updated_at"] = s.now()

	n, err := s.repo.Update(ctx, id, up)
	if err != nil {
		return nil, helper.Internal(err)
	}
	if n == 0 {
		return nil, helper.NotFound("Activity not found")
	}
	return s.Get(ctx, id)
}

func (s *ActivityService) Delete(ctx context.Context, id int64) error {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return helper.Internal(err)
	}
	if n == 0 {
		return helper.NotFound("Activity not found")
	}
	return nil
}

func (s *ActivityService) unknownKind() *helper.AppError {
	kinds := make([]string, 0, len(s.parents))
	for k := range s.parents {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)
	return helper.Validation("parent_type must be one of [%s]", strings.Join(kinds, " "))
}
