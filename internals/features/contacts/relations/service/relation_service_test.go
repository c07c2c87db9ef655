package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentoring_backend/internals/features/contacts/relations/dto"
	"mentoring_backend/internals/features/contacts/relations/model"
	"mentoring_backend/internals/features/contacts/relations/repository"
	helper "mentoring_backend/internals/helpers"
)

type fakeStore struct {
	contacts  map[int64]string // id -> type
	names     map[int64]string
	relations map[int64]model.RelationModel
	nextID    int64
	createErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		contacts:  map[int64]string{1: "mentor", 2: "mentee", 3: "supporter", 4: "mentee"},
		names:     map[int64]string{1: "Ola", 2: "Piotr", 3: "Kasia", 4: "Marek"},
		relations: map[int64]model.RelationModel{},
		nextID:    1,
	}
}

func (f *fakeStore) Transaction(ctx context.Context, fn func(tx repository.Store) error) error {
	snap := make(map[int64]model.RelationModel, len(f.relations))
	for k, v := range f.relations {
		snap[k] = v
	}
	if err := fn(f); err != nil {
		f.relations = snap
		return err
	}
	return nil
}

func (f *fakeStore) row(m model.RelationModel) model.RelationRow {
	return model.RelationRow{RelationModel: m, MentorName: f.names[m.MentorID], MenteeName: f.names[m.MenteeID]}
}

func (f *fakeStore) List(ctx context.Context, flt repository.Filter, limit, offset int) ([]model.RelationRow, error) {
	var out []model.RelationRow
	for id := f.nextID - 1; id >= 1; id-- {
		m, ok := f.relations[id]
		if !ok || (flt.Status != "" && m.Status != flt.Status) || (flt.MentorID != nil && m.MentorID != *flt.MentorID) {
			continue
		}
		out = append(out, f.row(m))
	}
	return out, nil
}

func (f *fakeStore) Count(ctx context.Context, flt repository.Filter) (int64, error) {
	rows, _ := f.List(ctx, flt, 0, 0)
	return int64(len(rows)), nil
}

func (f *fakeStore) FindByID(ctx context.Context, id int64) (*model.RelationRow, error) {
	m, ok := f.relations[id]
	if !ok {
		return nil, nil
	}
	r := f.row(m)
	return &r, nil
}

func (f *fakeStore) ContactType(ctx context.Context, id int64) (string, error) {
	return f.contacts[id], nil
}

func (f *fakeStore) PairExists(ctx context.Context, mentorID, menteeID int64) (bool, error) {
	for _, m := range f.relations {
		if m.MentorID == mentorID && m.MenteeID == menteeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) Create(ctx context.Context, m *model.RelationModel) error {
	if f.createErr != nil {
		return f.createErr
	}
	m.ID = f.nextID
	f.nextID++
	f.relations[m.ID] = *m
	return nil
}

func (f *fakeStore) Update(ctx context.Context, id int64, up map[string]any) (int64, error) {
	m, ok := f.relations[id]
	if !ok {
		return 0, nil
	}
	if v, ok := up["status"]; ok {
		m.Status = v.(string)
	}
	if v, ok := up["start_date"]; ok {
		m.StartDate = datePtr(v)
	}
	if v, ok := up["end_date"]; ok {
		m.EndDate = datePtr(v)
	}
	f.relations[id] = m
	return 1, nil
}

func (f *fakeStore) Delete(ctx context.Context, id int64) (int64, error) {
	if _, ok := f.relations[id]; !ok {
		return 0, nil
	}
	delete(f.relations, id)
	return 1, nil
}

func create(t *testing.T, svc *RelationService, body string) (*dto.RelationResponse, error) {
	t.Helper()
	var req dto.CreateRelationRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return svc.Create(context.Background(), req)
}

func patch(t *testing.T, svc *RelationService, id int64, body string) (*dto.RelationResponse, error) {
	t.Helper()
	var p dto.PatchRelationRequest
	require.NoError(t, json.Unmarshal([]byte(body), &p))
	return svc.Update(context.Background(), id, p)
}

func TestCreateRelation(t *testing.T) {
	svc := NewRelationService(newFakeStore())

	res, err := create(t, svc, `{"mentor_id":1,"mentee_id":2,"start_date":"2025-02-01","goals":["CV review"," "]}`)
	require.NoError(t, err)
	assert.Equal(t, "inquiry", res.Status)
	assert.Equal(t, "Ola", res.MentorName)
	assert.Equal(t, "Piotr", res.MenteeName)
	assert.Equal(t, "2025-02-01", *res.StartDate)
	assert.Nil(t, res.EndDate)
	assert.Equal(t, []string{"CV review"}, res.Goals)

	_, err = create(t, svc, `{"mentor_id":1,"mentee_id":2}`)
	assert.True(t, helper.IsKind(err, helper.KindConflict))
}

func TestCreateRelationRejectsWrongTypes(t *testing.T) {
	svc := NewRelationService(newFakeStore())

	for body, msg := range map[string]string{
		`{"mentor_id":2,"mentee_id":4}`:  "mentor_id must reference an existing mentor",
		`{"mentor_id":1,"mentee_id":3}`:  "mentee_id must reference an existing mentee",
		`{"mentor_id":1,"mentee_id":99}`: "mentee_id must reference an existing mentee",
	} {
		_, err := create(t, svc, body)
		require.Error(t, err, body)
		assert.True(t, helper.IsKind(err, helper.KindValidation), body)
		assert.Equal(t, msg, err.Error(), body)
	}

	_, err := create(t, svc, `{"mentor_id":1,"mentee_id":2,"status":"maybe"}`)
	assert.True(t, helper.IsKind(err, helper.KindValidation))
	_, err = create(t, svc, `{"mentor_id":1,"mentee_id":2,"start_date":"2025-03-01","end_date":"2025-01-01"}`)
	assert.EqualError(t, err, "end_date cannot be before start_date")
}

func TestCreateRelationRaceMapsToConflict(t *testing.T) {
	store := newFakeStore()
	store.createErr = &pgconn.PgError{Code: "23505", ConstraintName: "uq_relations_pair"}
	svc := NewRelationService(store)

	_, err := create(t, svc, `{"mentor_id":1,"mentee_id":2}`)
	assert.True(t, helper.IsKind(err, helper.KindConflict))

	store.createErr = errors.New("boom")
	_, err = create(t, svc, `{"mentor_id":1,"mentee_id":4}`)
	assert.True(t, helper.IsKind(err, helper.KindInternal))
	assert.Empty(t, store.relations)
}

func TestUpdateRelation(t *testing.T) {
	store := newFakeStore()
	svc := NewRelationService(store)
	svc.now = func() time.Time { return time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC) }

	created, err := create(t, svc, `{"mentor_id":1,"mentee_id":2,"start_date":"2025-02-01"}`)
	require.NoError(t, err)

	res, err := patch(t, svc, created.ID, `{"status":"current","end_date":"2025-06-30"}`)
	require.NoError(t, err)
	assert.Equal(t, "current", res.Status)
	assert.Equal(t, "2025-06-30", *res.EndDate)

	_, err = patch(t, svc, created.ID, `{"end_date":"2024-12-31"}`)
	assert.EqualError(t, err, "end_date cannot be before start_date")

	res, err = patch(t, svc, created.ID, `{"start_date":null}`)
	require.NoError(t, err)
	assert.Nil(t, res.StartDate)

	_, err = patch(t, svc, created.ID, `{"status":"paused"}`)
	assert.True(t, helper.IsKind(err, helper.KindValidation))
	_, err = patch(t, svc, created.ID, `{"start_date":"01/02/2025"}`)
	assert.True(t, helper.IsKind(err, helper.KindValidation))
	_, err = patch(t, svc, 42, `{"status":"archived"}`)
	assert.True(t, helper.IsKind(err, helper.KindNotFound))
}

func TestListAndDeleteRelations(t *testing.T) {
	svc := NewRelationService(newFakeStore())
	_, err := create(t, svc, `{"mentor_id":1,"mentee_id":2,"status":"current"}`)
	require.NoError(t, err)
	second, err := create(t, svc, `{"mentor_id":1,"mentee_id":4}`)
	require.NoError(t, err)

	paging, err := helper.NewPaging("", "", helper.DefaultLimit, helper.MaxLimit)
	require.NoError(t, err)
	list, err := svc.List(context.Background(), dto.ListRelationsQuery{Paging: paging, Status: "current"})
	require.NoError(t, err)
	require.Len(t, list.Data, 1)
	assert.Equal(t, int64(1), list.Pagination.Total)
	assert.Equal(t, "Piotr", list.Data[0].MenteeName)

	require.NoError(t, svc.Delete(context.Background(), second.ID))
	assert.True(t, helper.IsKind(svc.Delete(context.Background(), second.ID), helper.KindNotFound))
	_, err = svc.Get(context.Background(), second.ID)
	assert.True(t, helper.IsKind(err, helper.KindNotFound))
}
