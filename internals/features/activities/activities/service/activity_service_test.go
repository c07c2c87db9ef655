package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentoring_backend/internals/features/activities/activities/dto"
	"mentoring_backend/internals/features/activities/activities/model"
	"mentoring_backend/internals/features/activities/activities/repository"
	helper "mentoring_backend/internals/helpers"
)

type fakeLookup struct {
	names map[int64]string
	err   error
}

func (l fakeLookup) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := l.names[id]
	return ok, l.err
}

func (l fakeLookup) Names(ctx context.Context, ids []int64) (map[int64]string, error) {
	if l.err != nil {
		return nil, l.err
	}
	out := map[int64]string{}
	for _, id := range ids {
		if n, ok := l.names[id]; ok {
			out[id] = n
		}
	}
	return out, nil
}

type fakeStore struct {
	rows   map[int64]model.ActivityModel
	nextID int64
}

func (f *fakeStore) List(ctx context.Context, flt repository.Filter, limit, offset int) ([]model.ActivityModel, error) {
	var out []model.ActivityModel
	for id := int64(1); id < f.nextID; id++ {
		if m, ok := f.rows[id]; ok && (flt.ParentType == "" || string(m.ParentType) == flt.ParentType) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeStore) Count(ctx context.Context, flt repository.Filter) (int64, error) {
	rows, _ := f.List(ctx, flt, 0, 0)
	return int64(len(rows)), nil
}

func (f *fakeStore) FindByID(ctx context.Context, id int64) (*model.ActivityModel, error) {
	m, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (f *fakeStore) Create(ctx context.Context, m *model.ActivityModel) error {
	m.ID = f.nextID
	f.nextID++
	f.rows[m.ID] = *m
	return nil
}

func (f *fakeStore) Update(ctx context.Context, id int64, up map[string]any) (int64, error) {
	m, ok := f.rows[id]
	if !ok {
		return 0, nil
	}
	if v, ok := up["is_completed"]; ok {
		m.IsCompleted = v.(bool)
	}
	if v, ok := up["content"]; ok {
		m.Content = v.(string)
	}
	if v, ok := up["priority"]; ok {
		if v == nil {
			m.Priority = nil
		} else {
			s := v.(string)
			m.Priority = &s
		}
	}
	f.rows[id] = m
	return 1, nil
}

func (f *fakeStore) Delete(ctx context.Context, id int64) (int64, error) {
	if _, ok := f.rows[id]; !ok {
		return 0, nil
	}
	delete(f.rows, id)
	return 1, nil
}

func newService() (*ActivityService, *fakeStore) {
	store := &fakeStore{rows: map[int64]model.ActivityModel{}, nextID: 1}
	dir := repository.ParentDirectory{
		model.ParentContact:        fakeLookup{names: map[int64]string{1: "Jan Kowalski"}},
		model.ParentPartnerCompany: fakeLookup{names: map[int64]string{5: "Acme"}},
	}
	svc := NewActivityService(store, dir)
	svc.now = func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }
	return svc, store
}

func createReq(t *testing.T, body string) dto.CreateActivityRequest {
	t.Helper()
	var req dto.CreateActivityRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return req
}

func TestCreateResolvesParent(t *testing.T) {
	svc, _ := newService()

	res, err := svc.Create(context.Background(), createReq(t,
		`{"parent_type":"contact","parent_id":1,"activity_type":"task","content":"Call back <b>soon</b>","priority":"high"}`))
	require.NoError(t, err)
	assert.Equal(t, "Call back soon", res.Content)
	require.NotNil(t, res.ParentName)
	assert.Equal(t, "Jan Kowalski", *res.ParentName)
}

func TestCreateParentErrors(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Create(context.Background(), createReq(t,
		`{"parent_type":"contact","parent_id":99,"activity_type":"note","content":"x"}`))
	require.Error(t, err)
	assert.True(t, helper.IsKind(err, helper.KindNotFound))
	assert.EqualError(t, err, "Parent contact not found")

	_, err = svc.Create(context.Background(), createReq(t,
		`{"parent_type":"spaceship","parent_id":1,"activity_type":"note","content":"x"}`))
	require.Error(t, err)
	assert.True(t, helper.IsKind(err, helper.KindValidation))
	assert.Contains(t, err.Error(), "contact partner_company")

	_, err = svc.Create(context.Background(), createReq(t,
		`{"parent_type":"contact","parent_id":1,"activity_type":"fax","content":"x"}`))
	assert.True(t, helper.IsKind(err, helper.KindValidation))
}

func TestListAttachesNamesAndSurvivesLookupFailure(t *testing.T) {
	svc, store := newService()
	store.rows[1] = model.ActivityModel{ID: 1, ParentType: model.ParentContact, ParentID: 1, ActivityType: "note", Content: "a"}
	store.rows[2] = model.ActivityModel{ID: 2, ParentType: model.ParentPartnerCompany, ParentID: 5, ActivityType: "call", Content: "b"}
	store.rows[3] = model.ActivityModel{ID: 3, ParentType: model.ParentContact, ParentID: 42, ActivityType: "note", Content: "c"}
	store.nextID = 4

	p, _ := helper.NewPaging("", "", 10, 100)
	res, err := svc.List(context.Background(), dto.ListActivitiesQuery{Paging: p})
	require.NoError(t, err)
	require.Len(t, res.Data, 3)
	assert.Equal(t, "Jan Kowalski", *res.Data[0].ParentName)
	assert.Equal(t, "Acme", *res.Data[1].ParentName)
	assert.Nil(t, res.Data[2].ParentName)

	svc.parents[model.ParentContact] = fakeLookup{err: errors.New("down")}
	res, err = svc.List(context.Background(), dto.ListActivitiesQuery{Paging: p})
	require.NoError(t, err)
	assert.Nil(t, res.Data[0].ParentName)
	assert.Equal(t, "Acme", *res.Data[1].ParentName)

	_, err = svc.List(context.Background(), dto.ListActivitiesQuery{Paging: p, ParentType: "planet"})
	assert.True(t, helper.IsKind(err, helper.KindValidation))
}

func TestUpdateAndDelete(t *testing.T) {
	svc, store := newService()
	store.rows[1] = model.ActivityModel{ID: 1, ParentType: model.ParentContact, ParentID: 1, ActivityType: "task", Content: "a"}
	store.nextID = 2

	var patch dto.PatchActivityRequest
	require.NoError(t, json.Unmarshal([]byte(`{"is_completed":true,"priority":"urgent"}`), &patch))
	res, err := svc.Update(context.Background(), 1, patch)
	require.NoError(t, err)
	assert.True(t, res.IsCompleted)
	assert.Equal(t, "urgent", *res.Priority)

	require.NoError(t, json.Unmarshal([]byte(`{"priority":"whenever"}`), &patch))
	_, err = svc.Update(context.Background(), 1, patch)
	assert.True(t, helper.IsKind(err, helper.KindValidation))

	var empty dto.PatchActivityRequest
	require.NoError(t, json.Unmarshal([]byte(`{"content":"  "}`), &empty))
	_, err = svc.Update(context.Background(), 1, empty)
	assert.True(t, helper.IsKind(err, helper.KindValidation))

	var done dto.PatchActivityRequest
	require.NoError(t, json.Unmarshal([]byte(`{"is_completed":false}`), &done))
	_, err = svc.Update(context.Background(), 99, done)
	assert.True(t, helper.IsKind(err, helper.KindNotFound))

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.True(t, helper.IsKind(svc.Delete(context.Background(), 1), helper.KindNotFound))
}
