package service

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"gorm.io/datatypes"

	"mentoring_backend/internals/features/contacts/contacts/model"
	"mentoring_backend/internals/features/contacts/contacts/repository"
)

type fakeRelation struct {
	id, mentorID, menteeID int64
	status                 string
}

// fakeStore keeps contacts in memory. Transactions snapshot and restore state so the
// rollback behaviour of the service can be asserted.
type fakeStore struct {
	mu        sync.Mutex
	contacts  map[int64]model.ContactModel
	companies map[int64]string
	relations []fakeRelation
	nextID    int64

	failList    error
	failRelated error
	failCreate  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{contacts: map[int64]model.ContactModel{}, companies: map[int64]string{}, nextID: 1}
}

func (f *fakeStore) seed(t model.ContactType, name, email, status, details string, created time.Time) int64 {
	id := f.nextID
	f.nextID++
	f.contacts[id] = model.ContactModel{
		ID: id, Type: t, Name: name, Email: email, Status: status,
		Details: datatypes.JSON(details), CreatedAt: created, UpdatedAt: created,
	}
	return id
}

func (f *fakeStore) Transaction(ctx context.Context, fn func(tx repository.Store) error) error {
	f.mu.Lock()
	snapContacts := make(map[int64]model.ContactModel, len(f.contacts))
	for k, v := range f.contacts {
		snapContacts[k] = v
	}
	snapRelations := append([]fakeRelation(nil), f.relations...)
	f.mu.Unlock()

	if err := fn(f); err != nil {
		f.mu.Lock()
		f.contacts = snapContacts
		f.relations = snapRelations
		f.mu.Unlock()
		return err
	}
	return nil
}

func (f *fakeStore) matches(c model.ContactModel, flt repository.Filter) bool {
	if c.Type != flt.Type {
		return false
	}
	fieldVal := jsonField(c.Details, flt.Type.SearchField())
	if flt.Search != "" {
		s := strings.ToLower(flt.Search)
		if !strings.Contains(strings.ToLower(c.Name), s) &&
			!strings.Contains(strings.ToLower(c.Email), s) &&
			!strings.Contains(strings.ToLower(fieldVal), s) {
			return false
		}
	}
	if flt.Status != "" && c.Status != flt.Status {
		return false
	}
	if flt.FieldValue != "" && fieldVal != flt.FieldValue {
		return false
	}
	return true
}

func (f *fakeStore) filtered(flt repository.Filter) []model.ContactModel {
	var out []model.ContactModel
	for _, c := range f.contacts {
		if f.matches(c, flt) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (f *fakeStore) row(c model.ContactModel) model.ContactRow {
	r := model.ContactRow{ContactModel: c}
	if c.CompanyID != nil {
		if name, ok := f.companies[*c.CompanyID]; ok {
			r.CompanyName = &name
		}
	}
	return r
}

func (f *fakeStore) List(ctx context.Context, flt repository.Filter, limit, offset int) ([]model.ContactRow, error) {
	if f.failList != nil {
		return nil, f.failList
	}
	all := f.filtered(flt)
	var out []model.ContactRow
	for i := offset; i < len(all) && i < offset+limit; i++ {
		out = append(out, f.row(all[i]))
	}
	return out, nil
}

func (f *fakeStore) Count(ctx context.Context, flt repository.Filter) (int64, error) {
	return int64(len(f.filtered(flt))), nil
}

func (f *fakeStore) FindByID(ctx context.Context, t model.ContactType, id int64) (*model.ContactRow, error) {
	c, ok := f.contacts[id]
	if !ok || c.Type != t {
		return nil, nil
	}
	r := f.row(c)
	return &r, nil
}

func (f *fakeStore) DistinctDetailValues(ctx context.Context, t model.ContactType, field string) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, c := range f.contacts {
		if c.Type != t {
			continue
		}
		v := strings.TrimSpace(jsonField(c.Details, field))
		if v != "" && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeStore) RelatedContacts(ctx context.Context, t model.ContactType, id int64) ([]model.RelatedContact, error) {
	if f.failRelated != nil {
		return nil, f.failRelated
	}
	var out []model.RelatedContact
	for _, r := range f.relations {
		var otherID int64
		switch {
		case t == model.ContactTypeMentor && r.mentorID == id:
			otherID = r.menteeID
		case t == model.ContactTypeMentee && r.menteeID == id:
			otherID = r.mentorID
		default:
			continue
		}
		c := f.contacts[otherID]
		out = append(out, model.RelatedContact{
			ID: c.ID, Name: c.Name, Email: c.Email, Status: c.Status,
			RelationID: r.id, RelationStatus: r.status, Goals: datatypes.JSON(`["ship"]`),
		})
	}
	return out, nil
}

func (f *fakeStore) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	for _, c := range f.contacts {
		if c.Email == email && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) CompanyExists(ctx context.Context, id int64) (bool, error) {
	_, ok := f.companies[id]
	return ok, nil
}

func (f *fakeStore) Create(ctx context.Context, m *model.ContactModel) error {
	if f.failCreate != nil {
		return f.failCreate
	}
	m.ID = f.nextID
	f.nextID++
	f.contacts[m.ID] = *m
	return nil
}

func (f *fakeStore) Update(ctx context.Context, t model.ContactType, id int64, up map[string]any) (int64, error) {
	c, ok := f.contacts[id]
	if !ok || c.Type != t {
		return 0, nil
	}
	for k, v := range up {
		switch k {
		case "name":
			c.Name = v.(string)
		case "email":
			c.Email = v.(string)
		case "status":
			c.Status = v.(string)
		case "details":
			c.Details = v.(datatypes.JSON)
		case "summary_comment":
			if v == nil {
				c.SummaryComment = nil
			} else {
				s := v.(string)
				c.SummaryComment = &s
			}
		case "company_id":
			if v == nil {
				c.CompanyID = nil
			} else {
				id := v.(int64)
				c.CompanyID = &id
			}
		case "updated_at":
			c.UpdatedAt = v.(time.Time)
		default:
			return 0, errors.New("unexpected column " + k)
		}
	}
	f.contacts[id] = c
	return 1, nil
}

func (f *fakeStore) Delete(ctx context.Context, t model.ContactType, id int64) (int64, error) {
	c, ok := f.contacts[id]
	if !ok || c.Type != t {
		return 0, nil
	}
	delete(f.contacts, id)
	return 1, nil
}

func (f *fakeStore) DeleteRelations(ctx context.Context, contactID int64) (int64, error) {
	var kept []fakeRelation
	var n int64
	for _, r := range f.relations {
		if r.mentorID == contactID || r.menteeID == contactID {
			n++
			continue
		}
		kept = append(kept, r)
	}
	f.relations = kept
	return n, nil
}

func jsonField(raw []byte, field string) string {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return ""
	}
	s, _ := m[field].(string)
	return s
}
