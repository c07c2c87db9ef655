package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"mentoring_backend/internals/features/activities/activities/model"
)

// ParentLookup answers questions about one kind of activity parent.
type ParentLookup interface {
	Exists(ctx context.Context, id int64) (bool, error)
	Names(ctx context.Context, ids []int64) (map[int64]string, error)
}

// ParentDirectory dispatches a ParentRef to the lookup for its kind.
type ParentDirectory map[model.ParentKind]ParentLookup

var ErrUnknownParentKind = errors.New("unknown parent type")

func (d ParentDirectory) Lookup(kind model.ParentKind) (ParentLookup, error) {
	l, ok := d[kind]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownParentKind, kind)
	}
	return l, nil
}

func (d ParentDirectory) Exists(ctx context.Context, ref model.ParentRef) (bool, error) {
	l, err := d.Lookup(ref.Kind)
	if err != nil {
		return false, err
	}
	return l.Exists(ctx, ref.ID)
}

// Names resolves display names for ids of one kind; ids without a row are absent.
func (d ParentDirectory) Names(ctx context.Context, kind model.ParentKind, ids []int64) (map[int64]string, error) {
	if len(ids) == 0 {
		return map[int64]string{}, nil
	}
	l, err := d.Lookup(kind)
	if err != nil {
		return nil, err
	}
	return l.Names(ctx, ids)
}

// tableLookup resolves parents stored in one table (optionally joined for the name).
type tableLookup struct {
	db       *gorm.DB
	from     string
	idCol    string
	nameExpr string
}

func (l tableLookup) Exists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	q := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s = ?)", l.from, l.idCol)
	err := l.db.WithContext(ctx).Raw(q, id).Scan(&ok).Error
	return ok, err
}

func (l tableLookup) Names(ctx context.Context, ids []int64) (map[int64]string, error) {
	var rows []struct {
		ID   int64
		Name string
	}
	q := fmt.Sprintf("SELECT %s AS id, %s AS name FROM %s WHERE %s IN ?", l.idCol, l.nameExpr, l.from, l.idCol)
	if err := l.db.WithContext(ctx).Raw(q, ids).Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[int64]string, len(rows))
	for _, r := range rows {
		out[r.ID] = r.Name
	}
	return out, nil
}

// NewParentDirectory wires every parent kind to its table.
func NewParentDirectory(db *gorm.DB) ParentDirectory {
	return ParentDirectory{
		model.ParentContact: tableLookup{
			db: db, from: "contacts", idCol: "id", nameExpr: "name",
		},
		model.ParentOrganization: tableLookup{
			db: db, from: "organizations", idCol: "id", nameExpr: "name",
		},
		model.ParentPartnerCompany: tableLookup{
			db: db, from: "partner_companies", idCol: "id", nameExpr: "name",
		},
		model.ParentRelation: tableLookup{
			db:       db,
			from:     "mentor_mentee_relations r JOIN contacts m ON m.id = r.mentor_id JOIN contacts e ON e.id = r.mentee_id",
			idCol:    "r.id",
			nameExpr: "m.name || ' / ' || e.name",
		},
	}
}
