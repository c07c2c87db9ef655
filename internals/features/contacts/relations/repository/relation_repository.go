package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"mentoring_backend/internals/features/contacts/relations/model"
)

type Filter struct {
	Status   string
	MentorID *int64
	MenteeID *int64
}

type Store interface {
	Transaction(ctx context.Context, fn func(tx Store) error) error

	List(ctx context.Context, f Filter, limit, offset int) ([]model.RelationRow, error)
	Count(ctx context.Context, f Filter) (int64, error)
	FindByID(ctx context.Context, id int64) (*model.RelationRow, error)

	// ContactType returns "" when the contact does not exist.
	ContactType(ctx context.Context, id int64) (string, error)
	PairExists(ctx context.Context, mentorID, menteeID int64) (bool, error)
	Create(ctx context.Context, m *model.RelationModel) error
	Update(ctx context.Context, id int64, up map[string]any) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type RelationRepository struct {
	DB *gorm.DB
}

func NewRelationRepository(db *gorm.DB) *RelationRepository {
	return &RelationRepository{DB: db}
}

func (r *RelationRepository) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&RelationRepository{DB: tx})
	})
}

const relationSelect = `
SELECT r.*, m.name AS mentor_name, e.name AS mentee_name
FROM mentor_mentee_relations r
JOIN contacts m ON m.id = r.mentor_id
JOIN contacts e ON e.id = r.mentee_id`

func buildWhere(f Filter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if f.Status != "" {
		conds = append(conds, "r.status = ?")
		args = append(args, f.Status)
	}
	if f.MentorID != nil {
		conds = append(conds, "r.mentor_id = ?")
		args = append(args, *f.MentorID)
	}
	if f.MenteeID != nil {
		conds = append(conds, "r.mentee_id = ?")
		args = append(args, *f.MenteeID)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

func (r *RelationRepository) List(ctx context.Context, f Filter, limit, offset int) ([]model.RelationRow, error) {
	where, args := buildWhere(f)
	args = append(args, limit, offset)

	var rows []model.RelationRow
	err := r.DB.WithContext(ctx).
		Raw(relationSelect+" "+where+" ORDER BY r.created_at DESC, r.id DESC LIMIT ? OFFSET ?", args...).
		Scan(&rows).Error
	return rows, err
}

func (r *RelationRepository) Count(ctx context.Context, f Filter) (int64, error) {
	where, args := buildWhere(f)
	var total int64
	err := r.DB.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM mentor_mentee_relations r "+where, args...).
		Scan(&total).Error
	return total, err
}

func (r *RelationRepository) FindByID(ctx context.Context, id int64) (*model.RelationRow, error) {
	var rows []model.RelationRow
	if err := r.DB.WithContext(ctx).Raw(relationSelect+" WHERE r.id = ?", id).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *RelationRepository) ContactType(ctx context.Context, id int64) (string, error) {
	var types []string
	err := r.DB.WithContext(ctx).Table("contacts").Where("id = ?", id).Limit(1).Pluck("type", &types).Error
	if err != nil || len(types) == 0 {
		return "", err
	}
	return types[0], nil
}

func (r *RelationRepository) PairExists(ctx context.Context, mentorID, menteeID int64) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.RelationModel{}).
		Where("mentor_id = ? AND mentee_id = ?", mentorID, menteeID).
		Count(&n).Error
	return n > 0, err
}

func (r *RelationRepository) Create(ctx context.Context, m *model.RelationModel) error {
	return r.DB.WithContext(ctx).Create(m).Error
}

func (r *RelationRepository) Update(ctx context.Context, id int64, up map[string]any) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&model.RelationModel{}).Where("id = ?", id).Updates(up)
	return res.RowsAffected, res.Error
}

func (r *RelationRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.DB.WithContext(ctx).Delete(&model.RelationModel{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
