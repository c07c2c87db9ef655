package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"mentoring_backend/internals/features/activities/activities/model"
)

type Filter struct {
	ParentType   string
	ParentID     *int64
	ActivityType string
	IsCompleted  *bool
}

type Store interface {
	List(ctx context.Context, f Filter, limit, offset int) ([]model.ActivityModel, error)
	Count(ctx context.Context, f Filter) (int64, error)
	FindByID(ctx context.Context, id int64) (*model.ActivityModel, error)
	Create(ctx context.Context, m *model.ActivityModel) error
	Update(ctx context.Context, id int64, up map[string]any) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type ActivityRepository struct {
	DB *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

func (r *ActivityRepository) scoped(ctx context.Context, f Filter) *gorm.DB {
	q := r.DB.WithContext(ctx).Model(&model.ActivityModel{})
	if f.ParentType != "" {
		q = q.Where("parent_type = ?", f.ParentType)
	}
	if f.ParentID != nil {
		q = q.Where("parent_id = ?", *f.ParentID)
	}
	if f.ActivityType != "" {
		q = q.Where("activity_type = ?", f.ActivityType)
	}
	if f.IsCompleted != nil {
		q = q.Where("is_completed = ?", *f.IsCompleted)
	}
	return q
}

func (r *ActivityRepository) List(ctx context.Context, f Filter, limit, offset int) ([]model.ActivityModel, error) {
	var rows []model.ActivityModel
	err := r.scoped(ctx, f).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	return rows, err
}

func (r *ActivityRepository) Count(ctx context.Context, f Filter) (int64, error) {
	var total int64
	err := r.scoped(ctx, f).Count(&total).Error
	return total, err
}

func (r *ActivityRepository) FindByID(ctx context.Context, id int64) (*model.ActivityModel, error) {
	var m model.ActivityModel
	err := r.DB.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *ActivityRepository) Create(ctx context.Context, m *model.ActivityModel) error {
	return r.DB.WithContext(ctx).Create(m).Error
}

func (r *ActivityRepository) Update(ctx context.Context, id int64, up map[string]any) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&model.ActivityModel{}).Where("id = ?", id).Updates(up)
	return res.RowsAffected, res.Error
}

func (r *ActivityRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.DB.WithContext(ctx).Delete(&model.ActivityModel{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
