package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"mentoring_backend/internals/constants"
)

type Totals struct {
	Contacts         int64
	ActiveContacts   int64
	Organizations    int64
	PartnerCompanies int64
	ActiveRelations  int64
	PendingRelations int64
	OpenTasks        int64
}

type TypeCount struct {
	Type  string
	Count int64
}

// MonthlyCount is one (month, type) bucket; Month is "YYYY-MM".
type MonthlyCount struct {
	Month string
	Type  string
	Count int64
}

type StatusCount struct {
	Status string
	Count  int64
}

type ActivityRow struct {
	ID           int64
	ActivityType string
	ParentType   string
	ParentID     int64
	CreatedAt    time.Time
}

type Store interface {
	Totals(ctx context.Context) (Totals, error)
	CountByType(ctx context.Context) ([]TypeCount, error)
	MonthlyCounts(ctx context.Context, since time.Time) ([]MonthlyCount, error)
	StatusCounts(ctx context.Context) ([]StatusCount, error)
	RecentActivities(ctx context.Context, limit int) ([]ActivityRow, error)
}

type StatsRepository struct {
	DB *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{DB: db}
}

func (r *StatsRepository) Totals(ctx context.Context) (Totals, error) {
	var t Totals
	err := r.DB.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM contacts)                                AS contacts,
			(SELECT COUNT(*) FROM contacts WHERE status = ?)               AS active_contacts,
			(SELECT COUNT(*) FROM organizations)                           AS organizations,
			(SELECT COUNT(*) FROM partner_companies)                       AS partner_companies,
			(SELECT COUNT(*) FROM mentor_mentee_relations WHERE status = ?) AS active_relations,
			(SELECT COUNT(*) FROM mentor_mentee_relations WHERE status = ?) AS pending_relations,
			(SELECT COUNT(*) FROM activities
			  WHERE activity_type = 'task' AND is_completed = FALSE)       AS open_tasks
	`, constants.StatusActive, constants.RelationCurrent, constants.RelationInquiry).
		Scan(&t).Error
	return t, err
}

func (r *StatsRepository) CountByType(ctx context.Context) ([]TypeCount, error) {
	var rows []TypeCount
	err := r.DB.WithContext(ctx).Raw(`
		SELECT type, COUNT(*) AS count
		FROM contacts
		GROUP BY type
		ORDER BY type
	`).Scan(&rows).Error
	return rows, err
}

func (r *StatsRepository) MonthlyCounts(ctx context.Context, since time.Time) ([]MonthlyCount, error) {
	var rows []MonthlyCount
	err := r.DB.WithContext(ctx).Raw(`
		SELECT to_char(created_at AT TIME ZONE 'UTC', 'YYYY-MM') AS month, type, COUNT(*) AS count
		FROM contacts
		WHERE created_at >= ?
		GROUP BY month, type
		ORDER BY month ASC, type ASC
	`, since).Scan(&rows).Error
	return rows, err
}

func (r *StatsRepository) StatusCounts(ctx context.Context) ([]StatusCount, error) {
	var rows []StatusCount
	err := r.DB.WithContext(ctx).Raw(`
		SELECT status, COUNT(*) AS count
		FROM contacts
		GROUP BY status
		ORDER BY count DESC, status ASC
	`).Scan(&rows).Error
	return rows, err
}

func (r *StatsRepository) RecentActivities(ctx context.Context, limit int) ([]ActivityRow, error) {
	var rows []ActivityRow
	err := r.DB.WithContext(ctx).Raw(`
		SELECT id, activity_type, parent_type, parent_id, created_at
		FROM activities
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit).Scan(&rows).Error
	return rows, err
}
