package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"mentoring_backend/internals/constants"
	actmodel "mentoring_backend/internals/features/activities/activities/model"
	contactmodel "mentoring_backend/internals/features/contacts/contacts/model"
	"mentoring_backend/internals/features/dashboard/stats/dto"
	"mentoring_backend/internals/features/dashboard/stats/repository"
	helper "mentoring_backend/internals/helpers"
)

const (
	recentActivityLimit = 10
	growthWindowMonths  = 6
)

// NameResolver turns parent ids of one kind into display names.
type NameResolver interface {
	Names(ctx context.Context, kind actmodel.ParentKind, ids []int64) (map[int64]string, error)
}

type StatsService struct {
	repo   repository.Store
	names  NameResolver
	labels constants.Labels
	now    func() time.Time
}

func NewStatsService(repo repository.Store, names NameResolver, labels constants.Labels) *StatsService {
	return &StatsService{repo: repo, names: names, labels: labels, now: time.Now}
}

/* ===================== Stats ===================== */

func (s *StatsService) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	t, err := s.repo.Totals(ctx)
	if err != nil {
		return nil, helper.Internal(err)
	}
	byType, err := s.repo.CountByType(ctx)
	if err != nil {
		return nil, helper.Internal(err)
	}

	res := &dto.StatsResponse{
		TotalContacts:             t.Contacts,
		Organizations:             t.Organizations,
		TotalPartnerCompanies:     t.PartnerCompanies,
		ActiveRelations:           t.ActiveRelations,
		PendingRelations:          t.PendingRelations,
		ActiveTasks:               t.OpenTasks,
		ConversionRate:            ConversionRate(t.ActiveContacts, t.Contacts),
		ContactsByType:            make([]dto.TypeCount, 0, len(byType)),
		PartnerCompaniesCount:     t.PartnerCompanies,
		PartnerOrganizationsCount: t.Organizations,
	}
	for _, row := range byType {
		res.ContactsByType = append(res.ContactsByType, dto.TypeCount{Type: row.Type, Count: row.Count})
		switch contactmodel.ContactType(row.Type) {
		case contactmodel.ContactTypeMentor:
			res.MentorsCount = row.Count
		case contactmodel.ContactTypeMentee:
			res.MenteesCount = row.Count
		case contactmodel.ContactTypeSupporter:
			res.SupportersCount = row.Count
		}
	}
	return res, nil
}

// ConversionRate renders active/total as a whole percentage, "0%" for an empty base.
func ConversionRate(active, total int64) string {
	if total <= 0 {
		return "0%"
	}
	pct := math.Round(float64(active) / float64(total) * 100)
	return strconv.FormatInt(int64(pct), 10) + "%"
}

/* ===================== Monthly growth ===================== */

func (s *StatsService) MonthlyGrowth(ctx context.Context) ([]dto.MonthlyGrowth, error) {
	since := s.now().UTC().AddDate(0, -growthWindowMonths, 0)
	rows, err := s.repo.MonthlyCounts(ctx, since)
	if err != nil {
		return nil, helper.Internal(err)
	}
	return BuildMonthlyGrowth(rows, s.labels), nil
}

// BuildMonthlyGrowth folds (month, type) buckets into one record per month, oldest first.
func BuildMonthlyGrowth(rows []repository.MonthlyCount, labels constants.Labels) []dto.MonthlyGrowth {
	byMonth := map[string]*dto.MonthlyGrowth{}
	keys := make([]string, 0)
	for _, row := range rows {
		rec, ok := byMonth[row.Month]
		if !ok {
			rec = &dto.MonthlyGrowth{Name: labels.Month(monthNumber(row.Month))}
			byMonth[row.Month] = rec
			keys = append(keys, row.Month)
		}
		switch contactmodel.ContactType(row.Type) {
		case contactmodel.ContactTypeMentor:
			rec.Mentors += row.Count
		case contactmodel.ContactTypeMentee:
			rec.Mentees += row.Count
		case contactmodel.ContactTypeSupporter:
			rec.Supporters += row.Count
		}
	}

	// "YYYY-MM" sorts chronologically as a string
	sort.Strings(keys)
	out := make([]dto.MonthlyGrowth, 0, len(keys))
	for _, k := range keys {
		out = append(out, *byMonth[k])
	}
	return out
}

func monthNumber(key string) int {
	_, mm, ok := strings.Cut(key, "-")
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(mm)
	if err != nil {
		return 0
	}
	return n
}

/* ===================== Status distribution ===================== */

func (s *StatsService) StatusDistribution(ctx context.Context) ([]dto.StatusSlice, error) {
	rows, err := s.repo.StatusCounts(ctx)
	if err != nil {
		return nil, helper.Internal(err)
	}
	return BuildStatusDistribution(rows, s.labels), nil
}

func BuildStatusDistribution(rows []repository.StatusCount, labels constants.Labels) []dto.StatusSlice {
	out := make([]dto.StatusSlice, 0, len(rows))
	for i, row := range rows {
		out = append(out, dto.StatusSlice{
			Name:  labels.StatusLabel(row.Status),
			Value: row.Count,
			Color: constants.PaletteColor(i),
		})
	}
	return out
}

/* ===================== Recent activities ===================== */

func (s *StatsService) RecentActivities(ctx context.Context) ([]dto.RecentActivity, error) {
	rows, err := s.repo.RecentActivities(ctx, recentActivityLimit)
	if err != nil {
		return nil, helper.Internal(err)
	}

	// only contact parents carry a person name
	var ids []int64
	for _, row := range rows {
		if actmodel.ParentKind(row.ParentType) == actmodel.ParentContact {
			ids = append(ids, row.ParentID)
		}
	}
	names := map[int64]string{}
	if len(ids) > 0 {
		names, err = s.names.Names(ctx, actmodel.ParentContact, ids)
		if err != nil {
			return nil, helper.Internal(fmt.Errorf("resolve activity users: %w", err))
		}
	}

	now := s.now()
	out := make([]dto.RecentActivity, 0, len(rows))
	for _, row := range rows {
		user := s.labels.SystemActor
		if actmodel.ParentKind(row.ParentType) == actmodel.ParentContact {
			if n, ok := names[row.ParentID]; ok && n != "" {
				user = n
			}
		}
		out = append(out, dto.RecentActivity{
			ID:     row.ID,
			Type:   row.ActivityType,
			User:   user,
			Action: ActionPhrase(row.ActivityType, s.labels),
			Time:   FormatTimeAgo(now, row.CreatedAt, s.labels),
		})
	}
	return out, nil
}

func ActionPhrase(activityType string, labels constants.Labels) string {
	switch activityType {
	case actmodel.ActivityNote:
		return labels.AddedNote
	case actmodel.ActivityTask:
		return labels.CreatedTask
	default:
		return labels.DidAction
	}
}

// FormatTimeAgo truncates; timestamps in the future read as "now".
func FormatTimeAgo(now, t time.Time, labels constants.Labels) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return labels.Now
	case d < time.Hour:
		return labels.Minutes(int(d / time.Minute))
	case d < 24*time.Hour:
		return labels.Hours(int(d / time.Hour))
	default:
		return labels.Days(int(d / (24 * time.Hour)))
	}
}
