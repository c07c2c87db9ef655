package scheduler

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"

	"mentoring_backend/internals/features/dashboard/stats/repository"
	"mentoring_backend/internals/logging"
)

const DefaultSchedule = "@every 1m"

var entityGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
	Name: "mentoring_entities",
	Help: "Current row counts behind the dashboard, refreshed on a schedule.",
}, []string{"kind"})

func init() {
	prometheus.MustRegister(entityGauge)
}

// RefreshGauges copies the dashboard totals into the entity gauges.
func RefreshGauges(ctx context.Context, repo repository.Store) error {
	t, err := repo.Totals(ctx)
	if err != nil {
		return err
	}
	for kind, v := range map[string]int64{
		"contacts":          t.Contacts,
		"active_contacts":   t.ActiveContacts,
		"organizations":     t.Organizations,
		"partner_companies": t.PartnerCompanies,
		"active_relations":  t.ActiveRelations,
		"pending_relations": t.PendingRelations,
		"open_tasks":        t.OpenTasks,
	} {
		entityGauge.WithLabelValues(kind).Set(float64(v))
	}
	return nil
}

// StartGaugeScheduler runs RefreshGauges on schedule (cron syntax or "@every 30s").
// The caller stops the returned cron on shutdown.
func StartGaugeScheduler(repo repository.Store, schedule string) (*cron.Cron, error) {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := RefreshGauges(ctx, repo); err != nil {
			logging.L().Warn().Err(err).Msg("[STATS-GAUGES] refresh failed")
		}
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	logging.L().Info().Str("schedule", schedule).Msg("[STATS-GAUGES] scheduler started")
	return c, nil
}
