package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mentoring_backend/internals/constants"
	actrepo "mentoring_backend/internals/features/activities/activities/repository"
	"mentoring_backend/internals/features/dashboard/stats/controller"
	"mentoring_backend/internals/features/dashboard/stats/repository"
	"mentoring_backend/internals/features/dashboard/stats/service"
)

func DashboardRoutes(r fiber.Router, db *gorm.DB, labels constants.Labels) {
	svc := service.NewStatsService(repository.NewStatsRepository(db), actrepo.NewParentDirectory(db), labels)
	MountDashboardRoutes(r, svc)
}

func MountDashboardRoutes(r fiber.Router, svc controller.StatsService) {
	ctrl := controller.NewStatsController(svc)

	g := r.Group("/dashboard")
	g.Get("/stats", ctrl.Stats)
	g.Get("/monthly-growth", ctrl.MonthlyGrowth)
	g.Get("/status-distribution", ctrl.StatusDistribution)
	g.Get("/recent-activities", ctrl.RecentActivities)
}
