package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mentoring_backend/internals/constants"
	dashboardRoute "mentoring_backend/internals/features/dashboard/stats/route"
)

func DashboardRoutes(r fiber.Router, db *gorm.DB, labels constants.Labels) {
	dashboardRoute.DashboardRoutes(r, db, labels)
}
