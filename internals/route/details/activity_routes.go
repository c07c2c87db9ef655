package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activityRoute "mentoring_backend/internals/features/activities/activities/route"
)

func ActivityRoutes(r fiber.Router, db *gorm.DB) {
	activityRoute.ActivityRoutes(r, db)
}
