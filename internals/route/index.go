package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mentoring_backend/internals/configs"
	"mentoring_backend/internals/constants"
	"mentoring_backend/internals/logging"
	authMiddleware "mentoring_backend/internals/middlewares/auth"
	routeDetails "mentoring_backend/internals/route/details"
)

var startTime = time.Now()

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg configs.AppConfig) {
	startTime = time.Now()

	// ===================== PUBLIC =====================
	BaseRoutes(app, db)

	// ===================== PROTECTED =====================
	labels := constants.LabelsFor(cfg.Locale)
	protected := app.Group("", authMiddleware.AuthMiddleware(authMiddleware.OptionsFromConfig(cfg)))

	// same handlers at the root and under /api (the SPA dev proxy keeps the prefix)
	for _, r := range []fiber.Router{protected, protected.Group("/api")} {
		routeDetails.DashboardRoutes(r, db, labels)
		routeDetails.ContactRoutes(r, db, labels)
		routeDetails.PartnerRoutes(r, db)
		routeDetails.ActivityRoutes(r, db)
	}
	logging.L().Info().Str("auth_mode", cfg.AuthMode).Str("locale", labels.Tag.String()).Msg("routes mounted")
}
