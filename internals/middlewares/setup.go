package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"mentoring_backend/internals/configs"
	"mentoring_backend/internals/middlewares/logger"
)

const RequestTimeout = 5 * time.Second

// SetupMiddlewares installs the app-wide chain. Auth is not part of it; the router puts
// it on the protected groups.
func SetupMiddlewares(app *fiber.App, cfg configs.AppConfig) {
	app.Use(RecoveryMiddleware())
	app.Use(RequestContext(RequestTimeout))
	app.Use(CorsMiddleware(cfg.CorsOrigins))
	app.Use(logger.LoggerMiddleware())
	app.Use(MetricsMiddleware())
	app.Use(GlobalRateLimiter(100))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
}
