package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mentoring_backend/internals/features/activities/activities/controller"
	"mentoring_backend/internals/features/activities/activities/repository"
	"mentoring_backend/internals/features/activities/activities/service"
)

func ActivityRoutes(r fiber.Router, db *gorm.DB) {
	svc := service.NewActivityService(repository.NewActivityRepository(db), repository.NewParentDirectory(db))
	ctrl := controller.NewActivityController(svc)

	g := r.Group("/activities")
	g.Get("/", ctrl.List)
	g.Post("/", ctrl.Create)
	g.Get("/:id", ctrl.Get)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}
