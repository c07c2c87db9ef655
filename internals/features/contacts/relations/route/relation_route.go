package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mentoring_backend/internals/features/contacts/relations/controller"
	"mentoring_backend/internals/features/contacts/relations/repository"
	"mentoring_backend/internals/features/contacts/relations/service"
)

func RelationRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewRelationController(service.NewRelationService(repository.NewRelationRepository(db)))

	g := r.Group("/relations")
	g.Get("/", ctrl.List)
	g.Post("/", ctrl.Create)
	g.Get("/:id", ctrl.Get)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}
