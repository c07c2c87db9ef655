package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mentoring_backend/internals/constants"
	"mentoring_backend/internals/features/contacts/contacts/controller"
	"mentoring_backend/internals/features/contacts/contacts/model"
	"mentoring_backend/internals/features/contacts/contacts/repository"
	"mentoring_backend/internals/features/contacts/contacts/service"
)

func ContactRoutes(r fiber.Router, db *gorm.DB, labels constants.Labels) {
	svc := service.NewContactService(repository.NewContactRepository(db), labels)
	MountContactRoutes(r, svc)
}

// MountContactRoutes registers /contacts/{mentors,mentees,supporters}.
func MountContactRoutes(r fiber.Router, svc controller.ContactService) {
	contacts := r.Group("/contacts")
	for _, t := range model.ContactTypes {
		ctrl := controller.NewContactController(svc, t)
		g := contacts.Group("/" + t.Plural())

		g.Get("/", ctrl.List)
		g.Post("/", ctrl.Create)
		if t == model.ContactTypeMentor {
			// before /:id so it is not read as an id
			g.Get("/specializations", ctrl.DetailValues)
		}
		g.Get("/:id", ctrl.Get)
		g.Put("/:id", ctrl.Update)
		g.Delete("/:id", ctrl.Delete)
	}
}
