package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mentoring_backend/internals/features/partners/organizations/controller"
	helper "mentoring_backend/internals/helpers"
)

func OrganizationRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewOrganizationController(db, helper.NewValidator())

	g := r.Group("/organizations")
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Get("/:id", ctl.Get)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
