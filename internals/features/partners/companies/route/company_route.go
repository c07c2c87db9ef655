package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mentoring_backend/internals/features/partners/companies/controller"
	helper "mentoring_backend/internals/helpers"
)

func CompanyRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewCompanyController(db, helper.NewValidator())

	g := r.Group("/companies")
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Get("/:id", ctl.Get)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
