package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	companyRoute "mentoring_backend/internals/features/partners/companies/route"
	organizationRoute "mentoring_backend/internals/features/partners/organizations/route"
)

func PartnerRoutes(r fiber.Router, db *gorm.DB) {
	companyRoute.CompanyRoutes(r, db)
	organizationRoute.OrganizationRoutes(r, db)
}
