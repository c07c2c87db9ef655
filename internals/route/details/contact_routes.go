package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mentoring_backend/internals/constants"
	contactRoute "mentoring_backend/internals/features/contacts/contacts/route"
	relationRoute "mentoring_backend/internals/features/contacts/relations/route"
)

// ContactRoutes: /contacts/{mentors,mentees,supporters} and /relations.
func ContactRoutes(r fiber.Router, db *gorm.DB, labels constants.Labels) {
	contactRoute.ContactRoutes(r, db, labels)
	relationRoute.RelationRoutes(r, db)
}
