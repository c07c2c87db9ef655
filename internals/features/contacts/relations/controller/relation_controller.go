package controller

import (
	"github.com/gofiber/fiber/v2"

	"mentoring_backend/internals/features/contacts/relations/dto"
	"mentoring_backend/internals/features/contacts/relations/service"
	helper "mentoring_backend/internals/helpers"
)

type RelationController struct {
	Service *service.RelationService
}

func NewRelationController(svc *service.RelationService) *RelationController {
	return &RelationController{Service: svc}
}

// GET /relations?status=&mentor_id=&mentee_id=
func (ctrl *RelationController) List(c *fiber.Ctx) error {
	paging, err := helper.ResolvePaging(c, helper.DefaultLimit, helper.MaxLimit)
	if err != nil {
		return err
	}
	mentorID, err := helper.QueryInt64(c, "mentor_id")
	if err != nil {
		return err
	}
	menteeID, err := helper.QueryInt64(c, "mentee_id")
	if err != nil {
		return err
	}

	res, err := ctrl.Service.List(c.UserContext(), dto.ListRelationsQuery{
		Paging:   paging,
		Status:   helper.QueryString(c, "status"),
		MentorID: mentorID,
		MenteeID: menteeID,
	})
	if err != nil {
		return err
	}
	return helper.JsonList(c, res.Data, res.Pagination)
}

func (ctrl *RelationController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	res, err := ctrl.Service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

func (ctrl *RelationController) Create(c *fiber.Ctx) error {
	var body dto.CreateRelationRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	res, err := ctrl.Service.Create(c.UserContext(), body)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, res)
}

func (ctrl *RelationController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	var body dto.PatchRelationRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	res, err := ctrl.Service.Update(c.UserContext(), id, body)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

func (ctrl *RelationController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	if err := ctrl.Service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return helper.JsonMessage(c, "Relation deleted successfully")
}
