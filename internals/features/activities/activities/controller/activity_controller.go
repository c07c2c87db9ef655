package controller

import (
	"github.com/gofiber/fiber/v2"

	"mentoring_backend/internals/features/activities/activities/dto"
	"mentoring_backend/internals/features/activities/activities/service"
	helper "mentoring_backend/internals/helpers"
)

type ActivityController struct {
	Service *service.ActivityService
}

func NewActivityController(svc *service.ActivityService) *ActivityController {
	return &ActivityController{Service: svc}
}

// GET /activities?parent_type=&parent_id=&activity_type=&is_completed=
func (ctrl *ActivityController) List(c *fiber.Ctx) error {
	paging, err := helper.ResolvePaging(c, helper.DefaultLimit, helper.MaxLimit)
	if err != nil {
		return err
	}
	parentID, err := helper.QueryInt64(c, "parent_id")
	if err != nil {
		return err
	}
	completed, err := helper.QueryBool(c, "is_completed")
	if err != nil {
		return err
	}

	res, err := ctrl.Service.List(c.UserContext(), dto.ListActivitiesQuery{
		Paging:       paging,
		ParentType:   helper.QueryString(c, "parent_type"),
		ParentID:     parentID,
		ActivityType: helper.QueryString(c, "activity_type"),
		IsCompleted:  completed,
	})
	if err != nil {
		return err
	}
	return helper.JsonList(c, res.Data, res.Pagination)
}

func (ctrl *ActivityController) Get(c *fiber.Ctx) error {
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

func (ctrl *ActivityController) Create(c *fiber.Ctx) error {
	var body dto.CreateActivityRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	res, err := ctrl.Service.Create(c.UserContext(), body)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, res)
}

func (ctrl *ActivityController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	var body dto.PatchActivityRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	res, err := ctrl.Service.Update(c.UserContext(), id, body)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

func (ctrl *ActivityController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	if err := ctrl.Service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return helper.JsonMessage(c, "Activity deleted successfully")
}
