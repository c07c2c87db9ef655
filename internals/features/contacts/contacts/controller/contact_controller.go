package controller

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"mentoring_backend/internals/features/contacts/contacts/dto"
	"mentoring_backend/internals/features/contacts/contacts/model"
	helper "mentoring_backend/internals/helpers"
)

type ContactService interface {
	List(ctx context.Context, t model.ContactType, q dto.ListContactsQuery) (*dto.ContactList, error)
	DetailValues(ctx context.Context, t model.ContactType) ([]string, error)
	Get(ctx context.Context, t model.ContactType, id int64) (*dto.ContactDetailResponse, error)
	Create(ctx context.Context, t model.ContactType, p dto.ContactPayload) (*dto.ContactResponse, error)
	Update(ctx context.Context, t model.ContactType, id int64, p dto.ContactPayload) (*dto.ContactResponse, error)
	Delete(ctx context.Context, t model.ContactType, id int64) error
}

// ContactController serves one contact type; the router mounts one per type.
type ContactController struct {
	Service ContactService
	Type    model.ContactType
}

func NewContactController(svc ContactService, t model.ContactType) *ContactController {
	return &ContactController{Service: svc, Type: t}
}

// =============================
// 📄 List
// =============================
func (ctrl *ContactController) List(c *fiber.Ctx) error {
	paging, err := helper.ResolvePaging(c, helper.DefaultLimit, helper.MaxLimit)
	if err != nil {
		return err
	}
	q := dto.ListContactsQuery{
		Paging:     paging,
		Search:     helper.QueryString(c, "search"),
		Status:     helper.QueryString(c, "status"),
		FieldValue: helper.QueryString(c, ctrl.Type.SearchField()),
	}

	res, err := ctrl.Service.List(c.UserContext(), ctrl.Type, q)
	if err != nil {
		return err
	}
	return helper.JsonList(c, res.Data, res.Pagination)
}

// =============================
// 🏷️ Distinct detail values (specializations)
// =============================
func (ctrl *ContactController) DetailValues(c *fiber.Ctx) error {
	values, err := ctrl.Service.DetailValues(c.UserContext(), ctrl.Type)
	if err != nil {
		return err
	}
	return helper.JsonData(c, values)
}

// =============================
// 🔍 Get by id
// =============================
func (ctrl *ContactController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	res, err := ctrl.Service.Get(c.UserContext(), ctrl.Type, id)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// =============================
// ➕ Create
// =============================
func (ctrl *ContactController) Create(c *fiber.Ctx) error {
	p, err := dto.ParseContactPayload(c.Body())
	if err != nil {
		return err
	}
	res, err := ctrl.Service.Create(c.UserContext(), ctrl.Type, p)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, res)
}

// =============================
// 🔄 Update
// =============================
func (ctrl *ContactController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	p, err := dto.ParseContactPayload(c.Body())
	if err != nil {
		return err
	}
	res, err := ctrl.Service.Update(c.UserContext(), ctrl.Type, id, p)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// =============================
// 🗑️ Delete
// =============================
func (ctrl *ContactController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	if err := ctrl.Service.Delete(c.UserContext(), ctrl.Type, id); err != nil {
		return err
	}
	return helper.JsonMessage(c, ctrl.Type.Title()+" deleted successfully")
}
