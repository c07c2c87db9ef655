package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mentoring_backend/internals/features/partners/organizations/dto"
	"mentoring_backend/internals/features/partners/organizations/model"
	helper "mentoring_backend/internals/helpers"
)

type OrganizationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewOrganizationController(db *gorm.DB, v *validator.Validate) *OrganizationController {
	return &OrganizationController{DB: db, Validate: v}
}

var errOrganizationNotFound = helper.NotFound("Organization not found")

// GET /organizations?search=&status=
func (ctl *OrganizationController) List(c *fiber.Ctx) error {
	paging, err := helper.ResolvePaging(c, helper.DefaultLimit, helper.MaxLimit)
	if err != nil {
		return err
	}

	db := ctl.DB.WithContext(c.UserContext()).Model(&model.OrganizationModel{})
	if s := helper.QueryString(c, "search"); s != "" {
		like := "%" + helper.EscapeLike(s) + "%"
		db = db.Where("(name ILIKE ? OR COALESCE(email,'') ILIKE ? OR COALESCE(contact_person,'') ILIKE ?)", like, like, like)
	}
	if s := helper.QueryString(c, "status"); s != "" {
		db = db.Where("status = ?", s)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Internal(err)
	}
	var rows []model.OrganizationModel
	if err := db.Order("created_at DESC, id DESC").Limit(paging.Limit).Offset(paging.Offset).Find(&rows).Error; err != nil {
		return helper.Internal(err)
	}

	out := make([]dto.OrganizationResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToOrganizationResponse(m))
	}
	return helper.JsonList(c, out, helper.BuildPagination(total, paging))
}

func (ctl *OrganizationController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	m, err := ctl.find(ctl.DB.WithContext(c.UserContext()), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.ToOrganizationResponse(*m))
}

func (ctl *OrganizationController) Create(c *fiber.Ctx) error {
	var req dto.CreateOrganizationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(err)
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.Internal(err)
	}
	return helper.JsonCreated(c, dto.ToOrganizationResponse(m))
}

func (ctl *OrganizationController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.PatchOrganizationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := req.Validate(ctl.Validate); err != nil {
		return err
	}

	db := ctl.DB.WithContext(c.UserContext())
	if up := req.BuildUpdateMap(); len(up) > 0 {
		up["updated_at"] = time.Now()
		res := db.Model(&model.OrganizationModel{}).Where("id = ?", id).Updates(up)
		if res.Error != nil {
			return helper.Internal(res.Error)
		}
		if res.RowsAffected == 0 {
			return errOrganizationNotFound
		}
	}

	m, err := ctl.find(db, id)
	if err != nil {
		return err
	}
	return c.JSON(dto.ToOrganizationResponse(*m))
}

func (ctl *OrganizationController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.OrganizationModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.Internal(res.Error)
	}
	if res.RowsAffected == 0 {
		return errOrganizationNotFound
	}
	return helper.JsonMessage(c, "Organization deleted successfully")
}

func (ctl *OrganizationController) find(db *gorm.DB, id int64) (*model.OrganizationModel, error) {
	var m model.OrganizationModel
	if err := db.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errOrganizationNotFound
		}
		return nil, helper.Internal(err)
	}
	return &m, nil
}
