package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mentoring_backend/internals/features/partners/companies/dto"
	"mentoring_backend/internals/features/partners/companies/model"
	helper "mentoring_backend/internals/helpers"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

type CompanyController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCompanyController(db *gorm.DB, v *validator.Validate) *CompanyController {
	return &CompanyController{DB: db, Validate: v}
}

var errCompanyNotFound = helper.NotFound("Company not found")

// =============================
// 📄 List
// =============================
func (ctl *CompanyController) List(c *fiber.Ctx) error {
	paging, err := helper.ResolvePaging(c, helper.DefaultLimit, helper.MaxLimit)
	if err != nil {
		return err
	}
	q := dto.ListCompaniesQuery{
		Paging: paging,
		Search: helper.QueryString(c, "search"),
		Status: helper.QueryString(c, "status"),
	}

	db := ctl.DB.WithContext(c.UserContext()).Model(&model.PartnerCompanyModel{})
	if q.Search != "" {
		like := "%" + helper.EscapeLike(q.Search) + "%"
		db = db.Where("(name ILIKE ? OR COALESCE(email,'') ILIKE ? OR COALESCE(industry,'') ILIKE ?)", like, like, like)
	}
	if q.Status != "" {
		db = db.Where("status = ?", q.Status)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.Internal(err)
	}

	var rows []model.PartnerCompanyModel
	if err := db.Order("created_at DESC, id DESC").Limit(q.Limit).Offset(q.Offset).Find(&rows).Error; err != nil {
		return helper.Internal(err)
	}

	out := make([]dto.CompanyResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToCompanyResponse(m))
	}
	return helper.JsonList(c, out, helper.BuildPagination(total, q.Paging))
}

// =============================
// 🔍 Get
// =============================
func (ctl *CompanyController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	m, err := ctl.find(ctl.DB.WithContext(c.UserContext()), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.ToCompanyResponse(*m))
}

// =============================
// ➕ Create
// =============================
func (ctl *CompanyController) Create(c *fiber.Ctx) error {
	var req dto.CreateCompanyRequest
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
	return helper.JsonCreated(c, dto.ToCompanyResponse(m))
}

// =============================
// ✏️ Update (partial)
// =============================
func (ctl *CompanyController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.PatchCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := req.Validate(ctl.Validate); err != nil {
		return err
	}

	db := ctl.DB.WithContext(c.UserContext())
	up := req.BuildUpdateMap()
	if len(up) > 0 {
		up["updated_at"] = time.Now()
		res := db.Model(&model.PartnerCompanyModel{}).Where("id = ?", id).Updates(up)
		if res.Error != nil {
			return helper.Internal(res.Error)
		}
		if res.RowsAffected == 0 {
			return errCompanyNotFound
		}
	}

	m, err := ctl.find(db, id)
	if err != nil {
		return err
	}
	return c.JSON(dto.ToCompanyResponse(*m))
}

// =============================
// 🗑️ Delete
// =============================
// Contacts of the company stay; their company_id is cleared in the same transaction.
func (ctl *CompanyController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}

	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`UPDATE contacts SET company_id = NULL, updated_at = NOW() WHERE company_id = ?`, id).Error; err != nil {
			return helper.Internal(err)
		}
		res := tx.Delete(&model.PartnerCompanyModel{}, "id = ?", id)
		if res.Error != nil {
			return helper.Internal(res.Error)
		}
		if res.RowsAffected == 0 {
			return errCompanyNotFound
		}
		return nil
	})
	if err != nil {
		return helper.AsAppError(err)
	}
	return helper.JsonMessage(c, "Company deleted successfully")
}

func (ctl *CompanyController) find(db *gorm.DB, id int64) (*model.PartnerCompanyModel, error) {
	var m model.PartnerCompanyModel
	if err := db.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errCompanyNotFound
		}
		return nil, helper.Internal(err)
	}
	return &m, nil
}
