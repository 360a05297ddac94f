package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	brandService "tuning_backend/internals/features/catalog/brands/service"
	"tuning_backend/internals/features/customizations/dto"
	"tuning_backend/internals/features/customizations/model"
	"tuning_backend/internals/features/customizations/service"
	helper "tuning_backend/internals/helpers"
)

var validate = helper.NewValidator()

type CustomizationController struct {
	DB        *gorm.DB
	Service   *service.CustomizationService
	Brands    *brandService.BrandService
	Validator *validator.Validate
}

func NewCustomizationController(db *gorm.DB) *CustomizationController {
	return &CustomizationController{
		DB:        db,
		Service:   service.NewCustomizationService(db),
		Brands:    brandService.NewBrandService(db),
		Validator: validate,
	}
}

// POST /api/customizations
func (cc *CustomizationController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CustomizationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	in, err := req.ToInput()
	if err != nil {
		return helper.WriteServiceError(c, err)
	}

	row, err := cc.Service.Create(c.UserContext(), userID, in)
	if err != nil {
		return helper.WriteServiceError(c, err)
	}
	log.Printf("[INFO] customization %d created by %s", row.ID, userID)

	detail, err := cc.detail(c, row)
	if err != nil {
		return helper.WriteServiceError(c, err)
	}
	return helper.JsonCreated(c, "Customization created", detail)
}

// GET /api/customizations
func (cc *CustomizationController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	rows, err := cc.Service.List(c.UserContext(), userID)
	if err != nil {
		return helper.WriteServiceError(c, err)
	}
	return helper.JsonList(c, "Customizations fetched", dto.ToCustomizationList(rows))
}

// GET /api/customizations/:id
func (cc *CustomizationController) Get(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.WriteServiceError(c, err)
	}
	row, err := cc.Service.Get(c.UserContext(), userID, id)
	if err != nil {
		return helper.WriteServiceError(c, err)
	}
	detail, err := cc.detail(c, row)
	if err != nil {
		return helper.WriteServiceError(c, err)
	}
	return helper.JsonOK(c, "Customization fetched", detail)
}

// PUT /api/customizations/:id
func (cc *CustomizationController) Replace(c *fiber.Ctx) error {
	return cc.update(c, false)
}

// PATCH /api/customizations/:id
func (cc *CustomizationController) Patch(c *fiber.Ctx) error {
	return cc.update(c, true)
}

func (cc *CustomizationController) update(c *fiber.Ctx, partial bool) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.WriteServiceError(c, err)
	}

	var req dto.CustomizationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	in, err := req.ToInput()
	if err != nil {
		return helper.WriteServiceError(c, err)
	}

	row, err := cc.Service.Update(c.UserContext(), userID, id, in, partial)
	if err != nil {
		return helper.WriteServiceError(c, err)
	}
	detail, err := cc.detail(c, row)
	if err != nil {
		return helper.WriteServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Customization updated", detail)
}

// PATCH /api/customizations/:id/update_part  {part_type, part_id}
func (cc *CustomizationController) UpdatePart(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.WriteServiceError(c, err)
	}

	var req dto.UpdatePartRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := cc.Validator.Struct(&req); err != nil || !req.PartID.Present() {
		return helper.JsonValidationError(c, "Both part_type and part_id are required", map[string][]string{
			"non_field_errors": {"Provide the part type (part_type) and the part ID (part_id)"},
		})
	}
	if req.PartID.Invalid() {
		return helper.JsonValidationError(c, "part_id must be a positive integer or null", map[string][]string{
			"part_id": {"Incorrect type. Expected pk value."},
		})
	}

	row, err := cc.Service.SwapPart(c.UserContext(), userID, id, req.PartType, req.PartID.ID())
	if err != nil {
		return helper.WriteServiceError(c, err)
	}
	detail, err := cc.detail(c, row)
	if err != nil {
		return helper.WriteServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Customization part updated", detail)
}

// DELETE /api/customizations/:id
func (cc *CustomizationController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.WriteServiceError(c, err)
	}
	if err := cc.Service.Delete(c.UserContext(), userID, id); err != nil {
		return helper.WriteServiceError(c, err)
	}
	return helper.JsonDeleted(c, "Customization deleted", fiber.Map{"id": id})
}

func (cc *CustomizationController) detail(c *fiber.Ctx, row *model.CustomizationModel) (dto.CustomizationDetail, error) {
	count, err := cc.Brands.CountModels(c.UserContext(), row.CarModel.BrandID)
	if err != nil {
		return dto.CustomizationDetail{}, err
	}
	return dto.ToCustomizationDetail(*row, count), nil
}
