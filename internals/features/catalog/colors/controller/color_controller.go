package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tuning_backend/internals/features/catalog/colors/dto"
	"tuning_backend/internals/features/catalog/colors/service"
	helper "tuning_backend/internals/helpers"
)

type ColorController struct {
	DB      *gorm.DB
	Service *service.ColorService
}

func NewColorController(db *gorm.DB) *ColorController {
	return &ColorController{DB: db, Service: service.NewColorService(db)}
}

// GET /api/colors
func (cc *ColorController) List(c *fiber.Ctx) error {
	rows, err := cc.Service.ListColors(c.UserContext())
	if err != nil {
		return helper.WriteServiceError(c, err)
	}
	return helper.JsonList(c, "Colors fetched", dto.ToColorResponses(rows))
}

// GET /api/colors/:id
func (cc *ColorController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.WriteServiceError(c, err)
	}
	col, err := cc.Service.GetColor(c.UserContext(), id)
	if err != nil {
		return helper.WriteServiceError(c, err)
	}
	return helper.JsonOK(c, "Color fetched", dto.ToColorResponse(*col))
}
