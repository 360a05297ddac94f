package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tuning_backend/internals/features/catalog/brands/dto"
	"tuning_backend/internals/features/catalog/brands/service"
	helper "tuning_backend/internals/helpers"
)

type BrandController struct {
	DB      *gorm.DB
	Service *service.BrandService
}

func NewBrandController(db *gorm.DB) *BrandController {
	return &BrandController{DB: db, Service: service.NewBrandService(db)}
}

// GET /api/brands
func (bc *BrandController) List(c *fiber.Ctx) error {
	rows, err := bc.Service.ListBrands(c.UserContext())
	if err != nil {
		return helper.WriteServiceError(c, err)
	}
	out := make([]dto.BrandResponse, 0, len(rows))
	for _, b := range rows {
		out = append(out, dto.ToBrandResponse(b.BrandModel, b.ModelCount))
	}
	return helper.JsonList(c, "Brands fetched", out)
}

// GET /api/brands/:id
func (bc *BrandController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.WriteServiceError(c, err)
	}
	b, err := bc.Service.GetBrand(c.UserContext(), id)
	if err != nil {
		return helper.WriteServiceError(c, err)
	}
	return helper.JsonOK(c, "Brand fetched", dto.ToBrandResponse(b.BrandModel, b.ModelCount))
}
