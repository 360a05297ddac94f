package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tuning_backend/internals/features/catalog/parts/dto"
	"tuning_backend/internals/features/catalog/parts/model"
	"tuning_backend/internals/features/catalog/parts/service"
	helper "tuning_backend/internals/helpers"
)

// PartController serves one part category.
type PartController struct {
	DB       *gorm.DB
	Category model.PartCategory
	Service  *service.PartService
}

func NewPartController(db *gorm.DB, category model.PartCategory) *PartController {
	return &PartController{DB: db, Category: category, Service: service.NewPartService(db)}
}

// GET /api/{category}?car_model_id=&include_coming_soon=
func (pc *PartController) List(c *fiber.Ctx) error {
	carModelID, err := helper.ParseOptionalIDQuery(c, "car_model_id")
	if err != nil {
		return helper.WriteServiceError(c, err)
	}
	includeSoon, err := helper.QueryFlag(c, "include_coming_soon", false)
	if err != nil {
		return helper.WriteServiceError(c, err)
	}

	rows, err := pc.Service.ListParts(c.UserContext(), pc.Category, service.ListFilter{
		CarModelID:        carModelID,
		IncludeComingSoon: includeSoon,
	})
	if err != nil {
		return helper.WriteServiceError(c, err)
	}
	return helper.JsonList(c, "Parts fetched", dto.ToPartResponses(rows))
}

// GET /api/{category}/:id
func (pc *PartController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.WriteServiceError(c, err)
	}
	p, err := pc.Service.GetPart(c.UserContext(), pc.Category, id)
	if err != nil {
		return helper.WriteServiceError(c, err)
	}
	return helper.JsonOK(c, "Part fetched", dto.ToPartResponse(*p))
}
