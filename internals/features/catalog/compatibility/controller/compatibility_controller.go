package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tuning_backend/internals/features/catalog/compatibility/dto"
	"tuning_backend/internals/features/catalog/compatibility/service"
	helper "tuning_backend/internals/helpers"
)

type CompatibilityController struct {
	DB       *gorm.DB
	Resolver *service.Resolver
}

func NewCompatibilityController(db *gorm.DB) *CompatibilityController {
	return &CompatibilityController{DB: db, Resolver: service.NewResolver(db)}
}

// GET /api/models/:id/compatible-parts?include_coming_soon=
func (cc *CompatibilityController) CompatibleParts(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.WriteServiceError(c, err)
	}
	includeSoon, err := helper.QueryFlag(c, "include_coming_soon", false)
	if err != nil {
		return helper.WriteServiceError(c, err)
	}

	res, err := cc.Resolver.Resolve(c.UserContext(), id, includeSoon)
	if err != nil {
		return helper.WriteServiceError(c, err)
	}
	return helper.JsonOK(c, "Compatible parts fetched", dto.ToCompatibleParts(res.Parts, res.Colors))
}
