package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tuning_backend/internals/features/catalog/brands/controller"
)

func BrandPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewBrandController(db)

	g := api.Group("/brands")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.Get)
}
