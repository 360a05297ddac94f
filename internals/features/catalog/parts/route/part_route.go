package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tuning_backend/internals/features/catalog/parts/controller"
	"tuning_backend/internals/features/catalog/parts/model"
)

// PartPublicRoutes mounts /spoilers, /discs, ... one group per category.
func PartPublicRoutes(api fiber.Router, db *gorm.DB) {
	for _, category := range model.Categories {
		ctrl := controller.NewPartController(db, category)

		g := api.Group("/" + category.Slug())
		g.Get("/", ctrl.List)
		g.Get("/:id", ctrl.Get)
	}
}
