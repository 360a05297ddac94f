package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tuning_backend/internals/features/catalog/car_models/controller"
	compatController "tuning_backend/internals/features/catalog/compatibility/controller"
)

func CarModelPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCarModelController(db)
	compat := compatController.NewCompatibilityController(db)

	g := api.Group("/models")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.Get)
	g.Get("/:id/compatible-parts", compat.CompatibleParts)
}
