package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tuning_backend/internals/features/catalog/colors/controller"
)

func ColorPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewColorController(db)

	g := api.Group("/colors")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.Get)
}
