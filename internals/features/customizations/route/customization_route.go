package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tuning_backend/internals/features/customizations/controller"
	authMiddleware "tuning_backend/internals/middlewares/auth"
)

// CustomizationUserRoutes mounts /customizations behind the JWT middleware.
func CustomizationUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCustomizationController(db)

	g := api.Group("/customizations", authMiddleware.AuthMiddleware(db))
	g.Post("/", ctrl.Create)
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.Get)
	g.Put("/:id", ctrl.Replace)
	g.Patch("/:id", ctrl.Patch)
	g.Patch("/:id/update_part", ctrl.UpdatePart)
	g.Delete("/:id", ctrl.Delete)
}
