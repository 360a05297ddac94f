package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	customizationRoute "tuning_backend/internals/features/customizations/route"
	authRoute "tuning_backend/internals/features/users/auth/route"
)

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	authRoute.AuthRoutes(api, db)
}

// CustomizationRoutes are owner-scoped and require a JWT.
func CustomizationRoutes(api fiber.Router, db *gorm.DB) {
	customizationRoute.CustomizationUserRoutes(api, db)
}
