package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	brandRoute "tuning_backend/internals/features/catalog/brands/route"
	carModelRoute "tuning_backend/internals/features/catalog/car_models/route"
	colorRoute "tuning_backend/internals/features/catalog/colors/route"
	partRoute "tuning_backend/internals/features/catalog/parts/route"
)

// CatalogPublicRoutes mounts the read-only catalog.
func CatalogPublicRoutes(api fiber.Router, db *gorm.DB) {
	brandRoute.BrandPublicRoutes(api, db)
	carModelRoute.CarModelPublicRoutes(api, db)
	partRoute.PartPublicRoutes(api, db)
	colorRoute.ColorPublicRoutes(api, db)
}
