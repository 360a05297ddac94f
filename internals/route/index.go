// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	routeDetails "tuning_backend/internals/route/details"
)

var startTime = time.Now()

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	api := app.Group("/api")

	log.Println("[INFO] Mounting catalog routes...")
	routeDetails.CatalogPublicRoutes(api, db)

	log.Println("[INFO] Mounting auth routes...")
	routeDetails.AuthRoutes(api, db)

	log.Println("[INFO] Mounting customization routes...")
	routeDetails.CustomizationRoutes(api, db)
}
