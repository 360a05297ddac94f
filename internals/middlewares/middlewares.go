package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"tuning_backend/internals/configs"
	"tuning_backend/internals/middlewares/logger"
)

// SetupMiddlewares installs the global chain in order.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(RequestIDWithTimeout(configs.RequestTimeout))
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
