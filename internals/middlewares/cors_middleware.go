// middlewares/cors.go

package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"tuning_backend/internals/configs"
)

// CorsMiddleware allows the configured front-end origins (CORS_ALLOW_ORIGINS).
func CorsMiddleware() fiber.Handler {
	origins := strings.TrimSpace(configs.CorsAllowOrigins)
	if origins == "" {
		origins = "http://localhost:5173, http://localhost:3000"
	}
	return cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		ExposeHeaders: "X-Request-ID",
		// fiber panics on credentials with a "*" origin
		AllowCredentials: !strings.Contains(origins, "*"),
	})
}
