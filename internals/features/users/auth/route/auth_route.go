// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "tuning_backend/internals/features/users/auth/controller"
	rateLimiter "tuning_backend/internals/middlewares"
	authMiddleware "tuning_backend/internals/middlewares/auth"
)

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	AuthRoutesWithController(api, db, controller.NewAuthController(db))
}

// AuthRoutesWithController mounts /auth/google (public) and /auth/me (JWT).
func AuthRoutesWithController(api fiber.Router, db *gorm.DB, ctrl *controller.AuthController) {
	g := api.Group("/auth")
	g.Post("/google", rateLimiter.LoginRateLimiter(), ctrl.LoginGoogle)
	g.Get("/me", authMiddleware.AuthMiddleware(db), ctrl.Me)
}
