// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"tuning_backend/internals/configs"
	"tuning_backend/internals/constants"
)

// AuthMiddleware requires a valid bearer JWT issued by /api/auth/google and
// stores the caller's id in Locals("user_id").
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Authentication credentials were not provided")
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET is empty")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{
			SkipClaimsValidation: true,
			ValidMethods:         []string{jwt.SigningMethodHS256.Alg()},
		}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[WARN] token parse:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid token")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		userID, err := extractUserID(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}

		if err := ensureUserActive(db, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - User not found")
			}
			if errors.Is(err, errUserInactive) {
				return fiber.NewError(fiber.StatusForbidden, "User account is disabled")
			}
			log.Println("[ERROR] ensureUserActive:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal server error")
		}

		c.Locals(constants.LocUserID, userID.String())
		storeBasicClaimsToLocals(c, claims)
		return c.Next()
	}
}
