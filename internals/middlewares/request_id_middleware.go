package middlewares

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/utils"

	"tuning_backend/internals/constants"
)

// RequestIDWithTimeout tags every request with X-Request-ID and bounds
// its user context by timeout.
func RequestIDWithTimeout(timeout time.Duration) fiber.Handler {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return func(c *fiber.Ctx) error {
		rid := c.Get("X-Request-ID")
		if rid == "" {
			rid = utils.UUID()
		}
		c.Set("X-Request-ID", rid)
		c.Locals(constants.LocRequestID, rid)

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}
