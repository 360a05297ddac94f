package helper

import "github.com/gofiber/fiber/v2"

// ErrorHandler is the fiber.Config ErrorHandler: *fiber.Error (auth middleware, 404 routes)
// and service errors come out in the same JSON envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return JsonError(c, fe.Code, fe.Message)
	}
	return WriteServiceError(c, err)
}
