// file: internals/helpers/parse.go
package helper

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func ParseBoolLoose(s string) (bool, bool) {
	if s == "" {
		return false, false
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "t", "yes", "y", "on":
		return true, true
	case "0", "false", "f", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}

// ParseIDParam reads a positive integer path parameter. A malformed id
// cannot name any row, so it reports ErrNotFound.
func ParseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := strings.TrimSpace(c.Params(name))
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("%s %q: %w", name, raw, ErrNotFound)
	}
	return uint(n), nil
}

// ParseOptionalIDQuery returns nil when the query key is missing or empty.
func ParseOptionalIDQuery(c *fiber.Ctx, name string) (*uint, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return nil, NewValidationError(name, "%s must be a positive integer", name)
	}
	id := uint(n)
	return &id, nil
}

// QueryFlag reads an optional boolean query param, def when absent.
func QueryFlag(c *fiber.Ctx, name string, def bool) (bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	v, ok := ParseBoolLoose(raw)
	if !ok {
		return def, NewValidationError(name, "%s must be a boolean", name)
	}
	return v, nil
}

// HasExpand checks a comma separated ?expand= list.
func HasExpand(c *fiber.Ctx, key string) bool {
	for _, part := range strings.Split(c.Query("expand"), ",") {
		if strings.EqualFold(strings.TrimSpace(part), key) {
			return true
		}
	}
	return false
}
