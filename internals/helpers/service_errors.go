// file: internals/helpers/service_errors.go
package helper

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
)

// ErrNotFound covers unknown ids and rows owned by somebody else.
var ErrNotFound = errors.New("not found")

// ValidationError names the offending input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// InvalidCategoryError is returned for an unknown part slot key.
type InvalidCategoryError struct {
	Value string
}

func (e *InvalidCategoryError) Error() string {
	return fmt.Sprintf("unknown part type: %s", e.Value)
}

// PartNotFoundError: the requested part does not exist or does not fit the car model.
type PartNotFoundError struct {
	Slot   string
	PartID uint
}

func (e *PartNotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found or not compatible with the car model", e.Slot, e.PartID)
}

func (e *PartNotFoundError) Unwrap() error { return ErrNotFound }

// WriteServiceError renders a service-layer error in the standard envelope.
func WriteServiceError(c *fiber.Ctx, err error) error {
	var ve *ValidationError
	var ice *InvalidCategoryError
	var pnf *PartNotFoundError
	var fe *fiber.Error

	switch {
	case err == nil:
		return nil
	case errors.As(err, &ve):
		return JsonValidationError(c, ve.Error(), map[string][]string{ve.Field: {ve.Message}})
	case errors.As(err, &ice):
		return JsonValidationError(c, ice.Error(), map[string][]string{"part_type": {ice.Error()}})
	case errors.As(err, &pnf):
		return JsonValidationError(c, pnf.Error(), map[string][]string{pnf.Slot: {pnf.Error()}})
	case errors.Is(err, ErrNotFound):
		return JsonError(c, fiber.StatusNotFound, "Not found")
	case errors.As(err, &fe):
		return JsonError(c, fe.Code, fe.Message)
	}

	status, msg := MapPGError(err)
	if status >= 500 {
		log.Printf("[ERROR] %s %s: %v", c.Method(), c.OriginalURL(), err)
		msg = "Internal server error"
	}
	return JsonError(c, status, msg)
}
