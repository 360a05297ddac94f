package helper

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteServiceErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
		field  string
	}{
		{"validation", NewValidationError("spoiler", "not compatible"), 400, "VALIDATION_ERROR", "spoiler"},
		{"invalid category", &InvalidCategoryError{Value: "engine"}, 400, "VALIDATION_ERROR", "part_type"},
		{"part not found", &PartNotFoundError{Slot: "spoiler", PartID: 9}, 400, "VALIDATION_ERROR", "spoiler"},
		{"not found", fmt.Errorf("customization 4: %w", ErrNotFound), 404, "NOT_FOUND", ""},
		{"fiber error", fiber.NewError(fiber.StatusUnauthorized, "nope"), 401, "UNAUTHORIZED", ""},
		{"pgx unique", &pgconn.PgError{Code: "23505", Message: "dup"}, 409, "CONFLICT", ""},
		{"pq fk", &pq.Error{Code: "23503", Message: "fk"}, 400, "BAD_REQUEST", ""},
		{"unknown", errors.New("boom"), 500, "INTERNAL_ERROR", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error { return WriteServiceError(c, tc.err) })

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)

			raw, _ := io.ReadAll(resp.Body)
			var body ErrorResponse
			require.NoError(t, json.Unmarshal(raw, &body))
			assert.False(t, body.Success)
			assert.Equal(t, tc.code, body.ErrorCode)
			if tc.field != "" {
				assert.NotEmpty(t, body.Errors[tc.field])
			}
			if tc.status == 500 {
				assert.NotContains(t, body.Message, "boom")
			}
		})
	}
}

func TestPartNotFoundIsNotFound(t *testing.T) {
	err := error(&PartNotFoundError{Slot: "discs", PartID: 1})
	assert.True(t, errors.Is(err, ErrNotFound))
}
