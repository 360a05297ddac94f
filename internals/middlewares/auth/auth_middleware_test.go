package auth_test

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tuning_backend/internals/constants"
	authService "tuning_backend/internals/features/users/auth/service"
	userModel "tuning_backend/internals/features/users/user/model"
	helper "tuning_backend/internals/helpers"
	"tuning_backend/internals/middlewares/auth"
	"tuning_backend/internals/testutil"
)

func newApp(t *testing.T) (*fiber.App, *gorm.DB) {
	db := testutil.NewDB(t)
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	app.Get("/private", auth.AuthMiddleware(db), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(constants.LocUserID).(string))
	})
	return app, db
}

func sign(t *testing.T, u userModel.UserModel, ttl time.Duration) string {
	t.Helper()
	tok, err := authService.IssueAccessToken(testutil.JWTSecret, u, ttl, time.Now())
	require.NoError(t, err)
	return "Bearer " + tok
}

func get(t *testing.T, app *fiber.App, authz string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("GET", "/private", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestAuthMiddlewareRejects(t *testing.T) {
	app, db := newApp(t)
	u := testutil.User(t, db, "alice")

	code, _ := get(t, app, "")
	assert.Equal(t, fiber.StatusUnauthorized, code)

	code, _ = get(t, app, "Bearer not-a-jwt")
	assert.Equal(t, fiber.StatusUnauthorized, code)

	code, _ = get(t, app, sign(t, u, -time.Hour))
	assert.Equal(t, fiber.StatusUnauthorized, code)

	forged, err := authService.IssueAccessToken("other-secret", u, time.Hour, time.Now())
	require.NoError(t, err)
	code, _ = get(t, app, "Bearer "+forged)
	assert.Equal(t, fiber.StatusUnauthorized, code)

	ghost := userModel.UserModel{ID: u.ID, UserName: "ghost"}
	ghost.ID[0] ^= 0xff
	code, _ = get(t, app, sign(t, ghost, time.Hour))
	assert.Equal(t, fiber.StatusUnauthorized, code)
}

func TestAuthMiddlewareAccepts(t *testing.T) {
	app, db := newApp(t)
	u := testutil.User(t, db, "bob")

	code, body := get(t, app, sign(t, u, time.Hour))
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, u.ID.String(), body)

	require.NoError(t, db.Model(&userModel.UserModel{}).Where("id = ?", u.ID).UpdateColumn("is_active", false).Error)
	code, _ = get(t, app, sign(t, u, time.Hour))
	assert.Equal(t, fiber.StatusForbidden, code)
}
