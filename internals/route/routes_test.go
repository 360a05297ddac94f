package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	authService "tuning_backend/internals/features/users/auth/service"
	userModel "tuning_backend/internals/features/users/user/model"
	helper "tuning_backend/internals/helpers"
	"tuning_backend/internals/testutil"
)

type envelope struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message"`
	ErrorCode string              `json:"error_code"`
	Errors    map[string][]string `json:"errors"`
	Data      json.RawMessage     `json:"data"`
}

type harness struct {
	t   *testing.T
	app *fiber.App
	db  *gorm.DB
	cat testutil.Catalog
}

func newHarness(t *testing.T) *harness {
	db := testutil.NewDB(t)
	cat := testutil.SeedCatalog(t, db)
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	SetupRoutes(app, db)
	return &harness{t: t, app: app, db: db, cat: cat}
}

func bearer(t *testing.T, u userModel.UserModel) string {
	tok, err := authService.IssueAccessToken(testutil.JWTSecret, u, time.Hour, time.Now())
	require.NoError(t, err)
	return "Bearer " + tok
}

func (h *harness) do(method, path, token string, body any) (int, envelope, string) {
	h.t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(h.t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := h.app.Test(req, -1)
	require.NoError(h.t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(h.t, err)

	var env envelope
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(h.t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp.StatusCode, env, string(raw)
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

func TestCatalogRoutes(t *testing.T) {
	h := newHarness(t)

	code, env, _ := h.do("GET", "/api/brands", "", nil)
	require.Equal(t, fiber.StatusOK, code)
	brands := decode[[]map[string]any](t, env.Data)
	require.Len(t, brands, 1)
	assert.Equal(t, "Acme", brands[0]["name"])
	assert.EqualValues(t, 3, brands[0]["model_count"])
	assert.Equal(t, testutil.MediaBaseURL+"/brands/Acme.png", brands[0]["logo"])

	code, env, _ = h.do("GET", "/api/models", "", nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.Len(t, decode[[]map[string]any](t, env.Data), 2)

	code, env, _ = h.do("GET", "/api/models?include_coming_soon=true", "", nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.Len(t, decode[[]map[string]any](t, env.Data), 3)

	code, _, _ = h.do("GET", "/api/models?brand_id=abc", "", nil)
	assert.Equal(t, fiber.StatusBadRequest, code)

	code, _, _ = h.do("GET", fmt.Sprintf("/api/models/%d?brand_id=%d", h.cat.X200.ID, h.cat.Acme.ID+1), "", nil)
	assert.Equal(t, fiber.StatusNotFound, code)

	// single-row lookups ignore the coming soon flag
	code, _, _ = h.do("GET", fmt.Sprintf("/api/models/%d", h.cat.Upcoming.ID), "", nil)
	assert.Equal(t, fiber.StatusOK, code)

	code, env, _ = h.do("GET", fmt.Sprintf("/api/spoilers?car_model_id=%d", h.cat.Y100.ID), "", nil)
	require.Equal(t, fiber.StatusOK, code)
	spoilers := decode[[]map[string]any](t, env.Data)
	require.Len(t, spoilers, 1)
	assert.Equal(t, "S2", spoilers[0]["name"])

	code, _, _ = h.do("GET", fmt.Sprintf("/api/discs/%d", h.cat.S1.ID), "", nil)
	assert.Equal(t, fiber.StatusNotFound, code)

	code, _, _ = h.do("GET", "/api/rear-bumpers", "", nil)
	assert.Equal(t, fiber.StatusOK, code)

	code, env, _ = h.do("GET", "/api/colors", "", nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.Len(t, decode[[]map[string]any](t, env.Data), 2)

	code, _, _ = h.do("GET", "/api/models/not-a-number", "", nil)
	assert.Equal(t, fiber.StatusNotFound, code)
}

func TestCompatiblePartsBundle(t *testing.T) {
	h := newHarness(t)

	code, env, _ := h.do("GET", fmt.Sprintf("/api/models/%d/compatible-parts", h.cat.Y100.ID), "", nil)
	require.Equal(t, fiber.StatusOK, code)

	data := string(env.Data)
	keys := []string{"spoilers", "discs", "restylings", "bumpers", "rear_bumpers", "side_skirts", "tintings", "colors"}
	last := -1
	for _, k := range keys {
		i := strings.Index(data, `"`+k+`"`)
		require.GreaterOrEqual(t, i, 0, k)
		assert.Greater(t, i, last, k)
		last = i
	}

	bundle := decode[map[string][]map[string]any](t, env.Data)
	require.Len(t, bundle["spoilers"], 1)
	assert.Equal(t, "S2", bundle["spoilers"][0]["name"])
	assert.Empty(t, bundle["bumpers"])
	assert.Len(t, bundle["colors"], 2)

	code, _, _ = h.do("GET", "/api/models/9999/compatible-parts", "", nil)
	assert.Equal(t, fiber.StatusNotFound, code)

	code, env, _ = h.do("GET", fmt.Sprintf("/api/models/%d?expand=compatible_parts", h.cat.X200.ID), "", nil)
	require.Equal(t, fiber.StatusOK, code)
	expanded := decode[map[string]any](t, env.Data)
	assert.Equal(t, "X200", expanded["name"])
	assert.Len(t, expanded["spoilers"], 2)
	assert.NotContains(t, expanded, "colors")
}

func TestCustomizationFlow(t *testing.T) {
	h := newHarness(t)
	me := bearer(t, testutil.User(t, h.db, "driver"))
	other := bearer(t, testutil.User(t, h.db, "stranger"))

	code, _, _ := h.do("GET", "/api/customizations", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, code)

	code, env, _ := h.do("POST", "/api/customizations", me, map[string]any{
		"name":      "track",
		"car_model": h.cat.X200.ID,
		"spoiler":   h.cat.S1.ID,
		"color":     fmt.Sprint(h.cat.Red.ID),
		"user":      "ignored",
	})
	require.Equal(t, fiber.StatusCreated, code, env.Message)
	created := decode[map[string]any](t, env.Data)
	id := uint(created["id"].(float64))
	assert.Equal(t, "track", created["name"])
	assert.Equal(t, "S1", created["spoiler"].(map[string]any)["name"])
	assert.Equal(t, "Red", created["color"].(map[string]any)["name"])
	assert.Nil(t, created["discs"])
	carModel := created["car_model"].(map[string]any)
	assert.EqualValues(t, 3, carModel["brand"].(map[string]any)["model_count"])

	path := fmt.Sprintf("/api/customizations/%d", id)

	code, env, _ = h.do("GET", "/api/customizations", me, nil)
	require.Equal(t, fiber.StatusOK, code)
	list := decode[[]map[string]any](t, env.Data)
	require.Len(t, list, 1)
	assert.Equal(t, "Acme X200", list[0]["car_model_name"])

	code, _, _ = h.do("GET", path, other, nil)
	assert.Equal(t, fiber.StatusNotFound, code)

	code, env, _ = h.do("PATCH", path, me, map[string]any{"color": nil})
	require.Equal(t, fiber.StatusOK, code)
	patched := decode[map[string]any](t, env.Data)
	assert.Nil(t, patched["color"])
	assert.NotNil(t, patched["spoiler"])
	assert.Equal(t, "track", patched["name"])

	code, env, _ = h.do("PUT", path, me, map[string]any{"car_model": h.cat.Y100.ID, "spoiler": h.cat.S1.ID})
	require.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION_ERROR", env.ErrorCode)
	require.NotEmpty(t, env.Errors["spoiler"])
	assert.Contains(t, env.Errors["spoiler"][0], "Acme Y100")

	code, env, _ = h.do("PUT", path, me, map[string]any{"car_model": h.cat.Y100.ID})
	require.Equal(t, fiber.StatusOK, code)
	replaced := decode[map[string]any](t, env.Data)
	assert.Equal(t, "", replaced["name"])
	assert.Nil(t, replaced["spoiler"])

	code, _, _ = h.do("DELETE", path, other, nil)
	assert.Equal(t, fiber.StatusNotFound, code)
	code, _, _ = h.do("DELETE", path, me, nil)
	assert.Equal(t, fiber.StatusOK, code)
	code, _, _ = h.do("GET", path, me, nil)
	assert.Equal(t, fiber.StatusNotFound, code)
}

func TestUpdatePartRoute(t *testing.T) {
	h := newHarness(t)
	u := testutil.User(t, h.db, "swapper")
	me := bearer(t, u)
	onX := testutil.Customization(t, h.db, u, h.cat.X200, "x")
	onY := testutil.Customization(t, h.db, u, h.cat.Y100, "y")
	pathX := fmt.Sprintf("/api/customizations/%d/update_part", onX.ID)
	pathY := fmt.Sprintf("/api/customizations/%d/update_part", onY.ID)

	code, env, _ := h.do("PATCH", pathX, me, map[string]any{"part_type": "spoiler", "part_id": h.cat.S1.ID})
	require.Equal(t, fiber.StatusOK, code, env.Message)
	assert.Equal(t, "S1", decode[map[string]any](t, env.Data)["spoiler"].(map[string]any)["name"])

	code, env, _ = h.do("PATCH", pathY, me, map[string]any{"part_type": "spoiler", "part_id": h.cat.S1.ID})
	require.Equal(t, fiber.StatusBadRequest, code)
	assert.Contains(t, env.Errors, "spoiler")

	code, env, _ = h.do("PATCH", pathX, me, map[string]any{"part_type": "engine", "part_id": 1})
	require.Equal(t, fiber.StatusBadRequest, code)
	assert.Contains(t, env.Errors, "part_type")

	code, env, _ = h.do("PATCH", pathX, me, map[string]any{"part_id": 1})
	require.Equal(t, fiber.StatusBadRequest, code)
	assert.Contains(t, env.Errors, "non_field_errors")

	code, env, _ = h.do("PATCH", pathX, me, map[string]any{"part_type": "spoiler"})
	require.Equal(t, fiber.StatusBadRequest, code)
	assert.Contains(t, env.Errors, "non_field_errors")

	code, env, _ = h.do("PATCH", pathX, me, map[string]any{"part_type": "spoiler", "part_id": "abc"})
	require.Equal(t, fiber.StatusBadRequest, code)
	assert.Contains(t, env.Errors, "part_id")

	code, env, _ = h.do("PATCH", pathX, me, map[string]any{"part_type": "spoiler", "part_id": nil})
	require.Equal(t, fiber.StatusOK, code)
	assert.Nil(t, decode[map[string]any](t, env.Data)["spoiler"])
}

func TestAuthMeAndHealth(t *testing.T) {
	h := newHarness(t)
	u := testutil.User(t, h.db, "me")

	code, env, _ := h.do("GET", "/api/auth/me", bearer(t, u), nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "me", decode[map[string]any](t, env.Data)["user_name"])

	code, env, _ = h.do("GET", "/api/auth/me", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, code)
	assert.Equal(t, "UNAUTHORIZED", env.ErrorCode)

	code, env, _ = h.do("POST", "/api/auth/google", "", map[string]any{})
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Contains(t, env.Errors, "id_token")

	code, _, raw := h.do("GET", "/health", "", nil)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Contains(t, raw, "Connected")
}
