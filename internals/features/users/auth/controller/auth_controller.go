package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tuning_backend/internals/configs"
	"tuning_backend/internals/features/users/auth/dto"
	"tuning_backend/internals/features/users/auth/service"
	helper "tuning_backend/internals/helpers"
)

var validate = helper.NewValidator()

type AuthController struct {
	DB      *gorm.DB
	Service *service.AuthService
}

func NewAuthController(db *gorm.DB) *AuthController {
	verifier := service.GoogleVerifier{ClientID: configs.GoogleClientID}
	return NewAuthControllerWithVerifier(db, verifier)
}

// NewAuthControllerWithVerifier lets tests swap the Google verifier.
func NewAuthControllerWithVerifier(db *gorm.DB, verifier service.IDTokenVerifier) *AuthController {
	return &AuthController{
		DB:      db,
		Service: service.NewAuthService(db, verifier, configs.JWTSecret, configs.JWTTTL),
	}
}

// POST /api/auth/google
func (ac *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, "Invalid request body", helper.ValidationErrorsMap(err))
	}

	res, err := ac.Service.LoginGoogle(c.UserContext(), req.IDToken)
	if err != nil {
		return helper.WriteServiceError(c, err)
	}
	if res.Created {
		return helper.JsonCreated(c, "Login successful", dto.ToLoginResponse(*res))
	}
	return helper.JsonOK(c, "Login successful", dto.ToLoginResponse(*res))
}

// GET /api/auth/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	user, err := ac.Service.Me(c.UserContext(), userID)
	if err != nil {
		return helper.WriteServiceError(c, err)
	}
	return helper.JsonOK(c, "User fetched", dto.ToUserResponse(*user))
}
