package dto

import (
	"time"

	"github.com/google/uuid"

	"tuning_backend/internals/features/users/auth/service"
	userModel "tuning_backend/internals/features/users/user/model"
)

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int64        `json:"expires_in"`
	User        UserResponse `json:"user"`
}

func ToUserResponse(u userModel.UserModel) UserResponse {
	return UserResponse{
		ID:        u.ID,
		UserName:  u.UserName,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
	}
}

func ToLoginResponse(r service.LoginResult) LoginResponse {
	return LoginResponse{
		AccessToken: r.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(r.ExpiresIn.Seconds()),
		User:        ToUserResponse(r.User),
	}
}
