// internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	userModel "tuning_backend/internals/features/users/user/model"
)

// IssueAccessToken signs an HS256 token carrying the user id in "id".
func IssueAccessToken(secret string, user userModel.UserModel, ttl time.Duration, now time.Time) (string, error) {
	if secret == "" {
		return "", errors.New("JWT_SECRET is not set")
	}
	claims := jwt.MapClaims{
		"id":        user.ID.String(),
		"user_name": user.UserName,
		"iat":       now.Unix(),
		"exp":       now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
