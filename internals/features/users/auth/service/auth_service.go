// internals/features/users/auth/service/auth_service.go
package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authRepo "tuning_backend/internals/features/users/auth/repository"
	userModel "tuning_backend/internals/features/users/user/model"
	helper "tuning_backend/internals/helpers"
)

const maxUserNameLen = 150

type LoginResult struct {
	AccessToken string
	ExpiresIn   time.Duration
	User        userModel.UserModel
	Created     bool
}

type AuthService struct {
	DB       *gorm.DB
	Verifier IDTokenVerifier
	Secret   string
	TTL      time.Duration
	Now      func() time.Time
}

func NewAuthService(db *gorm.DB, verifier IDTokenVerifier, secret string, ttl time.Duration) *AuthService {
	return &AuthService{DB: db, Verifier: verifier, Secret: secret, TTL: ttl, Now: time.Now}
}

/* ==========================
   LOGIN GOOGLE
========================== */

// LoginGoogle signs a user in with a Google ID token, creating the account
// on first sign-in. An account needs both an email and a username.
func (s *AuthService) LoginGoogle(ctx context.Context, idToken string) (*LoginResult, error) {
	identity, err := s.Verifier.Verify(idToken)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid Google ID Token")
	}
	if identity.Subject == "" {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid Google ID Token")
	}

	user, created, err := s.findOrCreate(ctx, identity)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, fiber.NewError(fiber.StatusForbidden, "User account is disabled")
	}

	token, err := IssueAccessToken(s.Secret, *user, s.TTL, s.Now())
	if err != nil {
		log.Println("[ERROR] issue access token:", err)
		return nil, err
	}
	return &LoginResult{AccessToken: token, ExpiresIn: s.TTL, User: *user, Created: created}, nil
}

func (s *AuthService) findOrCreate(ctx context.Context, id *GoogleIdentity) (*userModel.UserModel, bool, error) {
	user, err := authRepo.FindUserByGoogleID(ctx, s.DB, id.Subject)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	email := strings.TrimSpace(id.Email)
	if email == "" {
		return nil, false, helper.NewValidationError("email", "Google account has no email address")
	}

	// same email signed up before: attach the Google identity
	if user, err := authRepo.FindUserByEmail(ctx, s.DB, email); err == nil {
		if err := authRepo.LinkGoogleID(ctx, s.DB, user.ID, id.Subject); err != nil {
			return nil, false, err
		}
		sub := id.Subject
		user.GoogleID = &sub
		return user, false, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	base := helper.NormalizeUsername(strings.SplitN(email, "@", 2)[0], maxUserNameLen-8)
	if base == "" {
		base = helper.NormalizeUsername(id.Name, maxUserNameLen-8)
	}
	if base == "" {
		return nil, false, helper.NewValidationError("user_name", "could not derive a username from the Google account")
	}
	userName, err := helper.EnsureUniqueValue(s.DB.WithContext(ctx), base, "users", "user_name")
	if err != nil {
		return nil, false, err
	}

	first, last := splitName(id.Name)
	sub := id.Subject
	newUser := userModel.UserModel{
		ID:        uuid.New(),
		UserName:  userName,
		Email:     email,
		GoogleID:  &sub,
		FirstName: first,
		LastName:  last,
		IsActive:  true,
	}
	if err := authRepo.CreateUser(ctx, s.DB, &newUser); err != nil {
		return nil, false, err
	}
	log.Printf("[INFO] user %s created from Google sign-in", newUser.UserName)
	return &newUser, true, nil
}

// Me returns the caller's account.
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*userModel.UserModel, error) {
	user, err := authRepo.FindUserByID(ctx, s.DB, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func splitName(full string) (string, string) {
	parts := strings.Fields(full)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}
