package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tuning_backend/internals/features/users/auth/service"
	userModel "tuning_backend/internals/features/users/user/model"
	helper "tuning_backend/internals/helpers"
	"tuning_backend/internals/testutil"
)

type stubVerifier struct {
	identity *service.GoogleIdentity
	err      error
}

func (s stubVerifier) Verify(string) (*service.GoogleIdentity, error) {
	return s.identity, s.err
}

func login(t *testing.T, svc *service.AuthService, id service.GoogleIdentity) (*service.LoginResult, error) {
	t.Helper()
	svc.Verifier = stubVerifier{identity: &id}
	return svc.LoginGoogle(context.Background(), "token")
}

func TestLoginGoogleCreatesThenReuses(t *testing.T) {
	db := testutil.NewDB(t)
	now := time.Now()
	svc := service.NewAuthService(db, nil, testutil.JWTSecret, time.Hour)
	svc.Now = func() time.Time { return now }

	id := service.GoogleIdentity{Subject: "g-1", Email: "Jane.Doe@example.com", Name: "Jane van Doe"}
	res, err := login(t, svc, id)
	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.Equal(t, time.Hour, res.ExpiresIn)
	assert.Equal(t, "Jane", res.User.FirstName)
	assert.Equal(t, "van Doe", res.User.LastName)
	assert.NotEmpty(t, res.User.UserName)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(res.AccessToken, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testutil.JWTSecret), nil
	})
	require.NoError(t, err)
	assert.Equal(t, res.User.ID.String(), claims["id"])
	assert.EqualValues(t, now.Add(time.Hour).Unix(), claims["exp"])

	again, err := login(t, svc, id)
	require.NoError(t, err)
	assert.False(t, again.Created)
	assert.Equal(t, res.User.ID, again.User.ID)

	var n int64
	require.NoError(t, db.Model(&userModel.UserModel{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestLoginGoogleLinksByEmail(t *testing.T) {
	db := testutil.NewDB(t)
	existing := testutil.User(t, db, "sam")
	svc := service.NewAuthService(db, nil, testutil.JWTSecret, time.Hour)

	res, err := login(t, svc, service.GoogleIdentity{Subject: "g-sam", Email: "SAM@example.com"})
	require.NoError(t, err)
	assert.False(t, res.Created)
	assert.Equal(t, existing.ID, res.User.ID)

	var got userModel.UserModel
	require.NoError(t, db.First(&got, "id = ?", existing.ID).Error)
	require.NotNil(t, got.GoogleID)
	assert.Equal(t, "g-sam", *got.GoogleID)
}

func TestLoginGoogleUniqueUserName(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.User(t, db, "kim")
	svc := service.NewAuthService(db, nil, testutil.JWTSecret, time.Hour)

	res, err := login(t, svc, service.GoogleIdentity{Subject: "g-kim", Email: "kim@other.org"})
	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.Equal(t, "kim_2", res.User.UserName)
}

func TestLoginGoogleRejects(t *testing.T) {
	db := testutil.NewDB(t)
	svc := service.NewAuthService(db, nil, testutil.JWTSecret, time.Hour)

	svc.Verifier = stubVerifier{err: service.ErrInvalidIDToken}
	_, err := svc.LoginGoogle(context.Background(), "bad")
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, fiber.StatusUnauthorized, fe.Code)

	_, err = login(t, svc, service.GoogleIdentity{Subject: "g-x"})
	var ve *helper.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "email", ve.Field)

	u := testutil.User(t, db, "blocked")
	require.NoError(t, db.Model(&userModel.UserModel{}).Where("id = ?", u.ID).UpdateColumn("is_active", false).Error)
	_, err = login(t, svc, service.GoogleIdentity{Subject: "g-b", Email: u.Email})
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, fiber.StatusForbidden, fe.Code)
}

func TestIssueAccessTokenNeedsSecret(t *testing.T) {
	_, err := service.IssueAccessToken("", userModel.UserModel{}, time.Hour, time.Now())
	assert.Error(t, err)
}
