// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "tuning_backend/internals/features/users/user/model"
)

/* ====================== USER ====================== */

func FindUserByGoogleID(ctx context.Context, db *gorm.DB, googleID string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.WithContext(ctx).Where("google_id = ?", googleID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByEmail(ctx context.Context, db *gorm.DB, email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func CreateUser(ctx context.Context, db *gorm.DB, user *userModel.UserModel) error {
	return db.WithContext(ctx).Create(user).Error
}

func LinkGoogleID(ctx context.Context, db *gorm.DB, userID uuid.UUID, googleID string) error {
	return db.WithContext(ctx).
		Model(&userModel.UserModel{}).
		Where("id = ?", userID).
		Update("google_id", googleID).Error
}
