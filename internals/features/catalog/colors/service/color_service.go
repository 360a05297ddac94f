// internals/features/catalog/colors/service/color_service.go
package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tuning_backend/internals/features/catalog/colors/model"
	helper "tuning_backend/internals/helpers"
)

var validate = helper.NewValidator()

type ColorService struct {
	DB *gorm.DB
}

func NewColorService(db *gorm.DB) *ColorService {
	return &ColorService{DB: db}
}

// ListColors returns every color; colors are never filtered.
func (s *ColorService) ListColors(ctx context.Context) ([]model.ColorModel, error) {
	var rows []model.ColorModel
	err := s.DB.WithContext(ctx).
		Order("display_order ASC, name ASC").
		Find(&rows).Error
	return rows, err
}

func (s *ColorService) GetColor(ctx context.Context, id uint) (*model.ColorModel, error) {
	var c model.ColorModel
	if err := s.DB.WithContext(ctx).First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (s *ColorService) Create(ctx context.Context, c *model.ColorModel) error {
	if err := helper.ValidateStruct(validate, c); err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Create(c).Error
}

// DeleteColor detaches the color from every customization, then removes it.
func (s *ColorService) DeleteColor(ctx context.Context, id uint) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Table("user_car_customizations").
			Where("color_id = ?", id).
			Update("color_id", nil).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.ColorModel{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return helper.ErrNotFound
		}
		return nil
	})
}
