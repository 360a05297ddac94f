// internals/features/catalog/car_models/service/car_model_service.go
package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tuning_backend/internals/features/catalog/car_models/model"
	customizationModel "tuning_backend/internals/features/customizations/model"
	helper "tuning_backend/internals/helpers"
)

var validate = helper.NewValidator()

type ListFilter struct {
	BrandID           *uint
	IncludeComingSoon bool
}

type CarModelService struct {
	DB *gorm.DB
}

func NewCarModelService(db *gorm.DB) *CarModelService {
	return &CarModelService{DB: db}
}

func (s *CarModelService) ListCarModels(ctx context.Context, f ListFilter) ([]model.CarModelModel, error) {
	q := s.DB.WithContext(ctx).Preload("Brand")
	if f.BrandID != nil {
		q = q.Where("brand_id = ?", *f.BrandID)
	}
	if !f.IncludeComingSoon {
		q = q.Where("coming_soon = ?", false)
	}
	var rows []model.CarModelModel
	err := q.Order("id ASC").Find(&rows).Error
	return rows, err
}

// GetCarModel ignores the coming soon flag; brandID scopes the lookup when set.
func (s *CarModelService) GetCarModel(ctx context.Context, id uint, brandID *uint) (*model.CarModelModel, error) {
	q := s.DB.WithContext(ctx).Preload("Brand").Where("id = ?", id)
	if brandID != nil {
		q = q.Where("brand_id = ?", *brandID)
	}
	var m model.CarModelModel
	if err := q.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// Exists is a cheap id check used before resolving compatible parts.
func (s *CarModelService) Exists(ctx context.Context, id uint) (bool, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&model.CarModelModel{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

func (s *CarModelService) Create(ctx context.Context, m *model.CarModelModel) error {
	if err := helper.ValidateStruct(validate, m); err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Omit("Brand").Create(m).Error
}

// FindByName looks a model up by brand and exact name.
func (s *CarModelService) FindByName(ctx context.Context, brandID uint, name string) (*model.CarModelModel, error) {
	var m model.CarModelModel
	if err := s.DB.WithContext(ctx).Where("brand_id = ? AND name = ?", brandID, name).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// DeleteCarModel removes the model together with every customization of
// it and its compatibility links.
func (s *CarModelService) DeleteCarModel(ctx context.Context, id uint) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("car_model_id = ?", id).
			Delete(&customizationModel.CustomizationModel{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM part_compatible_car_models WHERE car_model_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.CarModelModel{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return helper.ErrNotFound
		}
		return nil
	})
}
