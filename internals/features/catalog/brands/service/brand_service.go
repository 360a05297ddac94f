// internals/features/catalog/brands/service/brand_service.go
package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tuning_backend/internals/features/catalog/brands/model"
	helper "tuning_backend/internals/helpers"
)

// BrandWithCount is a brand annotated with how many models it has.
type BrandWithCount struct {
	model.BrandModel
	ModelCount int64 `gorm:"column:model_count"`
}

var validate = helper.NewValidator()

type BrandService struct {
	DB *gorm.DB
}

func NewBrandService(db *gorm.DB) *BrandService {
	return &BrandService{DB: db}
}

const modelCountSelect = "car_brands.*, (SELECT COUNT(*) FROM car_models WHERE car_models.brand_id = car_brands.id) AS model_count"

func (s *BrandService) ListBrands(ctx context.Context) ([]BrandWithCount, error) {
	var rows []BrandWithCount
	err := s.DB.WithContext(ctx).
		Model(&model.BrandModel{}).
		Select(modelCountSelect).
		Order("car_brands.id ASC").
		Scan(&rows).Error
	return rows, err
}

func (s *BrandService) GetBrand(ctx context.Context, id uint) (*BrandWithCount, error) {
	var rows []BrandWithCount
	if err := s.DB.WithContext(ctx).
		Model(&model.BrandModel{}).
		Select(modelCountSelect).
		Where("car_brands.id = ?", id).
		Limit(1).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, helper.ErrNotFound
	}
	return &rows[0], nil
}

// CountModels counts every model of the brand, coming soon included.
func (s *BrandService) CountModels(ctx context.Context, brandID uint) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).
		Table("car_models").
		Where("brand_id = ?", brandID).
		Count(&n).Error
	return n, err
}

// Create is used by the catalog seeder.
func (s *BrandService) Create(ctx context.Context, b *model.BrandModel) error {
	if err := helper.ValidateStruct(validate, b); err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Create(b).Error
}

// FindByName returns ErrNotFound when no brand has that exact name.
func (s *BrandService) FindByName(ctx context.Context, name string) (*model.BrandModel, error) {
	var b model.BrandModel
	if err := s.DB.WithContext(ctx).Where("name = ?", name).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}
