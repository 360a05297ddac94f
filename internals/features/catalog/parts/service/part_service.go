// internals/features/catalog/parts/service/part_service.go
package service

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tuning_backend/internals/features/catalog/parts/model"
	helper "tuning_backend/internals/helpers"
)

var validate = helper.NewValidator()

type ListFilter struct {
	CarModelID        *uint
	IncludeComingSoon bool
}

type PartService struct {
	DB *gorm.DB
}

func NewPartService(db *gorm.DB) *PartService {
	return &PartService{DB: db}
}

const compatibleSubquery = "parts.id IN (SELECT part_id FROM part_compatible_car_models WHERE car_model_id = ?)"

func (s *PartService) ListParts(ctx context.Context, category model.PartCategory, f ListFilter) ([]model.PartModel, error) {
	if !category.Valid() {
		return nil, &helper.InvalidCategoryError{Value: string(category)}
	}
	q := s.DB.WithContext(ctx).Where("parts.category = ?", category)
	if f.CarModelID != nil {
		q = q.Where(compatibleSubquery, *f.CarModelID)
	}
	if !f.IncludeComingSoon {
		q = q.Where("parts.coming_soon = ?", false)
	}
	var rows []model.PartModel
	err := q.Order("parts.display_order ASC, parts.name ASC").Find(&rows).Error
	return rows, err
}

// ListCompatible returns the parts of every category that fit the car
// model, grouped by category.
func (s *PartService) ListCompatible(ctx context.Context, carModelID uint, includeComingSoon bool) (map[model.PartCategory][]model.PartModel, error) {
	q := s.DB.WithContext(ctx).Where(compatibleSubquery, carModelID)
	if !includeComingSoon {
		q = q.Where("parts.coming_soon = ?", false)
	}
	var rows []model.PartModel
	if err := q.Order("parts.display_order ASC, parts.name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[model.PartCategory][]model.PartModel, len(model.Categories))
	for _, c := range model.Categories {
		out[c] = []model.PartModel{}
	}
	for _, p := range rows {
		out[p.Category] = append(out[p.Category], p)
	}
	return out, nil
}

func (s *PartService) GetPart(ctx context.Context, category model.PartCategory, id uint) (*model.PartModel, error) {
	var p model.PartModel
	if err := s.DB.WithContext(ctx).
		Where("id = ? AND category = ?", id, category).
		First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FindCompatible looks up a part of the category that fits the car model.
func (s *PartService) FindCompatible(ctx context.Context, category model.PartCategory, id, carModelID uint) (*model.PartModel, error) {
	var p model.PartModel
	if err := s.DB.WithContext(ctx).
		Where("parts.id = ? AND parts.category = ?", id, category).
		Where(compatibleSubquery, carModelID).
		First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// IsCompatible reports whether a part id is linked to the car model.
func (s *PartService) IsCompatible(ctx context.Context, partID, carModelID uint) (bool, error) {
	var n int64
	err := s.DB.WithContext(ctx).
		Model(&model.PartCompatibilityModel{}).
		Where("part_id = ? AND car_model_id = ?", partID, carModelID).
		Count(&n).Error
	return n > 0, err
}

func (s *PartService) Create(ctx context.Context, p *model.PartModel, compatibleWith []uint) error {
	if !p.Category.Valid() {
		return &helper.InvalidCategoryError{Value: string(p.Category)}
	}
	if err := helper.ValidateStruct(validate, p); err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		return linkCompatible(tx, p.ID, compatibleWith)
	})
}

// SetCompatible adds compatibility links; existing links are kept.
func (s *PartService) SetCompatible(ctx context.Context, partID uint, carModelIDs []uint) error {
	return linkCompatible(s.DB.WithContext(ctx), partID, carModelIDs)
}

func linkCompatible(tx *gorm.DB, partID uint, carModelIDs []uint) error {
	if len(carModelIDs) == 0 {
		return nil
	}
	links := make([]model.PartCompatibilityModel, 0, len(carModelIDs))
	for _, id := range carModelIDs {
		links = append(links, model.PartCompatibilityModel{PartID: partID, CarModelID: id})
	}
	return tx.Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&links).Error
}

// DeletePart detaches the part from every customization, then removes it.
func (s *PartService) DeletePart(ctx context.Context, id uint) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p model.PartModel
		if err := tx.Select("id", "category").First(&p, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.ErrNotFound
			}
			return err
		}
		if err := tx.Table("user_car_customizations").
			Where(p.Category.Column()+" = ?", p.ID).
			Update(p.Category.Column(), nil).Error; err != nil {
			return err
		}
		if err := tx.Where("part_id = ?", p.ID).Delete(&model.PartCompatibilityModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.PartModel{}, p.ID).Error
	})
}
