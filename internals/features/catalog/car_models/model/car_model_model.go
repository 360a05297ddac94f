package model

import (
	brandModel "tuning_backend/internals/features/catalog/brands/model"
)

// CarModelModel is a vehicle model with its 3D asset.
type CarModelModel struct {
	ID           uint                  `gorm:"primaryKey" json:"id"`
	BrandID      uint                  `gorm:"not null;index" json:"brand_id" validate:"required"`
	Brand        brandModel.BrandModel `gorm:"foreignKey:BrandID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"brand" validate:"-"`
	Name         string                `gorm:"size:100;not null" json:"name" validate:"required,max=100"`
	Model3D      string                `gorm:"column:model_3d;size:255;not null;default:''" json:"model_3d" validate:"max=255"`
	PreviewImage *string               `gorm:"size:255" json:"preview_image" validate:"omitempty,max=255"`
	ComingSoon   bool                  `gorm:"not null;default:false;index" json:"coming_soon"`
}

func (CarModelModel) TableName() string {
	return "car_models"
}

// DisplayName is "Brand Model"; Brand must be loaded.
func (m CarModelModel) DisplayName() string {
	if m.Brand.Name == "" {
		return m.Name
	}
	return m.Brand.Name + " " + m.Name
}
