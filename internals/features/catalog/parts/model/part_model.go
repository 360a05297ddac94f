package model

import (
	carModel "tuning_backend/internals/features/catalog/car_models/model"
)

// PartModel holds every selectable part; Category says which slot it fills.
type PartModel struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	Category     PartCategory `gorm:"size:20;not null;index;check:chk_parts_category,category IN ('spoiler','discs','restyling','bumper','rear_bumper','side_skirt','tinting')" json:"category"`
	Name         string       `gorm:"size:200;not null" json:"name" validate:"required,max=200"`
	Model3D      string       `gorm:"column:model_3d;size:255;not null;default:''" json:"model_3d" validate:"max=255"`
	Image        *string      `gorm:"size:255" json:"image" validate:"omitempty,max=255"`
	DisplayOrder int16        `gorm:"column:display_order;not null;default:0;check:chk_parts_display_order,display_order >= 0" json:"order" validate:"min=0"`
	ComingSoon   bool         `gorm:"not null;default:false" json:"coming_soon"`
}

func (PartModel) TableName() string {
	return "parts"
}

// PartCompatibilityModel links a part to a car model it fits.
type PartCompatibilityModel struct {
	PartID     uint                   `gorm:"primaryKey;autoIncrement:false" json:"part_id"`
	CarModelID uint                   `gorm:"primaryKey;autoIncrement:false;index" json:"car_model_id"`
	Part       PartModel              `gorm:"foreignKey:PartID;constraint:OnDelete:CASCADE" json:"-" validate:"-"`
	CarModel   carModel.CarModelModel `gorm:"foreignKey:CarModelID;constraint:OnDelete:CASCADE" json:"-" validate:"-"`
}

func (PartCompatibilityModel) TableName() string {
	return "part_compatible_car_models"
}
