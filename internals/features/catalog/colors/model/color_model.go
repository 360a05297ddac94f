package model

// ColorModel is a paint color; colors are never filtered by model.
type ColorModel struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:100;not null" json:"name" validate:"required,max=100"`
	HexCode      string `gorm:"size:7;not null" json:"hex_code" validate:"hex6"`
	DisplayOrder int16  `gorm:"column:display_order;not null;default:0" json:"order" validate:"min=0"`
}

func (ColorModel) TableName() string {
	return "colors"
}
