package model

// BrandModel is a car manufacturer.
type BrandModel struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name" validate:"required,max=100"`
	Logo string `gorm:"size:255;not null;default:''" json:"logo" validate:"max=255"`
}

func (BrandModel) TableName() string {
	return "car_brands"
}
