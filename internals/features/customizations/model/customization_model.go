package model

import (
	"time"

	"github.com/google/uuid"

	carModel "tuning_backend/internals/features/catalog/car_models/model"
	colorModel "tuning_backend/internals/features/catalog/colors/model"
	partModel "tuning_backend/internals/features/catalog/parts/model"
	userModel "tuning_backend/internals/features/users/user/model"
)

// CustomizationModel is a user's saved configuration of one car model.
type CustomizationModel struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:200;not null;default:''" json:"name"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	CarModelID uint      `gorm:"not null;index" json:"car_model_id"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime;index" json:"updated_at"`

	ColorID      *uint `json:"color_id"`
	TintingID    *uint `json:"tinting_id"`
	SpoilerID    *uint `json:"spoiler_id"`
	DiscsID      *uint `json:"discs_id"`
	RestylingID  *uint `json:"restyling_id"`
	BumperID     *uint `json:"bumper_id"`
	RearBumperID *uint `json:"rear_bumper_id"`
	SideSkirtID  *uint `json:"side_skirt_id"`

	User       userModel.UserModel    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CarModel   carModel.CarModelModel `gorm:"foreignKey:CarModelID;constraint:OnDelete:CASCADE" json:"-"`
	Color      *colorModel.ColorModel `gorm:"foreignKey:ColorID;constraint:OnDelete:SET NULL" json:"-"`
	Tinting    *partModel.PartModel   `gorm:"foreignKey:TintingID;constraint:OnDelete:SET NULL" json:"-"`
	Spoiler    *partModel.PartModel   `gorm:"foreignKey:SpoilerID;constraint:OnDelete:SET NULL" json:"-"`
	Discs      *partModel.PartModel   `gorm:"foreignKey:DiscsID;constraint:OnDelete:SET NULL" json:"-"`
	Restyling  *partModel.PartModel   `gorm:"foreignKey:RestylingID;constraint:OnDelete:SET NULL" json:"-"`
	Bumper     *partModel.PartModel   `gorm:"foreignKey:BumperID;constraint:OnDelete:SET NULL" json:"-"`
	RearBumper *partModel.PartModel   `gorm:"foreignKey:RearBumperID;constraint:OnDelete:SET NULL" json:"-"`
	SideSkirt  *partModel.PartModel   `gorm:"foreignKey:SideSkirtID;constraint:OnDelete:SET NULL" json:"-"`
}

func (CustomizationModel) TableName() string {
	return "user_car_customizations"
}

// Slot is a selection column of a customization: a part category or color.
type Slot string

const SlotColor Slot = "color"

// Slots in the order they appear in the detail view.
var Slots = []Slot{
	SlotColor,
	Slot(partModel.CategoryTinting),
	Slot(partModel.CategorySpoiler),
	Slot(partModel.CategoryDiscs),
	Slot(partModel.CategoryRestyling),
	Slot(partModel.CategoryBumper),
	Slot(partModel.CategoryRearBumper),
	Slot(partModel.CategorySideSkirt),
}

// ParseSlot accepts "color" or a part category tag, exactly.
func ParseSlot(s string) (Slot, bool) {
	if s == string(SlotColor) || partModel.PartCategory(s).Valid() {
		return Slot(s), true
	}
	return "", false
}

func (s Slot) IsColor() bool { return s == SlotColor }

func (s Slot) Category() partModel.PartCategory { return partModel.PartCategory(s) }

func (s Slot) Column() string { return string(s) + "_id" }

// Relation is the preload name of the slot's association.
func (s Slot) Relation() string {
	switch s {
	case SlotColor:
		return "Color"
	case Slot(partModel.CategoryTinting):
		return "Tinting"
	case Slot(partModel.CategorySpoiler):
		return "Spoiler"
	case Slot(partModel.CategoryDiscs):
		return "Discs"
	case Slot(partModel.CategoryRestyling):
		return "Restyling"
	case Slot(partModel.CategoryBumper):
		return "Bumper"
	case Slot(partModel.CategoryRearBumper):
		return "RearBumper"
	case Slot(partModel.CategorySideSkirt):
		return "SideSkirt"
	}
	return ""
}

// SlotID returns a pointer to the slot's foreign key field.
func (m *CustomizationModel) SlotID(s Slot) **uint {
	switch s {
	case SlotColor:
		return &m.ColorID
	case Slot(partModel.CategoryTinting):
		return &m.TintingID
	case Slot(partModel.CategorySpoiler):
		return &m.SpoilerID
	case Slot(partModel.CategoryDiscs):
		return &m.DiscsID
	case Slot(partModel.CategoryRestyling):
		return &m.RestylingID
	case Slot(partModel.CategoryBumper):
		return &m.BumperID
	case Slot(partModel.CategoryRearBumper):
		return &m.RearBumperID
	case Slot(partModel.CategorySideSkirt):
		return &m.SideSkirtID
	}
	return nil
}

// SlotPart returns the loaded part for a part slot.
func (m *CustomizationModel) SlotPart(s Slot) *partModel.PartModel {
	switch s {
	case Slot(partModel.CategoryTinting):
		return m.Tinting
	case Slot(partModel.CategorySpoiler):
		return m.Spoiler
	case Slot(partModel.CategoryDiscs):
		return m.Discs
	case Slot(partModel.CategoryRestyling):
		return m.Restyling
	case Slot(partModel.CategoryBumper):
		return m.Bumper
	case Slot(partModel.CategoryRearBumper):
		return m.RearBumper
	case Slot(partModel.CategorySideSkirt):
		return m.SideSkirt
	}
	return nil
}
