package dto

import (
	"time"

	"github.com/google/uuid"

	carModelDTO "tuning_backend/internals/features/catalog/car_models/dto"
	colorDTO "tuning_backend/internals/features/catalog/colors/dto"
	partDTO "tuning_backend/internals/features/catalog/parts/dto"
	partModel "tuning_backend/internals/features/catalog/parts/model"
	"tuning_backend/internals/features/customizations/model"
	"tuning_backend/internals/features/customizations/service"
	helper "tuning_backend/internals/helpers"
)

/* ===================== REQUEST ===================== */

// CustomizationRequest is the body of POST, PUT and PATCH. Any "user"
// key is ignored; the owner is always the caller.
type CustomizationRequest struct {
	Name       helper.UpdateField[string] `json:"name"`
	CarModel   helper.RefField            `json:"car_model"`
	Color      helper.RefField            `json:"color"`
	Tinting    helper.RefField            `json:"tinting"`
	Spoiler    helper.RefField            `json:"spoiler"`
	Discs      helper.RefField            `json:"discs"`
	Restyling  helper.RefField            `json:"restyling"`
	Bumper     helper.RefField            `json:"bumper"`
	RearBumper helper.RefField            `json:"rear_bumper"`
	SideSkirt  helper.RefField            `json:"side_skirt"`
}

var validate = helper.NewValidator()

func (r *CustomizationRequest) slotFields() map[model.Slot]helper.RefField {
	return map[model.Slot]helper.RefField{
		model.SlotColor:                          r.Color,
		model.Slot(partModel.CategoryTinting):    r.Tinting,
		model.Slot(partModel.CategorySpoiler):    r.Spoiler,
		model.Slot(partModel.CategoryDiscs):      r.Discs,
		model.Slot(partModel.CategoryRestyling):  r.Restyling,
		model.Slot(partModel.CategoryBumper):     r.Bumper,
		model.Slot(partModel.CategoryRearBumper): r.RearBumper,
		model.Slot(partModel.CategorySideSkirt):  r.SideSkirt,
	}
}

// ToInput checks the shape of the body and converts it for the service.
func (r *CustomizationRequest) ToInput() (service.Input, error) {
	in := service.Input{Slots: map[model.Slot]*uint{}}

	if r.Name.ShouldUpdate() {
		if r.Name.IsNull() {
			return in, helper.NewValidationError("name", "This field may not be null.")
		}
		name := r.Name.Val()
		if err := validate.Var(name, "max=200"); err != nil {
			return in, helper.NewValidationError("name", "Ensure this field has no more than 200 characters.")
		}
		in.Name = &name
	}

	if r.CarModel.Present() {
		if r.CarModel.Invalid() {
			return in, helper.NewValidationError("car_model", "Incorrect type. Expected pk value.")
		}
		if r.CarModel.ID() == nil {
			return in, helper.NewValidationError("car_model", "This field may not be null.")
		}
		in.CarModel = r.CarModel.ID()
	}

	fields := r.slotFields()
	for _, slot := range model.Slots {
		f := fields[slot]
		if !f.Present() {
			continue
		}
		if f.Invalid() {
			return in, helper.NewValidationError(string(slot), "Incorrect type. Expected pk value.")
		}
		in.Slots[slot] = f.ID()
	}
	return in, nil
}

// UpdatePartRequest is the body of PATCH /:id/update_part.
type UpdatePartRequest struct {
	PartType string          `json:"part_type" validate:"required"`
	PartID   helper.RefField `json:"part_id"`
}

/* ===================== RESPONSE ===================== */

type CustomizationListItem struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	CarModelName string    `json:"car_model_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CustomizationDetail struct {
	ID         uint                       `json:"id"`
	Name       string                     `json:"name"`
	User       uuid.UUID                  `json:"user"`
	CarModel   carModelDTO.CarModelDetail `json:"car_model"`
	CreatedAt  time.Time                  `json:"created_at"`
	UpdatedAt  time.Time                  `json:"updated_at"`
	Color      *colorDTO.ColorResponse    `json:"color"`
	Tinting    *partDTO.PartResponse      `json:"tinting"`
	Spoiler    *partDTO.PartResponse      `json:"spoiler"`
	Discs      *partDTO.PartResponse      `json:"discs"`
	Restyling  *partDTO.PartResponse      `json:"restyling"`
	Bumper     *partDTO.PartResponse      `json:"bumper"`
	RearBumper *partDTO.PartResponse      `json:"rear_bumper"`
	SideSkirt  *partDTO.PartResponse      `json:"side_skirt"`
}

// ToCustomizationListItem expects CarModel.Brand preloaded.
func ToCustomizationListItem(m model.CustomizationModel) CustomizationListItem {
	return CustomizationListItem{
		ID:           m.ID,
		Name:         m.Name,
		CarModelName: m.CarModel.DisplayName(),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToCustomizationList(rows []model.CustomizationModel) []CustomizationListItem {
	out := make([]CustomizationListItem, 0, len(rows))
	for _, m := range rows {
		out = append(out, ToCustomizationListItem(m))
	}
	return out
}

// ToCustomizationDetail expects every relation preloaded.
func ToCustomizationDetail(m model.CustomizationModel, brandModelCount int64) CustomizationDetail {
	return CustomizationDetail{
		ID:         m.ID,
		Name:       m.Name,
		User:       m.UserID,
		CarModel:   carModelDTO.ToCarModelDetail(m.CarModel, brandModelCount),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
		Color:      colorDTO.ToColorResponsePtr(m.Color),
		Tinting:    partDTO.ToPartResponsePtr(m.Tinting),
		Spoiler:    partDTO.ToPartResponsePtr(m.Spoiler),
		Discs:      partDTO.ToPartResponsePtr(m.Discs),
		Restyling:  partDTO.ToPartResponsePtr(m.Restyling),
		Bumper:     partDTO.ToPartResponsePtr(m.Bumper),
		RearBumper: partDTO.ToPartResponsePtr(m.RearBumper),
		SideSkirt:  partDTO.ToPartResponsePtr(m.SideSkirt),
	}
}
