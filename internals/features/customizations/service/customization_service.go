// internals/features/customizations/service/customization_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	carModel "tuning_backend/internals/features/catalog/car_models/model"
	colorService "tuning_backend/internals/features/catalog/colors/service"
	partService "tuning_backend/internals/features/catalog/parts/service"
	"tuning_backend/internals/features/customizations/model"
	helper "tuning_backend/internals/helpers"
)

// Input carries the writable fields of a customization. A nil field was
// absent from the request. A present slot with a nil ID clears the slot.
type Input struct {
	Name     *string
	CarModel *uint
	Slots    map[model.Slot]*uint
}

type CustomizationService struct {
	DB     *gorm.DB
	Parts  *partService.PartService
	Colors *colorService.ColorService
}

func NewCustomizationService(db *gorm.DB) *CustomizationService {
	return &CustomizationService{
		DB:     db,
		Parts:  partService.NewPartService(db),
		Colors: colorService.NewColorService(db),
	}
}

// Create stores a new customization owned by userID.
func (s *CustomizationService) Create(ctx context.Context, userID uuid.UUID, in Input) (*model.CustomizationModel, error) {
	if in.CarModel == nil {
		return nil, helper.NewValidationError("car_model", "This field is required.")
	}
	db := s.DB.WithContext(ctx)

	target, err := s.loadCarModel(db, *in.CarModel)
	if err != nil {
		return nil, err
	}
	if err := s.validateSlots(ctx, target, in.Slots); err != nil {
		return nil, err
	}

	row := model.CustomizationModel{
		UserID:     userID,
		CarModelID: target.ID,
	}
	if in.Name != nil {
		row.Name = *in.Name
	}
	for slot, id := range in.Slots {
		*row.SlotID(slot) = id
	}
	if err := db.Omit(clause.Associations).Create(&row).Error; err != nil {
		return nil, err
	}
	return s.Get(ctx, userID, row.ID)
}

// Update applies a PUT (partial=false) or PATCH (partial=true).
// Only selections present in the payload are validated, against the new
// car model when one is given and the stored one otherwise.
func (s *CustomizationService) Update(ctx context.Context, userID uuid.UUID, id uint, in Input, partial bool) (*model.CustomizationModel, error) {
	if !partial && in.CarModel == nil {
		return nil, helper.NewValidationError("car_model", "This field is required.")
	}
	db := s.DB.WithContext(ctx)

	current, err := s.findOwned(db, userID, id)
	if err != nil {
		return nil, err
	}

	targetID := current.CarModelID
	if in.CarModel != nil {
		targetID = *in.CarModel
	}
	target, err := s.loadCarModel(db, targetID)
	if err != nil {
		return nil, err
	}
	if err := s.validateSlots(ctx, target, in.Slots); err != nil {
		return nil, err
	}

	updates := map[string]any{
		"car_model_id": target.ID,
		"updated_at":   time.Now(),
	}
	switch {
	case in.Name != nil:
		updates["name"] = *in.Name
	case !partial:
		updates["name"] = ""
	}
	for _, slot := range model.Slots {
		id, present := in.Slots[slot]
		switch {
		case present:
			updates[slot.Column()] = id
		case !partial:
			updates[slot.Column()] = nil
		}
	}

	res := db.Model(&model.CustomizationModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, helper.ErrNotFound
	}
	return s.Get(ctx, userID, id)
}

// SwapPart sets or clears a single slot. Part lookups are scoped to the
// slot's category and the customization's car model; colors only need
// to exist.
func (s *CustomizationService) SwapPart(ctx context.Context, userID uuid.UUID, id uint, slotName string, partID *uint) (*model.CustomizationModel, error) {
	slot, ok := model.ParseSlot(slotName)
	if !ok {
		return nil, &helper.InvalidCategoryError{Value: slotName}
	}
	db := s.DB.WithContext(ctx)

	current, err := s.findOwned(db, userID, id)
	if err != nil {
		return nil, err
	}

	if partID != nil {
		var err error
		if slot.IsColor() {
			_, err = s.Colors.GetColor(ctx, *partID)
		} else {
			_, err = s.Parts.FindCompatible(ctx, slot.Category(), *partID, current.CarModelID)
		}
		if errors.Is(err, helper.ErrNotFound) {
			return nil, &helper.PartNotFoundError{Slot: string(slot), PartID: *partID}
		}
		if err != nil {
			return nil, err
		}
	}

	res := db.Model(&model.CustomizationModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]any{
			slot.Column(): partID,
			"updated_at":  time.Now(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, helper.ErrNotFound
	}
	return s.Get(ctx, userID, id)
}

// List returns the caller's customizations, most recently updated first.
func (s *CustomizationService) List(ctx context.Context, userID uuid.UUID) ([]model.CustomizationModel, error) {
	var rows []model.CustomizationModel
	err := s.DB.WithContext(ctx).
		Preload("CarModel.Brand").
		Where("user_id = ?", userID).
		Order("updated_at DESC, id DESC").
		Find(&rows).Error
	return rows, err
}

// Get loads one owned customization with every relation.
func (s *CustomizationService) Get(ctx context.Context, userID uuid.UUID, id uint) (*model.CustomizationModel, error) {
	q := s.DB.WithContext(ctx).Preload("CarModel.Brand")
	for _, slot := range model.Slots {
		q = q.Preload(slot.Relation())
	}
	var row model.CustomizationModel
	if err := q.Where("id = ? AND user_id = ?", id, userID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (s *CustomizationService) Delete(ctx context.Context, userID uuid.UUID, id uint) error {
	res := s.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.CustomizationModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return helper.ErrNotFound
	}
	return nil
}

func (s *CustomizationService) findOwned(db *gorm.DB, userID uuid.UUID, id uint) (*model.CustomizationModel, error) {
	var row model.CustomizationModel
	if err := db.Select("id", "car_model_id").
		Where("id = ? AND user_id = ?", id, userID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (s *CustomizationService) loadCarModel(db *gorm.DB, id uint) (*carModel.CarModelModel, error) {
	var m carModel.CarModelModel
	if err := db.Preload("Brand").First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NewValidationError("car_model", "Invalid pk \"%d\" - object does not exist.", id)
		}
		return nil, err
	}
	return &m, nil
}

// validateSlots checks each non-null selection: the row must exist in the
// slot's category and, for parts, fit the target car model.
func (s *CustomizationService) validateSlots(ctx context.Context, target *carModel.CarModelModel, slots map[model.Slot]*uint) error {
	for _, slot := range model.Slots {
		id, present := slots[slot]
		if !present || id == nil {
			continue
		}

		var err error
		if slot.IsColor() {
			_, err = s.Colors.GetColor(ctx, *id)
		} else {
			_, err = s.Parts.GetPart(ctx, slot.Category(), *id)
		}
		if errors.Is(err, helper.ErrNotFound) {
			return helper.NewValidationError(string(slot), "Invalid pk \"%d\" - object does not exist.", *id)
		}
		if err != nil {
			return err
		}
		if slot.IsColor() {
			continue
		}

		ok, err := s.Parts.IsCompatible(ctx, *id, target.ID)
		if err != nil {
			return err
		}
		if !ok {
			return helper.NewValidationError(string(slot), "This part is not compatible with the selected car model (%s)", target.DisplayName())
		}
	}
	return nil
}
