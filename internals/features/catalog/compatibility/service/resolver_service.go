// internals/features/catalog/compatibility/service/resolver_service.go
package service

import (
	"context"

	"gorm.io/gorm"

	carModelService "tuning_backend/internals/features/catalog/car_models/service"
	colorModel "tuning_backend/internals/features/catalog/colors/model"
	colorService "tuning_backend/internals/features/catalog/colors/service"
	partModel "tuning_backend/internals/features/catalog/parts/model"
	partService "tuning_backend/internals/features/catalog/parts/service"
	helper "tuning_backend/internals/helpers"
)

// Result holds the parts fitting one car model, plus every color.
type Result struct {
	Parts  map[partModel.PartCategory][]partModel.PartModel
	Colors []colorModel.ColorModel
}

type Resolver struct {
	CarModels *carModelService.CarModelService
	Parts     *partService.PartService
	Colors    *colorService.ColorService
}

func NewResolver(db *gorm.DB) *Resolver {
	return &Resolver{
		CarModels: carModelService.NewCarModelService(db),
		Parts:     partService.NewPartService(db),
		Colors:    colorService.NewColorService(db),
	}
}

// Resolve builds the configurator bundle. Colors are never filtered.
func (r *Resolver) Resolve(ctx context.Context, carModelID uint, includeComingSoon bool) (*Result, error) {
	parts, err := r.ResolveParts(ctx, carModelID, includeComingSoon)
	if err != nil {
		return nil, err
	}
	colors, err := r.Colors.ListColors(ctx)
	if err != nil {
		return nil, err
	}
	return &Result{Parts: parts, Colors: colors}, nil
}

// ResolveParts is Resolve without colors.
func (r *Resolver) ResolveParts(ctx context.Context, carModelID uint, includeComingSoon bool) (map[partModel.PartCategory][]partModel.PartModel, error) {
	ok, err := r.CarModels.Exists(ctx, carModelID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, helper.ErrNotFound
	}
	return r.Parts.ListCompatible(ctx, carModelID, includeComingSoon)
}
