package dto

import (
	"tuning_backend/internals/features/catalog/brands/model"
	helper "tuning_backend/internals/helpers"
)

type BrandResponse struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Logo       *string `json:"logo"`
	ModelCount int64   `json:"model_count"`
}

func ToBrandResponse(b model.BrandModel, modelCount int64) BrandResponse {
	return BrandResponse{
		ID:         b.ID,
		Name:       b.Name,
		Logo:       helper.MediaURL(b.Logo),
		ModelCount: modelCount,
	}
}
