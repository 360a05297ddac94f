package dto

import (
	"tuning_backend/internals/features/catalog/parts/model"
	helper "tuning_backend/internals/helpers"
)

type PartResponse struct {
	ID      uint    `json:"id"`
	Name    string  `json:"name"`
	Model3D *string `json:"model_3d"`
	Image   *string `json:"image"`
}

func ToPartResponse(p model.PartModel) PartResponse {
	return PartResponse{
		ID:      p.ID,
		Name:    p.Name,
		Model3D: helper.MediaURL(p.Model3D),
		Image:   helper.MediaURLPtr(p.Image),
	}
}

// ToPartResponsePtr is nil-safe for optional customization slots.
func ToPartResponsePtr(p *model.PartModel) *PartResponse {
	if p == nil {
		return nil
	}
	r := ToPartResponse(*p)
	return &r
}

func ToPartResponses(rows []model.PartModel) []PartResponse {
	out := make([]PartResponse, 0, len(rows))
	for _, p := range rows {
		out = append(out, ToPartResponse(p))
	}
	return out
}
