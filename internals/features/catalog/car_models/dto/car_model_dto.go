package dto

import (
	brandDTO "tuning_backend/internals/features/catalog/brands/dto"
	"tuning_backend/internals/features/catalog/car_models/model"
	compatDTO "tuning_backend/internals/features/catalog/compatibility/dto"
	helper "tuning_backend/internals/helpers"
)

// CarModelListItem is the compact list form.
type CarModelListItem struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	BrandName    string  `json:"brand_name"`
	PreviewImage *string `json:"preview_image"`
}

type CarModelDetail struct {
	ID           uint                   `json:"id"`
	Name         string                 `json:"name"`
	Brand        brandDTO.BrandResponse `json:"brand"`
	Model3D      *string                `json:"model_3d"`
	PreviewImage *string                `json:"preview_image"`
}

// CarModelExpanded is the detail form with compatible parts merged in.
type CarModelExpanded struct {
	CarModelDetail
	compatDTO.PartsBundle
}

func ToCarModelListItem(m model.CarModelModel) CarModelListItem {
	return CarModelListItem{
		ID:           m.ID,
		Name:         m.Name,
		BrandName:    m.Brand.Name,
		PreviewImage: helper.MediaURLPtr(m.PreviewImage),
	}
}

func ToCarModelList(rows []model.CarModelModel) []CarModelListItem {
	out := make([]CarModelListItem, 0, len(rows))
	for _, m := range rows {
		out = append(out, ToCarModelListItem(m))
	}
	return out
}

// ToCarModelDetail expects Brand preloaded.
func ToCarModelDetail(m model.CarModelModel, brandModelCount int64) CarModelDetail {
	return CarModelDetail{
		ID:           m.ID,
		Name:         m.Name,
		Brand:        brandDTO.ToBrandResponse(m.Brand, brandModelCount),
		Model3D:      helper.MediaURL(m.Model3D),
		PreviewImage: helper.MediaURLPtr(m.PreviewImage),
	}
}

func ToCarModelExpanded(detail CarModelDetail, parts compatDTO.PartsBundle) CarModelExpanded {
	return CarModelExpanded{CarModelDetail: detail, PartsBundle: parts}
}
