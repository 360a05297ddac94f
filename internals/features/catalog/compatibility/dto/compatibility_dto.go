package dto

import (
	colorDTO "tuning_backend/internals/features/catalog/colors/dto"
	colorModel "tuning_backend/internals/features/catalog/colors/model"
	partDTO "tuning_backend/internals/features/catalog/parts/dto"
	partModel "tuning_backend/internals/features/catalog/parts/model"
)

// PartsBundle lists compatible parts per category. Field order is the
// key order clients see.
type PartsBundle struct {
	Spoilers    []partDTO.PartResponse `json:"spoilers"`
	Discs       []partDTO.PartResponse `json:"discs"`
	Restylings  []partDTO.PartResponse `json:"restylings"`
	Bumpers     []partDTO.PartResponse `json:"bumpers"`
	RearBumpers []partDTO.PartResponse `json:"rear_bumpers"`
	SideSkirts  []partDTO.PartResponse `json:"side_skirts"`
	Tintings    []partDTO.PartResponse `json:"tintings"`
}

// CompatibleParts is the full configurator bundle for one car model.
type CompatibleParts struct {
	PartsBundle
	Colors []colorDTO.ColorResponse `json:"colors"`
}

func ToPartsBundle(byCategory map[partModel.PartCategory][]partModel.PartModel) PartsBundle {
	return PartsBundle{
		Spoilers:    partDTO.ToPartResponses(byCategory[partModel.CategorySpoiler]),
		Discs:       partDTO.ToPartResponses(byCategory[partModel.CategoryDiscs]),
		Restylings:  partDTO.ToPartResponses(byCategory[partModel.CategoryRestyling]),
		Bumpers:     partDTO.ToPartResponses(byCategory[partModel.CategoryBumper]),
		RearBumpers: partDTO.ToPartResponses(byCategory[partModel.CategoryRearBumper]),
		SideSkirts:  partDTO.ToPartResponses(byCategory[partModel.CategorySideSkirt]),
		Tintings:    partDTO.ToPartResponses(byCategory[partModel.CategoryTinting]),
	}
}

func ToCompatibleParts(byCategory map[partModel.PartCategory][]partModel.PartModel, colors []colorModel.ColorModel) CompatibleParts {
	return CompatibleParts{
		PartsBundle: ToPartsBundle(byCategory),
		Colors:      colorDTO.ToColorResponses(colors),
	}
}
