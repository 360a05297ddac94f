package dto

import "tuning_backend/internals/features/catalog/colors/model"

type ColorResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	HexCode string `json:"hex_code"`
}

func ToColorResponse(c model.ColorModel) ColorResponse {
	return ColorResponse{ID: c.ID, Name: c.Name, HexCode: c.HexCode}
}

func ToColorResponsePtr(c *model.ColorModel) *ColorResponse {
	if c == nil {
		return nil
	}
	r := ToColorResponse(*c)
	return &r
}

func ToColorResponses(rows []model.ColorModel) []ColorResponse {
	out := make([]ColorResponse, 0, len(rows))
	for _, c := range rows {
		out = append(out, ToColorResponse(c))
	}
	return out
}
