package helper

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	Name  string `json:"name" validate:"required,max=5"`
	Hex   string `json:"hex_code" validate:"hex6"`
	Order int16  `json:"order" validate:"min=0"`
}

func TestValidateStructReportsFirstField(t *testing.T) {
	v := NewValidator()

	require.NoError(t, ValidateStruct(v, &row{Name: "ok", Hex: "#00ff00"}))

	err := ValidateStruct(v, &row{Name: strings.Repeat("x", 6), Hex: "#00ff00"})
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "name", ve.Field)
	assert.Equal(t, "name must be at most 5 characters long", ve.Message)

	err = ValidateStruct(v, &row{Name: "ok", Hex: "red"})
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "hex_code", ve.Field)

	err = ValidateStruct(v, &row{Name: "ok", Hex: "#000000", Order: -1})
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "order", ve.Field)
}

func TestFirstValidationErrorPassesOtherErrors(t *testing.T) {
	assert.NoError(t, FirstValidationError(nil))

	boom := errors.New("boom")
	assert.Same(t, boom, FirstValidationError(boom))
}
