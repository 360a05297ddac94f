package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tuning_backend/internals/features/catalog/colors/model"
	"tuning_backend/internals/features/catalog/colors/service"
	customizationModel "tuning_backend/internals/features/customizations/model"
	helper "tuning_backend/internals/helpers"
	"tuning_backend/internals/testutil"
)

func TestListColorsOrdered(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.SeedCatalog(t, db)
	testutil.Color(t, db, "Amber", "#FFBF00", 1)

	rows, err := service.NewColorService(db).ListColors(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Blue", rows[0].Name)
	assert.Equal(t, "Amber", rows[1].Name)
	assert.Equal(t, "Red", rows[2].Name)
}

func TestCreateColorRejectsBadHex(t *testing.T) {
	db := testutil.NewDB(t)
	svc := service.NewColorService(db)
	ctx := context.Background()

	for _, hex := range []string{"FF0000", "#FF00", "#GG0000", "#FF00001"} {
		err := svc.Create(ctx, &model.ColorModel{Name: "x", HexCode: hex})
		var ve *helper.ValidationError
		require.True(t, errors.As(err, &ve), hex)
		assert.Equal(t, "hex_code", ve.Field)
	}
	require.NoError(t, svc.Create(ctx, &model.ColorModel{Name: "ok", HexCode: "#a1B2c3"}))

	err := svc.Create(ctx, &model.ColorModel{Name: "", HexCode: "#000000"})
	var ve *helper.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "name", ve.Field)

	err = svc.Create(ctx, &model.ColorModel{Name: "neg", HexCode: "#000000", DisplayOrder: -1})
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "order", ve.Field)
}

func TestDeleteColorDetaches(t *testing.T) {
	db := testutil.NewDB(t)
	cat := testutil.SeedCatalog(t, db)
	u := testutil.User(t, db, "erin")
	c := testutil.Customization(t, db, u, cat.X200, "red one")
	require.NoError(t, db.Model(&customizationModel.CustomizationModel{}).
		Where("id = ?", c.ID).Update("color_id", cat.Red.ID).Error)

	svc := service.NewColorService(db)
	require.NoError(t, svc.DeleteColor(context.Background(), cat.Red.ID))

	var got customizationModel.CustomizationModel
	require.NoError(t, db.First(&got, c.ID).Error)
	assert.Nil(t, got.ColorID)

	_, err := svc.GetColor(context.Background(), cat.Red.ID)
	assert.True(t, errors.Is(err, helper.ErrNotFound))
}
