package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tuning_backend/internals/features/catalog/parts/model"
	"tuning_backend/internals/features/catalog/parts/service"
	customizationModel "tuning_backend/internals/features/customizations/model"
	helper "tuning_backend/internals/helpers"
	"tuning_backend/internals/testutil"
)

func names(rows []model.PartModel) []string {
	out := make([]string, 0, len(rows))
	for _, p := range rows {
		out = append(out, p.Name)
	}
	return out
}

func TestListPartsOrderAndFilters(t *testing.T) {
	db := testutil.NewDB(t)
	cat := testutil.SeedCatalog(t, db)
	testutil.Part(t, db, model.CategorySpoiler, "A-soon", 0, true, cat.X200)
	testutil.Part(t, db, model.CategorySpoiler, "A0", 0, false)

	svc := service.NewPartService(db)
	ctx := context.Background()

	all, err := svc.ListParts(ctx, model.CategorySpoiler, service.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"A0", "S2", "S1"}, names(all))

	forX, err := svc.ListParts(ctx, model.CategorySpoiler, service.ListFilter{CarModelID: &cat.X200.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{"S2", "S1"}, names(forX))

	forXSoon, err := svc.ListParts(ctx, model.CategorySpoiler, service.ListFilter{CarModelID: &cat.X200.ID, IncludeComingSoon: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"A-soon", "S2", "S1"}, names(forXSoon))

	forY, err := svc.ListParts(ctx, model.CategorySpoiler, service.ListFilter{CarModelID: &cat.Y100.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{"S2"}, names(forY))

	_, err = svc.ListParts(ctx, model.PartCategory("engine"), service.ListFilter{})
	var ice *helper.InvalidCategoryError
	assert.True(t, errors.As(err, &ice))
}

func TestGetPartIsScopedByCategory(t *testing.T) {
	db := testutil.NewDB(t)
	cat := testutil.SeedCatalog(t, db)
	svc := service.NewPartService(db)
	ctx := context.Background()

	p, err := svc.GetPart(ctx, model.CategorySpoiler, cat.S1.ID)
	require.NoError(t, err)
	assert.Equal(t, "S1", p.Name)

	_, err = svc.GetPart(ctx, model.CategoryDiscs, cat.S1.ID)
	assert.True(t, errors.Is(err, helper.ErrNotFound))
}

func TestCreatePartValidates(t *testing.T) {
	db := testutil.NewDB(t)
	cat := testutil.SeedCatalog(t, db)
	svc := service.NewPartService(db)
	ctx := context.Background()

	p := &model.PartModel{Category: model.CategoryBumper, Name: "B1"}
	require.NoError(t, svc.Create(ctx, p, []uint{cat.X200.ID}))
	ok, err := svc.IsCompatible(ctx, p.ID, cat.X200.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	// linking twice keeps a single row
	require.NoError(t, svc.SetCompatible(ctx, p.ID, []uint{cat.X200.ID, cat.Y100.ID}))
	var n int64
	require.NoError(t, db.Model(&model.PartCompatibilityModel{}).Where("part_id = ?", p.ID).Count(&n).Error)
	assert.EqualValues(t, 2, n)

	err = svc.Create(ctx, &model.PartModel{Category: model.CategoryBumper, Name: "neg", DisplayOrder: -1}, nil)
	var ve *helper.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "order", ve.Field)

	err = svc.Create(ctx, &model.PartModel{Category: model.CategoryBumper, Name: strings.Repeat("p", 201)}, nil)
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "name", ve.Field)

	err = svc.Create(ctx, &model.PartModel{Category: model.PartCategory("engine"), Name: "V8"}, nil)
	var ice *helper.InvalidCategoryError
	assert.True(t, errors.As(err, &ice))
}

func TestDeletePartNullsCustomizationReference(t *testing.T) {
	db := testutil.NewDB(t)
	cat := testutil.SeedCatalog(t, db)
	u := testutil.User(t, db, "carol")
	c := testutil.Customization(t, db, u, cat.X200, "with spoiler")
	require.NoError(t, db.Model(&customizationModel.CustomizationModel{}).
		Where("id = ?", c.ID).
		Updates(map[string]any{"spoiler_id": cat.S1.ID, "discs_id": cat.Discs.ID}).Error)

	svc := service.NewPartService(db)
	require.NoError(t, svc.DeletePart(context.Background(), cat.S1.ID))

	var got customizationModel.CustomizationModel
	require.NoError(t, db.First(&got, c.ID).Error)
	assert.Nil(t, got.SpoilerID)
	require.NotNil(t, got.DiscsID)
	assert.Equal(t, cat.Discs.ID, *got.DiscsID)

	err := svc.DeletePart(context.Background(), cat.S1.ID)
	assert.True(t, errors.Is(err, helper.ErrNotFound))
}

func TestDirectPartDeleteSetsNull(t *testing.T) {
	db := testutil.NewDB(t)
	cat := testutil.SeedCatalog(t, db)
	u := testutil.User(t, db, "dave")
	c := testutil.Customization(t, db, u, cat.X200, "fk")
	require.NoError(t, db.Model(&customizationModel.CustomizationModel{}).
		Where("id = ?", c.ID).Update("discs_id", cat.Discs.ID).Error)

	require.NoError(t, db.Exec("DELETE FROM parts WHERE id = ?", cat.Discs.ID).Error)

	var got customizationModel.CustomizationModel
	require.NoError(t, db.First(&got, c.ID).Error)
	assert.Nil(t, got.DiscsID)
}
