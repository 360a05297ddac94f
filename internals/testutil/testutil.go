// Package testutil builds throwaway SQLite databases and catalog rows for tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"tuning_backend/internals/configs"
	database "tuning_backend/internals/databases"
	brandModel "tuning_backend/internals/features/catalog/brands/model"
	carModel "tuning_backend/internals/features/catalog/car_models/model"
	colorModel "tuning_backend/internals/features/catalog/colors/model"
	partModel "tuning_backend/internals/features/catalog/parts/model"
	customizationModel "tuning_backend/internals/features/customizations/model"
	userModel "tuning_backend/internals/features/users/user/model"
)

const (
	JWTSecret    = "test-secret"
	MediaBaseURL = "http://media.test"
)

// NewDB opens a private in-memory database with foreign keys enforced and
// the full schema migrated.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	configs.JWTSecret = JWTSecret
	configs.MediaBaseURL = MediaBaseURL

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func Brand(t *testing.T, db *gorm.DB, name string) brandModel.BrandModel {
	t.Helper()
	b := brandModel.BrandModel{Name: name, Logo: "brands/" + name + ".png"}
	require.NoError(t, db.Create(&b).Error)
	return b
}

func CarModel(t *testing.T, db *gorm.DB, brand brandModel.BrandModel, name string, comingSoon bool) carModel.CarModelModel {
	t.Helper()
	m := carModel.CarModelModel{
		BrandID:    brand.ID,
		Name:       name,
		Model3D:    "models/" + name + ".glb",
		ComingSoon: comingSoon,
	}
	require.NoError(t, db.Omit("Brand").Create(&m).Error)
	m.Brand = brand
	return m
}

// Part creates a part linked to every given car model.
func Part(t *testing.T, db *gorm.DB, category partModel.PartCategory, name string, order int16, comingSoon bool, fits ...carModel.CarModelModel) partModel.PartModel {
	t.Helper()
	p := partModel.PartModel{
		Category:     category,
		Name:         name,
		Model3D:      "parts/" + name + ".glb",
		DisplayOrder: order,
		ComingSoon:   comingSoon,
	}
	require.NoError(t, db.Create(&p).Error)
	for _, m := range fits {
		link := partModel.PartCompatibilityModel{PartID: p.ID, CarModelID: m.ID}
		require.NoError(t, db.Omit("Part", "CarModel").Create(&link).Error)
	}
	return p
}

func Color(t *testing.T, db *gorm.DB, name, hex string, order int16) colorModel.ColorModel {
	t.Helper()
	c := colorModel.ColorModel{Name: name, HexCode: hex, DisplayOrder: order}
	require.NoError(t, db.Create(&c).Error)
	return c
}

func User(t *testing.T, db *gorm.DB, userName string) userModel.UserModel {
	t.Helper()
	u := userModel.UserModel{
		UserName: userName,
		Email:    userName + "@example.com",
		IsActive: true,
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

// Customization inserts a row directly, bypassing validation.
func Customization(t *testing.T, db *gorm.DB, owner userModel.UserModel, m carModel.CarModelModel, name string) customizationModel.CustomizationModel {
	t.Helper()
	c := customizationModel.CustomizationModel{UserID: owner.ID, CarModelID: m.ID, Name: name}
	require.NoError(t, db.Omit(
		"User", "CarModel", "Color", "Tinting", "Spoiler", "Discs",
		"Restyling", "Bumper", "RearBumper", "SideSkirt",
	).Create(&c).Error)
	return c
}

// Catalog is the shared scenario: Acme sells X200 and Y100, spoiler S1
// fits X200 only.
type Catalog struct {
	Acme     brandModel.BrandModel
	X200     carModel.CarModelModel
	Y100     carModel.CarModelModel
	S1       partModel.PartModel
	S2       partModel.PartModel
	Discs    partModel.PartModel
	Red      colorModel.ColorModel
	Blue     colorModel.ColorModel
	Upcoming carModel.CarModelModel
}

func SeedCatalog(t *testing.T, db *gorm.DB) Catalog {
	t.Helper()
	var c Catalog
	c.Acme = Brand(t, db, "Acme")
	c.X200 = CarModel(t, db, c.Acme, "X200", false)
	c.Y100 = CarModel(t, db, c.Acme, "Y100", false)
	c.Upcoming = CarModel(t, db, c.Acme, "Z900", true)
	c.S1 = Part(t, db, partModel.CategorySpoiler, "S1", 1, false, c.X200)
	c.S2 = Part(t, db, partModel.CategorySpoiler, "S2", 0, false, c.X200, c.Y100)
	c.Discs = Part(t, db, partModel.CategoryDiscs, "D1", 0, false, c.X200, c.Y100)
	c.Red = Color(t, db, "Red", "#FF0000", 1)
	c.Blue = Color(t, db, "Blue", "#0000FF", 0)
	return c
}
