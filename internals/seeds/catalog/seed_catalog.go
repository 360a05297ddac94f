package catalog

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	brandModel "tuning_backend/internals/features/catalog/brands/model"
	brandService "tuning_backend/internals/features/catalog/brands/service"
	carModel "tuning_backend/internals/features/catalog/car_models/model"
	carModelService "tuning_backend/internals/features/catalog/car_models/service"
	colorModel "tuning_backend/internals/features/catalog/colors/model"
	colorService "tuning_backend/internals/features/catalog/colors/service"
	partModel "tuning_backend/internals/features/catalog/parts/model"
	partService "tuning_backend/internals/features/catalog/parts/service"
	helper "tuning_backend/internals/helpers"
)

var validate = helper.NewValidator()

type CatalogSeed struct {
	Brands []BrandSeed `json:"brands" validate:"dive"`
	Parts  []PartSeed  `json:"parts" validate:"dive"`
	Colors []ColorSeed `json:"colors" validate:"dive"`
}

type BrandSeed struct {
	Name   string         `json:"name" validate:"required,max=100"`
	Logo   string         `json:"logo" validate:"max=255"`
	Models []CarModelSeed `json:"models" validate:"dive"`
}

type CarModelSeed struct {
	Name         string  `json:"name" validate:"required,max=100"`
	Model3D      string  `json:"model_3d" validate:"max=255"`
	PreviewImage *string `json:"preview_image" validate:"omitempty,max=255"`
	ComingSoon   bool    `json:"coming_soon"`
}

type ModelRef struct {
	Brand string `json:"brand" validate:"required"`
	Model string `json:"model" validate:"required"`
}

// Category takes the tag ("rear_bumper") or the route segment ("rear-bumpers").
type PartSeed struct {
	Category       string     `json:"category" validate:"required"`
	Name           string     `json:"name" validate:"required,max=200"`
	Model3D        string     `json:"model_3d" validate:"max=255"`
	Image          *string    `json:"image" validate:"omitempty,max=255"`
	Order          int16      `json:"order" validate:"min=0"`
	ComingSoon     bool       `json:"coming_soon"`
	CompatibleWith []ModelRef `json:"compatible_with" validate:"dive"`
}

type ColorSeed struct {
	Name    string `json:"name" validate:"required,max=100"`
	HexCode string `json:"hex_code" validate:"hex6"`
	Order   int16  `json:"order" validate:"min=0"`
}

// SeedCatalogFromJSON loads a catalog file. Rows that already exist by
// name are left untouched, so the file can be replayed.
func SeedCatalogFromJSON(ctx context.Context, db *gorm.DB, filePath string) error {
	log.Println("[INFO] Reading catalog seed:", filePath)

	raw, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}
	var data CatalogSeed
	if err := sonic.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("decode seed file: %w", err)
	}
	return SeedCatalog(ctx, db, data)
}

func SeedCatalog(ctx context.Context, db *gorm.DB, data CatalogSeed) error {
	if err := validate.Struct(&data); err != nil {
		log.Printf("[ERROR] catalog seed rejected: %v", helper.ValidationErrorsMap(err))
		return helper.FirstValidationError(err)
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		brands := brandService.NewBrandService(tx)
		models := carModelService.NewCarModelService(tx)
		parts := partService.NewPartService(tx)
		colors := colorService.NewColorService(tx)

		var created int
		for _, bs := range data.Brands {
			b, err := brands.FindByName(ctx, bs.Name)
			if errors.Is(err, helper.ErrNotFound) {
				b = &brandModel.BrandModel{Name: bs.Name, Logo: bs.Logo}
				if err := brands.Create(ctx, b); err != nil {
					return fmt.Errorf("brand %q: %w", bs.Name, err)
				}
				created++
			} else if err != nil {
				return err
			}

			for _, ms := range bs.Models {
				_, err := models.FindByName(ctx, b.ID, ms.Name)
				if err == nil {
					continue
				}
				if !errors.Is(err, helper.ErrNotFound) {
					return err
				}
				m := &carModel.CarModelModel{
					BrandID:      b.ID,
					Name:         ms.Name,
					Model3D:      ms.Model3D,
					PreviewImage: ms.PreviewImage,
					ComingSoon:   ms.ComingSoon,
				}
				if err := models.Create(ctx, m); err != nil {
					return fmt.Errorf("model %q %q: %w", bs.Name, ms.Name, err)
				}
				created++
			}
		}

		for _, ps := range data.Parts {
			category, ok := partModel.ParseCategory(ps.Category)
			if !ok {
				return fmt.Errorf("part %q: %w", ps.Name, &helper.InvalidCategoryError{Value: ps.Category})
			}

			ids := make([]uint, 0, len(ps.CompatibleWith))
			for _, ref := range ps.CompatibleWith {
				id, err := resolveModelRef(ctx, brands, models, ref)
				if err != nil {
					return fmt.Errorf("part %q: %w", ps.Name, err)
				}
				ids = append(ids, id)
			}

			var existing partModel.PartModel
			err := tx.Where("category = ? AND name = ?", category, ps.Name).First(&existing).Error
			switch {
			case err == nil:
				if err := parts.SetCompatible(ctx, existing.ID, ids); err != nil {
					return err
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				p := &partModel.PartModel{
					Category:     category,
					Name:         ps.Name,
					Model3D:      ps.Model3D,
					Image:        ps.Image,
					DisplayOrder: ps.Order,
					ComingSoon:   ps.ComingSoon,
				}
				if err := parts.Create(ctx, p, ids); err != nil {
					return fmt.Errorf("part %q: %w", ps.Name, err)
				}
				created++
			default:
				return err
			}
		}

		for _, cs := range data.Colors {
			var n int64
			if err := tx.Model(&colorModel.ColorModel{}).Where("name = ?", cs.Name).Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				continue
			}
			c := &colorModel.ColorModel{Name: cs.Name, HexCode: cs.HexCode, DisplayOrder: cs.Order}
			if err := colors.Create(ctx, c); err != nil {
				return fmt.Errorf("color %q: %w", cs.Name, err)
			}
			created++
		}

		log.Printf("[INFO] Catalog seed done, %d new rows", created)
		return nil
	})
}

func resolveModelRef(ctx context.Context, brands *brandService.BrandService, models *carModelService.CarModelService, ref ModelRef) (uint, error) {
	b, err := brands.FindByName(ctx, ref.Brand)
	if err != nil {
		return 0, fmt.Errorf("brand %q: %w", ref.Brand, err)
	}
	m, err := models.FindByName(ctx, b.ID, ref.Model)
	if err != nil {
		return 0, fmt.Errorf("model %q %q: %w", ref.Brand, ref.Model, err)
	}
	return m.ID, nil
}
