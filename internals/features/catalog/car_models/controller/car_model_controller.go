package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	brandService "tuning_backend/internals/features/catalog/brands/service"
	"tuning_backend/internals/features/catalog/car_models/dto"
	"tuning_backend/internals/features/catalog/car_models/model"
	"tuning_backend/internals/features/catalog/car_models/service"
	compatDTO "tuning_backend/internals/features/catalog/compatibility/dto"
	compatService "tuning_backend/internals/features/catalog/compatibility/service"
	helper "tuning_backend/internals/helpers"
)

const expandCompatibleParts = "compatible_parts"

type CarModelController struct {
	DB       *gorm.DB
	Service  *service.CarModelService
	Brands   *brandService.BrandService
	Resolver *compatService.Resolver
}

func NewCarModelController(db *gorm.DB) *CarModelController {
	return &CarModelController{
		DB:       db,
		Service:  service.NewCarModelService(db),
		Brands:   brandService.NewBrandService(db),
		Resolver: compatService.NewResolver(db),
	}
}

// GET /api/models?brand_id=&include_coming_soon=&expand=compatible_parts
func (mc *CarModelController) List(c *fiber.Ctx) error {
	brandID, err := helper.ParseOptionalIDQuery(c, "brand_id")
	if err != nil {
		return helper.WriteServiceError(c, err)
	}
	includeSoon, err := helper.QueryFlag(c, "include_coming_soon", false)
	if err != nil {
		return helper.WriteServiceError(c, err)
	}

	ctx := c.UserContext()
	rows, err := mc.Service.ListCarModels(ctx, service.ListFilter{
		BrandID:           brandID,
		IncludeComingSoon: includeSoon,
	})
	if err != nil {
		return helper.WriteServiceError(c, err)
	}

	if !helper.HasExpand(c, expandCompatibleParts) {
		return helper.JsonList(c, "Car models fetched", dto.ToCarModelList(rows))
	}

	counts := map[uint]int64{}
	out := make([]dto.CarModelExpanded, 0, len(rows))
	for _, m := range rows {
		item, err := mc.expanded(c, m, counts, includeSoon)
		if err != nil {
			return helper.WriteServiceError(c, err)
		}
		out = append(out, item)
	}
	return helper.JsonList(c, "Car models fetched", out)
}

// GET /api/models/:id?brand_id=&expand=compatible_parts&include_coming_soon=
func (mc *CarModelController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.WriteServiceError(c, err)
	}
	brandID, err := helper.ParseOptionalIDQuery(c, "brand_id")
	if err != nil {
		return helper.WriteServiceError(c, err)
	}
	includeSoon, err := helper.QueryFlag(c, "include_coming_soon", false)
	if err != nil {
		return helper.WriteServiceError(c, err)
	}

	m, err := mc.Service.GetCarModel(c.UserContext(), id, brandID)
	if err != nil {
		return helper.WriteServiceError(c, err)
	}

	counts := map[uint]int64{}
	if helper.HasExpand(c, expandCompatibleParts) {
		item, err := mc.expanded(c, *m, counts, includeSoon)
		if err != nil {
			return helper.WriteServiceError(c, err)
		}
		return helper.JsonOK(c, "Car model fetched", item)
	}

	count, err := mc.brandCount(c, m.BrandID, counts)
	if err != nil {
		return helper.WriteServiceError(c, err)
	}
	return helper.JsonOK(c, "Car model fetched", dto.ToCarModelDetail(*m, count))
}

func (mc *CarModelController) expanded(c *fiber.Ctx, m model.CarModelModel, counts map[uint]int64, includeSoon bool) (dto.CarModelExpanded, error) {
	count, err := mc.brandCount(c, m.BrandID, counts)
	if err != nil {
		return dto.CarModelExpanded{}, err
	}
	parts, err := mc.Resolver.ResolveParts(c.UserContext(), m.ID, includeSoon)
	if err != nil {
		return dto.CarModelExpanded{}, err
	}
	return dto.ToCarModelExpanded(dto.ToCarModelDetail(m, count), compatDTO.ToPartsBundle(parts)), nil
}

// brandCount memoizes model counts per brand within one request.
func (mc *CarModelController) brandCount(c *fiber.Ctx, brandID uint, counts map[uint]int64) (int64, error) {
	if n, ok := counts[brandID]; ok {
		return n, nil
	}
	n, err := mc.Brands.CountModels(c.UserContext(), brandID)
	if err != nil {
		return 0, err
	}
	counts[brandID] = n
	return n, nil
}
