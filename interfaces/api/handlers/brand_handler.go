package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"gearshop/application/serviceimpl"
	"gearshop/domain/dto"
	"gearshop/domain/services"
	"gearshop/pkg/logger"
	"gearshop/pkg/utils"
)

type BrandHandler struct {
	brandService services.BrandService
}

func NewBrandHandler(brandService services.BrandService) *BrandHandler {
	return &BrandHandler{
		brandService: brandService,
	}
}

func (h *BrandHandler) ListBrands(c *fiber.Ctx) error {
	ctx := c.UserContext()

	brands, err := h.brandService.List(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list brands", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	counts, err := h.brandService.GetProductCounts(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to get brand product counts", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	responses := dto.BrandsToBrandResponses(brands)
	for i := range responses {
		responses[i].ProductCount = counts[responses[i].ID]
	}

	return utils.SuccessResponse(c, dto.BrandListResponse{Brands: responses})
}

func (h *BrandHandler) GetBrand(c *fiber.Ctx) error {
	ctx := c.UserContext()

	brandID, err := c.ParamsInt("id")
	if err != nil || brandID < 1 {
		return utils.BadRequestResponse(c, "Invalid brand ID")
	}

	brand, err := h.brandService.GetByID(ctx, uint(brandID))
	if err != nil {
		if errors.Is(err, serviceimpl.ErrBrandNotFound) {
			return utils.NotFoundResponse(c, "Brand not found")
		}
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.BrandToBrandResponse(brand))
}

// === Admin ===

func (h *BrandHandler) CreateBrand(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateBrandRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	brand, err := h.brandService.Create(ctx, &req)
	if err != nil {
		logger.WarnContext(ctx, "Brand creation failed", "name", req.Name, "error", err)
		if errors.Is(err, serviceimpl.ErrDuplicateBrandName) {
			return utils.ConflictResponse(c, err.Error())
		}
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.CreatedResponse(c, dto.BrandToBrandResponse(brand))
}

func (h *BrandHandler) UpdateBrand(c *fiber.Ctx) error {
	ctx := c.UserContext()

	brandID, err := c.ParamsInt("id")
	if err != nil || brandID < 1 {
		return utils.BadRequestResponse(c, "Invalid brand ID")
	}

	var req dto.UpdateBrandRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	brand, err := h.brandService.Update(ctx, uint(brandID), &req)
	if err != nil {
		if errors.Is(err, serviceimpl.ErrBrandNotFound) {
			return utils.NotFoundResponse(c, "Brand not found")
		}
		if errors.Is(err, serviceimpl.ErrDuplicateBrandName) {
			return utils.ConflictResponse(c, err.Error())
		}
		logger.WarnContext(ctx, "Brand update failed", "brand_id", brandID, "error", err)
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, dto.BrandToBrandResponse(brand))
}

func (h *BrandHandler) DeleteBrand(c *fiber.Ctx) error {
	ctx := c.UserContext()

	brandID, err := c.ParamsInt("id")
	if err != nil || brandID < 1 {
		return utils.BadRequestResponse(c, "Invalid brand ID")
	}

	if err := h.brandService.Delete(ctx, uint(brandID)); err != nil {
		if errors.Is(err, serviceimpl.ErrBrandNotFound) {
			return utils.NotFoundResponse(c, "Brand not found")
		}
		logger.ErrorContext(ctx, "Brand deletion failed", "brand_id", brandID, "error", err)
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.NoContentResponse(c)
}
