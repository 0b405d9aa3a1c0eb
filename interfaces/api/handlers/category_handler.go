package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"gearshop/application/serviceimpl"
	"gearshop/domain/dto"
	"gearshop/domain/models"
	"gearshop/domain/services"
	"gearshop/pkg/logger"
	"gearshop/pkg/utils"
)

type CategoryHandler struct {
	categoryService services.CategoryService
	productService  services.ProductService
}

func NewCategoryHandler(categoryService services.CategoryService, productService services.ProductService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		productService:  productService,
	}
}

func (h *CategoryHandler) ListCategories(c *fiber.Ctx) error {
	ctx := c.UserContext()

	categories, err := h.categoryService.List(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list categories", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	counts, err := h.categoryService.GetProductCounts(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to get category product counts", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	responses := dto.CategoriesToCategoryResponses(categories)
	for i := range responses {
		responses[i].ProductCount = counts[responses[i].ID]
	}

	return utils.SuccessResponse(c, dto.CategoryListResponse{Categories: responses})
}

func (h *CategoryHandler) ListRootCategories(c *fiber.Ctx) error {
	ctx := c.UserContext()

	categories, err := h.categoryService.ListRoots(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list root categories", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	counts, err := h.categoryService.GetProductCounts(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to get category product counts", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	responses := dto.CategoriesToCategoryResponses(categories)
	for i := range responses {
		responses[i].ProductCount = counts[responses[i].ID]
	}

	return utils.SuccessResponse(c, dto.CategoryListResponse{Categories: responses})
}

func (h *CategoryHandler) GetCategory(c *fiber.Ctx) error {
	ctx := c.UserContext()

	categoryID, err := c.ParamsInt("id")
	if err != nil || categoryID < 1 {
		return utils.BadRequestResponse(c, "Invalid category ID")
	}

	category, err := h.categoryService.GetByID(ctx, uint(categoryID))
	if err != nil {
		if errors.Is(err, serviceimpl.ErrCategoryNotFound) {
			return utils.NotFoundResponse(c, "Category not found")
		}
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.CategoryToCategoryResponse(category))
}

func (h *CategoryHandler) GetCategoryBySlug(c *fiber.Ctx) error {
	ctx := c.UserContext()

	slug := c.Params("slug")
	category, err := h.categoryService.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, serviceimpl.ErrCategoryNotFound) {
			logger.WarnContext(ctx, "Category not found", "slug", slug)
			return utils.NotFoundResponse(c, "Category not found")
		}
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.CategoryToCategoryResponse(category))
}

// ListCategoryProducts หน้า category: resolve slug แล้ว list สินค้า active ใน category นั้น
func (h *CategoryHandler) ListCategoryProducts(c *fiber.Ctx) error {
	ctx := c.UserContext()

	slug := c.Params("slug")
	category, err := h.categoryService.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, serviceimpl.ErrCategoryNotFound) {
			logger.WarnContext(ctx, "Category not found", "slug", slug)
			return utils.NotFoundResponse(c, "Category not found")
		}
		return utils.InternalServerErrorResponse(c)
	}

	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	filter := &dto.ProductFilter{
		CategoryID: &category.ID,
		Status:     models.ProductStatusActive,
	}
	summaries, total, err := h.productService.List(ctx, filter, limit, offset)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list category products", "category_id", category.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.PaginatedSuccessResponse(c, summaries, total, offset, limit)
}

// === Admin ===

func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	category, err := h.categoryService.Create(ctx, &req)
	if err != nil {
		logger.WarnContext(ctx, "Category creation failed", "name", req.Name, "error", err)
		if errors.Is(err, serviceimpl.ErrDuplicateCategorySlug) {
			return utils.ConflictResponse(c, err.Error())
		}
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.CreatedResponse(c, dto.CategoryToCategoryResponse(category))
}

func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	ctx := c.UserContext()

	categoryID, err := c.ParamsInt("id")
	if err != nil || categoryID < 1 {
		return utils.BadRequestResponse(c, "Invalid category ID")
	}

	var req dto.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	category, err := h.categoryService.Update(ctx, uint(categoryID), &req)
	if err != nil {
		if errors.Is(err, serviceimpl.ErrCategoryNotFound) {
			return utils.NotFoundResponse(c, "Category not found")
		}
		if errors.Is(err, serviceimpl.ErrDuplicateCategorySlug) {
			return utils.ConflictResponse(c, err.Error())
		}
		logger.WarnContext(ctx, "Category update failed", "category_id", categoryID, "error", err)
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, dto.CategoryToCategoryResponse(category))
}

func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	ctx := c.UserContext()

	categoryID, err := c.ParamsInt("id")
	if err != nil || categoryID < 1 {
		return utils.BadRequestResponse(c, "Invalid category ID")
	}

	if err := h.categoryService.Delete(ctx, uint(categoryID)); err != nil {
		if errors.Is(err, serviceimpl.ErrCategoryNotFound) {
			return utils.NotFoundResponse(c, "Category not found")
		}
		logger.ErrorContext(ctx, "Category deletion failed", "category_id", categoryID, "error", err)
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.NoContentResponse(c)
}
