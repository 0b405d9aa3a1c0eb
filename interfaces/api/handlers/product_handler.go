package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"gearshop/application/serviceimpl"
	"gearshop/domain/dto"
	"gearshop/domain/models"
	"gearshop/domain/services"
	"gearshop/pkg/logger"
	"gearshop/pkg/utils"
)

type ProductHandler struct {
	productService services.ProductService
}

func NewProductHandler(productService services.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// parseProductFilter อ่าน filter จาก query params - ค่าที่ parse ไม่ได้ถือเป็น bad request
func parseProductFilter(c *fiber.Ctx) (*dto.ProductFilter, error) {
	filter := &dto.ProductFilter{}

	if raw := c.Query("category_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return nil, errors.New("invalid category_id")
		}
		categoryID := uint(id)
		filter.CategoryID = &categoryID
	}
	if raw := c.Query("brand_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return nil, errors.New("invalid brand_id")
		}
		brandID := uint(id)
		filter.BrandID = &brandID
	}
	if raw := c.Query("min_price"); raw != "" {
		min, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, errors.New("invalid min_price")
		}
		if min.IsNegative() {
			return nil, errors.New("min_price must not be negative")
		}
		filter.MinPrice = &min
	}
	if raw := c.Query("max_price"); raw != "" {
		max, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, errors.New("invalid max_price")
		}
		if max.IsNegative() {
			return nil, errors.New("max_price must not be negative")
		}
		filter.MaxPrice = &max
	}
	if raw := c.Query("status"); raw != "" {
		status := models.ProductStatus(raw)
		switch status {
		case models.ProductStatusActive, models.ProductStatusOutOfStock, models.ProductStatusDiscontinued:
			filter.Status = status
		default:
			return nil, errors.New("invalid status")
		}
	}
	filter.InStockOnly = c.QueryBool("in_stock", false)
	filter.SearchQuery = c.Query("q")

	return filter, nil
}

func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	ctx := c.UserContext()

	filter, err := parseProductFilter(c)
	if err != nil {
		logger.WarnContext(ctx, "Invalid product filter", "error", err)
		return utils.BadRequestResponse(c, err.Error())
	}

	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	summaries, total, err := h.productService.List(ctx, filter, limit, offset)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list products", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.PaginatedSuccessResponse(c, summaries, total, offset, limit)
}

func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	ctx := c.UserContext()

	productID, err := c.ParamsInt("id")
	if err != nil || productID < 1 {
		return utils.BadRequestResponse(c, "Invalid product ID")
	}

	product, err := h.productService.GetByID(ctx, uint(productID))
	if err != nil {
		if errors.Is(err, serviceimpl.ErrProductNotFound) {
			return utils.NotFoundResponse(c, "Product not found")
		}
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.ProductToProductResponse(product))
}

func (h *ProductHandler) GetProductBySlug(c *fiber.Ctx) error {
	ctx := c.UserContext()

	slug := c.Params("slug")
	product, err := h.productService.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, serviceimpl.ErrProductNotFound) {
			logger.WarnContext(ctx, "Product not found", "slug", slug)
			return utils.NotFoundResponse(c, "Product not found")
		}
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.ProductToProductResponse(product))
}

func (h *ProductHandler) SearchProducts(c *fiber.Ctx) error {
	ctx := c.UserContext()

	query := c.Query("q")
	if query == "" {
		return utils.BadRequestResponse(c, "Missing search query")
	}
	limit := c.QueryInt("limit", 20)

	summaries, err := h.productService.Search(ctx, query, limit)
	if err != nil {
		logger.ErrorContext(ctx, "Product search failed", "query", query, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, summaries)
}

func (h *ProductHandler) FeaturedProducts(c *fiber.Ctx) error {
	ctx := c.UserContext()

	limit := c.QueryInt("limit", 8)
	summaries, err := h.productService.Featured(ctx, limit)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list featured products", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, summaries)
}

func (h *ProductHandler) RelatedProducts(c *fiber.Ctx) error {
	ctx := c.UserContext()

	productID, err := c.ParamsInt("id")
	if err != nil || productID < 1 {
		return utils.BadRequestResponse(c, "Invalid product ID")
	}
	limit := c.QueryInt("limit", 4)

	summaries, err := h.productService.Related(ctx, uint(productID), limit)
	if err != nil {
		if errors.Is(err, serviceimpl.ErrProductNotFound) {
			return utils.NotFoundResponse(c, "Product not found")
		}
		logger.ErrorContext(ctx, "Failed to list related products", "product_id", productID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, summaries)
}

func (h *ProductHandler) PriceRange(c *fiber.Ctx) error {
	ctx := c.UserContext()

	priceRange, err := h.productService.PriceRange(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to get price range", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, priceRange)
}

func (h *ProductHandler) GetProductImages(c *fiber.Ctx) error {
	ctx := c.UserContext()

	productID, err := c.ParamsInt("id")
	if err != nil || productID < 1 {
		return utils.BadRequestResponse(c, "Invalid product ID")
	}

	images, err := h.productService.GetImages(ctx, uint(productID))
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list product images", "product_id", productID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.ImagesToImageResponses(images))
}

// === Admin ===

func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	product, err := h.productService.Create(ctx, &req)
	if err != nil {
		logger.WarnContext(ctx, "Product creation failed", "sku", req.SKU, "error", err)
		if errors.Is(err, serviceimpl.ErrDuplicateSKU) || errors.Is(err, serviceimpl.ErrDuplicateSlug) {
			return utils.ConflictResponse(c, err.Error())
		}
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.CreatedResponse(c, dto.ProductToProductResponse(product))
}

func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	ctx := c.UserContext()

	productID, err := c.ParamsInt("id")
	if err != nil || productID < 1 {
		return utils.BadRequestResponse(c, "Invalid product ID")
	}

	var req dto.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	product, err := h.productService.Update(ctx, uint(productID), &req)
	if err != nil {
		if errors.Is(err, serviceimpl.ErrProductNotFound) {
			return utils.NotFoundResponse(c, "Product not found")
		}
		if errors.Is(err, serviceimpl.ErrDuplicateSlug) {
			return utils.ConflictResponse(c, err.Error())
		}
		logger.WarnContext(ctx, "Product update failed", "product_id", productID, "error", err)
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, dto.ProductToProductResponse(product))
}

func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	ctx := c.UserContext()

	productID, err := c.ParamsInt("id")
	if err != nil || productID < 1 {
		return utils.BadRequestResponse(c, "Invalid product ID")
	}

	if err := h.productService.Delete(ctx, uint(productID)); err != nil {
		if errors.Is(err, serviceimpl.ErrProductNotFound) {
			return utils.NotFoundResponse(c, "Product not found")
		}
		logger.ErrorContext(ctx, "Product deletion failed", "product_id", productID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.NoContentResponse(c)
}

func (h *ProductHandler) AddProductImage(c *fiber.Ctx) error {
	ctx := c.UserContext()

	productID, err := c.ParamsInt("id")
	if err != nil || productID < 1 {
		return utils.BadRequestResponse(c, "Invalid product ID")
	}

	var req dto.CreateProductImageRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	image, err := h.productService.AddImage(ctx, uint(productID), &req)
	if err != nil {
		if errors.Is(err, serviceimpl.ErrProductNotFound) {
			return utils.NotFoundResponse(c, "Product not found")
		}
		logger.ErrorContext(ctx, "Failed to add product image", "product_id", productID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.CreatedResponse(c, dto.ImageToImageResponse(image))
}

func (h *ProductHandler) DeleteProductImage(c *fiber.Ctx) error {
	ctx := c.UserContext()

	imageID, err := c.ParamsInt("imageId")
	if err != nil || imageID < 1 {
		return utils.BadRequestResponse(c, "Invalid image ID")
	}

	if err := h.productService.DeleteImage(ctx, uint(imageID)); err != nil {
		if errors.Is(err, serviceimpl.ErrImageNotFound) {
			return utils.NotFoundResponse(c, "Product image not found")
		}
		logger.ErrorContext(ctx, "Failed to delete product image", "image_id", imageID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.NoContentResponse(c)
}
