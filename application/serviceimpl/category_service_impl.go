package serviceimpl

import (
	"context"
	"errors"
	"time"

	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"gearshop/domain/dto"
	"gearshop/domain/models"
	"gearshop/domain/repositories"
	"gearshop/domain/services"
	redispkg "gearshop/infrastructure/redis"
	"gearshop/pkg/logger"
)

var (
	ErrCategoryNotFound      = errors.New("category not found")
	ErrDuplicateCategorySlug = errors.New("category slug already exists")
)

const categoryCountsCacheKey = "catalog:category_counts"

type CategoryServiceImpl struct {
	categoryRepo repositories.CategoryRepository
	cache        *redispkg.Client
}

func NewCategoryService(categoryRepo repositories.CategoryRepository, cache *redispkg.Client) services.CategoryService {
	return &CategoryServiceImpl{
		categoryRepo: categoryRepo,
		cache:        cache,
	}
}

func (s *CategoryServiceImpl) Create(ctx context.Context, req *dto.CreateCategoryRequest) (*models.Category, error) {
	newSlug := slug.Make(req.Slug)

	// ตรวจสอบว่า slug ซ้ำหรือไม่
	existing, err := s.categoryRepo.GetBySlug(ctx, newSlug)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		logger.WarnContext(ctx, "Category slug already exists", "slug", newSlug)
		return nil, ErrDuplicateCategorySlug
	}

	// parent ต้องชี้ category ที่มีอยู่จริง
	if req.ParentID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *req.ParentID); err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			logger.WarnContext(ctx, "Parent category not found", "parent_id", *req.ParentID)
			return nil, errors.New("parent category not found")
		}
	}

	category := &models.Category{
		Name:        req.Name,
		Slug:        newSlug,
		Description: req.Description,
		ParentID:    req.ParentID,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		logger.ErrorContext(ctx, "Failed to create category", "error", err)
		return nil, err
	}

	s.invalidateCounts(ctx)
	logger.InfoContext(ctx, "Category created", "category_id", category.ID, "name", category.Name)
	return category, nil
}

func (s *CategoryServiceImpl) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.WarnContext(ctx, "Category not found", "category_id", id)
			return nil, ErrCategoryNotFound
		}
		logger.ErrorContext(ctx, "Failed to load category", "category_id", id, "error", err)
		return nil, err
	}
	return category, nil
}

func (s *CategoryServiceImpl) GetBySlug(ctx context.Context, slugStr string) (*models.Category, error) {
	category, err := s.categoryRepo.GetBySlug(ctx, slugStr)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.WarnContext(ctx, "Category not found", "slug", slugStr)
			return nil, ErrCategoryNotFound
		}
		logger.ErrorContext(ctx, "Failed to load category", "slug", slugStr, "error", err)
		return nil, err
	}
	return category, nil
}

func (s *CategoryServiceImpl) Update(ctx context.Context, id uint, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "Category lookup failed for update", "category_id", id, "error", err)
		return nil, asNotFound(err, ErrCategoryNotFound)
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Slug != nil {
		// ตรวจสอบว่า slug ใหม่ซ้ำหรือไม่
		newSlug := slug.Make(*req.Slug)
		existing, err := s.categoryRepo.GetBySlug(ctx, newSlug)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			logger.WarnContext(ctx, "Category slug already exists", "slug", newSlug)
			return nil, ErrDuplicateCategorySlug
		}
		category.Slug = newSlug
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.ParentID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *req.ParentID); err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			return nil, errors.New("parent category not found")
		}
		category.ParentID = req.ParentID
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		logger.ErrorContext(ctx, "Failed to update category", "category_id", id, "error", err)
		return nil, err
	}

	s.invalidateCounts(ctx)
	logger.InfoContext(ctx, "Category updated", "category_id", id)
	return category, nil
}

func (s *CategoryServiceImpl) Delete(ctx context.Context, id uint) error {
	_, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "Category lookup failed for deletion", "category_id", id, "error", err)
		return asNotFound(err, ErrCategoryNotFound)
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete category", "category_id", id, "error", err)
		return err
	}

	s.invalidateCounts(ctx)
	logger.InfoContext(ctx, "Category deleted", "category_id", id)
	return nil
}

func (s *CategoryServiceImpl) List(ctx context.Context) ([]*models.Category, error) {
	categories, err := s.categoryRepo.ListActive(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list categories", "error", err)
		return nil, err
	}
	return categories, nil
}

func (s *CategoryServiceImpl) ListRoots(ctx context.Context) ([]*models.Category, error) {
	categories, err := s.categoryRepo.ListRoots(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list root categories", "error", err)
		return nil, err
	}
	return categories, nil
}

func (s *CategoryServiceImpl) GetProductCounts(ctx context.Context) (map[uint]int64, error) {
	// cache-aside: Redis พังก็ตกไป query ตรง
	if s.cache != nil {
		var cached map[uint]int64
		if err := s.cache.GetJSON(ctx, categoryCountsCacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	counts, err := s.categoryRepo.GetProductCounts(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to get product counts", "error", err)
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, categoryCountsCacheKey, counts, countsCacheTTL)
	}
	return counts, nil
}

func (s *CategoryServiceImpl) invalidateCounts(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Del(ctx, categoryCountsCacheKey)
	}
}
