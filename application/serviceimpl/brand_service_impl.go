package serviceimpl

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"gearshop/domain/dto"
	"gearshop/domain/models"
	"gearshop/domain/repositories"
	"gearshop/domain/services"
	redispkg "gearshop/infrastructure/redis"
	"gearshop/pkg/logger"
)

var (
	ErrBrandNotFound      = errors.New("brand not found")
	ErrDuplicateBrandName = errors.New("brand name already exists")
)

const (
	brandCountsCacheKey = "catalog:brand_counts"
	countsCacheTTL      = 5 * time.Minute
)

type BrandServiceImpl struct {
	brandRepo repositories.BrandRepository
	cache     *redispkg.Client
}

func NewBrandService(brandRepo repositories.BrandRepository, cache *redispkg.Client) services.BrandService {
	return &BrandServiceImpl{
		brandRepo: brandRepo,
		cache:     cache,
	}
}

func (s *BrandServiceImpl) Create(ctx context.Context, req *dto.CreateBrandRequest) (*models.Brand, error) {
	// name ต้องไม่ซ้ำ (มี unique constraint รองรับอีกชั้น)
	existing, err := s.brandRepo.GetByName(ctx, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		logger.WarnContext(ctx, "Brand name already exists", "name", req.Name)
		return nil, ErrDuplicateBrandName
	}

	brand := &models.Brand{
		Name:        req.Name,
		Description: req.Description,
		LogoURL:     req.LogoURL,
		WebsiteURL:  req.WebsiteURL,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}

	if err := s.brandRepo.Create(ctx, brand); err != nil {
		logger.ErrorContext(ctx, "Failed to create brand", "name", req.Name, "error", err)
		return nil, err
	}

	s.invalidateCounts(ctx)
	logger.InfoContext(ctx, "Brand created", "brand_id", brand.ID, "name", brand.Name)
	return brand, nil
}

func (s *BrandServiceImpl) GetByID(ctx context.Context, id uint) (*models.Brand, error) {
	brand, err := s.brandRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.WarnContext(ctx, "Brand not found", "brand_id", id)
			return nil, ErrBrandNotFound
		}
		logger.ErrorContext(ctx, "Failed to load brand", "brand_id", id, "error", err)
		return nil, err
	}
	return brand, nil
}

func (s *BrandServiceImpl) Update(ctx context.Context, id uint, req *dto.UpdateBrandRequest) (*models.Brand, error) {
	brand, err := s.brandRepo.GetByID(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "Brand lookup failed for update", "brand_id", id, "error", err)
		return nil, asNotFound(err, ErrBrandNotFound)
	}

	if req.Name != nil && *req.Name != brand.Name {
		existing, err := s.brandRepo.GetByName(ctx, *req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, ErrDuplicateBrandName
		}
		brand.Name = *req.Name
	}
	if req.Description != nil {
		brand.Description = *req.Description
	}
	if req.LogoURL != nil {
		brand.LogoURL = req.LogoURL
	}
	if req.WebsiteURL != nil {
		brand.WebsiteURL = req.WebsiteURL
	}
	if req.IsActive != nil {
		brand.IsActive = *req.IsActive
	}

	if err := s.brandRepo.Update(ctx, brand); err != nil {
		logger.ErrorContext(ctx, "Failed to update brand", "brand_id", id, "error", err)
		return nil, err
	}

	s.invalidateCounts(ctx)
	logger.InfoContext(ctx, "Brand updated", "brand_id", id)
	return brand, nil
}

func (s *BrandServiceImpl) Delete(ctx context.Context, id uint) error {
	_, err := s.brandRepo.GetByID(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "Brand lookup failed for deletion", "brand_id", id, "error", err)
		return asNotFound(err, ErrBrandNotFound)
	}

	if err := s.brandRepo.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete brand", "brand_id", id, "error", err)
		return err
	}

	s.invalidateCounts(ctx)
	logger.InfoContext(ctx, "Brand deleted", "brand_id", id)
	return nil
}

func (s *BrandServiceImpl) List(ctx context.Context) ([]*models.Brand, error) {
	brands, err := s.brandRepo.ListActive(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list brands", "error", err)
		return nil, err
	}
	return brands, nil
}

func (s *BrandServiceImpl) GetProductCounts(ctx context.Context) (map[uint]int64, error) {
	if s.cache != nil {
		var cached map[uint]int64
		if err := s.cache.GetJSON(ctx, brandCountsCacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	counts, err := s.brandRepo.GetProductCounts(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to get brand product counts", "error", err)
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, brandCountsCacheKey, counts, countsCacheTTL)
	}
	return counts, nil
}

func (s *BrandServiceImpl) invalidateCounts(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Del(ctx, brandCountsCacheKey)
	}
}
