package service

import (
	"context"
	"errors"

	"github.com/quangtran-dev/storefront-api/internal/apperrors"
	"github.com/quangtran-dev/storefront-api/internal/domain"
	"github.com/quangtran-dev/storefront-api/internal/dto"
	"github.com/quangtran-dev/storefront-api/internal/repository"
)

// bannerService implements BannerService interface
type bannerService struct {
	bannerRepo repository.BannerRepository
}

// NewBannerService creates a new banner service
func NewBannerService(bannerRepo repository.BannerRepository) BannerService {
	return &bannerService{bannerRepo: bannerRepo}
}

// List retrieves banners ordered for display
func (s *bannerService) List(ctx context.Context, activeOnly bool) ([]domain.Banner, error) {
	banners, err := s.bannerRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, apperrors.Internal("failed to list banners", err)
	}
	if banners == nil {
		banners = []domain.Banner{}
	}
	return banners, nil
}

// Get retrieves a banner by ID
func (s *bannerService) Get(ctx context.Context, id int64) (*domain.Banner, error) {
	banner, err := s.bannerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "banner not found")
		}
		return nil, apperrors.Internal("failed to get banner", err)
	}
	return banner, nil
}

// Create creates a new banner
func (s *bannerService) Create(ctx context.Context, req *dto.CreateBannerRequest) (*domain.Banner, error) {
	banner := &domain.Banner{
		Title:        req.Title,
		Image:        req.Image,
		Link:         req.Link,
		DisplayOrder: req.DisplayOrder,
		IsActive:     true,
	}

	if err := s.bannerRepo.Create(ctx, banner); err != nil {
		return nil, apperrors.Internal("failed to create banner", err)
	}

	return banner, nil
}

// Update applies the non-nil fields of the request to a banner
func (s *bannerService) Update(ctx context.Context, id int64, req *dto.UpdateBannerRequest) (*domain.Banner, error) {
	banner, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		banner.Title = *req.Title
	}
	if req.Image != nil {
		banner.Image = *req.Image
	}
	if req.Link != nil {
		banner.Link = req.Link
	}
	if req.DisplayOrder != nil {
		banner.DisplayOrder = *req.DisplayOrder
	}
	if req.IsActive != nil {
		banner.IsActive = *req.IsActive
	}

	if err := s.bannerRepo.Update(ctx, banner); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "banner not found")
		}
		return nil, apperrors.Internal("failed to update banner", err)
	}

	return banner, nil
}

// Delete deletes a banner by ID
func (s *bannerService) Delete(ctx context.Context, id int64) error {
	if err := s.bannerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.New(apperrors.KindNotFound, "banner not found")
		}
		return apperrors.Internal("failed to delete banner", err)
	}
	return nil
}
