package service

import (
	"context"
	"errors"

	"github.com/quangtran-dev/storefront-api/internal/apperrors"
	"github.com/quangtran-dev/storefront-api/internal/domain"
	"github.com/quangtran-dev/storefront-api/internal/dto"
	"github.com/quangtran-dev/storefront-api/internal/repository"
)

// categoryService implements CategoryService interface
type categoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

// ListCategories retrieves categories with their subcategories
func (s *categoryService) ListCategories(ctx context.Context, activeOnly bool) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx, activeOnly)
	if err != nil {
		return nil, apperrors.Internal("failed to list categories", err)
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	return categories, nil
}

// GetCategory retrieves a category by ID with its subcategories
func (s *categoryService) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	category, err := s.categoryRepo.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "category not found")
		}
		return nil, apperrors.Internal("failed to get category", err)
	}
	return category, nil
}

// CreateCategory creates a new category
func (s *categoryService) CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*domain.Category, error) {
	category := &domain.Category{
		Name:         req.Name,
		Description:  req.Description,
		Image:        req.Image,
		DisplayOrder: req.DisplayOrder,
		IsActive:     true,
	}

	if err := s.categoryRepo.CreateCategory(ctx, category); err != nil {
		return nil, apperrors.Internal("failed to create category", err)
	}

	return category, nil
}

// UpdateCategory applies the non-nil fields of the request to a category
func (s *categoryService) UpdateCategory(ctx context.Context, id int64, req *dto.UpdateCategoryRequest) (*domain.Category, error) {
	category, err := s.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = req.Description
	}
	if req.Image != nil {
		category.Image = req.Image
	}
	if req.DisplayOrder != nil {
		category.DisplayOrder = *req.DisplayOrder
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := s.categoryRepo.UpdateCategory(ctx, category); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "category not found")
		}
		return nil, apperrors.Internal("failed to update category", err)
	}

	return category, nil
}

// DeleteCategory deletes a category. Categories that still have
// subcategories cannot be deleted.
func (s *categoryService) DeleteCategory(ctx context.Context, id int64) error {
	count, err := s.categoryRepo.CountSubCategories(ctx, id)
	if err != nil {
		return apperrors.Internal("failed to count subcategories", err)
	}
	if count > 0 {
		return apperrors.New(apperrors.KindValidation, "category still has subcategories")
	}

	if err := s.categoryRepo.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.New(apperrors.KindNotFound, "category not found")
		}
		return apperrors.Internal("failed to delete category", err)
	}

	return nil
}

// ListSubCategories retrieves the subcategories of a category
func (s *categoryService) ListSubCategories(ctx context.Context, categoryID int64) ([]domain.SubCategory, error) {
	if _, err := s.GetCategory(ctx, categoryID); err != nil {
		return nil, err
	}

	subs, err := s.categoryRepo.ListSubCategories(ctx, categoryID)
	if err != nil {
		return nil, apperrors.Internal("failed to list subcategories", err)
	}
	if subs == nil {
		subs = []domain.SubCategory{}
	}
	return subs, nil
}

// GetSubCategory retrieves a subcategory by ID
func (s *categoryService) GetSubCategory(ctx context.Context, id int64) (*domain.SubCategory, error) {
	sub, err := s.categoryRepo.GetSubCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "subcategory not found")
		}
		return nil, apperrors.Internal("failed to get subcategory", err)
	}
	return sub, nil
}

// CreateSubCategory creates a new subcategory under an existing category
func (s *categoryService) CreateSubCategory(ctx context.Context, req *dto.CreateSubCategoryRequest) (*domain.SubCategory, error) {
	if _, err := s.GetCategory(ctx, req.CategoryID); err != nil {
		if apperrors.IsKind(err, apperrors.KindNotFound) {
			return nil, apperrors.New(apperrors.KindValidation, "category does not exist")
		}
		return nil, err
	}

	sub := &domain.SubCategory{
		CategoryID:   req.CategoryID,
		Name:         req.Name,
		Description:  req.Description,
		Image:        req.Image,
		DisplayOrder: req.DisplayOrder,
		IsActive:     true,
	}

	if err := s.categoryRepo.CreateSubCategory(ctx, sub); err != nil {
		return nil, apperrors.Internal("failed to create subcategory", err)
	}

	return sub, nil
}

// UpdateSubCategory applies the non-nil fields of the request to a
// subcategory
func (s *categoryService) UpdateSubCategory(ctx context.Context, id int64, req *dto.UpdateSubCategoryRequest) (*domain.SubCategory, error) {
	sub, err := s.GetSubCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		if _, err := s.GetCategory(ctx, *req.CategoryID); err != nil {
			if apperrors.IsKind(err, apperrors.KindNotFound) {
				return nil, apperrors.New(apperrors.KindValidation, "category does not exist")
			}
			return nil, err
		}
		sub.CategoryID = *req.CategoryID
	}
	if req.Name != nil {
		sub.Name = *req.Name
	}
	if req.Description != nil {
		sub.Description = req.Description
	}
	if req.Image != nil {
		sub.Image = req.Image
	}
	if req.DisplayOrder != nil {
		sub.DisplayOrder = *req.DisplayOrder
	}
	if req.IsActive != nil {
		sub.IsActive = *req.IsActive
	}

	if err := s.categoryRepo.UpdateSubCategory(ctx, sub); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "subcategory not found")
		}
		return nil, apperrors.Internal("failed to update subcategory", err)
	}

	return sub, nil
}

// DeleteSubCategory deletes a subcategory. Subcategories that still have
// products cannot be deleted.
func (s *categoryService) DeleteSubCategory(ctx context.Context, id int64) error {
	count, err := s.categoryRepo.CountProductsBySubCategory(ctx, id)
	if err != nil {
		return apperrors.Internal("failed to count subcategory products", err)
	}
	if count > 0 {
		return apperrors.New(apperrors.KindValidation, "subcategory still has products")
	}

	if err := s.categoryRepo.DeleteSubCategory(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.New(apperrors.KindNotFound, "subcategory not found")
		}
		return apperrors.Internal("failed to delete subcategory", err)
	}

	return nil
}
