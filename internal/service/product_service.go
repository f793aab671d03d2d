package service

import (
	"context"
	"errors"

	"github.com/quangtran-dev/storefront-api/internal/apperrors"
	"github.com/quangtran-dev/storefront-api/internal/domain"
	"github.com/quangtran-dev/storefront-api/internal/dto"
	"github.com/quangtran-dev/storefront-api/internal/repository"
)

// productService implements ProductService interface
type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	orderRepo    repository.OrderRepository
}

// NewProductService creates a new product service
func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	orderRepo repository.OrderRepository,
) ProductService {
	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		orderRepo:    orderRepo,
	}
}

// List retrieves products matching the filter with pagination
func (s *productService) List(ctx context.Context, filter repository.ProductFilter) ([]domain.Product, int, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 10
	}

	products, total, err := s.productRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, apperrors.Internal("failed to list products", err)
	}
	if products == nil {
		products = []domain.Product{}
	}

	return products, total, nil
}

// Get retrieves a product by ID
func (s *productService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "product not found")
		}
		return nil, apperrors.Internal("failed to get product", err)
	}
	return product, nil
}

// Create creates a new product
func (s *productService) Create(ctx context.Context, req *dto.CreateProductRequest) (*domain.Product, error) {
	if req.SubCategoryID != nil {
		if err := s.checkSubCategory(ctx, *req.SubCategoryID); err != nil {
			return nil, err
		}
	}

	product := &domain.Product{
		Name:          req.Name,
		Description:   req.Description,
		Image:         req.Image,
		SubCategoryID: req.SubCategoryID,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Stock:         req.Stock,
		Colors:        req.Colors,
		Sizes:         req.Sizes,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, apperrors.Internal("failed to create product", err)
	}

	return product, nil
}

// Update applies the non-nil fields of the request to an existing product
func (s *productService) Update(ctx context.Context, id int64, req *dto.UpdateProductRequest) (*domain.Product, error) {
	if req.Name == nil && req.Price == nil && req.Stock == nil && req.Description == nil &&
		req.Image == nil && req.OriginalPrice == nil && req.SubCategoryID == nil &&
		req.Colors == nil && req.Sizes == nil {
		return nil, apperrors.New(apperrors.KindValidation, "no fields to update")
	}

	product, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.SubCategoryID != nil {
		if err := s.checkSubCategory(ctx, *req.SubCategoryID); err != nil {
			return nil, err
		}
		product.SubCategoryID = req.SubCategoryID
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Description != nil {
		product.Description = req.Description
	}
	if req.Image != nil {
		product.Image = req.Image
	}
	if req.OriginalPrice != nil {
		product.OriginalPrice = req.OriginalPrice
	}
	if req.Colors != nil {
		product.Colors = req.Colors
	}
	if req.Sizes != nil {
		product.Sizes = req.Sizes
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "product not found")
		}
		return nil, apperrors.Internal("failed to update product", err)
	}

	return product, nil
}

// UpdateStock applies a signed stock delta. The adjustment is a single
// conditional statement so concurrent deltas cannot drive stock negative.
func (s *productService) UpdateStock(ctx context.Context, id int64, delta int) (*domain.Product, error) {
	product, err := s.productRepo.AdjustStock(ctx, id, delta)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// The guard rejects both missing products and underflow.
			if _, getErr := s.productRepo.GetByID(ctx, id); getErr == nil {
				return nil, apperrors.New(apperrors.KindInsufficientStock, "insufficient stock for adjustment")
			}
			return nil, apperrors.New(apperrors.KindNotFound, "product not found")
		}
		return nil, apperrors.Internal("failed to adjust stock", err)
	}
	return product, nil
}

// Delete deletes a product. Products referenced by order lines cannot be
// deleted; order history must keep resolving.
func (s *productService) Delete(ctx context.Context, id int64) error {
	count, err := s.orderRepo.CountItemsByProduct(ctx, id)
	if err != nil {
		return apperrors.Internal("failed to count product order references", err)
	}
	if count > 0 {
		return apperrors.New(apperrors.KindValidation, "product is referenced by existing orders")
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.New(apperrors.KindNotFound, "product not found")
		}
		return apperrors.Internal("failed to delete product", err)
	}

	return nil
}

func (s *productService) checkSubCategory(ctx context.Context, subCategoryID int64) error {
	_, err := s.categoryRepo.GetSubCategoryByID(ctx, subCategoryID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.New(apperrors.KindValidation, "subcategory does not exist")
		}
		return apperrors.Internal("failed to get subcategory", err)
	}
	return nil
}
