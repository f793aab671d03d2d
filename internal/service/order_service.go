package service

import (
	"context"
	"errors"

	"github.com/quangtran-dev/storefront-api/internal/apperrors"
	"github.com/quangtran-dev/storefront-api/internal/domain"
	"github.com/quangtran-dev/storefront-api/internal/dto"
	"github.com/quangtran-dev/storefront-api/internal/repository"
)

// orderService implements OrderService interface
type orderService struct {
	orderRepo repository.OrderRepository
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo repository.OrderRepository) OrderService {
	return &orderService{
		orderRepo: orderRepo,
	}
}

// Create places an order with the caller-supplied total and line items.
// Line prices are persisted exactly as given, never re-read from the
// products, so the order keeps the prices the client checked out with.
// Stock is not decremented here.
func (s *orderService) Create(ctx context.Context, userID string, req *dto.CreateOrderRequest) (*domain.Order, error) {
	if req.Total <= 0 {
		return nil, apperrors.New(apperrors.KindValidation, "total must be greater than zero")
	}

	status := domain.OrderStatusPending
	if req.Status != "" {
		normalized, ok := domain.NormalizeOrderStatus(req.Status)
		if !ok {
			return nil, apperrors.New(apperrors.KindInvalidStatus, "invalid order status")
		}
		status = normalized
	}

	orderItems := make([]domain.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Quantity < 1 {
			return nil, apperrors.New(apperrors.KindValidation, "item quantity must be at least 1")
		}
		if item.Price < 0 {
			return nil, apperrors.New(apperrors.KindValidation, "item price cannot be negative")
		}
		orderItems = append(orderItems, domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	order := &domain.Order{
		UserID:        userID,
		Total:         req.Total,
		Status:        status,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, apperrors.Internal("failed to create order", err)
	}

	// Items land in a second write; a failure here leaves the order row
	// without its lines.
	if len(orderItems) > 0 {
		if err := s.orderRepo.CreateItems(ctx, order.ID, orderItems); err != nil {
			return nil, apperrors.Internal("failed to create order items", err)
		}
	}

	created, err := s.orderRepo.GetByID(ctx, order.ID)
	if err != nil {
		return nil, apperrors.Internal("failed to get created order", err)
	}

	return created, nil
}

// Get retrieves an order. Non-admin users can only see their own orders.
func (s *orderService) Get(ctx context.Context, requester *domain.User, orderID int64) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "order not found")
		}
		return nil, apperrors.Internal("failed to get order", err)
	}

	if !requester.IsAdmin() && order.UserID != requester.ID {
		return nil, apperrors.New(apperrors.KindForbidden, "order belongs to another user")
	}

	return order, nil
}

// List retrieves orders. Non-admin users see only their own orders
// regardless of the filter.
func (s *orderService) List(ctx context.Context, requester *domain.User, status string, page, limit int) ([]domain.Order, int, error) {
	filter := repository.OrderFilter{Page: page, Limit: limit}

	if status != "" {
		normalized, ok := domain.NormalizeOrderStatus(status)
		if !ok {
			return nil, 0, apperrors.New(apperrors.KindInvalidStatus, "invalid order status")
		}
		filter.Status = normalized
	}

	if !requester.IsAdmin() {
		filter.UserID = requester.ID
	}

	orders, total, err := s.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, apperrors.Internal("failed to list orders", err)
	}
	if orders == nil {
		orders = []domain.Order{}
	}

	return orders, total, nil
}

// UpdateStatus replaces an order's status with a normalized valid status.
// Any valid status may replace any other.
func (s *orderService) UpdateStatus(ctx context.Context, orderID int64, status string) (*domain.Order, error) {
	normalized, ok := domain.NormalizeOrderStatus(status)
	if !ok {
		return nil, apperrors.New(apperrors.KindInvalidStatus, "invalid order status")
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, normalized); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "order not found")
		}
		return nil, apperrors.Internal("failed to update order status", err)
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, apperrors.Internal("failed to get order", err)
	}

	return order, nil
}

// Delete deletes an order. Orders that still carry items cannot be
// deleted; items must be cleaned up first.
func (s *orderService) Delete(ctx context.Context, orderID int64) error {
	count, err := s.orderRepo.CountItems(ctx, orderID)
	if err != nil {
		return apperrors.Internal("failed to count order items", err)
	}
	if count > 0 {
		return apperrors.New(apperrors.KindOrderHasItems, "order still has items")
	}

	if err := s.orderRepo.Delete(ctx, orderID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.New(apperrors.KindNotFound, "order not found")
		}
		return apperrors.Internal("failed to delete order", err)
	}

	return nil
}
