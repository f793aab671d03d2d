package acceptance

import (
	"fmt"
	"net/http"

	"github.com/quangtran-dev/storefront-api/internal/domain"
	"github.com/quangtran-dev/storefront-api/internal/dto"
)

func (s *Suite) placeOrder(token string, req dto.CreateOrderRequest) domain.Order {
	resp := s.postJSON("/api/v1/orders", token, req)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var order domain.Order
	s.decode(resp, &order)
	return order
}

func (s *Suite) TestOrder_Create() {
	admin := s.registerAdmin("0900000001", "AdminPass123")
	product := s.seedCatalog(admin.AccessToken, 19.99, 10)
	auth := s.registerUser("0912345678", "Password123")

	order := s.placeOrder(auth.AccessToken, dto.CreateOrderRequest{
		Total: 39.98,
		Items: []dto.OrderItemRequest{
			{ProductID: product.ID, Quantity: 2, Price: 19.99},
		},
	})

	s.Equal("pending", order.Status)
	s.Equal(auth.User.ID, order.UserID)
	s.InDelta(39.98, order.Total, 0.001)
	s.Require().Len(order.Items, 1)
	s.Equal(product.ID, order.Items[0].ProductID)
	s.Equal(2, order.Items[0].Quantity)
	s.InDelta(19.99, order.Items[0].Price, 0.001)
}

func (s *Suite) TestOrder_NonPositiveTotalRejected() {
	auth := s.registerUser("0912345678", "Password123")

	resp := s.postJSON("/api/v1/orders", auth.AccessToken, dto.CreateOrderRequest{Total: 0})
	s.Equal(http.StatusBadRequest, resp.StatusCode)

	var errResp dto.ErrorResponse
	s.decode(resp, &errResp)
	s.Equal("VALIDATION_ERROR", errResp.Error)
}

func (s *Suite) TestOrder_PricesKeptAsSubmitted() {
	admin := s.registerAdmin("0900000001", "AdminPass123")
	product := s.seedCatalog(admin.AccessToken, 19.99, 10)
	auth := s.registerUser("0912345678", "Password123")

	order := s.placeOrder(auth.AccessToken, dto.CreateOrderRequest{
		Total: 19.99,
		Items: []dto.OrderItemRequest{
			{ProductID: product.ID, Quantity: 1, Price: 19.99},
		},
	})

	// A later price change must not leak into the stored order line.
	newPrice := 49.99
	resp := s.putJSON(fmt.Sprintf("/api/v1/products/%d", product.ID), admin.AccessToken, dto.UpdateProductRequest{
		Price: &newPrice,
	})
	resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	resp = s.get(fmt.Sprintf("/api/v1/orders/%d", order.ID), auth.AccessToken)
	s.Equal(http.StatusOK, resp.StatusCode)

	var fetched domain.Order
	s.decode(resp, &fetched)
	s.Require().Len(fetched.Items, 1)
	s.InDelta(19.99, fetched.Items[0].Price, 0.001)
	s.InDelta(19.99, fetched.Total, 0.001)
}

func (s *Suite) TestOrder_OwnerScoping() {
	admin := s.registerAdmin("0900000001", "AdminPass123")
	product := s.seedCatalog(admin.AccessToken, 10.00, 10)
	owner := s.registerUser("0912345678", "Password123")
	other := s.registerUser("0987654321", "Password123")

	order := s.placeOrder(owner.AccessToken, dto.CreateOrderRequest{
		Total: 10.00,
		Items: []dto.OrderItemRequest{
			{ProductID: product.ID, Quantity: 1, Price: 10.00},
		},
	})

	resp := s.get(fmt.Sprintf("/api/v1/orders/%d", order.ID), other.AccessToken)
	resp.Body.Close()
	s.Equal(http.StatusForbidden, resp.StatusCode)

	// Admins can read any order.
	resp = s.get(fmt.Sprintf("/api/v1/orders/%d", order.ID), admin.AccessToken)
	resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	// Listing only returns the requester's own orders.
	resp = s.get("/api/v1/orders", other.AccessToken)
	s.Equal(http.StatusOK, resp.StatusCode)

	var list dto.ListResponse
	s.decode(resp, &list)
	s.Zero(list.Total)
}

func (s *Suite) TestOrder_UpdateStatus() {
	admin := s.registerAdmin("0900000001", "AdminPass123")
	product := s.seedCatalog(admin.AccessToken, 10.00, 10)
	auth := s.registerUser("0912345678", "Password123")

	order := s.placeOrder(auth.AccessToken, dto.CreateOrderRequest{
		Total: 10.00,
		Items: []dto.OrderItemRequest{
			{ProductID: product.ID, Quantity: 1, Price: 10.00},
		},
	})

	resp := s.putJSON(fmt.Sprintf("/api/v1/orders/%d/status", order.ID), admin.AccessToken, dto.UpdateOrderStatusRequest{
		Status: "Completed",
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	var updated domain.Order
	s.decode(resp, &updated)
	s.Equal("completed", updated.Status)

	// Unknown statuses are rejected.
	resp = s.putJSON(fmt.Sprintf("/api/v1/orders/%d/status", order.ID), admin.AccessToken, dto.UpdateOrderStatusRequest{
		Status: "canceled",
	})
	s.Equal(http.StatusBadRequest, resp.StatusCode)

	var errResp dto.ErrorResponse
	s.decode(resp, &errResp)
	s.Equal("INVALID_STATUS", errResp.Error)
}

func (s *Suite) TestOrder_UpdateStatusRequiresAdmin() {
	admin := s.registerAdmin("0900000001", "AdminPass123")
	product := s.seedCatalog(admin.AccessToken, 10.00, 10)
	auth := s.registerUser("0912345678", "Password123")

	order := s.placeOrder(auth.AccessToken, dto.CreateOrderRequest{
		Total: 10.00,
		Items: []dto.OrderItemRequest{
			{ProductID: product.ID, Quantity: 1, Price: 10.00},
		},
	})

	resp := s.putJSON(fmt.Sprintf("/api/v1/orders/%d/status", order.ID), auth.AccessToken, dto.UpdateOrderStatusRequest{
		Status: "completed",
	})
	defer resp.Body.Close()

	s.Equal(http.StatusForbidden, resp.StatusCode)
}

func (s *Suite) TestOrder_DeleteBlockedWhileItemsExist() {
	admin := s.registerAdmin("0900000001", "AdminPass123")
	product := s.seedCatalog(admin.AccessToken, 10.00, 10)
	auth := s.registerUser("0912345678", "Password123")

	order := s.placeOrder(auth.AccessToken, dto.CreateOrderRequest{
		Total: 10.00,
		Items: []dto.OrderItemRequest{
			{ProductID: product.ID, Quantity: 1, Price: 10.00},
		},
	})

	resp := s.delete(fmt.Sprintf("/api/v1/orders/%d", order.ID), admin.AccessToken)
	s.Equal(http.StatusBadRequest, resp.StatusCode)

	var errResp dto.ErrorResponse
	s.decode(resp, &errResp)
	s.Equal("ORDER_HAS_ITEMS", errResp.Error)
}

func (s *Suite) TestOrder_DeleteItemlessOrder() {
	admin := s.registerAdmin("0900000001", "AdminPass123")

	order := s.placeOrder(admin.AccessToken, dto.CreateOrderRequest{Total: 5.00})

	resp := s.delete(fmt.Sprintf("/api/v1/orders/%d", order.ID), admin.AccessToken)
	resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)
}
