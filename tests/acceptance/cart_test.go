package acceptance

import (
	"fmt"
	"net/http"

	"github.com/quangtran-dev/storefront-api/internal/dto"
)

func (s *Suite) TestCart_EmptyOnFirstAccess() {
	auth := s.registerUser("0912345678", "Password123")

	resp := s.get("/api/v1/cart", auth.AccessToken)
	s.Equal(http.StatusOK, resp.StatusCode)

	var cart dto.CartResponse
	s.decode(resp, &cart)
	s.Empty(cart.Items)
	s.Zero(cart.Total)
	s.Zero(cart.ItemCount)
}

func (s *Suite) TestCart_AddItemAccumulatesQuantity() {
	admin := s.registerAdmin("0900000001", "AdminPass123")
	product := s.seedCatalog(admin.AccessToken, 19.99, 10)
	auth := s.registerUser("0912345678", "Password123")

	resp := s.postJSON("/api/v1/cart/items", auth.AccessToken, dto.AddToCartRequest{
		ProductID: product.ID,
		Quantity:  2,
	})
	resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	// Adding the same product again merges into the existing line.
	resp = s.postJSON("/api/v1/cart/items", auth.AccessToken, dto.AddToCartRequest{
		ProductID: product.ID,
		Quantity:  3,
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	var cart dto.CartResponse
	s.decode(resp, &cart)
	s.Require().Len(cart.Items, 1)
	s.Equal(5, cart.Items[0].Quantity)
	s.Equal(5, cart.ItemCount)
	s.InDelta(5*19.99, cart.Total, 0.001)
}

func (s *Suite) TestCart_AddItemInsufficientStock() {
	admin := s.registerAdmin("0900000001", "AdminPass123")
	product := s.seedCatalog(admin.AccessToken, 19.99, 2)
	auth := s.registerUser("0912345678", "Password123")

	resp := s.postJSON("/api/v1/cart/items", auth.AccessToken, dto.AddToCartRequest{
		ProductID: product.ID,
		Quantity:  5,
	})
	s.Equal(http.StatusBadRequest, resp.StatusCode)

	var errResp dto.ErrorResponse
	s.decode(resp, &errResp)
	s.Equal("INSUFFICIENT_STOCK", errResp.Error)
}

func (s *Suite) TestCart_CombinedQuantityCappedByStock() {
	admin := s.registerAdmin("0900000001", "AdminPass123")
	product := s.seedCatalog(admin.AccessToken, 19.99, 5)
	auth := s.registerUser("0912345678", "Password123")

	resp := s.postJSON("/api/v1/cart/items", auth.AccessToken, dto.AddToCartRequest{
		ProductID: product.ID,
		Quantity:  4,
	})
	resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	// 3 alone fits the stock of 5 but 4+3 does not.
	resp = s.postJSON("/api/v1/cart/items", auth.AccessToken, dto.AddToCartRequest{
		ProductID: product.ID,
		Quantity:  3,
	})
	s.Equal(http.StatusBadRequest, resp.StatusCode)

	var errResp dto.ErrorResponse
	s.decode(resp, &errResp)
	s.Equal("INSUFFICIENT_STOCK", errResp.Error)

	resp = s.get("/api/v1/cart", auth.AccessToken)
	s.Equal(http.StatusOK, resp.StatusCode)

	var cart dto.CartResponse
	s.decode(resp, &cart)
	s.Require().Len(cart.Items, 1)
	s.Equal(4, cart.Items[0].Quantity)
}

func (s *Suite) TestCart_AddUnknownProduct() {
	auth := s.registerUser("0912345678", "Password123")

	resp := s.postJSON("/api/v1/cart/items", auth.AccessToken, dto.AddToCartRequest{
		ProductID: 424242,
		Quantity:  1,
	})
	defer resp.Body.Close()

	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *Suite) TestCart_UpdateItemReplacesQuantity() {
	admin := s.registerAdmin("0900000001", "AdminPass123")
	product := s.seedCatalog(admin.AccessToken, 10.00, 10)
	auth := s.registerUser("0912345678", "Password123")

	resp := s.postJSON("/api/v1/cart/items", auth.AccessToken, dto.AddToCartRequest{
		ProductID: product.ID,
		Quantity:  2,
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	var cart dto.CartResponse
	s.decode(resp, &cart)
	s.Require().Len(cart.Items, 1)
	itemID := cart.Items[0].ID

	resp = s.putJSON(fmt.Sprintf("/api/v1/cart/items/%d", itemID), auth.AccessToken, dto.UpdateCartItemRequest{
		Quantity: 7,
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	s.decode(resp, &cart)
	s.Require().Len(cart.Items, 1)
	s.Equal(7, cart.Items[0].Quantity)
}

func (s *Suite) TestCart_CannotTouchAnotherUsersItem() {
	admin := s.registerAdmin("0900000001", "AdminPass123")
	product := s.seedCatalog(admin.AccessToken, 10.00, 10)
	owner := s.registerUser("0912345678", "Password123")
	other := s.registerUser("0987654321", "Password123")

	resp := s.postJSON("/api/v1/cart/items", owner.AccessToken, dto.AddToCartRequest{
		ProductID: product.ID,
		Quantity:  1,
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	var cart dto.CartResponse
	s.decode(resp, &cart)
	s.Require().Len(cart.Items, 1)
	itemID := cart.Items[0].ID

	resp = s.putJSON(fmt.Sprintf("/api/v1/cart/items/%d", itemID), other.AccessToken, dto.UpdateCartItemRequest{
		Quantity: 3,
	})
	defer resp.Body.Close()

	s.Equal(http.StatusForbidden, resp.StatusCode)
}

func (s *Suite) TestCart_RemoveItemAndClear() {
	admin := s.registerAdmin("0900000001", "AdminPass123")
	product := s.seedCatalog(admin.AccessToken, 10.00, 10)
	auth := s.registerUser("0912345678", "Password123")

	resp := s.postJSON("/api/v1/cart/items", auth.AccessToken, dto.AddToCartRequest{
		ProductID: product.ID,
		Quantity:  2,
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	var cart dto.CartResponse
	s.decode(resp, &cart)
	s.Require().Len(cart.Items, 1)

	resp = s.delete(fmt.Sprintf("/api/v1/cart/items/%d", cart.Items[0].ID), auth.AccessToken)
	s.Equal(http.StatusOK, resp.StatusCode)

	s.decode(resp, &cart)
	s.Empty(cart.Items)

	resp = s.delete("/api/v1/cart", auth.AccessToken)
	resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *Suite) TestCart_RequiresAuth() {
	resp := s.get("/api/v1/cart", "")
	defer resp.Body.Close()

	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}
