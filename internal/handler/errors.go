package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/quangtran-dev/storefront-api/internal/apperrors"
	"github.com/quangtran-dev/storefront-api/internal/domain"
	"github.com/quangtran-dev/storefront-api/internal/dto"
)

// respondError writes a classified error as JSON. Internal failures never
// leak their cause to the client.
func respondError(c *gin.Context, err error) {
	c.JSON(apperrors.HTTPStatus(err), dto.ErrorResponse{
		Error:   string(apperrors.KindOf(err)),
		Message: apperrors.MessageOf(err),
	})
}

// respondBindError writes a request binding failure
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   string(apperrors.KindValidation),
		Message: "Validation failed",
		Details: err.Error(),
	})
}

// currentUser returns the authenticated user placed by AuthMiddleware
func currentUser(c *gin.Context) (*domain.User, bool) {
	value, exists := c.Get("user")
	if !exists {
		return nil, false
	}
	user, ok := value.(*domain.User)
	return user, ok
}

// idParam parses a numeric path parameter
func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   string(apperrors.KindValidation),
			Message: "invalid " + name + " parameter",
		})
		return 0, false
	}
	return id, true
}

// pagination parses page and limit query parameters with defaults
func pagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	return page, limit
}
