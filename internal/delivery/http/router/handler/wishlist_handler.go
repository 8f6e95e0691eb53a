package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WishlistHandlerParams holds dependencies for WishlistHandler, injected by Fx.
type WishlistHandlerParams struct {
	fx.In

	WishlistUC usecase.WishlistUsecase
	Logger     *slog.Logger
}

// WishlistHandler holds dependencies for wishlist-related handlers
type WishlistHandler struct {
	wishlistUC usecase.WishlistUsecase
	logger     *slog.Logger
}

// NewWishlistHandler is the constructor for WishlistHandler
func NewWishlistHandler(params WishlistHandlerParams) *WishlistHandler {
	return &WishlistHandler{
		wishlistUC: params.WishlistUC,
		logger:     params.Logger,
	}
}

// AddToWishlistRequest represents the request body for saving a product to
// the wishlist
type AddToWishlistRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
}

// AddToWishlist handles saving a product to the user's wishlist
func (h *WishlistHandler) AddToWishlist(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req AddToWishlistRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid wishlist input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	entry, err := h.wishlistUC.AddToWishlist(c.Request().Context(), userID, req.ProductID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toWishlistView(entry), "Product added to wishlist successfully")
}

// ListWishlist handles retrieving the user's wishlist
func (h *WishlistHandler) ListWishlist(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	entries, err := h.wishlistUC.ListWishlist(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	views := make([]*WishlistView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, toWishlistView(entry))
	}

	return response.Success(c, http.StatusOK, views, "Wishlist retrieved successfully")
}

// RemoveFromWishlist handles deleting a wishlist entry
func (h *WishlistHandler) RemoveFromWishlist(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	wishlistID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid wishlist entry ID")
	}

	if err := h.wishlistUC.RemoveFromWishlist(c.Request().Context(), actor, wishlistID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Removed from wishlist"}, "Wishlist entry removed successfully")
}
