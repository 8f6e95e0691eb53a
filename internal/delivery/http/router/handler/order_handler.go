package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order-related handlers
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// CreateOrderRequest represents the request body for placing an order.
// When FromCart is true the order lines come from the user's cart and
// Items must be empty; otherwise Items is required.
type CreateOrderRequest struct {
	FromCart        bool                `json:"from_cart"`
	ShippingAddress string              `json:"shipping_address" validate:"required"`
	Phone           string              `json:"phone" validate:"required,max=32"`
	Items           []usecase.OrderLine `json:"items,omitempty" validate:"omitempty,min=1,dive"`
}

// UpdateOrderStatusRequest represents the request body for an order
// lifecycle transition
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// CreateOrder handles placing an order, either from explicit lines or from
// the user's cart
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	shipping := usecase.ShippingInput{
		ShippingAddress: req.ShippingAddress,
		Phone:           req.Phone,
	}

	var (
		order *entity.Order
		err   error
	)

	if req.FromCart {
		if len(req.Items) > 0 {
			return response.BadRequest(c, "VALIDATION_ERROR", "Items must be empty when ordering from cart")
		}

		order, err = h.orderUC.CreateOrderFromCart(c.Request().Context(), userID, &shipping)
	} else {
		if len(req.Items) == 0 {
			return response.BadRequest(c, "VALIDATION_ERROR", "At least one order item is required")
		}

		order, err = h.orderUC.CreateOrder(c.Request().Context(), userID, &usecase.CreateOrderInput{
			ShippingInput: shipping,
			Lines:         req.Items,
		})
	}

	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toOrderView(order), "Order created successfully")
}

// GetOrder handles retrieving a single order
func (h *OrderHandler) GetOrder(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), actor, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrderView(order), "Order retrieved successfully")
}

// ListOrders handles retrieving the user's order history
func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("page_size"))

	orders, err := h.orderUC.ListOrders(c.Request().Context(), userID, page, pageSize)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrderPageView(orders), "Orders retrieved successfully")
}

// UpdateOrderStatus handles an order lifecycle transition
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.orderUC.UpdateOrderStatus(c.Request().Context(), actor, orderID, entity.OrderStatus(req.Status)); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": req.Status}, "Order status updated successfully")
}

// GenerateOrderQR handles generating a pickup QR code for an order
func (h *OrderHandler) GenerateOrderQR(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	qrCode, err := h.orderUC.GenerateOrderQR(c.Request().Context(), actor, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	// Return QR code as PNG image
	c.Response().Header().Set("Content-Type", "image/png")
	c.Response().Header().Set("Content-Disposition", "inline; filename=order-qr.png")

	return c.Blob(http.StatusOK, "image/png", qrCode)
}
