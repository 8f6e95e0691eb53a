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

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
	Logger    *slog.Logger
}

// PaymentHandler holds dependencies for payment-related handlers
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
	logger    *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: params.PaymentUC,
		logger:    params.Logger,
	}
}

// UpdatePaymentStatusRequest represents the request body for recording a
// payment outcome
type UpdatePaymentStatusRequest struct {
	Status        string `json:"status" validate:"required"`
	TransactionID string `json:"transaction_id,omitempty"`
}

// CreatePayment handles recording a payment attempt against an order
func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req usecase.CreatePaymentInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	payment, err := h.paymentUC.CreatePayment(c.Request().Context(), actor, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toPaymentView(payment), "Payment created successfully")
}

// GetPayment handles retrieving a single payment
func (h *PaymentHandler) GetPayment(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	paymentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid payment ID")
	}

	payment, err := h.paymentUC.GetPayment(c.Request().Context(), actor, paymentID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPaymentView(payment), "Payment retrieved successfully")
}

// ListPayments handles retrieving the user's payment history
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	payments, err := h.paymentUC.ListPayments(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	views := make([]*PaymentView, 0, len(payments))
	for _, payment := range payments {
		views = append(views, toPaymentView(payment))
	}

	return response.Success(c, http.StatusOK, views, "Payments retrieved successfully")
}

// UpdatePaymentStatus handles recording the outcome of a payment attempt
func (h *PaymentHandler) UpdatePaymentStatus(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	paymentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid payment ID")
	}

	var req UpdatePaymentStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdatePaymentStatusInput{
		PaymentID:     paymentID,
		Status:        req.Status,
		TransactionID: req.TransactionID,
	}

	if err := h.paymentUC.UpdatePaymentStatus(c.Request().Context(), actor, input); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": req.Status}, "Payment status updated successfully")
}
