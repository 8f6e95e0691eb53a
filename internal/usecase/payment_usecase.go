package usecase

import (
	"context"

	"storefront/internal/domain/authz"
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentUsecase defines the interface for payment use cases.
type PaymentUsecase interface {
	// CreatePayment records a payment attempt against an order. An order has
	// at most one payment.
	CreatePayment(ctx context.Context, actor authz.Actor, input *CreatePaymentInput) (*entity.Payment, error)

	// GetPayment retrieves a payment, enforcing ownership via its order.
	GetPayment(ctx context.Context, actor authz.Actor, paymentID uuid.UUID) (*entity.Payment, error)

	// ListPayments retrieves the user's payments, newest first.
	ListPayments(ctx context.Context, userID uuid.UUID) ([]*entity.Payment, error)

	// UpdatePaymentStatus records the outcome of a payment attempt. Admin
	// only.
	UpdatePaymentStatus(ctx context.Context, actor authz.Actor, input *UpdatePaymentStatusInput) error
}

// --- Input DTOs ---

// CreatePaymentInput defines the data required to record a payment.
type CreatePaymentInput struct {
	OrderID uuid.UUID        `json:"order_id" validate:"required"`
	Method  string           `json:"method" validate:"required"`
	Amount  *decimal.Decimal `json:"amount,omitempty"`
}

// UpdatePaymentStatusInput defines the data required to update a payment's
// status.
type UpdatePaymentStatusInput struct {
	PaymentID     uuid.UUID `json:"payment_id" validate:"required"`
	Status        string    `json:"status" validate:"required"`
	TransactionID string    `json:"transaction_id,omitempty"`
}
