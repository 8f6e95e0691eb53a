// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for payment persistence.
var (
	// ErrPaymentNotFound is returned when a payment is not found.
	ErrPaymentNotFound = errors.New("payment not found")
	// ErrDuplicatePayment is returned when a second payment is created for the
	// same order.
	ErrDuplicatePayment = errors.New("payment already exists for order")
)

// PaymentRepository defines the persistence operations for payments.
type PaymentRepository interface {
	// CreatePayment persists a new payment record. Returns ErrDuplicatePayment
	// when the order already has one.
	CreatePayment(ctx context.Context, payment *entity.Payment) error

	// FindPaymentByID retrieves a payment by its unique ID, preloading its order.
	FindPaymentByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)

	// FindPaymentByOrder retrieves the payment attached to an order.
	FindPaymentByOrder(ctx context.Context, orderID uuid.UUID) (*entity.Payment, error)

	// ListPaymentsByUser retrieves all payments for orders placed by the user,
	// newest first.
	ListPaymentsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Payment, error)

	// UpdatePaymentStatus sets the settlement status and the external
	// transaction ID of a payment.
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus, transactionID string) error
}
