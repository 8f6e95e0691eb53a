// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod describes how an order is paid.
type PaymentMethod string

// Valid payment methods.
const (
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodPayPal PaymentMethod = "paypal"
	PaymentMethodCash   PaymentMethod = "cash"
)

// Valid reports whether the method is one of the supported payment methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodPayPal, PaymentMethodCash:
		return true
	}

	return false
}

// PaymentStatus describes the settlement state of a payment.
type PaymentStatus string

// Valid payment statuses.
const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Valid reports whether the status is one of the known settlement states.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed:
		return true
	}

	return false
}

// Payment is the settlement record attached to an order. Each order has at
// most one payment; its status is driven by an external payment collaborator.
type Payment struct {
	ID            uuid.UUID       // The Global Unique Identifier (GUID) for the payment.
	OrderID       uuid.UUID       // Reference to the paid order; unique per payment.
	Order         *Order          // The order; nil when not preloaded.
	Method        PaymentMethod   // How the order is paid.
	Status        PaymentStatus   // Current settlement state.
	Amount        decimal.Decimal // Amount charged; defaults to the order total.
	TransactionID string          // Identifier assigned by the external payment provider.
	CreatedAt     time.Time       // Timestamp of when this payment record was created.
	UpdatedAt     time.Time       // Timestamp of the last status change.
}
