// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus describes the fulfilment state of an order.
type OrderStatus string

// Valid order statuses.
const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether the status is one of the known fulfilment states.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}

	return false
}

// Order is an immutable snapshot of a purchase. TotalAmount and the item
// prices are computed once at creation time and never change afterwards,
// regardless of later catalog price changes.
type Order struct {
	ID              uuid.UUID       // The Global Unique Identifier (GUID) for the order.
	UserID          uuid.UUID       // Reference to the purchasing user.
	Status          OrderStatus     // Current fulfilment state.
	TotalAmount     decimal.Decimal // Frozen sum of all line totals at creation time.
	ShippingAddress string          // Free-form delivery address.
	Phone           string          // Contact phone number for delivery.
	Items           []*OrderItem    // Order lines, created atomically with the order.
	Payment         *Payment        // The payment record; nil when none exists or not preloaded.
	CreatedAt       time.Time       // Timestamp of when this order was placed.
	UpdatedAt       time.Time       // Timestamp of the last status change.
}

// OrderItem is a single line of an order. Price is a frozen copy of the
// variant's unit price at order time.
type OrderItem struct {
	ID        uuid.UUID       // The Global Unique Identifier (GUID) for the order item.
	OrderID   uuid.UUID       // Reference to the owning order.
	VariantID uuid.UUID       // Reference to the ordered product variant.
	Variant   *ProductVariant // The variant; nil when not preloaded.
	Quantity  int             // Units ordered; always positive.
	Price     decimal.Decimal // Unit price frozen at order-creation time.
	CreatedAt time.Time       // Timestamp of when this line was created.
}

// TotalPrice returns quantity times the frozen unit price.
func (i *OrderItem) TotalPrice() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
