// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the persistence operations for orders.
type OrderRepository interface {
	// CreateOrder persists an order header together with all of its items as a
	// single unit. A partially created order is never observable.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order by its unique ID, preloading its items
	// (with variants) and payment.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListOrdersByUser retrieves a page of the user's orders, newest first,
	// and returns the total count.
	ListOrdersByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*entity.Order, int64, error)

	// UpdateOrderStatus sets the fulfilment status of an order.
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
}
