package usecase

import (
	"context"

	"storefront/internal/domain/authz"
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderUsecase defines the interface for order management use cases.
type OrderUsecase interface {
	// CreateOrder creates an order from an explicit list of lines, reserving
	// inventory atomically. Either every line is reserved or none is.
	CreateOrder(ctx context.Context, userID uuid.UUID, input *CreateOrderInput) (*entity.Order, error)

	// CreateOrderFromCart converts the user's cart into an order and clears
	// the cart after the order is committed.
	CreateOrderFromCart(ctx context.Context, userID uuid.UUID, input *ShippingInput) (*entity.Order, error)

	// GetOrder retrieves an order with its lines and payment, enforcing
	// ownership.
	GetOrder(ctx context.Context, actor authz.Actor, orderID uuid.UUID) (*entity.Order, error)

	// ListOrders retrieves a page of the user's orders, newest first.
	ListOrders(ctx context.Context, userID uuid.UUID, page, pageSize int) (*OrderPage, error)

	// UpdateOrderStatus transitions an order through its lifecycle. Admin
	// only.
	UpdateOrderStatus(ctx context.Context, actor authz.Actor, orderID uuid.UUID, status entity.OrderStatus) error

	// GenerateOrderQR generates a pickup QR code for an order, enforcing
	// ownership.
	GenerateOrderQR(ctx context.Context, actor authz.Actor, orderID uuid.UUID) ([]byte, error)
}

// --- Input DTOs ---

// OrderLine is a single requested line in an explicit order.
type OrderLine struct {
	VariantID uuid.UUID `json:"variant_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

// ShippingInput defines the delivery details for an order.
type ShippingInput struct {
	ShippingAddress string `json:"shipping_address" validate:"required"`
	Phone           string `json:"phone" validate:"required,max=32"`
}

// CreateOrderInput defines the data required to create an order from
// explicit lines.
type CreateOrderInput struct {
	ShippingInput
	Lines []OrderLine `json:"lines" validate:"required,min=1,dive"`
}

// OrderPage is a single page of a user's order history.
type OrderPage struct {
	Items    []*entity.Order `json:"items"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}
