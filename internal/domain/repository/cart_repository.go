// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for cart persistence.
var (
	// ErrCartNotFound is returned when a cart is not found.
	ErrCartNotFound = errors.New("cart not found")
	// ErrCartItemNotFound is returned when a cart item is not found.
	ErrCartItemNotFound = errors.New("cart item not found")
	// ErrDuplicateCart is returned when a second cart is created for the same
	// user. Callers resolve it by re-fetching the existing cart.
	ErrDuplicateCart = errors.New("cart already exists for user")
	// ErrDuplicateCartItem is returned when a second row is created for the
	// same (cart, variant) pair. Callers resolve it by merging quantities.
	ErrDuplicateCartItem = errors.New("cart item already exists for variant")
)

// CartRepository defines the persistence operations for carts and their items.
type CartRepository interface {
	// CreateCart persists a new cart. Returns ErrDuplicateCart when the user
	// already has one; the caller re-fetches instead of failing.
	CreateCart(ctx context.Context, cart *entity.Cart) error

	// FindCartByUser retrieves the user's cart, preloading items with their
	// variants and owning products.
	FindCartByUser(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// FindItem retrieves the cart line for a (cart, variant) pair.
	FindItem(ctx context.Context, cartID, variantID uuid.UUID) (*entity.CartItem, error)

	// FindItemByID retrieves a cart line by its unique ID.
	FindItemByID(ctx context.Context, id uuid.UUID) (*entity.CartItem, error)

	// CreateItem persists a new cart line. Returns ErrDuplicateCartItem when a
	// line for the (cart, variant) pair already exists; the caller merges
	// quantities instead of failing.
	CreateItem(ctx context.Context, item *entity.CartItem) error

	// UpdateItemQuantity sets the quantity of an existing cart line.
	UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int) error

	// DeleteItem removes a single cart line.
	DeleteItem(ctx context.Context, itemID uuid.UUID) error

	// ClearCart removes all lines from a cart. Clearing an already-empty cart
	// is a no-op.
	ClearCart(ctx context.Context, cartID uuid.UUID) error
}
