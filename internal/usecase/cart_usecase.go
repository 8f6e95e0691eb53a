package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CartUsecase defines the interface for shopping cart business operations.
type CartUsecase interface {
	// GetCart retrieves the user's cart, creating an empty one on first
	// access.
	GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// AddItem adds a variant to the user's cart. Adding a variant already in
	// the cart merges quantities into the existing line.
	AddItem(ctx context.Context, userID uuid.UUID, input *AddCartItemInput) (*entity.Cart, error)

	// UpdateItemQuantity replaces the quantity of an existing cart line.
	UpdateItemQuantity(ctx context.Context, userID uuid.UUID, itemID uuid.UUID, quantity int) (*entity.Cart, error)

	// RemoveItem deletes a line from the user's cart.
	RemoveItem(ctx context.Context, userID uuid.UUID, itemID uuid.UUID) error

	// ClearCart removes every line from the user's cart. Clearing an already
	// empty cart succeeds.
	ClearCart(ctx context.Context, userID uuid.UUID) error
}

// AddCartItemInput defines the data required to add an item to a cart.
type AddCartItemInput struct {
	VariantID uuid.UUID `json:"variant_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}
