package usecase

import (
	"context"

	"storefront/internal/domain/authz"
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// WishlistUsecase defines the interface for wishlist use cases.
type WishlistUsecase interface {
	// AddToWishlist saves a product to the user's wishlist. A product may be
	// wished for at most once per user.
	AddToWishlist(ctx context.Context, userID, productID uuid.UUID) (*entity.Wishlist, error)

	// ListWishlist retrieves the user's wishlist, newest first.
	ListWishlist(ctx context.Context, userID uuid.UUID) ([]*entity.Wishlist, error)

	// RemoveFromWishlist deletes a wishlist entry, enforcing ownership.
	RemoveFromWishlist(ctx context.Context, actor authz.Actor, wishlistID uuid.UUID) error
}
