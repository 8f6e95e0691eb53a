// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for wishlist persistence.
var (
	// ErrWishlistNotFound is returned when a wishlist entry is not found.
	ErrWishlistNotFound = errors.New("wishlist entry not found")
	// ErrDuplicateWishlist is returned when a product is added to a user's
	// wishlist twice.
	ErrDuplicateWishlist = errors.New("product already in wishlist")
)

// WishlistRepository defines the persistence operations for wishlists.
type WishlistRepository interface {
	// CreateWishlist persists a new wishlist entry. Returns
	// ErrDuplicateWishlist when the (user, product) pair already exists.
	CreateWishlist(ctx context.Context, wishlist *entity.Wishlist) error

	// FindWishlistByID retrieves a wishlist entry by its unique ID.
	FindWishlistByID(ctx context.Context, id uuid.UUID) (*entity.Wishlist, error)

	// ListWishlistsByUser retrieves all wishlist entries for a user, newest
	// first, preloading the wished-for products.
	ListWishlistsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Wishlist, error)

	// DeleteWishlist removes a wishlist entry by its ID.
	DeleteWishlist(ctx context.Context, id uuid.UUID) error
}
