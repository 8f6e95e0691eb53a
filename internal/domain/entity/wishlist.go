// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Wishlist marks a product a user wants to keep an eye on.
// The pair (user, product) is unique.
type Wishlist struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the wishlist entry.
	UserID    uuid.UUID // Reference to the owning user.
	ProductID uuid.UUID // Reference to the wished-for product.
	Product   *Product  // The product; nil when not preloaded.
	CreatedAt time.Time // Timestamp of when this entry was created.
}
