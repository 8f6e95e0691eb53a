// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart is a user's shopping cart. Each user has at most one cart.
// Totals are always derived from the current items and the variants'
// live prices; they are never stored.
type Cart struct {
	ID        uuid.UUID   // The Global Unique Identifier (GUID) for the cart.
	UserID    uuid.UUID   // Reference to the owning user; unique per cart.
	Items     []*CartItem // Current cart lines. Empty when not preloaded.
	CreatedAt time.Time   // Timestamp of when this cart was created.
	UpdatedAt time.Time   // Timestamp of the last modification.
}

// TotalAmount sums the live line totals of all items.
func (c *Cart) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.TotalPrice())
	}

	return total
}

// TotalItems sums the quantities of all items.
func (c *Cart) TotalItems() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}

	return count
}

// CartItem is a single (variant, quantity) line in a cart.
// The pair (cart, variant) is unique; adding an existing variant merges
// into the line's quantity instead of creating a second row.
type CartItem struct {
	ID        uuid.UUID       // The Global Unique Identifier (GUID) for the cart item.
	CartID    uuid.UUID       // Reference to the owning cart.
	VariantID uuid.UUID       // Reference to the product variant.
	Variant   *ProductVariant // The variant; nil when not preloaded.
	Quantity  int             // Units of the variant in the cart; always positive.
	CreatedAt time.Time       // Timestamp of when this item was first added.
	UpdatedAt time.Time       // Timestamp of the last quantity change.
}

// TotalPrice returns quantity times the variant's current price.
// The price is live, not frozen: a catalog price change is reflected
// immediately in any unconverted cart.
func (i *CartItem) TotalPrice() decimal.Decimal {
	if i.Variant == nil {
		return decimal.Zero
	}

	return i.Variant.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
