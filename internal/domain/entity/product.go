// Package entity contains the core business objects of the project.
package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductStatus describes the lifecycle state of a product.
type ProductStatus string

// Valid product statuses.
const (
	ProductStatusDraft        ProductStatus = "draft"
	ProductStatusActive       ProductStatus = "active"
	ProductStatusInactive     ProductStatus = "inactive"
	ProductStatusDiscontinued ProductStatus = "discontinued"
)

// Valid reports whether the status is one of the known lifecycle states.
func (s ProductStatus) Valid() bool {
	switch s {
	case ProductStatusDraft, ProductStatusActive, ProductStatusInactive, ProductStatusDiscontinued:
		return true
	}

	return false
}

// Product is the catalog root. Pricing and stock live on its variants;
// the product itself only carries identity, description and lifecycle state.
type Product struct {
	ID           uuid.UUID         // The Global Unique Identifier (GUID) for the product.
	Name         string            // Display name of the product.
	Slug         string            // URL-safe identifier, unique across products; derived from Name when not supplied.
	Description  string            // Long-form product description.
	CategoryID   uuid.UUID         // Reference to the owning category.
	CategoryName string            // Denormalized category name for read paths; empty when not preloaded.
	Status       ProductStatus     // Lifecycle state; only active products are publicly listed.
	Variants     []*ProductVariant // Purchasable units of the product. Empty when not preloaded.
	Images       []*ProductImage   // Product images. Empty when not preloaded.
	Reviews      []*ProductReview  // Customer reviews. Empty when not preloaded.
	CreatedAt    time.Time         // Timestamp of when this product was created.
	UpdatedAt    time.Time         // Timestamp of the last modification.
}

// IsInStock reports whether any variant has inventory left.
func (p *Product) IsInStock() bool {
	for _, v := range p.Variants {
		if v.IsInStock() {
			return true
		}
	}

	return false
}

// ReviewCount returns the number of loaded reviews.
func (p *Product) ReviewCount() int {
	return len(p.Reviews)
}

// AverageRating returns the mean review rating rounded to one decimal place,
// or 0 when the product has no reviews.
func (p *Product) AverageRating() float64 {
	if len(p.Reviews) == 0 {
		return 0
	}

	var sum int
	for _, r := range p.Reviews {
		sum += r.Rating
	}

	return math.Round(float64(sum)/float64(len(p.Reviews))*10) / 10
}

// DefaultLowStockThreshold is applied to variants created without an explicit threshold.
const DefaultLowStockThreshold = 5

// ProductVariant is a purchasable size/price/stock-bearing unit of a product.
type ProductVariant struct {
	ID                uuid.UUID        // The Global Unique Identifier (GUID) for the variant.
	ProductID         uuid.UUID        // Reference to the owning product.
	Product           *Product         // Owning product; nil when not preloaded.
	SKU               string           // Stock keeping unit; unique across variants.
	Size              string           // Size label, e.g. "M", "XL".
	Color             string           // Color label, e.g. "black".
	Price             decimal.Decimal  // Unit price. Zero means the price has not been set yet.
	CompareAtPrice    *decimal.Decimal // Optional original price used to mark the variant as on sale.
	InventoryQuantity int              // Units on hand; never negative.
	LowStockThreshold int              // Inventory level at or below which the variant counts as low stock.
	CreatedAt         time.Time        // Timestamp of when this variant was created.
	UpdatedAt         time.Time        // Timestamp of the last modification.
}

// HasPrice reports whether a positive unit price has been set.
func (v *ProductVariant) HasPrice() bool {
	return v.Price.IsPositive()
}

// IsOnSale reports whether the variant is currently discounted.
func (v *ProductVariant) IsOnSale() bool {
	return v.CompareAtPrice != nil && v.Price.LessThan(*v.CompareAtPrice)
}

// DiscountPercentage returns the discount as a percentage of the compare-at
// price, rounded to two decimal places. Zero when the variant is not on sale.
func (v *ProductVariant) DiscountPercentage() decimal.Decimal {
	if !v.IsOnSale() {
		return decimal.Zero
	}

	return v.CompareAtPrice.Sub(v.Price).
		Div(*v.CompareAtPrice).
		Mul(decimal.NewFromInt(100)).
		Round(2)
}

// IsInStock reports whether any inventory remains.
func (v *ProductVariant) IsInStock() bool {
	return v.InventoryQuantity > 0
}

// IsLowStock reports whether inventory is at or below the low-stock threshold.
func (v *ProductVariant) IsLowStock() bool {
	return v.InventoryQuantity <= v.LowStockThreshold
}

// ProductName returns the owning product's name, or the SKU when the product
// is not preloaded.
func (v *ProductVariant) ProductName() string {
	if v.Product != nil {
		return v.Product.Name
	}

	return v.SKU
}

// DisplayName returns a human-readable label for the variant, combining the
// product name with the size when one is set.
func (v *ProductVariant) DisplayName() string {
	name := v.ProductName()
	if v.Size != "" {
		return name + " (" + v.Size + ")"
	}

	return name
}

// ProductImage is a single image attached to a product.
// At most one image per product carries the main flag at any time.
type ProductImage struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the image.
	ProductID uuid.UUID // Reference to the owning product.
	URL       string    // Location of the stored image.
	AltText   string    // Accessibility text.
	IsMain    bool      // Marks the image shown in listings.
	SortOrder int       // Display ordering within the product gallery.
	CreatedAt time.Time // Timestamp of when this image was created.
}

// ProductReview is a customer rating of a product.
// A user may review a product at most once.
type ProductReview struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the review.
	ProductID uuid.UUID // Reference to the reviewed product.
	UserID    uuid.UUID // Reference to the reviewing user.
	Rating    int       // Star rating in [1, 5].
	Title     string    // Optional short headline.
	Comment   string    // Optional review body.
	CreatedAt time.Time // Timestamp of when this review was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}
