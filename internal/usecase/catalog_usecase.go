// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/authz"
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogUsecase defines the interface for catalog-related business operations.
type CatalogUsecase interface {
	// CreateCategory creates a new category, deriving the slug from the name
	// when not given.
	CreateCategory(ctx context.Context, input *CreateCategoryInput) (*entity.Category, error)

	// ListCategories retrieves all categories ordered by name.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// GetCategoryBySlug retrieves a single category by its slug.
	GetCategoryBySlug(ctx context.Context, slug string) (*entity.Category, error)

	// CreateProduct creates a new product under a category.
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)

	// ListProducts retrieves a page of products matching the given filters.
	ListProducts(ctx context.Context, input *ListProductsInput) (*ProductPage, error)

	// GetProductBySlug retrieves a product with its variants, images and
	// reviews.
	GetProductBySlug(ctx context.Context, slug string) (*entity.Product, error)

	// UpdateProductStatus transitions a product through its lifecycle.
	UpdateProductStatus(ctx context.Context, productID uuid.UUID, status entity.ProductStatus) error

	// AddVariant adds a purchasable variant to a product.
	AddVariant(ctx context.Context, input *AddVariantInput) (*entity.ProductVariant, error)

	// AddImage attaches an image to a product. Marking the image as main
	// demotes any previous main image.
	AddImage(ctx context.Context, input *AddImageInput) (*entity.ProductImage, error)

	// AddReview records a review for a product by the acting user. A user may
	// review a given product at most once.
	AddReview(ctx context.Context, actor authz.Actor, input *AddReviewInput) (*entity.ProductReview, error)
}

// --- Input DTOs ---

// CreateCategoryInput defines the data required to create a category.
type CreateCategoryInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Slug        string `json:"slug,omitempty" validate:"omitempty,max=120"`
	Description string `json:"description,omitempty"`
}

// CreateProductInput defines the data required to create a product.
type CreateProductInput struct {
	CategorySlug string `json:"category_slug" validate:"required"`
	Name         string `json:"name" validate:"required,max=200"`
	Slug         string `json:"slug,omitempty" validate:"omitempty,max=220"`
	Description  string `json:"description,omitempty"`
}

// ListProductsInput defines the filters and pagination for product listing.
type ListProductsInput struct {
	CategorySlug string
	Status       string
	InStockOnly  bool
	Page         int
	PageSize     int
}

// ProductPage is a single page of a product listing.
type ProductPage struct {
	Items    []*entity.Product `json:"items"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// AddVariantInput defines the data required to add a product variant.
type AddVariantInput struct {
	ProductID         uuid.UUID        `json:"product_id" validate:"required"`
	SKU               string           `json:"sku" validate:"required,max=64"`
	Size              string           `json:"size,omitempty"`
	Color             string           `json:"color,omitempty"`
	Price             decimal.Decimal  `json:"price"`
	CompareAtPrice    *decimal.Decimal `json:"compare_at_price,omitempty"`
	InventoryQuantity int              `json:"inventory_quantity" validate:"gte=0"`
	LowStockThreshold *int             `json:"low_stock_threshold,omitempty" validate:"omitempty,gte=0"`
}

// AddImageInput defines the data required to attach a product image.
type AddImageInput struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	URL       string    `json:"url" validate:"required,url"`
	AltText   string    `json:"alt_text,omitempty"`
	IsMain    bool      `json:"is_main"`
	SortOrder int       `json:"sort_order" validate:"gte=0"`
}

// AddReviewInput defines the data required to record a product review.
type AddReviewInput struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Rating    int       `json:"rating" validate:"required,min=1,max=5"`
	Title     string    `json:"title,omitempty" validate:"omitempty,max=200"`
	Comment   string    `json:"comment,omitempty"`
}
