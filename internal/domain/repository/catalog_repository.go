// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrVariantNotFound is returned when a product variant is not found.
	ErrVariantNotFound = errors.New("product variant not found")
	// ErrImageNotFound is returned when a product image is not found.
	ErrImageNotFound = errors.New("product image not found")
	// ErrDuplicateSlug is returned when a category or product slug already exists.
	ErrDuplicateSlug = errors.New("slug already exists")
	// ErrDuplicateReview is returned when a user reviews the same product twice.
	ErrDuplicateReview = errors.New("user already reviewed this product")
	// ErrInsufficientInventory is returned when a guarded inventory decrement
	// would drive the quantity below zero.
	ErrInsufficientInventory = errors.New("insufficient inventory")
)

// ListProductsParams narrows and pages a product listing.
type ListProductsParams struct {
	CategorySlug string               // Filter by category slug; empty means all categories.
	Status       entity.ProductStatus // Filter by lifecycle status; empty means all statuses.
	InStockOnly  bool                 // Keep only products with at least one in-stock variant.
	Page         int                  // 1-based page number.
	PageSize     int                  // Items per page.
}

// CatalogRepository defines the persistence operations for the product catalog:
// categories, products, variants, images and reviews.
type CatalogRepository interface {
	// CreateCategory persists a new category. Returns ErrDuplicateSlug when the
	// name or slug is already taken.
	CreateCategory(ctx context.Context, category *entity.Category) error

	// FindCategoryBySlug retrieves a category by its slug.
	FindCategoryBySlug(ctx context.Context, slug string) (*entity.Category, error)

	// ListCategories retrieves all categories ordered by name.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// CreateProduct persists a new product. Returns ErrDuplicateSlug when the
	// slug is already taken.
	CreateProduct(ctx context.Context, product *entity.Product) error

	// FindProductByID retrieves a product by its unique ID.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindProductBySlug retrieves a product by its slug, preloading its
	// category, variants, images and reviews.
	FindProductBySlug(ctx context.Context, slug string) (*entity.Product, error)

	// ListProducts retrieves a page of products matching the params, preloading
	// variants and images, and returns the total match count.
	ListProducts(ctx context.Context, params ListProductsParams) ([]*entity.Product, int64, error)

	// UpdateProductStatus sets a product's lifecycle status. Returns
	// ErrProductNotFound when the product does not exist.
	UpdateProductStatus(ctx context.Context, id uuid.UUID, status entity.ProductStatus) error

	// CreateVariant persists a new variant for a product.
	CreateVariant(ctx context.Context, variant *entity.ProductVariant) error

	// FindVariantByID retrieves a variant by its unique ID, preloading its product.
	FindVariantByID(ctx context.Context, id uuid.UUID) (*entity.ProductVariant, error)

	// LockVariant retrieves a variant by ID while holding a row lock for the
	// remainder of the surrounding transaction. Only meaningful on a
	// transaction-bound repository obtained through the RepositoryFactory.
	LockVariant(ctx context.Context, id uuid.UUID) (*entity.ProductVariant, error)

	// DecrementInventory atomically subtracts quantity from a variant's
	// inventory. The update is guarded: it never drives the quantity below
	// zero and returns ErrInsufficientInventory instead.
	DecrementInventory(ctx context.Context, variantID uuid.UUID, quantity int) error

	// CreateImage persists a new product image. When the image is flagged as
	// main, the main flag is cleared on all sibling images in the same write.
	CreateImage(ctx context.Context, image *entity.ProductImage) error

	// SetMainImage flags one image as the product's main image, clearing the
	// flag on all other images of that product in the same write.
	SetMainImage(ctx context.Context, productID, imageID uuid.UUID) error

	// CreateReview persists a new product review. Returns ErrDuplicateReview
	// when the user has already reviewed the product.
	CreateReview(ctx context.Context, review *entity.ProductReview) error
}
