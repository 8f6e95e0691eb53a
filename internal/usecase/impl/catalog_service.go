// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/authz"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	catalogRepo     repository.CatalogRepository
	defaultPageSize int
	maxPageSize     int
	logger          *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CatalogRepo repository.CatalogRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	defaultPageSize := config.DefaultPageSize
	maxPageSize := config.MaxPageSize
	if params.Config != nil && params.Config.Pagination != nil {
		if params.Config.Pagination.DefaultPageSize > 0 {
			defaultPageSize = params.Config.Pagination.DefaultPageSize
		}
		if params.Config.Pagination.MaxPageSize > 0 {
			maxPageSize = params.Config.Pagination.MaxPageSize
		}
	}

	return &catalogService{
		catalogRepo:     params.CatalogRepo,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCategory creates a new category, deriving the slug from the name when not given.
func (srv *catalogService) CreateCategory(ctx context.Context, input *usecase.CreateCategoryInput) (*entity.Category, error) {
	slug := input.Slug
	if slug == "" {
		slug = util.Slugify(input.Name)
	}
	if slug == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("category name does not produce a valid slug")
	}

	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New(),
		Name:        input.Name,
		Slug:        slug,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := srv.catalogRepo.CreateCategory(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return nil, domainerrors.ErrDuplicateSlug.WrapMessage("category slug already in use")
		}

		return nil, errors.Wrap(err, "failed to create category")
	}

	srv.log(ctx).Info("Category created",
		slog.String("category_id", category.ID.String()),
		slog.String("slug", category.Slug),
	)

	return category, nil
}

// ListCategories retrieves all categories ordered by name.
func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.catalogRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// GetCategoryBySlug retrieves a single category by its slug.
func (srv *catalogService) GetCategoryBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	category, err := srv.catalogRepo.FindCategoryBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by slug")
	}

	return category, nil
}

// CreateProduct creates a new product under a category.
func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	category, err := srv.catalogRepo.FindCategoryBySlug(ctx, input.CategorySlug)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by slug")
	}

	slug := input.Slug
	if slug == "" {
		slug = util.Slugify(input.Name)
	}
	if slug == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("product name does not produce a valid slug")
	}

	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New(),
		CategoryID:   category.ID,
		CategoryName: category.Name,
		Name:         input.Name,
		Slug:         slug,
		Description:  input.Description,
		Status:       entity.ProductStatusDraft,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := srv.catalogRepo.CreateProduct(ctx, product); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return nil, domainerrors.ErrDuplicateSlug.WrapMessage("product slug already in use")
		}

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created",
		slog.String("product_id", product.ID.String()),
		slog.String("slug", product.Slug),
	)

	return product, nil
}

// ListProducts retrieves a page of products matching the given filters.
func (srv *catalogService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) (*usecase.ProductPage, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}

	pageSize := input.PageSize
	if pageSize <= 0 {
		pageSize = srv.defaultPageSize
	}
	if pageSize > srv.maxPageSize {
		pageSize = srv.maxPageSize
	}

	status := input.Status
	if status != "" && !entity.ProductStatus(status).Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown product status filter")
	}

	items, total, err := srv.catalogRepo.ListProducts(ctx, repository.ListProductsParams{
		CategorySlug: input.CategorySlug,
		Status:       entity.ProductStatus(status),
		InStockOnly:  input.InStockOnly,
		Page:         page,
		PageSize:     pageSize,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return &usecase.ProductPage{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetProductBySlug retrieves a product with its variants, images and reviews.
func (srv *catalogService) GetProductBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	product, err := srv.catalogRepo.FindProductBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by slug")
	}

	return product, nil
}

// UpdateProductStatus transitions a product through its lifecycle.
func (srv *catalogService) UpdateProductStatus(ctx context.Context, productID uuid.UUID, status entity.ProductStatus) error {
	if !status.Valid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown product status")
	}

	if err := srv.catalogRepo.UpdateProductStatus(ctx, productID, status); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to update product status")
	}

	srv.log(ctx).Info("Product status updated",
		slog.String("product_id", productID.String()),
		slog.String("status", string(status)),
	)

	return nil
}

// AddVariant adds a purchasable variant to a product.
func (srv *catalogService) AddVariant(ctx context.Context, input *usecase.AddVariantInput) (*entity.ProductVariant, error) {
	if input.Price.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("price must not be negative")
	}
	if input.CompareAtPrice != nil && input.CompareAtPrice.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("compare-at price must not be negative")
	}

	product, err := srv.catalogRepo.FindProductByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	threshold := entity.DefaultLowStockThreshold
	if input.LowStockThreshold != nil {
		threshold = *input.LowStockThreshold
	}

	now := time.Now()
	variant := &entity.ProductVariant{
		ID:                uuid.New(),
		ProductID:         product.ID,
		SKU:               input.SKU,
		Size:              input.Size,
		Color:             input.Color,
		Price:             input.Price,
		CompareAtPrice:    input.CompareAtPrice,
		InventoryQuantity: input.InventoryQuantity,
		LowStockThreshold: threshold,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := srv.catalogRepo.CreateVariant(ctx, variant); err != nil {
		return nil, errors.Wrap(err, "failed to create variant")
	}

	return variant, nil
}

// AddImage attaches an image to a product.
func (srv *catalogService) AddImage(ctx context.Context, input *usecase.AddImageInput) (*entity.ProductImage, error) {
	product, err := srv.catalogRepo.FindProductByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	image := &entity.ProductImage{
		ID:        uuid.New(),
		ProductID: product.ID,
		URL:       input.URL,
		AltText:   input.AltText,
		IsMain:    input.IsMain,
		SortOrder: input.SortOrder,
		CreatedAt: time.Now(),
	}

	if err := srv.catalogRepo.CreateImage(ctx, image); err != nil {
		return nil, errors.Wrap(err, "failed to create image")
	}

	return image, nil
}

// AddReview records a review for a product by the acting user.
func (srv *catalogService) AddReview(ctx context.Context, actor authz.Actor, input *usecase.AddReviewInput) (*entity.ProductReview, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domainerrors.ErrInvalidRating
	}

	product, err := srv.catalogRepo.FindProductByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	now := time.Now()
	review := &entity.ProductReview{
		ID:        uuid.New(),
		ProductID: product.ID,
		UserID:    actor.UserID,
		Rating:    input.Rating,
		Title:     input.Title,
		Comment:   input.Comment,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := srv.catalogRepo.CreateReview(ctx, review); err != nil {
		if errors.Is(err, repository.ErrDuplicateReview) {
			return nil, domainerrors.ErrDuplicateReview
		}

		return nil, errors.Wrap(err, "failed to create review")
	}

	srv.log(ctx).Info("Review created",
		slog.String("product_id", product.ID.String()),
		slog.String("user_id", actor.UserID.String()),
		slog.Int("rating", input.Rating),
	)

	return review, nil
}
