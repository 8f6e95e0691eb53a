package impl

import (
	"context"
	"testing"

	"storefront/config"
	"storefront/internal/domain/authz"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalogService(catalogRepo repository.CatalogRepository, cfg *config.Config) usecase.CatalogUsecase {
	return NewCatalogService(CatalogServiceParams{
		CatalogRepo: catalogRepo,
		Config:      cfg,
		Logger:      newDiscardLogger(),
	})
}

func TestCatalogService_CreateCategory_DerivesSlug(t *testing.T) {
	mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)
	service := newCatalogService(mockCatalogRepo, newTestConfig())

	ctx := context.Background()

	mockCatalogRepo.EXPECT().
		CreateCategory(ctx, mock.AnythingOfType("*entity.Category")).
		Return(nil)

	category, err := service.CreateCategory(ctx, &usecase.CreateCategoryInput{
		Name: "Men's T-Shirts",
	})
	require.NoError(t, err)
	assert.Equal(t, "men-s-t-shirts", category.Slug)
	assert.Equal(t, "Men's T-Shirts", category.Name)
}

func TestCatalogService_CreateCategory_UnsluggableName(t *testing.T) {
	mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)
	service := newCatalogService(mockCatalogRepo, newTestConfig())

	_, err := service.CreateCategory(context.Background(), &usecase.CreateCategoryInput{
		Name: "!!!",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCatalogService_CreateCategory_DuplicateSlug(t *testing.T) {
	mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)
	service := newCatalogService(mockCatalogRepo, newTestConfig())

	ctx := context.Background()

	mockCatalogRepo.EXPECT().
		CreateCategory(ctx, mock.AnythingOfType("*entity.Category")).
		Return(repository.ErrDuplicateSlug)

	_, err := service.CreateCategory(ctx, &usecase.CreateCategoryInput{Name: "Shoes"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateSlug))
}

func TestCatalogService_CreateProduct_StartsAsDraft(t *testing.T) {
	mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)
	service := newCatalogService(mockCatalogRepo, newTestConfig())

	ctx := context.Background()
	category := &entity.Category{ID: uuid.New(), Name: "Shoes", Slug: "shoes"}

	mockCatalogRepo.EXPECT().
		FindCategoryBySlug(ctx, "shoes").
		Return(category, nil)

	mockCatalogRepo.EXPECT().
		CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	product, err := service.CreateProduct(ctx, &usecase.CreateProductInput{
		CategorySlug: "shoes",
		Name:         "Trail Runner",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ProductStatusDraft, product.Status)
	assert.Equal(t, "trail-runner", product.Slug)
	assert.Equal(t, category.ID, product.CategoryID)
}

func TestCatalogService_ListProducts_DefaultsPagination(t *testing.T) {
	mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)
	service := newCatalogService(mockCatalogRepo, newTestConfig())

	ctx := context.Background()

	mockCatalogRepo.EXPECT().
		ListProducts(ctx, mock.AnythingOfType("repository.ListProductsParams")).
		Run(func(_ context.Context, params repository.ListProductsParams) {
			assert.Equal(t, 1, params.Page)
			assert.Equal(t, config.DefaultPageSize, params.PageSize)
		}).
		Return([]*entity.Product{}, 0, nil)

	page, err := service.ListProducts(ctx, &usecase.ListProductsInput{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, config.DefaultPageSize, page.PageSize)
}

func TestCatalogService_ListProducts_CapsPageSize(t *testing.T) {
	mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)
	service := newCatalogService(mockCatalogRepo, newTestConfig())

	ctx := context.Background()

	mockCatalogRepo.EXPECT().
		ListProducts(ctx, mock.AnythingOfType("repository.ListProductsParams")).
		Run(func(_ context.Context, params repository.ListProductsParams) {
			assert.Equal(t, config.MaxPageSize, params.PageSize)
		}).
		Return([]*entity.Product{}, 0, nil)

	_, err := service.ListProducts(ctx, &usecase.ListProductsInput{PageSize: 5000})
	require.NoError(t, err)
}

func TestCatalogService_ListProducts_ForwardsStatusFilter(t *testing.T) {
	mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)
	service := newCatalogService(mockCatalogRepo, newTestConfig())

	ctx := context.Background()

	mockCatalogRepo.EXPECT().
		ListProducts(ctx, mock.AnythingOfType("repository.ListProductsParams")).
		Run(func(_ context.Context, params repository.ListProductsParams) {
			assert.Equal(t, entity.ProductStatusActive, params.Status)
		}).
		Return([]*entity.Product{}, 0, nil)

	_, err := service.ListProducts(ctx, &usecase.ListProductsInput{
		Status: string(entity.ProductStatusActive),
	})
	require.NoError(t, err)
}

func TestCatalogService_ListProducts_UnknownStatus(t *testing.T) {
	mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)
	service := newCatalogService(mockCatalogRepo, newTestConfig())

	_, err := service.ListProducts(context.Background(), &usecase.ListProductsInput{
		Status: "vaporware",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCatalogService_UpdateProductStatus_InvalidStatus(t *testing.T) {
	mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)
	service := newCatalogService(mockCatalogRepo, newTestConfig())

	err := service.UpdateProductStatus(context.Background(), uuid.New(), entity.ProductStatus("retired"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCatalogService_AddVariant_DefaultLowStockThreshold(t *testing.T) {
	mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)
	service := newCatalogService(mockCatalogRepo, newTestConfig())

	ctx := context.Background()
	productID := uuid.New()

	mockCatalogRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID}, nil)

	mockCatalogRepo.EXPECT().
		CreateVariant(ctx, mock.AnythingOfType("*entity.ProductVariant")).
		Return(nil)

	variant, err := service.AddVariant(ctx, &usecase.AddVariantInput{
		ProductID:         productID,
		SKU:               "TS-M-BLK",
		Size:              "M",
		Price:             decimal.NewFromInt(25),
		InventoryQuantity: 100,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultLowStockThreshold, variant.LowStockThreshold)
}

func TestCatalogService_AddVariant_NegativePrice(t *testing.T) {
	mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)
	service := newCatalogService(mockCatalogRepo, newTestConfig())

	_, err := service.AddVariant(context.Background(), &usecase.AddVariantInput{
		ProductID: uuid.New(),
		SKU:       "TS-M-BLK",
		Price:     decimal.NewFromInt(-1),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCatalogService_AddReview_Duplicate(t *testing.T) {
	mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)
	service := newCatalogService(mockCatalogRepo, newTestConfig())

	ctx := context.Background()
	productID := uuid.New()
	actor := authz.Actor{UserID: uuid.New()}

	mockCatalogRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID}, nil)

	mockCatalogRepo.EXPECT().
		CreateReview(ctx, mock.AnythingOfType("*entity.ProductReview")).
		Return(repository.ErrDuplicateReview)

	_, err := service.AddReview(ctx, actor, &usecase.AddReviewInput{
		ProductID: productID,
		Rating:    4,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateReview))
}

func TestCatalogService_AddReview_RatingOutOfRange(t *testing.T) {
	mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)
	service := newCatalogService(mockCatalogRepo, newTestConfig())

	_, err := service.AddReview(context.Background(), authz.Actor{UserID: uuid.New()},
		&usecase.AddReviewInput{ProductID: uuid.New(), Rating: 6})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRating))
}
