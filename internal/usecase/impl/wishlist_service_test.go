package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/authz"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newWishlistService(wishlistRepo *mockRepo.MockWishlistRepository, catalogRepo *mockRepo.MockCatalogRepository) usecase.WishlistUsecase {
	return NewWishlistService(WishlistServiceParams{
		WishlistRepo: wishlistRepo,
		CatalogRepo:  catalogRepo,
		Logger:       newDiscardLogger(),
	})
}

func TestWishlistService_AddToWishlist_Success(t *testing.T) {
	wishlistRepo := mockRepo.NewMockWishlistRepository(t)
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	svc := newWishlistService(wishlistRepo, catalogRepo)

	ctx := context.Background()
	userID := uuid.New()
	product := &entity.Product{ID: uuid.New(), Name: "Trail Runner", Slug: "trail-runner"}

	catalogRepo.EXPECT().
		FindProductByID(ctx, product.ID).
		Return(product, nil)

	wishlistRepo.EXPECT().
		CreateWishlist(ctx, mock.AnythingOfType("*entity.Wishlist")).
		Run(func(_ context.Context, entry *entity.Wishlist) {
			assert.Equal(t, userID, entry.UserID)
			assert.Equal(t, product.ID, entry.ProductID)
		}).
		Return(nil)

	entry, err := svc.AddToWishlist(ctx, userID, product.ID)
	require.NoError(t, err)
	require.NotNil(t, entry.Product)
	assert.Equal(t, "trail-runner", entry.Product.Slug)
}

func TestWishlistService_AddToWishlist_ProductNotFound(t *testing.T) {
	wishlistRepo := mockRepo.NewMockWishlistRepository(t)
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	svc := newWishlistService(wishlistRepo, catalogRepo)

	ctx := context.Background()
	productID := uuid.New()

	catalogRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	_, err := svc.AddToWishlist(ctx, uuid.New(), productID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestWishlistService_AddToWishlist_Duplicate(t *testing.T) {
	wishlistRepo := mockRepo.NewMockWishlistRepository(t)
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	svc := newWishlistService(wishlistRepo, catalogRepo)

	ctx := context.Background()
	product := &entity.Product{ID: uuid.New()}

	catalogRepo.EXPECT().
		FindProductByID(ctx, product.ID).
		Return(product, nil)

	wishlistRepo.EXPECT().
		CreateWishlist(ctx, mock.AnythingOfType("*entity.Wishlist")).
		Return(repository.ErrDuplicateWishlist)

	_, err := svc.AddToWishlist(ctx, uuid.New(), product.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateWishlist))
}

func TestWishlistService_RemoveFromWishlist_Forbidden(t *testing.T) {
	wishlistRepo := mockRepo.NewMockWishlistRepository(t)
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	svc := newWishlistService(wishlistRepo, catalogRepo)

	ctx := context.Background()
	entry := &entity.Wishlist{ID: uuid.New(), UserID: uuid.New()}

	wishlistRepo.EXPECT().
		FindWishlistByID(ctx, entry.ID).
		Return(entry, nil)

	err := svc.RemoveFromWishlist(ctx, authz.Actor{UserID: uuid.New()}, entry.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestWishlistService_RemoveFromWishlist_Success(t *testing.T) {
	wishlistRepo := mockRepo.NewMockWishlistRepository(t)
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	svc := newWishlistService(wishlistRepo, catalogRepo)

	ctx := context.Background()
	userID := uuid.New()
	entry := &entity.Wishlist{ID: uuid.New(), UserID: userID}

	wishlistRepo.EXPECT().
		FindWishlistByID(ctx, entry.ID).
		Return(entry, nil)

	wishlistRepo.EXPECT().
		DeleteWishlist(ctx, entry.ID).
		Return(nil)

	err := svc.RemoveFromWishlist(ctx, authz.Actor{UserID: userID}, entry.ID)
	require.NoError(t, err)
}
