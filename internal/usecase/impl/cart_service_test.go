package impl

import (
	"context"
	"testing"

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

func newCartService(cartRepo repository.CartRepository, catalogRepo repository.CatalogRepository) usecase.CartUsecase {
	return NewCartService(CartServiceParams{
		CartRepo:    cartRepo,
		CatalogRepo: catalogRepo,
		Logger:      newDiscardLogger(),
	})
}

func TestCartService_GetCart_CreatesOnFirstAccess(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)
	service := newCartService(mockCartRepo, mockCatalogRepo)

	ctx := context.Background()
	userID := uuid.New()

	mockCartRepo.EXPECT().
		FindCartByUser(ctx, userID).
		Return(nil, repository.ErrCartNotFound)

	mockCartRepo.EXPECT().
		CreateCart(ctx, mock.AnythingOfType("*entity.Cart")).
		Return(nil)

	cart, err := service.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, userID, cart.UserID)
	assert.Empty(t, cart.Items)
	assert.True(t, cart.TotalAmount().IsZero())
}

func TestCartService_GetCart_DuplicateCreateRefetches(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)
	service := newCartService(mockCartRepo, mockCatalogRepo)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.Cart{ID: uuid.New(), UserID: userID}

	mockCartRepo.EXPECT().
		FindCartByUser(ctx, userID).
		Return(nil, repository.ErrCartNotFound).
		Once()

	mockCartRepo.EXPECT().
		CreateCart(ctx, mock.AnythingOfType("*entity.Cart")).
		Return(repository.ErrDuplicateCart)

	mockCartRepo.EXPECT().
		FindCartByUser(ctx, userID).
		Return(existing, nil).
		Once()

	cart, err := service.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, cart.ID)
}

func TestCartService_AddItem_MergesExistingLine(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)
	service := newCartService(mockCartRepo, mockCatalogRepo)

	ctx := context.Background()
	userID := uuid.New()
	variantID := uuid.New()
	cartID := uuid.New()
	itemID := uuid.New()

	variant := &entity.ProductVariant{
		ID:                variantID,
		SKU:               "TS-M-BLK",
		Price:             decimal.NewFromInt(20),
		InventoryQuantity: 10,
	}
	existingItem := &entity.CartItem{
		ID:        itemID,
		CartID:    cartID,
		VariantID: variantID,
		Quantity:  2,
	}
	cart := &entity.Cart{ID: cartID, UserID: userID}

	mockCatalogRepo.EXPECT().
		FindVariantByID(ctx, variantID).
		Return(variant, nil)

	mockCartRepo.EXPECT().
		FindCartByUser(ctx, userID).
		Return(cart, nil)

	mockCartRepo.EXPECT().
		FindItem(ctx, cartID, variantID).
		Return(existingItem, nil)

	// Adding 3 to an existing line of 2 merges to 5.
	mockCartRepo.EXPECT().
		UpdateItemQuantity(ctx, itemID, 5).
		Return(nil)

	_, err := service.AddItem(ctx, userID, &usecase.AddCartItemInput{
		VariantID: variantID,
		Quantity:  3,
	})
	require.NoError(t, err)
}

func TestCartService_AddItem_NewLine(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)
	service := newCartService(mockCartRepo, mockCatalogRepo)

	ctx := context.Background()
	userID := uuid.New()
	variantID := uuid.New()
	cartID := uuid.New()

	variant := &entity.ProductVariant{
		ID:                variantID,
		Price:             decimal.NewFromInt(35),
		InventoryQuantity: 4,
	}
	cart := &entity.Cart{ID: cartID, UserID: userID}

	mockCatalogRepo.EXPECT().
		FindVariantByID(ctx, variantID).
		Return(variant, nil)

	mockCartRepo.EXPECT().
		FindCartByUser(ctx, userID).
		Return(cart, nil)

	mockCartRepo.EXPECT().
		FindItem(ctx, cartID, variantID).
		Return(nil, repository.ErrCartItemNotFound)

	mockCartRepo.EXPECT().
		CreateItem(ctx, mock.AnythingOfType("*entity.CartItem")).
		Run(func(ctx context.Context, item *entity.CartItem) {
			assert.Equal(t, cartID, item.CartID)
			assert.Equal(t, variantID, item.VariantID)
			assert.Equal(t, 2, item.Quantity)
		}).
		Return(nil)

	_, err := service.AddItem(ctx, userID, &usecase.AddCartItemInput{
		VariantID: variantID,
		Quantity:  2,
	})
	require.NoError(t, err)
}

func TestCartService_AddItem_DuplicateCreateMergesIntoWinner(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)
	service := newCartService(mockCartRepo, mockCatalogRepo)

	ctx := context.Background()
	userID := uuid.New()
	variantID := uuid.New()
	cartID := uuid.New()
	winnerID := uuid.New()

	variant := &entity.ProductVariant{
		ID:                variantID,
		Price:             decimal.NewFromInt(10),
		InventoryQuantity: 8,
	}
	cart := &entity.Cart{ID: cartID, UserID: userID}
	winner := &entity.CartItem{
		ID:        winnerID,
		CartID:    cartID,
		VariantID: variantID,
		Quantity:  1,
	}

	mockCatalogRepo.EXPECT().
		FindVariantByID(ctx, variantID).
		Return(variant, nil)

	mockCartRepo.EXPECT().
		FindCartByUser(ctx, userID).
		Return(cart, nil)

	mockCartRepo.EXPECT().
		FindItem(ctx, cartID, variantID).
		Return(nil, repository.ErrCartItemNotFound).
		Once()

	mockCartRepo.EXPECT().
		CreateItem(ctx, mock.AnythingOfType("*entity.CartItem")).
		Return(repository.ErrDuplicateCartItem)

	mockCartRepo.EXPECT().
		FindItem(ctx, cartID, variantID).
		Return(winner, nil).
		Once()

	mockCartRepo.EXPECT().
		UpdateItemQuantity(ctx, winnerID, 3).
		Return(nil)

	_, err := service.AddItem(ctx, userID, &usecase.AddCartItemInput{
		VariantID: variantID,
		Quantity:  2,
	})
	require.NoError(t, err)
}

func TestCartService_AddItem_InvalidQuantity(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)
	service := newCartService(mockCartRepo, mockCatalogRepo)

	_, err := service.AddItem(context.Background(), uuid.New(), &usecase.AddCartItemInput{
		VariantID: uuid.New(),
		Quantity:  0,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidQuantity))
}

func TestCartService_AddItem_VariantOutOfStock(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)
	service := newCartService(mockCartRepo, mockCatalogRepo)

	ctx := context.Background()
	variantID := uuid.New()

	mockCatalogRepo.EXPECT().
		FindVariantByID(ctx, variantID).
		Return(&entity.ProductVariant{ID: variantID, InventoryQuantity: 0}, nil)

	_, err := service.AddItem(ctx, uuid.New(), &usecase.AddCartItemInput{
		VariantID: variantID,
		Quantity:  1,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVariantOutOfStock))
}

func TestCartService_AddItem_VariantNotFound(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)
	service := newCartService(mockCartRepo, mockCatalogRepo)

	ctx := context.Background()
	variantID := uuid.New()

	mockCatalogRepo.EXPECT().
		FindVariantByID(ctx, variantID).
		Return(nil, repository.ErrVariantNotFound)

	_, err := service.AddItem(ctx, uuid.New(), &usecase.AddCartItemInput{
		VariantID: variantID,
		Quantity:  1,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVariantNotFound))
}

func TestCartService_UpdateItemQuantity_OtherUsersItem(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)
	service := newCartService(mockCartRepo, mockCatalogRepo)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()
	cart := &entity.Cart{ID: uuid.New(), UserID: userID}
	// The item belongs to a different cart.
	item := &entity.CartItem{ID: itemID, CartID: uuid.New(), Quantity: 1}

	mockCartRepo.EXPECT().
		FindCartByUser(ctx, userID).
		Return(cart, nil)

	mockCartRepo.EXPECT().
		FindItemByID(ctx, itemID).
		Return(item, nil)

	_, err := service.UpdateItemQuantity(ctx, userID, itemID, 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCartItemNotFound))
}

func TestCartService_RemoveItem_Success(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)
	service := newCartService(mockCartRepo, mockCatalogRepo)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()
	itemID := uuid.New()

	mockCartRepo.EXPECT().
		FindCartByUser(ctx, userID).
		Return(&entity.Cart{ID: cartID, UserID: userID}, nil)

	mockCartRepo.EXPECT().
		FindItemByID(ctx, itemID).
		Return(&entity.CartItem{ID: itemID, CartID: cartID, Quantity: 1}, nil)

	mockCartRepo.EXPECT().
		DeleteItem(ctx, itemID).
		Return(nil)

	err := service.RemoveItem(ctx, userID, itemID)
	require.NoError(t, err)
}

func TestCartService_ClearCart_NoCart(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)
	service := newCartService(mockCartRepo, mockCatalogRepo)

	ctx := context.Background()
	userID := uuid.New()

	mockCartRepo.EXPECT().
		FindCartByUser(ctx, userID).
		Return(nil, repository.ErrCartNotFound)

	err := service.ClearCart(ctx, userID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCartNotFound))
}

func TestCartService_ClearCart_Success(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)
	service := newCartService(mockCartRepo, mockCatalogRepo)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()

	mockCartRepo.EXPECT().
		FindCartByUser(ctx, userID).
		Return(&entity.Cart{ID: cartID, UserID: userID}, nil)

	mockCartRepo.EXPECT().
		ClearCart(ctx, cartID).
		Return(nil)

	err := service.ClearCart(ctx, userID)
	require.NoError(t, err)
}
