package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/authz"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceMocks struct {
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	orderRepo   *mockRepo.MockOrderRepository
	cartRepo    *mockRepo.MockCartRepository
	catalogRepo *mockRepo.MockCatalogRepository
	publisher   *mockSvc.MockEventPublisher
	qrcode      *mockSvc.MockQRCodeService
}

func newOrderService(t *testing.T) (usecase.OrderUsecase, *orderServiceMocks) {
	mocks := &orderServiceMocks{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		cartRepo:    mockRepo.NewMockCartRepository(t),
		catalogRepo: mockRepo.NewMockCatalogRepository(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
		qrcode:      mockSvc.NewMockQRCodeService(t),
	}

	svc := NewOrderService(OrderServiceParams{
		TxManager:     mocks.txManager,
		OrderRepo:     mocks.orderRepo,
		CartRepo:      mocks.cartRepo,
		Publisher:     mocks.publisher,
		QRCodeService: mocks.qrcode,
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	})

	return svc, mocks
}

// expectTransaction wires the transaction manager to run the unit of work
// against the factory's transaction-bound repositories.
func (m *orderServiceMocks) expectTransaction(ctx context.Context) {
	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		})
	m.factory.EXPECT().NewCatalogRepository().Return(m.catalogRepo)
	m.factory.EXPECT().NewOrderRepository().Return(m.orderRepo)
}

func TestOrderService_CreateOrder_FreezesPricesAndTotals(t *testing.T) {
	svc, mocks := newOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	variantA := &entity.ProductVariant{
		ID:                uuid.New(),
		SKU:               "TS-M",
		Price:             decimal.RequireFromString("19.99"),
		InventoryQuantity: 10,
	}
	variantB := &entity.ProductVariant{
		ID:                uuid.New(),
		SKU:               "TS-L",
		Price:             decimal.RequireFromString("24.50"),
		InventoryQuantity: 3,
	}

	mocks.expectTransaction(ctx)

	mocks.catalogRepo.EXPECT().
		LockVariant(ctx, variantA.ID).
		Return(variantA, nil)
	mocks.catalogRepo.EXPECT().
		LockVariant(ctx, variantB.ID).
		Return(variantB, nil)

	mocks.orderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	mocks.catalogRepo.EXPECT().
		DecrementInventory(ctx, variantA.ID, 2).
		Return(nil)
	mocks.catalogRepo.EXPECT().
		DecrementInventory(ctx, variantB.ID, 1).
		Return(nil)

	mocks.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Run(func(_ context.Context, event *service.OrderEvent) {
			assert.Equal(t, constants.EventOrderCreated, event.EventType)
			assert.Equal(t, userID.String(), event.UserID)
		}).
		Return(nil)

	order, err := svc.CreateOrder(ctx, userID, &usecase.CreateOrderInput{
		ShippingInput: usecase.ShippingInput{
			ShippingAddress: "1 Main St",
			Phone:           "555-0100",
		},
		Lines: []usecase.OrderLine{
			{VariantID: variantA.ID, Quantity: 2},
			{VariantID: variantB.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	// 2 * 19.99 + 1 * 24.50 = 64.48
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("64.48")),
		"total = %s", order.TotalAmount)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	require.Len(t, order.Items, 2)
	assert.True(t, order.Items[0].Price.Equal(variantA.Price))
	assert.True(t, order.Items[1].Price.Equal(variantB.Price))
}

func TestOrderService_CreateOrder_InsufficientStockAbortsAll(t *testing.T) {
	svc, mocks := newOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := &entity.Product{ID: uuid.New(), Name: "Classic Tee"}
	variantA := &entity.ProductVariant{
		ID:                uuid.New(),
		Price:             decimal.NewFromInt(10),
		InventoryQuantity: 5,
	}
	variantB := &entity.ProductVariant{
		ID:                uuid.New(),
		Product:           product,
		Size:              "L",
		Price:             decimal.NewFromInt(15),
		InventoryQuantity: 1,
	}

	mocks.expectTransaction(ctx)

	mocks.catalogRepo.EXPECT().
		LockVariant(ctx, variantA.ID).
		Return(variantA, nil)
	mocks.catalogRepo.EXPECT().
		LockVariant(ctx, variantB.ID).
		Return(variantB, nil)

	// The failing second line aborts before the order is written; nothing is
	// created, decremented or published.
	_, err := svc.CreateOrder(ctx, userID, &usecase.CreateOrderInput{
		ShippingInput: usecase.ShippingInput{ShippingAddress: "1 Main St", Phone: "555-0100"},
		Lines: []usecase.OrderLine{
			{VariantID: variantA.ID, Quantity: 2},
			{VariantID: variantB.ID, Quantity: 4},
		},
	})
	require.Error(t, err)

	var stockErr *domainerrors.InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, "Classic Tee", stockErr.ProductName)
	assert.Equal(t, "L", stockErr.Size)
	assert.Equal(t, 1, stockErr.Available)
	assert.Equal(t, 4, stockErr.Requested)
}

func TestOrderService_CreateOrder_PriceNotSet(t *testing.T) {
	svc, mocks := newOrderService(t)

	ctx := context.Background()
	variant := &entity.ProductVariant{
		ID:                uuid.New(),
		SKU:               "HOODIE-M",
		InventoryQuantity: 5,
	}

	mocks.expectTransaction(ctx)

	mocks.catalogRepo.EXPECT().
		LockVariant(ctx, variant.ID).
		Return(variant, nil)

	_, err := svc.CreateOrder(ctx, uuid.New(), &usecase.CreateOrderInput{
		ShippingInput: usecase.ShippingInput{ShippingAddress: "1 Main St", Phone: "555-0100"},
		Lines:         []usecase.OrderLine{{VariantID: variant.ID, Quantity: 1}},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPriceNotSet))
}

func TestOrderService_CreateOrder_NamesMissingVariant(t *testing.T) {
	svc, mocks := newOrderService(t)

	ctx := context.Background()
	variantID := uuid.New()

	mocks.expectTransaction(ctx)

	mocks.catalogRepo.EXPECT().
		LockVariant(ctx, variantID).
		Return(nil, repository.ErrVariantNotFound)

	_, err := svc.CreateOrder(ctx, uuid.New(), &usecase.CreateOrderInput{
		ShippingInput: usecase.ShippingInput{ShippingAddress: "1 Main St", Phone: "555-0100"},
		Lines:         []usecase.OrderLine{{VariantID: variantID, Quantity: 1}},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVariantNotFound))
	assert.Contains(t, err.Error(), variantID.String())
}

func TestOrderService_CreateOrder_MissingVariantReportedBeforeBadQuantity(t *testing.T) {
	svc, mocks := newOrderService(t)

	ctx := context.Background()
	missingID := uuid.New()

	mocks.expectTransaction(ctx)

	mocks.catalogRepo.EXPECT().
		LockVariant(ctx, missingID).
		Return(nil, repository.ErrVariantNotFound)

	// The first line's variant does not exist and the second line's quantity
	// is invalid; resolution happens per line, so the missing variant wins.
	_, err := svc.CreateOrder(ctx, uuid.New(), &usecase.CreateOrderInput{
		ShippingInput: usecase.ShippingInput{ShippingAddress: "1 Main St", Phone: "555-0100"},
		Lines: []usecase.OrderLine{
			{VariantID: missingID, Quantity: 1},
			{VariantID: uuid.New(), Quantity: 0},
		},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVariantNotFound))
}

func TestOrderService_CreateOrder_InvalidQuantity(t *testing.T) {
	svc, mocks := newOrderService(t)

	ctx := context.Background()
	variant := &entity.ProductVariant{
		ID:                uuid.New(),
		SKU:               "TS-M",
		Price:             decimal.RequireFromString("19.99"),
		InventoryQuantity: 10,
	}

	mocks.expectTransaction(ctx)

	mocks.catalogRepo.EXPECT().
		LockVariant(ctx, variant.ID).
		Return(variant, nil)

	_, err := svc.CreateOrder(ctx, uuid.New(), &usecase.CreateOrderInput{
		ShippingInput: usecase.ShippingInput{ShippingAddress: "1 Main St", Phone: "555-0100"},
		Lines:         []usecase.OrderLine{{VariantID: variant.ID, Quantity: 0}},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidQuantity))
}

func TestOrderService_CreateOrder_EmptyLines(t *testing.T) {
	svc, _ := newOrderService(t)

	_, err := svc.CreateOrder(context.Background(), uuid.New(), &usecase.CreateOrderInput{
		ShippingInput: usecase.ShippingInput{ShippingAddress: "1 Main St", Phone: "555-0100"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyOrder))
}

func TestOrderService_CreateOrderFromCart_Success(t *testing.T) {
	svc, mocks := newOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()
	variant := &entity.ProductVariant{
		ID:                uuid.New(),
		Price:             decimal.NewFromInt(30),
		InventoryQuantity: 6,
	}
	cart := &entity.Cart{
		ID:     cartID,
		UserID: userID,
		Items: []*entity.CartItem{
			{ID: uuid.New(), CartID: cartID, VariantID: variant.ID, Variant: variant, Quantity: 2},
			// Lines without a positive quantity are skipped, not rejected.
			{ID: uuid.New(), CartID: cartID, VariantID: uuid.New(), Quantity: 0},
		},
	}

	mocks.cartRepo.EXPECT().
		FindCartByUser(ctx, userID).
		Return(cart, nil)

	mocks.expectTransaction(ctx)

	mocks.catalogRepo.EXPECT().
		LockVariant(ctx, variant.ID).
		Return(variant, nil)

	mocks.orderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	mocks.catalogRepo.EXPECT().
		DecrementInventory(ctx, variant.ID, 2).
		Return(nil)

	mocks.cartRepo.EXPECT().
		ClearCart(ctx, cartID).
		Return(nil)

	mocks.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	order, err := svc.CreateOrderFromCart(ctx, userID, &usecase.ShippingInput{
		ShippingAddress: "1 Main St",
		Phone:           "555-0100",
	})
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(60)))
}

func TestOrderService_CreateOrderFromCart_EmptyCart(t *testing.T) {
	svc, mocks := newOrderService(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.cartRepo.EXPECT().
		FindCartByUser(ctx, userID).
		Return(&entity.Cart{ID: uuid.New(), UserID: userID}, nil)

	_, err := svc.CreateOrderFromCart(ctx, userID, &usecase.ShippingInput{
		ShippingAddress: "1 Main St",
		Phone:           "555-0100",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyCart))
}

func TestOrderService_CreateOrderFromCart_ClearFailureNotSurfaced(t *testing.T) {
	svc, mocks := newOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()
	variant := &entity.ProductVariant{
		ID:                uuid.New(),
		Price:             decimal.NewFromInt(12),
		InventoryQuantity: 2,
	}
	cart := &entity.Cart{
		ID:     cartID,
		UserID: userID,
		Items: []*entity.CartItem{
			{ID: uuid.New(), CartID: cartID, VariantID: variant.ID, Variant: variant, Quantity: 1},
		},
	}

	mocks.cartRepo.EXPECT().
		FindCartByUser(ctx, userID).
		Return(cart, nil)

	mocks.expectTransaction(ctx)

	mocks.catalogRepo.EXPECT().
		LockVariant(ctx, variant.ID).
		Return(variant, nil)

	mocks.orderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	mocks.catalogRepo.EXPECT().
		DecrementInventory(ctx, variant.ID, 1).
		Return(nil)

	// The order is committed; a failed cart clear is logged, not returned.
	mocks.cartRepo.EXPECT().
		ClearCart(ctx, cartID).
		Return(errors.New("connection reset"))

	mocks.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	order, err := svc.CreateOrderFromCart(ctx, userID, &usecase.ShippingInput{
		ShippingAddress: "1 Main St",
		Phone:           "555-0100",
	})
	require.NoError(t, err)
	assert.NotNil(t, order)
}

func TestOrderService_GetOrder_OwnerAllowed(t *testing.T) {
	svc, mocks := newOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	mocks.orderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: userID}, nil)

	order, err := svc.GetOrder(ctx, authz.Actor{UserID: userID}, orderID)
	require.NoError(t, err)
	assert.Equal(t, orderID, order.ID)
}

func TestOrderService_GetOrder_ForbiddenForOtherUser(t *testing.T) {
	svc, mocks := newOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	mocks.orderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: uuid.New()}, nil)

	_, err := svc.GetOrder(ctx, authz.Actor{UserID: uuid.New()}, orderID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestOrderService_UpdateOrderStatus_AdminOnly(t *testing.T) {
	svc, _ := newOrderService(t)

	err := svc.UpdateOrderStatus(context.Background(), authz.Actor{UserID: uuid.New()},
		uuid.New(), entity.OrderStatusShipped)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestOrderService_UpdateOrderStatus_AdminSucceeds(t *testing.T) {
	svc, mocks := newOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	admin := authz.Actor{UserID: uuid.New(), Roles: []string{constants.RoleAdmin}}

	mocks.orderRepo.EXPECT().
		UpdateOrderStatus(ctx, orderID, entity.OrderStatusShipped).
		Return(nil)

	err := svc.UpdateOrderStatus(ctx, admin, orderID, entity.OrderStatusShipped)
	require.NoError(t, err)
}

func TestOrderService_UpdateOrderStatus_InvalidStatus(t *testing.T) {
	svc, _ := newOrderService(t)

	admin := authz.Actor{UserID: uuid.New(), Roles: []string{constants.RoleAdmin}}
	err := svc.UpdateOrderStatus(context.Background(), admin, uuid.New(), entity.OrderStatus("teleported"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOrderStatus))
}

func TestOrderService_GenerateOrderQR_Owner(t *testing.T) {
	svc, mocks := newOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()
	png := []byte{0x89, 0x50, 0x4E, 0x47}

	mocks.orderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: userID}, nil)

	mocks.qrcode.EXPECT().
		GenerateOrderQR(orderID).
		Return(png, nil)

	got, err := svc.GenerateOrderQR(ctx, authz.Actor{UserID: userID}, orderID)
	require.NoError(t, err)
	assert.Equal(t, png, got)
}
