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

type paymentServiceMocks struct {
	paymentRepo *mockRepo.MockPaymentRepository
	orderRepo   *mockRepo.MockOrderRepository
	publisher   *mockSvc.MockEventPublisher
}

func newPaymentService(t *testing.T) (usecase.PaymentUsecase, *paymentServiceMocks) {
	mocks := &paymentServiceMocks{
		paymentRepo: mockRepo.NewMockPaymentRepository(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}

	svc := NewPaymentService(PaymentServiceParams{
		PaymentRepo: mocks.paymentRepo,
		OrderRepo:   mocks.orderRepo,
		Publisher:   mocks.publisher,
		Logger:      newDiscardLogger(),
	})

	return svc, mocks
}

func TestPaymentService_CreatePayment_DefaultsAmountToOrderTotal(t *testing.T) {
	svc, mocks := newPaymentService(t)

	ctx := context.Background()
	userID := uuid.New()
	order := &entity.Order{
		ID:          uuid.New(),
		UserID:      userID,
		TotalAmount: decimal.RequireFromString("64.48"),
	}

	mocks.orderRepo.EXPECT().
		FindOrderByID(ctx, order.ID).
		Return(order, nil)

	mocks.paymentRepo.EXPECT().
		CreatePayment(ctx, mock.AnythingOfType("*entity.Payment")).
		Return(nil)

	payment, err := svc.CreatePayment(ctx, authz.Actor{UserID: userID}, &usecase.CreatePaymentInput{
		OrderID: order.ID,
		Method:  "card",
	})
	require.NoError(t, err)
	assert.True(t, payment.Amount.Equal(order.TotalAmount))
	assert.Equal(t, entity.PaymentStatusPending, payment.Status)
	assert.Equal(t, entity.PaymentMethodCard, payment.Method)
}

func TestPaymentService_CreatePayment_ForbiddenForOtherUsersOrder(t *testing.T) {
	svc, mocks := newPaymentService(t)

	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), UserID: uuid.New()}

	mocks.orderRepo.EXPECT().
		FindOrderByID(ctx, order.ID).
		Return(order, nil)

	_, err := svc.CreatePayment(ctx, authz.Actor{UserID: uuid.New()}, &usecase.CreatePaymentInput{
		OrderID: order.ID,
		Method:  "cash",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestPaymentService_CreatePayment_InvalidMethod(t *testing.T) {
	svc, _ := newPaymentService(t)

	_, err := svc.CreatePayment(context.Background(), authz.Actor{UserID: uuid.New()},
		&usecase.CreatePaymentInput{OrderID: uuid.New(), Method: "barter"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPaymentMethod))
}

func TestPaymentService_CreatePayment_Duplicate(t *testing.T) {
	svc, mocks := newPaymentService(t)

	ctx := context.Background()
	userID := uuid.New()
	order := &entity.Order{ID: uuid.New(), UserID: userID, TotalAmount: decimal.NewFromInt(10)}

	mocks.orderRepo.EXPECT().
		FindOrderByID(ctx, order.ID).
		Return(order, nil)

	mocks.paymentRepo.EXPECT().
		CreatePayment(ctx, mock.AnythingOfType("*entity.Payment")).
		Return(repository.ErrDuplicatePayment)

	_, err := svc.CreatePayment(ctx, authz.Actor{UserID: userID}, &usecase.CreatePaymentInput{
		OrderID: order.ID,
		Method:  "paypal",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicatePayment))
}

func TestPaymentService_CreatePayment_NegativeAmount(t *testing.T) {
	svc, mocks := newPaymentService(t)

	ctx := context.Background()
	userID := uuid.New()
	order := &entity.Order{ID: uuid.New(), UserID: userID, TotalAmount: decimal.NewFromInt(10)}
	negative := decimal.NewFromInt(-5)

	mocks.orderRepo.EXPECT().
		FindOrderByID(ctx, order.ID).
		Return(order, nil)

	_, err := svc.CreatePayment(ctx, authz.Actor{UserID: userID}, &usecase.CreatePaymentInput{
		OrderID: order.ID,
		Method:  "card",
		Amount:  &negative,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPaymentService_GetPayment_OwnershipViaOrder(t *testing.T) {
	svc, mocks := newPaymentService(t)

	ctx := context.Background()
	paymentID := uuid.New()
	payment := &entity.Payment{
		ID:    paymentID,
		Order: &entity.Order{ID: uuid.New(), UserID: uuid.New()},
	}

	mocks.paymentRepo.EXPECT().
		FindPaymentByID(ctx, paymentID).
		Return(payment, nil)

	_, err := svc.GetPayment(ctx, authz.Actor{UserID: uuid.New()}, paymentID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestPaymentService_UpdatePaymentStatus_AdminOnly(t *testing.T) {
	svc, _ := newPaymentService(t)

	err := svc.UpdatePaymentStatus(context.Background(), authz.Actor{UserID: uuid.New()},
		&usecase.UpdatePaymentStatusInput{PaymentID: uuid.New(), Status: "completed"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestPaymentService_UpdatePaymentStatus_PublishesEvent(t *testing.T) {
	svc, mocks := newPaymentService(t)

	ctx := context.Background()
	admin := authz.Actor{UserID: uuid.New(), Roles: []string{constants.RoleAdmin}}
	payment := &entity.Payment{
		ID:      uuid.New(),
		OrderID: uuid.New(),
		Amount:  decimal.NewFromInt(42),
		Order:   &entity.Order{ID: uuid.New(), UserID: uuid.New(), Status: entity.OrderStatusPending},
	}

	mocks.paymentRepo.EXPECT().
		FindPaymentByID(ctx, payment.ID).
		Return(payment, nil)

	mocks.paymentRepo.EXPECT().
		UpdatePaymentStatus(ctx, payment.ID, entity.PaymentStatusCompleted, "txn_123").
		Return(nil)

	mocks.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Run(func(_ context.Context, event *service.OrderEvent) {
			assert.Equal(t, constants.EventPaymentStatusChanged, event.EventType)
			assert.Equal(t, payment.ID.String(), event.PaymentID)
			assert.Equal(t, string(entity.PaymentStatusCompleted), event.PaymentStatus)
		}).
		Return(nil)

	err := svc.UpdatePaymentStatus(ctx, admin, &usecase.UpdatePaymentStatusInput{
		PaymentID:     payment.ID,
		Status:        "completed",
		TransactionID: "txn_123",
	})
	require.NoError(t, err)
}

func TestPaymentService_UpdatePaymentStatus_InvalidStatus(t *testing.T) {
	svc, _ := newPaymentService(t)

	admin := authz.Actor{UserID: uuid.New(), Roles: []string{constants.RoleAdmin}}
	err := svc.UpdatePaymentStatus(context.Background(), admin,
		&usecase.UpdatePaymentStatusInput{PaymentID: uuid.New(), Status: "refunded-ish"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPaymentStatus))
}
