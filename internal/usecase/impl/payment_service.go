package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/authz"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	paymentRepo repository.PaymentRepository
	orderRepo   repository.OrderRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	PaymentRepo repository.PaymentRepository
	OrderRepo   repository.OrderRepository
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		paymentRepo: params.PaymentRepo,
		orderRepo:   params.OrderRepo,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePayment records a payment attempt against an order. The amount
// defaults to the order total when not given.
func (srv *paymentService) CreatePayment(ctx context.Context, actor authz.Actor, input *usecase.CreatePaymentInput) (*entity.Payment, error) {
	method := entity.PaymentMethod(input.Method)
	if !method.Valid() {
		return nil, domainerrors.ErrInvalidPaymentMethod
	}

	order, err := srv.orderRepo.FindOrderByID(ctx, input.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	if !actor.CanAccess(order) {
		return nil, domainerrors.ErrForbidden
	}

	amount := order.TotalAmount
	if input.Amount != nil {
		amount = *input.Amount
	}
	if amount.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("payment amount must not be negative")
	}

	now := time.Now()
	payment := &entity.Payment{
		ID:        uuid.New(),
		OrderID:   order.ID,
		Order:     order,
		Method:    method,
		Status:    entity.PaymentStatusPending,
		Amount:    amount,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := srv.paymentRepo.CreatePayment(ctx, payment); err != nil {
		if errors.Is(err, repository.ErrDuplicatePayment) {
			return nil, domainerrors.ErrDuplicatePayment
		}

		return nil, errors.Wrap(err, "failed to create payment")
	}

	srv.log(ctx).Info("Payment created",
		slog.String("payment_id", payment.ID.String()),
		slog.String("order_id", order.ID.String()),
		slog.String("amount", amount.String()),
	)

	return payment, nil
}

// GetPayment retrieves a payment, enforcing ownership via its order.
func (srv *paymentService) GetPayment(ctx context.Context, actor authz.Actor, paymentID uuid.UUID) (*entity.Payment, error) {
	payment, err := srv.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, domainerrors.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment by id")
	}

	if !actor.CanAccess(payment) {
		return nil, domainerrors.ErrForbidden
	}

	return payment, nil
}

// ListPayments retrieves the user's payments, newest first.
func (srv *paymentService) ListPayments(ctx context.Context, userID uuid.UUID) ([]*entity.Payment, error) {
	payments, err := srv.paymentRepo.ListPaymentsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments by user")
	}

	return payments, nil
}

// UpdatePaymentStatus records the outcome of a payment attempt. Admin only.
func (srv *paymentService) UpdatePaymentStatus(ctx context.Context, actor authz.Actor, input *usecase.UpdatePaymentStatusInput) error {
	if !actor.IsAdmin() {
		return domainerrors.ErrForbidden
	}

	status := entity.PaymentStatus(input.Status)
	if !status.Valid() {
		return domainerrors.ErrInvalidPaymentStatus
	}

	payment, err := srv.paymentRepo.FindPaymentByID(ctx, input.PaymentID)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return domainerrors.ErrPaymentNotFound
		}

		return errors.Wrap(err, "failed to find payment by id")
	}

	if err := srv.paymentRepo.UpdatePaymentStatus(ctx, payment.ID, status, input.TransactionID); err != nil {
		return errors.Wrap(err, "failed to update payment status")
	}

	srv.publishStatusChanged(ctx, payment, status)

	return nil
}

// publishStatusChanged publishes a payment.status_changed event. Publishing
// failures are logged, never surfaced.
func (srv *paymentService) publishStatusChanged(ctx context.Context, payment *entity.Payment, status entity.PaymentStatus) {
	event := &service.OrderEvent{
		EventType:     constants.EventPaymentStatusChanged,
		OrderID:       payment.OrderID.String(),
		TotalAmount:   payment.Amount.String(),
		PaymentID:     payment.ID.String(),
		PaymentStatus: string(status),
		OccurredAt:    time.Now(),
	}
	if payment.Order != nil {
		event.UserID = payment.Order.UserID.String()
		event.Status = string(payment.Order.Status)
	}

	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish payment status event",
			slog.String("payment_id", payment.ID.String()),
			slog.Any("error", err),
		)
	}
}
