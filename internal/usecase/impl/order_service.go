package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
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
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager       repository.TransactionManager
	orderRepo       repository.OrderRepository
	cartRepo        repository.CartRepository
	publisher       service.EventPublisher
	qrcodeService   service.QRCodeService
	defaultPageSize int
	maxPageSize     int
	logger          *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	OrderRepo     repository.OrderRepository
	CartRepo      repository.CartRepository
	Publisher     service.EventPublisher
	QRCodeService service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
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

	return &orderService{
		txManager:       params.TxManager,
		orderRepo:       params.OrderRepo,
		cartRepo:        params.CartRepo,
		publisher:       params.Publisher,
		qrcodeService:   params.QRCodeService,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder creates an order from an explicit list of lines. All lines are
// priced and reserved inside a single transaction: each variant row is locked,
// checked for a positive quantity, a set price and sufficient stock, and
// decremented. Any failing line rolls back the whole order.
func (srv *orderService) CreateOrder(ctx context.Context, userID uuid.UUID, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if len(input.Lines) == 0 {
		return nil, domainerrors.ErrEmptyOrder
	}

	order, err := srv.createOrderTx(ctx, userID, input.ShippingInput, input.Lines)
	if err != nil {
		return nil, err
	}

	srv.publishOrderCreated(ctx, order)

	return order, nil
}

// createOrderTx builds and persists an order with inventory reservation inside
// a single transaction.
func (srv *orderService) createOrderTx(ctx context.Context, userID uuid.UUID, shipping usecase.ShippingInput, lines []usecase.OrderLine) (*entity.Order, error) {
	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		catalogRepo := factory.NewCatalogRepository()
		orderRepo := factory.NewOrderRepository()

		now := time.Now()
		orderID := uuid.New()
		total := decimal.Zero
		items := make([]*entity.OrderItem, 0, len(lines))

		for _, line := range lines {
			variant, err := catalogRepo.LockVariant(ctx, line.VariantID)
			if err != nil {
				if errors.Is(err, repository.ErrVariantNotFound) {
					return domainerrors.ErrVariantNotFound.WrapMessage(line.VariantID.String())
				}

				return errors.Wrap(err, "failed to lock variant")
			}

			if line.Quantity <= 0 {
				return domainerrors.ErrInvalidQuantity
			}

			if !variant.HasPrice() {
				return domainerrors.ErrPriceNotSet.WrapMessage(variant.DisplayName())
			}

			if variant.InventoryQuantity < line.Quantity {
				return &domainerrors.InsufficientStockError{
					ProductName: variant.ProductName(),
					Size:        variant.Size,
					Available:   variant.InventoryQuantity,
					Requested:   line.Quantity,
				}
			}

			lineTotal := variant.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
			total = total.Add(lineTotal)

			items = append(items, &entity.OrderItem{
				ID:        uuid.New(),
				OrderID:   orderID,
				VariantID: variant.ID,
				Quantity:  line.Quantity,
				Price:     variant.Price,
				CreatedAt: now,
			})
		}

		order = &entity.Order{
			ID:              orderID,
			UserID:          userID,
			Status:          entity.OrderStatusPending,
			TotalAmount:     total,
			ShippingAddress: shipping.ShippingAddress,
			Phone:           shipping.Phone,
			Items:           items,
			CreatedAt:       now,
			UpdatedAt:       now,
		}

		if err := orderRepo.CreateOrder(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		for _, item := range items {
			if err := catalogRepo.DecrementInventory(ctx, item.VariantID, item.Quantity); err != nil {
				return errors.Wrap(err, "failed to decrement inventory")
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order created",
		slog.String("order_id", order.ID.String()),
		slog.String("user_id", userID.String()),
		slog.String("total_amount", order.TotalAmount.String()),
		slog.Int("lines", len(order.Items)),
	)

	return order, nil
}

// CreateOrderFromCart converts the user's cart into an order. Lines with a
// non-positive quantity are skipped; a line whose variant has no price aborts
// the conversion. The cart is cleared only after the order commits.
func (srv *orderService) CreateOrderFromCart(ctx context.Context, userID uuid.UUID, input *usecase.ShippingInput) (*entity.Order, error) {
	cart, err := srv.cartRepo.FindCartByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, domainerrors.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by user")
	}

	lines := make([]usecase.OrderLine, 0, len(cart.Items))
	for _, item := range cart.Items {
		if item.Quantity <= 0 {
			continue
		}
		if item.Variant != nil && !item.Variant.HasPrice() {
			return nil, domainerrors.ErrPriceNotSet.WrapMessage(item.Variant.DisplayName())
		}

		lines = append(lines, usecase.OrderLine{
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
		})
	}

	if len(lines) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}

	order, err := srv.createOrderTx(ctx, userID, *input, lines)
	if err != nil {
		return nil, err
	}

	// The order is already committed; a failed cart clear must not surface
	// as an order failure.
	if err := srv.cartRepo.ClearCart(ctx, cart.ID); err != nil {
		srv.log(ctx).Error("Failed to clear cart after order creation",
			slog.String("order_id", order.ID.String()),
			slog.String("cart_id", cart.ID.String()),
			slog.Any("error", err),
		)
	}

	srv.publishOrderCreated(ctx, order)

	return order, nil
}

// publishOrderCreated publishes an order.created event. Publishing failures
// are logged, never surfaced: the order is already committed.
func (srv *orderService) publishOrderCreated(ctx context.Context, order *entity.Order) {
	event := &service.OrderEvent{
		EventType:   constants.EventOrderCreated,
		OrderID:     order.ID.String(),
		UserID:      order.UserID.String(),
		TotalAmount: order.TotalAmount.String(),
		Status:      string(order.Status),
		OccurredAt:  time.Now(),
	}

	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish order created event",
			slog.String("order_id", order.ID.String()),
			slog.Any("error", err),
		)
	}
}

// GetOrder retrieves an order with its lines and payment, enforcing ownership.
func (srv *orderService) GetOrder(ctx context.Context, actor authz.Actor, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	if !actor.CanAccess(order) {
		return nil, domainerrors.ErrForbidden
	}

	return order, nil
}

// ListOrders retrieves a page of the user's orders, newest first.
func (srv *orderService) ListOrders(ctx context.Context, userID uuid.UUID, page, pageSize int) (*usecase.OrderPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = srv.defaultPageSize
	}
	if pageSize > srv.maxPageSize {
		pageSize = srv.maxPageSize
	}

	items, total, err := srv.orderRepo.ListOrdersByUser(ctx, userID, page, pageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by user")
	}

	return &usecase.OrderPage{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// UpdateOrderStatus transitions an order through its lifecycle. Admin only.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, actor authz.Actor, orderID uuid.UUID, status entity.OrderStatus) error {
	if !actor.IsAdmin() {
		return domainerrors.ErrForbidden
	}
	if !status.Valid() {
		return domainerrors.ErrInvalidOrderStatus
	}

	if err := srv.orderRepo.UpdateOrderStatus(ctx, orderID, status); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to update order status")
	}

	srv.log(ctx).Info("Order status updated",
		slog.String("order_id", orderID.String()),
		slog.String("status", string(status)),
	)

	return nil
}

// GenerateOrderQR generates a pickup QR code for an order, enforcing
// ownership.
func (srv *orderService) GenerateOrderQR(ctx context.Context, actor authz.Actor, orderID uuid.UUID) ([]byte, error) {
	order, err := srv.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	if !actor.CanAccess(order) {
		return nil, domainerrors.ErrForbidden
	}

	png, err := srv.qrcodeService.GenerateOrderQR(order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate order QR code")
	}

	return png, nil
}
