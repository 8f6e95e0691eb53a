package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo    repository.CartRepository
	catalogRepo repository.CatalogRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	CatalogRepo repository.CatalogRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		catalogRepo: params.CatalogRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart retrieves the user's cart, creating an empty one on first access.
func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	return srv.getOrCreateCart(ctx, userID)
}

// getOrCreateCart finds the user's cart or creates an empty one. A concurrent
// create racing on the unique user constraint is resolved by re-fetching.
func (srv *cartService) getOrCreateCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := srv.cartRepo.FindCartByUser(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, repository.ErrCartNotFound) {
		return nil, errors.Wrap(err, "failed to find cart by user")
	}

	now := time.Now()
	cart = &entity.Cart{
		ID:        uuid.New(),
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := srv.cartRepo.CreateCart(ctx, cart); err != nil {
		if errors.Is(err, repository.ErrDuplicateCart) {
			// Lost the race against a concurrent first access.
			cart, err = srv.cartRepo.FindCartByUser(ctx, userID)
			if err != nil {
				return nil, errors.Wrap(err, "failed to re-fetch cart after duplicate create")
			}

			return cart, nil
		}

		return nil, errors.Wrap(err, "failed to create cart")
	}

	srv.log(ctx).Info("Cart created", slog.String("user_id", userID.String()))

	return cart, nil
}

// AddItem adds a variant to the user's cart, merging quantities when the
// variant is already present.
func (srv *cartService) AddItem(ctx context.Context, userID uuid.UUID, input *usecase.AddCartItemInput) (*entity.Cart, error) {
	if input.Quantity <= 0 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	variant, err := srv.catalogRepo.FindVariantByID(ctx, input.VariantID)
	if err != nil {
		if errors.Is(err, repository.ErrVariantNotFound) {
			return nil, domainerrors.ErrVariantNotFound
		}

		return nil, errors.Wrap(err, "failed to find variant by id")
	}

	if variant.InventoryQuantity <= 0 {
		return nil, domainerrors.ErrVariantOutOfStock
	}

	cart, err := srv.getOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := srv.upsertItem(ctx, cart.ID, variant.ID, input.Quantity); err != nil {
		return nil, err
	}

	cart, err = srv.cartRepo.FindCartByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload cart")
	}

	return cart, nil
}

// upsertItem merges quantity into an existing line for the variant or creates
// a new line. A concurrent insert racing on the unique (cart, variant)
// constraint is resolved by merging into the winner's line.
func (srv *cartService) upsertItem(ctx context.Context, cartID, variantID uuid.UUID, quantity int) error {
	existing, err := srv.cartRepo.FindItem(ctx, cartID, variantID)
	if err == nil {
		return srv.mergeQuantity(ctx, existing, quantity)
	}
	if !errors.Is(err, repository.ErrCartItemNotFound) {
		return errors.Wrap(err, "failed to find cart item")
	}

	now := time.Now()
	item := &entity.CartItem{
		ID:        uuid.New(),
		CartID:    cartID,
		VariantID: variantID,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := srv.cartRepo.CreateItem(ctx, item); err != nil {
		if errors.Is(err, repository.ErrDuplicateCartItem) {
			// Lost the race against a concurrent add of the same variant.
			existing, err = srv.cartRepo.FindItem(ctx, cartID, variantID)
			if err != nil {
				return errors.Wrap(err, "failed to re-fetch cart item after duplicate create")
			}

			return srv.mergeQuantity(ctx, existing, quantity)
		}

		return errors.Wrap(err, "failed to create cart item")
	}

	return nil
}

// mergeQuantity adds quantity onto an existing cart line.
func (srv *cartService) mergeQuantity(ctx context.Context, item *entity.CartItem, quantity int) error {
	if err := srv.cartRepo.UpdateItemQuantity(ctx, item.ID, item.Quantity+quantity); err != nil {
		return errors.Wrap(err, "failed to update cart item quantity")
	}

	return nil
}

// UpdateItemQuantity replaces the quantity of an existing cart line.
func (srv *cartService) UpdateItemQuantity(ctx context.Context, userID uuid.UUID, itemID uuid.UUID, quantity int) (*entity.Cart, error) {
	if quantity <= 0 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	if _, err := srv.findOwnedItem(ctx, userID, itemID); err != nil {
		return nil, err
	}

	if err := srv.cartRepo.UpdateItemQuantity(ctx, itemID, quantity); err != nil {
		return nil, errors.Wrap(err, "failed to update cart item quantity")
	}

	cart, err := srv.cartRepo.FindCartByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload cart")
	}

	return cart, nil
}

// RemoveItem deletes a line from the user's cart.
func (srv *cartService) RemoveItem(ctx context.Context, userID uuid.UUID, itemID uuid.UUID) error {
	if _, err := srv.findOwnedItem(ctx, userID, itemID); err != nil {
		return err
	}

	if err := srv.cartRepo.DeleteItem(ctx, itemID); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return domainerrors.ErrCartItemNotFound
		}

		return errors.Wrap(err, "failed to delete cart item")
	}

	return nil
}

// findOwnedItem loads a cart line and verifies it belongs to the user's cart.
func (srv *cartService) findOwnedItem(ctx context.Context, userID, itemID uuid.UUID) (*entity.CartItem, error) {
	cart, err := srv.cartRepo.FindCartByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, domainerrors.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by user")
	}

	item, err := srv.cartRepo.FindItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return nil, domainerrors.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item by id")
	}

	if item.CartID != cart.ID {
		return nil, domainerrors.ErrCartItemNotFound
	}

	return item, nil
}

// ClearCart removes every line from the user's cart.
func (srv *cartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	cart, err := srv.cartRepo.FindCartByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return domainerrors.ErrCartNotFound
		}

		return errors.Wrap(err, "failed to find cart by user")
	}

	if err := srv.cartRepo.ClearCart(ctx, cart.ID); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	srv.log(ctx).Info("Cart cleared", slog.String("cart_id", cart.ID.String()))

	return nil
}
