package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/authz"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// wishlistService implements the WishlistUsecase interface.
type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	catalogRepo  repository.CatalogRepository
	logger       *slog.Logger
}

// WishlistServiceParams holds dependencies for WishlistService, injected by Fx.
type WishlistServiceParams struct {
	fx.In

	WishlistRepo repository.WishlistRepository
	CatalogRepo  repository.CatalogRepository
	Logger       *slog.Logger
}

// NewWishlistService is the constructor for wishlistService.
func NewWishlistService(params WishlistServiceParams) usecase.WishlistUsecase {
	return &wishlistService{
		wishlistRepo: params.WishlistRepo,
		catalogRepo:  params.CatalogRepo,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *wishlistService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddToWishlist saves a product to the user's wishlist.
func (srv *wishlistService) AddToWishlist(ctx context.Context, userID, productID uuid.UUID) (*entity.Wishlist, error) {
	product, err := srv.catalogRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	wishlist := &entity.Wishlist{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: product.ID,
		Product:   product,
		CreatedAt: time.Now(),
	}

	if err := srv.wishlistRepo.CreateWishlist(ctx, wishlist); err != nil {
		if errors.Is(err, repository.ErrDuplicateWishlist) {
			return nil, domainerrors.ErrDuplicateWishlist
		}

		return nil, errors.Wrap(err, "failed to create wishlist entry")
	}

	srv.log(ctx).Info("Wishlist entry created",
		slog.String("user_id", userID.String()),
		slog.String("product_id", productID.String()),
	)

	return wishlist, nil
}

// ListWishlist retrieves the user's wishlist, newest first.
func (srv *wishlistService) ListWishlist(ctx context.Context, userID uuid.UUID) ([]*entity.Wishlist, error) {
	entries, err := srv.wishlistRepo.ListWishlistsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list wishlist entries")
	}

	return entries, nil
}

// RemoveFromWishlist deletes a wishlist entry, enforcing ownership.
func (srv *wishlistService) RemoveFromWishlist(ctx context.Context, actor authz.Actor, wishlistID uuid.UUID) error {
	entry, err := srv.wishlistRepo.FindWishlistByID(ctx, wishlistID)
	if err != nil {
		if errors.Is(err, repository.ErrWishlistNotFound) {
			return domainerrors.ErrWishlistNotFound
		}

		return errors.Wrap(err, "failed to find wishlist entry by id")
	}

	if !actor.CanAccess(entry) {
		return domainerrors.ErrForbidden
	}

	if err := srv.wishlistRepo.DeleteWishlist(ctx, entry.ID); err != nil {
		return errors.Wrap(err, "failed to delete wishlist entry")
	}

	return nil
}
