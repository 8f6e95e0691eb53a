package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// wishlistRepository implements the repository.WishlistRepository interface.
type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository is the constructor for wishlistRepository.
func NewWishlistRepository(db *gorm.DB) repository.WishlistRepository {
	return &wishlistRepository{
		db: db,
	}
}

// CreateWishlist persists a new wishlist entry.
func (repo *wishlistRepository) CreateWishlist(ctx context.Context, wishlist *entity.Wishlist) error {
	wishlistM := fromWishlistDomain(wishlist)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(wishlistM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateWishlist
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create wishlist entry")
	}

	wishlist.ID = wishlistM.ID
	wishlist.CreatedAt = wishlistM.CreatedAt

	return nil
}

// FindWishlistByID retrieves a wishlist entry by its unique ID.
func (repo *wishlistRepository) FindWishlistByID(ctx context.Context, id uuid.UUID) (*entity.Wishlist, error) {
	var wishlistM model.WishlistModel

	if err := repo.db.WithContext(ctx).
		Preload("Product").
		Where("id = ?", id).
		First(&wishlistM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWishlistNotFound
		}

		return nil, errors.Wrap(err, "failed to find wishlist entry by ID")
	}

	return toWishlistDomain(&wishlistM), nil
}

// ListWishlistsByUser retrieves all wishlist entries for a user, newest first.
func (repo *wishlistRepository) ListWishlistsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Wishlist, error) {
	var wishlistModels []*model.WishlistModel

	if err := repo.db.WithContext(ctx).
		Preload("Product").
		Preload("Product.Category").
		Preload("Product.Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&wishlistModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list wishlist entries by user")
	}

	wishlists := make([]*entity.Wishlist, 0, len(wishlistModels))
	for _, wishlistM := range wishlistModels {
		wishlists = append(wishlists, toWishlistDomain(wishlistM))
	}

	return wishlists, nil
}

// DeleteWishlist removes a wishlist entry by its ID.
func (repo *wishlistRepository) DeleteWishlist(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.WishlistModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete wishlist entry")
	}

	if result.RowsAffected == 0 {
		return repository.ErrWishlistNotFound
	}

	return nil
}

// --- Mappers ---

// toWishlistDomain converts a GORM WishlistModel to a domain Wishlist entity.
func toWishlistDomain(data *model.WishlistModel) *entity.Wishlist {
	if data == nil {
		return nil
	}

	return &entity.Wishlist{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Product:   toProductDomain(data.Product),
		CreatedAt: data.CreatedAt,
	}
}

// fromWishlistDomain converts a domain Wishlist entity to a GORM WishlistModel.
func fromWishlistDomain(data *entity.Wishlist) *model.WishlistModel {
	if data == nil {
		return nil
	}

	return &model.WishlistModel{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		CreatedAt: data.CreatedAt,
	}
}
