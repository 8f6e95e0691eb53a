// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// catalogRepository implements the repository.CatalogRepository interface.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{
		db: db,
	}
}

// CreateCategory persists a new category.
func (repo *catalogRepository) CreateCategory(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSlug
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	category.ID = categoryM.ID
	category.CreatedAt = categoryM.CreatedAt
	category.UpdatedAt = categoryM.UpdatedAt

	return nil
}

// FindCategoryBySlug retrieves a category by its slug.
func (repo *catalogRepository) FindCategoryBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	var categoryM model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by slug")
	}

	return toCategoryDomain(&categoryM), nil
}

// ListCategories retrieves all categories ordered by name.
func (repo *catalogRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

// CreateProduct persists a new product.
func (repo *catalogRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSlug
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCategoryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindProductByID retrieves a product by its unique ID.
func (repo *catalogRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindProductBySlug retrieves a product by its slug, preloading its category,
// variants, images and reviews.
func (repo *catalogRepository) FindProductBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Category").
		Preload("Variants").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Where("slug = ?", slug).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by slug")
	}

	return toProductDomain(&productM), nil
}

// ListProducts retrieves a page of products matching the params and the total match count.
func (repo *catalogRepository) ListProducts(ctx context.Context, params repository.ListProductsParams) ([]*entity.Product, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})

	if params.CategorySlug != "" {
		query = query.
			Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.slug = ?", params.CategorySlug)
	}
	if params.Status != "" {
		query = query.Where("products.status = ?", params.Status)
	}
	if params.InStockOnly {
		query = query.Where(
			"EXISTS (SELECT 1 FROM product_variants v WHERE v.product_id = products.id AND v.inventory_quantity > 0)",
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	var productModels []*model.ProductModel
	if err := query.
		Preload("Category").
		Preload("Variants").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Order("products.created_at DESC").
		Offset((params.Page - 1) * params.PageSize).
		Limit(params.PageSize).
		Find(&productModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, total, nil
}

// UpdateProductStatus sets a product's lifecycle status.
func (repo *catalogRepository) UpdateProductStatus(ctx context.Context, id uuid.UUID, status entity.ProductStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update product status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// CreateVariant persists a new variant for a product.
func (repo *catalogRepository) CreateVariant(ctx context.Context, variant *entity.ProductVariant) error {
	variantM := fromVariantDomain(variant)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(variantM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create variant")
	}

	variant.ID = variantM.ID
	variant.CreatedAt = variantM.CreatedAt
	variant.UpdatedAt = variantM.UpdatedAt

	return nil
}

// FindVariantByID retrieves a variant by its unique ID, preloading its product.
func (repo *catalogRepository) FindVariantByID(ctx context.Context, id uuid.UUID) (*entity.ProductVariant, error) {
	var variantM model.ProductVariantModel

	if err := repo.db.WithContext(ctx).
		Preload("Product").
		Where("id = ?", id).
		First(&variantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVariantNotFound
		}

		return nil, errors.Wrap(err, "failed to find variant by ID")
	}

	return toVariantDomain(&variantM), nil
}

// LockVariant retrieves a variant by ID while holding a FOR UPDATE row lock
// for the remainder of the surrounding transaction. The owning product is
// fetched separately since locking joined rows is not portable.
func (repo *catalogRepository) LockVariant(ctx context.Context, id uuid.UUID) (*entity.ProductVariant, error) {
	var variantM model.ProductVariantModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&variantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVariantNotFound
		}

		return nil, errors.Wrap(err, "failed to lock variant")
	}

	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", variantM.ProductID).
		First(&productM).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrap(err, "failed to find product for locked variant")
		}
	} else {
		variantM.Product = &productM
	}

	return toVariantDomain(&variantM), nil
}

// DecrementInventory atomically subtracts quantity from a variant's inventory.
// The guard in the WHERE clause keeps the quantity from going below zero even
// under concurrent decrements.
func (repo *catalogRepository) DecrementInventory(ctx context.Context, variantID uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductVariantModel{}).
		Where("id = ? AND inventory_quantity >= ?", variantID, quantity).
		Update("inventory_quantity", gorm.Expr("inventory_quantity - ?", quantity))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to decrement inventory")
	}

	if result.RowsAffected == 0 {
		return repository.ErrInsufficientInventory
	}

	return nil
}

// CreateImage persists a new product image. When the image is flagged as main,
// the main flag is cleared on all sibling images inside the same transaction.
func (repo *catalogRepository) CreateImage(ctx context.Context, image *entity.ProductImage) error {
	imageM := fromImageDomain(image)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if imageM.IsMain {
			if err := tx.Model(&model.ProductImageModel{}).
				Where("product_id = ? AND is_main = ?", imageM.ProductID, true).
				Update("is_main", false).Error; err != nil {
				return errors.Wrap(err, "failed to clear main image flag")
			}
		}

		if err := tx.Create(imageM).Error; err != nil {
			if isForeignKeyConstraintViolation(err) {
				return repository.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to create image")
		}

		return nil
	})
	if err != nil {
		return err
	}

	image.ID = imageM.ID
	image.CreatedAt = imageM.CreatedAt

	return nil
}

// SetMainImage flags one image as the product's main image, clearing the flag
// on all other images of that product inside the same transaction.
func (repo *catalogRepository) SetMainImage(ctx context.Context, productID, imageID uuid.UUID) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.ProductImageModel{}).
			Where("product_id = ? AND id <> ?", productID, imageID).
			Update("is_main", false).Error; err != nil {
			return errors.Wrap(err, "failed to clear main image flag")
		}

		result := tx.Model(&model.ProductImageModel{}).
			Where("id = ? AND product_id = ?", imageID, productID).
			Update("is_main", true)
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to set main image flag")
		}
		if result.RowsAffected == 0 {
			return repository.ErrImageNotFound
		}

		return nil
	})
}

// CreateReview persists a new product review.
func (repo *catalogRepository) CreateReview(ctx context.Context, review *entity.ProductReview) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateReview
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidRating
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// --- Mappers ---

// toCategoryDomain converts a GORM CategoryModel to a domain Category entity.
func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:          data.ID,
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromCategoryDomain converts a domain Category entity to a GORM CategoryModel.
func fromCategoryDomain(data *entity.Category) *model.CategoryModel {
	if data == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:          data.ID,
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// toProductDomain converts a GORM ProductModel to a domain Product entity,
// including any preloaded associations.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	product := &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
		CategoryID:  data.CategoryID,
		Status:      entity.ProductStatus(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	if data.Category != nil {
		product.CategoryName = data.Category.Name
	}

	for _, variantM := range data.Variants {
		product.Variants = append(product.Variants, toVariantDomain(variantM))
	}
	for _, imageM := range data.Images {
		product.Images = append(product.Images, toImageDomain(imageM))
	}
	for _, reviewM := range data.Reviews {
		product.Reviews = append(product.Reviews, toReviewDomain(reviewM))
	}

	return product
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		CategoryID:  data.CategoryID,
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
		Status:      string(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// toVariantDomain converts a GORM ProductVariantModel to a domain ProductVariant entity.
// A NULL price column maps to the zero decimal, which the entity treats as unset.
func toVariantDomain(data *model.ProductVariantModel) *entity.ProductVariant {
	if data == nil {
		return nil
	}

	price := decimal.Zero
	if data.Price != nil {
		price = *data.Price
	}

	return &entity.ProductVariant{
		ID:                data.ID,
		ProductID:         data.ProductID,
		Product:           toProductDomain(data.Product),
		SKU:               data.SKU,
		Size:              data.Size,
		Color:             data.Color,
		Price:             price,
		CompareAtPrice:    data.CompareAtPrice,
		InventoryQuantity: data.InventoryQuantity,
		LowStockThreshold: data.LowStockThreshold,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

// fromVariantDomain converts a domain ProductVariant entity to a GORM ProductVariantModel.
// The zero price maps back to a NULL column.
func fromVariantDomain(data *entity.ProductVariant) *model.ProductVariantModel {
	if data == nil {
		return nil
	}

	var price *decimal.Decimal
	if data.HasPrice() {
		p := data.Price
		price = &p
	}

	return &model.ProductVariantModel{
		ID:                data.ID,
		ProductID:         data.ProductID,
		SKU:               data.SKU,
		Size:              data.Size,
		Color:             data.Color,
		Price:             price,
		CompareAtPrice:    data.CompareAtPrice,
		InventoryQuantity: data.InventoryQuantity,
		LowStockThreshold: data.LowStockThreshold,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

// toImageDomain converts a GORM ProductImageModel to a domain ProductImage entity.
func toImageDomain(data *model.ProductImageModel) *entity.ProductImage {
	if data == nil {
		return nil
	}

	return &entity.ProductImage{
		ID:        data.ID,
		ProductID: data.ProductID,
		URL:       data.URL,
		AltText:   data.AltText,
		IsMain:    data.IsMain,
		SortOrder: data.SortOrder,
		CreatedAt: data.CreatedAt,
	}
}

// fromImageDomain converts a domain ProductImage entity to a GORM ProductImageModel.
func fromImageDomain(data *entity.ProductImage) *model.ProductImageModel {
	if data == nil {
		return nil
	}

	return &model.ProductImageModel{
		ID:        data.ID,
		ProductID: data.ProductID,
		URL:       data.URL,
		AltText:   data.AltText,
		IsMain:    data.IsMain,
		SortOrder: data.SortOrder,
		CreatedAt: data.CreatedAt,
	}
}

// toReviewDomain converts a GORM ProductReviewModel to a domain ProductReview entity.
func toReviewDomain(data *model.ProductReviewModel) *entity.ProductReview {
	if data == nil {
		return nil
	}

	return &entity.ProductReview{
		ID:        data.ID,
		ProductID: data.ProductID,
		UserID:    data.UserID,
		Rating:    data.Rating,
		Title:     data.Title,
		Comment:   data.Comment,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromReviewDomain converts a domain ProductReview entity to a GORM ProductReviewModel.
func fromReviewDomain(data *entity.ProductReview) *model.ProductReviewModel {
	if data == nil {
		return nil
	}

	return &model.ProductReviewModel{
		ID:        data.ID,
		ProductID: data.ProductID,
		UserID:    data.UserID,
		Rating:    data.Rating,
		Title:     data.Title,
		Comment:   data.Comment,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
