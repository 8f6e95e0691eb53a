package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CategoryID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(200);not null"`
	Slug        string    `gorm:"type:varchar(220);unique;not null"`
	Description string    `gorm:"type:text"`
	Status      string    `gorm:"type:varchar(20);not null;default:'draft';index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Category *CategoryModel         `gorm:"foreignKey:CategoryID"`
	Variants []*ProductVariantModel `gorm:"foreignKey:ProductID"`
	Images   []*ProductImageModel   `gorm:"foreignKey:ProductID"`
	Reviews  []*ProductReviewModel  `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductVariantModel mirrors the 'product_variants' table.
// A NULL price means the price has not been set yet; the inventory check
// constraint keeps the quantity from ever going negative.
type ProductVariantModel struct {
	ID                uuid.UUID        `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID         uuid.UUID        `gorm:"type:uuid;not null;index"`
	SKU               string           `gorm:"type:varchar(64);unique;not null"`
	Size              string           `gorm:"type:varchar(16)"`
	Color             string           `gorm:"type:varchar(32)"`
	Price             *decimal.Decimal `gorm:"type:decimal(12,2)"`
	CompareAtPrice    *decimal.Decimal `gorm:"type:decimal(12,2)"`
	InventoryQuantity int              `gorm:"not null;default:0;check:inventory_quantity >= 0"`
	LowStockThreshold int              `gorm:"not null;default:5"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductVariantModel) TableName() string {
	return "product_variants"
}

// ProductImageModel mirrors the 'product_images' table.
type ProductImageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	URL       string    `gorm:"type:varchar(500);not null"`
	AltText   string    `gorm:"type:varchar(200)"`
	IsMain    bool      `gorm:"not null;default:false"`
	SortOrder int       `gorm:"not null;default:0"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductImageModel) TableName() string {
	return "product_images"
}

// ProductReviewModel mirrors the 'product_reviews' table.
// The composite unique index enforces one review per user per product.
type ProductReviewModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_product_reviews_product_user"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_product_reviews_product_user"`
	Rating    int       `gorm:"not null;check:rating BETWEEN 1 AND 5"`
	Title     string    `gorm:"type:varchar(200)"`
	Comment   string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductReviewModel) TableName() string {
	return "product_reviews"
}
