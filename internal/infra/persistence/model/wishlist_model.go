package model

import (
	"time"

	"github.com/google/uuid"
)

// WishlistModel mirrors the 'wishlists' table. The composite unique index
// enforces at most one entry per user per product.
type WishlistModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_wishlists_user_product"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_wishlists_user_product"`
	CreatedAt time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (WishlistModel) TableName() string {
	return "wishlists"
}
