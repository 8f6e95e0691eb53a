package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentModel mirrors the 'payments' table. The unique index on order_id
// enforces at most one payment per order.
type PaymentModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Method        string          `gorm:"type:varchar(20);not null"`
	Status        string          `gorm:"type:varchar(20);not null;default:'pending';index"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TransactionID string          `gorm:"type:varchar(128)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Order *OrderModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
