package service

import (
	"context"
	"time"
)

// OrderEvent represents an order lifecycle event to be consumed by
// downstream systems (fulfilment, notifications, analytics).
type OrderEvent struct {
	EventType     string    `json:"event_type"`
	OrderID       string    `json:"order_id"`
	UserID        string    `json:"user_id"`
	TotalAmount   string    `json:"total_amount"`
	Status        string    `json:"status"`
	PaymentID     string    `json:"payment_id,omitempty"`
	PaymentStatus string    `json:"payment_status,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
