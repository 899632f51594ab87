package service

import (
	"context"
	"time"
)

// OrderEvent records one committed lifecycle change, published for async
// fan-out (push notifications). Delivery is best-effort; the order watch, not
// the event stream, is the source of truth for views.
type OrderEvent struct {
	RequestID    string    `json:"request_id,omitempty"` // For distributed tracing
	OrderID      string    `json:"order_id"`
	CustomerID   string    `json:"customer_id"`
	RestaurantID string    `json:"restaurant_id"`
	RiderID      string    `json:"rider_id,omitempty"` // Set once a rider is bound
	FromStatus   string    `json:"from_status,omitempty"`
	ToStatus     string    `json:"to_status"`
	Total        float64   `json:"total"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing order events to a
// message queue.
type EventPublisher interface {
	// PublishOrderEvent publishes a lifecycle event for async processing.
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
