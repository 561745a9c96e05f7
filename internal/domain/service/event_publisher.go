// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"context"
)

// Order event types published to the message queue.
const (
	OrderEventPlaced        = "order.placed"
	OrderEventStatusChanged = "order.status_changed"
	OrderEventDeleted       = "order.deleted"
)

// OrderEvent represents an order lifecycle change consumed by downstream
// systems (invoicing, shipping, analytics). It is published after the
// surrounding transaction commits, never from inside it.
type OrderEvent struct {
	RequestID     string `json:"request_id,omitempty"` // For distributed tracing
	EventType     string `json:"event_type"`
	OrderID       string `json:"order_id"`
	UserID        string `json:"user_id"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status,omitempty"`
	TotalAmount   string `json:"total_amount,omitempty"`
	ItemCount     int    `json:"item_count,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
