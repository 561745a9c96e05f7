package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order database operations.
// Orders are loaded and saved together with their items.
type OrderRepository interface {
	// Create persists a new order with its items.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with its items by the order's unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindAll retrieves every order, newest first.
	FindAll(ctx context.Context) ([]*entity.Order, error)

	// FindByUser retrieves all orders belonging to a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// FindByStatus retrieves all orders in the given fulfillment status, newest first.
	FindByStatus(ctx context.Context, status entity.OrderStatus) ([]*entity.Order, error)

	// Update saves the order header and upserts its items.
	Update(ctx context.Context, order *entity.Order) error

	// Delete removes an order and its items.
	Delete(ctx context.Context, id uuid.UUID) error
}
