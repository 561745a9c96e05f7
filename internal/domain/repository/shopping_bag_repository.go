package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for shopping bag persistence.
var (
	// ErrBagNotFound is returned when a shopping bag is not found.
	ErrBagNotFound = errors.New("shopping bag not found")
	// ErrBagItemNotFound is returned when a bag item is not found.
	ErrBagItemNotFound = errors.New("shopping bag item not found")
)

// ShoppingBagRepository defines the interface for shopping bag database operations.
// Bags are loaded and saved together with their items.
type ShoppingBagRepository interface {
	// Create persists a new bag with its items.
	Create(ctx context.Context, bag *entity.ShoppingBag) error

	// FindByID retrieves a bag with its items by the bag's unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ShoppingBag, error)

	// FindByUser retrieves all bags belonging to a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ShoppingBag, error)

	// FindOpenByUser retrieves the user's most recent OPEN bag.
	// Returns ErrBagNotFound if the user has no open bag.
	FindOpenByUser(ctx context.Context, userID uuid.UUID) (*entity.ShoppingBag, error)

	// Update saves the bag header and upserts its items.
	Update(ctx context.Context, bag *entity.ShoppingBag) error

	// DeleteItem removes a single item row from a bag.
	DeleteItem(ctx context.Context, itemID uuid.UUID) error

	// Delete removes a bag and its items.
	Delete(ctx context.Context, id uuid.UUID) error
}
