package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrAddressNotFound is returned when an address is not found.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines the interface for address-related database operations.
type AddressRepository interface {
	// Create persists a new address for a user.
	Create(ctx context.Context, address *entity.Address) error

	// FindByID retrieves an address by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// FindByUser retrieves all addresses belonging to a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)

	// FindDefaultByUser retrieves the user's default address.
	// Returns ErrAddressNotFound if no default address exists.
	FindDefaultByUser(ctx context.Context, userID uuid.UUID) (*entity.Address, error)

	// Update modifies an existing address record.
	Update(ctx context.Context, address *entity.Address) error

	// ClearDefaultForUser unsets the default flag on all of the user's addresses.
	// Used before promoting another address to default.
	ClearDefaultForUser(ctx context.Context, userID uuid.UUID) error

	// Delete removes an address by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
