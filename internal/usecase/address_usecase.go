package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressInput carries the fields of a delivery address.
type AddressInput struct {
	RecipientName string
	Street        string
	Number        string
	Complement    string
	Neighborhood  string
	City          string
	State         string
	ZipCode       string
	Phone         string
	Type          string
	Reference     string
	IsDefault     bool
}

// AddressUsecase defines the interface for delivery address management use cases
type AddressUsecase interface {
	// CreateAddress registers a new address for a user
	CreateAddress(ctx context.Context, userID uuid.UUID, input *AddressInput) (*entity.Address, error)

	// GetAddress retrieves an address by ID, checking it belongs to the user
	GetAddress(ctx context.Context, userID, addressID uuid.UUID) (*entity.Address, error)

	// ListUserAddresses retrieves all addresses belonging to a user
	ListUserAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)

	// UpdateAddress modifies an existing address, checking ownership
	UpdateAddress(ctx context.Context, userID, addressID uuid.UUID, input *AddressInput) (*entity.Address, error)

	// SetDefaultAddress promotes an address to the user's default
	SetDefaultAddress(ctx context.Context, userID, addressID uuid.UUID) error

	// DeleteAddress removes an address, checking ownership
	DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error
}
