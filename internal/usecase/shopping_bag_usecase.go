package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BagItemInput carries one product line to add to a bag. Price and Name are
// a snapshot taken by the caller; checkout re-resolves the live product.
type BagItemInput struct {
	ProductID string
	Name      string
	ImageURL  string
	Price     decimal.Decimal
	Quantity  int
	Size      string
}

// ShoppingBagUsecase defines the interface for shopping bag use cases
type ShoppingBagUsecase interface {
	// CreateBag opens a new bag for the user, or returns their newest open bag
	CreateBag(ctx context.Context, userID uuid.UUID) (*entity.ShoppingBag, error)

	// GetBag retrieves a bag with its items
	GetBag(ctx context.Context, bagID uuid.UUID) (*entity.ShoppingBag, error)

	// GetUserBags retrieves all bags belonging to a user, newest first
	GetUserBags(ctx context.Context, userID uuid.UUID) ([]*entity.ShoppingBag, error)

	// GetActiveBag retrieves the user's newest OPEN bag
	GetActiveBag(ctx context.Context, userID uuid.UUID) (*entity.ShoppingBag, error)

	// AddItem adds a product line to an open bag, merging lines that match
	// on product and size
	AddItem(ctx context.Context, bagID uuid.UUID, input *BagItemInput) (*entity.ShoppingBag, error)

	// UpdateItemQuantity changes the quantity of an existing bag line
	UpdateItemQuantity(ctx context.Context, bagID, itemID uuid.UUID, quantity int) (*entity.ShoppingBag, error)

	// RemoveItem deletes a line from an open bag
	RemoveItem(ctx context.Context, bagID, itemID uuid.UUID) (*entity.ShoppingBag, error)

	// ClearBag deletes every line from an open bag, leaving it open and empty
	ClearBag(ctx context.Context, bagID uuid.UUID) (*entity.ShoppingBag, error)

	// UpdateBagStatus transitions the bag to the given status
	UpdateBagStatus(ctx context.Context, bagID uuid.UUID, status string) (*entity.ShoppingBag, error)

	// DeleteBag removes a bag and its items
	DeleteBag(ctx context.Context, bagID uuid.UUID) error
}
