package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckoutInput carries everything needed to turn an open bag into an order.
type CheckoutInput struct {
	UserID        uuid.UUID
	BagID         uuid.UUID
	AddressID     uuid.UUID
	PaymentMethod string
	Notes         string
}

// OrderStatusUpdateInput carries a partial order status change. Empty fields
// are left untouched.
type OrderStatusUpdateInput struct {
	Status        string
	PaymentStatus string
	TrackingCode  string
}

// PixChargeOutput bundles the two renderings of a PIX charge.
type PixChargeOutput struct {
	Payload string // The EMV "copy and paste" string.
	PNG     []byte // The same payload rendered as a QR code image.
}

// OrderUsecase defines the interface for order lifecycle use cases
type OrderUsecase interface {
	// Checkout atomically converts an open bag into an order: it validates
	// the bag and address, locks and decrements product stock, snapshots
	// prices and the delivery address, and finalizes the bag
	Checkout(ctx context.Context, input *CheckoutInput) (*entity.Order, error)

	// GetOrder retrieves an order with its items
	GetOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)

	// ListOrders retrieves every order, newest first
	ListOrders(ctx context.Context) ([]*entity.Order, error)

	// GetUserOrders retrieves all orders belonging to a user, newest first
	GetUserOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// GetOrdersByStatus retrieves all orders in the given fulfillment status
	GetOrdersByStatus(ctx context.Context, status string) ([]*entity.Order, error)

	// UpdateOrderStatus applies a status change, maintaining lifecycle dates
	// and returning stock when the order is cancelled
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, input *OrderStatusUpdateInput) (*entity.Order, error)

	// DeleteOrder removes an order that has not shipped, returning its stock
	DeleteOrder(ctx context.Context, orderID uuid.UUID) error

	// GeneratePixCharge renders the order's outstanding amount as a PIX charge
	GeneratePixCharge(ctx context.Context, orderID uuid.UUID) (*PixChargeOutput, error)
}
