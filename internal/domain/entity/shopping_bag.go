package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BagStatus is the lifecycle state of a shopping bag.
type BagStatus string

const (
	BagStatusOpen      BagStatus = "OPEN"
	BagStatusCheckout  BagStatus = "CHECKOUT"
	BagStatusCompleted BagStatus = "COMPLETED"
	BagStatusAbandoned BagStatus = "ABANDONED"
)

// ParseBagStatus converts a raw string into a BagStatus.
func ParseBagStatus(raw string) (BagStatus, bool) {
	switch BagStatus(raw) {
	case BagStatusOpen, BagStatusCheckout, BagStatusCompleted, BagStatusAbandoned:
		return BagStatus(raw), true
	}

	return "", false
}

// ShoppingBagItem is one product line inside a bag. ProductID is kept as a
// plain string so a bag can reference catalog entries that were removed
// after the item was added; resolution happens at checkout.
type ShoppingBagItem struct {
	ID        uuid.UUID       `json:"id"`
	BagID     uuid.UUID       `json:"bag_id"`
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"` // Product name at the time the item was added.
	ImageURL  string          `json:"image_url"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Size      string          `json:"size"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Subtotal returns price times quantity for this line.
func (i *ShoppingBagItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ShoppingBag is a user's pre-order item collection. Only an OPEN bag may
// be mutated or checked out; checkout finalizes it as COMPLETED.
type ShoppingBag struct {
	ID          uuid.UUID         `json:"id"`
	UserID      uuid.UUID         `json:"user_id"`
	Status      BagStatus         `json:"status"`
	TotalAmount decimal.Decimal   `json:"total_amount"`
	Items       []ShoppingBagItem `json:"items"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// IsOpen reports whether the bag still accepts mutations.
func (b *ShoppingBag) IsOpen() bool {
	return b.Status == BagStatusOpen
}

// FindItem returns the index of the line matching product and size, or -1.
// Matching on both fields is what makes adding the same product in a new
// size create a separate line instead of merging.
func (b *ShoppingBag) FindItem(productID, size string) int {
	for i := range b.Items {
		if b.Items[i].ProductID == productID && b.Items[i].Size == size {
			return i
		}
	}

	return -1
}

// RecalculateTotalAmount recomputes TotalAmount from the current items.
func (b *ShoppingBag) RecalculateTotalAmount() {
	total := decimal.Zero
	for i := range b.Items {
		total = total.Add(b.Items[i].Subtotal())
	}
	b.TotalAmount = total
}
