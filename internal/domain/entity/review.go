package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a user's rating of a product. A user may review a given
// product at most once. When the review references one of the user's
// orders containing the product, it is marked as a verified purchase.
// Deleting a review deactivates it instead of removing the row.
type Review struct {
	ID               uuid.UUID  `json:"id"`
	UserID           uuid.UUID  `json:"user_id"`
	ProductID        uuid.UUID  `json:"product_id"`
	OrderID          *uuid.UUID `json:"order_id"`
	Rating           int        `json:"rating"` // 1 to 5 stars.
	Comment          string     `json:"comment"`
	VerifiedPurchase bool       `json:"verified_purchase"`
	Active           bool       `json:"active"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
