package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for review persistence.
var (
	// ErrReviewNotFound is returned when a review is not found.
	ErrReviewNotFound = errors.New("review not found")
	// ErrDuplicateReview is returned when a user reviews the same product twice.
	ErrDuplicateReview = errors.New("user already reviewed this product")
)

// ReviewRepository defines the interface for product review database operations.
type ReviewRepository interface {
	// Create persists a new review.
	Create(ctx context.Context, review *entity.Review) error

	// FindByID retrieves a review by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// FindByProduct retrieves a product's active reviews, newest first.
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error)

	// FindByUser retrieves a user's active reviews, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Review, error)

	// FindByUserAndProduct retrieves the review a user left on a product.
	// Returns ErrReviewNotFound if the user has not reviewed the product.
	FindByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*entity.Review, error)

	// AverageRatingByProduct returns the mean rating over a product's active
	// reviews, or zero when the product has none.
	AverageRatingByProduct(ctx context.Context, productID uuid.UUID) (float64, error)

	// Update modifies an existing review record.
	Update(ctx context.Context, review *entity.Review) error

	// Delete deactivates a review by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
