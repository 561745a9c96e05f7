package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewInput carries the fields of a product review. OrderID is optional;
// when set, the review is checked against that order and marked as a
// verified purchase.
type ReviewInput struct {
	Rating  int
	Comment string
	OrderID *uuid.UUID
}

// ProductReviewSummary bundles a product's reviews with their aggregate rating.
type ProductReviewSummary struct {
	Reviews       []*entity.Review
	AverageRating float64
	ReviewCount   int
}

// ReviewUsecase defines the interface for product review use cases
type ReviewUsecase interface {
	// CreateReview records a user's review of a product, one per user per product
	CreateReview(ctx context.Context, userID, productID uuid.UUID, input *ReviewInput) (*entity.Review, error)

	// GetReview retrieves a review by ID
	GetReview(ctx context.Context, reviewID uuid.UUID) (*entity.Review, error)

	// GetProductReviews retrieves a product's active reviews with the aggregate rating
	GetProductReviews(ctx context.Context, productID uuid.UUID) (*ProductReviewSummary, error)

	// GetUserReviews retrieves a user's active reviews, newest first
	GetUserReviews(ctx context.Context, userID uuid.UUID) ([]*entity.Review, error)

	// UpdateReview modifies the user's own review
	UpdateReview(ctx context.Context, userID, reviewID uuid.UUID, input *ReviewInput) (*entity.Review, error)

	// DeleteReview deactivates the user's own review
	DeleteReview(ctx context.Context, userID, reviewID uuid.UUID) error
}
