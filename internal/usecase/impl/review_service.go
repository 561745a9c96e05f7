package impl

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo  repository.ReviewRepository
	ProductRepo repository.ProductRepository
	OrderRepo   repository.OrderRepository
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo:  params.ReviewRepo,
		productRepo: params.ProductRepo,
		orderRepo:   params.OrderRepo,
	}
}

// CreateReview records a user's review of a product, one per user per product.
func (srv *reviewService) CreateReview(ctx context.Context, userID, productID uuid.UUID, input *usecase.ReviewInput) (*entity.Review, error) {
	if err := validateRating(input.Rating); err != nil {
		return nil, err
	}

	if _, err := srv.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	if _, err := srv.reviewRepo.FindByUserAndProduct(ctx, userID, productID); err == nil {
		return nil, errors.Wrap(domainerrors.ErrReviewAlreadyExists, "user already reviewed this product")
	} else if !errors.Is(err, repository.ErrReviewNotFound) {
		return nil, errors.Wrap(err, "failed to check existing review")
	}

	verified := false
	if input.OrderID != nil {
		var err error
		verified, err = srv.verifyPurchase(ctx, userID, productID, *input.OrderID)
		if err != nil {
			return nil, err
		}
	}

	review := &entity.Review{
		UserID:           userID,
		ProductID:        productID,
		OrderID:          input.OrderID,
		Rating:           input.Rating,
		Comment:          input.Comment,
		VerifiedPurchase: verified,
		Active:           true,
	}

	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		if errors.Is(err, repository.ErrDuplicateReview) {
			return nil, errors.Wrap(domainerrors.ErrReviewAlreadyExists, "user already reviewed this product")
		}

		return nil, errors.Wrap(err, "failed to create review")
	}

	return review, nil
}

// GetReview retrieves a review by ID.
func (srv *reviewService) GetReview(ctx context.Context, reviewID uuid.UUID) (*entity.Review, error) {
	review, err := srv.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, errors.Wrap(domainerrors.ErrReviewNotFound, "review not found")
		}

		return nil, errors.Wrap(err, "failed to find review")
	}

	return review, nil
}

// GetProductReviews retrieves a product's active reviews with the aggregate rating.
func (srv *reviewService) GetProductReviews(ctx context.Context, productID uuid.UUID) (*usecase.ProductReviewSummary, error) {
	if _, err := srv.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	reviews, err := srv.reviewRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	average, err := srv.reviewRepo.AverageRatingByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute average rating")
	}

	return &usecase.ProductReviewSummary{
		Reviews:       reviews,
		AverageRating: average,
		ReviewCount:   len(reviews),
	}, nil
}

// GetUserReviews retrieves a user's active reviews, newest first.
func (srv *reviewService) GetUserReviews(ctx context.Context, userID uuid.UUID) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user reviews")
	}

	return reviews, nil
}

// UpdateReview modifies the user's own review.
func (srv *reviewService) UpdateReview(ctx context.Context, userID, reviewID uuid.UUID, input *usecase.ReviewInput) (*entity.Review, error) {
	if err := validateRating(input.Rating); err != nil {
		return nil, err
	}

	review, err := srv.findOwned(ctx, userID, reviewID)
	if err != nil {
		return nil, err
	}

	review.Rating = input.Rating
	review.Comment = input.Comment

	if err := srv.reviewRepo.Update(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to update review")
	}

	return review, nil
}

// DeleteReview deactivates the user's own review.
func (srv *reviewService) DeleteReview(ctx context.Context, userID, reviewID uuid.UUID) error {
	if _, err := srv.findOwned(ctx, userID, reviewID); err != nil {
		return err
	}

	if err := srv.reviewRepo.Delete(ctx, reviewID); err != nil {
		return errors.Wrap(err, "failed to delete review")
	}

	return nil
}

// findOwned loads a review and verifies it belongs to the user.
func (srv *reviewService) findOwned(ctx context.Context, userID, reviewID uuid.UUID) (*entity.Review, error) {
	review, err := srv.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, errors.Wrap(domainerrors.ErrReviewNotFound, "review not found")
		}

		return nil, errors.Wrap(err, "failed to find review")
	}
	if !review.Active {
		return nil, errors.Wrap(domainerrors.ErrReviewNotFound, "review not found")
	}
	if review.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "review does not belong to this user")
	}

	return review, nil
}

// verifyPurchase checks that the referenced order belongs to the user and
// contains the reviewed product.
func (srv *reviewService) verifyPurchase(ctx context.Context, userID, productID, orderID uuid.UUID) (bool, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return false, errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
		}

		return false, errors.Wrap(err, "failed to find order")
	}
	if order.UserID != userID {
		return false, errors.Wrap(domainerrors.ErrValidationFailed, "order does not belong to this user")
	}

	for i := range order.Items {
		if order.Items[i].ProductID == productID {
			return true, nil
		}
	}

	return false, errors.Wrap(domainerrors.ErrValidationFailed, "order does not contain this product")
}

func validateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return errors.Wrap(domainerrors.ErrInvalidRating, "rating must be between 1 and 5")
	}

	return nil
}
