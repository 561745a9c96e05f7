package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reviewServiceFixtures holds all test dependencies for review service tests.
type reviewServiceFixtures struct {
	service     usecase.ReviewUsecase
	reviewRepo  *mockRepo.MockReviewRepository
	productRepo *mockRepo.MockProductRepository
	orderRepo   *mockRepo.MockOrderRepository
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)

	service := NewReviewService(ReviewServiceParams{
		ReviewRepo:  reviewRepo,
		ProductRepo: productRepo,
		OrderRepo:   orderRepo,
	})

	return reviewServiceFixtures{
		service:     service,
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

func TestReviewService_CreateReview_Success(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
	fx.reviewRepo.EXPECT().FindByUserAndProduct(ctx, userID, productID).Return(nil, repository.ErrReviewNotFound)
	fx.reviewRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Review")).Return(nil)

	review, err := fx.service.CreateReview(ctx, userID, productID, &usecase.ReviewInput{
		Rating:  5,
		Comment: "Great fit",
	})

	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)
	assert.Equal(t, userID, review.UserID)
	assert.Equal(t, productID, review.ProductID)
	assert.True(t, review.Active)
}

func TestReviewService_CreateReview_InvalidRating(t *testing.T) {
	fx := createTestReviewService(t)

	for _, rating := range []int{0, 6, -1} {
		_, err := fx.service.CreateReview(context.Background(), uuid.New(), uuid.New(), &usecase.ReviewInput{Rating: rating})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidRating, "rating %d", rating)
	}
}

func TestReviewService_CreateReview_Duplicate(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
	fx.reviewRepo.EXPECT().FindByUserAndProduct(ctx, userID, productID).
		Return(&entity.Review{ID: uuid.New(), UserID: userID, ProductID: productID}, nil)

	_, err := fx.service.CreateReview(ctx, userID, productID, &usecase.ReviewInput{Rating: 4})

	assert.ErrorIs(t, err, domainerrors.ErrReviewAlreadyExists)
}

func TestReviewService_CreateReview_ProductNotFound(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.CreateReview(ctx, uuid.New(), productID, &usecase.ReviewInput{Rating: 3})

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestReviewService_CreateReview_VerifiedPurchase(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	orderID := uuid.New()
	order := &entity.Order{
		ID:     orderID,
		UserID: userID,
		Items:  []entity.OrderItem{{ID: uuid.New(), OrderID: orderID, ProductID: productID}},
	}

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
	fx.reviewRepo.EXPECT().FindByUserAndProduct(ctx, userID, productID).Return(nil, repository.ErrReviewNotFound)
	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	fx.reviewRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Review")).Return(nil)

	review, err := fx.service.CreateReview(ctx, userID, productID, &usecase.ReviewInput{
		Rating:  5,
		OrderID: &orderID,
	})

	require.NoError(t, err)
	assert.True(t, review.VerifiedPurchase)
}

func TestReviewService_CreateReview_OrderWithoutProduct(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	orderID := uuid.New()
	order := &entity.Order{
		ID:     orderID,
		UserID: userID,
		Items:  []entity.OrderItem{{ID: uuid.New(), OrderID: orderID, ProductID: uuid.New()}},
	}

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
	fx.reviewRepo.EXPECT().FindByUserAndProduct(ctx, userID, productID).Return(nil, repository.ErrReviewNotFound)
	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)

	_, err := fx.service.CreateReview(ctx, userID, productID, &usecase.ReviewInput{
		Rating:  4,
		OrderID: &orderID,
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReviewService_GetProductReviews_Summary(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	productID := uuid.New()
	reviews := []*entity.Review{
		{ID: uuid.New(), ProductID: productID, Rating: 5},
		{ID: uuid.New(), ProductID: productID, Rating: 4},
	}

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
	fx.reviewRepo.EXPECT().FindByProduct(ctx, productID).Return(reviews, nil)
	fx.reviewRepo.EXPECT().AverageRatingByProduct(ctx, productID).Return(4.5, nil)

	summary, err := fx.service.GetProductReviews(ctx, productID)

	require.NoError(t, err)
	assert.Len(t, summary.Reviews, 2)
	assert.InDelta(t, 4.5, summary.AverageRating, 0.001)
	assert.Equal(t, 2, summary.ReviewCount)
}

func TestReviewService_UpdateReview_NotOwner(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	reviewID := uuid.New()

	fx.reviewRepo.EXPECT().FindByID(ctx, reviewID).
		Return(&entity.Review{ID: reviewID, UserID: uuid.New(), Active: true}, nil)

	_, err := fx.service.UpdateReview(ctx, uuid.New(), reviewID, &usecase.ReviewInput{Rating: 2})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReviewService_GetUserReviews(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	userID := uuid.New()
	reviews := []*entity.Review{
		{ID: uuid.New(), UserID: userID, Rating: 5, Active: true},
		{ID: uuid.New(), UserID: userID, Rating: 3, Active: true},
	}

	fx.reviewRepo.EXPECT().FindByUser(ctx, userID).Return(reviews, nil)

	got, err := fx.service.GetUserReviews(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestReviewService_UpdateReview_Deactivated(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	userID := uuid.New()
	reviewID := uuid.New()

	fx.reviewRepo.EXPECT().FindByID(ctx, reviewID).
		Return(&entity.Review{ID: reviewID, UserID: userID, Active: false}, nil)

	_, err := fx.service.UpdateReview(ctx, userID, reviewID, &usecase.ReviewInput{Rating: 2})

	assert.ErrorIs(t, err, domainerrors.ErrReviewNotFound)
}

func TestReviewService_DeleteReview_Success(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	userID := uuid.New()
	reviewID := uuid.New()

	fx.reviewRepo.EXPECT().FindByID(ctx, reviewID).
		Return(&entity.Review{ID: reviewID, UserID: userID, Active: true}, nil)
	fx.reviewRepo.EXPECT().Delete(ctx, reviewID).Return(nil)

	err := fx.service.DeleteReview(ctx, userID, reviewID)

	assert.NoError(t, err)
}
