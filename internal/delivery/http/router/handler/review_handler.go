package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler holds dependencies for product review handlers.
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler.
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// ReviewRequest represents the request body for creating or updating a review.
// OrderID is optional; when present the review is checked against that order
// and marked as a verified purchase.
type ReviewRequest struct {
	UserID  string `json:"user_id" validate:"required,uuid"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
	OrderID string `json:"order_id" validate:"omitempty,uuid"`
}

func (r *ReviewRequest) toInput() *usecase.ReviewInput {
	input := &usecase.ReviewInput{
		Rating:  r.Rating,
		Comment: r.Comment,
	}
	if r.OrderID != "" {
		if orderID, err := uuid.Parse(r.OrderID); err == nil {
			input.OrderID = &orderID
		}
	}

	return input
}

// CreateReview handles recording a user's review of a product.
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	productID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req ReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	userID, err := parseIDString(c, req.UserID, "user_id")
	if err != nil {
		return err
	}

	review, err := h.reviewUC.CreateReview(c.Request().Context(), userID, productID, req.toInput())
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, review, "Review created successfully")
}

// GetProductReviews handles retrieving a product's reviews with the aggregate rating.
func (h *ReviewHandler) GetProductReviews(c echo.Context) error {
	productID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	summary, err := h.reviewUC.GetProductReviews(c.Request().Context(), productID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary, "Reviews retrieved successfully")
}

// GetReview handles retrieving a review by ID.
func (h *ReviewHandler) GetReview(c echo.Context) error {
	reviewID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	review, err := h.reviewUC.GetReview(c.Request().Context(), reviewID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, review, "Review retrieved successfully")
}

// GetUserReviews handles retrieving a user's reviews.
func (h *ReviewHandler) GetUserReviews(c echo.Context) error {
	userID, err := parseIDParam(c, "userID")
	if err != nil {
		return err
	}

	reviews, err := h.reviewUC.GetUserReviews(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reviews, "Reviews retrieved successfully")
}

// UpdateReview handles modifying the user's own review.
func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	reviewID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req ReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	userID, err := parseIDString(c, req.UserID, "user_id")
	if err != nil {
		return err
	}

	review, err := h.reviewUC.UpdateReview(c.Request().Context(), userID, reviewID, req.toInput())
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, review, "Review updated successfully")
}

// DeleteReviewRequest represents the request body for removing a review.
type DeleteReviewRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}

// DeleteReview handles removing the user's own review.
func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	reviewID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req DeleteReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	userID, err := parseIDString(c, req.UserID, "user_id")
	if err != nil {
		return err
	}

	if err := h.reviewUC.DeleteReview(c.Request().Context(), userID, reviewID); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Review deleted successfully"}, "Review deleted successfully")
}
