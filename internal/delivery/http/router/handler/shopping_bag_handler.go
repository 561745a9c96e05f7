package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ShoppingBagHandlerParams holds dependencies for ShoppingBagHandler, injected by Fx.
type ShoppingBagHandlerParams struct {
	fx.In

	BagUC  usecase.ShoppingBagUsecase
	Logger *slog.Logger
}

// ShoppingBagHandler holds dependencies for shopping bag handlers.
type ShoppingBagHandler struct {
	bagUC  usecase.ShoppingBagUsecase
	logger *slog.Logger
}

// NewShoppingBagHandler is the constructor for ShoppingBagHandler.
func NewShoppingBagHandler(params ShoppingBagHandlerParams) *ShoppingBagHandler {
	return &ShoppingBagHandler{
		bagUC:  params.BagUC,
		logger: params.Logger,
	}
}

// CreateBagRequest represents the request body for opening a shopping bag.
type CreateBagRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}

// BagItemRequest represents the request body for adding a line to a bag.
type BagItemRequest struct {
	ProductID string          `json:"product_id" validate:"required,uuid"`
	Name      string          `json:"name" validate:"required"`
	ImageURL  string          `json:"image_url"`
	Price     decimal.Decimal `json:"price" validate:"required"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	Size      string          `json:"size"`
}

// UpdateItemQuantityRequest represents the request body for changing a line's quantity.
type UpdateItemQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// UpdateBagStatusRequest represents the request body for transitioning a bag's status.
type UpdateBagStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=OPEN FINALIZED ABANDONED"`
}

// CreateBag handles opening a bag for a user, reusing their newest open bag.
func (h *ShoppingBagHandler) CreateBag(c echo.Context) error {
	var req CreateBagRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bag input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	userID, err := parseIDString(c, req.UserID, "user_id")
	if err != nil {
		return err
	}

	bag, err := h.bagUC.CreateBag(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, bag, "Shopping bag created successfully")
}

// GetBag handles retrieving a bag with its items.
func (h *ShoppingBagHandler) GetBag(c echo.Context) error {
	bagID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	bag, err := h.bagUC.GetBag(c.Request().Context(), bagID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, bag, "Shopping bag retrieved successfully")
}

// GetUserBags handles retrieving all of a user's bags.
func (h *ShoppingBagHandler) GetUserBags(c echo.Context) error {
	userID, err := parseIDParam(c, "userID")
	if err != nil {
		return err
	}

	bags, err := h.bagUC.GetUserBags(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, bags, "Shopping bags retrieved successfully")
}

// GetActiveBag handles retrieving the user's newest open bag.
func (h *ShoppingBagHandler) GetActiveBag(c echo.Context) error {
	userID, err := parseIDParam(c, "userID")
	if err != nil {
		return err
	}

	bag, err := h.bagUC.GetActiveBag(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, bag, "Active shopping bag retrieved successfully")
}

// AddItem handles adding a product line to an open bag.
func (h *ShoppingBagHandler) AddItem(c echo.Context) error {
	bagID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req BagItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bag item input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	bag, err := h.bagUC.AddItem(c.Request().Context(), bagID, &usecase.BagItemInput{
		ProductID: req.ProductID,
		Name:      req.Name,
		ImageURL:  req.ImageURL,
		Price:     req.Price,
		Quantity:  req.Quantity,
		Size:      req.Size,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, bag, "Item added to bag successfully")
}

// UpdateItemQuantity handles changing the quantity of a bag line.
func (h *ShoppingBagHandler) UpdateItemQuantity(c echo.Context) error {
	bagID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	itemID, err := parseIDParam(c, "itemID")
	if err != nil {
		return err
	}

	var req UpdateItemQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	bag, err := h.bagUC.UpdateItemQuantity(c.Request().Context(), bagID, itemID, req.Quantity)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, bag, "Item quantity updated successfully")
}

// RemoveItem handles deleting a line from an open bag.
func (h *ShoppingBagHandler) RemoveItem(c echo.Context) error {
	bagID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	itemID, err := parseIDParam(c, "itemID")
	if err != nil {
		return err
	}

	bag, err := h.bagUC.RemoveItem(c.Request().Context(), bagID, itemID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, bag, "Item removed from bag successfully")
}

// ClearBag handles emptying an open bag in one call.
func (h *ShoppingBagHandler) ClearBag(c echo.Context) error {
	bagID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	bag, err := h.bagUC.ClearBag(c.Request().Context(), bagID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, bag, "Shopping bag cleared successfully")
}

// UpdateBagStatus handles transitioning a bag's status.
func (h *ShoppingBagHandler) UpdateBagStatus(c echo.Context) error {
	bagID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req UpdateBagStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	bag, err := h.bagUC.UpdateBagStatus(c.Request().Context(), bagID, req.Status)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, bag, "Shopping bag status updated successfully")
}

// DeleteBag handles removing a bag and its items.
func (h *ShoppingBagHandler) DeleteBag(c echo.Context) error {
	bagID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.bagUC.DeleteBag(c.Request().Context(), bagID); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Shopping bag deleted successfully"}, "Shopping bag deleted successfully")
}
