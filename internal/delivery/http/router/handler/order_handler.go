package handler

import (
	"encoding/base64"
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order lifecycle handlers.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// CheckoutRequest represents the request body for converting a bag into an order.
type CheckoutRequest struct {
	UserID        string `json:"user_id" validate:"required,uuid"`
	BagID         string `json:"bag_id" validate:"required,uuid"`
	AddressID     string `json:"address_id" validate:"required,uuid"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=PIX CREDIT_CARD DEBIT_CARD BOLETO"`
	Notes         string `json:"notes"`
}

// UpdateOrderStatusRequest represents the request body for an order status change.
type UpdateOrderStatusRequest struct {
	Status        string `json:"status" validate:"omitempty,oneof=PENDING PAID PREPARING SHIPPED DELIVERED CANCELLED"`
	PaymentStatus string `json:"payment_status" validate:"omitempty,oneof=PENDING APPROVED REFUSED REFUNDED"`
	TrackingCode  string `json:"tracking_code"`
}

// PixChargeResponse represents a rendered PIX charge. The QR code image is
// inlined as base64 PNG so a single JSON payload carries both renderings.
type PixChargeResponse struct {
	Payload   string `json:"payload"`
	QRCodePNG string `json:"qr_code_png"`
}

// Checkout handles converting an open bag into an order.
func (h *OrderHandler) Checkout(c echo.Context) error {
	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	userID, err := parseIDString(c, req.UserID, "user_id")
	if err != nil {
		return err
	}

	bagID, err := parseIDString(c, req.BagID, "bag_id")
	if err != nil {
		return err
	}

	addressID, err := parseIDString(c, req.AddressID, "address_id")
	if err != nil {
		return err
	}

	order, err := h.orderUC.Checkout(c.Request().Context(), &usecase.CheckoutInput{
		UserID:        userID,
		BagID:         bagID,
		AddressID:     addressID,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order, "Order created successfully")
}

// GetOrder handles retrieving an order with its items.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	orderID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), orderID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// ListOrders handles retrieving orders, optionally narrowed to one status.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()

	if status := c.QueryParam("status"); status != "" {
		orders, err := h.orderUC.GetOrdersByStatus(ctx, status)
		if err != nil {
			return handleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
	}

	orders, err := h.orderUC.ListOrders(ctx)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// GetUserOrders handles retrieving all orders belonging to a user.
func (h *OrderHandler) GetUserOrders(c echo.Context) error {
	userID, err := parseIDParam(c, "userID")
	if err != nil {
		return err
	}

	orders, err := h.orderUC.GetUserOrders(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// UpdateOrderStatus handles applying a status change to an order.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	orderID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	order, err := h.orderUC.UpdateOrderStatus(c.Request().Context(), orderID, &usecase.OrderStatusUpdateInput{
		Status:        req.Status,
		PaymentStatus: req.PaymentStatus,
		TrackingCode:  req.TrackingCode,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated successfully")
}

// DeleteOrder handles removing an order that has not shipped.
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	orderID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.orderUC.DeleteOrder(c.Request().Context(), orderID); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Order deleted successfully"}, "Order deleted successfully")
}

// GetPixCharge handles rendering an order's outstanding amount as a PIX charge.
// With ?format=png the QR code image is streamed directly.
func (h *OrderHandler) GetPixCharge(c echo.Context) error {
	orderID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	charge, err := h.orderUC.GeneratePixCharge(c.Request().Context(), orderID)
	if err != nil {
		return handleAppError(c, err)
	}

	if c.QueryParam("format") == "png" {
		return c.Blob(http.StatusOK, "image/png", charge.PNG)
	}

	payload := &PixChargeResponse{
		Payload:   charge.Payload,
		QRCodePNG: base64.StdEncoding.EncodeToString(charge.PNG),
	}

	return response.Success(c, http.StatusOK, payload, "PIX charge generated successfully")
}
