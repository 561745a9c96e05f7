package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
	Logger    *slog.Logger
}

// AddressHandler holds dependencies for delivery address handlers.
type AddressHandler struct {
	addressUC usecase.AddressUsecase
	logger    *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler.
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		addressUC: params.AddressUC,
		logger:    params.Logger,
	}
}

// AddressRequest represents the request body for creating or updating an address.
type AddressRequest struct {
	RecipientName string `json:"recipient_name" validate:"required"`
	Street        string `json:"street" validate:"required"`
	Number        string `json:"number" validate:"required"`
	Complement    string `json:"complement"`
	Neighborhood  string `json:"neighborhood" validate:"required"`
	City          string `json:"city" validate:"required"`
	State         string `json:"state" validate:"required,len=2"`
	ZipCode       string `json:"zip_code" validate:"required"`
	Phone         string `json:"phone"`
	Type          string `json:"type" validate:"omitempty,oneof=HOME WORK OTHER"`
	Reference     string `json:"reference"`
	IsDefault     bool   `json:"is_default"`
}

func (r *AddressRequest) toInput() *usecase.AddressInput {
	return &usecase.AddressInput{
		RecipientName: r.RecipientName,
		Street:        r.Street,
		Number:        r.Number,
		Complement:    r.Complement,
		Neighborhood:  r.Neighborhood,
		City:          r.City,
		State:         r.State,
		ZipCode:       r.ZipCode,
		Phone:         r.Phone,
		Type:          r.Type,
		Reference:     r.Reference,
		IsDefault:     r.IsDefault,
	}
}

// CreateAddress handles registering a delivery address for a user.
func (h *AddressHandler) CreateAddress(c echo.Context) error {
	userID, err := parseIDParam(c, "userID")
	if err != nil {
		return err
	}

	var req AddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	address, err := h.addressUC.CreateAddress(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, address, "Address created successfully")
}

// GetAddress handles retrieving one of a user's addresses.
func (h *AddressHandler) GetAddress(c echo.Context) error {
	userID, err := parseIDParam(c, "userID")
	if err != nil {
		return err
	}

	addressID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	address, err := h.addressUC.GetAddress(c.Request().Context(), userID, addressID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, address, "Address retrieved successfully")
}

// ListUserAddresses handles retrieving all of a user's addresses.
func (h *AddressHandler) ListUserAddresses(c echo.Context) error {
	userID, err := parseIDParam(c, "userID")
	if err != nil {
		return err
	}

	addresses, err := h.addressUC.ListUserAddresses(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, addresses, "Addresses retrieved successfully")
}

// UpdateAddress handles modifying one of a user's addresses.
func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	userID, err := parseIDParam(c, "userID")
	if err != nil {
		return err
	}

	addressID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req AddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	address, err := h.addressUC.UpdateAddress(c.Request().Context(), userID, addressID, req.toInput())
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, address, "Address updated successfully")
}

// SetDefaultAddress handles promoting an address to the user's default.
func (h *AddressHandler) SetDefaultAddress(c echo.Context) error {
	userID, err := parseIDParam(c, "userID")
	if err != nil {
		return err
	}

	addressID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.addressUC.SetDefaultAddress(c.Request().Context(), userID, addressID); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Default address updated"}, "Default address updated")
}

// DeleteAddress handles removing one of a user's addresses.
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	userID, err := parseIDParam(c, "userID")
	if err != nil {
		return err
	}

	addressID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.addressUC.DeleteAddress(c.Request().Context(), userID, addressID); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Address deleted successfully"}, "Address deleted successfully")
}
