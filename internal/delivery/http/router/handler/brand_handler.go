package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BrandHandlerParams holds dependencies for BrandHandler, injected by Fx.
type BrandHandlerParams struct {
	fx.In

	BrandUC usecase.BrandUsecase
	Logger  *slog.Logger
}

// BrandHandler holds dependencies for brand handlers.
type BrandHandler struct {
	brandUC usecase.BrandUsecase
	logger  *slog.Logger
}

// NewBrandHandler is the constructor for BrandHandler.
func NewBrandHandler(params BrandHandlerParams) *BrandHandler {
	return &BrandHandler{
		brandUC: params.BrandUC,
		logger:  params.Logger,
	}
}

// BrandRequest represents the request body for creating or updating a brand.
type BrandRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url" validate:"omitempty,url"`
	Active      bool   `json:"active"`
}

// CreateBrand handles registering a new brand.
func (h *BrandHandler) CreateBrand(c echo.Context) error {
	var req BrandRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid brand input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	brand, err := h.brandUC.CreateBrand(c.Request().Context(), &usecase.BrandInput{
		Name:        req.Name,
		Description: req.Description,
		LogoURL:     req.LogoURL,
		Active:      req.Active,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, brand, "Brand created successfully")
}

// GetBrand handles retrieving a brand by ID.
func (h *BrandHandler) GetBrand(c echo.Context) error {
	brandID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	brand, err := h.brandUC.GetBrand(c.Request().Context(), brandID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, brand, "Brand retrieved successfully")
}

// ListBrands handles retrieving every brand.
func (h *BrandHandler) ListBrands(c echo.Context) error {
	brands, err := h.brandUC.ListBrands(c.Request().Context())
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, brands, "Brands retrieved successfully")
}

// UpdateBrand handles modifying an existing brand.
func (h *BrandHandler) UpdateBrand(c echo.Context) error {
	brandID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req BrandRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid brand input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	brand, err := h.brandUC.UpdateBrand(c.Request().Context(), brandID, &usecase.BrandInput{
		Name:        req.Name,
		Description: req.Description,
		LogoURL:     req.LogoURL,
		Active:      req.Active,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, brand, "Brand updated successfully")
}

// DeleteBrand handles removing a brand.
func (h *BrandHandler) DeleteBrand(c echo.Context) error {
	brandID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.brandUC.DeleteBrand(c.Request().Context(), brandID); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Brand deleted successfully"}, "Brand deleted successfully")
}
