package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler holds dependencies for product catalog handlers.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler.
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// ProductRequest represents the request body for creating or updating a product.
type ProductRequest struct {
	Name             string          `json:"name" validate:"required"`
	Description      string          `json:"description"`
	Price            decimal.Decimal `json:"price" validate:"required"`
	DiscountPercent  decimal.Decimal `json:"discount_percent"`
	StockQuantity    int             `json:"stock_quantity" validate:"gte=0"`
	Sizes            []string        `json:"sizes"`
	Colors           []string        `json:"colors"`
	Material         string          `json:"material"`
	CareInstructions string          `json:"care_instructions"`
	BrandID          string          `json:"brand_id" validate:"required,uuid"`
	CategoryID       string          `json:"category_id" validate:"required,uuid"`
	Featured         bool            `json:"featured"`
	Active           bool            `json:"active"`
}

func (r *ProductRequest) toInput() *usecase.ProductInput {
	brandID, _ := uuid.Parse(r.BrandID)
	categoryID, _ := uuid.Parse(r.CategoryID)

	return &usecase.ProductInput{
		Name:             r.Name,
		Description:      r.Description,
		Price:            r.Price,
		DiscountPercent:  r.DiscountPercent,
		StockQuantity:    r.StockQuantity,
		Sizes:            r.Sizes,
		Colors:           r.Colors,
		Material:         r.Material,
		CareInstructions: r.CareInstructions,
		BrandID:          brandID,
		CategoryID:       categoryID,
		Featured:         r.Featured,
		Active:           r.Active,
	}
}

// CreateProduct handles registering a new product.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), req.toInput())
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// GetProduct handles retrieving a product by ID.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	productID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	product, err := h.productUC.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// ListProducts handles retrieving products matching the query filters.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	filter, err := parseProductFilter(c)
	if err != nil {
		return err
	}

	products, err := h.productUC.ListProducts(c.Request().Context(), filter)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

func parseProductFilter(c echo.Context) (*usecase.ProductListFilter, error) {
	filter := &usecase.ProductListFilter{
		Name: c.QueryParam("name"),
	}

	if raw := c.QueryParam("brand_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, response.BadRequest(c, "INVALID_ID", "Invalid brand_id parameter")
		}
		filter.BrandID = id
	}

	if raw := c.QueryParam("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, response.BadRequest(c, "INVALID_ID", "Invalid category_id parameter")
		}
		filter.CategoryID = id
	}

	if raw := c.QueryParam("min_price"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, response.BadRequest(c, "INVALID_QUERY", "Invalid min_price parameter")
		}
		filter.MinPrice = &price
	}

	if raw := c.QueryParam("max_price"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, response.BadRequest(c, "INVALID_QUERY", "Invalid max_price parameter")
		}
		filter.MaxPrice = &price
	}

	if raw := c.QueryParam("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, response.BadRequest(c, "INVALID_QUERY", "Invalid active parameter")
		}
		filter.OnlyActive = active
	}

	if raw := c.QueryParam("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, response.BadRequest(c, "INVALID_QUERY", "Invalid featured parameter")
		}
		filter.OnlyFeatured = featured
	}

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return nil, response.BadRequest(c, "INVALID_QUERY", "Invalid limit parameter")
		}
		filter.Limit = limit
	}

	if raw := c.QueryParam("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return nil, response.BadRequest(c, "INVALID_QUERY", "Invalid offset parameter")
		}
		filter.Offset = offset
	}

	return filter, nil
}

// UpdateProduct handles modifying an existing product.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	productID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), productID, req.toInput())
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// UploadProductImage handles a multipart image upload for a product.
func (h *ProductHandler) UploadProductImage(c echo.Context) error {
	productID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Missing image file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Unreadable image file")
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	product, err := h.productUC.UploadProductImage(c.Request().Context(), productID, fileHeader.Filename, contentType, file)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product, "Product image uploaded successfully")
}

// DeleteProduct handles removing a product.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	productID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.productUC.DeleteProduct(c.Request().Context(), productID); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Product deleted successfully"}, "Product deleted successfully")
}
