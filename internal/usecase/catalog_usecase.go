package usecase

import (
	"context"
	"io"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BrandInput carries the fields of a brand.
type BrandInput struct {
	Name        string
	Description string
	LogoURL     string
	Active      bool
}

// BrandUsecase defines the interface for brand management use cases
type BrandUsecase interface {
	// CreateBrand registers a new brand
	CreateBrand(ctx context.Context, input *BrandInput) (*entity.Brand, error)

	// GetBrand retrieves a brand by ID
	GetBrand(ctx context.Context, id uuid.UUID) (*entity.Brand, error)

	// ListBrands retrieves every brand
	ListBrands(ctx context.Context) ([]*entity.Brand, error)

	// UpdateBrand modifies an existing brand
	UpdateBrand(ctx context.Context, id uuid.UUID, input *BrandInput) (*entity.Brand, error)

	// DeleteBrand removes a brand
	DeleteBrand(ctx context.Context, id uuid.UUID) error
}

// CategoryInput carries the fields of a category.
type CategoryInput struct {
	Name        string
	Description string
	Active      bool
}

// CategoryUsecase defines the interface for category management use cases
type CategoryUsecase interface {
	// CreateCategory registers a new category
	CreateCategory(ctx context.Context, input *CategoryInput) (*entity.Category, error)

	// GetCategory retrieves a category by ID
	GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// ListCategories retrieves every category
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// UpdateCategory modifies an existing category
	UpdateCategory(ctx context.Context, id uuid.UUID, input *CategoryInput) (*entity.Category, error)

	// DeleteCategory removes a category
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

// ProductInput carries the fields of a catalog product.
type ProductInput struct {
	Name             string
	Description      string
	Price            decimal.Decimal
	DiscountPercent  decimal.Decimal
	StockQuantity    int
	Sizes            []string
	Colors           []string
	Material         string
	CareInstructions string
	BrandID          uuid.UUID
	CategoryID       uuid.UUID
	Featured         bool
	Active           bool
}

// ProductListFilter narrows product listings. Zero values mean no filtering.
type ProductListFilter struct {
	BrandID      uuid.UUID
	CategoryID   uuid.UUID
	Name         string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	OnlyActive   bool
	OnlyFeatured bool
	Limit        int
	Offset       int
}

// ProductUsecase defines the interface for product catalog use cases
type ProductUsecase interface {
	// CreateProduct registers a new product, validating its brand and category
	CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error)

	// GetProduct retrieves a product by ID
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListProducts retrieves products matching the filter
	ListProducts(ctx context.Context, filter *ProductListFilter) ([]*entity.Product, error)

	// UpdateProduct modifies an existing product
	UpdateProduct(ctx context.Context, id uuid.UUID, input *ProductInput) (*entity.Product, error)

	// UploadProductImage stores a product image and records its URL on the product
	UploadProductImage(ctx context.Context, id uuid.UUID, filename, contentType string, body io.Reader) (*entity.Product, error)

	// DeleteProduct removes a product
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
