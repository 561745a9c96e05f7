package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrBrandNotFound is returned when a brand is not found.
	ErrBrandNotFound = errors.New("brand not found")
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrDuplicateBrand is returned when creating a brand whose name is taken.
	ErrDuplicateBrand = errors.New("brand name already exists")
	// ErrDuplicateCategory is returned when creating a category whose name is taken.
	ErrDuplicateCategory = errors.New("category name already exists")
)

// ProductFilter narrows product listings. Zero values mean no filtering.
type ProductFilter struct {
	BrandID      uuid.UUID
	CategoryID   uuid.UUID
	NameLike     string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	OnlyActive   bool
	OnlyFeatured bool
	Limit        int
	Offset       int
}

// ProductRepository defines the interface for product-related database operations.
type ProductRepository interface {
	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDForUpdate retrieves a product and takes a row-level write lock
	// on it for the duration of the surrounding transaction. Checkout uses
	// this so concurrent orders cannot both pass the same stock check.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// Find retrieves products matching the filter.
	Find(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)

	// Update modifies an existing product record.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}

// BrandRepository defines the interface for brand-related database operations.
type BrandRepository interface {
	// Create persists a new brand.
	Create(ctx context.Context, brand *entity.Brand) error

	// FindByID retrieves a brand by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Brand, error)

	// FindAll retrieves every brand.
	FindAll(ctx context.Context) ([]*entity.Brand, error)

	// Update modifies an existing brand record.
	Update(ctx context.Context, brand *entity.Brand) error

	// Delete removes a brand by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryRepository defines the interface for category-related database operations.
type CategoryRepository interface {
	// Create persists a new category.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindAll retrieves every category.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// Update modifies an existing category record.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
