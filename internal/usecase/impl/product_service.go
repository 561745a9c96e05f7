package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo  repository.ProductRepository
	brandRepo    repository.BrandRepository
	categoryRepo repository.CategoryRepository
	imageStore   service.ImageStore
	logger       *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	BrandRepo    repository.BrandRepository
	CategoryRepo repository.CategoryRepository
	ImageStore   service.ImageStore
	Logger       *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo:  params.ProductRepo,
		brandRepo:    params.BrandRepo,
		categoryRepo: params.CategoryRepo,
		imageStore:   params.ImageStore,
		logger:       params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct registers a new product, validating its brand and category.
func (srv *productService) CreateProduct(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	srv.log(ctx).Info("Creating product", "name", input.Name)

	if err := validateProductInput(input); err != nil {
		return nil, err
	}
	if err := srv.validateReferences(ctx, input); err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:             input.Name,
		Description:      input.Description,
		Price:            input.Price,
		DiscountPercent:  input.DiscountPercent,
		StockQuantity:    input.StockQuantity,
		Sizes:            input.Sizes,
		Colors:           input.Colors,
		Material:         input.Material,
		CareInstructions: input.CareInstructions,
		BrandID:          input.BrandID,
		CategoryID:       input.CategoryID,
		Featured:         input.Featured,
		Active:           input.Active,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	return product, nil
}

// GetProduct retrieves a product by ID.
func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// ListProducts retrieves products matching the filter.
func (srv *productService) ListProducts(ctx context.Context, filter *usecase.ProductListFilter) ([]*entity.Product, error) {
	repoFilter := repository.ProductFilter{}
	if filter != nil {
		repoFilter = repository.ProductFilter{
			BrandID:      filter.BrandID,
			CategoryID:   filter.CategoryID,
			NameLike:     filter.Name,
			MinPrice:     filter.MinPrice,
			MaxPrice:     filter.MaxPrice,
			OnlyActive:   filter.OnlyActive,
			OnlyFeatured: filter.OnlyFeatured,
			Limit:        filter.Limit,
			Offset:       filter.Offset,
		}
	}

	products, err := srv.productRepo.Find(ctx, repoFilter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// UpdateProduct modifies an existing product.
func (srv *productService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	srv.log(ctx).Info("Updating product", "productID", id)

	product, err := srv.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validateProductInput(input); err != nil {
		return nil, err
	}
	if err := srv.validateReferences(ctx, input); err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.DiscountPercent = input.DiscountPercent
	product.StockQuantity = input.StockQuantity
	product.Sizes = input.Sizes
	product.Colors = input.Colors
	product.Material = input.Material
	product.CareInstructions = input.CareInstructions
	product.BrandID = input.BrandID
	product.CategoryID = input.CategoryID
	product.Featured = input.Featured
	product.Active = input.Active

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// UploadProductImage stores a product image and appends its URL to the product.
func (srv *productService) UploadProductImage(ctx context.Context, id uuid.UUID, filename, contentType string, body io.Reader) (*entity.Product, error) {
	srv.log(ctx).Info("Uploading product image", "productID", id, "filename", filename)

	product, err := srv.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("products/%s/%s", id, path.Base(filename))
	url, err := srv.imageStore.Upload(ctx, key, contentType, body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload product image")
	}

	product.ImageURLs = append(product.ImageURLs, url)
	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// DeleteProduct removes a product.
func (srv *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting product", "productID", id)

	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}

// validateProductInput enforces catalog invariants on price, stock and discount.
func validateProductInput(input *usecase.ProductInput) error {
	if !input.Price.IsPositive() {
		return errors.Wrap(domainerrors.ErrValidationFailed, "price must be greater than zero")
	}
	if input.StockQuantity < 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "stock quantity cannot be negative")
	}
	if input.DiscountPercent.IsNegative() || input.DiscountPercent.GreaterThan(decimal.NewFromInt(100)) {
		return errors.Wrap(domainerrors.ErrValidationFailed, "discount percent must be between 0 and 100")
	}

	return nil
}

// validateReferences checks that the product's brand and category exist.
func (srv *productService) validateReferences(ctx context.Context, input *usecase.ProductInput) error {
	if _, err := srv.brandRepo.FindByID(ctx, input.BrandID); err != nil {
		if errors.Is(err, repository.ErrBrandNotFound) {
			return errors.Wrap(domainerrors.ErrBrandNotFound, "brand not found")
		}

		return errors.Wrap(err, "failed to find brand")
	}

	if _, err := srv.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return errors.Wrap(domainerrors.ErrCategoryNotFound, "category not found")
		}

		return errors.Wrap(err, "failed to find category")
	}

	return nil
}
