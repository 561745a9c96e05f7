package impl

import (
	"context"
	"strings"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service      usecase.ProductUsecase
	productRepo  *mockRepo.MockProductRepository
	brandRepo    *mockRepo.MockBrandRepository
	categoryRepo *mockRepo.MockCategoryRepository
	imageStore   *mockService.MockImageStore
}

func createTestProductService(t *testing.T) productServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	brandRepo := mockRepo.NewMockBrandRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	imageStore := mockService.NewMockImageStore(t)

	service := NewProductService(ProductServiceParams{
		ProductRepo:  productRepo,
		BrandRepo:    brandRepo,
		CategoryRepo: categoryRepo,
		ImageStore:   imageStore,
		Logger:       newDiscardLogger(),
	})

	return productServiceFixtures{
		service:      service,
		productRepo:  productRepo,
		brandRepo:    brandRepo,
		categoryRepo: categoryRepo,
		imageStore:   imageStore,
	}
}

func sampleProductInput(brandID, categoryID uuid.UUID) *usecase.ProductInput {
	return &usecase.ProductInput{
		Name:          "Running Shoes",
		Description:   "Lightweight trainer",
		Price:         decimal.RequireFromString("299.90"),
		StockQuantity: 10,
		BrandID:       brandID,
		CategoryID:    categoryID,
		Active:        true,
	}
}

func TestProductService_CreateProduct_Success(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	brandID := uuid.New()
	categoryID := uuid.New()

	fx.brandRepo.EXPECT().FindByID(ctx, brandID).Return(&entity.Brand{ID: brandID}, nil)
	fx.categoryRepo.EXPECT().FindByID(ctx, categoryID).Return(&entity.Category{ID: categoryID}, nil)
	fx.productRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	product, err := fx.service.CreateProduct(ctx, sampleProductInput(brandID, categoryID))

	require.NoError(t, err)
	assert.Equal(t, "Running Shoes", product.Name)
	assert.Equal(t, 10, product.StockQuantity)
	assert.Equal(t, "299.90", product.Price.StringFixed(2))
}

func TestProductService_CreateProduct_BrandNotFound(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	brandID := uuid.New()

	fx.brandRepo.EXPECT().FindByID(ctx, brandID).Return(nil, repository.ErrBrandNotFound)

	_, err := fx.service.CreateProduct(ctx, sampleProductInput(brandID, uuid.New()))

	assert.ErrorIs(t, err, domainerrors.ErrBrandNotFound)
}

func TestProductService_CreateProduct_CategoryNotFound(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	brandID := uuid.New()
	categoryID := uuid.New()

	fx.brandRepo.EXPECT().FindByID(ctx, brandID).Return(&entity.Brand{ID: brandID}, nil)
	fx.categoryRepo.EXPECT().FindByID(ctx, categoryID).Return(nil, repository.ErrCategoryNotFound)

	_, err := fx.service.CreateProduct(ctx, sampleProductInput(brandID, categoryID))

	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestProductService_CreateProduct_InvalidInput(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	input := sampleProductInput(uuid.New(), uuid.New())
	input.Price = decimal.Zero

	_, err := fx.service.CreateProduct(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	input = sampleProductInput(uuid.New(), uuid.New())
	input.DiscountPercent = decimal.RequireFromString("120")

	_, err = fx.service.CreateProduct(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProductService_ListProducts_MapsFilter(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	brandID := uuid.New()

	fx.productRepo.EXPECT().
		Find(ctx, repository.ProductFilter{BrandID: brandID, NameLike: "shoe", OnlyActive: true}).
		Return([]*entity.Product{{ID: uuid.New(), Name: "Running Shoes"}}, nil)

	products, err := fx.service.ListProducts(ctx, &usecase.ProductListFilter{
		BrandID:    brandID,
		Name:       "shoe",
		OnlyActive: true,
	})

	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestProductService_UpdateProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.UpdateProduct(ctx, productID, sampleProductInput(uuid.New(), uuid.New()))

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_UploadProductImage_Success(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	productID := uuid.New()
	product := &entity.Product{ID: productID, Name: "Running Shoes"}
	key := "products/" + productID.String() + "/front.jpg"
	url := "https://cdn.example.com/" + key

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(product, nil)
	fx.imageStore.EXPECT().
		Upload(ctx, key, "image/jpeg", mock.Anything).
		Return(url, nil)
	fx.productRepo.EXPECT().Update(ctx, product).Return(nil)

	updated, err := fx.service.UploadProductImage(ctx, productID, "front.jpg", "image/jpeg", strings.NewReader("jpeg-bytes"))

	require.NoError(t, err)
	assert.Equal(t, []string{url}, updated.ImageURLs)
}

func TestProductService_UploadProductImage_StripsPath(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	productID := uuid.New()
	product := &entity.Product{ID: productID}
	key := "products/" + productID.String() + "/front.jpg"

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(product, nil)
	fx.imageStore.EXPECT().
		Upload(ctx, key, "image/jpeg", mock.Anything).
		Return("https://cdn.example.com/"+key, nil)
	fx.productRepo.EXPECT().Update(ctx, product).Return(nil)

	_, err := fx.service.UploadProductImage(ctx, productID, "../../front.jpg", "image/jpeg", strings.NewReader("jpeg-bytes"))

	assert.NoError(t, err)
}

func TestProductService_DeleteProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().Delete(ctx, productID).Return(repository.ErrProductNotFound)

	err := fx.service.DeleteProduct(ctx, productID)

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}
