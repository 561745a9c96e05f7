package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBrandService_CreateBrand_Success(t *testing.T) {
	brandRepo := mockRepo.NewMockBrandRepository(t)
	service := NewBrandService(brandRepo)
	ctx := context.Background()

	brandRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Brand")).Return(nil)

	brand, err := service.CreateBrand(ctx, &usecase.BrandInput{Name: "Aurora", Active: true})

	require.NoError(t, err)
	assert.Equal(t, "Aurora", brand.Name)
	assert.True(t, brand.Active)
}

func TestBrandService_CreateBrand_DuplicateName(t *testing.T) {
	brandRepo := mockRepo.NewMockBrandRepository(t)
	service := NewBrandService(brandRepo)
	ctx := context.Background()

	brandRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Brand")).Return(repository.ErrDuplicateBrand)

	_, err := service.CreateBrand(ctx, &usecase.BrandInput{Name: "Aurora"})

	assert.ErrorIs(t, err, domainerrors.ErrBrandAlreadyExists)
}

func TestBrandService_UpdateBrand_Success(t *testing.T) {
	brandRepo := mockRepo.NewMockBrandRepository(t)
	service := NewBrandService(brandRepo)
	ctx := context.Background()
	brandID := uuid.New()
	existing := &entity.Brand{ID: brandID, Name: "Aurora"}

	brandRepo.EXPECT().FindByID(ctx, brandID).Return(existing, nil)
	brandRepo.EXPECT().Update(ctx, existing).Return(nil)

	brand, err := service.UpdateBrand(ctx, brandID, &usecase.BrandInput{Name: "Aurora Sportswear", Active: true})

	require.NoError(t, err)
	assert.Equal(t, "Aurora Sportswear", brand.Name)
}

func TestBrandService_DeleteBrand_NotFound(t *testing.T) {
	brandRepo := mockRepo.NewMockBrandRepository(t)
	service := NewBrandService(brandRepo)
	ctx := context.Background()
	brandID := uuid.New()

	brandRepo.EXPECT().Delete(ctx, brandID).Return(repository.ErrBrandNotFound)

	err := service.DeleteBrand(ctx, brandID)

	assert.ErrorIs(t, err, domainerrors.ErrBrandNotFound)
}

func TestCategoryService_CreateCategory_Duplicate(t *testing.T) {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	service := NewCategoryService(categoryRepo)
	ctx := context.Background()

	categoryRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Category")).Return(repository.ErrDuplicateCategory)

	_, err := service.CreateCategory(ctx, &usecase.CategoryInput{Name: "Sneakers"})

	assert.ErrorIs(t, err, domainerrors.ErrCategoryAlreadyExists)
}

func TestCategoryService_GetCategory_NotFound(t *testing.T) {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	service := NewCategoryService(categoryRepo)
	ctx := context.Background()
	categoryID := uuid.New()

	categoryRepo.EXPECT().FindByID(ctx, categoryID).Return(nil, repository.ErrCategoryNotFound)

	_, err := service.GetCategory(ctx, categoryID)

	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCategoryService_ListCategories(t *testing.T) {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	service := NewCategoryService(categoryRepo)
	ctx := context.Background()

	categoryRepo.EXPECT().FindAll(ctx).Return([]*entity.Category{
		{ID: uuid.New(), Name: "Sneakers"},
		{ID: uuid.New(), Name: "Apparel"},
	}, nil)

	categories, err := service.ListCategories(ctx)

	require.NoError(t, err)
	assert.Len(t, categories, 2)
}
