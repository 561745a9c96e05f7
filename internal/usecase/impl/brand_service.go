package impl

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// brandService implements the BrandUsecase interface.
type brandService struct {
	brandRepo repository.BrandRepository
}

// NewBrandService is the constructor for brandService.
func NewBrandService(brandRepo repository.BrandRepository) usecase.BrandUsecase {
	return &brandService{brandRepo: brandRepo}
}

// CreateBrand registers a new brand.
func (srv *brandService) CreateBrand(ctx context.Context, input *usecase.BrandInput) (*entity.Brand, error) {
	brand := &entity.Brand{
		Name:        input.Name,
		Description: input.Description,
		LogoURL:     input.LogoURL,
		Active:      input.Active,
	}

	if err := srv.brandRepo.Create(ctx, brand); err != nil {
		if errors.Is(err, repository.ErrDuplicateBrand) {
			return nil, errors.Wrap(domainerrors.ErrBrandAlreadyExists, "brand name already exists")
		}

		return nil, errors.Wrap(err, "failed to create brand")
	}

	return brand, nil
}

// GetBrand retrieves a brand by ID.
func (srv *brandService) GetBrand(ctx context.Context, id uuid.UUID) (*entity.Brand, error) {
	brand, err := srv.brandRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBrandNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBrandNotFound, "brand not found")
		}

		return nil, errors.Wrap(err, "failed to find brand")
	}

	return brand, nil
}

// ListBrands retrieves every brand.
func (srv *brandService) ListBrands(ctx context.Context) ([]*entity.Brand, error) {
	brands, err := srv.brandRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list brands")
	}

	return brands, nil
}

// UpdateBrand modifies an existing brand.
func (srv *brandService) UpdateBrand(ctx context.Context, id uuid.UUID, input *usecase.BrandInput) (*entity.Brand, error) {
	brand, err := srv.GetBrand(ctx, id)
	if err != nil {
		return nil, err
	}

	brand.Name = input.Name
	brand.Description = input.Description
	brand.LogoURL = input.LogoURL
	brand.Active = input.Active

	if err := srv.brandRepo.Update(ctx, brand); err != nil {
		if errors.Is(err, repository.ErrDuplicateBrand) {
			return nil, errors.Wrap(domainerrors.ErrBrandAlreadyExists, "brand name already exists")
		}

		return nil, errors.Wrap(err, "failed to update brand")
	}

	return brand, nil
}

// DeleteBrand removes a brand.
func (srv *brandService) DeleteBrand(ctx context.Context, id uuid.UUID) error {
	if err := srv.brandRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBrandNotFound) {
			return errors.Wrap(domainerrors.ErrBrandNotFound, "brand not found")
		}

		return errors.Wrap(err, "failed to delete brand")
	}

	return nil
}
