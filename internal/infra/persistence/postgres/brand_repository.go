package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// brandRepository implements the domain.BrandRepository interface using GORM.
type brandRepository struct {
	db *gorm.DB
}

// NewBrandRepository is the constructor for brandRepository.
func NewBrandRepository(db *gorm.DB) repository.BrandRepository {
	return &brandRepository{db: db}
}

// Create persists a new brand.
func (repo *brandRepository) Create(ctx context.Context, brand *entity.Brand) error {
	brandM := fromBrandDomain(brand)

	if err := repo.db.WithContext(ctx).Create(brandM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrBrandAlreadyExists.WrapMessage("brand name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create brand")
	}

	brand.ID = brandM.ID
	brand.CreatedAt = brandM.CreatedAt
	brand.UpdatedAt = brandM.UpdatedAt

	return nil
}

// FindByID retrieves a brand by its unique ID.
func (repo *brandRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Brand, error) {
	var brandM model.BrandModel
	if err := repo.db.WithContext(ctx).First(&brandM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBrandNotFound
		}

		return nil, errors.Wrap(err, "failed to find brand by id")
	}

	return toBrandDomain(&brandM), nil
}

// FindAll retrieves every brand.
func (repo *brandRepository) FindAll(ctx context.Context) ([]*entity.Brand, error) {
	var brandModels []model.BrandModel
	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&brandModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list brands")
	}

	brands := make([]*entity.Brand, 0, len(brandModels))
	for i := range brandModels {
		brands = append(brands, toBrandDomain(&brandModels[i]))
	}

	return brands, nil
}

// Update modifies an existing brand record.
func (repo *brandRepository) Update(ctx context.Context, brand *entity.Brand) error {
	brandM := fromBrandDomain(brand)

	if err := repo.db.WithContext(ctx).Save(brandM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrBrandAlreadyExists.WrapMessage("brand name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update brand")
	}

	brand.UpdatedAt = brandM.UpdatedAt

	return nil
}

// Delete removes a brand by its ID.
func (repo *brandRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.BrandModel{}, "id = ?", id)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("brand still has products")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete brand")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBrandNotFound
	}

	return nil
}

// toBrandDomain converts a GORM BrandModel to a domain Brand entity.
func toBrandDomain(data *model.BrandModel) *entity.Brand {
	if data == nil {
		return nil
	}

	return &entity.Brand{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		LogoURL:     data.LogoURL,
		Active:      data.Active,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromBrandDomain converts a domain Brand entity to a GORM BrandModel for persistence.
func fromBrandDomain(data *entity.Brand) *model.BrandModel {
	if data == nil {
		return nil
	}

	return &model.BrandModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		LogoURL:     data.LogoURL,
		Active:      data.Active,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
