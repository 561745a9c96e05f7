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

// shoppingBagRepository implements the domain.ShoppingBagRepository interface using GORM.
type shoppingBagRepository struct {
	db *gorm.DB
}

// NewShoppingBagRepository is the constructor for shoppingBagRepository.
func NewShoppingBagRepository(db *gorm.DB) repository.ShoppingBagRepository {
	return &shoppingBagRepository{db: db}
}

// Create persists a new bag with its items.
func (repo *shoppingBagRepository) Create(ctx context.Context, bag *entity.ShoppingBag) error {
	bagM := fromShoppingBagDomain(bag)

	if err := repo.db.WithContext(ctx).Create(bagM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("bag references missing user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shopping bag")
	}

	// Write back the generated IDs and timestamps, items included.
	bag.ID = bagM.ID
	bag.CreatedAt = bagM.CreatedAt
	bag.UpdatedAt = bagM.UpdatedAt
	for i := range bagM.Items {
		bag.Items[i].ID = bagM.Items[i].ID
		bag.Items[i].BagID = bagM.Items[i].BagID
		bag.Items[i].CreatedAt = bagM.Items[i].CreatedAt
		bag.Items[i].UpdatedAt = bagM.Items[i].UpdatedAt
	}

	return nil
}

// FindByID retrieves a bag with its items by the bag's unique ID.
func (repo *shoppingBagRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ShoppingBag, error) {
	var bagM model.ShoppingBagModel
	if err := repo.db.WithContext(ctx).
		Preload("Items").
		First(&bagM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBagNotFound
		}

		return nil, errors.Wrap(err, "failed to find shopping bag by id")
	}

	return toShoppingBagDomain(&bagM), nil
}

// FindByUser retrieves all bags belonging to a user, newest first.
func (repo *shoppingBagRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ShoppingBag, error) {
	var bagModels []model.ShoppingBagModel
	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bagModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find shopping bags by user")
	}

	bags := make([]*entity.ShoppingBag, 0, len(bagModels))
	for i := range bagModels {
		bags = append(bags, toShoppingBagDomain(&bagModels[i]))
	}

	return bags, nil
}

// FindOpenByUser retrieves the user's most recent OPEN bag.
func (repo *shoppingBagRepository) FindOpenByUser(ctx context.Context, userID uuid.UUID) (*entity.ShoppingBag, error) {
	var bagM model.ShoppingBagModel
	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ? AND status = ?", userID, string(entity.BagStatusOpen)).
		Order("created_at DESC").
		First(&bagM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBagNotFound
		}

		return nil, errors.Wrap(err, "failed to find open shopping bag")
	}

	return toShoppingBagDomain(&bagM), nil
}

// Update saves the bag header and upserts its items.
func (repo *shoppingBagRepository) Update(ctx context.Context, bag *entity.ShoppingBag) error {
	bagM := fromShoppingBagDomain(bag)

	if err := repo.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(bagM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update shopping bag")
	}

	bag.UpdatedAt = bagM.UpdatedAt
	for i := range bagM.Items {
		bag.Items[i].ID = bagM.Items[i].ID
		bag.Items[i].BagID = bagM.Items[i].BagID
		bag.Items[i].UpdatedAt = bagM.Items[i].UpdatedAt
	}

	return nil
}

// DeleteItem removes a single item row from a bag.
func (repo *shoppingBagRepository) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ShoppingBagItemModel{}, "id = ?", itemID)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete shopping bag item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBagItemNotFound
	}

	return nil
}

// Delete removes a bag and its items.
func (repo *shoppingBagRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Select("Items").Delete(&model.ShoppingBagModel{ID: id})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete shopping bag")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBagNotFound
	}

	return nil
}

// toShoppingBagDomain converts a GORM ShoppingBagModel to a domain ShoppingBag entity.
func toShoppingBagDomain(data *model.ShoppingBagModel) *entity.ShoppingBag {
	if data == nil {
		return nil
	}

	items := make([]entity.ShoppingBagItem, 0, len(data.Items))
	for i := range data.Items {
		item := &data.Items[i]
		items = append(items, entity.ShoppingBagItem{
			ID:        item.ID,
			BagID:     item.BagID,
			ProductID: item.ProductID,
			Name:      item.Name,
			ImageURL:  item.ImageURL,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Size:      item.Size,
			CreatedAt: item.CreatedAt,
			UpdatedAt: item.UpdatedAt,
		})
	}

	return &entity.ShoppingBag{
		ID:          data.ID,
		UserID:      data.UserID,
		Status:      entity.BagStatus(data.Status),
		TotalAmount: data.TotalAmount,
		Items:       items,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromShoppingBagDomain converts a domain ShoppingBag entity to a GORM ShoppingBagModel.
func fromShoppingBagDomain(data *entity.ShoppingBag) *model.ShoppingBagModel {
	if data == nil {
		return nil
	}

	items := make([]model.ShoppingBagItemModel, 0, len(data.Items))
	for i := range data.Items {
		item := &data.Items[i]
		items = append(items, model.ShoppingBagItemModel{
			ID:        item.ID,
			BagID:     item.BagID,
			ProductID: item.ProductID,
			Name:      item.Name,
			ImageURL:  item.ImageURL,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Size:      item.Size,
			CreatedAt: item.CreatedAt,
			UpdatedAt: item.UpdatedAt,
		})
	}

	return &model.ShoppingBagModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Status:      string(data.Status),
		TotalAmount: data.TotalAmount,
		Items:       items,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
