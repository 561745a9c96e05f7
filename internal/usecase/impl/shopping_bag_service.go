package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// shoppingBagService implements the ShoppingBagUsecase interface.
type shoppingBagService struct {
	txManager repository.TransactionManager
	bagRepo   repository.ShoppingBagRepository
	logger    *slog.Logger
}

// ShoppingBagServiceParams holds dependencies for ShoppingBagService, injected by Fx.
type ShoppingBagServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	BagRepo   repository.ShoppingBagRepository
	Logger    *slog.Logger
}

// NewShoppingBagService is the constructor for shoppingBagService.
func NewShoppingBagService(params ShoppingBagServiceParams) usecase.ShoppingBagUsecase {
	return &shoppingBagService{
		txManager: params.TxManager,
		bagRepo:   params.BagRepo,
		logger:    params.Logger,
	}
}

func (srv *shoppingBagService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateBag opens a new bag for the user, or returns their newest open bag.
func (srv *shoppingBagService) CreateBag(ctx context.Context, userID uuid.UUID) (*entity.ShoppingBag, error) {
	srv.log(ctx).Info("Creating shopping bag", "userID", userID)

	var bag *entity.ShoppingBag

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		bagRepo := repoFactory.NewShoppingBagRepository()

		if _, err := userRepo.FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		// One open bag per user. Reuse the current one instead of stacking.
		open, err := bagRepo.FindOpenByUser(ctx, userID)
		if err == nil {
			bag = open

			return nil
		}
		if !errors.Is(err, repository.ErrBagNotFound) {
			return errors.Wrap(err, "failed to find open bag")
		}

		created := &entity.ShoppingBag{
			UserID: userID,
			Status: entity.BagStatusOpen,
		}
		if err := bagRepo.Create(ctx, created); err != nil {
			return errors.Wrap(err, "failed to create shopping bag")
		}
		bag = created

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create shopping bag")
	}

	return bag, nil
}

// GetBag retrieves a bag with its items.
func (srv *shoppingBagService) GetBag(ctx context.Context, bagID uuid.UUID) (*entity.ShoppingBag, error) {
	bag, err := srv.bagRepo.FindByID(ctx, bagID)
	if err != nil {
		if errors.Is(err, repository.ErrBagNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBagNotFound, "shopping bag not found")
		}

		return nil, errors.Wrap(err, "failed to find shopping bag")
	}

	return bag, nil
}

// GetUserBags retrieves all bags belonging to a user, newest first.
func (srv *shoppingBagService) GetUserBags(ctx context.Context, userID uuid.UUID) ([]*entity.ShoppingBag, error) {
	bags, err := srv.bagRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shopping bags")
	}

	return bags, nil
}

// GetActiveBag retrieves the user's newest OPEN bag.
func (srv *shoppingBagService) GetActiveBag(ctx context.Context, userID uuid.UUID) (*entity.ShoppingBag, error) {
	bag, err := srv.bagRepo.FindOpenByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrBagNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBagNotFound, "no open shopping bag for this user")
		}

		return nil, errors.Wrap(err, "failed to find open bag")
	}

	return bag, nil
}

// AddItem adds a product line to an open bag, merging lines that match on
// product and size.
func (srv *shoppingBagService) AddItem(ctx context.Context, bagID uuid.UUID, input *usecase.BagItemInput) (*entity.ShoppingBag, error) {
	srv.log(ctx).Info("Adding bag item", "bagID", bagID, "productID", input.ProductID)

	if input.Quantity <= 0 {
		return nil, errors.Wrap(domainerrors.ErrInvalidQuantity, "quantity must be greater than zero")
	}

	var bag *entity.ShoppingBag

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bagRepo := repoFactory.NewShoppingBagRepository()

		found, err := srv.findMutable(ctx, bagRepo, bagID)
		if err != nil {
			return err
		}

		if idx := found.FindItem(input.ProductID, input.Size); idx >= 0 {
			found.Items[idx].Quantity += input.Quantity
		} else {
			found.Items = append(found.Items, entity.ShoppingBagItem{
				BagID:     found.ID,
				ProductID: input.ProductID,
				Name:      input.Name,
				ImageURL:  input.ImageURL,
				Price:     input.Price,
				Quantity:  input.Quantity,
				Size:      input.Size,
			})
		}
		found.RecalculateTotalAmount()

		if err := bagRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update shopping bag")
		}
		bag = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add bag item")
	}

	return bag, nil
}

// UpdateItemQuantity changes the quantity of an existing bag line.
func (srv *shoppingBagService) UpdateItemQuantity(ctx context.Context, bagID, itemID uuid.UUID, quantity int) (*entity.ShoppingBag, error) {
	srv.log(ctx).Info("Updating bag item quantity", "bagID", bagID, "itemID", itemID, "quantity", quantity)

	if quantity <= 0 {
		return nil, errors.Wrap(domainerrors.ErrInvalidQuantity, "quantity must be greater than zero")
	}

	var bag *entity.ShoppingBag

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bagRepo := repoFactory.NewShoppingBagRepository()

		found, err := srv.findMutable(ctx, bagRepo, bagID)
		if err != nil {
			return err
		}

		idx := indexOfItem(found, itemID)
		if idx < 0 {
			return errors.Wrap(domainerrors.ErrBagItemMismatch, "item does not belong to this shopping bag")
		}

		found.Items[idx].Quantity = quantity
		found.RecalculateTotalAmount()

		if err := bagRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update shopping bag")
		}
		bag = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update bag item quantity")
	}

	return bag, nil
}

// RemoveItem deletes a line from an open bag.
func (srv *shoppingBagService) RemoveItem(ctx context.Context, bagID, itemID uuid.UUID) (*entity.ShoppingBag, error) {
	srv.log(ctx).Info("Removing bag item", "bagID", bagID, "itemID", itemID)

	var bag *entity.ShoppingBag

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bagRepo := repoFactory.NewShoppingBagRepository()

		found, err := srv.findMutable(ctx, bagRepo, bagID)
		if err != nil {
			return err
		}

		idx := indexOfItem(found, itemID)
		if idx < 0 {
			return errors.Wrap(domainerrors.ErrBagItemMismatch, "item does not belong to this shopping bag")
		}

		if err := bagRepo.DeleteItem(ctx, itemID); err != nil {
			return errors.Wrap(err, "failed to delete bag item")
		}

		found.Items = append(found.Items[:idx], found.Items[idx+1:]...)
		found.RecalculateTotalAmount()

		if err := bagRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update shopping bag")
		}
		bag = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to remove bag item")
	}

	return bag, nil
}

// ClearBag deletes every line from an open bag, leaving it open and empty.
func (srv *shoppingBagService) ClearBag(ctx context.Context, bagID uuid.UUID) (*entity.ShoppingBag, error) {
	srv.log(ctx).Info("Clearing shopping bag", "bagID", bagID)

	var bag *entity.ShoppingBag

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bagRepo := repoFactory.NewShoppingBagRepository()

		found, err := srv.findMutable(ctx, bagRepo, bagID)
		if err != nil {
			return err
		}

		for i := range found.Items {
			if err := bagRepo.DeleteItem(ctx, found.Items[i].ID); err != nil {
				return errors.Wrap(err, "failed to delete bag item")
			}
		}

		found.Items = nil
		found.RecalculateTotalAmount()

		if err := bagRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update shopping bag")
		}
		bag = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to clear shopping bag")
	}

	return bag, nil
}

// UpdateBagStatus transitions the bag to the given status.
func (srv *shoppingBagService) UpdateBagStatus(ctx context.Context, bagID uuid.UUID, status string) (*entity.ShoppingBag, error) {
	srv.log(ctx).Info("Updating bag status", "bagID", bagID, "status", status)

	parsed, ok := entity.ParseBagStatus(status)
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrInvalidBagStatus, "unknown shopping bag status")
	}

	var bag *entity.ShoppingBag

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bagRepo := repoFactory.NewShoppingBagRepository()

		found, err := bagRepo.FindByID(ctx, bagID)
		if err != nil {
			if errors.Is(err, repository.ErrBagNotFound) {
				return errors.Wrap(domainerrors.ErrBagNotFound, "shopping bag not found")
			}

			return errors.Wrap(err, "failed to find shopping bag")
		}

		found.Status = parsed
		if err := bagRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update shopping bag")
		}
		bag = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update bag status")
	}

	return bag, nil
}

// DeleteBag removes a bag and its items.
func (srv *shoppingBagService) DeleteBag(ctx context.Context, bagID uuid.UUID) error {
	srv.log(ctx).Info("Deleting shopping bag", "bagID", bagID)

	if err := srv.bagRepo.Delete(ctx, bagID); err != nil {
		if errors.Is(err, repository.ErrBagNotFound) {
			return errors.Wrap(domainerrors.ErrBagNotFound, "shopping bag not found")
		}

		return errors.Wrap(err, "failed to delete shopping bag")
	}

	return nil
}

// findMutable loads a bag and rejects mutations once it left the OPEN state.
func (srv *shoppingBagService) findMutable(ctx context.Context, bagRepo repository.ShoppingBagRepository, bagID uuid.UUID) (*entity.ShoppingBag, error) {
	bag, err := bagRepo.FindByID(ctx, bagID)
	if err != nil {
		if errors.Is(err, repository.ErrBagNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBagNotFound, "shopping bag not found")
		}

		return nil, errors.Wrap(err, "failed to find shopping bag")
	}
	if !bag.IsOpen() {
		return nil, errors.Wrap(domainerrors.ErrBagNotOpen, "shopping bag is no longer open")
	}

	return bag, nil
}

func indexOfItem(bag *entity.ShoppingBag, itemID uuid.UUID) int {
	for i := range bag.Items {
		if bag.Items[i].ID == itemID {
			return i
		}
	}

	return -1
}
