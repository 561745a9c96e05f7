package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// addressService implements the AddressUsecase interface.
type addressService struct {
	txManager   repository.TransactionManager
	addressRepo repository.AddressRepository
	logger      *slog.Logger
}

// AddressServiceParams holds dependencies for AddressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AddressRepo repository.AddressRepository
	Logger      *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		txManager:   params.TxManager,
		addressRepo: params.AddressRepo,
		logger:      params.Logger,
	}
}

func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateAddress registers a new address for a user.
func (srv *addressService) CreateAddress(ctx context.Context, userID uuid.UUID, input *usecase.AddressInput) (*entity.Address, error) {
	srv.log(ctx).Info("Creating address", "userID", userID)

	address := addressFromInput(userID, input)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		addressRepo := repoFactory.NewAddressRepository()

		if _, err := userRepo.FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		// The first address always becomes the default.
		existing, err := addressRepo.FindByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list addresses")
		}
		if len(existing) == 0 {
			address.IsDefault = true
		}

		if address.IsDefault {
			if err := addressRepo.ClearDefaultForUser(ctx, userID); err != nil {
				return errors.Wrap(err, "failed to clear default address")
			}
		}

		if err := addressRepo.Create(ctx, address); err != nil {
			return errors.Wrap(err, "failed to create address")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create address")
	}

	return address, nil
}

// GetAddress retrieves an address by ID, checking it belongs to the user.
func (srv *addressService) GetAddress(ctx context.Context, userID, addressID uuid.UUID) (*entity.Address, error) {
	address, err := srv.findOwned(ctx, srv.addressRepo, userID, addressID)
	if err != nil {
		return nil, err
	}

	return address, nil
}

// ListUserAddresses retrieves all addresses belonging to a user.
func (srv *addressService) ListUserAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	addresses, err := srv.addressRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return addresses, nil
}

// UpdateAddress modifies an existing address, checking ownership.
func (srv *addressService) UpdateAddress(ctx context.Context, userID, addressID uuid.UUID, input *usecase.AddressInput) (*entity.Address, error) {
	srv.log(ctx).Info("Updating address", "userID", userID, "addressID", addressID)

	var address *entity.Address

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		found, err := srv.findOwned(ctx, addressRepo, userID, addressID)
		if err != nil {
			return err
		}

		updated := addressFromInput(userID, input)
		updated.ID = found.ID
		updated.Active = found.Active
		updated.CreatedAt = found.CreatedAt

		if updated.IsDefault && !found.IsDefault {
			if err := addressRepo.ClearDefaultForUser(ctx, userID); err != nil {
				return errors.Wrap(err, "failed to clear default address")
			}
		}

		if err := addressRepo.Update(ctx, updated); err != nil {
			return errors.Wrap(err, "failed to update address")
		}
		address = updated

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update address")
	}

	return address, nil
}

// SetDefaultAddress promotes an address to the user's default.
func (srv *addressService) SetDefaultAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	srv.log(ctx).Info("Setting default address", "userID", userID, "addressID", addressID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		address, err := srv.findOwned(ctx, addressRepo, userID, addressID)
		if err != nil {
			return err
		}

		if err := addressRepo.ClearDefaultForUser(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to clear default address")
		}

		address.IsDefault = true
		if err := addressRepo.Update(ctx, address); err != nil {
			return errors.Wrap(err, "failed to update address")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to set default address")
	}

	return nil
}

// DeleteAddress removes an address, checking ownership.
func (srv *addressService) DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	srv.log(ctx).Info("Deleting address", "userID", userID, "addressID", addressID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		if _, err := srv.findOwned(ctx, addressRepo, userID, addressID); err != nil {
			return err
		}

		if err := addressRepo.Delete(ctx, addressID); err != nil {
			return errors.Wrap(err, "failed to delete address")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete address")
	}

	return nil
}

// findOwned loads an address and verifies it belongs to the user.
func (srv *addressService) findOwned(ctx context.Context, addressRepo repository.AddressRepository, userID, addressID uuid.UUID) (*entity.Address, error) {
	address, err := addressRepo.FindByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAddressNotFound, "address not found")
		}

		return nil, errors.Wrap(err, "failed to find address")
	}
	if address.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrAddressOwnershipViolation, "address does not belong to this user")
	}

	return address, nil
}

func addressFromInput(userID uuid.UUID, input *usecase.AddressInput) *entity.Address {
	addressType := entity.AddressType(input.Type)
	if addressType == "" {
		addressType = entity.AddressTypeHome
	}

	return &entity.Address{
		UserID:        userID,
		RecipientName: input.RecipientName,
		Street:        input.Street,
		Number:        input.Number,
		Complement:    input.Complement,
		Neighborhood:  input.Neighborhood,
		City:          input.City,
		State:         strings.ToUpper(input.State),
		ZipCode:       input.ZipCode,
		Phone:         input.Phone,
		Type:          addressType,
		Reference:     input.Reference,
		IsDefault:     input.IsDefault,
		Active:        true,
	}
}
