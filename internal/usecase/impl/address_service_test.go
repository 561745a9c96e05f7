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

// addressServiceFixtures holds all test dependencies for address service tests.
type addressServiceFixtures struct {
	service     usecase.AddressUsecase
	txManager   *mockRepo.MockTransactionManager
	addressRepo *mockRepo.MockAddressRepository
}

func createTestAddressService(t *testing.T) addressServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	addressRepo := mockRepo.NewMockAddressRepository(t)

	service := NewAddressService(AddressServiceParams{
		TxManager:   txManager,
		AddressRepo: addressRepo,
		Logger:      newDiscardLogger(),
	})

	return addressServiceFixtures{
		service:     service,
		txManager:   txManager,
		addressRepo: addressRepo,
	}
}

func sampleAddressInput() *usecase.AddressInput {
	return &usecase.AddressInput{
		RecipientName: "Ana Souza",
		Street:        "Avenida Paulista",
		Number:        "1000",
		Neighborhood:  "Bela Vista",
		City:          "Sao Paulo",
		State:         "sp",
		ZipCode:       "01310-100",
		Type:          "HOME",
	}
}

func TestAddressService_CreateAddress_FirstBecomesDefault(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()
	userID := uuid.New()

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		addressRepo := mockRepo.NewMockAddressRepository(t)

		factory.EXPECT().NewUserRepository().Return(userRepo)
		factory.EXPECT().NewAddressRepository().Return(addressRepo)

		userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
		addressRepo.EXPECT().FindByUser(ctx, userID).Return(nil, nil)
		addressRepo.EXPECT().ClearDefaultForUser(ctx, userID).Return(nil)
		addressRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Address")).Return(nil)
	})

	address, err := fx.service.CreateAddress(ctx, userID, sampleAddressInput())

	require.NoError(t, err)
	assert.True(t, address.IsDefault)
	assert.Equal(t, "SP", address.State)
	assert.Equal(t, entity.AddressTypeHome, address.Type)
}

func TestAddressService_CreateAddress_SecondStaysNonDefault(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()
	userID := uuid.New()

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		addressRepo := mockRepo.NewMockAddressRepository(t)

		factory.EXPECT().NewUserRepository().Return(userRepo)
		factory.EXPECT().NewAddressRepository().Return(addressRepo)

		userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
		addressRepo.EXPECT().FindByUser(ctx, userID).
			Return([]*entity.Address{{ID: uuid.New(), UserID: userID, IsDefault: true}}, nil)
		addressRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Address")).Return(nil)
	})

	address, err := fx.service.CreateAddress(ctx, userID, sampleAddressInput())

	require.NoError(t, err)
	assert.False(t, address.IsDefault)
}

func TestAddressService_CreateAddress_UserNotFound(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()
	userID := uuid.New()

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		addressRepo := mockRepo.NewMockAddressRepository(t)

		factory.EXPECT().NewUserRepository().Return(userRepo)
		factory.EXPECT().NewAddressRepository().Return(addressRepo)

		userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
	})

	_, err := fx.service.CreateAddress(ctx, userID, sampleAddressInput())

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAddressService_GetAddress_OwnershipViolation(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()
	addressID := uuid.New()

	fx.addressRepo.EXPECT().FindByID(ctx, addressID).
		Return(&entity.Address{ID: addressID, UserID: uuid.New()}, nil)

	_, err := fx.service.GetAddress(ctx, uuid.New(), addressID)

	assert.ErrorIs(t, err, domainerrors.ErrAddressOwnershipViolation)
}

func TestAddressService_UpdateAddress_PromoteToDefaultClearsOthers(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()
	existing := &entity.Address{ID: addressID, UserID: userID, IsDefault: false, Active: true}

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		addressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().NewAddressRepository().Return(addressRepo)

		addressRepo.EXPECT().FindByID(ctx, addressID).Return(existing, nil)
		addressRepo.EXPECT().ClearDefaultForUser(ctx, userID).Return(nil)
		addressRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Address")).Return(nil)
	})

	input := sampleAddressInput()
	input.IsDefault = true

	address, err := fx.service.UpdateAddress(ctx, userID, addressID, input)

	require.NoError(t, err)
	assert.Equal(t, addressID, address.ID)
	assert.True(t, address.IsDefault)
}

func TestAddressService_SetDefaultAddress_Success(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()
	existing := &entity.Address{ID: addressID, UserID: userID}

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		addressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().NewAddressRepository().Return(addressRepo)

		addressRepo.EXPECT().FindByID(ctx, addressID).Return(existing, nil)
		addressRepo.EXPECT().ClearDefaultForUser(ctx, userID).Return(nil)
		addressRepo.EXPECT().Update(ctx, existing).Return(nil)
	})

	err := fx.service.SetDefaultAddress(ctx, userID, addressID)

	require.NoError(t, err)
	assert.True(t, existing.IsDefault)
}

func TestAddressService_DeleteAddress_NotFound(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		addressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().NewAddressRepository().Return(addressRepo)

		addressRepo.EXPECT().FindByID(ctx, addressID).Return(nil, repository.ErrAddressNotFound)
	})

	err := fx.service.DeleteAddress(ctx, userID, addressID)

	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
}

func TestAddressService_DeleteAddress_Success(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		addressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().NewAddressRepository().Return(addressRepo)

		addressRepo.EXPECT().FindByID(ctx, addressID).
			Return(&entity.Address{ID: addressID, UserID: userID}, nil)
		addressRepo.EXPECT().Delete(ctx, addressID).Return(nil)
	})

	err := fx.service.DeleteAddress(ctx, userID, addressID)

	assert.NoError(t, err)
}
