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

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service   usecase.UserUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	service := NewUserService(UserServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Logger:    newDiscardLogger(),
	})

	return userServiceFixtures{
		service:   service,
		txManager: txManager,
		userRepo:  userRepo,
	}
}

func TestUserService_CreateUser_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)

		userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(nil, repository.ErrUserNotFound)
		userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	})

	user, err := fx.service.CreateUser(ctx, &usecase.CreateUserInput{
		Name:  "Ana Souza",
		Email: "ana@example.com",
		Phone: "+5511999990000",
	})

	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", user.Name)
	assert.Equal(t, "ana@example.com", user.Email)
}

func TestUserService_CreateUser_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)

		userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(&entity.User{ID: uuid.New()}, nil)
	})

	_, err := fx.service.CreateUser(ctx, &usecase.CreateUserInput{
		Name:  "Ana Souza",
		Email: "ana@example.com",
	})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_CreateUser_DuplicateRace(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)

		userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(nil, repository.ErrUserNotFound)
		userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(repository.ErrDuplicateEmail)
	})

	_, err := fx.service.CreateUser(ctx, &usecase.CreateUserInput{
		Name:  "Ana Souza",
		Email: "ana@example.com",
	})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetUser(ctx, userID)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_UpdateUser_PartialFields(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.User{
		ID:    userID,
		Name:  "Ana Souza",
		Email: "ana@example.com",
		Phone: "+5511999990000",
	}

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)

		userRepo.EXPECT().FindByID(ctx, userID).Return(existing, nil)
		userRepo.EXPECT().Update(ctx, existing).Return(nil)
	})

	user, err := fx.service.UpdateUser(ctx, userID, &usecase.UpdateUserInput{Name: "Ana Lima"})

	require.NoError(t, err)
	assert.Equal(t, "Ana Lima", user.Name)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, "+5511999990000", user.Phone)
}

func TestUserService_UpdateUser_EmailChangeChecked(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.User{ID: userID, Email: "ana@example.com"}

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)

		userRepo.EXPECT().FindByID(ctx, userID).Return(existing, nil)
		userRepo.EXPECT().FindByEmail(ctx, "taken@example.com").Return(&entity.User{ID: uuid.New()}, nil)
	})

	_, err := fx.service.UpdateUser(ctx, userID, &usecase.UpdateUserInput{Email: "taken@example.com"})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_DeleteUser_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)

		userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
		userRepo.EXPECT().Delete(ctx, userID).Return(nil)
	})

	err := fx.service.DeleteUser(ctx, userID)

	assert.NoError(t, err)
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)

		userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
	})

	err := fx.service.DeleteUser(ctx, userID)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
