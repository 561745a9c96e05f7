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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// bagServiceFixtures holds all test dependencies for shopping bag service tests.
type bagServiceFixtures struct {
	service   usecase.ShoppingBagUsecase
	txManager *mockRepo.MockTransactionManager
	bagRepo   *mockRepo.MockShoppingBagRepository
}

func createTestBagService(t *testing.T) bagServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	bagRepo := mockRepo.NewMockShoppingBagRepository(t)

	service := NewShoppingBagService(ShoppingBagServiceParams{
		TxManager: txManager,
		BagRepo:   bagRepo,
		Logger:    newDiscardLogger(),
	})

	return bagServiceFixtures{
		service:   service,
		txManager: txManager,
		bagRepo:   bagRepo,
	}
}

func openBag(userID uuid.UUID) *entity.ShoppingBag {
	bagID := uuid.New()

	bag := &entity.ShoppingBag{
		ID:     bagID,
		UserID: userID,
		Status: entity.BagStatusOpen,
		Items: []entity.ShoppingBagItem{
			{
				ID:        uuid.New(),
				BagID:     bagID,
				ProductID: uuid.New().String(),
				Name:      "Running Shoes",
				Price:     decimal.RequireFromString("99.90"),
				Quantity:  2,
				Size:      "42",
			},
		},
	}
	bag.RecalculateTotalAmount()

	return bag
}

func TestBagService_CreateBag_New(t *testing.T) {
	fx := createTestBagService(t)
	ctx := context.Background()
	userID := uuid.New()

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		bagRepo := mockRepo.NewMockShoppingBagRepository(t)

		factory.EXPECT().NewUserRepository().Return(userRepo)
		factory.EXPECT().NewShoppingBagRepository().Return(bagRepo)

		userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
		bagRepo.EXPECT().FindOpenByUser(ctx, userID).Return(nil, repository.ErrBagNotFound)
		bagRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.ShoppingBag")).Return(nil)
	})

	bag, err := fx.service.CreateBag(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, userID, bag.UserID)
	assert.Equal(t, entity.BagStatusOpen, bag.Status)
}

func TestBagService_CreateBag_ReusesOpenBag(t *testing.T) {
	fx := createTestBagService(t)
	ctx := context.Background()
	userID := uuid.New()
	existing := openBag(userID)

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		bagRepo := mockRepo.NewMockShoppingBagRepository(t)

		factory.EXPECT().NewUserRepository().Return(userRepo)
		factory.EXPECT().NewShoppingBagRepository().Return(bagRepo)

		userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
		bagRepo.EXPECT().FindOpenByUser(ctx, userID).Return(existing, nil)
	})

	bag, err := fx.service.CreateBag(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, existing.ID, bag.ID)
}

func TestBagService_CreateBag_UserNotFound(t *testing.T) {
	fx := createTestBagService(t)
	ctx := context.Background()
	userID := uuid.New()

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		bagRepo := mockRepo.NewMockShoppingBagRepository(t)

		factory.EXPECT().NewUserRepository().Return(userRepo)
		factory.EXPECT().NewShoppingBagRepository().Return(bagRepo)

		userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
	})

	_, err := fx.service.CreateBag(ctx, userID)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestBagService_AddItem_MergesMatchingLine(t *testing.T) {
	fx := createTestBagService(t)
	ctx := context.Background()
	bag := openBag(uuid.New())
	line := bag.Items[0]

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		bagRepo := mockRepo.NewMockShoppingBagRepository(t)
		factory.EXPECT().NewShoppingBagRepository().Return(bagRepo)

		bagRepo.EXPECT().FindByID(ctx, bag.ID).Return(bag, nil)
		bagRepo.EXPECT().Update(ctx, bag).Return(nil)
	})

	updated, err := fx.service.AddItem(ctx, bag.ID, &usecase.BagItemInput{
		ProductID: line.ProductID,
		Name:      line.Name,
		Price:     line.Price,
		Quantity:  3,
		Size:      line.Size,
	})

	require.NoError(t, err)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, 5, updated.Items[0].Quantity)
	assert.Equal(t, "499.50", updated.TotalAmount.StringFixed(2))
}

func TestBagService_AddItem_NewSizeCreatesNewLine(t *testing.T) {
	fx := createTestBagService(t)
	ctx := context.Background()
	bag := openBag(uuid.New())
	line := bag.Items[0]

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		bagRepo := mockRepo.NewMockShoppingBagRepository(t)
		factory.EXPECT().NewShoppingBagRepository().Return(bagRepo)

		bagRepo.EXPECT().FindByID(ctx, bag.ID).Return(bag, nil)
		bagRepo.EXPECT().Update(ctx, bag).Return(nil)
	})

	updated, err := fx.service.AddItem(ctx, bag.ID, &usecase.BagItemInput{
		ProductID: line.ProductID,
		Name:      line.Name,
		Price:     line.Price,
		Quantity:  1,
		Size:      "43",
	})

	require.NoError(t, err)
	assert.Len(t, updated.Items, 2)
}

func TestBagService_AddItem_InvalidQuantity(t *testing.T) {
	fx := createTestBagService(t)

	_, err := fx.service.AddItem(context.Background(), uuid.New(), &usecase.BagItemInput{
		ProductID: uuid.New().String(),
		Quantity:  0,
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
}

func TestBagService_AddItem_BagNotOpen(t *testing.T) {
	fx := createTestBagService(t)
	ctx := context.Background()
	bag := openBag(uuid.New())
	bag.Status = entity.BagStatusCompleted

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		bagRepo := mockRepo.NewMockShoppingBagRepository(t)
		factory.EXPECT().NewShoppingBagRepository().Return(bagRepo)

		bagRepo.EXPECT().FindByID(ctx, bag.ID).Return(bag, nil)
	})

	_, err := fx.service.AddItem(ctx, bag.ID, &usecase.BagItemInput{
		ProductID: uuid.New().String(),
		Quantity:  1,
	})

	assert.ErrorIs(t, err, domainerrors.ErrBagNotOpen)
}

func TestBagService_UpdateItemQuantity_Success(t *testing.T) {
	fx := createTestBagService(t)
	ctx := context.Background()
	bag := openBag(uuid.New())
	itemID := bag.Items[0].ID

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		bagRepo := mockRepo.NewMockShoppingBagRepository(t)
		factory.EXPECT().NewShoppingBagRepository().Return(bagRepo)

		bagRepo.EXPECT().FindByID(ctx, bag.ID).Return(bag, nil)
		bagRepo.EXPECT().Update(ctx, bag).Return(nil)
	})

	updated, err := fx.service.UpdateItemQuantity(ctx, bag.ID, itemID, 7)

	require.NoError(t, err)
	assert.Equal(t, 7, updated.Items[0].Quantity)
	assert.Equal(t, "699.30", updated.TotalAmount.StringFixed(2))
}

func TestBagService_UpdateItemQuantity_ItemMismatch(t *testing.T) {
	fx := createTestBagService(t)
	ctx := context.Background()
	bag := openBag(uuid.New())

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		bagRepo := mockRepo.NewMockShoppingBagRepository(t)
		factory.EXPECT().NewShoppingBagRepository().Return(bagRepo)

		bagRepo.EXPECT().FindByID(ctx, bag.ID).Return(bag, nil)
	})

	_, err := fx.service.UpdateItemQuantity(ctx, bag.ID, uuid.New(), 2)

	assert.ErrorIs(t, err, domainerrors.ErrBagItemMismatch)
}

func TestBagService_RemoveItem_Success(t *testing.T) {
	fx := createTestBagService(t)
	ctx := context.Background()
	bag := openBag(uuid.New())
	itemID := bag.Items[0].ID

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		bagRepo := mockRepo.NewMockShoppingBagRepository(t)
		factory.EXPECT().NewShoppingBagRepository().Return(bagRepo)

		bagRepo.EXPECT().FindByID(ctx, bag.ID).Return(bag, nil)
		bagRepo.EXPECT().DeleteItem(ctx, itemID).Return(nil)
		bagRepo.EXPECT().Update(ctx, bag).Return(nil)
	})

	updated, err := fx.service.RemoveItem(ctx, bag.ID, itemID)

	require.NoError(t, err)
	assert.Empty(t, updated.Items)
	assert.True(t, updated.TotalAmount.IsZero())
}

func TestBagService_ClearBag_EmptiesBagAndZeroesTotal(t *testing.T) {
	fx := createTestBagService(t)
	ctx := context.Background()
	bag := openBag(uuid.New())
	bag.Items = append(bag.Items, entity.ShoppingBagItem{
		ID:        uuid.New(),
		BagID:     bag.ID,
		ProductID: uuid.New().String(),
		Name:      "Cotton T-Shirt",
		Price:     decimal.RequireFromString("49.90"),
		Quantity:  1,
		Size:      "M",
	})
	bag.RecalculateTotalAmount()
	itemIDs := []uuid.UUID{bag.Items[0].ID, bag.Items[1].ID}

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		bagRepo := mockRepo.NewMockShoppingBagRepository(t)
		factory.EXPECT().NewShoppingBagRepository().Return(bagRepo)

		bagRepo.EXPECT().FindByID(ctx, bag.ID).Return(bag, nil)
		for _, itemID := range itemIDs {
			bagRepo.EXPECT().DeleteItem(ctx, itemID).Return(nil)
		}
		bagRepo.EXPECT().Update(ctx, bag).Return(nil)
	})

	cleared, err := fx.service.ClearBag(ctx, bag.ID)

	require.NoError(t, err)
	assert.Empty(t, cleared.Items)
	assert.True(t, cleared.TotalAmount.IsZero())
	assert.Equal(t, entity.BagStatusOpen, cleared.Status)
}

func TestBagService_ClearBag_BagNotOpen(t *testing.T) {
	fx := createTestBagService(t)
	ctx := context.Background()
	bag := openBag(uuid.New())
	bag.Status = entity.BagStatusCompleted

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		bagRepo := mockRepo.NewMockShoppingBagRepository(t)
		factory.EXPECT().NewShoppingBagRepository().Return(bagRepo)

		bagRepo.EXPECT().FindByID(ctx, bag.ID).Return(bag, nil)
	})

	_, err := fx.service.ClearBag(ctx, bag.ID)

	assert.ErrorIs(t, err, domainerrors.ErrBagNotOpen)
}

func TestBagService_UpdateBagStatus_Invalid(t *testing.T) {
	fx := createTestBagService(t)

	_, err := fx.service.UpdateBagStatus(context.Background(), uuid.New(), "FULL")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidBagStatus)
}

func TestBagService_UpdateBagStatus_Success(t *testing.T) {
	fx := createTestBagService(t)
	ctx := context.Background()
	bag := openBag(uuid.New())

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		bagRepo := mockRepo.NewMockShoppingBagRepository(t)
		factory.EXPECT().NewShoppingBagRepository().Return(bagRepo)

		bagRepo.EXPECT().FindByID(ctx, bag.ID).Return(bag, nil)
		bagRepo.EXPECT().Update(ctx, bag).Return(nil)
	})

	updated, err := fx.service.UpdateBagStatus(ctx, bag.ID, "ABANDONED")

	require.NoError(t, err)
	assert.Equal(t, entity.BagStatusAbandoned, updated.Status)
}

func TestBagService_DeleteBag_NotFound(t *testing.T) {
	fx := createTestBagService(t)
	ctx := context.Background()
	bagID := uuid.New()

	fx.bagRepo.EXPECT().Delete(ctx, bagID).Return(repository.ErrBagNotFound)

	err := fx.service.DeleteBag(ctx, bagID)

	assert.ErrorIs(t, err, domainerrors.ErrBagNotFound)
}

func TestBagService_GetActiveBag_NoneOpen(t *testing.T) {
	fx := createTestBagService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.bagRepo.EXPECT().FindOpenByUser(ctx, userID).Return(nil, repository.ErrBagNotFound)

	_, err := fx.service.GetActiveBag(ctx, userID)

	assert.ErrorIs(t, err, domainerrors.ErrBagNotFound)
}

func TestBagService_GetBag_NotFound(t *testing.T) {
	fx := createTestBagService(t)
	ctx := context.Background()
	bagID := uuid.New()

	fx.bagRepo.EXPECT().FindByID(ctx, bagID).Return(nil, repository.ErrBagNotFound)

	_, err := fx.service.GetBag(ctx, bagID)

	assert.ErrorIs(t, err, domainerrors.ErrBagNotFound)
}
