package impl

import (
	"context"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
	publisher *mockSvc.MockEventPublisher
	qrService *mockSvc.MockPaymentQRCodeService
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	qrService := mockSvc.NewMockPaymentQRCodeService(t)

	service := NewOrderService(OrderServiceParams{
		TxManager: txManager,
		OrderRepo: orderRepo,
		Publisher: publisher,
		QRService: qrService,
		Config: &config.Config{
			Pix: &config.PixConfig{
				Key:          "store@example.com",
				MerchantName: "Example Store",
				MerchantCity: "SAO PAULO",
			},
		},
		Logger: newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:   service,
		txManager: txManager,
		orderRepo: orderRepo,
		publisher: publisher,
		qrService: qrService,
	}
}

// checkoutWorld bundles the entities a successful checkout walks through.
type checkoutWorld struct {
	userID   uuid.UUID
	user     *entity.User
	bag      *entity.ShoppingBag
	address  *entity.Address
	products []*entity.Product
	input    *usecase.CheckoutInput
}

func newCheckoutWorld() *checkoutWorld {
	userID := uuid.New()
	bagID := uuid.New()
	addressID := uuid.New()

	productA := &entity.Product{
		ID:            uuid.New(),
		Name:          "Running Shoes",
		Price:         decimal.NewFromInt(100),
		StockQuantity: 10,
	}
	productB := &entity.Product{
		ID:            uuid.New(),
		Name:          "Cotton T-Shirt",
		Price:         decimal.NewFromInt(50),
		StockQuantity: 5,
	}

	bag := &entity.ShoppingBag{
		ID:     bagID,
		UserID: userID,
		Status: entity.BagStatusOpen,
		Items: []entity.ShoppingBagItem{
			{ID: uuid.New(), BagID: bagID, ProductID: productA.ID.String(), Name: productA.Name, Price: productA.Price, Quantity: 1, Size: "42"},
			{ID: uuid.New(), BagID: bagID, ProductID: productB.ID.String(), Name: productB.Name, Price: productB.Price, Quantity: 2, Size: "M"},
		},
	}
	bag.RecalculateTotalAmount()

	return &checkoutWorld{
		userID:   userID,
		user:     &entity.User{ID: userID, Name: "Test User", Email: "test@example.com"},
		bag:      bag,
		address:  &entity.Address{ID: addressID, UserID: userID, RecipientName: "Test User", Street: "Rua A", Number: "10", Neighborhood: "Centro", City: "Sao Paulo", State: "SP", ZipCode: "01000-000"},
		products: []*entity.Product{productA, productB},
		input: &usecase.CheckoutInput{
			UserID:        userID,
			BagID:         bagID,
			AddressID:     addressID,
			PaymentMethod: "PIX",
			Notes:         "leave at the door",
		},
	}
}

func TestOrderService_Checkout_Success(t *testing.T) {
	fx := createTestOrderService(t)
	world := newCheckoutWorld()
	ctx := context.Background()

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		bagRepo := mockRepo.NewMockShoppingBagRepository(t)
		addressRepo := mockRepo.NewMockAddressRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		orderRepo := mockRepo.NewMockOrderRepository(t)

		factory.EXPECT().NewUserRepository().Return(userRepo)
		factory.EXPECT().NewShoppingBagRepository().Return(bagRepo)
		factory.EXPECT().NewAddressRepository().Return(addressRepo)
		factory.EXPECT().NewProductRepository().Return(productRepo)
		factory.EXPECT().NewOrderRepository().Return(orderRepo)

		userRepo.EXPECT().FindByID(ctx, world.userID).Return(world.user, nil)
		bagRepo.EXPECT().FindByID(ctx, world.bag.ID).Return(world.bag, nil)
		addressRepo.EXPECT().FindByID(ctx, world.address.ID).Return(world.address, nil)
		for _, product := range world.products {
			productRepo.EXPECT().FindByIDForUpdate(ctx, product.ID).Return(product, nil)
		}
		productRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Product")).Return(nil).Times(2)
		bagRepo.EXPECT().Update(ctx, world.bag).Return(nil)
		orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	})
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	order, err := fx.service.Checkout(ctx, world.input)

	require.NoError(t, err)
	assert.Equal(t, "200", order.TotalAmount.String())
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, entity.PaymentMethodPix, order.PaymentMethod)
	assert.Equal(t, entity.PaymentStatusPending, order.PaymentStatus)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, 9, world.products[0].StockQuantity)
	assert.Equal(t, 3, world.products[1].StockQuantity)
	assert.Equal(t, entity.BagStatusCompleted, world.bag.Status)
	assert.False(t, order.OrderDate.IsZero())
	assert.Equal(t, world.address.Street, order.DeliveryStreet)
	assert.Equal(t, world.address.Number, order.DeliveryNumber)
	assert.Equal(t, world.address.Neighborhood, order.DeliveryNeighborhood)
	assert.Equal(t, world.address.ZipCode, order.DeliveryZipCode)
	assert.Equal(t, "SP", order.DeliveryState)
	assert.Equal(t, world.address.FormattedAddress(), order.FormattedAddress())
}

func TestOrderService_Checkout_EmptyBag(t *testing.T) {
	fx := createTestOrderService(t)
	world := newCheckoutWorld()
	world.bag.Items = nil
	ctx := context.Background()

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		bagRepo := mockRepo.NewMockShoppingBagRepository(t)
		addressRepo := mockRepo.NewMockAddressRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		orderRepo := mockRepo.NewMockOrderRepository(t)

		factory.EXPECT().NewUserRepository().Return(userRepo)
		factory.EXPECT().NewShoppingBagRepository().Return(bagRepo)
		factory.EXPECT().NewAddressRepository().Return(addressRepo)
		factory.EXPECT().NewProductRepository().Return(productRepo)
		factory.EXPECT().NewOrderRepository().Return(orderRepo)

		userRepo.EXPECT().FindByID(ctx, world.userID).Return(world.user, nil)
		bagRepo.EXPECT().FindByID(ctx, world.bag.ID).Return(world.bag, nil)
	})

	order, err := fx.service.Checkout(ctx, world.input)

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrBagEmpty)
	assert.Equal(t, entity.BagStatusOpen, world.bag.Status)
}

func TestOrderService_Checkout_InsufficientStock(t *testing.T) {
	fx := createTestOrderService(t)
	world := newCheckoutWorld()
	world.products[1].StockQuantity = 1 // bag wants 2
	ctx := context.Background()

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		bagRepo := mockRepo.NewMockShoppingBagRepository(t)
		addressRepo := mockRepo.NewMockAddressRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		orderRepo := mockRepo.NewMockOrderRepository(t)

		factory.EXPECT().NewUserRepository().Return(userRepo)
		factory.EXPECT().NewShoppingBagRepository().Return(bagRepo)
		factory.EXPECT().NewAddressRepository().Return(addressRepo)
		factory.EXPECT().NewProductRepository().Return(productRepo)
		factory.EXPECT().NewOrderRepository().Return(orderRepo)

		userRepo.EXPECT().FindByID(ctx, world.userID).Return(world.user, nil)
		bagRepo.EXPECT().FindByID(ctx, world.bag.ID).Return(world.bag, nil)
		addressRepo.EXPECT().FindByID(ctx, world.address.ID).Return(world.address, nil)
		productRepo.EXPECT().FindByIDForUpdate(ctx, world.products[0].ID).Return(world.products[0], nil)
		productRepo.EXPECT().Update(ctx, world.products[0]).Return(nil)
		productRepo.EXPECT().FindByIDForUpdate(ctx, world.products[1].ID).Return(world.products[1], nil)
		// No order creation and no bag finalization once the shortage hits.
	})

	order, err := fx.service.Checkout(ctx, world.input)

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
	assert.Equal(t, entity.BagStatusOpen, world.bag.Status)
}

func TestOrderService_Checkout_BagNotOwned(t *testing.T) {
	fx := createTestOrderService(t)
	world := newCheckoutWorld()
	world.bag.UserID = uuid.New()
	ctx := context.Background()

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		bagRepo := mockRepo.NewMockShoppingBagRepository(t)
		addressRepo := mockRepo.NewMockAddressRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		orderRepo := mockRepo.NewMockOrderRepository(t)

		factory.EXPECT().NewUserRepository().Return(userRepo)
		factory.EXPECT().NewShoppingBagRepository().Return(bagRepo)
		factory.EXPECT().NewAddressRepository().Return(addressRepo)
		factory.EXPECT().NewProductRepository().Return(productRepo)
		factory.EXPECT().NewOrderRepository().Return(orderRepo)

		userRepo.EXPECT().FindByID(ctx, world.userID).Return(world.user, nil)
		bagRepo.EXPECT().FindByID(ctx, world.bag.ID).Return(world.bag, nil)
	})

	_, err := fx.service.Checkout(ctx, world.input)

	assert.ErrorIs(t, err, domainerrors.ErrBagOwnershipViolation)
}

func TestOrderService_Checkout_BagAlreadyFinalized(t *testing.T) {
	fx := createTestOrderService(t)
	world := newCheckoutWorld()
	world.bag.Status = entity.BagStatusCompleted
	ctx := context.Background()

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		bagRepo := mockRepo.NewMockShoppingBagRepository(t)
		addressRepo := mockRepo.NewMockAddressRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		orderRepo := mockRepo.NewMockOrderRepository(t)

		factory.EXPECT().NewUserRepository().Return(userRepo)
		factory.EXPECT().NewShoppingBagRepository().Return(bagRepo)
		factory.EXPECT().NewAddressRepository().Return(addressRepo)
		factory.EXPECT().NewProductRepository().Return(productRepo)
		factory.EXPECT().NewOrderRepository().Return(orderRepo)

		userRepo.EXPECT().FindByID(ctx, world.userID).Return(world.user, nil)
		bagRepo.EXPECT().FindByID(ctx, world.bag.ID).Return(world.bag, nil)
	})

	_, err := fx.service.Checkout(ctx, world.input)

	assert.ErrorIs(t, err, domainerrors.ErrBagAlreadyFinalized)
}

func TestOrderService_Checkout_InvalidPaymentMethod(t *testing.T) {
	fx := createTestOrderService(t)
	world := newCheckoutWorld()
	world.input.PaymentMethod = "CASH"
	ctx := context.Background()

	_, err := fx.service.Checkout(ctx, world.input)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidPaymentMethod)
}

func TestOrderService_UpdateOrderStatus_CancelReturnsStock(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	productID := uuid.New()
	product := &entity.Product{ID: productID, Name: "Running Shoes", StockQuantity: 7}
	order := &entity.Order{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Status: entity.OrderStatusPending,
		Items: []entity.OrderItem{
			{ID: uuid.New(), ProductID: productID, Quantity: 3, Price: decimal.NewFromInt(100)},
		},
	}

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		orderRepo := mockRepo.NewMockOrderRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)

		factory.EXPECT().NewOrderRepository().Return(orderRepo)
		factory.EXPECT().NewProductRepository().Return(productRepo)

		orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
		productRepo.EXPECT().FindByIDForUpdate(ctx, productID).Return(product, nil)
		productRepo.EXPECT().Update(ctx, product).Return(nil)
		orderRepo.EXPECT().Update(ctx, order).Return(nil)
	})
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	updated, err := fx.service.UpdateOrderStatus(ctx, order.ID, &usecase.OrderStatusUpdateInput{Status: "CANCELLED"})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, updated.Status)
	assert.NotNil(t, updated.CancelDate)
	assert.Equal(t, 10, product.StockQuantity)
}

func TestOrderService_UpdateOrderStatus_ShippedSetsDateAndTracking(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	order := &entity.Order{ID: uuid.New(), UserID: uuid.New(), Status: entity.OrderStatusProcessing}

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		orderRepo := mockRepo.NewMockOrderRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)

		factory.EXPECT().NewOrderRepository().Return(orderRepo)
		factory.EXPECT().NewProductRepository().Return(productRepo)

		orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
		orderRepo.EXPECT().Update(ctx, order).Return(nil)
	})
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	updated, err := fx.service.UpdateOrderStatus(ctx, order.ID, &usecase.OrderStatusUpdateInput{
		Status:       "SHIPPED",
		TrackingCode: "BR123456789",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, updated.Status)
	assert.NotNil(t, updated.ShippingDate)
	assert.Nil(t, updated.DeliveryDate)
	assert.Equal(t, "BR123456789", updated.TrackingCode)
}

func TestOrderService_UpdateOrderStatus_PaidSetsPaymentDate(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	order := &entity.Order{ID: uuid.New(), UserID: uuid.New(), Status: entity.OrderStatusPending}

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		orderRepo := mockRepo.NewMockOrderRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)

		factory.EXPECT().NewOrderRepository().Return(orderRepo)
		factory.EXPECT().NewProductRepository().Return(productRepo)

		orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
		orderRepo.EXPECT().Update(ctx, order).Return(nil)
	})
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	updated, err := fx.service.UpdateOrderStatus(ctx, order.ID, &usecase.OrderStatusUpdateInput{PaymentStatus: "PAID"})

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPaid, updated.PaymentStatus)
	assert.NotNil(t, updated.PaymentDate)
}

func TestOrderService_UpdateOrderStatus_InvalidStatus(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	orderID := uuid.New()

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		orderRepo := mockRepo.NewMockOrderRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)

		factory.EXPECT().NewOrderRepository().Return(orderRepo)
		factory.EXPECT().NewProductRepository().Return(productRepo)

		orderRepo.EXPECT().FindByID(ctx, orderID).Return(&entity.Order{ID: orderID}, nil)
	})

	_, err := fx.service.UpdateOrderStatus(ctx, orderID, &usecase.OrderStatusUpdateInput{Status: "TELEPORTED"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderStatus)
}

func TestOrderService_DeleteOrder_ShippedRejected(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	order := &entity.Order{ID: uuid.New(), Status: entity.OrderStatusShipped}

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		orderRepo := mockRepo.NewMockOrderRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)

		factory.EXPECT().NewOrderRepository().Return(orderRepo)
		factory.EXPECT().NewProductRepository().Return(productRepo)

		orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	})

	err := fx.service.DeleteOrder(ctx, order.ID)

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotDeletable)
}

func TestOrderService_DeleteOrder_PendingReturnsStock(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	productID := uuid.New()
	product := &entity.Product{ID: productID, StockQuantity: 2}
	order := &entity.Order{
		ID:     uuid.New(),
		Status: entity.OrderStatusPending,
		Items: []entity.OrderItem{
			{ID: uuid.New(), ProductID: productID, Quantity: 4},
		},
	}

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		orderRepo := mockRepo.NewMockOrderRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)

		factory.EXPECT().NewOrderRepository().Return(orderRepo)
		factory.EXPECT().NewProductRepository().Return(productRepo)

		orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
		productRepo.EXPECT().FindByIDForUpdate(ctx, productID).Return(product, nil)
		productRepo.EXPECT().Update(ctx, product).Return(nil)
		orderRepo.EXPECT().Delete(ctx, order.ID).Return(nil)
	})
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	err := fx.service.DeleteOrder(ctx, order.ID)

	require.NoError(t, err)
	assert.Equal(t, 6, product.StockQuantity)
}

func TestOrderService_DeleteOrder_CancelledSkipsStockReturn(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	order := &entity.Order{
		ID:     uuid.New(),
		Status: entity.OrderStatusCancelled,
		Items: []entity.OrderItem{
			{ID: uuid.New(), ProductID: uuid.New(), Quantity: 4},
		},
	}

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		orderRepo := mockRepo.NewMockOrderRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)

		factory.EXPECT().NewOrderRepository().Return(orderRepo)
		factory.EXPECT().NewProductRepository().Return(productRepo)

		orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
		orderRepo.EXPECT().Delete(ctx, order.ID).Return(nil)
	})
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	err := fx.service.DeleteOrder(ctx, order.ID)

	require.NoError(t, err)
}

func TestOrderService_GetOrdersByStatus_InvalidStatus(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.GetOrdersByStatus(context.Background(), "LOST")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderStatus)
}

func TestOrderService_GeneratePixCharge_Success(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	order := &entity.Order{
		ID:            uuid.New(),
		PaymentMethod: entity.PaymentMethodPix,
		TotalAmount:   decimal.RequireFromString("249.90"),
	}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.qrService.EXPECT().
		BuildPixPayload(mock.AnythingOfType("service.PixCharge")).
		Return("00020126...6304ABCD", nil)
	fx.qrService.EXPECT().
		GeneratePixQR(mock.AnythingOfType("service.PixCharge")).
		Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	out, err := fx.service.GeneratePixCharge(ctx, order.ID)

	require.NoError(t, err)
	assert.Equal(t, "00020126...6304ABCD", out.Payload)
	assert.NotEmpty(t, out.PNG)
}

func TestOrderService_GeneratePixCharge_NotPix(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	order := &entity.Order{
		ID:            uuid.New(),
		PaymentMethod: entity.PaymentMethodCreditCard,
		TotalAmount:   decimal.NewFromInt(100),
	}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	_, err := fx.service.GeneratePixCharge(ctx, order.ID)

	assert.ErrorIs(t, err, domainerrors.ErrPaymentMethodNotPix)
}
