package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface. Checkout and every
// stock-touching lifecycle change run inside a single transaction.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	publisher service.EventPublisher
	qrService service.PaymentQRCodeService
	pixConfig *config.PixConfig
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Publisher service.EventPublisher
	QRService service.PaymentQRCodeService
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	var pixConfig *config.PixConfig
	if params.Config != nil {
		pixConfig = params.Config.Pix
	}

	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		publisher: params.Publisher,
		qrService: params.QRService,
		pixConfig: pixConfig,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout atomically converts an open bag into an order. Preconditions are
// checked in a fixed sequence so the caller always observes the same failure
// for the same broken input, then every bag line is resolved against the live
// catalog with a row lock held for the stock check-and-decrement.
func (srv *orderService) Checkout(ctx context.Context, input *usecase.CheckoutInput) (*entity.Order, error) {
	srv.log(ctx).Info("Checking out shopping bag",
		"userID", input.UserID, "bagID", input.BagID, "addressID", input.AddressID)

	paymentMethod, ok := entity.ParsePaymentMethod(input.PaymentMethod)
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrInvalidPaymentMethod, "unknown payment method")
	}

	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		bagRepo := repoFactory.NewShoppingBagRepository()
		addressRepo := repoFactory.NewAddressRepository()
		productRepo := repoFactory.NewProductRepository()
		orderRepo := repoFactory.NewOrderRepository()

		if _, err := userRepo.FindByID(ctx, input.UserID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		bag, err := bagRepo.FindByID(ctx, input.BagID)
		if err != nil {
			if errors.Is(err, repository.ErrBagNotFound) {
				return errors.Wrap(domainerrors.ErrBagNotFound, "shopping bag not found")
			}

			return errors.Wrap(err, "failed to find shopping bag")
		}
		if bag.UserID != input.UserID {
			return errors.Wrap(domainerrors.ErrBagOwnershipViolation, "shopping bag does not belong to this user")
		}
		if len(bag.Items) == 0 {
			return errors.Wrap(domainerrors.ErrBagEmpty, "shopping bag has no items")
		}
		if !bag.IsOpen() {
			return errors.Wrap(domainerrors.ErrBagAlreadyFinalized, "shopping bag has already been finalized")
		}

		address, err := addressRepo.FindByID(ctx, input.AddressID)
		if err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return errors.Wrap(domainerrors.ErrAddressNotFound, "address not found")
			}

			return errors.Wrap(err, "failed to find address")
		}
		if address.UserID != input.UserID {
			return errors.Wrap(domainerrors.ErrAddressOwnershipViolation, "address does not belong to this user")
		}

		order = &entity.Order{
			UserID:               input.UserID,
			Status:               entity.OrderStatusPending,
			PaymentMethod:        paymentMethod,
			PaymentStatus:        entity.PaymentStatusPending,
			Notes:                input.Notes,
			OrderDate:            time.Now(),
			RecipientName:        address.RecipientName,
			DeliveryStreet:       address.Street,
			DeliveryNumber:       address.Number,
			DeliveryComplement:   address.Complement,
			DeliveryNeighborhood: address.Neighborhood,
			DeliveryCity:         address.City,
			DeliveryState:        address.State,
			DeliveryZipCode:      address.ZipCode,
		}

		for i := range bag.Items {
			bagItem := &bag.Items[i]

			productID, err := uuid.Parse(bagItem.ProductID)
			if err != nil {
				return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
			}

			// Row lock held until commit so a concurrent checkout cannot
			// pass the same stock check.
			product, err := productRepo.FindByIDForUpdate(ctx, productID)
			if err != nil {
				if errors.Is(err, repository.ErrProductNotFound) {
					return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
				}

				return errors.Wrap(err, "failed to find product")
			}

			if !product.HasStock(bagItem.Quantity) {
				return errors.Wrap(
					domainerrors.ErrInsufficientStock.WithDetails("insufficient stock for product "+product.Name),
					"insufficient stock",
				)
			}

			product.StockQuantity -= bagItem.Quantity
			if err := productRepo.Update(ctx, product); err != nil {
				return errors.Wrap(err, "failed to update product stock")
			}

			order.AddItem(entity.OrderItem{
				ProductID:       product.ID,
				ProductName:     product.Name,
				ImageURL:        product.PrimaryImage(),
				Size:            bagItem.Size,
				Quantity:        bagItem.Quantity,
				Price:           product.Price,
				DiscountPercent: product.DiscountPercent,
			})
		}

		order.RecalculateTotalAmount()

		bag.Status = entity.BagStatusCompleted
		if err := bagRepo.Update(ctx, bag); err != nil {
			return errors.Wrap(err, "failed to finalize shopping bag")
		}

		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to checkout")
	}

	srv.publishEvent(ctx, service.OrderEventPlaced, order)

	return order, nil
}

// GetOrder retrieves an order with its items.
func (srv *orderService) GetOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// ListOrders retrieves every order, newest first.
func (srv *orderService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetUserOrders retrieves all orders belonging to a user, newest first.
func (srv *orderService) GetUserOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrdersByStatus retrieves all orders in the given fulfillment status.
func (srv *orderService) GetOrdersByStatus(ctx context.Context, status string) ([]*entity.Order, error) {
	parsed, ok := entity.ParseOrderStatus(status)
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrInvalidOrderStatus, "unknown order status")
	}

	orders, err := srv.orderRepo.FindByStatus(ctx, parsed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// UpdateOrderStatus applies a status change, maintaining lifecycle dates and
// returning stock when the order is cancelled. There is no transition table:
// the caller is trusted to request sensible moves.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, input *usecase.OrderStatusUpdateInput) (*entity.Order, error) {
	srv.log(ctx).Info("Updating order status", "orderID", orderID,
		"status", input.Status, "paymentStatus", input.PaymentStatus)

	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()
		productRepo := repoFactory.NewProductRepository()

		found, err := orderRepo.FindByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
			}

			return errors.Wrap(err, "failed to find order")
		}

		now := time.Now()

		if input.Status != "" {
			newStatus, ok := entity.ParseOrderStatus(input.Status)
			if !ok {
				return errors.Wrap(domainerrors.ErrInvalidOrderStatus, "unknown order status")
			}

			alreadyCancelled := found.Status == entity.OrderStatusCancelled
			found.Status = newStatus

			switch newStatus {
			case entity.OrderStatusShipped:
				found.ShippingDate = &now
			case entity.OrderStatusDelivered:
				found.DeliveryDate = &now
			case entity.OrderStatusCancelled:
				found.CancelDate = &now
				if !alreadyCancelled {
					if err := returnStock(ctx, productRepo, found); err != nil {
						return err
					}
				}
			}
		}

		if input.PaymentStatus != "" {
			newPayment, ok := entity.ParsePaymentStatus(input.PaymentStatus)
			if !ok {
				return errors.Wrap(domainerrors.ErrInvalidPaymentStatus, "unknown payment status")
			}

			found.PaymentStatus = newPayment
			if newPayment == entity.PaymentStatusPaid {
				found.PaymentDate = &now
			}
		}

		if input.TrackingCode != "" {
			found.TrackingCode = input.TrackingCode
		}

		if err := orderRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update order")
		}
		order = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update order status")
	}

	srv.publishEvent(ctx, service.OrderEventStatusChanged, order)

	return order, nil
}

// DeleteOrder removes an order that has not shipped, returning its stock.
func (srv *orderService) DeleteOrder(ctx context.Context, orderID uuid.UUID) error {
	srv.log(ctx).Info("Deleting order", "orderID", orderID)

	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()
		productRepo := repoFactory.NewProductRepository()

		found, err := orderRepo.FindByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
			}

			return errors.Wrap(err, "failed to find order")
		}

		if !found.IsDeletable() {
			return errors.Wrap(domainerrors.ErrOrderNotDeletable, "shipped or delivered orders cannot be deleted")
		}

		// A cancelled order already gave its stock back.
		if found.Status != entity.OrderStatusCancelled {
			if err := returnStock(ctx, productRepo, found); err != nil {
				return err
			}
		}

		if err := orderRepo.Delete(ctx, orderID); err != nil {
			return errors.Wrap(err, "failed to delete order")
		}
		order = found

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete order")
	}

	srv.publishEvent(ctx, service.OrderEventDeleted, order)

	return nil
}

// GeneratePixCharge renders the order's outstanding amount as a PIX charge.
func (srv *orderService) GeneratePixCharge(ctx context.Context, orderID uuid.UUID) (*usecase.PixChargeOutput, error) {
	order, err := srv.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.PaymentMethod != entity.PaymentMethodPix {
		return nil, errors.Wrap(domainerrors.ErrPaymentMethodNotPix, "order was not placed with PIX payment")
	}
	if srv.pixConfig == nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, "pix receiving account is not configured")
	}

	charge := service.PixCharge{
		Key:          srv.pixConfig.Key,
		MerchantName: srv.pixConfig.MerchantName,
		MerchantCity: srv.pixConfig.MerchantCity,
		TxID:         strings.ReplaceAll(order.ID.String(), "-", ""),
		Amount:       order.TotalAmount,
	}

	payload, err := srv.qrService.BuildPixPayload(charge)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build pix payload")
	}

	png, err := srv.qrService.GeneratePixQR(charge)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render pix qr code")
	}

	return &usecase.PixChargeOutput{Payload: payload, PNG: png}, nil
}

// returnStock gives back the quantities an order had reserved. Rows are
// locked the same way checkout locks them.
func returnStock(ctx context.Context, productRepo repository.ProductRepository, order *entity.Order) error {
	for i := range order.Items {
		item := &order.Items[i]

		product, err := productRepo.FindByIDForUpdate(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				// The product left the catalog after the order was placed.
				// There is no stock row to restore.
				continue
			}

			return errors.Wrap(err, "failed to find product")
		}

		product.StockQuantity += item.Quantity
		if err := productRepo.Update(ctx, product); err != nil {
			return errors.Wrap(err, "failed to restore product stock")
		}
	}

	return nil
}

// publishEvent emits an order lifecycle event after the surrounding
// transaction has committed. Publishing is best effort.
func (srv *orderService) publishEvent(ctx context.Context, eventType string, order *entity.Order) {
	if srv.publisher == nil || order == nil {
		return
	}

	event := &service.OrderEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		EventType:     eventType,
		OrderID:       order.ID.String(),
		UserID:        order.UserID.String(),
		Status:        string(order.Status),
		PaymentStatus: string(order.PaymentStatus),
		TotalAmount:   order.TotalAmount.String(),
		ItemCount:     len(order.Items),
	}

	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Error("failed to publish order event",
			"eventType", eventType, "orderID", event.OrderID, "error", err)
	}
}
