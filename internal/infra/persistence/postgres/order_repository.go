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

// orderRepository implements the domain.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists a new order with its items.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("order references missing user or product")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i := range orderM.Items {
		order.Items[i].ID = orderM.Items[i].ID
		order.Items[i].OrderID = orderM.Items[i].OrderID
		order.Items[i].CreatedAt = orderM.Items[i].CreatedAt
		order.Items[i].UpdatedAt = orderM.Items[i].UpdatedAt
	}

	return nil
}

// FindByID retrieves an order with its items by the order's unique ID.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := repo.db.WithContext(ctx).
		Preload("Items").
		First(&orderM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// FindAll retrieves every order, newest first.
func (repo *orderRepository) FindAll(ctx context.Context) ([]*entity.Order, error) {
	var orderModels []model.OrderModel
	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for i := range orderModels {
		orders = append(orders, toOrderDomain(&orderModels[i]))
	}

	return orders, nil
}

// FindByUser retrieves all orders belonging to a user, newest first.
func (repo *orderRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []model.OrderModel
	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for i := range orderModels {
		orders = append(orders, toOrderDomain(&orderModels[i]))
	}

	return orders, nil
}

// FindByStatus retrieves all orders in the given fulfillment status, newest first.
func (repo *orderRepository) FindByStatus(ctx context.Context, status entity.OrderStatus) ([]*entity.Order, error) {
	var orderModels []model.OrderModel
	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("status = ?", string(status)).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by status")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for i := range orderModels {
		orders = append(orders, toOrderDomain(&orderModels[i]))
	}

	return orders, nil
}

// Update saves the order header and upserts its items.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(orderM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update order")
	}

	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// Delete removes an order and its items.
func (repo *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Select("Items").Delete(&model.OrderModel{ID: id})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for i := range data.Items {
		item := &data.Items[i]
		items = append(items, entity.OrderItem{
			ID:              item.ID,
			OrderID:         item.OrderID,
			ProductID:       item.ProductID,
			ProductName:     item.ProductName,
			ImageURL:        item.ImageURL,
			Size:            item.Size,
			Color:           item.Color,
			Quantity:        item.Quantity,
			Price:           item.Price,
			DiscountPercent: item.DiscountPercent,
			CreatedAt:       item.CreatedAt,
			UpdatedAt:       item.UpdatedAt,
		})
	}

	return &entity.Order{
		ID:                   data.ID,
		UserID:               data.UserID,
		Status:               entity.OrderStatus(data.Status),
		PaymentMethod:        entity.PaymentMethod(data.PaymentMethod),
		PaymentStatus:        entity.PaymentStatus(data.PaymentStatus),
		TotalAmount:          data.TotalAmount,
		Items:                items,
		RecipientName:        data.RecipientName,
		DeliveryStreet:       data.DeliveryStreet,
		DeliveryNumber:       data.DeliveryNumber,
		DeliveryComplement:   data.DeliveryComplement,
		DeliveryNeighborhood: data.DeliveryNeighborhood,
		DeliveryCity:         data.DeliveryCity,
		DeliveryState:        data.DeliveryState,
		DeliveryZipCode:      data.DeliveryZipCode,
		TrackingCode:         data.TrackingCode,
		Notes:                data.Notes,
		OrderDate:            data.OrderDate,
		PaymentDate:          data.PaymentDate,
		ShippingDate:         data.ShippingDate,
		DeliveryDate:         data.DeliveryDate,
		CancelDate:           data.CancelDate,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel for persistence.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for i := range data.Items {
		item := &data.Items[i]
		items = append(items, model.OrderItemModel{
			ID:              item.ID,
			OrderID:         item.OrderID,
			ProductID:       item.ProductID,
			ProductName:     item.ProductName,
			ImageURL:        item.ImageURL,
			Size:            item.Size,
			Color:           item.Color,
			Quantity:        item.Quantity,
			Price:           item.Price,
			DiscountPercent: item.DiscountPercent,
			CreatedAt:       item.CreatedAt,
			UpdatedAt:       item.UpdatedAt,
		})
	}

	return &model.OrderModel{
		ID:                   data.ID,
		UserID:               data.UserID,
		Status:               string(data.Status),
		PaymentMethod:        string(data.PaymentMethod),
		PaymentStatus:        string(data.PaymentStatus),
		TotalAmount:          data.TotalAmount,
		Items:                items,
		RecipientName:        data.RecipientName,
		DeliveryStreet:       data.DeliveryStreet,
		DeliveryNumber:       data.DeliveryNumber,
		DeliveryComplement:   data.DeliveryComplement,
		DeliveryNeighborhood: data.DeliveryNeighborhood,
		DeliveryCity:         data.DeliveryCity,
		DeliveryState:        data.DeliveryState,
		DeliveryZipCode:      data.DeliveryZipCode,
		TrackingCode:         data.TrackingCode,
		Notes:                data.Notes,
		OrderDate:            data.OrderDate,
		PaymentDate:          data.PaymentDate,
		ShippingDate:         data.ShippingDate,
		DeliveryDate:         data.DeliveryDate,
		CancelDate:           data.CancelDate,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}
