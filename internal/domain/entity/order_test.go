package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseOrderStatus(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"PENDING", "CONFIRMED", "PROCESSING", "SHIPPED", "DELIVERED", "CANCELLED", "RETURNED"} {
		status, ok := ParseOrderStatus(raw)
		assert.True(t, ok)
		assert.Equal(t, OrderStatus(raw), status)
	}

	_, ok := ParseOrderStatus("shipped")
	assert.False(t, ok)
}

func TestParsePaymentMethod(t *testing.T) {
	t.Parallel()

	method, ok := ParsePaymentMethod("PIX")
	assert.True(t, ok)
	assert.Equal(t, PaymentMethodPix, method)

	_, ok = ParsePaymentMethod("CASH")
	assert.False(t, ok)
}

func TestParsePaymentStatus(t *testing.T) {
	t.Parallel()

	status, ok := ParsePaymentStatus("PAID")
	assert.True(t, ok)
	assert.Equal(t, PaymentStatusPaid, status)

	_, ok = ParsePaymentStatus("DECLINED")
	assert.False(t, ok)
}

func TestOrderItem_Subtotal(t *testing.T) {
	t.Parallel()

	item := &OrderItem{
		Price:           decimal.RequireFromString("100.00"),
		DiscountPercent: decimal.RequireFromString("10"),
		Quantity:        3,
	}
	assert.Equal(t, "270", item.Subtotal().String())

	noDiscount := &OrderItem{
		Price:    decimal.RequireFromString("59.90"),
		Quantity: 2,
	}
	assert.Equal(t, "119.8", noDiscount.Subtotal().String())
}

func TestOrder_RecalculateTotalAmount(t *testing.T) {
	t.Parallel()

	order := &Order{}
	order.AddItem(OrderItem{Price: decimal.RequireFromString("100.00"), Quantity: 1})
	order.AddItem(OrderItem{
		Price:           decimal.RequireFromString("50.00"),
		DiscountPercent: decimal.RequireFromString("20"),
		Quantity:        2,
	})

	order.RecalculateTotalAmount()
	assert.Equal(t, "180", order.TotalAmount.String())
}

func TestOrder_AddItem(t *testing.T) {
	t.Parallel()

	order := &Order{ID: uuid.New()}
	order.AddItem(OrderItem{ProductID: uuid.New(), Quantity: 1})

	assert.Len(t, order.Items, 1)
	assert.Equal(t, order.ID, order.Items[0].OrderID)
}

func TestOrder_FormattedAddress(t *testing.T) {
	t.Parallel()

	order := &Order{
		DeliveryStreet:       "Rua das Flores",
		DeliveryNumber:       "123",
		DeliveryComplement:   "Apto 45",
		DeliveryNeighborhood: "Jardim Paulista",
		DeliveryCity:         "Sao Paulo",
		DeliveryState:        "SP",
		DeliveryZipCode:      "01000-000",
	}
	assert.Equal(t,
		"Rua das Flores, 123 - Apto 45, Jardim Paulista, Sao Paulo - SP, CEP: 01000-000",
		order.FormattedAddress())

	order.DeliveryComplement = ""
	assert.Equal(t,
		"Rua das Flores, 123, Jardim Paulista, Sao Paulo - SP, CEP: 01000-000",
		order.FormattedAddress())
}

func TestOrder_IsDeletable(t *testing.T) {
	t.Parallel()

	deletable := []OrderStatus{
		OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusCancelled, OrderStatusReturned,
	}
	for _, status := range deletable {
		order := &Order{Status: status}
		assert.True(t, order.IsDeletable(), "status %s", status)
	}

	for _, status := range []OrderStatus{OrderStatusShipped, OrderStatusDelivered} {
		order := &Order{Status: status}
		assert.False(t, order.IsDeletable(), "status %s", status)
	}
}
