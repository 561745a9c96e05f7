package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfillment state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusConfirmed  OrderStatus = "CONFIRMED"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
	OrderStatusReturned   OrderStatus = "RETURNED"
)

// ParseOrderStatus converts a raw string into an OrderStatus.
func ParseOrderStatus(raw string) (OrderStatus, bool) {
	switch OrderStatus(raw) {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled, OrderStatusReturned:
		return OrderStatus(raw), true
	}

	return "", false
}

// PaymentMethod is how the customer pays for an order.
type PaymentMethod string

const (
	PaymentMethodCreditCard   PaymentMethod = "CREDIT_CARD"
	PaymentMethodDebitCard    PaymentMethod = "DEBIT_CARD"
	PaymentMethodPix          PaymentMethod = "PIX"
	PaymentMethodBoleto       PaymentMethod = "BOLETO"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
)

// ParsePaymentMethod converts a raw string into a PaymentMethod.
func ParsePaymentMethod(raw string) (PaymentMethod, bool) {
	switch PaymentMethod(raw) {
	case PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodPix,
		PaymentMethodBoleto, PaymentMethodBankTransfer:
		return PaymentMethod(raw), true
	}

	return "", false
}

// PaymentStatus tracks the payment side of an order independently from
// its fulfillment status.
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "PENDING"
	PaymentStatusProcessing PaymentStatus = "PROCESSING"
	PaymentStatusPaid       PaymentStatus = "PAID"
	PaymentStatusRefused    PaymentStatus = "REFUSED"
	PaymentStatusRefunded   PaymentStatus = "REFUNDED"
	PaymentStatusCancelled  PaymentStatus = "CANCELLED"
)

// ParsePaymentStatus converts a raw string into a PaymentStatus.
func ParsePaymentStatus(raw string) (PaymentStatus, bool) {
	switch PaymentStatus(raw) {
	case PaymentStatusPending, PaymentStatusProcessing, PaymentStatusPaid,
		PaymentStatusRefused, PaymentStatusRefunded, PaymentStatusCancelled:
		return PaymentStatus(raw), true
	}

	return "", false
}

// OrderItem is one purchased product line. Name, Price and
// DiscountPercent are copied from the product at checkout so later
// catalog edits never change a placed order.
type OrderItem struct {
	ID              uuid.UUID       `json:"id"`
	OrderID         uuid.UUID       `json:"order_id"`
	ProductID       uuid.UUID       `json:"product_id"`
	ProductName     string          `json:"product_name"`
	ImageURL        string          `json:"image_url"`
	Size            string          `json:"size"`
	Color           string          `json:"color"`
	Quantity        int             `json:"quantity"`
	Price           decimal.Decimal `json:"price"` // Unit list price at checkout.
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Subtotal returns the discounted line total.
func (i *OrderItem) Subtotal() decimal.Decimal {
	unit := i.Price
	if !i.DiscountPercent.IsZero() {
		factor := decimal.NewFromInt(100).Sub(i.DiscountPercent).Div(decimal.NewFromInt(100))
		unit = unit.Mul(factor)
	}

	return unit.Mul(decimal.NewFromInt(int64(i.Quantity))).Round(2)
}

// Order is a placed purchase. Delivery fields are a snapshot of the
// chosen address; the address row itself may change or be removed later.
type Order struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"user_id"`
	Status        OrderStatus     `json:"status"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Items         []OrderItem     `json:"items"`

	// Delivery address snapshot.
	RecipientName        string `json:"recipient_name"`
	DeliveryStreet       string `json:"delivery_street"`
	DeliveryNumber       string `json:"delivery_number"`
	DeliveryComplement   string `json:"delivery_complement"`
	DeliveryNeighborhood string `json:"delivery_neighborhood"`
	DeliveryCity         string `json:"delivery_city"`
	DeliveryState        string `json:"delivery_state"`
	DeliveryZipCode      string `json:"delivery_zip_code"`

	TrackingCode string `json:"tracking_code"`
	Notes        string `json:"notes"`

	// OrderDate is when the purchase was placed, fixed at checkout.
	OrderDate time.Time `json:"order_date"`

	PaymentDate  *time.Time `json:"payment_date"`
	ShippingDate *time.Time `json:"shipping_date"`
	DeliveryDate *time.Time `json:"delivery_date"`
	CancelDate   *time.Time `json:"cancel_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FormattedAddress renders the delivery snapshot as a single
// human-readable line.
func (o *Order) FormattedAddress() string {
	var sb strings.Builder
	sb.WriteString(o.DeliveryStreet)
	sb.WriteString(", ")
	sb.WriteString(o.DeliveryNumber)
	if o.DeliveryComplement != "" {
		sb.WriteString(" - ")
		sb.WriteString(o.DeliveryComplement)
	}
	sb.WriteString(", ")
	sb.WriteString(o.DeliveryNeighborhood)
	sb.WriteString(", ")
	sb.WriteString(o.DeliveryCity)
	sb.WriteString(" - ")
	sb.WriteString(o.DeliveryState)
	sb.WriteString(", CEP: ")
	sb.WriteString(o.DeliveryZipCode)

	return sb.String()
}

// AddItem appends a line and keeps the back-reference consistent.
func (o *Order) AddItem(item OrderItem) {
	item.OrderID = o.ID
	o.Items = append(o.Items, item)
}

// RecalculateTotalAmount recomputes TotalAmount from the current items.
func (o *Order) RecalculateTotalAmount() {
	total := decimal.Zero
	for i := range o.Items {
		total = total.Add(o.Items[i].Subtotal())
	}
	o.TotalAmount = total
}

// IsDeletable reports whether the order may still be removed. Shipped and
// delivered orders are part of the fulfillment record and must stay.
func (o *Order) IsDeletable() bool {
	return o.Status != OrderStatusShipped && o.Status != OrderStatusDelivered
}
