package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
// Delivery fields are denormalized copies of the chosen address taken at checkout.
type OrderModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status        string          `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	PaymentMethod string          `gorm:"type:varchar(20);not null"`
	PaymentStatus string          `gorm:"type:varchar(20);not null;default:'PENDING'"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`

	RecipientName        string `gorm:"type:varchar(100);not null"`
	DeliveryStreet       string `gorm:"type:varchar(255);not null"`
	DeliveryNumber       string `gorm:"type:varchar(20);not null"`
	DeliveryComplement   string `gorm:"type:varchar(100)"`
	DeliveryNeighborhood string `gorm:"type:varchar(100);not null"`
	DeliveryCity         string `gorm:"type:varchar(100);not null"`
	DeliveryState        string `gorm:"type:varchar(2);not null"`
	DeliveryZipCode      string `gorm:"type:varchar(10);not null"`

	TrackingCode string `gorm:"type:varchar(50)"`
	Notes        string `gorm:"type:text"`

	OrderDate time.Time `gorm:"not null"`

	PaymentDate  *time.Time
	ShippingDate *time.Time
	DeliveryDate *time.Time
	CancelDate   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM-specific struct for the 'order_items' table.
type OrderItemModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName     string          `gorm:"type:varchar(255);not null"`
	ImageURL        string          `gorm:"type:text"`
	Size            string          `gorm:"type:varchar(10)"`
	Color           string          `gorm:"type:varchar(30)"`
	Quantity        int             `gorm:"not null"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	DiscountPercent decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
