package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShoppingBagModel is the GORM-specific struct for the 'shopping_bags' table.
type ShoppingBagModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status      string          `gorm:"type:varchar(20);not null;default:'OPEN';index"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Items []ShoppingBagItemModel `gorm:"foreignKey:BagID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ShoppingBagModel) TableName() string {
	return "shopping_bags"
}

// ShoppingBagItemModel is the GORM-specific struct for the 'shopping_bag_items' table.
// ProductID is stored as text, not as a foreign key, so bag lines survive
// catalog removals until checkout resolves them.
type ShoppingBagItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BagID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID string          `gorm:"type:varchar(36);not null"`
	Name      string          `gorm:"type:varchar(255);not null"`
	ImageURL  string          `gorm:"type:text"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Quantity  int             `gorm:"not null"`
	Size      string          `gorm:"type:varchar(10)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShoppingBagItemModel) TableName() string {
	return "shopping_bag_items"
}
