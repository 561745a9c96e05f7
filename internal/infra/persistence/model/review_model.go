package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel is the GORM-specific struct for the 'product_reviews' table.
// The composite unique index enforces one review per user per product.
type ReviewModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID           uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_user_product"`
	ProductID        uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_user_product;index"`
	OrderID          *uuid.UUID `gorm:"type:uuid;index"`
	Rating           int        `gorm:"not null"`
	Comment          string     `gorm:"type:text"`
	VerifiedPurchase bool       `gorm:"not null;default:false"`
	Active           bool       `gorm:"not null;default:true"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "product_reviews"
}
