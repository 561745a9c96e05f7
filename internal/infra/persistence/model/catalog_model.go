package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BrandModel is the GORM-specific struct for the 'brands' table.
type BrandModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(100);unique;not null"`
	Description string    `gorm:"type:text"`
	LogoURL     string    `gorm:"type:text"`
	Active      bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (BrandModel) TableName() string {
	return "brands"
}

// CategoryModel is the GORM-specific struct for the 'categories' table.
type CategoryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(100);unique;not null"`
	Description string    `gorm:"type:text"`
	Active      bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name             string          `gorm:"type:varchar(255);not null"`
	Description      string          `gorm:"type:text"`
	Price            decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	DiscountPercent  decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	StockQuantity    int             `gorm:"not null;default:0"`
	ImageURLs        []string        `gorm:"serializer:json;type:jsonb"`
	Sizes            []string        `gorm:"serializer:json;type:jsonb"`
	Colors           []string        `gorm:"serializer:json;type:jsonb"`
	Material         string          `gorm:"type:varchar(255)"`
	CareInstructions string          `gorm:"type:text"`
	BrandID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Featured         bool            `gorm:"not null;default:false"`
	Active           bool            `gorm:"not null;default:true"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Brand    *BrandModel    `gorm:"foreignKey:BrandID"`
	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
