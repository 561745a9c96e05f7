package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
type AddressModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	RecipientName string    `gorm:"type:varchar(100);not null"`
	Street        string    `gorm:"type:varchar(255);not null"`
	Number        string    `gorm:"type:varchar(20);not null"`
	Complement    string    `gorm:"type:varchar(100)"`
	Neighborhood  string    `gorm:"type:varchar(100);not null"`
	City          string    `gorm:"type:varchar(100);not null"`
	State         string    `gorm:"type:varchar(2);not null"`
	ZipCode       string    `gorm:"type:varchar(10);not null"`
	Phone         string    `gorm:"type:varchar(20)"`
	Type          string    `gorm:"type:varchar(20);not null;default:'HOME'"`
	Reference     string    `gorm:"type:text"`
	IsDefault     bool      `gorm:"not null;default:false"`
	Active        bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
