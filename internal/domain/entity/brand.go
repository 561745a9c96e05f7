package entity

import (
	"time"

	"github.com/google/uuid"
)

// Brand is a product manufacturer label in the catalog.
type Brand struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"` // Unique brand name.
	Description string    `json:"description"`
	LogoURL     string    `json:"logo_url"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
