// Package entity contains the core business objects of the storefront.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a storefront customer account.
// Credentials and token handling live outside this module; the core only
// needs identity and contact fields.
type User struct {
	ID        uuid.UUID `json:"id"`         // The unique identifier of the user.
	Name      string    `json:"name"`       // Display name.
	Email     string    `json:"email"`      // Unique email address.
	Phone     string    `json:"phone"`      // Contact phone number.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when the account was created.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}
