package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// AddressType categorizes a delivery address.
type AddressType string

const (
	AddressTypeHome  AddressType = "HOME"
	AddressTypeWork  AddressType = "WORK"
	AddressTypeOther AddressType = "OTHER"
)

// Address is a user's delivery address. Orders copy its fields as an
// immutable snapshot at checkout time, so later edits never affect
// already-placed orders.
type Address struct {
	ID            uuid.UUID   `json:"id"`             // The unique identifier of the address.
	UserID        uuid.UUID   `json:"user_id"`        // The owning user.
	RecipientName string      `json:"recipient_name"` // Who receives the package.
	Street        string      `json:"street"`
	Number        string      `json:"number"`
	Complement    string      `json:"complement"`
	Neighborhood  string      `json:"neighborhood"`
	City          string      `json:"city"`
	State         string      `json:"state"` // Two-letter state code, stored uppercase.
	ZipCode       string      `json:"zip_code"`
	Phone         string      `json:"phone"`
	Type          AddressType `json:"type"`
	Reference     string      `json:"reference"`  // Free-text landmark hint for the courier.
	IsDefault     bool        `json:"is_default"` // Whether this is the user's default address.
	Active        bool        `json:"active"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// FormattedAddress renders the address as a single human-readable line.
func (a *Address) FormattedAddress() string {
	var sb strings.Builder
	sb.WriteString(a.Street)
	sb.WriteString(", ")
	sb.WriteString(a.Number)
	if a.Complement != "" {
		sb.WriteString(" - ")
		sb.WriteString(a.Complement)
	}
	sb.WriteString(", ")
	sb.WriteString(a.Neighborhood)
	sb.WriteString(", ")
	sb.WriteString(a.City)
	sb.WriteString(" - ")
	sb.WriteString(a.State)
	sb.WriteString(", CEP: ")
	sb.WriteString(a.ZipCode)

	return sb.String()
}
