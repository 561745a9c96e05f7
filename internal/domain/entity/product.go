package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a sellable catalog item. StockQuantity is the authoritative
// on-hand count; checkout decrements it and cancellation restores it.
type Product struct {
	ID               uuid.UUID       `json:"id"`
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	Price            decimal.Decimal `json:"price"`            // List price before discount.
	DiscountPercent  decimal.Decimal `json:"discount_percent"` // Percentage off the list price, 0-100.
	StockQuantity    int             `json:"stock_quantity"`
	ImageURLs        []string        `json:"image_urls"`
	Sizes            []string        `json:"sizes"`
	Colors           []string        `json:"colors"`
	Material         string          `json:"material"`
	CareInstructions string          `json:"care_instructions"`
	BrandID          uuid.UUID       `json:"brand_id"`
	CategoryID       uuid.UUID       `json:"category_id"`
	Featured         bool            `json:"featured"`
	Active           bool            `json:"active"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// CurrentPrice returns the effective unit price after discount.
func (p *Product) CurrentPrice() decimal.Decimal {
	if p.DiscountPercent.IsZero() {
		return p.Price
	}

	factor := decimal.NewFromInt(100).Sub(p.DiscountPercent).Div(decimal.NewFromInt(100))

	return p.Price.Mul(factor).Round(2)
}

// HasStock reports whether the requested quantity can be fulfilled.
func (p *Product) HasStock(quantity int) bool {
	return p.StockQuantity >= quantity
}

// PrimaryImage returns the first image URL, or an empty string when the
// product has no images yet.
func (p *Product) PrimaryImage() string {
	if len(p.ImageURLs) == 0 {
		return ""
	}

	return p.ImageURLs[0]
}
