package service

import (
	"github.com/shopspring/decimal"
)

// PixCharge carries the fields rendered into a PIX BR Code payload.
type PixCharge struct {
	Key          string // The receiver's PIX key.
	MerchantName string
	MerchantCity string
	TxID         string // Transaction identifier, usually derived from the order ID.
	Amount       decimal.Decimal
}

// PaymentQRCodeService defines the interface for PIX payment QR generation
type PaymentQRCodeService interface {
	// BuildPixPayload renders the EMV "copy and paste" payload for a charge
	BuildPixPayload(charge PixCharge) (string, error)

	// GeneratePixQR renders the charge as a PNG QR code image
	GeneratePixQR(charge PixCharge) ([]byte, error)
}
