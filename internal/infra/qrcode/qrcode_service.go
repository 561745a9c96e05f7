// Package qrcode renders PIX charges as EMV "BR Code" payloads and QR images.
package qrcode

import (
	"fmt"
	"strings"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

// EMV field identifiers used by the PIX BR Code layout.
const (
	idPayloadFormat        = "00"
	idMerchantAccountInfo  = "26"
	idMerchantCategoryCode = "52"
	idCurrency             = "53"
	idAmount               = "54"
	idCountryCode          = "58"
	idMerchantName         = "59"
	idMerchantCity         = "60"
	idAdditionalData       = "62"
	idCRC                  = "63"

	gui         = "br.gov.bcb.pix"
	currencyBRL = "986"

	maxMerchantNameLen = 25
	maxMerchantCityLen = 15
	maxTxIDLen         = 25
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new PIX QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.PaymentQRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// BuildPixPayload renders the EMV "copy and paste" payload for a charge
func (s *qrcodeService) BuildPixPayload(charge service.PixCharge) (string, error) {
	if charge.Key == "" {
		return "", errors.New("pix key is required")
	}
	if charge.MerchantName == "" {
		return "", errors.New("merchant name is required")
	}
	if charge.Amount.IsNegative() {
		return "", errors.New("amount cannot be negative")
	}

	txID := charge.TxID
	if txID == "" {
		txID = "***"
	}

	var sb strings.Builder
	sb.WriteString(tlv(idPayloadFormat, "01"))
	sb.WriteString(tlv(idMerchantAccountInfo, tlv("00", gui)+tlv("01", charge.Key)))
	sb.WriteString(tlv(idMerchantCategoryCode, "0000"))
	sb.WriteString(tlv(idCurrency, currencyBRL))
	if !charge.Amount.IsZero() {
		sb.WriteString(tlv(idAmount, charge.Amount.StringFixed(2)))
	}
	sb.WriteString(tlv(idCountryCode, "BR"))
	sb.WriteString(tlv(idMerchantName, truncate(charge.MerchantName, maxMerchantNameLen)))
	sb.WriteString(tlv(idMerchantCity, truncate(charge.MerchantCity, maxMerchantCityLen)))
	sb.WriteString(tlv(idAdditionalData, tlv("05", truncate(txID, maxTxIDLen))))

	// The CRC field covers everything up to and including its own id and length.
	payload := sb.String() + idCRC + "04"
	payload += fmt.Sprintf("%04X", crc16CCITT([]byte(payload)))

	return payload, nil
}

// GeneratePixQR renders the charge as a PNG QR code image
func (s *qrcodeService) GeneratePixQR(charge service.PixCharge) ([]byte, error) {
	payload, err := s.BuildPixPayload(charge)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(payload, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// tlv encodes one EMV field as id + zero-padded length + value.
func tlv(id, value string) string {
	return fmt.Sprintf("%s%02d%s", id, len(value), value)
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}

	return s
}

// crc16CCITT computes CRC-16/CCITT-FALSE (poly 0x1021, init 0xFFFF)
// as required by the BR Code specification.
func crc16CCITT(data []byte) uint16 {
	crc := uint16(0xFFFF)
	for _, b := range data {
		crc ^= uint16(b) << 8
		for range 8 {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}

	return crc
}
