package qrcode

import (
	"fmt"
	"strings"
	"testing"

	"storefront/internal/domain/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCharge() service.PixCharge {
	return service.PixCharge{
		Key:          "loja@example.com",
		MerchantName: "Loja Exemplo",
		MerchantCity: "SAO PAULO",
		TxID:         "ORDER123",
		Amount:       decimal.RequireFromString("249.90"),
	}
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_BuildPixPayload(t *testing.T) {
	service := NewQRCodeService(256, "M")

	payload, err := service.BuildPixPayload(testCharge())
	require.NoError(t, err)

	// Static EMV prefix and PIX arrangement markers.
	assert.True(t, strings.HasPrefix(payload, "000201"))
	assert.Contains(t, payload, "br.gov.bcb.pix")
	assert.Contains(t, payload, "loja@example.com")
	assert.Contains(t, payload, "5303986")
	assert.Contains(t, payload, "5406249.90")
	assert.Contains(t, payload, "5802BR")
	assert.Contains(t, payload, "ORDER123")

	// The payload ends with the CRC field over everything before it.
	require.Greater(t, len(payload), 8)
	body := payload[:len(payload)-4]
	assert.True(t, strings.HasSuffix(body, "6304"))
	assert.Equal(t, fmt.Sprintf("%04X", crc16CCITT([]byte(body))), payload[len(payload)-4:])
}

func TestQRCodeService_BuildPixPayload_Defaults(t *testing.T) {
	service := NewQRCodeService(256, "M")

	charge := testCharge()
	charge.TxID = ""
	charge.Amount = decimal.Zero

	payload, err := service.BuildPixPayload(charge)
	require.NoError(t, err)

	// Zero amount omits the amount field; empty txid falls back to "***".
	assert.Contains(t, payload, "5303986"+"5802BR")
	assert.Contains(t, payload, "***")
}

func TestQRCodeService_BuildPixPayload_Truncation(t *testing.T) {
	service := NewQRCodeService(256, "M")

	charge := testCharge()
	charge.MerchantName = strings.Repeat("A", 40)
	charge.MerchantCity = strings.Repeat("B", 40)

	payload, err := service.BuildPixPayload(charge)
	require.NoError(t, err)

	assert.Contains(t, payload, "5925"+strings.Repeat("A", 25))
	assert.Contains(t, payload, "6015"+strings.Repeat("B", 15))
}

func TestQRCodeService_BuildPixPayload_Invalid(t *testing.T) {
	service := NewQRCodeService(256, "M")

	missingKey := testCharge()
	missingKey.Key = ""
	_, err := service.BuildPixPayload(missingKey)
	assert.ErrorContains(t, err, "pix key is required")

	missingName := testCharge()
	missingName.MerchantName = ""
	_, err = service.BuildPixPayload(missingName)
	assert.ErrorContains(t, err, "merchant name is required")

	negative := testCharge()
	negative.Amount = decimal.RequireFromString("-1")
	_, err = service.BuildPixPayload(negative)
	assert.ErrorContains(t, err, "amount cannot be negative")
}

func TestQRCodeService_GeneratePixQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GeneratePixQR(testCharge())
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GeneratePixQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M")

			qrBytes, err := service.GeneratePixQR(testCharge())
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestCRC16CCITT_KnownVector(t *testing.T) {
	// Standard check value for CRC-16/CCITT-FALSE.
	assert.Equal(t, uint16(0x29B1), crc16CCITT([]byte("123456789")))
}
