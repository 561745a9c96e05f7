package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProduct_CurrentPrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		price    string
		discount string
		want     string
	}{
		{name: "no discount", price: "199.90", discount: "0", want: "199.9"},
		{name: "ten percent off", price: "100.00", discount: "10", want: "90"},
		{name: "rounds to cents", price: "59.99", discount: "15", want: "50.99"},
		{name: "full discount", price: "80.00", discount: "100", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			product := &Product{
				Price:           decimal.RequireFromString(tt.price),
				DiscountPercent: decimal.RequireFromString(tt.discount),
			}

			assert.Equal(t, tt.want, product.CurrentPrice().String())
		})
	}
}

func TestProduct_HasStock(t *testing.T) {
	t.Parallel()

	product := &Product{StockQuantity: 3}

	assert.True(t, product.HasStock(3))
	assert.True(t, product.HasStock(1))
	assert.False(t, product.HasStock(4))
}
