package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseBagStatus(t *testing.T) {
	t.Parallel()

	status, ok := ParseBagStatus("OPEN")
	assert.True(t, ok)
	assert.Equal(t, BagStatusOpen, status)

	_, ok = ParseBagStatus("open")
	assert.False(t, ok)

	_, ok = ParseBagStatus("UNKNOWN")
	assert.False(t, ok)
}

func TestShoppingBag_FindItem(t *testing.T) {
	t.Parallel()

	bag := &ShoppingBag{
		Items: []ShoppingBagItem{
			{ProductID: "prod-1", Size: "M"},
			{ProductID: "prod-1", Size: "L"},
			{ProductID: "prod-2", Size: "M"},
		},
	}

	assert.Equal(t, 0, bag.FindItem("prod-1", "M"))
	assert.Equal(t, 1, bag.FindItem("prod-1", "L"))
	assert.Equal(t, 2, bag.FindItem("prod-2", "M"))
	assert.Equal(t, -1, bag.FindItem("prod-2", "L"))
	assert.Equal(t, -1, bag.FindItem("prod-3", "M"))
}

func TestShoppingBag_RecalculateTotalAmount(t *testing.T) {
	t.Parallel()

	bag := &ShoppingBag{
		Items: []ShoppingBagItem{
			{Price: decimal.RequireFromString("49.90"), Quantity: 2},
			{Price: decimal.RequireFromString("120.00"), Quantity: 1},
		},
	}

	bag.RecalculateTotalAmount()
	assert.Equal(t, "219.8", bag.TotalAmount.String())

	bag.Items = nil
	bag.RecalculateTotalAmount()
	assert.True(t, bag.TotalAmount.IsZero())
}
