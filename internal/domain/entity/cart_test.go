package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCart_ItemCount(t *testing.T) {
	cart := &Cart{
		Items: []CartItem{
			{CartItemID: 1, Quantity: 2},
			{CartItemID: 2, Quantity: 3},
		},
		TotalPrice: 0,
	}

	// The badge count sums quantities regardless of TotalPrice.
	assert.Equal(t, 5, cart.ItemCount())
}

func TestCart_ItemCount_NilCart(t *testing.T) {
	var cart *Cart

	assert.Zero(t, cart.ItemCount())
}

func TestCart_SubtotalSum(t *testing.T) {
	cart := &Cart{
		Items: []CartItem{
			{CartItemID: 1, Quantity: 2, UnitPrice: 65, LineSubtotal: 130},
			{CartItemID: 2, Quantity: 1, UnitPrice: 120, LineSubtotal: 120},
		},
		TotalPrice: 250,
	}

	assert.InDelta(t, 250, cart.SubtotalSum(), 0.001)
}

func TestCart_SubtotalSum_NilCart(t *testing.T) {
	var cart *Cart

	assert.Zero(t, cart.SubtotalSum())
}
