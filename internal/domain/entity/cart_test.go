package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_Add_MergesExistingLine(t *testing.T) {
	itemID := uuid.New()
	cart := Cart{CustomerID: uuid.New()}

	cart.Add(CartItem{MenuItemID: itemID, Name: "Burger", UnitPrice: 120, Quantity: 2})
	cart.Add(CartItem{MenuItemID: itemID, Name: "Burger", UnitPrice: 120, Quantity: 1})

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
}

func TestCart_SetQuantity(t *testing.T) {
	itemID := uuid.New()
	cart := Cart{}
	cart.Add(CartItem{MenuItemID: itemID, Quantity: 2})

	assert.True(t, cart.SetQuantity(itemID, 5))
	assert.Equal(t, 5, cart.Items[0].Quantity)

	// Zero removes the line outright.
	assert.True(t, cart.SetQuantity(itemID, 0))
	assert.True(t, cart.IsEmpty())

	assert.False(t, cart.SetQuantity(uuid.New(), 1))
}

func TestCart_Remove(t *testing.T) {
	itemID := uuid.New()
	cart := Cart{}
	cart.Add(CartItem{MenuItemID: itemID, Quantity: 1})

	assert.False(t, cart.Remove(uuid.New()))
	assert.True(t, cart.Remove(itemID))
	assert.True(t, cart.IsEmpty())
}

func TestCart_Subtotal(t *testing.T) {
	cart := Cart{}
	assert.Zero(t, cart.Subtotal())

	cart.Add(CartItem{MenuItemID: uuid.New(), UnitPrice: 120, Quantity: 2})
	cart.Add(CartItem{MenuItemID: uuid.New(), UnitPrice: 50, Quantity: 1})

	assert.InDelta(t, 290, cart.Subtotal(), 0.001)
}

func TestCart_ReadsWorkOnValues(t *testing.T) {
	itemID := uuid.New()
	byValue := func() Cart {
		cart := Cart{}
		cart.Add(CartItem{MenuItemID: itemID, UnitPrice: 80, Quantity: 2})

		return cart
	}

	// Stores hand out carts by value; the read-only accessors must be
	// callable directly on those copies.
	assert.False(t, byValue().IsEmpty())
	assert.InDelta(t, 160, byValue().Subtotal(), 0.001)
}
