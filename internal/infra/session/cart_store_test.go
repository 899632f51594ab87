package session

import (
	"sync"
	"testing"

	"quickbite/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartStore_GetReturnsEmptyCart(t *testing.T) {
	store := NewCartStore()
	customerID := uuid.New()

	cart := store.Get(customerID)
	assert.Equal(t, customerID, cart.CustomerID)
	assert.True(t, cart.IsEmpty())
}

func TestCartStore_UpdateMergesDuplicateItems(t *testing.T) {
	store := NewCartStore()
	customerID := uuid.New()
	menuItemID := uuid.New()

	item := entity.CartItem{MenuItemID: menuItemID, Name: "Margherita", UnitPrice: 100, Quantity: 2}
	store.Update(customerID, func(cart *entity.Cart) { cart.Add(item) })
	cart := store.Update(customerID, func(cart *entity.Cart) { cart.Add(item) })

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 4, cart.Items[0].Quantity)
}

func TestCartStore_GetReturnsCopy(t *testing.T) {
	store := NewCartStore()
	customerID := uuid.New()
	menuItemID := uuid.New()

	store.Update(customerID, func(cart *entity.Cart) {
		cart.Add(entity.CartItem{MenuItemID: menuItemID, Quantity: 1})
	})

	cart := store.Get(customerID)
	cart.Items[0].Quantity = 99

	again := store.Get(customerID)
	assert.Equal(t, 1, again.Items[0].Quantity)
}

func TestCartStore_Clear(t *testing.T) {
	store := NewCartStore()
	customerID := uuid.New()

	store.Update(customerID, func(cart *entity.Cart) {
		cart.Add(entity.CartItem{MenuItemID: uuid.New(), Quantity: 1})
	})
	store.Clear(customerID)

	assert.True(t, store.Get(customerID).IsEmpty())
}

func TestCartStore_ConcurrentUpdates(t *testing.T) {
	store := NewCartStore()
	customerID := uuid.New()
	menuItemID := uuid.New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Update(customerID, func(cart *entity.Cart) {
				cart.Add(entity.CartItem{MenuItemID: menuItemID, Quantity: 1})
			})
		}()
	}
	wg.Wait()

	cart := store.Get(customerID)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 50, cart.Items[0].Quantity)
}
