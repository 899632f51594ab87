// Package session holds per-customer pre-placement state. Carts are
// single-owner and process-local; they are never persisted and vanish at
// process exit.
package session

import (
	"sync"

	"quickbite/internal/domain/entity"

	"github.com/google/uuid"
)

// CartStore owns every live cart, keyed by customer. It replaces the ad hoc
// process-wide globals the cart grew out of: one explicit value, initialized
// at startup and passed down to whoever mutates it.
type CartStore struct {
	mu    sync.RWMutex
	carts map[uuid.UUID]*entity.Cart
}

// NewCartStore creates an empty cart store.
func NewCartStore() *CartStore {
	return &CartStore{
		carts: make(map[uuid.UUID]*entity.Cart),
	}
}

// Get returns a copy of the customer's cart, creating an empty one on first
// access. Callers never receive a live pointer into the store.
func (s *CartStore) Get(customerID uuid.UUID) entity.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if cart, ok := s.carts[customerID]; ok {
		return copyCart(cart)
	}

	return entity.Cart{CustomerID: customerID}
}

// Update applies fn to the customer's cart under the store lock and returns
// the resulting copy.
func (s *CartStore) Update(customerID uuid.UUID, fn func(cart *entity.Cart)) entity.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[customerID]
	if !ok {
		cart = &entity.Cart{CustomerID: customerID}
		s.carts[customerID] = cart
	}

	fn(cart)

	return copyCart(cart)
}

// Clear drops the customer's cart, normally right after placement.
func (s *CartStore) Clear(customerID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, customerID)
}

func copyCart(cart *entity.Cart) entity.Cart {
	out := entity.Cart{
		CustomerID: cart.CustomerID,
		Items:      make([]entity.CartItem, len(cart.Items)),
	}
	copy(out.Items, cart.Items)

	return out
}
