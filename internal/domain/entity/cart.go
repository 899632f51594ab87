// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/google/uuid"
)

// CartItem pairs a catalog item with a positive quantity. It exists only
// inside a customer's session and is never independently persisted.
type CartItem struct {
	MenuItemID uuid.UUID // The catalog item selected.
	Name       string    // Name at selection time, for display only.
	UnitPrice  float64   // Price at selection time, for display only.
	Quantity   int       // Always >= 1.
}

// Cart is the pre-placement mutable list of selected items. It has a single
// owner (the customer's own session) and requires no cross-process
// coordination.
type Cart struct {
	CustomerID uuid.UUID
	Items      []CartItem
}

// Add merges a selection into the cart. Adding an item already present
// increments its quantity instead of creating a second line.
func (c *Cart) Add(item CartItem) {
	for i := range c.Items {
		if c.Items[i].MenuItemID == item.MenuItemID {
			c.Items[i].Quantity += item.Quantity

			return
		}
	}
	c.Items = append(c.Items, item)
}

// SetQuantity sets the quantity of an existing line. A quantity of zero
// removes the line. Returns false if the item is not in the cart.
func (c *Cart) SetQuantity(menuItemID uuid.UUID, quantity int) bool {
	for i := range c.Items {
		if c.Items[i].MenuItemID != menuItemID {
			continue
		}
		if quantity == 0 {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
		} else {
			c.Items[i].Quantity = quantity
		}

		return true
	}

	return false
}

// Remove drops a line from the cart. Returns false if the item is absent.
func (c *Cart) Remove(menuItemID uuid.UUID) bool {
	return c.SetQuantity(menuItemID, 0)
}

// IsEmpty reports whether the cart holds no items.
func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Subtotal returns the display total of the cart. The authoritative order
// total is recomputed from the catalog at placement, never taken from here.
func (c Cart) Subtotal() float64 {
	total := 0.0
	for _, item := range c.Items {
		total += item.UnitPrice * float64(item.Quantity)
	}

	return total
}
