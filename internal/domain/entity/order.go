// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderItem is a snapshot of one line item at placement time. Name and unit
// price are copied from the catalog so later menu edits never alter a placed
// order.
type OrderItem struct {
	MenuItemID uuid.UUID // The catalog item this line was created from.
	Name       string    // Item name at placement time.
	UnitPrice  float64   // Item price at placement time.
	Quantity   int       // Always >= 1.
}

// Subtotal returns unit price times quantity for this line.
func (i OrderItem) Subtotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

// Order is the central entity: the persisted record of a placed purchase and
// its fulfillment status. There is exactly one authoritative copy in the
// store; every client holds an eventually-consistent projection delivered
// through a watch.
type Order struct {
	ID           uuid.UUID   // Assigned by the store on creation.
	CustomerID   uuid.UUID   // The customer who placed the order.
	RestaurantID uuid.UUID   // The restaurant fulfilling the order.
	RiderID      *uuid.UUID  // Bound on pickup claim; nil before.
	Items        []OrderItem // Ordered line-item snapshots.
	Total        float64     // Computed at placement; never recomputed.
	Status       OrderStatus // See the lifecycle table in status.go.
	Delivery     Location    // Delivery location snapshot, copied by value.
	PickupCode   string      // Hand-off token encoded in the pickup QR.
	CreatedAt    time.Time   // Assigned by the store, not the client.
	UpdatedAt    time.Time   // Timestamp of the last status change.
}

// ItemCount returns the total number of units across all lines.
func (o *Order) ItemCount() int {
	count := 0
	for _, item := range o.Items {
		count += item.Quantity
	}

	return count
}
