// Package repository defines the gateway interfaces to the external document
// store. Implementations live under internal/infra/persistence.
package repository

import (
	"context"

	"quickbite/internal/domain/entity"
	"quickbite/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrOrderNotFound is returned when an order does not exist in the store.
	ErrOrderNotFound = errors.New("order not found")
	// ErrStatusConflict is returned when a conditional status write finds the
	// persisted status already changed. The record is left untouched.
	ErrStatusConflict = errors.New("order status changed concurrently")
	// ErrAlreadyClaimed is returned when a rider claim loses the
	// compare-and-set race. Losing the race is expected normal behavior.
	ErrAlreadyClaimed = errors.New("order already claimed by another rider")
)

// OrderFilter is the declarative interest of one role view over the order
// collection. Zero-value fields do not constrain the result. Results are
// ordered by creation time descending.
type OrderFilter struct {
	CustomerID   *uuid.UUID
	RestaurantID *uuid.UUID
	RiderID      *uuid.UUID
	Status       *entity.OrderStatus
	Limit        int // 0 means no bound.
}

// OrderSnapshot is one delivered representation of a watched collection's
// current matching contents, sent on every change.
type OrderSnapshot struct {
	Orders []*entity.Order
}

// OrderWatch is a cancellable stream of snapshot events. Events is closed
// when the watch ends, whether by Close or by a stream failure; Err reports
// the failure afterwards. Close is synchronous: once it returns, no further
// event is delivered.
type OrderWatch interface {
	Events() <-chan OrderSnapshot
	Err() error
	Close()
}

// OrderRepository is the order store gateway. Orders are created exactly
// once, mutated only through the conditional writes below, and never
// deleted.
type OrderRepository interface {
	// CreateOrder persists a new order. The store assigns ID and CreatedAt;
	// both are set on the passed order before return.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID returns the authoritative copy of one order.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrderByPickupCode resolves a pickup hand-off token to its order.
	FindOrderByPickupCode(ctx context.Context, code string) (*entity.Order, error)

	// ListOrders returns the orders matching the filter, newest first.
	ListOrders(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)

	// UpdateOrderStatus sets the status to the target only if the persisted
	// status still equals from; otherwise it fails with ErrStatusConflict
	// and writes nothing.
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) (*entity.Order, error)

	// ClaimOrder binds the rider and moves READY_FOR_PICKUP to PICKED_UP in
	// one compare-and-set: it succeeds only while no rider is bound and the
	// status still matches. Exactly one concurrent claimant wins; the rest
	// get ErrAlreadyClaimed.
	ClaimOrder(ctx context.Context, id, riderID uuid.UUID) (*entity.Order, error)

	// WatchOrders subscribes to the filtered collection. Every matching
	// change delivers a full snapshot until the watch is closed.
	WatchOrders(ctx context.Context, filter OrderFilter) (OrderWatch, error)
}
