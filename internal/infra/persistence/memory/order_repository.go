// Package memory implements the store gateways in process memory. It backs
// development runs without a Firestore project and gives tests a store with
// real compare-and-set semantics.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"quickbite/internal/domain/entity"
	"quickbite/internal/domain/repository"

	"github.com/google/uuid"
)

type orderRepository struct {
	mu      sync.Mutex
	orders  map[uuid.UUID]*entity.Order
	watches map[*orderWatch]struct{}
}

// NewOrderRepository creates an empty in-memory order store.
func NewOrderRepository() repository.OrderRepository {
	return &orderRepository{
		orders:  make(map[uuid.UUID]*entity.Order),
		watches: make(map[*orderWatch]struct{}),
	}
}

func (r *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// The store, not the caller, assigns identity and creation time.
	order.ID = uuid.New()
	order.CreatedAt = time.Now().UTC()
	order.UpdatedAt = order.CreatedAt

	r.orders[order.ID] = copyOrder(order)
	r.broadcastLocked()

	return nil
}

func (r *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}

	return copyOrder(order), nil
}

func (r *orderRepository) FindOrderByPickupCode(ctx context.Context, code string) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, order := range r.orders {
		if order.PickupCode == code {
			return copyOrder(order), nil
		}
	}

	return nil, repository.ErrOrderNotFound
}

func (r *orderRepository) ListOrders(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.listLocked(filter), nil
}

func (r *orderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}

	// Conditional write: nothing changes unless the precondition holds.
	if order.Status != from {
		return nil, repository.ErrStatusConflict
	}

	order.Status = to
	order.UpdatedAt = time.Now().UTC()
	r.broadcastLocked()

	return copyOrder(order), nil
}

func (r *orderRepository) ClaimOrder(ctx context.Context, id, riderID uuid.UUID) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}

	// The single multi-writer hazard in the system: rider binding races.
	// Both conditions are checked under the store lock so exactly one
	// claimant can ever pass.
	if order.RiderID != nil || order.Status != entity.StatusReadyForPickup {
		return nil, repository.ErrAlreadyClaimed
	}

	rider := riderID
	order.RiderID = &rider
	order.Status = entity.StatusPickedUp
	order.UpdatedAt = time.Now().UTC()
	r.broadcastLocked()

	return copyOrder(order), nil
}

func (r *orderRepository) WatchOrders(ctx context.Context, filter repository.OrderFilter) (repository.OrderWatch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	watch := newOrderWatch(filter)
	watch.unregister = func() {
		r.mu.Lock()
		delete(r.watches, watch)
		r.mu.Unlock()
	}
	r.watches[watch] = struct{}{}

	// Initial snapshot so a fresh view renders without waiting for a change.
	watch.push(repository.OrderSnapshot{Orders: r.listLocked(filter)})

	return watch, nil
}

func (r *orderRepository) listLocked(filter repository.OrderFilter) []*entity.Order {
	matched := make([]*entity.Order, 0)
	for _, order := range r.orders {
		if matchesFilter(order, filter) {
			matched = append(matched, copyOrder(order))
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}

	return matched
}

func (r *orderRepository) broadcastLocked() {
	for watch := range r.watches {
		watch.push(repository.OrderSnapshot{Orders: r.listLocked(watch.filter)})
	}
}

func matchesFilter(order *entity.Order, filter repository.OrderFilter) bool {
	if filter.CustomerID != nil && order.CustomerID != *filter.CustomerID {
		return false
	}
	if filter.RestaurantID != nil && order.RestaurantID != *filter.RestaurantID {
		return false
	}
	if filter.RiderID != nil && (order.RiderID == nil || *order.RiderID != *filter.RiderID) {
		return false
	}
	if filter.Status != nil && order.Status != *filter.Status {
		return false
	}

	return true
}

func copyOrder(order *entity.Order) *entity.Order {
	out := *order
	out.Items = make([]entity.OrderItem, len(order.Items))
	copy(out.Items, order.Items)
	if order.RiderID != nil {
		rider := *order.RiderID
		out.RiderID = &rider
	}

	return &out
}
