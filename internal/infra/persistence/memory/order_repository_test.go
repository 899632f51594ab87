package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"quickbite/internal/domain/entity"
	"quickbite/internal/domain/repository"
	"quickbite/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T, repo repository.OrderRepository, restaurantID uuid.UUID, status entity.OrderStatus) *entity.Order {
	t.Helper()

	ctx := context.Background()
	order := &entity.Order{
		CustomerID:   uuid.New(),
		RestaurantID: restaurantID,
		Items:        []entity.OrderItem{{MenuItemID: uuid.New(), Name: "Pad Thai", UnitPrice: 120, Quantity: 1}},
		Total:        120,
		Status:       entity.StatusPending,
	}
	require.NoError(t, repo.CreateOrder(ctx, order))
	require.NotEqual(t, uuid.Nil, order.ID)
	require.False(t, order.CreatedAt.IsZero())

	for _, next := range statusPath(status) {
		_, err := repo.UpdateOrderStatus(ctx, order.ID, order.Status, next)
		require.NoError(t, err)
		order.Status = next
	}

	return order
}

// statusPath returns the forward path from PENDING up to the target status.
func statusPath(target entity.OrderStatus) []entity.OrderStatus {
	path := []entity.OrderStatus{
		entity.StatusAccepted, entity.StatusPreparing, entity.StatusReadyForPickup,
		entity.StatusPickedUp, entity.StatusArriving, entity.StatusDelivered,
	}
	for i, status := range path {
		if status == target {
			return path[:i+1]
		}
	}

	return nil
}

func TestOrderRepository_UpdateOrderStatus_Conditional(t *testing.T) {
	repo := NewOrderRepository()
	ctx := context.Background()
	order := newOrder(t, repo, uuid.New(), entity.StatusPending)

	updated, err := repo.UpdateOrderStatus(ctx, order.ID, entity.StatusPending, entity.StatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusAccepted, updated.Status)

	// The same conditional write again must fail without touching the record.
	_, err = repo.UpdateOrderStatus(ctx, order.ID, entity.StatusPending, entity.StatusAccepted)
	assert.True(t, errors.Is(err, repository.ErrStatusConflict))

	current, err := repo.FindOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusAccepted, current.Status)
}

func TestOrderRepository_ClaimOrder_ExactlyOneWinner(t *testing.T) {
	repo := NewOrderRepository()
	ctx := context.Background()
	order := newOrder(t, repo, uuid.New(), entity.StatusReadyForPickup)

	const riders = 8
	riderIDs := make([]uuid.UUID, riders)
	results := make([]error, riders)

	var wg sync.WaitGroup
	for i := 0; i < riders; i++ {
		riderIDs[i] = uuid.New()
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = repo.ClaimOrder(ctx, order.ID, riderIDs[i])
		}(i)
	}
	wg.Wait()

	winners := 0
	var winner uuid.UUID
	for i, err := range results {
		if err == nil {
			winners++
			winner = riderIDs[i]
		} else {
			assert.True(t, errors.Is(err, repository.ErrAlreadyClaimed))
		}
	}
	require.Equal(t, 1, winners)

	claimed, err := repo.FindOrderByID(ctx, order.ID)
	require.NoError(t, err)
	require.NotNil(t, claimed.RiderID)
	assert.Equal(t, winner, *claimed.RiderID)
	assert.Equal(t, entity.StatusPickedUp, claimed.Status)
}

func TestOrderRepository_ClaimOrder_RequiresReadyStatus(t *testing.T) {
	repo := NewOrderRepository()
	ctx := context.Background()
	order := newOrder(t, repo, uuid.New(), entity.StatusPending)

	_, err := repo.ClaimOrder(ctx, order.ID, uuid.New())
	assert.True(t, errors.Is(err, repository.ErrAlreadyClaimed))
}

func TestOrderRepository_ListOrders_FilterIsolation(t *testing.T) {
	repo := NewOrderRepository()
	ctx := context.Background()

	r1 := uuid.New()
	r2 := uuid.New()
	newOrder(t, repo, r1, entity.StatusPending)
	newOrder(t, repo, r1, entity.StatusPending)
	other := newOrder(t, repo, r2, entity.StatusPending)

	orders, err := repo.ListOrders(ctx, repository.OrderFilter{RestaurantID: &r1})
	require.NoError(t, err)
	require.Len(t, orders, 2)
	for _, order := range orders {
		assert.Equal(t, r1, order.RestaurantID)
	}

	// A status change on the r2 order must stay invisible to the r1 filter.
	_, err = repo.UpdateOrderStatus(ctx, other.ID, entity.StatusPending, entity.StatusAccepted)
	require.NoError(t, err)

	orders, err = repo.ListOrders(ctx, repository.OrderFilter{RestaurantID: &r1})
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestOrderRepository_WatchOrders_DeliversSnapshots(t *testing.T) {
	repo := NewOrderRepository()
	ctx := context.Background()

	restaurantID := uuid.New()
	watch, err := repo.WatchOrders(ctx, repository.OrderFilter{RestaurantID: &restaurantID})
	require.NoError(t, err)
	defer watch.Close()

	// Initial snapshot is empty.
	snapshot := receiveSnapshot(t, watch)
	assert.Empty(t, snapshot.Orders)

	order := newOrder(t, repo, restaurantID, entity.StatusPending)

	deadline := time.After(2 * time.Second)
	for {
		snapshot = receiveSnapshot(t, watch)
		if len(snapshot.Orders) == 1 {
			assert.Equal(t, order.ID, snapshot.Orders[0].ID)

			return
		}
		select {
		case <-deadline:
			t.Fatal("watch never delivered the created order")
		default:
		}
	}
}

func TestOrderRepository_WatchOrders_CloseStopsDelivery(t *testing.T) {
	repo := NewOrderRepository()
	ctx := context.Background()

	watch, err := repo.WatchOrders(ctx, repository.OrderFilter{})
	require.NoError(t, err)

	watch.Close()

	// After Close returns, the event channel must be drained and closed.
	for range watch.Events() {
	}

	// Mutations after close must not panic or deliver.
	newOrder(t, repo, uuid.New(), entity.StatusPending)
	_, open := <-watch.Events()
	assert.False(t, open)
	assert.NoError(t, watch.Err())
}

func receiveSnapshot(t *testing.T, watch repository.OrderWatch) repository.OrderSnapshot {
	t.Helper()

	select {
	case snapshot, ok := <-watch.Events():
		require.True(t, ok, "watch closed unexpectedly")

		return snapshot
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for snapshot")

		return repository.OrderSnapshot{}
	}
}
