package impl

import (
	"context"
	"testing"
	"time"

	"quickbite/internal/domain/entity"
	"quickbite/internal/domain/repository"
	"quickbite/internal/domain/service"
	"quickbite/internal/infra/session"
	mockRepo "quickbite/internal/mocks/repository"
	mockService "quickbite/internal/mocks/service"
	"quickbite/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
// The cart store is the real in-memory one; everything else is mocked.
type orderServiceFixtures struct {
	service     usecase.OrderUsecase
	orderRepo   *mockRepo.MockOrderRepository
	catalogRepo *mockRepo.MockCatalogRepository
	userRepo    *mockRepo.MockUserRepository
	cartStore   *session.CartStore
	publisher   *mockService.MockEventPublisher
	qrService   *mockService.MockQRCodeService
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	cartStore := session.NewCartStore()
	publisher := mockService.NewMockEventPublisher(t)
	qrService := mockService.NewMockQRCodeService(t)

	svc := NewOrderService(orderRepo, catalogRepo, userRepo, cartStore, publisher, qrService, newTestConfig(), newDiscardLogger())

	return orderServiceFixtures{
		service:     svc,
		orderRepo:   orderRepo,
		catalogRepo: catalogRepo,
		userRepo:    userRepo,
		cartStore:   cartStore,
		publisher:   publisher,
		qrService:   qrService,
	}
}

func customerActor(userID uuid.UUID) usecase.Actor {
	return usecase.Actor{UserID: userID, Role: entity.RoleCustomer}
}

func restaurantActor(userID, restaurantID uuid.UUID) usecase.Actor {
	return usecase.Actor{UserID: userID, Role: entity.RoleRestaurant, RestaurantID: &restaurantID}
}

func riderActor(userID uuid.UUID) usecase.Actor {
	return usecase.Actor{UserID: userID, Role: entity.RoleDelivery}
}

func adminActor() usecase.Actor {
	return usecase.Actor{UserID: uuid.New(), Role: entity.RoleAdmin}
}

func TestOrderService_PlaceOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customerID := uuid.New()
	restaurantID := uuid.New()
	locationID := uuid.New()
	orderID := uuid.New()

	burger := &entity.MenuItem{
		ID:           uuid.New(),
		RestaurantID: restaurantID,
		Name:         "Burger",
		Price:        120,
		Available:    true,
	}
	fries := &entity.MenuItem{
		ID:           uuid.New(),
		RestaurantID: restaurantID,
		Name:         "Fries",
		Price:        50,
		Available:    true,
	}

	// The cart carries stale display prices; the order total must come from
	// the live catalog instead.
	fx.cartStore.Update(customerID, func(cart *entity.Cart) {
		cart.Add(entity.CartItem{MenuItemID: burger.ID, Name: burger.Name, UnitPrice: 100, Quantity: 2})
		cart.Add(entity.CartItem{MenuItemID: fries.ID, Name: fries.Name, UnitPrice: 45, Quantity: 1})
	})

	location := entity.Location{
		ID:      locationID,
		Label:   entity.LabelHome,
		Address: "1 Main St",
	}
	customer := &entity.UserProfile{
		ID:        customerID,
		Role:      entity.RoleCustomer,
		Locations: []entity.Location{location},
	}

	fx.catalogRepo.EXPECT().
		FindMenuItemsByIDs(ctx, []uuid.UUID{burger.ID, fries.ID}).
		Return([]*entity.MenuItem{burger, fries}, nil)
	fx.userRepo.EXPECT().FindUserByID(ctx, customerID).Return(customer, nil)
	fx.orderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			order.ID = orderID
			order.CreatedAt = time.Now().UTC()
		}).
		Return(nil)
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Run(func(_ context.Context, event *service.OrderEvent) {
			assert.Equal(t, orderID.String(), event.OrderID)
			assert.Equal(t, "PENDING", event.ToStatus)
			assert.Empty(t, event.FromStatus)
		}).
		Return(nil)

	order, err := fx.service.PlaceOrder(ctx, customerActor(customerID), &usecase.PlaceOrderInput{LocationID: locationID})
	require.NoError(t, err)
	assert.Equal(t, orderID, order.ID)
	assert.Equal(t, entity.StatusPending, order.Status)
	assert.Equal(t, restaurantID, order.RestaurantID)
	assert.InDelta(t, 290, order.Total, 0.001)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, location, order.Delivery)
	assert.Len(t, order.PickupCode, 8)
	assert.Nil(t, order.RiderID)

	// Placement consumes the cart.
	assert.True(t, fx.cartStore.Get(customerID).IsEmpty())
}

func TestOrderService_TransitionOrder_RestaurantAccepts(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	restaurantID := uuid.New()
	order := &entity.Order{
		ID:           uuid.New(),
		CustomerID:   uuid.New(),
		RestaurantID: restaurantID,
		Status:       entity.StatusPending,
	}
	accepted := &entity.Order{
		ID:           order.ID,
		CustomerID:   order.CustomerID,
		RestaurantID: restaurantID,
		Status:       entity.StatusAccepted,
	}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().
		UpdateOrderStatus(ctx, order.ID, entity.StatusPending, entity.StatusAccepted).
		Return(accepted, nil)
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Run(func(_ context.Context, event *service.OrderEvent) {
			assert.Equal(t, "PENDING", event.FromStatus)
			assert.Equal(t, "ACCEPTED", event.ToStatus)
		}).
		Return(nil)

	updated, err := fx.service.TransitionOrder(ctx, restaurantActor(uuid.New(), restaurantID), order.ID, entity.StatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusAccepted, updated.Status)
}

func TestOrderService_TransitionOrder_CustomerCancels(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customerID := uuid.New()
	order := &entity.Order{
		ID:           uuid.New(),
		CustomerID:   customerID,
		RestaurantID: uuid.New(),
		Status:       entity.StatusPreparing,
	}
	cancelled := &entity.Order{
		ID:           order.ID,
		CustomerID:   customerID,
		RestaurantID: order.RestaurantID,
		Status:       entity.StatusCancelled,
	}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().
		UpdateOrderStatus(ctx, order.ID, entity.StatusPreparing, entity.StatusCancelled).
		Return(cancelled, nil)
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	updated, err := fx.service.TransitionOrder(ctx, customerActor(customerID), order.ID, entity.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, updated.Status)
}

func TestOrderService_ClaimOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	riderID := uuid.New()
	orderID := uuid.New()
	claimed := &entity.Order{
		ID:           orderID,
		CustomerID:   uuid.New(),
		RestaurantID: uuid.New(),
		RiderID:      &riderID,
		Status:       entity.StatusPickedUp,
	}

	fx.orderRepo.EXPECT().ClaimOrder(ctx, orderID, riderID).Return(claimed, nil)
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Run(func(_ context.Context, event *service.OrderEvent) {
			assert.Equal(t, "READY_FOR_PICKUP", event.FromStatus)
			assert.Equal(t, "PICKED_UP", event.ToStatus)
			assert.Equal(t, riderID.String(), event.RiderID)
		}).
		Return(nil)

	order, err := fx.service.ClaimOrder(ctx, riderActor(riderID), orderID)
	require.NoError(t, err)
	require.NotNil(t, order.RiderID)
	assert.Equal(t, riderID, *order.RiderID)
	assert.Equal(t, entity.StatusPickedUp, order.Status)
}

func TestOrderService_ClaimByPickupCode_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	riderID := uuid.New()
	orderID := uuid.New()
	order := &entity.Order{
		ID:         orderID,
		CustomerID: uuid.New(),
		Status:     entity.StatusReadyForPickup,
		PickupCode: "ABCD2345",
	}
	claimed := &entity.Order{
		ID:         orderID,
		CustomerID: order.CustomerID,
		RiderID:    &riderID,
		Status:     entity.StatusPickedUp,
		PickupCode: order.PickupCode,
	}

	fx.qrService.EXPECT().ParsePickupQR("qr-payload").Return("ABCD2345", nil)
	fx.orderRepo.EXPECT().FindOrderByPickupCode(ctx, "ABCD2345").Return(order, nil)
	fx.orderRepo.EXPECT().ClaimOrder(ctx, orderID, riderID).Return(claimed, nil)
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	got, err := fx.service.ClaimByPickupCode(ctx, riderActor(riderID), "qr-payload")
	require.NoError(t, err)
	assert.Equal(t, orderID, got.ID)
}

func TestOrderService_PickupQR_RestaurantOwner(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	restaurantID := uuid.New()
	order := &entity.Order{
		ID:           uuid.New(),
		RestaurantID: restaurantID,
		Status:       entity.StatusReadyForPickup,
		PickupCode:   "ABCD2345",
	}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	fx.qrService.EXPECT().GeneratePickupQR("ABCD2345").Return([]byte("png-bytes"), nil)

	png, err := fx.service.PickupQR(ctx, restaurantActor(uuid.New(), restaurantID), order.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}

func TestOrderService_GetOrder_RiderSeesReadyPool(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := &entity.Order{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		Status:     entity.StatusReadyForPickup,
	}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)

	got, err := fx.service.GetOrder(ctx, riderActor(uuid.New()), order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
}

func TestOrderService_ListOrders_CustomerScope(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customerID := uuid.New()
	orders := []*entity.Order{
		{ID: uuid.New(), CustomerID: customerID, CreatedAt: time.Now()},
	}

	fx.orderRepo.EXPECT().
		ListOrders(ctx, mock.MatchedBy(func(filter repository.OrderFilter) bool {
			return filter.CustomerID != nil && *filter.CustomerID == customerID &&
				filter.RestaurantID == nil && filter.RiderID == nil
		})).
		Return(orders, nil)

	got, err := fx.service.ListOrders(ctx, customerActor(customerID), nil)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestOrderService_ListOrders_RiderUnionDeduped(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	riderID := uuid.New()
	now := time.Now()

	pool := &entity.Order{ID: uuid.New(), Status: entity.StatusReadyForPickup, CreatedAt: now.Add(-time.Minute)}
	bound := &entity.Order{ID: uuid.New(), RiderID: &riderID, Status: entity.StatusPickedUp, CreatedAt: now}

	fx.orderRepo.EXPECT().
		ListOrders(ctx, mock.MatchedBy(func(filter repository.OrderFilter) bool {
			return filter.Status != nil && *filter.Status == entity.StatusReadyForPickup
		})).
		Return([]*entity.Order{pool}, nil)
	fx.orderRepo.EXPECT().
		ListOrders(ctx, mock.MatchedBy(func(filter repository.OrderFilter) bool {
			return filter.RiderID != nil && *filter.RiderID == riderID
		})).
		Return([]*entity.Order{bound, pool}, nil)

	got, err := fx.service.ListOrders(ctx, riderActor(riderID), nil)
	require.NoError(t, err)
	require.Len(t, got, 2)
	// Newest first, one entry per order despite the overlap.
	assert.Equal(t, bound.ID, got[0].ID)
	assert.Equal(t, pool.ID, got[1].ID)
}

func TestOrderService_ListOrders_RiderScopeStaysConstrained(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	riderID := uuid.New()
	delivered := entity.StatusDelivered

	// Every filter a rider query produces must be pinned to the ready pool
	// or bound to the rider; an unconstrained filter would leak the whole
	// order collection.
	fx.orderRepo.EXPECT().
		ListOrders(ctx, mock.MatchedBy(func(filter repository.OrderFilter) bool {
			return filter.Status != nil && *filter.Status == entity.StatusReadyForPickup &&
				filter.CustomerID == nil && filter.RestaurantID == nil && filter.RiderID == nil
		})).
		Return([]*entity.Order{}, nil)
	fx.orderRepo.EXPECT().
		ListOrders(ctx, mock.MatchedBy(func(filter repository.OrderFilter) bool {
			return filter.RiderID != nil && *filter.RiderID == riderID &&
				filter.Status != nil && *filter.Status == entity.StatusDelivered
		})).
		Return([]*entity.Order{}, nil)

	// A requested status narrows the rider-bound filter but never widens the
	// pinned ready pool.
	got, err := fx.service.ListOrders(ctx, riderActor(riderID), &usecase.ListOrdersInput{Status: &delivered})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestOrderService_ListOrders_AdminDefaultPageSize(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.orderRepo.EXPECT().
		ListOrders(ctx, mock.MatchedBy(func(filter repository.OrderFilter) bool {
			return filter.CustomerID == nil && filter.RestaurantID == nil &&
				filter.RiderID == nil && filter.Limit == 50
		})).
		Return([]*entity.Order{}, nil)

	got, err := fx.service.ListOrders(ctx, adminActor(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestOrderService_WatchOrders_CustomerSingleWatch(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customerID := uuid.New()
	watch := mockRepo.NewMockOrderWatch(t)

	fx.orderRepo.EXPECT().
		WatchOrders(ctx, mock.MatchedBy(func(filter repository.OrderFilter) bool {
			return filter.CustomerID != nil && *filter.CustomerID == customerID
		})).
		Return(watch, nil)

	got, err := fx.service.WatchOrders(ctx, customerActor(customerID))
	require.NoError(t, err)
	// A single-filter scope returns the repository watch unwrapped.
	assert.Same(t, watch, got)
}
