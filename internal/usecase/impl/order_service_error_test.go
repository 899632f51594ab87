package impl

import (
	"context"
	"testing"

	"quickbite/internal/domain/entity"
	domainerrors "quickbite/internal/domain/errors"
	"quickbite/internal/domain/repository"
	mockRepo "quickbite/internal/mocks/repository"
	"quickbite/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestOrderService_PlaceOrder_EmptyCart(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	_, err := fx.service.PlaceOrder(ctx, customerActor(uuid.New()), &usecase.PlaceOrderInput{LocationID: uuid.New()})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyCart))
}

func TestOrderService_PlaceOrder_NotCustomer(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	_, err := fx.service.PlaceOrder(ctx, riderActor(uuid.New()), &usecase.PlaceOrderInput{LocationID: uuid.New()})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestOrderService_PlaceOrder_UnavailableItemKeepsCart(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customerID := uuid.New()
	item := &entity.MenuItem{
		ID:           uuid.New(),
		RestaurantID: uuid.New(),
		Name:         "Burger",
		Price:        120,
		Available:    false,
	}

	fx.cartStore.Update(customerID, func(cart *entity.Cart) {
		cart.Add(entity.CartItem{MenuItemID: item.ID, Name: item.Name, UnitPrice: 120, Quantity: 1})
	})

	fx.catalogRepo.EXPECT().
		FindMenuItemsByIDs(ctx, []uuid.UUID{item.ID}).
		Return([]*entity.MenuItem{item}, nil)

	_, err := fx.service.PlaceOrder(ctx, customerActor(customerID), &usecase.PlaceOrderInput{LocationID: uuid.New()})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrItemUnavailable))

	// A rejected placement leaves the cart untouched.
	assert.False(t, fx.cartStore.Get(customerID).IsEmpty())
}

func TestOrderService_PlaceOrder_CartSpansRestaurants(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customerID := uuid.New()
	burger := &entity.MenuItem{ID: uuid.New(), RestaurantID: uuid.New(), Name: "Burger", Price: 120, Available: true}
	sushi := &entity.MenuItem{ID: uuid.New(), RestaurantID: uuid.New(), Name: "Sushi", Price: 200, Available: true}

	fx.cartStore.Update(customerID, func(cart *entity.Cart) {
		cart.Add(entity.CartItem{MenuItemID: burger.ID, Quantity: 1})
		cart.Add(entity.CartItem{MenuItemID: sushi.ID, Quantity: 1})
	})

	fx.catalogRepo.EXPECT().
		FindMenuItemsByIDs(ctx, []uuid.UUID{burger.ID, sushi.ID}).
		Return([]*entity.MenuItem{burger, sushi}, nil)

	_, err := fx.service.PlaceOrder(ctx, customerActor(customerID), &usecase.PlaceOrderInput{LocationID: uuid.New()})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderService_PlaceOrder_LocationNotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customerID := uuid.New()
	item := &entity.MenuItem{ID: uuid.New(), RestaurantID: uuid.New(), Name: "Burger", Price: 120, Available: true}

	fx.cartStore.Update(customerID, func(cart *entity.Cart) {
		cart.Add(entity.CartItem{MenuItemID: item.ID, Quantity: 1})
	})

	fx.catalogRepo.EXPECT().
		FindMenuItemsByIDs(ctx, []uuid.UUID{item.ID}).
		Return([]*entity.MenuItem{item}, nil)
	fx.userRepo.EXPECT().
		FindUserByID(ctx, customerID).
		Return(&entity.UserProfile{ID: customerID, Role: entity.RoleCustomer}, nil)

	_, err := fx.service.PlaceOrder(ctx, customerActor(customerID), &usecase.PlaceOrderInput{LocationID: uuid.New()})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrLocationNotFound))
	assert.False(t, fx.cartStore.Get(customerID).IsEmpty())
}

func TestOrderService_TransitionOrder_IllegalStep(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	restaurantID := uuid.New()
	order := &entity.Order{
		ID:           uuid.New(),
		RestaurantID: restaurantID,
		Status:       entity.StatusPending,
	}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)

	// Skipping ACCEPTED is not a legal step, so no write is attempted.
	_, err := fx.service.TransitionOrder(ctx, restaurantActor(uuid.New(), restaurantID), order.ID, entity.StatusPreparing)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrIllegalTransition))
}

func TestOrderService_TransitionOrder_TerminalStatusImmutable(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	restaurantID := uuid.New()
	order := &entity.Order{
		ID:           uuid.New(),
		RestaurantID: restaurantID,
		Status:       entity.StatusDelivered,
	}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)

	_, err := fx.service.TransitionOrder(ctx, restaurantActor(uuid.New(), restaurantID), order.ID, entity.StatusCancelled)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrIllegalTransition))
}

func TestOrderService_TransitionOrder_LostConditionalWrite(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	restaurantID := uuid.New()
	order := &entity.Order{
		ID:           uuid.New(),
		RestaurantID: restaurantID,
		Status:       entity.StatusPending,
	}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().
		UpdateOrderStatus(ctx, order.ID, entity.StatusPending, entity.StatusAccepted).
		Return(nil, repository.ErrStatusConflict)

	_, err := fx.service.TransitionOrder(ctx, restaurantActor(uuid.New(), restaurantID), order.ID, entity.StatusAccepted)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrIllegalTransition))
}

func TestOrderService_TransitionOrder_RiderUnboundForbidden(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := &entity.Order{
		ID:     uuid.New(),
		Status: entity.StatusReadyForPickup,
	}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)

	// A rider may read the unclaimed pool but mutates only bound orders.
	_, err := fx.service.TransitionOrder(ctx, riderActor(uuid.New()), order.ID, entity.StatusPickedUp)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestOrderService_TransitionOrder_RiderCannotCancel(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	riderID := uuid.New()
	order := &entity.Order{
		ID:      uuid.New(),
		RiderID: &riderID,
		Status:  entity.StatusPickedUp,
	}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)

	_, err := fx.service.TransitionOrder(ctx, riderActor(riderID), order.ID, entity.StatusCancelled)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrIllegalTransition))
}

func TestOrderService_ClaimOrder_Conflict(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		ClaimOrder(ctx, orderID, mock.AnythingOfType("uuid.UUID")).
		Return(nil, repository.ErrAlreadyClaimed)

	_, err := fx.service.ClaimOrder(ctx, riderActor(uuid.New()), orderID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAssignmentConflict))
}

func TestOrderService_ClaimOrder_NotRider(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	_, err := fx.service.ClaimOrder(ctx, customerActor(uuid.New()), uuid.New())

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestOrderService_ClaimByPickupCode_UnreadableCode(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.qrService.EXPECT().ParsePickupQR("scribble").Return("", errors.New("invalid payload"))

	_, err := fx.service.ClaimByPickupCode(ctx, riderActor(uuid.New()), "scribble")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderService_GetOrder_OtherCustomerForbidden(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := &entity.Order{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		Status:     entity.StatusPending,
	}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)

	_, err := fx.service.GetOrder(ctx, customerActor(uuid.New()), order.ID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestOrderService_GetOrder_RiderCannotSeePendingPool(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := &entity.Order{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		Status:     entity.StatusPending,
	}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)

	_, err := fx.service.GetOrder(ctx, riderActor(uuid.New()), order.ID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().FindOrderByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.GetOrder(ctx, adminActor(), orderID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_PickupQR_OtherRestaurantForbidden(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := &entity.Order{
		ID:           uuid.New(),
		RestaurantID: uuid.New(),
		Status:       entity.StatusReadyForPickup,
		PickupCode:   "ABCD2345",
	}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)

	_, err := fx.service.PickupQR(ctx, restaurantActor(uuid.New(), uuid.New()), order.ID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestOrderService_WatchOrders_SecondFilterFailureClosesFirst(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	riderID := uuid.New()
	first := mockRepo.NewMockOrderWatch(t)
	first.EXPECT().Close().Return()

	fx.orderRepo.EXPECT().
		WatchOrders(ctx, mock.MatchedBy(func(filter repository.OrderFilter) bool {
			return filter.Status != nil
		})).
		Return(first, nil)
	fx.orderRepo.EXPECT().
		WatchOrders(ctx, mock.MatchedBy(func(filter repository.OrderFilter) bool {
			return filter.RiderID != nil
		})).
		Return(nil, errors.New("stream setup failed"))

	_, err := fx.service.WatchOrders(ctx, riderActor(riderID))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "watch orders")
}
