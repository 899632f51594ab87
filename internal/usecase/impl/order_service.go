package impl

import (
	"context"
	"crypto/rand"
	"log/slog"
	"sort"
	"time"

	"quickbite/config"
	deliverycontext "quickbite/internal/delivery/context"
	"quickbite/internal/domain/entity"
	domainerrors "quickbite/internal/domain/errors"
	"quickbite/internal/domain/repository"
	"quickbite/internal/domain/service"
	"quickbite/internal/errors"
	"quickbite/internal/infra/session"
	"quickbite/internal/usecase"

	"github.com/google/uuid"
)

type orderService struct {
	orderRepo   repository.OrderRepository
	catalogRepo repository.CatalogRepository
	userRepo    repository.UserRepository
	cartStore   *session.CartStore
	publisher   service.EventPublisher
	qrService   service.QRCodeService
	config      *config.Config
	logger      *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(
	orderRepo repository.OrderRepository,
	catalogRepo repository.CatalogRepository,
	userRepo repository.UserRepository,
	cartStore *session.CartStore,
	publisher service.EventPublisher,
	qrService service.QRCodeService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		orderRepo:   orderRepo,
		catalogRepo: catalogRepo,
		userRepo:    userRepo,
		cartStore:   cartStore,
		publisher:   publisher,
		qrService:   qrService,
		config:      cfg,
		logger:      logger,
	}
}

// PlaceOrder converts the customer's cart into a persisted order.
func (s *orderService) PlaceOrder(ctx context.Context, actor usecase.Actor, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	if actor.Role != entity.RoleCustomer {
		return nil, domainerrors.ErrForbidden
	}

	cart := s.cartStore.Get(actor.UserID)
	if cart.IsEmpty() {
		return nil, domainerrors.ErrEmptyCart
	}

	items, restaurantID, total, err := s.snapshotCart(ctx, cart)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindUserByID(ctx, actor.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "find customer")
	}
	location := user.LocationByID(input.LocationID)
	if location == nil {
		return nil, domainerrors.ErrLocationNotFound
	}

	pickupCode, err := generatePickupCode()
	if err != nil {
		return nil, errors.Wrap(err, "generate pickup code")
	}

	order := &entity.Order{
		CustomerID:   actor.UserID,
		RestaurantID: restaurantID,
		Items:        items,
		Total:        total,
		Status:       entity.StatusPending,
		Delivery:     *location,
		PickupCode:   pickupCode,
	}
	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		return nil, errors.Wrap(err, "create order")
	}

	// The cart is consumed only after the order is safely persisted.
	s.cartStore.Clear(actor.UserID)

	s.publishEvent(ctx, order, "", entity.StatusPending)
	s.logger.Info("Placed order",
		slog.String("order_id", order.ID.String()),
		slog.String("restaurant_id", order.RestaurantID.String()),
		slog.Float64("total", order.Total),
	)

	return order, nil
}

// snapshotCart turns cart lines into order item snapshots, recomputing the
// total from the live catalog. Prices held in the cart are display-only.
func (s *orderService) snapshotCart(ctx context.Context, cart entity.Cart) ([]entity.OrderItem, uuid.UUID, float64, error) {
	ids := make([]uuid.UUID, 0, len(cart.Items))
	for _, line := range cart.Items {
		ids = append(ids, line.MenuItemID)
	}

	menuItems, err := s.catalogRepo.FindMenuItemsByIDs(ctx, ids)
	if err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return nil, uuid.Nil, 0, domainerrors.ErrItemUnavailable.WithDetails("item no longer on the menu")
		}

		return nil, uuid.Nil, 0, errors.Wrap(err, "load cart items")
	}

	byID := make(map[uuid.UUID]*entity.MenuItem, len(menuItems))
	for _, item := range menuItems {
		byID[item.ID] = item
	}

	var restaurantID uuid.UUID
	items := make([]entity.OrderItem, 0, len(cart.Items))
	total := 0.0
	for _, line := range cart.Items {
		item := byID[line.MenuItemID]
		if !item.Available {
			return nil, uuid.Nil, 0, domainerrors.ErrItemUnavailable.WithDetails(item.Name)
		}
		if restaurantID == uuid.Nil {
			restaurantID = item.RestaurantID
		} else if restaurantID != item.RestaurantID {
			return nil, uuid.Nil, 0, domainerrors.ErrValidationFailed.WithDetails("cart spans multiple restaurants")
		}

		items = append(items, entity.OrderItem{
			MenuItemID: item.ID,
			Name:       item.Name,
			UnitPrice:  item.Price,
			Quantity:   line.Quantity,
		})
		total += item.Price * float64(line.Quantity)
	}

	return items, restaurantID, total, nil
}

// GetOrder returns one order visible to the actor.
func (s *orderService) GetOrder(ctx context.Context, actor usecase.Actor, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !s.canSee(actor, order) {
		return nil, domainerrors.ErrForbidden
	}

	return order, nil
}

// ListOrders returns the orders in the actor's scope, newest first.
func (s *orderService) ListOrders(ctx context.Context, actor usecase.Actor, input *usecase.ListOrdersInput) ([]*entity.Order, error) {
	if input == nil {
		input = &usecase.ListOrdersInput{}
	}

	filters, err := s.scopeFilters(actor)
	if err != nil {
		return nil, err
	}

	limit := input.Limit
	if actor.Role == entity.RoleAdmin && limit == 0 && s.config.Admin != nil {
		limit = s.config.Admin.PageSize
	}

	seen := make(map[uuid.UUID]struct{})
	orders := make([]*entity.Order, 0)
	for _, filter := range filters {
		// A scope may pin a status (the rider's ready pool); the requested
		// status only narrows filters that leave it open.
		if filter.Status == nil {
			filter.Status = input.Status
		}
		filter.Limit = limit

		scoped, err := s.orderRepo.ListOrders(ctx, filter)
		if err != nil {
			return nil, errors.Wrap(err, "list orders")
		}
		for _, order := range scoped {
			if _, ok := seen[order.ID]; ok {
				continue
			}
			seen[order.ID] = struct{}{}
			orders = append(orders, order)
		}
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	if limit > 0 && len(orders) > limit {
		orders = orders[:limit]
	}

	return orders, nil
}

// TransitionOrder advances an order one lifecycle step.
func (s *orderService) TransitionOrder(ctx context.Context, actor usecase.Actor, orderID uuid.UUID, to entity.OrderStatus) (*entity.Order, error) {
	order, err := s.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !s.canMutate(actor, order) {
		return nil, domainerrors.ErrForbidden
	}
	if !entity.CanTransition(order.Status, to, actor.Role) {
		return nil, domainerrors.ErrIllegalTransition
	}

	updated, err := s.orderRepo.UpdateOrderStatus(ctx, order.ID, order.Status, to)
	if err != nil {
		// A lost conditional write means the status moved underneath the
		// caller; from the new status this step may no longer be legal.
		if errors.Is(err, repository.ErrStatusConflict) {
			return nil, domainerrors.ErrIllegalTransition
		}
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "update order status")
	}

	s.publishEvent(ctx, updated, order.Status, to)

	return updated, nil
}

// ClaimOrder binds the acting rider to a READY_FOR_PICKUP order.
func (s *orderService) ClaimOrder(ctx context.Context, actor usecase.Actor, orderID uuid.UUID) (*entity.Order, error) {
	if actor.Role != entity.RoleDelivery {
		return nil, domainerrors.ErrForbidden
	}

	claimed, err := s.orderRepo.ClaimOrder(ctx, orderID, actor.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyClaimed) {
			return nil, domainerrors.ErrAssignmentConflict
		}
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "claim order")
	}

	s.publishEvent(ctx, claimed, entity.StatusReadyForPickup, entity.StatusPickedUp)
	s.logger.Info("Rider claimed order",
		slog.String("order_id", claimed.ID.String()),
		slog.String("rider_id", actor.UserID.String()),
	)

	return claimed, nil
}

// ClaimByPickupCode claims an order by its scanned pickup QR payload.
func (s *orderService) ClaimByPickupCode(ctx context.Context, actor usecase.Actor, qrData string) (*entity.Order, error) {
	if actor.Role != entity.RoleDelivery {
		return nil, domainerrors.ErrForbidden
	}

	code, err := s.qrService.ParsePickupQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unreadable pickup code")
	}

	order, err := s.orderRepo.FindOrderByPickupCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "find order by pickup code")
	}

	return s.ClaimOrder(ctx, actor, order.ID)
}

// PickupQR renders the QR image a restaurant displays for rider hand-off.
func (s *orderService) PickupQR(ctx context.Context, actor usecase.Actor, orderID uuid.UUID) ([]byte, error) {
	order, err := s.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	allowed := actor.Role == entity.RoleAdmin ||
		(actor.Role == entity.RoleRestaurant && actor.RestaurantID != nil && *actor.RestaurantID == order.RestaurantID)
	if !allowed {
		return nil, domainerrors.ErrForbidden
	}

	png, err := s.qrService.GeneratePickupQR(order.PickupCode)
	if err != nil {
		return nil, errors.Wrap(err, "generate pickup qr")
	}

	return png, nil
}

// WatchOrders opens a realtime stream of the actor's order scope.
func (s *orderService) WatchOrders(ctx context.Context, actor usecase.Actor) (repository.OrderWatch, error) {
	filters, err := s.scopeFilters(actor)
	if err != nil {
		return nil, err
	}

	watches := make([]repository.OrderWatch, 0, len(filters))
	for _, filter := range filters {
		watch, err := s.orderRepo.WatchOrders(ctx, filter)
		if err != nil {
			for _, open := range watches {
				open.Close()
			}

			return nil, errors.Wrap(err, "watch orders")
		}
		watches = append(watches, watch)
	}

	if len(watches) == 1 {
		return watches[0], nil
	}

	return newMergedWatch(watches), nil
}

// scopeFilters maps a role onto its order visibility. A rider sees the
// union of the unclaimed READY_FOR_PICKUP pool and its own bound orders,
// expressed as two filters.
func (s *orderService) scopeFilters(actor usecase.Actor) ([]repository.OrderFilter, error) {
	switch actor.Role {
	case entity.RoleCustomer:
		customerID := actor.UserID

		return []repository.OrderFilter{{CustomerID: &customerID}}, nil
	case entity.RoleRestaurant:
		if actor.RestaurantID == nil {
			return nil, domainerrors.ErrForbidden
		}

		return []repository.OrderFilter{{RestaurantID: actor.RestaurantID}}, nil
	case entity.RoleDelivery:
		riderID := actor.UserID
		ready := entity.StatusReadyForPickup

		return []repository.OrderFilter{
			{Status: &ready},
			{RiderID: &riderID},
		}, nil
	case entity.RoleAdmin:
		return []repository.OrderFilter{{}}, nil
	default:
		return nil, domainerrors.ErrForbidden
	}
}

func (s *orderService) findOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "find order")
	}

	return order, nil
}

func (s *orderService) canSee(actor usecase.Actor, order *entity.Order) bool {
	switch actor.Role {
	case entity.RoleAdmin:
		return true
	case entity.RoleCustomer:
		return order.CustomerID == actor.UserID
	case entity.RoleRestaurant:
		return actor.RestaurantID != nil && *actor.RestaurantID == order.RestaurantID
	case entity.RoleDelivery:
		if order.RiderID != nil {
			return *order.RiderID == actor.UserID
		}

		return order.Status == entity.StatusReadyForPickup
	default:
		return false
	}
}

// canMutate is canSee minus the rider pool: a rider mutates only orders it
// is bound to.
func (s *orderService) canMutate(actor usecase.Actor, order *entity.Order) bool {
	if actor.Role == entity.RoleDelivery {
		return order.RiderID != nil && *order.RiderID == actor.UserID
	}

	return s.canSee(actor, order)
}

func (s *orderService) publishEvent(ctx context.Context, order *entity.Order, from, to entity.OrderStatus) {
	event := &service.OrderEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:      order.ID.String(),
		CustomerID:   order.CustomerID.String(),
		RestaurantID: order.RestaurantID.String(),
		ToStatus:     to.String(),
		Total:        order.Total,
		OccurredAt:   time.Now().UTC(),
	}
	if from != "" {
		event.FromStatus = from.String()
	}
	if order.RiderID != nil {
		event.RiderID = order.RiderID.String()
	}

	// Push fan-out is best-effort; the order watch remains the source of
	// truth for views.
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish order event",
			slog.String("order_id", event.OrderID),
			slog.String("to_status", event.ToStatus),
			slog.Any("error", err),
		)
	}
}

const pickupCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// generatePickupCode returns an 8-character hand-off token without
// look-alike characters.
func generatePickupCode() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = pickupCodeAlphabet[int(b)%len(pickupCodeAlphabet)]
	}

	return string(buf), nil
}
