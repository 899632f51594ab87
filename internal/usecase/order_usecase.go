package usecase

import (
	"context"

	"quickbite/internal/domain/entity"
	"quickbite/internal/domain/repository"

	"github.com/google/uuid"
)

// PlaceOrderInput represents the input for converting a cart into an order.
type PlaceOrderInput struct {
	// LocationID selects one of the customer's saved delivery locations; it
	// is copied into the order by value.
	LocationID uuid.UUID `json:"location_id" validate:"required"`
}

// ListOrdersInput narrows an order listing within the actor's role scope.
type ListOrdersInput struct {
	Status *entity.OrderStatus `json:"status,omitempty"`
	Limit  int                 `json:"limit,omitempty" validate:"gte=0"`
}

// OrderUsecase defines the order lifecycle operations. Every method resolves
// its scope from the actor, never from request payloads.
type OrderUsecase interface {
	// PlaceOrder converts the customer's cart into a persisted order:
	// availability is checked and the total recomputed from the live
	// catalog, then the cart is cleared.
	PlaceOrder(ctx context.Context, actor Actor, input *PlaceOrderInput) (*entity.Order, error)

	// GetOrder returns one order visible to the actor.
	GetOrder(ctx context.Context, actor Actor, orderID uuid.UUID) (*entity.Order, error)

	// ListOrders returns the orders in the actor's scope, newest first.
	ListOrders(ctx context.Context, actor Actor, input *ListOrdersInput) ([]*entity.Order, error)

	// TransitionOrder advances an order one lifecycle step. Illegal steps
	// and lost conditional writes both fail without changing the record.
	TransitionOrder(ctx context.Context, actor Actor, orderID uuid.UUID, to entity.OrderStatus) (*entity.Order, error)

	// ClaimOrder binds the acting rider to a READY_FOR_PICKUP order.
	// Exactly one concurrent claimant wins.
	ClaimOrder(ctx context.Context, actor Actor, orderID uuid.UUID) (*entity.Order, error)

	// ClaimByPickupCode claims an order by its scanned pickup QR payload.
	ClaimByPickupCode(ctx context.Context, actor Actor, qrData string) (*entity.Order, error)

	// PickupQR renders the QR image a restaurant displays for rider
	// hand-off.
	PickupQR(ctx context.Context, actor Actor, orderID uuid.UUID) ([]byte, error)

	// WatchOrders opens a realtime stream of the actor's order scope. The
	// caller must Close the watch.
	WatchOrders(ctx context.Context, actor Actor) (repository.OrderWatch, error)
}
