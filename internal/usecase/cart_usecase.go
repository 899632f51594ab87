package usecase

import (
	"context"

	"quickbite/internal/domain/entity"

	"github.com/google/uuid"
)

// CartView is the cart as returned to the client, with a display subtotal.
type CartView struct {
	Items    []entity.CartItem `json:"items"`
	Subtotal float64           `json:"subtotal"`
}

// CartUsecase defines the pre-placement cart operations. The cart lives in
// the customer's session and is cleared when an order is placed from it.
type CartUsecase interface {
	// GetCart returns the customer's current cart.
	GetCart(ctx context.Context, customerID uuid.UUID) (*CartView, error)

	// AddItem merges a catalog item into the cart. The item must exist and
	// be available; adding one already present increments its quantity.
	AddItem(ctx context.Context, customerID, menuItemID uuid.UUID, quantity int) (*CartView, error)

	// SetQuantity changes the quantity of a line already in the cart. A
	// quantity of zero removes the line.
	SetQuantity(ctx context.Context, customerID, menuItemID uuid.UUID, quantity int) (*CartView, error)

	// RemoveItem drops a line from the cart.
	RemoveItem(ctx context.Context, customerID, menuItemID uuid.UUID) (*CartView, error)

	// ClearCart empties the cart.
	ClearCart(ctx context.Context, customerID uuid.UUID) error
}
