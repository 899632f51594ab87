package impl

import (
	"context"

	"quickbite/internal/domain/entity"
	domainerrors "quickbite/internal/domain/errors"
	"quickbite/internal/domain/repository"
	"quickbite/internal/errors"
	"quickbite/internal/infra/session"
	"quickbite/internal/usecase"

	"github.com/google/uuid"
)

type cartService struct {
	cartStore   *session.CartStore
	catalogRepo repository.CatalogRepository
}

// NewCartService creates a new cart service instance
func NewCartService(cartStore *session.CartStore, catalogRepo repository.CatalogRepository) usecase.CartUsecase {
	return &cartService{
		cartStore:   cartStore,
		catalogRepo: catalogRepo,
	}
}

// GetCart returns the customer's current cart.
func (s *cartService) GetCart(ctx context.Context, customerID uuid.UUID) (*usecase.CartView, error) {
	cart := s.cartStore.Get(customerID)

	return cartView(cart), nil
}

// AddItem merges a catalog item into the cart.
func (s *cartService) AddItem(ctx context.Context, customerID, menuItemID uuid.UUID, quantity int) (*usecase.CartView, error) {
	if quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	item, err := s.catalogRepo.FindMenuItemByID(ctx, menuItemID)
	if err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return nil, domainerrors.ErrMenuItemNotFound
		}

		return nil, errors.Wrap(err, "find menu item")
	}
	if !item.Available {
		return nil, domainerrors.ErrItemUnavailable.WithDetails(item.Name)
	}

	cart := s.cartStore.Update(customerID, func(cart *entity.Cart) {
		cart.Add(entity.CartItem{
			MenuItemID: item.ID,
			Name:       item.Name,
			UnitPrice:  item.Price,
			Quantity:   quantity,
		})
	})

	return cartView(cart), nil
}

// SetQuantity changes the quantity of a line already in the cart.
func (s *cartService) SetQuantity(ctx context.Context, customerID, menuItemID uuid.UUID, quantity int) (*usecase.CartView, error) {
	if quantity < 0 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	found := false
	cart := s.cartStore.Update(customerID, func(cart *entity.Cart) {
		found = cart.SetQuantity(menuItemID, quantity)
	})
	if !found {
		return nil, domainerrors.ErrMenuItemNotFound.WithDetails("item not in cart")
	}

	return cartView(cart), nil
}

// RemoveItem drops a line from the cart.
func (s *cartService) RemoveItem(ctx context.Context, customerID, menuItemID uuid.UUID) (*usecase.CartView, error) {
	found := false
	cart := s.cartStore.Update(customerID, func(cart *entity.Cart) {
		found = cart.Remove(menuItemID)
	})
	if !found {
		return nil, domainerrors.ErrMenuItemNotFound.WithDetails("item not in cart")
	}

	return cartView(cart), nil
}

// ClearCart empties the cart.
func (s *cartService) ClearCart(ctx context.Context, customerID uuid.UUID) error {
	s.cartStore.Clear(customerID)

	return nil
}

func cartView(cart entity.Cart) *usecase.CartView {
	items := cart.Items
	if items == nil {
		items = []entity.CartItem{}
	}

	return &usecase.CartView{
		Items:    items,
		Subtotal: cart.Subtotal(),
	}
}
