package handler

import (
	"log/slog"
	"net/http"

	"quickbite/internal/delivery/http/middleware"
	"quickbite/internal/delivery/http/response"
	"quickbite/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for cart handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetCart returns the caller's current cart.
func (h *CartHandler) GetCart(c echo.Context) error {
	actor := middleware.GetActor(c)

	cart, err := h.uc.GetCart(c.Request().Context(), actor.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "")
}

type cartItemInput struct {
	MenuItemID uuid.UUID `json:"menu_item_id" validate:"required"`
	Quantity   int       `json:"quantity" validate:"gte=0"`
}

// AddItem merges a catalog item into the cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	var input cartItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	actor := middleware.GetActor(c)
	cart, err := h.uc.AddItem(c.Request().Context(), actor.UserID, input.MenuItemID, input.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Item added")
}

// SetQuantity changes the quantity of a line already in the cart.
func (h *CartHandler) SetQuantity(c echo.Context) error {
	var input cartItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	actor := middleware.GetActor(c)
	cart, err := h.uc.SetQuantity(c.Request().Context(), actor.UserID, input.MenuItemID, input.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Quantity updated")
}

// RemoveItem drops a line from the cart.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	menuItemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item id")
	}

	actor := middleware.GetActor(c)
	cart, err := h.uc.RemoveItem(c.Request().Context(), actor.UserID, menuItemID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Item removed")
}

// ClearCart empties the cart.
func (h *CartHandler) ClearCart(c echo.Context) error {
	actor := middleware.GetActor(c)
	if err := h.uc.ClearCart(c.Request().Context(), actor.UserID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart cleared")
}
