package handler

import (
	"log/slog"
	"net/http"

	"quickbite/internal/delivery/http/middleware"
	"quickbite/internal/delivery/http/response"
	"quickbite/internal/domain/entity"
	"quickbite/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for menu handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateMenuItem publishes a catalog entry for the caller's restaurant.
func (h *CatalogHandler) CreateMenuItem(c echo.Context) error {
	var input *usecase.CreateMenuItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid menu item input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	item, err := h.uc.CreateMenuItem(c.Request().Context(), middleware.GetActor(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "Menu item published")
}

// ListMenu returns a restaurant's catalog, optionally filtered by category.
func (h *CatalogHandler) ListMenu(c echo.Context) error {
	restaurantID, err := uuid.Parse(c.Param("restaurantId"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid restaurant id")
	}

	var category *entity.Category
	if raw := c.QueryParam("category"); raw != "" {
		value := entity.Category(raw)
		category = &value
	}

	items, err := h.uc.ListMenu(c.Request().Context(), restaurantID, category)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "")
}

// UpdateMenuItem applies a price/availability change.
func (h *CatalogHandler) UpdateMenuItem(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item id")
	}

	var input *usecase.UpdateMenuItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid menu item update")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	item, err := h.uc.UpdateMenuItem(c.Request().Context(), middleware.GetActor(c), itemID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "Menu item updated")
}

// DeleteMenuItem removes a catalog entry.
func (h *CatalogHandler) DeleteMenuItem(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item id")
	}

	if err := h.uc.DeleteMenuItem(c.Request().Context(), middleware.GetActor(c), itemID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Menu item deleted")
}
