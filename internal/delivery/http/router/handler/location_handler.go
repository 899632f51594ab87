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

// LocationHandler holds dependencies for saved-location handlers.
type LocationHandler struct {
	uc     usecase.LocationUsecase
	logger *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler, injected by Fx.
func NewLocationHandler(uc usecase.LocationUsecase, logger *slog.Logger) *LocationHandler {
	return &LocationHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListLocations returns the caller's saved delivery locations.
func (h *LocationHandler) ListLocations(c echo.Context) error {
	actor := middleware.GetActor(c)

	locations, err := h.uc.ListLocations(c.Request().Context(), actor.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, locations, "")
}

// SaveLocation adds or replaces a saved delivery location.
func (h *LocationHandler) SaveLocation(c echo.Context) error {
	var input *usecase.SaveLocationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	actor := middleware.GetActor(c)
	location, err := h.uc.SaveLocation(c.Request().Context(), actor.UserID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, location, "Location saved")
}

// ResolveAddress previews the address for a pair of coordinates.
func (h *LocationHandler) ResolveAddress(c echo.Context) error {
	var input *usecase.ResolveAddressInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid coordinates")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	address, err := h.uc.ResolveAddress(c.Request().Context(), input.Latitude, input.Longitude)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, echo.Map{"address": address}, "")
}

// DeleteLocation removes a saved delivery location.
func (h *LocationHandler) DeleteLocation(c echo.Context) error {
	locationID, err := uuid.Parse(c.Param("locationId"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location id")
	}

	actor := middleware.GetActor(c)
	if err := h.uc.DeleteLocation(c.Request().Context(), actor.UserID, locationID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Location deleted")
}
