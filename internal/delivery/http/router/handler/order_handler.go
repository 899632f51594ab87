package handler

import (
	"encoding/json"
	"fmt"
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

// OrderHandler holds dependencies for order lifecycle handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// PlaceOrder converts the caller's cart into an order.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	var input *usecase.PlaceOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.PlaceOrder(c.Request().Context(), middleware.GetActor(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order placed")
}

// GetOrder returns one order visible to the caller.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order id")
	}

	order, err := h.uc.GetOrder(c.Request().Context(), middleware.GetActor(c), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// ListOrders returns the caller's order scope, newest first.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	input := &usecase.ListOrdersInput{}
	if raw := c.QueryParam("status"); raw != "" {
		status := entity.OrderStatus(raw)
		input.Status = &status
	}
	if raw := c.QueryParam("limit"); raw != "" {
		if _, err := fmt.Sscanf(raw, "%d", &input.Limit); err != nil || input.Limit < 0 {
			return response.BindingError(c, "INVALID_INPUT", "Invalid limit")
		}
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), middleware.GetActor(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

type transitionInput struct {
	To entity.OrderStatus `json:"to" validate:"required"`
}

// Transition advances an order one lifecycle step.
func (h *OrderHandler) Transition(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order id")
	}

	var input transitionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid transition input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.TransitionOrder(c.Request().Context(), middleware.GetActor(c), orderID, input.To)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order updated")
}

// Claim binds the acting rider to an order.
func (h *OrderHandler) Claim(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order id")
	}

	order, err := h.uc.ClaimOrder(c.Request().Context(), middleware.GetActor(c), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order claimed")
}

type claimByCodeInput struct {
	QRData string `json:"qr_data" validate:"required"`
}

// ClaimByCode claims an order from a scanned pickup QR payload.
func (h *OrderHandler) ClaimByCode(c echo.Context) error {
	var input claimByCodeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid claim input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.ClaimByPickupCode(c.Request().Context(), middleware.GetActor(c), input.QRData)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order claimed")
}

// PickupQR streams the hand-off QR image for an order.
func (h *OrderHandler) PickupQR(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order id")
	}

	png, err := h.uc.PickupQR(c.Request().Context(), middleware.GetActor(c), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Feed streams order snapshots for the caller's scope as server-sent
// events. The stream ends when the client disconnects.
func (h *OrderHandler) Feed(c echo.Context) error {
	ctx := c.Request().Context()

	watch, err := h.uc.WatchOrders(ctx, middleware.GetActor(c))
	if err != nil {
		return errors.WithStack(err)
	}
	defer watch.Close()

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	for {
		select {
		case <-ctx.Done():
			return nil
		case snapshot, ok := <-watch.Events():
			if !ok {
				if err := watch.Err(); err != nil {
					h.logger.Warn("Order feed ended with error", slog.Any("error", err))
				}

				return nil
			}

			payload, err := json.Marshal(snapshot)
			if err != nil {
				return errors.WithStack(err)
			}
			if _, err := fmt.Fprintf(res, "event: orders\ndata: %s\n\n", payload); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}
