package handler

import (
	"log/slog"
	"net/http"

	"quickbite/internal/delivery/http/middleware"
	"quickbite/internal/delivery/http/response"
	"quickbite/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for phone-login handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

type requestCodeInput struct {
	Phone string `json:"phone" validate:"required,e164"`
}

// RequestCode handles issuing a phone verification challenge.
func (h *AuthHandler) RequestCode(c echo.Context) error {
	var input requestCodeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request-code input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.RequestCode(c.Request().Context(), input.Phone)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Verification code sent")
}

// ConfirmCode handles code verification and completes the login.
func (h *AuthHandler) ConfirmCode(c echo.Context) error {
	var input *usecase.ConfirmCodeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid confirm-code input")
	}

	output, err := h.uc.ConfirmCode(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

type refreshInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Refresh handles the token refresh request.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var input refreshInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.RefreshTokens(c.Request().Context(), input.RefreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Tokens refreshed")
}

type fcmTokenInput struct {
	Token string `json:"token" validate:"required"`
}

// RegisterFCMToken records the caller's device token for status pushes.
func (h *AuthHandler) RegisterFCMToken(c echo.Context) error {
	var input fcmTokenInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	actor := middleware.GetActor(c)
	if err := h.uc.RegisterFCMToken(c.Request().Context(), actor.UserID, input.Token); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Device token registered")
}
