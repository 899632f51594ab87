// Package handler contains the worker's Pub/Sub push handlers.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"quickbite/config"
	deliverycontext "quickbite/internal/delivery/context"
	"quickbite/internal/domain/entity"
	"quickbite/internal/domain/repository"
	"quickbite/internal/domain/service"
	"quickbite/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

const envDevelop = "develop"

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler turns order lifecycle events into device pushes.
type PushHandler struct {
	verifyPushAuth  bool
	logger          *slog.Logger
	notificationSvc service.NotificationService
	userRepo        repository.UserRepository
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	NotificationSvc service.NotificationService
	UserRepo        repository.UserRepository
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == pubsub.ProviderGoogle &&
		params.Config.Env.Env != envDevelop

	return &PushHandler{
		verifyPushAuth:  verifyPushAuth,
		logger:          params.Logger,
		notificationSvc: params.NotificationSvc,
		userRepo:        params.UserRepo,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify the Pub/Sub token in production for the Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.OrderEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse order event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing order event",
		slog.String("order_id", event.OrderID),
		slog.String("to_status", event.ToStatus),
	)

	if err := h.processEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process order event",
			slog.String("order_id", event.OrderID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// 503 triggers a Pub/Sub retry; 200 swallows events that can never
		// succeed so they don't loop forever.
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.OrderEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// processEvent pushes the status change to the customer's device.
func (h *PushHandler) processEvent(ctx context.Context, event *service.OrderEvent) error {
	if h.notificationSvc == nil {
		h.logger.Debug("[Worker] Push notifications disabled, skipping",
			slog.String("order_id", event.OrderID),
		)

		return nil
	}

	customerID, err := uuid.Parse(event.CustomerID)
	if err != nil {
		return errors.WithStack(err)
	}

	customer, err := h.userRepo.FindUserByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.WithStack(err)
		}

		return newRetryableError(errors.WithStack(err))
	}
	if customer.FCMToken == "" {
		h.logger.Info("[Worker] Customer has no registered device",
			slog.String("order_id", event.OrderID),
		)

		return nil
	}

	title, body := notificationContent(event)
	data := map[string]string{
		"order_id":  event.OrderID,
		"to_status": event.ToStatus,
	}

	if err := h.notificationSvc.SendSingleNotification(ctx, customer.FCMToken, title, body, data); err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	h.logger.Info("[Worker] Push sent",
		slog.String("order_id", event.OrderID),
		slog.String("to_status", event.ToStatus),
	)

	return nil
}

// notificationContent maps a lifecycle step to customer-facing copy.
func notificationContent(event *service.OrderEvent) (title, body string) {
	title = "Order update"
	switch entity.OrderStatus(event.ToStatus) {
	case entity.StatusPending:
		title = "Order placed"
		body = "Your order has been placed and sent to the restaurant."
	case entity.StatusAccepted:
		body = "The restaurant accepted your order."
	case entity.StatusPreparing:
		body = "Your order is being prepared."
	case entity.StatusReadyForPickup:
		body = "Your order is ready and waiting for a rider."
	case entity.StatusPickedUp:
		body = "A rider picked up your order."
	case entity.StatusArriving:
		body = "Your order is almost there."
	case entity.StatusDelivered:
		title = "Order delivered"
		body = "Enjoy your meal!"
	case entity.StatusCancelled:
		title = "Order cancelled"
		body = "Your order has been cancelled."
	default:
		body = fmt.Sprintf("Your order is now %s.", event.ToStatus)
	}

	return title, body
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience must match this endpoint's URL
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
