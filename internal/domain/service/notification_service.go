package service

import "context"

// NotificationService sends push notifications to registered devices.
type NotificationService interface {
	// SendSingleNotification sends a push notification to one device token.
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}
