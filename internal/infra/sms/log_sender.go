// Package sms contains SMS delivery implementations for verification codes.
package sms

import (
	"context"
	"log/slog"

	"quickbite/internal/domain/service"
)

// logSender writes codes to the log instead of sending SMS. Development and
// test environments only; never wire this in production.
type logSender struct {
	logger *slog.Logger
}

// NewLogSender creates a sender that logs codes instead of delivering them.
func NewLogSender(logger *slog.Logger) service.SMSSender {
	return &logSender{logger: logger}
}

func (s *logSender) SendCode(ctx context.Context, phone, code string) error {
	s.logger.Info("[SMS] verification code issued",
		slog.String("phone", phone),
		slog.String("code", code),
	)

	return nil
}
