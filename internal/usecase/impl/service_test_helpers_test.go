package impl

import (
	"io"
	"log/slog"
	"time"

	"quickbite/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			CodeTTL:            5 * time.Minute,
			MaxConfirmAttempts: 3,
			MaxCodesPerHour:    5,
		},
		Admin: &config.AdminConfig{
			PageSize: 50,
		},
	}
}
