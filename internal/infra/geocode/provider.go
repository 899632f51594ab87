package geocode

import (
	"context"
	"log/slog"

	"quickbite/config"
	"quickbite/internal/domain/service"

	"github.com/paulmach/orb"
)

// unavailableGeocoder is used when no endpoint is configured. Callers
// already fall back to raw coordinates on this error.
type unavailableGeocoder struct{}

func (unavailableGeocoder) ReverseGeocode(ctx context.Context, point orb.Point) (string, error) {
	return "", service.ErrReverseGeocodeUnavailable
}

// NewGeocoder creates a ReverseGeocoder based on configuration.
func NewGeocoder(cfg *config.Config, logger *slog.Logger) (service.ReverseGeocoder, error) {
	if cfg.Geocode == nil || cfg.Geocode.Endpoint == "" {
		logger.Info("Geocoding not configured, addresses fall back to coordinates")

		return unavailableGeocoder{}, nil
	}

	return NewHTTPGeocoder(cfg, logger)
}
