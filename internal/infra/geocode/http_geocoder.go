// Package geocode implements the reverse geocoding collaborator over a
// Nominatim-compatible HTTP endpoint.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"quickbite/config"
	"quickbite/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

const defaultTimeout = 5 * time.Second

type httpGeocoder struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPGeocoder creates a reverse geocoder against the configured endpoint.
func NewHTTPGeocoder(cfg *config.Config, logger *slog.Logger) (service.ReverseGeocoder, error) {
	if cfg.Geocode == nil || cfg.Geocode.Endpoint == "" {
		return nil, errors.New("geocode endpoint must be configured")
	}

	timeout := cfg.Geocode.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &httpGeocoder{
		endpoint:   cfg.Geocode.Endpoint,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

type reverseResponse struct {
	DisplayName string `json:"display_name"`
}

// ReverseGeocode resolves a lon/lat point to a human-readable address.
// Any collaborator failure is reported as ErrReverseGeocodeUnavailable so
// callers can fall back to raw coordinates.
func (g *httpGeocoder) ReverseGeocode(ctx context.Context, point orb.Point) (string, error) {
	query := url.Values{}
	query.Set("format", "jsonv2")
	query.Set("lat", fmt.Sprintf("%.6f", point.Lat()))
	query.Set("lon", fmt.Sprintf("%.6f", point.Lon()))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return "", errors.WithStack(err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.logger.Warn("reverse geocode request failed", slog.Any("error", err))

		return "", service.ErrReverseGeocodeUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		g.logger.Warn("reverse geocode returned non-OK status", slog.Int("status", resp.StatusCode))

		return "", service.ErrReverseGeocodeUnavailable
	}

	var decoded reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", service.ErrReverseGeocodeUnavailable
	}

	if decoded.DisplayName == "" {
		return "", service.ErrReverseGeocodeUnavailable
	}

	return decoded.DisplayName, nil
}
