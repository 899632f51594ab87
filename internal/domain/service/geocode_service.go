package service

import (
	"context"

	"quickbite/internal/errors"

	"github.com/paulmach/orb"
)

// ErrReverseGeocodeUnavailable is returned when the geocoding collaborator
// cannot resolve the coordinates. Callers fall back to raw coordinates.
var ErrReverseGeocodeUnavailable = errors.New("reverse geocoding unavailable")

// ReverseGeocoder resolves device coordinates to a human-readable address.
type ReverseGeocoder interface {
	// ReverseGeocode returns the address for a lon/lat point.
	ReverseGeocode(ctx context.Context, point orb.Point) (string, error)
}
