// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"

	"github.com/google/uuid"
)

// LocationLabel is a user-facing tag on a saved location.
type LocationLabel string

const (
	LabelHome  LocationLabel = "home"
	LabelWork  LocationLabel = "work"
	LabelOther LocationLabel = "other"
)

// String returns the string representation of the LocationLabel.
func (l LocationLabel) String() string {
	return string(l)
}

// IsValid checks if the LocationLabel is a valid value.
func (l LocationLabel) IsValid() bool {
	switch l {
	case LabelHome, LabelWork, LabelOther:
		return true
	default:
		return false
	}
}

// Location is a geocoded address. It is owned by a customer profile and
// copied by value into an order at placement, so later address edits never
// retroactively alter a placed order.
type Location struct {
	ID        uuid.UUID     // Identifier within the owning profile.
	Label     LocationLabel // home, work or other.
	Address   string        // Human-readable address, possibly geocoded.
	Landmark  string        // Optional free-text landmark.
	Latitude  float64       // Geographic latitude.
	Longitude float64       // Geographic longitude.
}

// CoordinateString renders the raw coordinates, used as the address fallback
// when reverse geocoding is unavailable.
func (l Location) CoordinateString() string {
	return fmt.Sprintf("%.6f, %.6f", l.Latitude, l.Longitude)
}
