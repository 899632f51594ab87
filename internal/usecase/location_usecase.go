package usecase

import (
	"context"

	"quickbite/internal/domain/entity"

	"github.com/google/uuid"
)

// SaveLocationInput represents the input for saving a delivery location.
// The address is resolved by reverse geocoding; when that fails, the raw
// coordinates are kept as the address text.
type SaveLocationInput struct {
	ID        *uuid.UUID           `json:"id,omitempty"` // Set to replace an existing location.
	Label     entity.LocationLabel `json:"label" validate:"required"`
	Landmark  string               `json:"landmark"`
	Latitude  float64              `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64              `json:"longitude" validate:"gte=-180,lte=180"`
}

// ResolveAddressInput carries the coordinates for an address preview.
type ResolveAddressInput struct {
	Latitude  float64 `query:"latitude" json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `query:"longitude" json:"longitude" validate:"gte=-180,lte=180"`
}

// LocationUsecase defines saved delivery location management for customers.
type LocationUsecase interface {
	// ListLocations returns the customer's saved locations.
	ListLocations(ctx context.Context, userID uuid.UUID) ([]entity.Location, error)

	// SaveLocation adds or replaces a saved location, geocoding the
	// coordinates into an address.
	SaveLocation(ctx context.Context, userID uuid.UUID, input *SaveLocationInput) (*entity.Location, error)

	// DeleteLocation removes a saved location.
	DeleteLocation(ctx context.Context, userID, locationID uuid.UUID) error

	// ResolveAddress reverse-geocodes coordinates into an address preview
	// without saving anything.
	ResolveAddress(ctx context.Context, latitude, longitude float64) (string, error)
}
