package impl

import (
	"context"
	"log/slog"

	"quickbite/internal/domain/entity"
	domainerrors "quickbite/internal/domain/errors"
	"quickbite/internal/domain/repository"
	"quickbite/internal/domain/service"
	"quickbite/internal/errors"
	"quickbite/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

type locationService struct {
	userRepo repository.UserRepository
	geocoder service.ReverseGeocoder
	logger   *slog.Logger
}

// NewLocationService creates a new location service instance
func NewLocationService(userRepo repository.UserRepository, geocoder service.ReverseGeocoder, logger *slog.Logger) usecase.LocationUsecase {
	return &locationService{
		userRepo: userRepo,
		geocoder: geocoder,
		logger:   logger,
	}
}

// ListLocations returns the customer's saved locations.
func (s *locationService) ListLocations(ctx context.Context, userID uuid.UUID) ([]entity.Location, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "find user")
	}

	return user.Locations, nil
}

// SaveLocation adds or replaces a saved location, geocoding the coordinates
// into an address.
func (s *locationService) SaveLocation(ctx context.Context, userID uuid.UUID, input *usecase.SaveLocationInput) (*entity.Location, error) {
	if !input.Label.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown location label")
	}

	location := entity.Location{
		ID:        uuid.New(),
		Label:     input.Label,
		Landmark:  input.Landmark,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
	}
	if input.ID != nil {
		location.ID = *input.ID
	}

	address, err := s.geocoder.ReverseGeocode(ctx, orb.Point{input.Longitude, input.Latitude})
	if err != nil {
		// Geocoding failures never block saving; the raw coordinates serve
		// as the address until a later edit.
		s.logger.Warn("Reverse geocoding unavailable, keeping coordinates",
			slog.Float64("latitude", input.Latitude),
			slog.Float64("longitude", input.Longitude),
		)
		address = location.CoordinateString()
	}
	location.Address = address

	if err := s.userRepo.SaveLocation(ctx, userID, location); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "save location")
	}

	return &location, nil
}

// ResolveAddress reverse-geocodes coordinates into an address preview. Unlike
// SaveLocation there is no fallback; the caller asked for the address itself.
func (s *locationService) ResolveAddress(ctx context.Context, latitude, longitude float64) (string, error) {
	address, err := s.geocoder.ReverseGeocode(ctx, orb.Point{longitude, latitude})
	if err != nil {
		return "", domainerrors.ErrReverseGeocodeUnavailable
	}

	return address, nil
}

// DeleteLocation removes a saved location.
func (s *locationService) DeleteLocation(ctx context.Context, userID, locationID uuid.UUID) error {
	if err := s.userRepo.DeleteLocation(ctx, userID, locationID); err != nil {
		switch {
		case errors.Is(err, repository.ErrLocationNotFound):
			return domainerrors.ErrLocationNotFound
		case errors.Is(err, repository.ErrUserNotFound):
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "delete location")
	}

	return nil
}
