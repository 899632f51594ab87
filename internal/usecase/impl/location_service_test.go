package impl

import (
	"context"
	"testing"

	"quickbite/internal/domain/entity"
	domainerrors "quickbite/internal/domain/errors"
	"quickbite/internal/domain/repository"
	"quickbite/internal/domain/service"
	mockRepo "quickbite/internal/mocks/repository"
	mockService "quickbite/internal/mocks/service"
	"quickbite/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// locationServiceFixtures holds all test dependencies for location service tests.
type locationServiceFixtures struct {
	service  usecase.LocationUsecase
	userRepo *mockRepo.MockUserRepository
	geocoder *mockService.MockReverseGeocoder
}

func createTestLocationService(t *testing.T) locationServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	geocoder := mockService.NewMockReverseGeocoder(t)
	svc := NewLocationService(userRepo, geocoder, newDiscardLogger())

	return locationServiceFixtures{
		service:  svc,
		userRepo: userRepo,
		geocoder: geocoder,
	}
}

func TestLocationService_SaveLocation_Success(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.geocoder.EXPECT().
		ReverseGeocode(ctx, orb.Point{121.5654, 25.033}).
		Return("1 Main St, Springfield", nil)
	fx.userRepo.EXPECT().
		SaveLocation(ctx, userID, mock.AnythingOfType("entity.Location")).
		Return(nil)

	location, err := fx.service.SaveLocation(ctx, userID, &usecase.SaveLocationInput{
		Label:     entity.LabelHome,
		Landmark:  "blue gate",
		Latitude:  25.033,
		Longitude: 121.5654,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, location.ID)
	assert.Equal(t, "1 Main St, Springfield", location.Address)
	assert.Equal(t, "blue gate", location.Landmark)
}

func TestLocationService_SaveLocation_GeocoderUnavailable(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.geocoder.EXPECT().
		ReverseGeocode(ctx, mock.AnythingOfType("orb.Point")).
		Return("", service.ErrReverseGeocodeUnavailable)
	fx.userRepo.EXPECT().
		SaveLocation(ctx, userID, mock.AnythingOfType("entity.Location")).
		Return(nil)

	location, err := fx.service.SaveLocation(ctx, userID, &usecase.SaveLocationInput{
		Label:     entity.LabelWork,
		Latitude:  25.033,
		Longitude: 121.5654,
	})
	require.NoError(t, err)
	// The raw coordinates stand in for the address until a later edit.
	assert.Equal(t, "25.033000, 121.565400", location.Address)
}

func TestLocationService_SaveLocation_ReplacesExisting(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	userID := uuid.New()
	locationID := uuid.New()

	fx.geocoder.EXPECT().
		ReverseGeocode(ctx, mock.AnythingOfType("orb.Point")).
		Return("1 Main St", nil)
	fx.userRepo.EXPECT().
		SaveLocation(ctx, userID, mock.MatchedBy(func(location entity.Location) bool {
			return location.ID == locationID
		})).
		Return(nil)

	location, err := fx.service.SaveLocation(ctx, userID, &usecase.SaveLocationInput{
		ID:        &locationID,
		Label:     entity.LabelHome,
		Latitude:  25.033,
		Longitude: 121.5654,
	})
	require.NoError(t, err)
	assert.Equal(t, locationID, location.ID)
}

func TestLocationService_SaveLocation_UnknownLabel(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()

	_, err := fx.service.SaveLocation(ctx, uuid.New(), &usecase.SaveLocationInput{
		Label:     entity.LocationLabel("vacation"),
		Latitude:  25.033,
		Longitude: 121.5654,
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestLocationService_ListLocations_Success(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.UserProfile{
		ID: userID,
		Locations: []entity.Location{
			{ID: uuid.New(), Label: entity.LabelHome, Address: "1 Main St"},
		},
	}

	fx.userRepo.EXPECT().FindUserByID(ctx, userID).Return(user, nil)

	locations, err := fx.service.ListLocations(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, locations, 1)
}

func TestLocationService_DeleteLocation_NotFound(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	userID := uuid.New()
	locationID := uuid.New()

	fx.userRepo.EXPECT().
		DeleteLocation(ctx, userID, locationID).
		Return(repository.ErrLocationNotFound)

	err := fx.service.DeleteLocation(ctx, userID, locationID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrLocationNotFound))
}

func TestLocationService_ResolveAddress_Success(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()

	fx.geocoder.EXPECT().
		ReverseGeocode(ctx, orb.Point{121.5654, 25.033}).
		Return("1 Main St, Springfield", nil)

	address, err := fx.service.ResolveAddress(ctx, 25.033, 121.5654)
	require.NoError(t, err)
	assert.Equal(t, "1 Main St, Springfield", address)
}

func TestLocationService_ResolveAddress_GeocoderUnavailable(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()

	fx.geocoder.EXPECT().
		ReverseGeocode(ctx, mock.AnythingOfType("orb.Point")).
		Return("", errors.New("upstream timeout"))

	_, err := fx.service.ResolveAddress(ctx, 25.033, 121.5654)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrReverseGeocodeUnavailable))
}
