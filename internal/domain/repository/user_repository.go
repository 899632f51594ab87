package repository

import (
	"context"

	"quickbite/internal/domain/entity"
	"quickbite/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when no profile matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrLocationNotFound is returned when a saved location is absent.
	ErrLocationNotFound = errors.New("saved location not found")
)

// UserRepository is the gateway to the user-profile collection.
type UserRepository interface {
	// CreateUser persists a new profile created at first login.
	CreateUser(ctx context.Context, user *entity.UserProfile) error

	// FindUserByID returns a profile by identifier.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.UserProfile, error)

	// FindUserByPhone returns a profile by its verified phone number.
	FindUserByPhone(ctx context.Context, phone string) (*entity.UserProfile, error)

	// SaveLocation adds or replaces a saved location on a profile.
	SaveLocation(ctx context.Context, userID uuid.UUID, location entity.Location) error

	// DeleteLocation removes a saved location from a profile.
	DeleteLocation(ctx context.Context, userID, locationID uuid.UUID) error

	// UpdateFCMToken records the device token used for status pushes.
	UpdateFCMToken(ctx context.Context, userID uuid.UUID, token string) error
}
