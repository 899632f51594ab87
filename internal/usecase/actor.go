// Package usecase defines the application use case interfaces and their
// input/output types. Implementations live under internal/usecase/impl.
package usecase

import (
	"quickbite/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor identifies the authenticated caller of a use case. It is built by
// the auth middleware from validated token claims, never from request
// payloads.
type Actor struct {
	UserID       uuid.UUID
	Role         entity.Role
	RestaurantID *uuid.UUID // Set only for restaurant operators.
}
