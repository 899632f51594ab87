package repository

import (
	"context"
	"time"

	"quickbite/internal/domain/entity"
	"quickbite/internal/errors"

	"github.com/google/uuid"
)

// ErrChallengeNotFound is returned when a verification challenge is absent.
var ErrChallengeNotFound = errors.New("phone challenge not found")

// ChallengeRepository is the gateway to outstanding SMS verification
// challenges.
type ChallengeRepository interface {
	// CreateChallenge persists a freshly issued challenge.
	CreateChallenge(ctx context.Context, challenge *entity.PhoneChallenge) error

	// FindChallengeByID returns one challenge by its handle.
	FindChallengeByID(ctx context.Context, id uuid.UUID) (*entity.PhoneChallenge, error)

	// IncrementAttempts records one failed confirmation attempt and returns
	// the new attempt count.
	IncrementAttempts(ctx context.Context, id uuid.UUID) (int, error)

	// DeleteChallenge removes a consumed or abandoned challenge.
	DeleteChallenge(ctx context.Context, id uuid.UUID) error

	// CountRecentByPhone counts challenges issued for a phone number since
	// the given time, for rate limiting.
	CountRecentByPhone(ctx context.Context, phone string, since time.Time) (int, error)
}
