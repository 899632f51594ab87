package usecase

import (
	"context"
	"time"

	"quickbite/internal/domain/entity"

	"github.com/google/uuid"
)

// RequestCodeOutput is the handle a client holds while verifying a phone.
type RequestCodeOutput struct {
	ChallengeID uuid.UUID `json:"challenge_id"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// ConfirmCodeInput carries one verification attempt.
type ConfirmCodeInput struct {
	ChallengeID uuid.UUID `json:"challenge_id"`
	Code        string    `json:"code"`
	// Role is applied only when the login creates a new profile; an existing
	// profile keeps its assigned role.
	Role entity.Role `json:"role"`
}

// AuthOutput is the result of a completed login.
type AuthOutput struct {
	AccessToken  string              `json:"access_token"`
	RefreshToken string              `json:"refresh_token"`
	User         *entity.UserProfile `json:"user"`
}

// AuthUsecase defines the phone-verification login flow.
type AuthUsecase interface {
	// RequestCode issues a verification challenge and sends the code by SMS.
	RequestCode(ctx context.Context, phone string) (*RequestCodeOutput, error)

	// ConfirmCode verifies a submitted code. On success it finds or creates
	// the profile for the phone and issues tokens.
	ConfirmCode(ctx context.Context, input *ConfirmCodeInput) (*AuthOutput, error)

	// RefreshTokens exchanges a valid refresh token for a new token pair.
	RefreshTokens(ctx context.Context, refreshToken string) (*AuthOutput, error)

	// RegisterFCMToken records the device token used for status pushes.
	RegisterFCMToken(ctx context.Context, userID uuid.UUID, token string) error
}
