package impl

import (
	"context"
	"testing"
	"time"

	"quickbite/internal/domain/entity"
	domainerrors "quickbite/internal/domain/errors"
	"quickbite/internal/domain/repository"
	"quickbite/internal/domain/service"
	"quickbite/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuthService_RequestCode_RateLimited(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	phone := "+15550100"

	fx.challengeRepo.EXPECT().
		CountRecentByPhone(ctx, phone, mock.AnythingOfType("time.Time")).
		Return(5, nil)

	out, err := fx.service.RequestCode(ctx, phone)

	assert.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrRateLimited))
}

func TestAuthService_RequestCode_SendFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	phone := "+15550100"
	smsError := errors.New("provider unreachable")

	fx.challengeRepo.EXPECT().
		CountRecentByPhone(ctx, phone, mock.AnythingOfType("time.Time")).
		Return(0, nil)
	fx.hasher.EXPECT().Hash(mock.AnythingOfType("string")).Return("hashed-code", nil)
	fx.challengeRepo.EXPECT().
		CreateChallenge(ctx, mock.AnythingOfType("*entity.PhoneChallenge")).
		Return(nil)
	fx.smsSender.EXPECT().
		SendCode(ctx, phone, mock.AnythingOfType("string")).
		Return(smsError)

	_, err := fx.service.RequestCode(ctx, phone)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "send verification code")
}

func TestAuthService_ConfirmCode_ChallengeNotFound(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	challengeID := uuid.New()

	fx.challengeRepo.EXPECT().
		FindChallengeByID(ctx, challengeID).
		Return(nil, repository.ErrChallengeNotFound)

	_, err := fx.service.ConfirmCode(ctx, &usecase.ConfirmCodeInput{
		ChallengeID: challengeID,
		Code:        "123456",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrChallengeNotFound))
}

func TestAuthService_ConfirmCode_Expired(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	challengeID := uuid.New()
	challenge := &entity.PhoneChallenge{
		ID:        challengeID,
		Phone:     "+15550100",
		CodeHash:  "hashed-code",
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	fx.challengeRepo.EXPECT().FindChallengeByID(ctx, challengeID).Return(challenge, nil)
	fx.challengeRepo.EXPECT().DeleteChallenge(ctx, challengeID).Return(nil)

	_, err := fx.service.ConfirmCode(ctx, &usecase.ConfirmCodeInput{
		ChallengeID: challengeID,
		Code:        "123456",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCodeExpired))
}

func TestAuthService_ConfirmCode_WrongCode(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	challengeID := uuid.New()
	challenge := &entity.PhoneChallenge{
		ID:        challengeID,
		Phone:     "+15550100",
		CodeHash:  "hashed-code",
		ExpiresAt: time.Now().Add(time.Minute),
	}

	fx.challengeRepo.EXPECT().FindChallengeByID(ctx, challengeID).Return(challenge, nil)
	fx.hasher.EXPECT().Compare("hashed-code", "999999").Return(false)
	fx.challengeRepo.EXPECT().IncrementAttempts(ctx, challengeID).Return(1, nil)

	_, err := fx.service.ConfirmCode(ctx, &usecase.ConfirmCodeInput{
		ChallengeID: challengeID,
		Code:        "999999",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCode))
}

func TestAuthService_ConfirmCode_WrongCodeBurnsChallenge(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	challengeID := uuid.New()
	challenge := &entity.PhoneChallenge{
		ID:        challengeID,
		Phone:     "+15550100",
		CodeHash:  "hashed-code",
		Attempts:  2,
		ExpiresAt: time.Now().Add(time.Minute),
	}

	fx.challengeRepo.EXPECT().FindChallengeByID(ctx, challengeID).Return(challenge, nil)
	fx.hasher.EXPECT().Compare("hashed-code", "999999").Return(false)
	// Third failure reaches the attempt cap; the challenge is consumed so it
	// cannot be brute-forced further.
	fx.challengeRepo.EXPECT().IncrementAttempts(ctx, challengeID).Return(3, nil)
	fx.challengeRepo.EXPECT().DeleteChallenge(ctx, challengeID).Return(nil)

	_, err := fx.service.ConfirmCode(ctx, &usecase.ConfirmCodeInput{
		ChallengeID: challengeID,
		Code:        "999999",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCode))
}

func TestAuthService_RefreshTokens_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("garbage").
		Return(nil, errors.New("token is malformed"))

	_, err := fx.service.RefreshTokens(ctx, "garbage")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestAuthService_RefreshTokens_UserGone(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	claims := &service.Claims{UserID: userID, Role: "customer", Type: "refresh"}

	fx.tokenService.EXPECT().ValidateRefreshToken("refresh-token").Return(claims, nil)
	fx.userRepo.EXPECT().FindUserByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.RefreshTokens(ctx, "refresh-token")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestAuthService_RegisterFCMToken_UserNotFound(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		UpdateFCMToken(ctx, userID, "fcm-token").
		Return(repository.ErrUserNotFound)

	err := fx.service.RegisterFCMToken(ctx, userID, "fcm-token")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
