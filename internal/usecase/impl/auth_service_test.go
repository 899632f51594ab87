package impl

import (
	"context"
	"regexp"
	"testing"
	"time"

	"quickbite/internal/domain/entity"
	"quickbite/internal/domain/repository"
	"quickbite/internal/domain/service"
	mockRepo "quickbite/internal/mocks/repository"
	mockService "quickbite/internal/mocks/service"
	"quickbite/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service       usecase.AuthUsecase
	challengeRepo *mockRepo.MockChallengeRepository
	userRepo      *mockRepo.MockUserRepository
	tokenService  *mockService.MockTokenService
	smsSender     *mockService.MockSMSSender
	hasher        *mockService.MockCodeHasher
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	challengeRepo := mockRepo.NewMockChallengeRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	tokenService := mockService.NewMockTokenService(t)
	smsSender := mockService.NewMockSMSSender(t)
	hasher := mockService.NewMockCodeHasher(t)

	svc := NewAuthService(challengeRepo, userRepo, tokenService, smsSender, hasher, newTestConfig(), newDiscardLogger())

	return authServiceFixtures{
		service:       svc,
		challengeRepo: challengeRepo,
		userRepo:      userRepo,
		tokenService:  tokenService,
		smsSender:     smsSender,
		hasher:        hasher,
	}
}

func TestAuthService_RequestCode_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	phone := "+15550100"
	challengeID := uuid.New()

	var hashedCode, sentCode string

	fx.challengeRepo.EXPECT().
		CountRecentByPhone(ctx, phone, mock.AnythingOfType("time.Time")).
		Return(0, nil)

	fx.hasher.EXPECT().
		Hash(mock.AnythingOfType("string")).
		Run(func(code string) {
			hashedCode = code
		}).
		Return("hashed-code", nil)

	fx.challengeRepo.EXPECT().
		CreateChallenge(ctx, mock.AnythingOfType("*entity.PhoneChallenge")).
		Run(func(_ context.Context, challenge *entity.PhoneChallenge) {
			challenge.ID = challengeID
		}).
		Return(nil)

	fx.smsSender.EXPECT().
		SendCode(ctx, phone, mock.AnythingOfType("string")).
		Run(func(_ context.Context, _, code string) {
			sentCode = code
		}).
		Return(nil)

	out, err := fx.service.RequestCode(ctx, phone)
	require.NoError(t, err)
	assert.Equal(t, challengeID, out.ChallengeID)
	assert.True(t, out.ExpiresAt.After(time.Now()))

	// The code sent by SMS is the one whose hash was stored.
	assert.Equal(t, hashedCode, sentCode)
	assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), sentCode)
}

func TestAuthService_ConfirmCode_ExistingUserKeepsRole(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	challengeID := uuid.New()
	restaurantID := uuid.New()
	user := &entity.UserProfile{
		ID:           uuid.New(),
		Phone:        "+15550100",
		Role:         entity.RoleRestaurant,
		RestaurantID: &restaurantID,
	}
	challenge := &entity.PhoneChallenge{
		ID:        challengeID,
		Phone:     user.Phone,
		CodeHash:  "hashed-code",
		ExpiresAt: time.Now().Add(time.Minute),
	}

	fx.challengeRepo.EXPECT().FindChallengeByID(ctx, challengeID).Return(challenge, nil)
	fx.hasher.EXPECT().Compare("hashed-code", "123456").Return(true)
	fx.challengeRepo.EXPECT().DeleteChallenge(ctx, challengeID).Return(nil)
	fx.userRepo.EXPECT().FindUserByPhone(ctx, user.Phone).Return(user, nil)
	fx.tokenService.EXPECT().
		GenerateTokens(user.ID, "restaurant", user.Phone).
		Return("access-token", "refresh-token", nil)

	out, err := fx.service.ConfirmCode(ctx, &usecase.ConfirmCodeInput{
		ChallengeID: challengeID,
		Code:        "123456",
		// The requested role is ignored for an existing profile.
		Role: entity.RoleCustomer,
	})
	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)
	assert.Equal(t, entity.RoleRestaurant, out.User.Role)
}

func TestAuthService_ConfirmCode_FirstLoginCreatesProfile(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	challengeID := uuid.New()
	userID := uuid.New()
	phone := "+15550101"
	challenge := &entity.PhoneChallenge{
		ID:        challengeID,
		Phone:     phone,
		CodeHash:  "hashed-code",
		ExpiresAt: time.Now().Add(time.Minute),
	}

	fx.challengeRepo.EXPECT().FindChallengeByID(ctx, challengeID).Return(challenge, nil)
	fx.hasher.EXPECT().Compare("hashed-code", "123456").Return(true)
	fx.challengeRepo.EXPECT().DeleteChallenge(ctx, challengeID).Return(nil)
	fx.userRepo.EXPECT().FindUserByPhone(ctx, phone).Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.UserProfile")).
		Run(func(_ context.Context, user *entity.UserProfile) {
			user.ID = userID
		}).
		Return(nil)
	fx.tokenService.EXPECT().
		GenerateTokens(userID, "delivery", phone).
		Return("access-token", "refresh-token", nil)

	out, err := fx.service.ConfirmCode(ctx, &usecase.ConfirmCodeInput{
		ChallengeID: challengeID,
		Code:        "123456",
		Role:        entity.RoleDelivery,
	})
	require.NoError(t, err)
	assert.Equal(t, userID, out.User.ID)
	assert.Equal(t, entity.RoleDelivery, out.User.Role)
}

func TestAuthService_ConfirmCode_InvalidRoleDefaultsToCustomer(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	challengeID := uuid.New()
	phone := "+15550102"
	challenge := &entity.PhoneChallenge{
		ID:        challengeID,
		Phone:     phone,
		CodeHash:  "hashed-code",
		ExpiresAt: time.Now().Add(time.Minute),
	}

	fx.challengeRepo.EXPECT().FindChallengeByID(ctx, challengeID).Return(challenge, nil)
	fx.hasher.EXPECT().Compare("hashed-code", "123456").Return(true)
	fx.challengeRepo.EXPECT().DeleteChallenge(ctx, challengeID).Return(nil)
	fx.userRepo.EXPECT().FindUserByPhone(ctx, phone).Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.UserProfile")).
		Return(nil)
	fx.tokenService.EXPECT().
		GenerateTokens(mock.AnythingOfType("uuid.UUID"), "customer", phone).
		Return("access-token", "refresh-token", nil)

	out, err := fx.service.ConfirmCode(ctx, &usecase.ConfirmCodeInput{
		ChallengeID: challengeID,
		Code:        "123456",
		Role:        entity.Role("superuser"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, out.User.Role)
}

func TestAuthService_RefreshTokens_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.UserProfile{
		ID:    uuid.New(),
		Phone: "+15550100",
		Role:  entity.RoleCustomer,
	}
	claims := &service.Claims{
		UserID: user.ID,
		Role:   "customer",
		Phone:  user.Phone,
		Type:   "refresh",
	}

	fx.tokenService.EXPECT().ValidateRefreshToken("old-refresh-token").Return(claims, nil)
	fx.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
	fx.tokenService.EXPECT().
		GenerateTokens(user.ID, "customer", user.Phone).
		Return("new-access-token", "new-refresh-token", nil)

	out, err := fx.service.RefreshTokens(ctx, "old-refresh-token")
	require.NoError(t, err)
	assert.Equal(t, "new-access-token", out.AccessToken)
	assert.Equal(t, "new-refresh-token", out.RefreshToken)
}

func TestAuthService_RegisterFCMToken_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().UpdateFCMToken(ctx, userID, "fcm-token").Return(nil)

	err := fx.service.RegisterFCMToken(ctx, userID, "fcm-token")
	require.NoError(t, err)
}
