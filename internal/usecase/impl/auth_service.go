// Package impl contains the use case implementations.
package impl

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"quickbite/config"
	"quickbite/internal/domain/entity"
	domainerrors "quickbite/internal/domain/errors"
	"quickbite/internal/domain/repository"
	"quickbite/internal/domain/service"
	"quickbite/internal/errors"
	"quickbite/internal/usecase"

	"github.com/google/uuid"
)

type authService struct {
	challengeRepo repository.ChallengeRepository
	userRepo      repository.UserRepository
	tokenService  service.TokenService
	smsSender     service.SMSSender
	hasher        service.CodeHasher
	config        *config.Config
	logger        *slog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(
	challengeRepo repository.ChallengeRepository,
	userRepo repository.UserRepository,
	tokenService service.TokenService,
	smsSender service.SMSSender,
	hasher service.CodeHasher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		challengeRepo: challengeRepo,
		userRepo:      userRepo,
		tokenService:  tokenService,
		smsSender:     smsSender,
		hasher:        hasher,
		config:        cfg,
		logger:        logger,
	}
}

// RequestCode issues a verification challenge and sends the code by SMS.
func (s *authService) RequestCode(ctx context.Context, phone string) (*usecase.RequestCodeOutput, error) {
	now := time.Now().UTC()

	count, err := s.challengeRepo.CountRecentByPhone(ctx, phone, now.Add(-time.Hour))
	if err != nil {
		return nil, errors.Wrap(err, "count recent challenges")
	}
	if count >= s.config.Auth.MaxCodesPerHour {
		return nil, domainerrors.ErrRateLimited
	}

	code, err := generateVerificationCode()
	if err != nil {
		return nil, errors.Wrap(err, "generate verification code")
	}

	// Only the hash is stored; the plaintext leaves the process exactly
	// once, through the SMS sender.
	hash, err := s.hasher.Hash(code)
	if err != nil {
		return nil, errors.Wrap(err, "hash verification code")
	}

	challenge := &entity.PhoneChallenge{
		Phone:     phone,
		CodeHash:  hash,
		ExpiresAt: now.Add(s.config.Auth.CodeTTL),
	}
	if err := s.challengeRepo.CreateChallenge(ctx, challenge); err != nil {
		return nil, errors.Wrap(err, "create challenge")
	}

	if err := s.smsSender.SendCode(ctx, phone, code); err != nil {
		return nil, errors.Wrap(err, "send verification code")
	}

	return &usecase.RequestCodeOutput{
		ChallengeID: challenge.ID,
		ExpiresAt:   challenge.ExpiresAt,
	}, nil
}

// ConfirmCode verifies a submitted code and completes the login.
func (s *authService) ConfirmCode(ctx context.Context, input *usecase.ConfirmCodeInput) (*usecase.AuthOutput, error) {
	challenge, err := s.challengeRepo.FindChallengeByID(ctx, input.ChallengeID)
	if err != nil {
		if errors.Is(err, repository.ErrChallengeNotFound) {
			return nil, domainerrors.ErrChallengeNotFound
		}

		return nil, errors.Wrap(err, "find challenge")
	}

	if challenge.Expired(time.Now().UTC()) {
		_ = s.challengeRepo.DeleteChallenge(ctx, challenge.ID)

		return nil, domainerrors.ErrCodeExpired
	}

	if !s.hasher.Compare(challenge.CodeHash, input.Code) {
		attempts, err := s.challengeRepo.IncrementAttempts(ctx, challenge.ID)
		if err != nil {
			return nil, errors.Wrap(err, "record failed attempt")
		}
		// A burned challenge cannot be brute-forced further.
		if attempts >= s.config.Auth.MaxConfirmAttempts {
			_ = s.challengeRepo.DeleteChallenge(ctx, challenge.ID)
		}

		return nil, domainerrors.ErrInvalidCode
	}

	if err := s.challengeRepo.DeleteChallenge(ctx, challenge.ID); err != nil {
		return nil, errors.Wrap(err, "consume challenge")
	}

	user, err := s.findOrCreateUser(ctx, challenge.Phone, input.Role)
	if err != nil {
		return nil, err
	}

	return s.issueTokens(user)
}

// RefreshTokens exchanges a valid refresh token for a new token pair.
func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*usecase.AuthOutput, error) {
	claims, err := s.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid
	}

	user, err := s.userRepo.FindUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrTokenInvalid
		}

		return nil, errors.Wrap(err, "find user")
	}

	return s.issueTokens(user)
}

// RegisterFCMToken records the device token used for status pushes.
func (s *authService) RegisterFCMToken(ctx context.Context, userID uuid.UUID, token string) error {
	if err := s.userRepo.UpdateFCMToken(ctx, userID, token); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "update fcm token")
	}

	return nil
}

func (s *authService) findOrCreateUser(ctx context.Context, phone string, role entity.Role) (*entity.UserProfile, error) {
	user, err := s.userRepo.FindUserByPhone(ctx, phone)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "find user by phone")
	}

	// First login: the requested role is assigned once, here.
	if !role.IsValid() {
		role = entity.RoleCustomer
	}
	user = &entity.UserProfile{
		Phone: phone,
		Role:  role,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, errors.Wrap(err, "create user")
	}

	s.logger.Info("Created profile at first login",
		slog.String("user_id", user.ID.String()),
		slog.String("role", user.Role.String()),
	)

	return user, nil
}

func (s *authService) issueTokens(user *entity.UserProfile) (*usecase.AuthOutput, error) {
	accessToken, refreshToken, err := s.tokenService.GenerateTokens(user.ID, user.Role.String(), user.Phone)
	if err != nil {
		return nil, errors.Wrap(err, "generate tokens")
	}

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// generateVerificationCode returns a 6-digit code from a CSPRNG.
func generateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}
