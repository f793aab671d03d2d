package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/quangtran-dev/storefront-api/internal/apperrors"
	"github.com/quangtran-dev/storefront-api/internal/domain"
	"github.com/quangtran-dev/storefront-api/internal/dto"
	"github.com/quangtran-dev/storefront-api/internal/repository"
	"github.com/quangtran-dev/storefront-api/internal/utils"
)

// authService implements AuthService interface
type authService struct {
	userRepo           repository.UserRepository
	tokenRepo          repository.TokenRepository
	attemptRepo        repository.LoginAttemptRepository
	jwtManager         *utils.JWTManager
	blacklistService   *TokenBlacklistService
	logger             *zap.Logger
	bcryptCost         int
	minPasswordLength  int
	attemptLimit       int
	attemptWindow      time.Duration
	defaultEmail       string
	refreshTokenExpiry time.Duration
}

// AuthServiceConfig carries the tunables of the auth service
type AuthServiceConfig struct {
	BCryptCost        int
	MinPasswordLength int
	AttemptLimit      int
	AttemptWindow     time.Duration
	DefaultEmail      string
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repository.UserRepository,
	tokenRepo repository.TokenRepository,
	attemptRepo repository.LoginAttemptRepository,
	jwtManager *utils.JWTManager,
	blacklistService *TokenBlacklistService,
	logger *zap.Logger,
	cfg AuthServiceConfig,
) AuthService {
	return &authService{
		userRepo:           userRepo,
		tokenRepo:          tokenRepo,
		attemptRepo:        attemptRepo,
		jwtManager:         jwtManager,
		blacklistService:   blacklistService,
		logger:             logger,
		bcryptCost:         cfg.BCryptCost,
		minPasswordLength:  cfg.MinPasswordLength,
		attemptLimit:       cfg.AttemptLimit,
		attemptWindow:      cfg.AttemptWindow,
		defaultEmail:       cfg.DefaultEmail,
		refreshTokenExpiry: jwtManager.RefreshTokenExpiry(),
	}
}

// Register registers a new user. The phone number becomes the username.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	phone := utils.SanitizePhone(req.Phone)
	if !utils.ValidatePhone(phone) {
		return nil, apperrors.New(apperrors.KindValidation, "invalid phone number format")
	}

	if len(req.Password) < s.minPasswordLength {
		return nil, apperrors.New(apperrors.KindWeakPassword,
			fmt.Sprintf("password must be at least %d characters long", s.minPasswordLength))
	}

	email := utils.SanitizeEmail(req.Email)
	if email == "" {
		email = s.defaultEmail
	} else if !utils.ValidateEmail(email) {
		return nil, apperrors.New(apperrors.KindValidation, "invalid email format")
	}

	passwordHash, err := utils.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.Internal("failed to hash password", err)
	}

	user := &domain.User{
		Username:     phone,
		Phone:        phone,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         domain.RoleUser,
		IsActive:     true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, apperrors.New(apperrors.KindIdentifierTaken, "phone number is already registered")
		}
		return nil, apperrors.Internal("failed to create user", err)
	}

	return s.generateAuthResponse(ctx, user)
}

// Login authenticates a user. Failed attempts from the same address are
// counted against a sliding window; once the limit is hit further attempts
// are rejected until the window slides past the oldest failure.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest, ipAddress string) (*dto.AuthResponse, error) {
	phone := utils.SanitizePhone(req.Phone)

	// The limiter fails open: an unreadable attempt log must not lock
	// everyone out.
	failures, err := s.attemptRepo.CountRecentFailures(ctx, ipAddress, time.Now().Add(-s.attemptWindow))
	if err != nil {
		s.logger.Warn("failed to count login attempts", zap.Error(err))
	} else if failures >= s.attemptLimit {
		return nil, apperrors.New(apperrors.KindTooManyAttempts,
			"too many failed login attempts, try again later")
	}

	user, err := s.userRepo.GetByUsername(ctx, phone)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.recordAttempt(ctx, ipAddress, phone, false)
			return nil, apperrors.New(apperrors.KindInvalidCredentials, "invalid phone number or password")
		}
		return nil, apperrors.Internal("failed to get user", err)
	}

	if !user.IsActive {
		s.recordAttempt(ctx, ipAddress, phone, false)
		return nil, apperrors.New(apperrors.KindAccountInactive, "account is inactive")
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.recordAttempt(ctx, ipAddress, phone, false)
		return nil, apperrors.New(apperrors.KindInvalidCredentials, "invalid phone number or password")
	}

	s.recordAttempt(ctx, ipAddress, phone, true)

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		s.logger.Warn("failed to update last login", zap.String("user_id", user.ID), zap.Error(err))
	}

	return s.generateAuthResponse(ctx, user)
}

// Refresh exchanges a live refresh token for a new token pair. The
// presented token is revoked first; a token that loses the revocation race
// is rejected, so each refresh token is usable exactly once.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	claims, err := s.jwtManager.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, utils.ErrTokenExpired) {
			return nil, apperrors.New(apperrors.KindTokenExpired, "token has expired")
		}
		return nil, apperrors.New(apperrors.KindTokenInvalid, "invalid refresh token")
	}

	isBlacklisted, err := s.blacklistService.IsTokenBlacklisted(ctx, refreshToken)
	if err != nil {
		s.logger.Warn("failed to check token blacklist", zap.Error(err))
	} else if isBlacklisted {
		return nil, apperrors.New(apperrors.KindRefreshTokenExpired, "refresh token has expired")
	}

	dbToken, err := s.tokenRepo.GetLive(ctx, refreshToken, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// A valid signature without a live row means the token was
			// already rotated, revoked, or aged out.
			return nil, apperrors.New(apperrors.KindRefreshTokenExpired, "refresh token has expired")
		}
		return nil, apperrors.Internal("failed to get refresh token", err)
	}

	// Conditional revoke: only one of two concurrent refreshes with the
	// same token wins this update.
	if err := s.tokenRepo.Revoke(ctx, dbToken.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.New(apperrors.KindRefreshTokenExpired, "refresh token has expired")
		}
		return nil, apperrors.Internal("failed to revoke refresh token", err)
	}

	if err := s.blacklistService.AddToken(ctx, refreshToken, s.refreshTokenExpiry); err != nil {
		s.logger.Warn("failed to blacklist refresh token", zap.Error(err))
	}

	user, err := s.userRepo.GetActiveByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.New(apperrors.KindUserNotFound, "user not found")
		}
		return nil, apperrors.Internal("failed to get user", err)
	}

	return s.generateAuthResponse(ctx, user)
}

// Logout revokes a refresh token by value. Unknown and already revoked
// tokens are accepted silently, so logout is idempotent.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	if err := s.tokenRepo.RevokeByToken(ctx, refreshToken); err != nil {
		return apperrors.Internal("failed to revoke refresh token", err)
	}

	if err := s.blacklistService.AddToken(ctx, refreshToken, s.refreshTokenExpiry); err != nil {
		s.logger.Warn("failed to blacklist refresh token", zap.Error(err))
	}

	return nil
}

// VerifyAccessToken validates an access token and loads its active user
func (s *authService) VerifyAccessToken(ctx context.Context, token string) (*domain.User, error) {
	isBlacklisted, err := s.blacklistService.IsTokenBlacklisted(ctx, token)
	if err != nil {
		s.logger.Warn("failed to check token blacklist", zap.Error(err))
	} else if isBlacklisted {
		return nil, apperrors.New(apperrors.KindTokenInvalid, "invalid token")
	}

	claims, err := s.jwtManager.ValidateToken(token)
	if err != nil {
		if errors.Is(err, utils.ErrTokenExpired) {
			return nil, apperrors.New(apperrors.KindTokenExpired, "token has expired")
		}
		return nil, apperrors.New(apperrors.KindTokenInvalid, "invalid token")
	}

	user, err := s.userRepo.GetActiveByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.New(apperrors.KindUserNotFound, "user not found")
		}
		return nil, apperrors.Internal("failed to get user", err)
	}

	return user, nil
}

// GetUser gets user information
func (s *authService) GetUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.New(apperrors.KindUserNotFound, "user not found")
		}
		return nil, apperrors.Internal("failed to get user", err)
	}

	response := dto.NewUserResponse(user)
	return &response, nil
}

// recordAttempt appends to the login attempt log. The log is best effort:
// a write failure is logged and the login proceeds.
func (s *authService) recordAttempt(ctx context.Context, ipAddress, username string, success bool) {
	attempt := &domain.LoginAttempt{
		IPAddress: ipAddress,
		Username:  username,
		Success:   success,
	}
	if err := s.attemptRepo.Create(ctx, attempt); err != nil {
		s.logger.Warn("failed to record login attempt",
			zap.String("ip", ipAddress), zap.Bool("success", success), zap.Error(err))
	}
}
