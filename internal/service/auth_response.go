package service

import (
	"context"
	"time"

	"github.com/quangtran-dev/storefront-api/internal/apperrors"
	"github.com/quangtran-dev/storefront-api/internal/domain"
	"github.com/quangtran-dev/storefront-api/internal/dto"
)

// generateAuthResponse mints an access and refresh token pair for the user
// and stores the refresh token.
func (s *authService) generateAuthResponse(ctx context.Context, user *domain.User) (*dto.AuthResponse, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(user)
	if err != nil {
		return nil, apperrors.Internal("failed to generate access token", err)
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user)
	if err != nil {
		return nil, apperrors.Internal("failed to generate refresh token", err)
	}

	refreshTokenEntity := &domain.RefreshToken{
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: time.Now().Add(s.refreshTokenExpiry),
	}

	if err := s.tokenRepo.Create(ctx, refreshTokenEntity); err != nil {
		return nil, apperrors.Internal("failed to save refresh token", err)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    s.jwtManager.AccessTokenExpirySeconds(),
		User: dto.UserInfo{
			ID:    user.ID,
			Phone: user.Phone,
			Email: user.Email,
			Role:  user.Role,
		},
	}, nil
}
