package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/quangtran-dev/storefront-api/internal/domain"
)

// Token verification errors. Expired and tampered tokens are rejected
// distinctly so callers can classify them.
var (
	ErrTokenExpired = errors.New("token is expired")
	ErrTokenInvalid = errors.New("token is invalid")
)

// JWTManager signs and verifies the access and refresh tokens. Both carry
// the subject id, a login-identifier echo and the role.
type JWTManager struct {
	secret             []byte
	accessTokenExpiry  time.Duration
	refreshTokenExpiry time.Duration
}

// NewJWTManager creates a new JWT manager
func NewJWTManager(secret string, accessTokenExpiry, refreshTokenExpiry time.Duration) *JWTManager {
	return &JWTManager{
		secret:             []byte(secret),
		accessTokenExpiry:  accessTokenExpiry,
		refreshTokenExpiry: refreshTokenExpiry,
	}
}

// GenerateAccessToken generates a new short-lived access token.
func (j *JWTManager) GenerateAccessToken(user *domain.User) (string, error) {
	return j.sign(user, j.accessTokenExpiry, nil)
}

// GenerateRefreshToken generates a new long-lived refresh token. A jti
// claim keeps concurrently minted tokens for the same user distinct.
func (j *JWTManager) GenerateRefreshToken(user *domain.User) (string, error) {
	extra := jwt.MapClaims{"jti": uuid.New().String()}
	return j.sign(user, j.refreshTokenExpiry, extra)
}

func (j *JWTManager) sign(user *domain.User, expiry time.Duration, extra jwt.MapClaims) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      now.Add(expiry).Unix(),
		"iat":      now.Unix(),
	}
	for k, v := range extra {
		claims[k] = v
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken verifies the signature and expiry of a token and returns
// its claims. Expired tokens return ErrTokenExpired; any other failure
// returns ErrTokenInvalid.
func (j *JWTManager) ValidateToken(tokenString string) (*domain.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenInvalid
	}

	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return nil, ErrTokenInvalid
	}

	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, ErrTokenInvalid
	}

	iat, _ := claims["iat"].(float64)

	return &domain.TokenClaims{
		UserID:   userID,
		Username: username,
		Role:     role,
		Exp:      int64(exp),
		Iat:      int64(iat),
	}, nil
}

// AccessTokenExpirySeconds returns the access token lifetime in seconds.
func (j *JWTManager) AccessTokenExpirySeconds() int {
	return int(j.accessTokenExpiry.Seconds())
}

// RefreshTokenExpiry returns the refresh token lifetime.
func (j *JWTManager) RefreshTokenExpiry() time.Duration {
	return j.refreshTokenExpiry
}
