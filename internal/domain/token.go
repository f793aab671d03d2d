package domain

import "time"

// RefreshToken is a stored refresh token. Tokens are single-use: a refresh
// marks the presented row revoked before issuing a replacement, so the
// revoked flag, not expiry alone, is authoritative.
type RefreshToken struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Token     string    `json:"-" db:"token"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
	Revoked   bool      `json:"revoked" db:"revoked"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// IsLive reports whether the token is neither revoked nor expired.
func (t *RefreshToken) IsLive(now time.Time) bool {
	return !t.Revoked && now.Before(t.ExpiresAt)
}

// TokenClaims represents the signed token payload: subject id, a
// login-identifier echo and the role.
type TokenClaims struct {
	UserID   string `json:"sub"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Exp      int64  `json:"exp"`
	Iat      int64  `json:"iat"`
}

// IsExpired checks if the claims are past their expiry.
func (tc TokenClaims) IsExpired() bool {
	return time.Now().Unix() > tc.Exp
}

// TokenPair represents a freshly minted access and refresh token pair.
type TokenPair struct {
	AccessToken  string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}
