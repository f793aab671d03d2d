package domain

import "time"

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an account in the system. The phone number provided at
// registration doubles as the username and is the unique login key.
type User struct {
	ID            string     `json:"id" db:"id"`
	Username      string     `json:"username" db:"username"`
	Email         string     `json:"email" db:"email"`
	Phone         string     `json:"phone" db:"phone"`
	PasswordHash  string     `json:"-" db:"password_hash"`
	Role          string     `json:"role" db:"role"`
	IsActive      bool       `json:"is_active" db:"is_active"`
	EmailVerified bool       `json:"email_verified" db:"email_verified"`
	LastLogin     *time.Time `json:"last_login" db:"last_login"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// LoginAttempt is an append-only audit record of a login attempt. Failed
// attempts within a sliding window feed the login rate limit; rows are
// never mutated or deleted.
type LoginAttempt struct {
	ID          int64     `json:"id" db:"id"`
	IPAddress   string    `json:"ip_address" db:"ip_address"`
	Username    string    `json:"username" db:"username"`
	Success     bool      `json:"success" db:"success"`
	AttemptedAt time.Time `json:"attempted_at" db:"attempted_at"`
}
