package domain

import (
	"errors"
	"time"
)

var (
	// ErrAdminNotConfigured means ADMIN_EMAIL or ADMIN_PASSWORD was absent
	// from the environment when a login was attempted.
	ErrAdminNotConfigured = errors.New("admin credentials are not configured")
	// ErrInvalidCredentials is deliberately generic: the login response never
	// reveals whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("unauthorized: only admin can log in")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
)

// UserAccount is a self-registered account. Only the bcrypt hash is ever
// persisted; the plaintext never leaves the signup call frame.
type UserAccount struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
