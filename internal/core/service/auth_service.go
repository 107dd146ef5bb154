package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/storeops/backoffice-api/internal/core/domain"
	"github.com/storeops/backoffice-api/internal/core/ports"
)

// AdminCredentials is the single privileged identity, sourced from process
// configuration at startup and immutable afterwards. It is never persisted
// and never hashed: admin login is plain string comparison against it.
type AdminCredentials struct {
	Email    string
	Password string
}

// Configured reports whether both fields are present. Either one missing is a
// server-side configuration fault, not a credential mismatch.
func (a AdminCredentials) Configured() bool {
	return a.Email != "" && a.Password != ""
}

// AuthService implements admin login and self-service signup.
type AuthService struct {
	admin  AdminCredentials
	repo   ports.AuthRepository
	issuer ports.TokenIssuer
	logger zerolog.Logger
}

func NewAuthService(admin AdminCredentials, repo ports.AuthRepository, issuer ports.TokenIssuer, logger zerolog.Logger) *AuthService {
	return &AuthService{admin: admin, repo: repo, issuer: issuer, logger: logger}
}

// LoginAdmin compares the submitted credentials against the configured admin
// identity, case-sensitively and without normalization. The admin path never
// touches bcrypt. On mismatch the error is identical regardless of which
// field was wrong, so callers cannot enumerate the admin email.
func (s *AuthService) LoginAdmin(ctx context.Context, email, password string) (string, error) {
	if !s.admin.Configured() {
		s.logger.Error().Msg("admin credentials missing from configuration")
		return "", domain.ErrAdminNotConfigured
	}

	if email != s.admin.Email || password != s.admin.Password {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(email)
	if err != nil {
		s.logger.Error().Err(err).Msg("token signing failed")
		return "", err
	}

	s.logger.Info().Str("email", email).Msg("admin logged in")
	return token, nil
}

// Signup creates a UserAccount with a bcrypt hash of the password. Uniqueness
// on email is checked before the hash is computed, and the hash-then-write
// sequence is one logical transaction: a write failure leaves no account.
func (s *AuthService) Signup(ctx context.Context, email, password string) error {
	_, err := s.repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return domain.ErrUserExists
	case !errors.Is(err, domain.ErrUserNotFound):
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &domain.UserAccount{
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := s.repo.Create(ctx, user); err != nil {
		s.logger.Error().Err(err).Msg("signup persistence failed")
		return err
	}

	s.logger.Info().Str("email", email).Msg("user signed up")
	return nil
}

// Logout is an acknowledgement contract only: no server-side session exists
// to invalidate. Real invalidation would need a token-revocation component.
func (s *AuthService) Logout() string {
	return "Logged out successfully"
}
