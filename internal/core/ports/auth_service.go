package ports

import "context"

// AuthService covers the three authentication use cases: admin login against
// configured credentials, self-service signup, and the stateless logout
// acknowledgement.
type AuthService interface {
	LoginAdmin(ctx context.Context, email, password string) (string, error)
	Signup(ctx context.Context, email, password string) error
	Logout() string
}

// TokenIssuer signs a short-lived bearer token asserting an identity.
type TokenIssuer interface {
	Issue(email string) (string, error)
}
