package ports

import (
	"context"

	"github.com/admision-lab/benefits-api/internal/core/domain"
)

// RegisterInput carries the data needed to create a new account.
type RegisterInput struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Email     string
}

// AuthService implements registration and login.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}

// TokenIssuer signs and verifies bearer tokens. Verification is a pure
// function of the token and the signing key; no server-side state.
type TokenIssuer interface {
	Issue(username, role string) (string, error)
	Verify(token string) (*TokenClaims, error)
}

// TokenClaims is the verified content of a bearer token.
type TokenClaims struct {
	Username string
	Role     string
}

// LoginLimiter throttles repeated failed logins per username.
type LoginLimiter interface {
	// TooMany reports whether the username has exhausted its attempt budget.
	TooMany(ctx context.Context, username string) (bool, error)
	// RecordFailure counts one failed attempt.
	RecordFailure(ctx context.Context, username string) error
	// Reset clears the counter after a successful login.
	Reset(ctx context.Context, username string) error
}
