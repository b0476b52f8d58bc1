package ports

import (
	"context"
	"time"

	"github.com/BidziilBey/justicefund-exchange/internal/core/domain"
)

// CredentialRepository defines persistence for issued API credentials.
type CredentialRepository interface {
	Create(ctx context.Context, cred *domain.Credential) error
	GetByIdentity(ctx context.Context, identity string) (*domain.Credential, error)
}

// HashService handles API-key hashing (Argon2id).
type HashService interface {
	Hash(secret string) (string, error)
	Verify(secret string, hash string) (bool, error)
}

// TokenService handles JWT token operations. The subject is a ledger
// identity (address/principal), not an account row.
type TokenService interface {
	Generate(identity string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Identity string
}

// AuthService defines API credential issuance and login.
type AuthService interface {
	// IssueCredential creates an API key for identity. Owner-only.
	// The plaintext key is returned once and never stored.
	IssueCredential(ctx context.Context, caller, identity string) (string, error)
	// Login exchanges identity + API key for a bearer token.
	Login(ctx context.Context, identity, apiKey string) (string, time.Time, error)
}

// HealthChecker verifies connectivity of an external dependency.
type HealthChecker interface {
	Ping(ctx context.Context) error
	Name() string
}
