package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/BidziilBey/justicefund-exchange/internal/core/domain"
)

// CredentialRepo is an in-memory ports.CredentialRepository. Credentials
// are operator-issued and few, so a map behind a mutex is sufficient.
type CredentialRepo struct {
	mu    sync.RWMutex
	creds map[string]*domain.Credential
}

// NewCredentialRepo creates an empty in-memory credential repository.
func NewCredentialRepo() *CredentialRepo {
	return &CredentialRepo{creds: make(map[string]*domain.Credential)}
}

// Create stores a credential. Fails if the identity already holds one.
func (r *CredentialRepo) Create(ctx context.Context, cred *domain.Credential) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.creds[cred.Identity]; ok {
		return fmt.Errorf("credential already exists for %s", cred.Identity)
	}
	cp := *cred
	r.creds[cred.Identity] = &cp
	return nil
}

// GetByIdentity returns the credential for identity, or nil, nil when absent.
func (r *CredentialRepo) GetByIdentity(ctx context.Context, identity string) (*domain.Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cred, ok := r.creds[identity]
	if !ok {
		return nil, nil
	}
	cp := *cred
	return &cp, nil
}
