package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/BidziilBey/justicefund-exchange/internal/core/domain"
	"github.com/BidziilBey/justicefund-exchange/internal/core/ports"
	"github.com/BidziilBey/justicefund-exchange/pkg/apperror"
)

// AuthServiceImpl implements ports.AuthService.
type AuthServiceImpl struct {
	credRepo ports.CredentialRepository
	policy   ports.AccessPolicy
	hashSvc  ports.HashService
	tokenSvc ports.TokenService
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(
	credRepo ports.CredentialRepository,
	policy ports.AccessPolicy,
	hashSvc ports.HashService,
	tokenSvc ports.TokenService,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		credRepo: credRepo,
		policy:   policy,
		hashSvc:  hashSvc,
		tokenSvc: tokenSvc,
	}
}

// IssueCredential creates an API key for identity. Owner-only. The
// plaintext key is returned once; only the Argon2id hash is stored.
func (s *AuthServiceImpl) IssueCredential(ctx context.Context, caller, identity string) (string, error) {
	if !s.policy.IsOwner(caller) {
		return "", apperror.ErrUnauthorized()
	}
	if identity == "" {
		return "", apperror.Validation("identity is required")
	}

	existing, err := s.credRepo.GetByIdentity(ctx, identity)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("check credential: %w", err))
	}
	if existing != nil {
		return "", apperror.ErrCredentialExists()
	}

	apiKey, err := generateRandomHex(32) // 64 hex chars
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("generate api key: %w", err))
	}

	keyHash, err := s.hashSvc.Hash(apiKey)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("hash api key: %w", err))
	}

	cred := &domain.Credential{
		Identity:   identity,
		APIKeyHash: keyHash,
		IssuedBy:   caller,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.credRepo.Create(ctx, cred); err != nil {
		return "", apperror.InternalError(fmt.Errorf("store credential: %w", err))
	}

	return apiKey, nil
}

// Login exchanges identity + API key for a bearer token.
func (s *AuthServiceImpl) Login(ctx context.Context, identity, apiKey string) (string, time.Time, error) {
	cred, err := s.credRepo.GetByIdentity(ctx, identity)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("find credential: %w", err))
	}
	if cred == nil {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	valid, err := s.hashSvc.Verify(apiKey, cred.APIKeyHash)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("verify api key: %w", err))
	}
	if !valid {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	token, expiry, err := s.tokenSvc.Generate(identity)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}

	return token, expiry, nil
}

// generateRandomHex generates a random hex string of n bytes.
func generateRandomHex(n int) (string, error) {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
