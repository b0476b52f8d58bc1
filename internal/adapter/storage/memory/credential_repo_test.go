package memory

import (
	"context"
	"testing"
	"time"

	"github.com/BidziilBey/justicefund-exchange/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialRepo_CreateAndGet(t *testing.T) {
	repo := NewCredentialRepo()
	ctx := context.Background()

	cred := &domain.Credential{
		Identity:   "0xplaintiff",
		APIKeyHash: "$argon2id$hashed",
		IssuedBy:   "0xowner",
		CreatedAt:  time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, cred))

	got, err := repo.GetByIdentity(ctx, "0xplaintiff")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, cred.APIKeyHash, got.APIKeyHash)
	assert.Equal(t, cred.IssuedBy, got.IssuedBy)
}

func TestCredentialRepo_GetMissing(t *testing.T) {
	repo := NewCredentialRepo()

	got, err := repo.GetByIdentity(context.Background(), "0xnobody")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCredentialRepo_DuplicateCreate(t *testing.T) {
	repo := NewCredentialRepo()
	ctx := context.Background()

	cred := &domain.Credential{Identity: "0xplaintiff", APIKeyHash: "h1"}
	require.NoError(t, repo.Create(ctx, cred))

	err := repo.Create(ctx, &domain.Credential{Identity: "0xplaintiff", APIKeyHash: "h2"})
	assert.Error(t, err)
}

func TestCredentialRepo_ReturnsCopy(t *testing.T) {
	repo := NewCredentialRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Credential{Identity: "0xplaintiff", APIKeyHash: "h1"}))

	got, err := repo.GetByIdentity(ctx, "0xplaintiff")
	require.NoError(t, err)
	got.APIKeyHash = "tampered"

	fresh, err := repo.GetByIdentity(ctx, "0xplaintiff")
	require.NoError(t, err)
	assert.Equal(t, "h1", fresh.APIKeyHash)
}
