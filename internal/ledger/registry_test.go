package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyParticipant(t *testing.T) {
	l := newTestLedger()
	ctx := context.Background()

	p, err := l.VerifyParticipant(ctx, ownerAddr, alice, kycHash)
	require.NoError(t, err)
	assert.True(t, p.IsVerified)
	assert.True(t, p.IsActive)
	assert.Equal(t, kycHash, p.KYCFingerprint)
	assert.True(t, l.IsEligible(alice))
}

func TestVerifyParticipant_NonOwner(t *testing.T) {
	l := newTestLedger()

	_, err := l.VerifyParticipant(context.Background(), alice, bob, kycHash)
	assertAppError(t, err, "ACC_001")
	assert.False(t, l.IsEligible(bob))
}

func TestVerifyParticipant_EmptyIdentity(t *testing.T) {
	l := newTestLedger()

	_, err := l.VerifyParticipant(context.Background(), ownerAddr, "", kycHash)
	assertAppError(t, err, "DOC_002")
}

func TestVerifyParticipant_IdempotentUpsert(t *testing.T) {
	l := newTestLedger()
	ctx := context.Background()

	first, err := l.VerifyParticipant(ctx, ownerAddr, alice, kycHash)
	require.NoError(t, err)

	second, err := l.VerifyParticipant(ctx, ownerAddr, alice, "0xrefreshed")
	require.NoError(t, err)

	assert.Equal(t, first.VerifiedAt, second.VerifiedAt, "first verification timestamp preserved")
	assert.Equal(t, "0xrefreshed", second.KYCFingerprint)
}

func TestDeactivateParticipant_RevokesEligibilityKeepsHistory(t *testing.T) {
	l := newTestLedger()
	ctx := context.Background()

	_, err := l.VerifyParticipant(ctx, ownerAddr, alice, kycHash)
	require.NoError(t, err)

	require.NoError(t, l.DeactivateParticipant(ctx, ownerAddr, alice))
	assert.False(t, l.IsEligible(alice))

	// Record survives deactivation.
	p, err := l.GetParticipant(alice)
	require.NoError(t, err)
	assert.True(t, p.IsVerified)
	assert.False(t, p.IsActive)
	assert.Equal(t, kycHash, p.KYCFingerprint)
}

func TestDeactivateParticipant_Unknown(t *testing.T) {
	l := newTestLedger()
	err := l.DeactivateParticipant(context.Background(), ownerAddr, carol)
	assertAppError(t, err, "SET_005")
}

func TestDeactivateParticipant_NonOwner(t *testing.T) {
	l := newTestLedger()
	verifyParties(t, l)

	err := l.DeactivateParticipant(context.Background(), bob, alice)
	assertAppError(t, err, "ACC_001")
	assert.True(t, l.IsEligible(alice))
}

func TestReinstateParticipant(t *testing.T) {
	l := newTestLedger()
	ctx := context.Background()

	_, err := l.VerifyParticipant(ctx, ownerAddr, alice, kycHash)
	require.NoError(t, err)
	require.NoError(t, l.DeactivateParticipant(ctx, ownerAddr, alice))
	require.False(t, l.IsEligible(alice))

	require.NoError(t, l.ReinstateParticipant(ctx, ownerAddr, alice))
	assert.True(t, l.IsEligible(alice))
}

func TestGetParticipant_Unknown(t *testing.T) {
	l := newTestLedger()
	_, err := l.GetParticipant(carol)
	assertAppError(t, err, "SET_005")
}

func TestIsEligible_UnknownIdentity(t *testing.T) {
	l := newTestLedger()
	assert.False(t, l.IsEligible(carol))
	assert.False(t, l.IsEligible(""))
}
