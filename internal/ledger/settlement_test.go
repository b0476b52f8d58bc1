package ledger

import (
	"context"
	"testing"

	"github.com/BidziilBey/justicefund-exchange/internal/core/domain"
	"github.com/BidziilBey/justicefund-exchange/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSettlement(t *testing.T) {
	l := newTestLedger()
	verifyParties(t, l)

	s := createTestSettlement(t, l)

	assert.Equal(t, uint64(1), s.ID)
	assert.Equal(t, alice, s.Plaintiff)
	assert.Equal(t, bob, s.Defendant)
	assert.Equal(t, int64(100), s.Amount)
	assert.Equal(t, caseNumber, s.CaseNumber)
	assert.Equal(t, "Personal injury settlement", s.Description)
	assert.Equal(t, domain.SettlementStatusPending, s.Status)
	assert.False(t, s.FundsDeposited)
	assert.False(t, s.FundsReleased)
	assert.Empty(t, s.DocumentFingerprints)
	assert.False(t, s.CreatedAt.IsZero())
	assert.Equal(t, s.CreatedAt, s.UpdatedAt)
	assert.Equal(t, uint64(1), l.TotalSettlements())
}

func TestCreateSettlement_SequentialIDs(t *testing.T) {
	l := newTestLedger()
	verifyParties(t, l)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		s, err := l.CreateSettlement(ctx, alice, ports.CreateSettlementRequest{
			Defendant:  bob,
			Amount:     100,
			CaseNumber: caseNumber + string(rune('0'+i)),
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(i), s.ID)
	}
}

func TestCreateSettlement_Unverified(t *testing.T) {
	l := newTestLedger()
	ctx := context.Background()

	_, err := l.CreateSettlement(ctx, carol, ports.CreateSettlementRequest{
		Defendant: bob, Amount: 100, CaseNumber: caseNumber,
	})
	assertAppError(t, err, "SET_001")

	// No id consumed: the next successful creation still gets id=1.
	verifyParties(t, l)
	s := createTestSettlement(t, l)
	assert.Equal(t, uint64(1), s.ID)
}

func TestCreateSettlement_DeactivatedPlaintiff(t *testing.T) {
	l := newTestLedger()
	verifyParties(t, l)
	ctx := context.Background()
	require.NoError(t, l.DeactivateParticipant(ctx, ownerAddr, alice))

	_, err := l.CreateSettlement(ctx, alice, ports.CreateSettlementRequest{
		Defendant: bob, Amount: 100, CaseNumber: caseNumber,
	})
	assertAppError(t, err, "SET_001")
}

func TestCreateSettlement_ZeroAmount(t *testing.T) {
	l := newTestLedger()
	verifyParties(t, l)

	_, err := l.CreateSettlement(context.Background(), alice, ports.CreateSettlementRequest{
		Defendant: bob, Amount: 0, CaseNumber: caseNumber,
	})
	assertAppError(t, err, "SET_002")
}

func TestCreateSettlement_NegativeAmount(t *testing.T) {
	l := newTestLedger()
	verifyParties(t, l)

	_, err := l.CreateSettlement(context.Background(), alice, ports.CreateSettlementRequest{
		Defendant: bob, Amount: -5, CaseNumber: caseNumber,
	})
	assertAppError(t, err, "SET_002")
}

func TestCreateSettlement_SameParty(t *testing.T) {
	l := newTestLedger()
	verifyParties(t, l)

	_, err := l.CreateSettlement(context.Background(), alice, ports.CreateSettlementRequest{
		Defendant: alice, Amount: 100, CaseNumber: caseNumber,
	})
	assertAppError(t, err, "SET_003")
}

func TestCreateSettlement_DuplicateCaseNumber(t *testing.T) {
	l := newTestLedger()
	verifyParties(t, l)
	createTestSettlement(t, l)

	_, err := l.CreateSettlement(context.Background(), alice, ports.CreateSettlementRequest{
		Defendant:   bob,
		Amount:      999,
		CaseNumber:  caseNumber,
		Description: "Another description",
	})
	assertAppError(t, err, "SET_004")
	assert.Equal(t, uint64(1), l.TotalSettlements())
}

func TestCreateSettlement_EmptyCaseNumber(t *testing.T) {
	l := newTestLedger()
	verifyParties(t, l)

	_, err := l.CreateSettlement(context.Background(), alice, ports.CreateSettlementRequest{
		Defendant: bob, Amount: 100, CaseNumber: "",
	})
	assertAppError(t, err, "DOC_002")
}

func TestCreateSettlement_EmptyDefendant(t *testing.T) {
	l := newTestLedger()
	verifyParties(t, l)

	_, err := l.CreateSettlement(context.Background(), alice, ports.CreateSettlementRequest{
		Defendant: "", Amount: 100, CaseNumber: caseNumber,
	})
	assertAppError(t, err, "DOC_002")
}

func TestGetSettlement_Unknown(t *testing.T) {
	l := newTestLedger()
	_, err := l.GetSettlement(42)
	assertAppError(t, err, "SET_005")
}

func TestGetSettlement_ReturnsClone(t *testing.T) {
	l := newTestLedger()
	verifyParties(t, l)
	createTestSettlement(t, l)

	s, err := l.GetSettlement(1)
	require.NoError(t, err)

	// Mutating the returned value must not touch committed state.
	s.Status = domain.SettlementStatusCancelled
	s.DocumentFingerprints = append(s.DocumentFingerprints, "0xrogue")

	fresh, err := l.GetSettlement(1)
	require.NoError(t, err)
	assert.Equal(t, domain.SettlementStatusPending, fresh.Status)
	assert.Empty(t, fresh.DocumentFingerprints)
}

func TestGetUserSettlements(t *testing.T) {
	l := newTestLedger()
	verifyParties(t, l)
	ctx := context.Background()

	s1 := createTestSettlement(t, l)
	s2, err := l.CreateSettlement(ctx, bob, ports.CreateSettlementRequest{
		Defendant: alice, Amount: 50, CaseNumber: "JF-2024-002",
	})
	require.NoError(t, err)

	// Both parties see both settlements regardless of side.
	assert.Equal(t, []uint64{s1.ID, s2.ID}, l.GetUserSettlements(alice))
	assert.Equal(t, []uint64{s1.ID, s2.ID}, l.GetUserSettlements(bob))
	assert.Empty(t, l.GetUserSettlements(carol))
}
