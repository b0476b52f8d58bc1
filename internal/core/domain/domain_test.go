package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParticipant_IsEligible(t *testing.T) {
	cases := []struct {
		name     string
		verified bool
		active   bool
		want     bool
	}{
		{"verified and active", true, true, true},
		{"verified but deactivated", true, false, false},
		{"active but unverified", false, true, false},
		{"neither", false, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &Participant{IsVerified: tc.verified, IsActive: tc.active}
			assert.Equal(t, tc.want, p.IsEligible())
		})
	}
}

func TestSettlementStatus_IsValid(t *testing.T) {
	for _, s := range []SettlementStatus{
		SettlementStatusPending, SettlementStatusApproved, SettlementStatusCompleted,
		SettlementStatusDisputed, SettlementStatusCancelled, SettlementStatusRejected,
	} {
		assert.True(t, s.IsValid(), "status %s", s)
	}
	assert.False(t, SettlementStatus("SETTLED").IsValid())
	assert.False(t, SettlementStatus("").IsValid())
}

func TestSettlement_IsParty(t *testing.T) {
	s := &Settlement{Plaintiff: "0xplaintiff", Defendant: "0xdefendant"}
	assert.True(t, s.IsParty("0xplaintiff"))
	assert.True(t, s.IsParty("0xdefendant"))
	assert.False(t, s.IsParty("0xstranger"))
	assert.False(t, s.IsParty(""))
}

func TestSettlement_Clone_Isolated(t *testing.T) {
	s := &Settlement{
		ID:                   1,
		DocumentFingerprints: []string{"0xaaa"},
	}

	cp := s.Clone()
	cp.DocumentFingerprints = append(cp.DocumentFingerprints, "0xbbb")
	cp.Status = SettlementStatusApproved

	assert.Len(t, s.DocumentFingerprints, 1, "original fingerprints untouched")
	assert.Empty(t, s.Status)
}
