package domain

import "time"

// SettlementStatus represents the lifecycle state of a settlement.
type SettlementStatus string

const (
	SettlementStatusPending   SettlementStatus = "PENDING"
	SettlementStatusApproved  SettlementStatus = "APPROVED"
	SettlementStatusCompleted SettlementStatus = "COMPLETED"

	// Reserved values surfaced by the dashboard tooling. Accepted by the
	// state machine but carry no extra transition rules yet.
	SettlementStatusDisputed  SettlementStatus = "DISPUTED"
	SettlementStatusCancelled SettlementStatus = "CANCELLED"
	SettlementStatusRejected  SettlementStatus = "REJECTED"
)

// IsValid returns true for a known status value.
func (s SettlementStatus) IsValid() bool {
	switch s {
	case SettlementStatusPending, SettlementStatusApproved, SettlementStatusCompleted,
		SettlementStatusDisputed, SettlementStatusCancelled, SettlementStatusRejected:
		return true
	}
	return false
}

// Settlement is a single case record tracking one monetary obligation
// between a plaintiff and a defendant. ID, parties, amount and case number
// are immutable after creation.
type Settlement struct {
	ID                   uint64           `json:"id"`
	Plaintiff            string           `json:"plaintiff"`
	Defendant            string           `json:"defendant"`
	Amount               int64            `json:"amount"` // Smallest indivisible unit
	CaseNumber           string           `json:"case_number"`
	Description          string           `json:"description"`
	Status               SettlementStatus `json:"status"`
	FundsDeposited       bool             `json:"funds_deposited"`
	FundsReleased        bool             `json:"funds_released"`
	DocumentFingerprints []string         `json:"document_fingerprints"`
	CreatedAt            time.Time        `json:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at"`
}

// IsParty returns true if the identity is the settlement's plaintiff
// or defendant.
func (s *Settlement) IsParty(identity string) bool {
	return identity == s.Plaintiff || identity == s.Defendant
}

// Clone returns a deep copy. The ledger hands out clones so callers can
// never mutate committed state.
func (s *Settlement) Clone() *Settlement {
	cp := *s
	cp.DocumentFingerprints = make([]string, len(s.DocumentFingerprints))
	copy(cp.DocumentFingerprints, s.DocumentFingerprints)
	return &cp
}
