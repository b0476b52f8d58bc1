package ports

import (
	"context"

	"github.com/BidziilBey/justicefund-exchange/internal/core/domain"
)

// Ledger is the authoritative settlement state machine. Every mutating
// operation is atomic: it either fully commits or leaves the ledger
// untouched. The caller identity is always explicit; authorization (owner
// checks, party membership, verification gating) happens inside.
type Ledger interface {
	// Participant registry
	VerifyParticipant(ctx context.Context, caller, identity, kycFingerprint string) (*domain.Participant, error)
	DeactivateParticipant(ctx context.Context, caller, identity string) error
	ReinstateParticipant(ctx context.Context, caller, identity string) error
	GetParticipant(identity string) (*domain.Participant, error)
	IsEligible(identity string) bool

	// Settlements
	CreateSettlement(ctx context.Context, caller string, req CreateSettlementRequest) (*domain.Settlement, error)
	GetSettlement(id uint64) (*domain.Settlement, error)
	GetUserSettlements(identity string) []uint64
	GetSettlementDocuments(id uint64) ([]string, error)
	TotalSettlements() uint64
	UpdateStatus(ctx context.Context, caller string, id uint64, newStatus domain.SettlementStatus) error

	// Escrow vault
	DepositFunds(ctx context.Context, caller string, id uint64, amount int64) error
	ReleaseFunds(ctx context.Context, caller string, id uint64) error
	EmergencyWithdraw(ctx context.Context, caller string) (int64, error)
	TotalBalance() int64
	ParticipantBalance(identity string) int64

	// Documents
	AddDocument(ctx context.Context, caller string, id uint64, fingerprint string) error

	// Access control
	Pause(ctx context.Context, caller string) error
	Unpause(ctx context.Context, caller string) error
	Paused() bool
	TransferOwnership(ctx context.Context, caller, newOwner string) error
	Owner() string

	// Activity feed
	EventsSince(seq uint64) []domain.Event
	Subscribe(buffer int) (<-chan domain.Event, func())
}

// CreateSettlementRequest holds validated input for settlement creation.
// The caller is the plaintiff.
type CreateSettlementRequest struct {
	Defendant   string
	Amount      int64
	CaseNumber  string
	Description string
}

// AccessPolicy decides which identity holds the owner capability.
// Kept as a swappable predicate so alternate authorization schemes can be
// substituted in tests.
type AccessPolicy interface {
	IsOwner(caller string) bool
	Owner() string
	Transfer(newOwner string)
}

// ValueTransferor moves custodied value out of the vault to a recipient.
// An error means the recipient could not accept value; the ledger then
// commits nothing.
type ValueTransferor interface {
	Credit(ctx context.Context, recipient string, amount int64) error
}

// EventSink receives every committed ledger event. Sinks are best-effort:
// a failing sink is logged, never propagated to the operation.
type EventSink interface {
	Append(ctx context.Context, ev domain.Event) error
}
