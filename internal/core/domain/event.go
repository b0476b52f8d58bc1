package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventKind identifies the type of ledger event.
type EventKind string

const (
	EventParticipantVerified    EventKind = "PARTICIPANT_VERIFIED"
	EventParticipantDeactivated EventKind = "PARTICIPANT_DEACTIVATED"
	EventParticipantReinstated  EventKind = "PARTICIPANT_REINSTATED"
	EventSettlementCreated      EventKind = "SETTLEMENT_CREATED"
	EventStatusUpdated          EventKind = "SETTLEMENT_STATUS_UPDATED"
	EventFundsDeposited         EventKind = "FUNDS_DEPOSITED"
	EventFundsReleased          EventKind = "FUNDS_RELEASED"
	EventEmergencyWithdrawal    EventKind = "EMERGENCY_WITHDRAWAL"
	EventDocumentAdded          EventKind = "DOCUMENT_ADDED"
	EventLedgerPaused           EventKind = "LEDGER_PAUSED"
	EventLedgerUnpaused         EventKind = "LEDGER_UNPAUSED"
	EventOwnershipTransferred   EventKind = "OWNERSHIP_TRANSFERRED"
)

// Event is one entry in the append-only activity feed. Seq is assigned by
// the ledger, strictly increasing, and gap-free for the process lifetime.
type Event struct {
	ID           uuid.UUID        `json:"id"`
	Seq          uint64           `json:"seq"`
	Kind         EventKind        `json:"kind"`
	Actor        string           `json:"actor,omitempty"`
	SettlementID uint64           `json:"settlement_id,omitempty"`
	Subject      string           `json:"subject,omitempty"` // counterparty / recipient / new owner
	Amount       int64            `json:"amount,omitempty"`
	CaseNumber   string           `json:"case_number,omitempty"`
	OldStatus    SettlementStatus `json:"old_status,omitempty"`
	NewStatus    SettlementStatus `json:"new_status,omitempty"`
	Fingerprint  string           `json:"fingerprint,omitempty"`
	OccurredAt   time.Time        `json:"occurred_at"`
}
