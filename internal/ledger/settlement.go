package ledger

import (
	"context"

	"github.com/BidziilBey/justicefund-exchange/internal/core/domain"
	"github.com/BidziilBey/justicefund-exchange/internal/core/ports"
	"github.com/BidziilBey/justicefund-exchange/pkg/apperror"
)

// CreateSettlement records a new settlement with the caller as plaintiff.
// Ids are assigned sequentially starting at 1 and are never reused; a
// rejected creation consumes no id.
func (l *Ledger) CreateSettlement(ctx context.Context, caller string, req ports.CreateSettlementRequest) (*domain.Settlement, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.requireNotPaused(); err != nil {
		return nil, err
	}
	if !l.isEligible(caller) {
		return nil, apperror.ErrNotVerified()
	}
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if req.Defendant == "" {
		return nil, apperror.ErrInvalidArgument("Defendant cannot be empty")
	}
	if caller == req.Defendant {
		return nil, apperror.ErrSameParty()
	}
	if req.CaseNumber == "" {
		return nil, apperror.ErrInvalidArgument("Case number cannot be empty")
	}
	if _, taken := l.caseNumbers[req.CaseNumber]; taken {
		return nil, apperror.ErrDuplicateCaseNumber()
	}

	l.lastID++
	ts := now()
	s := &domain.Settlement{
		ID:                   l.lastID,
		Plaintiff:            caller,
		Defendant:            req.Defendant,
		Amount:               req.Amount,
		CaseNumber:           req.CaseNumber,
		Description:          req.Description,
		Status:               domain.SettlementStatusPending,
		DocumentFingerprints: []string{},
		CreatedAt:            ts,
		UpdatedAt:            ts,
	}

	l.settlements[s.ID] = s
	l.caseNumbers[s.CaseNumber] = s.ID
	l.byParty[s.Plaintiff] = append(l.byParty[s.Plaintiff], s.ID)
	l.byParty[s.Defendant] = append(l.byParty[s.Defendant], s.ID)

	l.emit(ctx, domain.Event{
		Kind:         domain.EventSettlementCreated,
		Actor:        caller,
		SettlementID: s.ID,
		Subject:      s.Defendant,
		Amount:       s.Amount,
		CaseNumber:   s.CaseNumber,
	})

	l.log.Info().
		Uint64("settlement_id", s.ID).
		Str("plaintiff", s.Plaintiff).
		Str("defendant", s.Defendant).
		Int64("amount", s.Amount).
		Str("case_number", s.CaseNumber).
		Msg("settlement created")

	return s.Clone(), nil
}

// GetSettlement returns the settlement with the given id.
func (l *Ledger) GetSettlement(id uint64) (*domain.Settlement, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	s, ok := l.settlements[id]
	if !ok {
		return nil, apperror.ErrNotFound("settlement")
	}
	return s.Clone(), nil
}

// GetUserSettlements returns the ids of every settlement where identity is
// plaintiff or defendant, in creation order.
func (l *Ledger) GetUserSettlements(identity string) []uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	ids := l.byParty[identity]
	out := make([]uint64, len(ids))
	copy(out, ids)
	return out
}

// GetSettlementDocuments returns the ordered fingerprint sequence of a
// settlement.
func (l *Ledger) GetSettlementDocuments(id uint64) ([]string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	s, ok := l.settlements[id]
	if !ok {
		return nil, apperror.ErrNotFound("settlement")
	}
	out := make([]string, len(s.DocumentFingerprints))
	copy(out, s.DocumentFingerprints)
	return out, nil
}

// TotalSettlements returns the count of settlements ever created.
func (l *Ledger) TotalSettlements() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.lastID
}
