package ledger

import (
	"context"

	"github.com/BidziilBey/justicefund-exchange/internal/core/domain"
	"github.com/BidziilBey/justicefund-exchange/pkg/apperror"
)

// forwardTransitions is the strict-mode transition table: the success path
// only, no way back.
var forwardTransitions = map[domain.SettlementStatus]domain.SettlementStatus{
	domain.SettlementStatusPending:  domain.SettlementStatusApproved,
	domain.SettlementStatusApproved: domain.SettlementStatusCompleted,
}

// UpdateStatus overwrites a settlement's status. Owner-only. The default
// policy permits any transition between known statuses except the identity
// pair; strict mode narrows it to Pending -> Approved -> Completed.
func (l *Ledger) UpdateStatus(ctx context.Context, caller string, id uint64, newStatus domain.SettlementStatus) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.requireNotPaused(); err != nil {
		return err
	}
	if err := l.requireOwner(caller); err != nil {
		return err
	}

	s, ok := l.settlements[id]
	if !ok {
		return apperror.ErrNotFound("settlement")
	}
	if !newStatus.IsValid() {
		return apperror.ErrInvalidStatus()
	}
	if s.Status == newStatus {
		return apperror.ErrNoOpTransition()
	}
	if l.strict && forwardTransitions[s.Status] != newStatus {
		return apperror.ErrTransitionDenied()
	}

	l.setStatus(ctx, caller, s, newStatus)
	return nil
}

// setStatus commits a status overwrite and emits the transition event.
// Caller must hold the write lock and have validated the transition.
func (l *Ledger) setStatus(ctx context.Context, caller string, s *domain.Settlement, newStatus domain.SettlementStatus) {
	oldStatus := s.Status
	s.Status = newStatus
	s.UpdatedAt = now()

	l.emit(ctx, domain.Event{
		Kind:         domain.EventStatusUpdated,
		Actor:        caller,
		SettlementID: s.ID,
		OldStatus:    oldStatus,
		NewStatus:    newStatus,
	})

	l.log.Info().
		Uint64("settlement_id", s.ID).
		Str("old_status", string(oldStatus)).
		Str("new_status", string(newStatus)).
		Msg("settlement status updated")
}
