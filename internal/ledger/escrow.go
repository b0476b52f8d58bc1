package ledger

import (
	"context"

	"github.com/BidziilBey/justicefund-exchange/internal/core/domain"
	"github.com/BidziilBey/justicefund-exchange/pkg/apperror"
)

// DepositFunds custodies the settlement amount in the vault. The supplied
// value must match the settlement amount exactly; no partial or
// over-payment, no refund-the-difference. Depositing twice is rejected.
func (l *Ledger) DepositFunds(ctx context.Context, caller string, id uint64, amount int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.requireNotPaused(); err != nil {
		return err
	}
	if !l.isEligible(caller) {
		return apperror.ErrNotVerified()
	}

	s, ok := l.settlements[id]
	if !ok {
		return apperror.ErrNotFound("settlement")
	}
	if s.FundsDeposited {
		return apperror.ErrFundsAlreadyDeposited()
	}
	if amount != s.Amount {
		return apperror.ErrIncorrectAmount()
	}

	l.vaultBalance += amount
	s.FundsDeposited = true
	s.UpdatedAt = now()

	l.emit(ctx, domain.Event{
		Kind:         domain.EventFundsDeposited,
		Actor:        caller,
		SettlementID: s.ID,
		Amount:       amount,
	})

	l.log.Info().
		Uint64("settlement_id", s.ID).
		Str("depositor", caller).
		Int64("amount", amount).
		Int64("vault_balance", l.vaultBalance).
		Msg("funds deposited")

	return nil
}

// ReleaseFunds transfers the custodied amount to the plaintiff, exactly
// once, and advances the settlement to Completed. Owner-only. A failed
// transfer leaves the ledger untouched.
func (l *Ledger) ReleaseFunds(ctx context.Context, caller string, id uint64) error {
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
	if !s.FundsDeposited || s.FundsReleased {
		return apperror.ErrFundsNotDeposited()
	}

	// The transfer happens before any state change: if the recipient
	// cannot accept value the operation aborts with the vault intact.
	if err := l.transferor.Credit(ctx, s.Plaintiff, s.Amount); err != nil {
		l.log.Error().
			Err(err).
			Uint64("settlement_id", s.ID).
			Str("recipient", s.Plaintiff).
			Msg("value transfer failed, release aborted")
		return apperror.ErrTransferFailed(err)
	}

	l.vaultBalance -= s.Amount
	s.FundsReleased = true
	s.UpdatedAt = now()

	l.emit(ctx, domain.Event{
		Kind:         domain.EventFundsReleased,
		Actor:        caller,
		SettlementID: s.ID,
		Subject:      s.Plaintiff,
		Amount:       s.Amount,
	})

	if s.Status != domain.SettlementStatusCompleted {
		l.setStatus(ctx, caller, s, domain.SettlementStatusCompleted)
	}

	l.log.Info().
		Uint64("settlement_id", s.ID).
		Str("recipient", s.Plaintiff).
		Int64("amount", s.Amount).
		Int64("vault_balance", l.vaultBalance).
		Msg("funds released")

	return nil
}

// EmergencyWithdraw sweeps the entire custodied balance to the owner,
// bypassing per-settlement bookkeeping. Owner-only, and deliberately not
// gated by pause: it is the incident-response circuit breaker. Returns the
// swept amount.
func (l *Ledger) EmergencyWithdraw(ctx context.Context, caller string) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.requireOwner(caller); err != nil {
		return 0, err
	}

	swept := l.vaultBalance
	if swept > 0 {
		if err := l.transferor.Credit(ctx, l.policy.Owner(), swept); err != nil {
			l.log.Error().Err(err).Int64("amount", swept).Msg("emergency withdrawal transfer failed")
			return 0, apperror.ErrTransferFailed(err)
		}
		l.vaultBalance = 0
	}

	l.emit(ctx, domain.Event{
		Kind:    domain.EventEmergencyWithdrawal,
		Actor:   caller,
		Subject: l.policy.Owner(),
		Amount:  swept,
	})

	l.log.Error().
		Str("caller", caller).
		Int64("amount", swept).
		Msg("EMERGENCY WITHDRAWAL: vault swept to owner")

	return swept, nil
}

// TotalBalance returns the current custodied total: the sum of amounts
// over settlements with funds deposited and not yet released, except
// transiently during an emergency withdrawal.
func (l *Ledger) TotalBalance() int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.vaultBalance
}
