package ledger

import (
	"context"

	"github.com/BidziilBey/justicefund-exchange/internal/core/domain"
	"github.com/BidziilBey/justicefund-exchange/pkg/apperror"
)

// VerifyParticipant upserts a verification record for identity. Owner-only,
// idempotent: re-verifying refreshes the KYC fingerprint and reactivates
// the participant. History is never deleted.
func (l *Ledger) VerifyParticipant(ctx context.Context, caller, identity, kycFingerprint string) (*domain.Participant, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.requireNotPaused(); err != nil {
		return nil, err
	}
	if err := l.requireOwner(caller); err != nil {
		return nil, err
	}
	if identity == "" {
		return nil, apperror.ErrInvalidArgument("Identity cannot be empty")
	}

	ts := now()
	p, ok := l.participants[identity]
	if !ok {
		p = &domain.Participant{
			Identity:   identity,
			VerifiedAt: ts,
		}
		l.participants[identity] = p
	}
	p.IsVerified = true
	p.IsActive = true
	p.KYCFingerprint = kycFingerprint
	p.UpdatedAt = ts

	l.emit(ctx, domain.Event{Kind: domain.EventParticipantVerified, Actor: caller, Subject: identity})

	l.log.Info().Str("identity", identity).Msg("participant verified")

	cp := *p
	return &cp, nil
}

// DeactivateParticipant revokes eligibility without deleting the record.
// Owner-only.
func (l *Ledger) DeactivateParticipant(ctx context.Context, caller, identity string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.requireNotPaused(); err != nil {
		return err
	}
	if err := l.requireOwner(caller); err != nil {
		return err
	}

	p, ok := l.participants[identity]
	if !ok {
		return apperror.ErrNotFound("participant")
	}

	p.IsActive = false
	p.UpdatedAt = now()

	l.emit(ctx, domain.Event{Kind: domain.EventParticipantDeactivated, Actor: caller, Subject: identity})

	l.log.Warn().Str("identity", identity).Msg("participant deactivated")
	return nil
}

// ReinstateParticipant restores eligibility of a deactivated participant.
// Owner-only.
func (l *Ledger) ReinstateParticipant(ctx context.Context, caller, identity string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.requireNotPaused(); err != nil {
		return err
	}
	if err := l.requireOwner(caller); err != nil {
		return err
	}

	p, ok := l.participants[identity]
	if !ok {
		return apperror.ErrNotFound("participant")
	}

	p.IsActive = true
	p.UpdatedAt = now()

	l.emit(ctx, domain.Event{Kind: domain.EventParticipantReinstated, Actor: caller, Subject: identity})

	l.log.Info().Str("identity", identity).Msg("participant reinstated")
	return nil
}

// GetParticipant returns the verification record for identity.
func (l *Ledger) GetParticipant(identity string) (*domain.Participant, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	p, ok := l.participants[identity]
	if !ok {
		return nil, apperror.ErrNotFound("participant")
	}
	cp := *p
	return &cp, nil
}

// IsEligible reports whether identity is verified and active.
func (l *Ledger) IsEligible(identity string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.isEligible(identity)
}

// isEligible is the lock-free variant used inside mutating operations.
func (l *Ledger) isEligible(identity string) bool {
	p, ok := l.participants[identity]
	return ok && p.IsEligible()
}
