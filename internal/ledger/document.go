package ledger

import (
	"context"

	"github.com/BidziilBey/justicefund-exchange/internal/core/domain"
	"github.com/BidziilBey/justicefund-exchange/pkg/apperror"
)

// AddDocument appends a content fingerprint to a settlement's evidence
// sequence. Only the settlement's plaintiff or defendant may attach.
// Duplicates are permitted; the sequence is append-only.
func (l *Ledger) AddDocument(ctx context.Context, caller string, id uint64, fingerprint string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.requireNotPaused(); err != nil {
		return err
	}

	s, ok := l.settlements[id]
	if !ok {
		return apperror.ErrNotFound("settlement")
	}
	if !s.IsParty(caller) {
		return apperror.ErrNotAuthorized()
	}
	if fingerprint == "" {
		return apperror.ErrInvalidArgument("Document hash cannot be empty")
	}

	s.DocumentFingerprints = append(s.DocumentFingerprints, fingerprint)
	s.UpdatedAt = now()

	l.emit(ctx, domain.Event{
		Kind:         domain.EventDocumentAdded,
		Actor:        caller,
		SettlementID: s.ID,
		Fingerprint:  fingerprint,
	})

	l.log.Info().
		Uint64("settlement_id", s.ID).
		Str("actor", caller).
		Str("fingerprint", fingerprint).
		Msg("document attached")

	return nil
}
