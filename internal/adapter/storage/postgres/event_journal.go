package postgres

import (
	"context"
	"fmt"

	"github.com/BidziilBey/justicefund-exchange/internal/core/domain"
)

// EventJournal is a PostgreSQL-backed ports.EventSink: a durable,
// append-only copy of the ledger's event feed. The in-process journal
// stays authoritative; this table exists for audit and reporting.
type EventJournal struct {
	pool Pool
}

// NewEventJournal creates a PostgreSQL-backed event journal.
func NewEventJournal(pool Pool) *EventJournal {
	return &EventJournal{pool: pool}
}

// Append inserts one committed event.
func (j *EventJournal) Append(ctx context.Context, ev domain.Event) error {
	query := `INSERT INTO ledger_events (id, seq, kind, actor, settlement_id, subject, amount, case_number, old_status, new_status, fingerprint, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := j.pool.Exec(ctx, query,
		ev.ID, ev.Seq, string(ev.Kind), ev.Actor,
		ev.SettlementID, ev.Subject, ev.Amount, ev.CaseNumber,
		string(ev.OldStatus), string(ev.NewStatus), ev.Fingerprint,
		ev.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("insert ledger event: %w", err)
	}
	return nil
}

// ListSince returns persisted events with seq > since, oldest first.
// Used for audit queries, not for the live feed.
func (j *EventJournal) ListSince(ctx context.Context, since uint64, limit int) ([]domain.Event, error) {
	query := `SELECT id, seq, kind, actor, settlement_id, subject, amount, case_number, old_status, new_status, fingerprint, occurred_at
		FROM ledger_events WHERE seq > $1 ORDER BY seq ASC LIMIT $2`

	rows, err := j.pool.Query(ctx, query, since, limit)
	if err != nil {
		return nil, fmt.Errorf("list ledger events: %w", err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var ev domain.Event
		var kind, oldStatus, newStatus string
		if err := rows.Scan(
			&ev.ID, &ev.Seq, &kind, &ev.Actor,
			&ev.SettlementID, &ev.Subject, &ev.Amount, &ev.CaseNumber,
			&oldStatus, &newStatus, &ev.Fingerprint, &ev.OccurredAt,
		); err != nil {
			return nil, fmt.Errorf("scan ledger event: %w", err)
		}
		ev.Kind = domain.EventKind(kind)
		ev.OldStatus = domain.SettlementStatus(oldStatus)
		ev.NewStatus = domain.SettlementStatus(newStatus)
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger events: %w", err)
	}
	return events, nil
}
