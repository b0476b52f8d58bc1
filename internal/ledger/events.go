package ledger

import (
	"context"

	"github.com/BidziilBey/justicefund-exchange/internal/core/domain"

	"github.com/google/uuid"
)

// emit stamps, journals and fans out a committed event. Caller must hold
// the write lock; the event is therefore ordered with the mutation it
// describes. Sink and subscriber failures never fail the operation.
func (l *Ledger) emit(ctx context.Context, ev domain.Event) {
	l.seq++
	ev.ID = uuid.New()
	ev.Seq = l.seq
	ev.OccurredAt = now()

	l.journal = append(l.journal, ev)

	for id, ch := range l.subs {
		select {
		case ch <- ev:
		default:
			l.log.Warn().
				Uint64("subscriber", id).
				Uint64("seq", ev.Seq).
				Str("kind", string(ev.Kind)).
				Msg("subscriber lagging, event dropped")
		}
	}

	for _, sink := range l.sinks {
		if err := sink.Append(ctx, ev); err != nil {
			l.log.Warn().
				Err(err).
				Uint64("seq", ev.Seq).
				Str("kind", string(ev.Kind)).
				Msg("event sink append failed")
		}
	}
}

// EventsSince returns all committed events with Seq > seq, oldest first.
// Polling interface for the activity feed.
func (l *Ledger) EventsSince(seq uint64) []domain.Event {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if seq >= l.seq {
		return nil
	}

	// Seq values are gap-free and 1-based, so the journal index is Seq-1.
	tail := l.journal[seq:]
	out := make([]domain.Event, len(tail))
	copy(out, tail)
	return out
}

// Subscribe registers a live event channel with the given buffer size.
// Events that would block are dropped for that subscriber; use EventsSince
// to backfill. The returned cancel func unregisters and closes the channel.
func (l *Ledger) Subscribe(buffer int) (<-chan domain.Event, func()) {
	if buffer < 1 {
		buffer = 1
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	id := l.nextSub
	l.nextSub++
	ch := make(chan domain.Event, buffer)
	l.subs[id] = ch

	cancel := func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		if _, ok := l.subs[id]; ok {
			delete(l.subs, id)
			close(ch)
		}
	}
	return ch, cancel
}
