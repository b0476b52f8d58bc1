package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/BidziilBey/justicefund-exchange/internal/core/domain"
	"github.com/BidziilBey/justicefund-exchange/internal/core/ports"
	"github.com/BidziilBey/justicefund-exchange/pkg/apperror"

	"github.com/rs/zerolog"
)

// Ledger is the authoritative settlement state machine. All state lives
// behind one RWMutex: mutating operations hold the write lock end to end,
// so they are linearizable and never interleave; reads see the last fully
// committed state. Every mutating path validates completely before the
// first state change, which makes failed operations free of side effects.
type Ledger struct {
	mu sync.RWMutex

	policy ports.AccessPolicy
	paused bool

	participants map[string]*domain.Participant

	settlements map[uint64]*domain.Settlement
	caseNumbers map[string]uint64
	byParty     map[string][]uint64
	lastID      uint64

	vaultBalance int64
	transferor   ports.ValueTransferor

	journal []domain.Event
	seq     uint64
	subs    map[uint64]chan domain.Event
	nextSub uint64
	sinks   []ports.EventSink

	strict bool
	log    zerolog.Logger
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithTransferor sets the value transfer capability used by fund release
// and emergency withdrawal. Defaults to an in-process AccountBook.
func WithTransferor(t ports.ValueTransferor) Option {
	return func(l *Ledger) { l.transferor = t }
}

// WithEventSinks attaches external sinks that receive every committed event.
func WithEventSinks(sinks ...ports.EventSink) Option {
	return func(l *Ledger) { l.sinks = append(l.sinks, sinks...) }
}

// WithStrictTransitions restricts status updates to the forward-only path
// Pending -> Approved -> Completed.
func WithStrictTransitions() Option {
	return func(l *Ledger) { l.strict = true }
}

// WithAccessPolicy replaces the default single-owner policy.
func WithAccessPolicy(p ports.AccessPolicy) Option {
	return func(l *Ledger) { l.policy = p }
}

// WithLogger sets the ledger's logger.
func WithLogger(log zerolog.Logger) Option {
	return func(l *Ledger) { l.log = log }
}

// New creates a Ledger owned by the given identity.
func New(owner string, opts ...Option) *Ledger {
	l := &Ledger{
		policy:       NewOwnerPolicy(owner),
		participants: make(map[string]*domain.Participant),
		settlements:  make(map[uint64]*domain.Settlement),
		caseNumbers:  make(map[string]uint64),
		byParty:      make(map[string][]uint64),
		subs:         make(map[uint64]chan domain.Event),
		log:          zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.transferor == nil {
		l.transferor = NewAccountBook()
	}
	return l
}

// requireOwner fails unless caller holds the owner capability.
// Caller must hold l.mu.
func (l *Ledger) requireOwner(caller string) error {
	if !l.policy.IsOwner(caller) {
		return apperror.ErrUnauthorized()
	}
	return nil
}

// requireNotPaused fails while the global pause flag is set.
// Caller must hold l.mu.
func (l *Ledger) requireNotPaused() error {
	if l.paused {
		return apperror.ErrSystemPaused()
	}
	return nil
}

// Pause sets the global pause flag. Owner-only.
func (l *Ledger) Pause(ctx context.Context, caller string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.requireOwner(caller); err != nil {
		return err
	}
	if l.paused {
		return apperror.ErrSystemPaused()
	}

	l.paused = true
	l.emit(ctx, domain.Event{Kind: domain.EventLedgerPaused, Actor: caller})

	l.log.Warn().Str("caller", caller).Msg("ledger paused")
	return nil
}

// Unpause clears the global pause flag. Owner-only.
func (l *Ledger) Unpause(ctx context.Context, caller string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.requireOwner(caller); err != nil {
		return err
	}
	if !l.paused {
		return apperror.Validation("ledger is not paused")
	}

	l.paused = false
	l.emit(ctx, domain.Event{Kind: domain.EventLedgerUnpaused, Actor: caller})

	l.log.Info().Str("caller", caller).Msg("ledger unpaused")
	return nil
}

// Paused reports the global pause flag.
func (l *Ledger) Paused() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.paused
}

// TransferOwnership hands the owner capability to newOwner. Single-step,
// owner-only, deliberately not gated by pause: it is an incident lever.
func (l *Ledger) TransferOwnership(ctx context.Context, caller, newOwner string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.requireOwner(caller); err != nil {
		return err
	}
	if newOwner == "" {
		return apperror.ErrInvalidArgument("New owner cannot be empty")
	}

	l.policy.Transfer(newOwner)
	l.emit(ctx, domain.Event{Kind: domain.EventOwnershipTransferred, Actor: caller, Subject: newOwner})

	l.log.Warn().Str("previous", caller).Str("new", newOwner).Msg("ownership transferred")
	return nil
}

// Owner returns the current owner identity.
func (l *Ledger) Owner() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.policy.Owner()
}

func now() time.Time {
	return time.Now().UTC()
}

// OwnerPolicy is the default single-owner access policy: a plain predicate
// over the caller identity. It carries its own lock because one instance is
// shared between the ledger and the auth service, so reads can race an
// ownership transfer outside the ledger's lock domain.
type OwnerPolicy struct {
	mu    sync.RWMutex
	owner string
}

// NewOwnerPolicy creates an OwnerPolicy for the given owner.
func NewOwnerPolicy(owner string) *OwnerPolicy {
	return &OwnerPolicy{owner: owner}
}

// IsOwner reports whether caller is the configured owner.
func (p *OwnerPolicy) IsOwner(caller string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return caller != "" && caller == p.owner
}

// Owner returns the configured owner.
func (p *OwnerPolicy) Owner() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.owner
}

// Transfer replaces the configured owner.
func (p *OwnerPolicy) Transfer(newOwner string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.owner = newOwner
}
