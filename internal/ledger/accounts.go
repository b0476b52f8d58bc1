package ledger

import (
	"context"
	"fmt"
	"sync"
)

// AccountBook is the default ValueTransferor: an in-process record of
// per-identity balances. It stands in for whatever payout rail carries
// value out of the vault in a real deployment.
type AccountBook struct {
	mu       sync.RWMutex
	balances map[string]int64
}

// NewAccountBook creates an empty AccountBook.
func NewAccountBook() *AccountBook {
	return &AccountBook{balances: make(map[string]int64)}
}

// Credit adds amount to the recipient's recorded balance.
func (b *AccountBook) Credit(_ context.Context, recipient string, amount int64) error {
	if recipient == "" {
		return fmt.Errorf("credit: empty recipient")
	}
	if amount <= 0 {
		return fmt.Errorf("credit: non-positive amount %d", amount)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.balances[recipient] += amount
	return nil
}

// BalanceOf returns the recorded balance for identity.
func (b *AccountBook) BalanceOf(identity string) int64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.balances[identity]
}

// ParticipantBalance returns the recorded payout balance for identity.
// Zero when the configured transferor keeps no local book.
func (l *Ledger) ParticipantBalance(identity string) int64 {
	if book, ok := l.transferor.(interface{ BalanceOf(string) int64 }); ok {
		return book.BalanceOf(identity)
	}
	return 0
}
