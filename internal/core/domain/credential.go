package domain

import "time"

// Credential binds an API key (stored hashed) to a ledger identity.
// The plaintext key is shown once at issuance and never stored.
type Credential struct {
	Identity   string    `json:"identity"`
	APIKeyHash string    `json:"-"`
	IssuedBy   string    `json:"issued_by"`
	CreatedAt  time.Time `json:"created_at"`
}
