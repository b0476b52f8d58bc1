package domain

import "time"

// Participant represents an identity that has passed KYC verification.
// Participants are never deleted, only deactivated.
type Participant struct {
	Identity       string    `json:"identity"`
	IsVerified     bool      `json:"is_verified"`
	IsActive       bool      `json:"is_active"`
	KYCFingerprint string    `json:"kyc_fingerprint"`
	VerifiedAt     time.Time `json:"verified_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// IsEligible returns true if the participant may create settlements
// or move funds.
func (p *Participant) IsEligible() bool {
	return p.IsVerified && p.IsActive
}
