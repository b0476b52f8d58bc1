package dto

// LoginRequest is the request body for API-key login.
type LoginRequest struct {
	Identity string `json:"identity" binding:"required,max=128"`
	APIKey   string `json:"api_key" binding:"required,max=256"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// IssueCredentialRequest is the request body for credential issuance.
type IssueCredentialRequest struct {
	Identity string `json:"identity" binding:"required,max=128,safe_id"`
}

// IssueCredentialResponse carries the plaintext API key, shown exactly once.
type IssueCredentialResponse struct {
	Identity string `json:"identity"`
	APIKey   string `json:"api_key"`
}

// VerifyParticipantRequest is the request body for participant verification.
type VerifyParticipantRequest struct {
	Identity       string `json:"identity" binding:"required,max=128,safe_id"`
	KYCFingerprint string `json:"kyc_fingerprint" binding:"required,max=256"`
}

// ParticipantBalanceResponse is the response body for a participant's
// recorded payout balance.
type ParticipantBalanceResponse struct {
	Identity string `json:"identity"`
	Balance  int64  `json:"balance"`
}

// ParticipantResponse is the response body for participant queries.
type ParticipantResponse struct {
	Identity       string `json:"identity"`
	IsVerified     bool   `json:"is_verified"`
	IsActive       bool   `json:"is_active"`
	KYCFingerprint string `json:"kyc_fingerprint"`
	VerifiedAt     string `json:"verified_at"`
}

// CreateSettlementRequest is the request body for settlement creation.
// The plaintiff is the authenticated caller.
type CreateSettlementRequest struct {
	Defendant   string `json:"defendant" binding:"required,max=128,safe_id"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	CaseNumber  string `json:"case_number" binding:"required,max=100"`
	Description string `json:"description" binding:"max=1000"`
}

// UpdateStatusRequest is the request body for a status transition.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,max=32"`
}

// DepositRequest is the request body for an escrow deposit.
type DepositRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// AddDocumentRequest is the request body for a document attachment.
type AddDocumentRequest struct {
	Fingerprint string `json:"fingerprint" binding:"required,max=256"`
}

// TransferOwnershipRequest is the request body for an ownership handover.
type TransferOwnershipRequest struct {
	NewOwner string `json:"new_owner" binding:"required,max=128,safe_id"`
}

// SettlementResponse is the response body for settlement queries.
type SettlementResponse struct {
	ID             uint64   `json:"id"`
	Plaintiff      string   `json:"plaintiff"`
	Defendant      string   `json:"defendant"`
	Amount         int64    `json:"amount"`
	CaseNumber     string   `json:"case_number"`
	Description    string   `json:"description"`
	Status         string   `json:"status"`
	FundsDeposited bool     `json:"funds_deposited"`
	FundsReleased  bool     `json:"funds_released"`
	Documents      []string `json:"documents"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`
}

// SettlementListResponse wraps a settlement ID listing.
type SettlementListResponse struct {
	Identity      string   `json:"identity"`
	SettlementIDs []uint64 `json:"settlement_ids"`
}

// DocumentListResponse wraps a settlement's document fingerprints.
type DocumentListResponse struct {
	SettlementID uint64   `json:"settlement_id"`
	Documents    []string `json:"documents"`
}

// VaultBalanceResponse is the response for the vault balance query.
type VaultBalanceResponse struct {
	Balance int64 `json:"balance"`
}

// WithdrawResponse reports the amount swept by an emergency withdrawal.
type WithdrawResponse struct {
	Amount int64 `json:"amount"`
}

// SystemStatusResponse reports the pause flag and current owner.
type SystemStatusResponse struct {
	Paused           bool   `json:"paused"`
	Owner            string `json:"owner"`
	TotalSettlements uint64 `json:"total_settlements"`
}
