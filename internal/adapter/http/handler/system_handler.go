package handler

import (
	"github.com/BidziilBey/justicefund-exchange/internal/adapter/http/dto"
	"github.com/BidziilBey/justicefund-exchange/internal/adapter/http/middleware"
	"github.com/BidziilBey/justicefund-exchange/internal/core/ports"
	"github.com/BidziilBey/justicefund-exchange/pkg/response"

	"github.com/gin-gonic/gin"
)

// SystemHandler handles vault and administrative control endpoints.
type SystemHandler struct {
	ledger ports.Ledger
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(ledger ports.Ledger) *SystemHandler {
	return &SystemHandler{ledger: ledger}
}

// Status handles GET /api/v1/system/status.
func (h *SystemHandler) Status(c *gin.Context) {
	response.OK(c, dto.SystemStatusResponse{
		Paused:           h.ledger.Paused(),
		Owner:            h.ledger.Owner(),
		TotalSettlements: h.ledger.TotalSettlements(),
	})
}

// Pause handles POST /api/v1/system/pause.
func (h *SystemHandler) Pause(c *gin.Context) {
	if err := h.ledger.Pause(c.Request.Context(), middleware.Identity(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"paused": true})
}

// Unpause handles POST /api/v1/system/unpause.
func (h *SystemHandler) Unpause(c *gin.Context) {
	if err := h.ledger.Unpause(c.Request.Context(), middleware.Identity(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"paused": false})
}

// TransferOwnership handles POST /api/v1/system/ownership.
func (h *SystemHandler) TransferOwnership(c *gin.Context) {
	var req dto.TransferOwnershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	dto.SanitizeStruct(&req)

	if err := h.ledger.TransferOwnership(c.Request.Context(), middleware.Identity(c), req.NewOwner); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"owner": req.NewOwner})
}

// VaultBalance handles GET /api/v1/vault/balance.
func (h *SystemHandler) VaultBalance(c *gin.Context) {
	response.OK(c, dto.VaultBalanceResponse{Balance: h.ledger.TotalBalance()})
}

// EmergencyWithdraw handles POST /api/v1/vault/withdraw.
func (h *SystemHandler) EmergencyWithdraw(c *gin.Context) {
	amount, err := h.ledger.EmergencyWithdraw(c.Request.Context(), middleware.Identity(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.WithdrawResponse{Amount: amount})
}
