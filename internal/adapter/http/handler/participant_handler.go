package handler

import (
	"time"

	"github.com/BidziilBey/justicefund-exchange/internal/adapter/http/dto"
	"github.com/BidziilBey/justicefund-exchange/internal/adapter/http/middleware"
	"github.com/BidziilBey/justicefund-exchange/internal/core/domain"
	"github.com/BidziilBey/justicefund-exchange/internal/core/ports"
	"github.com/BidziilBey/justicefund-exchange/pkg/response"

	"github.com/gin-gonic/gin"
)

// ParticipantHandler handles participant registry endpoints.
type ParticipantHandler struct {
	ledger ports.Ledger
}

// NewParticipantHandler creates a new ParticipantHandler.
func NewParticipantHandler(ledger ports.Ledger) *ParticipantHandler {
	return &ParticipantHandler{ledger: ledger}
}

func participantResponse(p *domain.Participant) dto.ParticipantResponse {
	verifiedAt := ""
	if !p.VerifiedAt.IsZero() {
		verifiedAt = p.VerifiedAt.Format(time.RFC3339)
	}
	return dto.ParticipantResponse{
		Identity:       p.Identity,
		IsVerified:     p.IsVerified,
		IsActive:       p.IsActive,
		KYCFingerprint: p.KYCFingerprint,
		VerifiedAt:     verifiedAt,
	}
}

// Verify handles POST /api/v1/participants.
func (h *ParticipantHandler) Verify(c *gin.Context) {
	var req dto.VerifyParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	dto.SanitizeStruct(&req)

	p, err := h.ledger.VerifyParticipant(c.Request.Context(), middleware.Identity(c), req.Identity, req.KYCFingerprint)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, participantResponse(p))
}

// Get handles GET /api/v1/participants/:identity.
func (h *ParticipantHandler) Get(c *gin.Context) {
	p, err := h.ledger.GetParticipant(c.Param("identity"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, participantResponse(p))
}

// Deactivate handles POST /api/v1/participants/:identity/deactivate.
func (h *ParticipantHandler) Deactivate(c *gin.Context) {
	identity := c.Param("identity")
	if err := h.ledger.DeactivateParticipant(c.Request.Context(), middleware.Identity(c), identity); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"identity": identity, "is_active": false})
}

// Reinstate handles POST /api/v1/participants/:identity/reinstate.
func (h *ParticipantHandler) Reinstate(c *gin.Context) {
	identity := c.Param("identity")
	if err := h.ledger.ReinstateParticipant(c.Request.Context(), middleware.Identity(c), identity); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"identity": identity, "is_active": true})
}

// Balance handles GET /api/v1/participants/:identity/balance.
func (h *ParticipantHandler) Balance(c *gin.Context) {
	identity := c.Param("identity")
	response.OK(c, dto.ParticipantBalanceResponse{
		Identity: identity,
		Balance:  h.ledger.ParticipantBalance(identity),
	})
}

// Settlements handles GET /api/v1/participants/:identity/settlements.
func (h *ParticipantHandler) Settlements(c *gin.Context) {
	identity := c.Param("identity")
	ids := h.ledger.GetUserSettlements(identity)
	response.OK(c, dto.SettlementListResponse{
		Identity:      identity,
		SettlementIDs: ids,
	})
}
