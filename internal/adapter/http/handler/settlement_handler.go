package handler

import (
	"strconv"
	"time"

	"github.com/BidziilBey/justicefund-exchange/internal/adapter/http/dto"
	"github.com/BidziilBey/justicefund-exchange/internal/adapter/http/middleware"
	"github.com/BidziilBey/justicefund-exchange/internal/core/domain"
	"github.com/BidziilBey/justicefund-exchange/internal/core/ports"
	"github.com/BidziilBey/justicefund-exchange/pkg/apperror"
	"github.com/BidziilBey/justicefund-exchange/pkg/response"

	"github.com/gin-gonic/gin"
)

// SettlementHandler handles settlement lifecycle endpoints.
type SettlementHandler struct {
	ledger ports.Ledger
}

// NewSettlementHandler creates a new SettlementHandler.
func NewSettlementHandler(ledger ports.Ledger) *SettlementHandler {
	return &SettlementHandler{ledger: ledger}
}

func settlementResponse(s *domain.Settlement) dto.SettlementResponse {
	docs := s.DocumentFingerprints
	if docs == nil {
		docs = []string{}
	}
	return dto.SettlementResponse{
		ID:             s.ID,
		Plaintiff:      s.Plaintiff,
		Defendant:      s.Defendant,
		Amount:         s.Amount,
		CaseNumber:     s.CaseNumber,
		Description:    s.Description,
		Status:         string(s.Status),
		FundsDeposited: s.FundsDeposited,
		FundsReleased:  s.FundsReleased,
		Documents:      docs,
		CreatedAt:      s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      s.UpdatedAt.Format(time.RFC3339),
	}
}

func settlementID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.Error(c, apperror.Validation("invalid settlement id"))
		return 0, false
	}
	return id, true
}

// Create handles POST /api/v1/settlements. The authenticated caller is
// the plaintiff.
func (h *SettlementHandler) Create(c *gin.Context) {
	var req dto.CreateSettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	dto.SanitizeStruct(&req)

	s, err := h.ledger.CreateSettlement(c.Request.Context(), middleware.Identity(c), ports.CreateSettlementRequest{
		Defendant:   req.Defendant,
		Amount:      req.Amount,
		CaseNumber:  req.CaseNumber,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, settlementResponse(s))
}

// Get handles GET /api/v1/settlements/:id.
func (h *SettlementHandler) Get(c *gin.Context) {
	id, ok := settlementID(c)
	if !ok {
		return
	}

	s, err := h.ledger.GetSettlement(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, settlementResponse(s))
}

// UpdateStatus handles PUT /api/v1/settlements/:id/status.
func (h *SettlementHandler) UpdateStatus(c *gin.Context) {
	id, ok := settlementID(c)
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	dto.SanitizeStruct(&req)

	err := h.ledger.UpdateStatus(c.Request.Context(), middleware.Identity(c), id, domain.SettlementStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	s, err := h.ledger.GetSettlement(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, settlementResponse(s))
}

// Deposit handles POST /api/v1/settlements/:id/deposit.
func (h *SettlementHandler) Deposit(c *gin.Context) {
	id, ok := settlementID(c)
	if !ok {
		return
	}

	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	if err := h.ledger.DepositFunds(c.Request.Context(), middleware.Identity(c), id, req.Amount); err != nil {
		response.Error(c, err)
		return
	}

	s, err := h.ledger.GetSettlement(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, settlementResponse(s))
}

// Release handles POST /api/v1/settlements/:id/release.
func (h *SettlementHandler) Release(c *gin.Context) {
	id, ok := settlementID(c)
	if !ok {
		return
	}

	if err := h.ledger.ReleaseFunds(c.Request.Context(), middleware.Identity(c), id); err != nil {
		response.Error(c, err)
		return
	}

	s, err := h.ledger.GetSettlement(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, settlementResponse(s))
}

// AddDocument handles POST /api/v1/settlements/:id/documents.
func (h *SettlementHandler) AddDocument(c *gin.Context) {
	id, ok := settlementID(c)
	if !ok {
		return
	}

	var req dto.AddDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	dto.SanitizeStruct(&req)

	if err := h.ledger.AddDocument(c.Request.Context(), middleware.Identity(c), id, req.Fingerprint); err != nil {
		response.Error(c, err)
		return
	}

	docs, err := h.ledger.GetSettlementDocuments(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.DocumentListResponse{SettlementID: id, Documents: docs})
}

// Documents handles GET /api/v1/settlements/:id/documents.
func (h *SettlementHandler) Documents(c *gin.Context) {
	id, ok := settlementID(c)
	if !ok {
		return
	}

	docs, err := h.ledger.GetSettlementDocuments(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if docs == nil {
		docs = []string{}
	}
	response.OK(c, dto.DocumentListResponse{SettlementID: id, Documents: docs})
}
