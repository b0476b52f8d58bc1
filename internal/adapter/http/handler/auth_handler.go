package handler

import (
	"net/http"

	"github.com/BidziilBey/justicefund-exchange/internal/adapter/http/dto"
	"github.com/BidziilBey/justicefund-exchange/internal/adapter/http/middleware"
	"github.com/BidziilBey/justicefund-exchange/internal/core/ports"
	"github.com/BidziilBey/justicefund-exchange/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authSvc ports.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authSvc ports.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	dto.SanitizeStruct(&req)

	token, expiry, err := h.authSvc.Login(c.Request.Context(), req.Identity, req.APIKey)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.LoginResponse{
		Token:  token,
		Expiry: expiry.Unix(),
	})
}

// IssueCredential handles POST /api/v1/admin/credentials. Owner-only;
// the plaintext API key appears in this response and nowhere else.
func (h *AuthHandler) IssueCredential(c *gin.Context) {
	var req dto.IssueCredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	dto.SanitizeStruct(&req)

	apiKey, err := h.authSvc.IssueCredential(c.Request.Context(), middleware.Identity(c), req.Identity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.IssueCredentialResponse{
		Identity: req.Identity,
		APIKey:   apiKey,
	})
}

// HealthCheck handles GET /health — deep health check verifying all dependencies.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
