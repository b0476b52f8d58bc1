package handler

import (
	"errors"
	"net/http"

	"github.com/BidziilBey/justicefund-exchange/internal/adapter/http/middleware"
	"github.com/BidziilBey/justicefund-exchange/internal/core/ports"
	"github.com/BidziilBey/justicefund-exchange/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// bindError maps a request binding failure to an AppError. A body over the
// MaxBodySize limit surfaces from the reader as *http.MaxBytesError and
// must keep its 413 status instead of degrading to a validation error.
func bindError(err error) *apperror.AppError {
	var maxBytes *http.MaxBytesError
	if errors.As(err, &maxBytes) {
		return apperror.ErrPayloadTooLarge()
	}
	return apperror.Validation(err.Error())
}

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Ledger         ports.Ledger
	AuthSvc        ports.AuthService
	TokenSvc       ports.TokenService
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
	}

	// --- JWT-authenticated routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)

	participantHandler := NewParticipantHandler(deps.Ledger)
	participants := v1.Group("/participants", jwtAuth)
	{
		participants.POST("", participantHandler.Verify)
		participants.GET("/:identity", participantHandler.Get)
		participants.POST("/:identity/deactivate", participantHandler.Deactivate)
		participants.POST("/:identity/reinstate", participantHandler.Reinstate)
		participants.GET("/:identity/settlements", participantHandler.Settlements)
		participants.GET("/:identity/balance", participantHandler.Balance)
	}

	settlementHandler := NewSettlementHandler(deps.Ledger)
	settlements := v1.Group("/settlements", jwtAuth)
	{
		settlements.POST("", settlementHandler.Create)
		settlements.GET("/:id", settlementHandler.Get)
		settlements.PUT("/:id/status", settlementHandler.UpdateStatus)
		settlements.POST("/:id/deposit", settlementHandler.Deposit)
		settlements.POST("/:id/release", settlementHandler.Release)
		settlements.GET("/:id/documents", settlementHandler.Documents)
		settlements.POST("/:id/documents", settlementHandler.AddDocument)
	}

	systemHandler := NewSystemHandler(deps.Ledger)
	vault := v1.Group("/vault", jwtAuth)
	{
		vault.GET("/balance", systemHandler.VaultBalance)
		vault.POST("/withdraw", systemHandler.EmergencyWithdraw)
	}

	system := v1.Group("/system", jwtAuth)
	{
		system.GET("/status", systemHandler.Status)
		system.POST("/pause", systemHandler.Pause)
		system.POST("/unpause", systemHandler.Unpause)
		system.POST("/ownership", systemHandler.TransferOwnership)
	}

	admin := v1.Group("/admin", jwtAuth)
	{
		admin.POST("/credentials", authHandler.IssueCredential)
	}

	eventsHandler := NewEventsHandler(deps.Ledger)
	events := v1.Group("/events", jwtAuth)
	{
		events.GET("", eventsHandler.List)
	}

	return r
}
