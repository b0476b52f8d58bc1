package handler

import (
	"strconv"

	"github.com/BidziilBey/justicefund-exchange/internal/core/ports"
	"github.com/BidziilBey/justicefund-exchange/pkg/apperror"
	"github.com/BidziilBey/justicefund-exchange/pkg/response"

	"github.com/gin-gonic/gin"
)

// EventsHandler exposes the ledger's activity feed.
type EventsHandler struct {
	ledger ports.Ledger
}

// NewEventsHandler creates a new EventsHandler.
func NewEventsHandler(ledger ports.Ledger) *EventsHandler {
	return &EventsHandler{ledger: ledger}
}

// List handles GET /api/v1/events?since=N. Clients poll with the last
// seq they have seen; seq values are gap-free, so a client can detect
// missed events from its own cursor.
func (h *EventsHandler) List(c *gin.Context) {
	since := uint64(0)
	if raw := c.Query("since"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			response.Error(c, apperror.Validation("invalid since cursor"))
			return
		}
		since = parsed
	}

	events := h.ledger.EventsSince(since)
	next := since
	if n := len(events); n > 0 {
		next = events[n-1].Seq
	}

	response.OK(c, gin.H{
		"events": events,
		"next":   next,
	})
}
