package handlers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/teamswap/teamswap/internal/middleware"
	"github.com/teamswap/teamswap/internal/services"
	"github.com/teamswap/teamswap/pkg/logger"
)

// EventsHandler handles Server-Sent Events for real-time notifications
type EventsHandler struct {
	hub *services.EventHub
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(hub *services.EventHub) *EventsHandler {
	return &EventsHandler{hub: hub}
}

// Stream handles SSE connections for notification delivery. Runs behind
// AuthRequired, which also accepts the token query parameter for
// EventSource clients.
// GET /api/events
func (h *EventsHandler) Stream(c *gin.Context) {
	userID := middleware.GetUserID(c)

	// Set SSE headers
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Header("Access-Control-Allow-Origin", "*")

	connID := uuid.New().String()

	events := h.hub.Subscribe(userID, connID)
	defer h.hub.Unsubscribe(userID, connID)

	logger.Info().Str("user_id", userID).Str("conn_id", connID).Int("total", h.hub.ClientCount()).Msg("SSE client connected")

	c.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-events:
			if !ok {
				return false
			}
			data, err := json.Marshal(event)
			if err != nil {
				logger.Error().Err(err).Msg("SSE marshal error")
				return true
			}
			fmt.Fprintf(w, "event: notification\ndata: %s\n\n", data)
			c.Writer.Flush()
			return true
		case <-c.Request.Context().Done():
			logger.Info().Str("user_id", userID).Str("conn_id", connID).Msg("SSE client disconnected")
			return false
		}
	})
}
