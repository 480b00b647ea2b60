package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/futbolx/chat-server/internal/core"
)

// APIHandlers provides HTTP handlers for the plain REST endpoints.
type APIHandlers struct {
	hub *core.Hub
	log *zerolog.Logger
}

// NewAPIHandlers creates a new API handlers instance.
func NewAPIHandlers(hub *core.Hub, logger *zerolog.Logger) *APIHandlers {
	return &APIHandlers{hub: hub, log: logger}
}

// StatsResponse reports current hub counters.
type StatsResponse struct {
	Online   int `json:"online"`
	Messages int `json:"messages"`
}

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Banner replies with a plain greeting on the root path.
// GET /
func (h *APIHandlers) Banner(c *gin.Context) {
	c.String(http.StatusOK, "Futbol Chat Server ⚽")
}

// Health reports process liveness.
// GET /health
func (h *APIHandlers) Health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// Stats returns the online user and message counts, served through the
// hub's serialized loop so the numbers are always consistent.
// GET /api/stats
func (h *APIHandlers) Stats(c *gin.Context) {
	stats, err := h.hub.Stats(c.Request.Context())
	if err != nil {
		h.log.Warn().Err(err).Msg("stats snapshot failed")
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "hub unavailable"})
		return
	}
	c.JSON(http.StatusOK, StatsResponse{Online: stats.Online, Messages: stats.Messages})
}
