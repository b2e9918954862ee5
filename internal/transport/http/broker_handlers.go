package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/y4pp1/counter/internal/core"
	"github.com/y4pp1/counter/internal/proto"
)

// BrokerHandlers serves the broker status endpoint.
type BrokerHandlers struct {
	hub *core.Hub
	log *zerolog.Logger
}

// NewBrokerHandlers creates a new broker handlers instance.
func NewBrokerHandlers(hub *core.Hub, logger *zerolog.Logger) *BrokerHandlers {
	return &BrokerHandlers{hub: hub, log: logger}
}

// BrokerStatusResponse reports the live broker state.
type BrokerStatusResponse struct {
	ConnectedClients     int            `json:"connectedClients"`
	AuthenticatedClients int            `json:"authenticatedClients"`
	CurrentPeople        []proto.Person `json:"currentPeople"`
}

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Status reports connection counts and the current board. The broker
// runs for the whole process lifetime, so the endpoint is idempotent
// and safe to poll.
// GET /api/broker
func (h *BrokerHandlers) Status(c *gin.Context) {
	stats, err := h.hub.Stats(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to read broker stats")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "broker unavailable"})
		return
	}

	c.JSON(http.StatusOK, BrokerStatusResponse{
		ConnectedClients:     stats.ConnectedClients,
		AuthenticatedClients: stats.AuthenticatedClients,
		CurrentPeople:        peopleToWire(stats.People),
	})
}
