package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/y4pp1/counter/internal/config"
	"github.com/y4pp1/counter/internal/core"
	"github.com/y4pp1/counter/internal/metrics"
)

// NewServer builds the HTTP server exposing the websocket endpoint, the
// broker status endpoint, health, and metrics.
func NewServer(hub *core.Hub, m *metrics.Metrics, cfg config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery(), LoggerMiddleware(logger))

	router.GET("/health", healthHandler)
	router.GET("/ws", gin.WrapH(NewWSHandler(hub, m, logger)))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	broker := NewBrokerHandlers(hub, logger)
	router.GET("/api/broker", broker.Status)

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

func healthHandler(c *gin.Context) {
	c.String(stdhttp.StatusOK, "ok")
}
