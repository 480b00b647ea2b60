package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/futbolx/chat-server/internal/config"
	"github.com/futbolx/chat-server/internal/core"
)

// NewServer builds the HTTP server: health and stats endpoints, the
// static client assets, and the WebSocket upgrade route.
func NewServer(hub *core.Hub, cfg *config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware(logger))

	api := NewAPIHandlers(hub, logger)
	router.GET("/", api.Banner)
	router.GET("/health", api.Health)
	router.GET("/api/stats", api.Stats)

	if cfg.StaticDir != "" {
		router.Static("/public", cfg.StaticDir)
	}

	router.GET("/ws", gin.WrapH(NewWSHandler(hub, cfg, logger)))

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}
