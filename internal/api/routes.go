// Package api wires handlers and middleware onto a gin engine.
package api

import (
	"github.com/gin-gonic/gin"

	"wordgrid/internal/api/handlers"
	"wordgrid/internal/api/middleware"
	"wordgrid/internal/config"
	"wordgrid/internal/platform/logger"
)

type Router struct {
	conversionHandler *handlers.ConversionHandler
	cellHandler       *handlers.CellHandler
	historyHandler    *handlers.HistoryHandler
	healthHandler     *handlers.HealthHandler
	cfg               *config.Config
	log               *logger.Logger
}

func NewRouter(
	conversionHandler *handlers.ConversionHandler,
	cellHandler *handlers.CellHandler,
	historyHandler *handlers.HistoryHandler,
	healthHandler *handlers.HealthHandler,
	cfg *config.Config,
	log *logger.Logger,
) *Router {
	return &Router{
		conversionHandler: conversionHandler,
		cellHandler:       cellHandler,
		historyHandler:    historyHandler,
		healthHandler:     healthHandler,
		cfg:               cfg,
		log:               log,
	}
}

func (r *Router) Setup(engine *gin.Engine) {
	engine.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(r.log),
		middleware.CORS(r.cfg.CORS.Origins, r.cfg.CORS.AllowAll()),
	)

	// Health endpoints are not rate limited so probes never see 429.
	engine.GET("/", r.healthHandler.Root)
	engine.GET("/health", r.healthHandler.Health)

	api := engine.Group("/")
	if rps := r.cfg.RateLimit.RequestsPerSecond; rps > 0 {
		limiter := middleware.NewIPRateLimiter(rps, r.cfg.RateLimit.Burst, r.log)
		api.Use(limiter.RateLimit())
	}
	{
		api.POST("/convert-coords", r.conversionHandler.ConvertCoords)
		api.POST("/convert-words", r.conversionHandler.ConvertWords)
		api.GET("/cells/:w1/:w2/:w3", r.cellHandler.GetCell)
		api.GET("/history", r.historyHandler.Recent)
	}
}
