package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"wordgrid/internal/services"
)

const healthCheckTimeout = 2 * time.Second

type HealthHandler struct {
	conversionService *services.ConversionService
	historyService    *services.HistoryService
}

func NewHealthHandler(conversionService *services.ConversionService, historyService *services.HistoryService) *HealthHandler {
	return &HealthHandler{
		conversionService: conversionService,
		historyService:    historyService,
	}
}

// Root handles GET /
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "wordgrid API"})
}

// Health handles GET /health. The grid and dictionary are in memory and
// always ready; only the history store can make the service degraded.
func (h *HealthHandler) Health(c *gin.Context) {
	grid := h.conversionService.Grid()
	body := gin.H{
		"status":            "ok",
		"resolution_meters": grid.ResolutionMeters(),
		"cells":             grid.CellCount(),
		"dictionary_size":   h.conversionService.DictionarySize(),
		"history":           h.historyService.Backend(),
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()
	if err := h.historyService.Ping(ctx); err != nil {
		body["status"] = "degraded"
		body["history_error"] = err.Error()
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}

	c.JSON(http.StatusOK, body)
}
