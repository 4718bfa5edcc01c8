package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wordgrid/internal/domain/geoerr"
	"wordgrid/internal/services"
)

type HistoryHandler struct {
	historyService *services.HistoryService
}

func NewHistoryHandler(historyService *services.HistoryService) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

// Recent handles GET /history?limit=n
func (h *HistoryHandler) Recent(c *gin.Context) {
	limit := services.DefaultHistoryLimit
	if raw, ok := c.GetQuery("limit"); ok {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > services.MaxHistoryLimit {
			writeError(c, &geoerr.ValidationError{
				Field:  "limit",
				Reason: fmt.Sprintf("must be an integer in [1, %d]", services.MaxHistoryLimit),
			})
			return
		}
		limit = n
	}

	conversions, err := h.historyService.Recent(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":       len(conversions),
		"conversions": conversions,
	})
}
