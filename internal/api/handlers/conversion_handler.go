package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wordgrid/internal/domain/entities"
	"wordgrid/internal/services"
	"wordgrid/internal/wordlist"
)

type ConversionHandler struct {
	conversionService *services.ConversionService
	historyService    *services.HistoryService
}

func NewConversionHandler(conversionService *services.ConversionService, historyService *services.HistoryService) *ConversionHandler {
	return &ConversionHandler{
		conversionService: conversionService,
		historyService:    historyService,
	}
}

// CoordinatesRequest uses pointers so that 0 (the equator, the prime
// meridian) is distinguishable from a missing field.
type CoordinatesRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" binding:"required,gte=-180,lt=180"`
}

type WordsRequest struct {
	Word1 string `json:"word1" binding:"required"`
	Word2 string `json:"word2" binding:"required"`
	Word3 string `json:"word3" binding:"required"`
}

// ConvertCoords handles POST /convert-coords
func (h *ConversionHandler) ConvertCoords(c *gin.Context) {
	var req CoordinatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	addr, err := h.conversionService.Encode(*req.Latitude, *req.Longitude)
	if err != nil {
		writeError(c, err)
		return
	}

	h.historyService.Record(c.Request.Context(), entities.DirectionEncode,
		entities.NewCoordinate(*req.Latitude, *req.Longitude), addr)
	c.JSON(http.StatusOK, addr)
}

// ConvertWords handles POST /convert-words
func (h *ConversionHandler) ConvertWords(c *gin.Context) {
	var req WordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	coord, err := h.conversionService.Decode(req.Word1, req.Word2, req.Word3)
	if err != nil {
		writeError(c, err)
		return
	}

	addr := entities.WordAddress{
		Word1: wordlist.Normalize(req.Word1),
		Word2: wordlist.Normalize(req.Word2),
		Word3: wordlist.Normalize(req.Word3),
	}
	h.historyService.Record(c.Request.Context(), entities.DirectionDecode, coord, addr)
	c.JSON(http.StatusOK, coord)
}
