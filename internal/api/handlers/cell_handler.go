package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wordgrid/internal/domain/entities"
	"wordgrid/internal/geo"
	"wordgrid/internal/services"
	"wordgrid/pkg/utils"
)

type CellHandler struct {
	conversionService *services.ConversionService
}

func NewCellHandler(conversionService *services.ConversionService) *CellHandler {
	return &CellHandler{conversionService: conversionService}
}

// BoundsResponse is a bounding box as [lng, lat] corner pairs.
type BoundsResponse struct {
	Min [2]float64 `json:"min"`
	Max [2]float64 `json:"max"`
}

type NeighborResponse struct {
	Direction geo.Direction `json:"direction"`
	entities.WordAddress
}

type CellResponse struct {
	entities.WordAddress
	Words        string              `json:"words"`
	CellID       int64               `json:"cell_id"`
	Row          int64               `json:"row"`
	Col          int64               `json:"col"`
	Center       entities.Coordinate `json:"center"`
	Bounds       BoundsResponse      `json:"bounds"`
	WidthMeters  float64             `json:"width_meters"`
	HeightMeters float64             `json:"height_meters"`
	Geohash      string              `json:"geohash"`
	Neighbors    []NeighborResponse  `json:"neighbors"`
}

// GetCell handles GET /cells/:w1/:w2/:w3
func (h *CellHandler) GetCell(c *gin.Context) {
	detail, err := h.conversionService.Inspect(c.Param("w1"), c.Param("w2"), c.Param("w3"))
	if err != nil {
		writeError(c, err)
		return
	}

	resp := CellResponse{
		WordAddress: detail.Address,
		Words:       detail.Address.String(),
		CellID:      detail.CellID,
		Row:         detail.Cell.Row,
		Col:         detail.Cell.Col,
		Center:      detail.Center,
		Bounds: BoundsResponse{
			Min: [2]float64{detail.Bounds.Min.Lon(), detail.Bounds.Min.Lat()},
			Max: [2]float64{detail.Bounds.Max.Lon(), detail.Bounds.Max.Lat()},
		},
		WidthMeters:  utils.RoundTo(detail.WidthMeters, 2),
		HeightMeters: utils.RoundTo(detail.HeightMeters, 2),
		Geohash:      detail.Geohash,
		Neighbors:    make([]NeighborResponse, 0, len(detail.Neighbors)),
	}
	for _, n := range detail.Neighbors {
		resp.Neighbors = append(resp.Neighbors, NeighborResponse{Direction: n.Direction, WordAddress: n.Address})
	}

	c.JSON(http.StatusOK, resp)
}
