package services

import (
	"github.com/paulmach/orb"

	"wordgrid/internal/domain/entities"
	"wordgrid/internal/geo"
	"wordgrid/pkg/utils"
)

// NeighborAddress is an adjacent cell spelled out.
type NeighborAddress struct {
	Direction geo.Direction        `json:"direction"`
	Address   entities.WordAddress `json:"address"`
}

// CellDetail describes the patch of ground behind a word address.
type CellDetail struct {
	Address      entities.WordAddress `json:"address"`
	CellID       int64                `json:"cell_id"`
	Cell         entities.GridCell    `json:"cell"`
	Center       entities.Coordinate  `json:"center"`
	Bounds       orb.Bound            `json:"-"`
	WidthMeters  float64              `json:"width_meters"`
	HeightMeters float64              `json:"height_meters"`
	Geohash      string               `json:"geohash"`
	Neighbors    []NeighborAddress    `json:"neighbors"`
}

// Inspect resolves three words to their cell and reports its geometry and
// edge neighbours. Errors are the same as Decode's.
func (s *ConversionService) Inspect(w1, w2, w3 string) (*CellDetail, error) {
	cellID, err := s.CellIDOf(w1, w2, w3)
	if err != nil {
		return nil, err
	}

	cell, err := s.grid.Cell(cellID)
	if err != nil {
		return nil, err
	}
	center, err := s.grid.Center(cellID)
	if err != nil {
		return nil, err
	}
	bounds, err := s.grid.Bounds(cellID)
	if err != nil {
		return nil, err
	}
	address, err := s.AddressOf(cellID)
	if err != nil {
		return nil, err
	}

	radius := s.grid.EarthRadiusMeters()
	detail := &CellDetail{
		Address: address,
		CellID:  cellID,
		Cell:    cell,
		Center:  center,
		Bounds:  bounds,
		WidthMeters: utils.HaversineMeters(
			center.Latitude, bounds.Min.Lon(), center.Latitude, bounds.Max.Lon(), radius),
		HeightMeters: utils.HaversineMeters(
			bounds.Min.Lat(), center.Longitude, bounds.Max.Lat(), center.Longitude, radius),
		Geohash: geo.EncodeGeohash(center, geo.GeohashPrecisionFor(s.grid.ResolutionMeters())),
	}

	neighbors, err := s.grid.Neighbors(cellID)
	if err != nil {
		return nil, err
	}
	detail.Neighbors = make([]NeighborAddress, 0, len(neighbors))
	for _, n := range neighbors {
		addr, err := s.AddressOf(n.CellID)
		if err != nil {
			return nil, err
		}
		detail.Neighbors = append(detail.Neighbors, NeighborAddress{Direction: n.Direction, Address: addr})
	}
	return detail, nil
}
