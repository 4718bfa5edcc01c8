package geo

import (
	"github.com/paulmach/orb"

	"wordgrid/internal/domain/entities"
)

func entitiesCell(row, col int64) entities.GridCell {
	return entities.GridCell{Row: row, Col: col}
}

func orbPoint(lng, lat float64) orb.Point {
	return orb.Point{lng, lat}
}
