package entities

import "github.com/paulmach/orb"

// Coordinate is a point on the Earth's surface in decimal degrees.
//
// Go Learning Note — Value Types vs Reference Types:
// Coordinate is a small, immutable data holder and is passed by value
// everywhere. Two float64s are cheaper to copy than a pointer is to chase, and
// a value can never be mutated behind a caller's back, which is what lets the
// conversion service be shared across goroutines without locks.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewCoordinate creates a Coordinate value from latitude and longitude.
func NewCoordinate(lat, lng float64) Coordinate {
	return Coordinate{
		Latitude:  lat,
		Longitude: lng,
	}
}

// Point converts to orb's [lng, lat] ordering.
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// CoordinateFromPoint is the inverse of Coordinate.Point.
func CoordinateFromPoint(p orb.Point) Coordinate {
	return Coordinate{Latitude: p.Lat(), Longitude: p.Lon()}
}

// GridCell addresses one cell of the grid by latitude band (Row, counted from
// the south pole) and segment within that band (Col, counted eastwards from
// the antimeridian).
type GridCell struct {
	Row int64 `json:"row"`
	Col int64 `json:"col"`
}
