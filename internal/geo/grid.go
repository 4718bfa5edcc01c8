// Package geo tessellates the Earth's surface into numbered cells and maps
// coordinates to and from dense cell ids.
//
// Go Learning Note — The Row/Column Grid:
// Latitude is cut into rows of fixed angular height, chosen so a row is
// ResolutionMeters tall. Each row is then cut into as many columns as fit
// ResolutionMeters wide at that row's latitude. Rows near the equator get
// ~13 million columns at 3 m resolution; rows near the poles shrink to a handful
// because meridians converge. Cells therefore stay roughly square, except in the
// polar rows where the column count degenerates. That distortion is accepted:
// fixing it needs a real equal-area projection.
//
// Cells are numbered row by row from the south pole, west to east from the
// antimeridian, so cell ids are dense in [0, N). A prefix-sum table
// (rowOffset) turns a (row, col) pair into an id and back with a binary search.
package geo

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/paulmach/orb"

	"wordgrid/internal/domain/entities"
	"wordgrid/internal/domain/geoerr"
)

const (
	// DefaultResolutionMeters is the target edge length of a cell.
	DefaultResolutionMeters = 3.0
	// DefaultEarthRadiusMeters is the mean Earth radius.
	DefaultEarthRadiusMeters = 6371000.0

	// maxRows bounds the row offset table (8 bytes per row).
	maxRows = 1 << 26
)

var (
	ErrInvalidResolution = errors.New("grid: resolution must be a positive finite number of meters")
	ErrInvalidRadius     = errors.New("grid: earth radius must be a positive finite number of meters")
)

// Grid is the immutable tessellation. Build it once with NewGrid and share it;
// every method is a pure function of the receiver and its arguments.
type Grid struct {
	resolution   float64
	radius       float64
	rowHeightDeg float64
	rowCount     int64
	// rowOffset[r] is the number of cells in rows below r. It has
	// rowCount+1 entries; the last one is the total cell count.
	rowOffset []int64
}

// NewGrid builds the row offset table for the given resolution and radius.
// At the default 3 m this is ~6.7 million rows and takes a noticeable moment,
// so callers build it once at startup.
func NewGrid(resolutionMeters, earthRadiusMeters float64) (*Grid, error) {
	if !(resolutionMeters > 0) || math.IsInf(resolutionMeters, 0) {
		return nil, ErrInvalidResolution
	}
	if !(earthRadiusMeters > 0) || math.IsInf(earthRadiusMeters, 0) {
		return nil, ErrInvalidRadius
	}

	metersPerDegree := math.Pi * earthRadiusMeters / 180
	rowHeight := resolutionMeters / metersPerDegree
	rows := math.Ceil(180 / rowHeight)
	if rows > maxRows {
		return nil, fmt.Errorf("grid: %.0f rows at %g m resolution exceeds the limit of %d", rows, resolutionMeters, maxRows)
	}

	g := &Grid{
		resolution:   resolutionMeters,
		radius:       earthRadiusMeters,
		rowHeightDeg: rowHeight,
		rowCount:     int64(rows),
	}

	circumference := 2 * math.Pi * earthRadiusMeters
	g.rowOffset = make([]int64, g.rowCount+1)
	for r := int64(0); r < g.rowCount; r++ {
		width := circumference * math.Cos(g.latCenter(r)*math.Pi/180)
		cols := int64(math.Round(width / resolutionMeters))
		if cols < 1 {
			cols = 1
		}
		g.rowOffset[r+1] = g.rowOffset[r] + cols
	}
	return g, nil
}

// ResolutionMeters returns the configured cell size.
func (g *Grid) ResolutionMeters() float64 { return g.resolution }

// EarthRadiusMeters returns the sphere radius the grid was built for.
func (g *Grid) EarthRadiusMeters() float64 { return g.radius }

// RowHeightDeg returns the angular height of every row.
func (g *Grid) RowHeightDeg() float64 { return g.rowHeightDeg }

// RowCount returns the number of latitude bands.
func (g *Grid) RowCount() int64 { return g.rowCount }

// CellCount returns N, the number of addressable cells.
func (g *Grid) CellCount() int64 { return g.rowOffset[g.rowCount] }

// ColCount returns the number of columns in row, or 0 if row does not exist.
func (g *Grid) ColCount(row int64) int64 {
	if row < 0 || row >= g.rowCount {
		return 0
	}
	return g.rowOffset[row+1] - g.rowOffset[row]
}

// ValidateCoordinate checks that lat is in [-90, 90] and lng in [-180, 180).
// The longitude range is half-open: 180 and -180 are the same meridian and
// only -180 is accepted.
func ValidateCoordinate(lat, lng float64) error {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return &geoerr.ValidationError{Field: "latitude", Reason: fmt.Sprintf("%v is outside [-90, 90]", lat)}
	}
	if math.IsNaN(lng) || lng < -180 || lng >= 180 {
		return &geoerr.ValidationError{Field: "longitude", Reason: fmt.Sprintf("%v is outside [-180, 180)", lng)}
	}
	return nil
}

// CellID returns the id of the cell containing (lat, lng).
func (g *Grid) CellID(lat, lng float64) (int64, error) {
	if err := ValidateCoordinate(lat, lng); err != nil {
		return 0, err
	}
	row := g.rowOf(lat)
	return g.rowOffset[row] + g.colOf(row, lng), nil
}

// Cell splits a cell id into its row and column.
func (g *Grid) Cell(cellID int64) (entities.GridCell, error) {
	if err := g.checkID(cellID); err != nil {
		return entities.GridCell{}, err
	}
	row := g.rowContaining(cellID)
	return entities.GridCell{Row: row, Col: cellID - g.rowOffset[row]}, nil
}

// CellIDOf is the inverse of Cell.
func (g *Grid) CellIDOf(cell entities.GridCell) (int64, error) {
	cols := g.ColCount(cell.Row)
	if cols == 0 || cell.Col < 0 || cell.Col >= cols {
		return 0, fmt.Errorf("grid: cell (row %d, col %d) does not exist", cell.Row, cell.Col)
	}
	return g.rowOffset[cell.Row] + cell.Col, nil
}

// Center returns the center of the cell. Decoding always lands here, so
// encode followed by decode moves a point to the middle of its cell.
func (g *Grid) Center(cellID int64) (entities.Coordinate, error) {
	cell, err := g.Cell(cellID)
	if err != nil {
		return entities.Coordinate{}, err
	}
	colWidth := 360 / float64(g.ColCount(cell.Row))
	lng := -180 + (float64(cell.Col)+0.5)*colWidth
	if lng >= 180 {
		lng -= 360
	}
	return entities.NewCoordinate(g.latCenter(cell.Row), lng), nil
}

// Bounds returns the cell's rectangle as [west, south]–[east, north].
func (g *Grid) Bounds(cellID int64) (orb.Bound, error) {
	cell, err := g.Cell(cellID)
	if err != nil {
		return orb.Bound{}, err
	}
	south, north := g.rowExtent(cell.Row)
	colWidth := 360 / float64(g.ColCount(cell.Row))
	west := -180 + float64(cell.Col)*colWidth
	east := west + colWidth
	if east > 180 {
		east = 180
	}
	return orb.Bound{
		Min: orb.Point{west, south},
		Max: orb.Point{east, north},
	}, nil
}

func (g *Grid) checkID(cellID int64) error {
	if cellID < 0 || cellID >= g.CellCount() {
		return &geoerr.OutOfRangeError{CellID: cellID, Limit: g.CellCount()}
	}
	return nil
}

// rowOf maps a validated latitude to its row. lat == 90 would land one past
// the last row and is clamped back.
func (g *Grid) rowOf(lat float64) int64 {
	row := int64(math.Floor((lat + 90) / g.rowHeightDeg))
	return clamp(row, 0, g.rowCount-1)
}

// colOf maps a validated longitude to a column of row. No modulo here: for
// lng just below 180, lng+180 can round up to exactly 360, and wrapping that
// to 0 would move the point to the opposite edge of the row. The clamp keeps
// it in the last column instead.
func (g *Grid) colOf(row int64, lng float64) int64 {
	cols := g.ColCount(row)
	colWidth := 360 / float64(cols)
	col := int64(math.Floor((lng + 180) / colWidth))
	return clamp(col, 0, cols-1)
}

// rowContaining finds r with rowOffset[r] <= id < rowOffset[r+1].
//
// Go Learning Note — sort.Search:
// sort.Search(n, f) returns the smallest i in [0, n) for which f(i) is true,
// assuming f flips from false to true exactly once. rowOffset is
// non-decreasing, so "rowOffset[i+1] > id" is such a predicate and the search
// is O(log rows), about 23 probes at 3 m resolution.
func (g *Grid) rowContaining(cellID int64) int64 {
	r := sort.Search(int(g.rowCount), func(i int) bool {
		return g.rowOffset[i+1] > cellID
	})
	return int64(r)
}

// rowExtent returns the south and north latitude of row. Only the last row
// can be cut short by the pole.
func (g *Grid) rowExtent(row int64) (south, north float64) {
	south = -90 + float64(row)*g.rowHeightDeg
	north = south + g.rowHeightDeg
	if north > 90 {
		north = 90
	}
	return south, north
}

// latCenter is the representative latitude of row: the middle of the band,
// or the middle of its in-range part for a last row that overshoots 90°.
func (g *Grid) latCenter(row int64) float64 {
	south, north := g.rowExtent(row)
	if north == south+g.rowHeightDeg {
		return -90 + (float64(row)+0.5)*g.rowHeightDeg
	}
	return (south + north) / 2
}

func clamp(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
