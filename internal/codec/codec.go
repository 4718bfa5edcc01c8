// Package codec converts dense cell ids to ordered triples of dictionary
// indices and back, using fixed base-W positional arithmetic:
//
//	cellID = i1·W² + i2·W + i3
//
// Positions are significant; (i1, i2, i3) and (i2, i1, i3) are different
// cells.
package codec

import (
	"fmt"
	"math"

	"wordgrid/internal/domain/entities"
	"wordgrid/internal/domain/geoerr"
)

// Codec is bound to a dictionary size W and a cell count N with W³ ≥ N.
// The capacity check happens once in New, so per-call conversions cannot fail
// for lack of room.
type Codec struct {
	base      int64
	cellCount int64
}

// New returns a codec for base w over n cells. It fails with
// *geoerr.CapacityExceededError when w³ < n.
func New(w int, n int64) (*Codec, error) {
	if w <= 0 {
		return nil, fmt.Errorf("codec: dictionary size must be positive, got %d", w)
	}
	if n <= 0 {
		return nil, fmt.Errorf("codec: cell count must be positive, got %d", n)
	}
	if !fitsInCube(int64(w), n) {
		return nil, &geoerr.CapacityExceededError{DictionarySize: w, CellCount: n}
	}
	return &Codec{base: int64(w), cellCount: n}, nil
}

// fitsInCube reports whether w³ ≥ n without overflowing int64.
func fitsInCube(w, n int64) bool {
	if w > 2097151 { // 2097152³ = 2⁶³
		return true
	}
	return w*w*w >= n
}

// Base returns W.
func (c *Codec) Base() int { return int(c.base) }

// CellCount returns N.
func (c *Codec) CellCount() int64 { return c.cellCount }

// Capacity returns W³, saturating at MaxInt64.
func (c *Codec) Capacity() int64 {
	if c.base > 2097151 {
		return math.MaxInt64
	}
	return c.base * c.base * c.base
}

// ToTriple splits cellID into base-W digits, most significant first.
func (c *Codec) ToTriple(cellID int64) (entities.WordIndexTriple, error) {
	if cellID < 0 || cellID >= c.cellCount {
		return entities.WordIndexTriple{}, &geoerr.OutOfRangeError{CellID: cellID, Limit: c.cellCount}
	}
	i3 := cellID % c.base
	t := cellID / c.base
	i2 := t % c.base
	i1 := t / c.base
	if i1 >= c.base {
		// Unreachable once New has checked W³ ≥ N.
		return entities.WordIndexTriple{}, &geoerr.CapacityExceededError{DictionarySize: int(c.base), CellCount: c.cellCount}
	}
	return entities.WordIndexTriple{I1: int(i1), I2: int(i2), I3: int(i3)}, nil
}

// FromTriple recombines the digits. Each index must be in [0, W); the
// resulting id is not checked against N, the grid does that when it resolves
// the cell.
func (c *Codec) FromTriple(t entities.WordIndexTriple) (int64, error) {
	for pos, i := range [3]int{t.I1, t.I2, t.I3} {
		if i < 0 || int64(i) >= c.base {
			return 0, fmt.Errorf("codec: index %d at position %d outside [0, %d)", i, pos+1, c.base)
		}
	}
	return int64(t.I1)*c.base*c.base + int64(t.I2)*c.base + int64(t.I3), nil
}
