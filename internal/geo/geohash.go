package geo

import (
	"strings"

	"wordgrid/internal/domain/entities"
)

// geohashAlphabet is the geohash base32 character set. 'a', 'i', 'l' and 'o'
// are left out to avoid confusion with digits.
const geohashAlphabet = "0123456789bcdefghjkmnpqrstuvwxyz"

const maxGeohashPrecision = 12

// geohashCellMeters is the approximate edge of a geohash cell per precision
// (index 0 is precision 1).
var geohashCellMeters = [maxGeohashPrecision]float64{
	5000e3, 1250e3, 156e3, 39.1e3, 4.89e3, 1.22e3, 153, 38.2, 4.77, 1.19, 0.149, 0.0372,
}

var geohashIndex = func() map[byte]int {
	m := make(map[byte]int, len(geohashAlphabet))
	for i := 0; i < len(geohashAlphabet); i++ {
		m[geohashAlphabet[i]] = i
	}
	return m
}()

// GeohashPrecisionFor returns the coarsest geohash precision whose cells are
// no larger than meters, so a word cell and its geohash describe a similar
// patch of ground.
func GeohashPrecisionFor(meters float64) int {
	for i, size := range geohashCellMeters {
		if size <= meters {
			return i + 1
		}
	}
	return maxGeohashPrecision
}

// span is a closed interval that the geohash bisects.
type span struct{ lo, hi float64 }

func (s *span) split(v float64) bool {
	mid := (s.lo + s.hi) / 2
	if v >= mid {
		s.lo = mid
		return true
	}
	s.hi = mid
	return false
}

func (s *span) narrow(bit bool) {
	mid := (s.lo + s.hi) / 2
	if bit {
		s.lo = mid
	} else {
		s.hi = mid
	}
}

// EncodeGeohash interleaves longitude (even bits) and latitude (odd bits)
// bisections and packs every 5 bits into one base32 character. Precision is
// clamped to [1, 12].
func EncodeGeohash(c entities.Coordinate, precision int) string {
	if precision < 1 {
		precision = 1
	}
	if precision > maxGeohashPrecision {
		precision = maxGeohashPrecision
	}

	spans := [2]span{{-180, 180}, {-90, 90}}
	values := [2]float64{c.Longitude, c.Latitude}

	var hash strings.Builder
	hash.Grow(precision)
	for bit := 0; hash.Len() < precision; {
		ch := 0
		for i := 0; i < 5; i, bit = i+1, bit+1 {
			ch <<= 1
			if spans[bit%2].split(values[bit%2]) {
				ch |= 1
			}
		}
		hash.WriteByte(geohashAlphabet[ch])
	}
	return hash.String()
}

// DecodeGeohash returns the center of the geohash cell. Characters outside the
// alphabet are skipped; the result is only as precise as the valid prefix.
func DecodeGeohash(hash string) entities.Coordinate {
	spans := [2]span{{-180, 180}, {-90, 90}}
	bit := 0
	for i := 0; i < len(hash); i++ {
		v, ok := geohashIndex[strings.ToLower(hash[i:i+1])[0]]
		if !ok {
			continue
		}
		for j := 4; j >= 0; j-- {
			spans[bit%2].narrow((v>>j)&1 == 1)
			bit++
		}
	}
	return entities.NewCoordinate(
		(spans[1].lo+spans[1].hi)/2,
		(spans[0].lo+spans[0].hi)/2,
	)
}
