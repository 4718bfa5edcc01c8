package codec

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordgrid/internal/domain/entities"
	"wordgrid/internal/domain/geoerr"
)

func TestNewCapacity(t *testing.T) {
	tests := []struct {
		name    string
		w       int
		n       int64
		wantCap bool
	}{
		{name: "exact cube", w: 10, n: 1000},
		{name: "one short", w: 10, n: 1001, wantCap: true},
		{name: "production sizes", w: 40000, n: 56_673_830_212_199},
		{name: "too few words for 3 m", w: 30000, n: 56_673_830_212_199, wantCap: true},
		{name: "huge base does not overflow", w: 3_000_000, n: 1 << 62},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.w, tt.n)
			if tt.wantCap {
				var capErr *geoerr.CapacityExceededError
				require.True(t, errors.As(err, &capErr), "got %v", err)
				assert.Equal(t, tt.w, capErr.DictionarySize)
				assert.Equal(t, tt.n, capErr.CellCount)
				return
			}
			require.NoError(t, err)
			assert.GreaterOrEqual(t, c.Capacity(), tt.n)
		})
	}

	_, err := New(0, 10)
	assert.Error(t, err)
	_, err = New(10, 0)
	assert.Error(t, err)
}

func TestToTripleDigits(t *testing.T) {
	c, err := New(10, 1000)
	require.NoError(t, err)

	tests := []struct {
		id   int64
		want entities.WordIndexTriple
	}{
		{0, entities.WordIndexTriple{I1: 0, I2: 0, I3: 0}},
		{7, entities.WordIndexTriple{I1: 0, I2: 0, I3: 7}},
		{42, entities.WordIndexTriple{I1: 0, I2: 4, I3: 2}},
		{999, entities.WordIndexTriple{I1: 9, I2: 9, I3: 9}},
		{123, entities.WordIndexTriple{I1: 1, I2: 2, I3: 3}},
	}
	for _, tt := range tests {
		got, err := c.ToTriple(tt.id)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "id %d", tt.id)
	}
}

func TestTripleIsPositional(t *testing.T) {
	c, err := New(10, 1000)
	require.NoError(t, err)

	a, err := c.FromTriple(entities.WordIndexTriple{I1: 1, I2: 2, I3: 3})
	require.NoError(t, err)
	b, err := c.FromTriple(entities.WordIndexTriple{I1: 2, I2: 1, I3: 3})
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestBijectionExhaustive(t *testing.T) {
	const w = 23
	n := int64(w*w*w - 5)
	c, err := New(w, n)
	require.NoError(t, err)

	seen := make(map[entities.WordIndexTriple]int64, n)
	for id := int64(0); id < n; id++ {
		tr, err := c.ToTriple(id)
		require.NoError(t, err)
		if prev, dup := seen[tr]; dup {
			t.Fatalf("ids %d and %d share triple %+v", prev, id, tr)
		}
		seen[tr] = id

		back, err := c.FromTriple(tr)
		require.NoError(t, err)
		require.Equal(t, id, back)
	}
}

func TestBijectionSampledProductionSize(t *testing.T) {
	const n = 56_673_830_212_199
	c, err := New(40000, n)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10000; i++ {
		id := rng.Int63n(n)
		tr, err := c.ToTriple(id)
		require.NoError(t, err)
		for _, idx := range []int{tr.I1, tr.I2, tr.I3} {
			require.GreaterOrEqual(t, idx, 0)
			require.Less(t, idx, 40000)
		}
		back, err := c.FromTriple(tr)
		require.NoError(t, err)
		require.Equal(t, id, back)
	}
}

func TestRangeErrors(t *testing.T) {
	c, err := New(10, 500)
	require.NoError(t, err)

	for _, id := range []int64{-1, 500, 999} {
		_, err := c.ToTriple(id)
		var oor *geoerr.OutOfRangeError
		assert.True(t, errors.As(err, &oor), "id %d", id)
	}

	for _, tr := range []entities.WordIndexTriple{
		{I1: -1, I2: 0, I3: 0},
		{I1: 0, I2: 10, I3: 0},
		{I1: 0, I2: 0, I3: 11},
	} {
		_, err := c.FromTriple(tr)
		assert.Error(t, err, "%+v", tr)
	}

	// In range digit-wise but past N: left for the grid to reject.
	id, err := c.FromTriple(entities.WordIndexTriple{I1: 9, I2: 9, I3: 9})
	require.NoError(t, err)
	assert.Equal(t, int64(999), id)
}
