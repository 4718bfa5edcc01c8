package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func neighborMap(t *testing.T, g *Grid, id int64) map[Direction]int64 {
	t.Helper()
	ns, err := g.Neighbors(id)
	require.NoError(t, err)
	out := make(map[Direction]int64, len(ns))
	for _, n := range ns {
		out[n.Direction] = n.CellID
	}
	return out
}

func TestNeighborsInterior(t *testing.T) {
	g := threeMeterGrid(t)
	id, err := g.CellID(51.5074, -0.1278)
	require.NoError(t, err)

	ns := neighborMap(t, g, id)
	require.Len(t, ns, 4)
	assert.Equal(t, id+1, ns[East])
	assert.Equal(t, id-1, ns[West])

	self, _ := g.Cell(id)
	north, _ := g.Cell(ns[North])
	south, _ := g.Cell(ns[South])
	assert.Equal(t, self.Row+1, north.Row)
	assert.Equal(t, self.Row-1, south.Row)

	// Going north then south returns to a cell in the original row close by.
	back := neighborMap(t, g, ns[North])[South]
	backCell, _ := g.Cell(back)
	assert.Equal(t, self.Row, backCell.Row)
	assert.InDelta(t, self.Col, backCell.Col, 1)
}

func TestNeighborsWrapAntimeridian(t *testing.T) {
	g := coarseGrid(t, 100_000)
	first, err := g.CellID(0, -180)
	require.NoError(t, err)
	cell, _ := g.Cell(first)
	last := first + g.ColCount(cell.Row) - 1

	assert.Equal(t, last, neighborMap(t, g, first)[West])
	assert.Equal(t, first, neighborMap(t, g, last)[East])
}

func TestNeighborsAtPoles(t *testing.T) {
	g := coarseGrid(t, 100_000)

	top := neighborMap(t, g, g.CellCount()-1)
	_, hasNorth := top[North]
	assert.False(t, hasNorth)
	assert.Contains(t, top, South)

	bottom := neighborMap(t, g, 0)
	_, hasSouth := bottom[South]
	assert.False(t, hasSouth)
	assert.Contains(t, bottom, North)
}

func TestNeighborsOutOfRange(t *testing.T) {
	g := coarseGrid(t, 100_000)
	_, err := g.Neighbors(g.CellCount())
	assert.Error(t, err)
}
