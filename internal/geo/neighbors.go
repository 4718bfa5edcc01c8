package geo

// Direction names one of the four edge neighbours of a cell.
type Direction string

const (
	North Direction = "n"
	South Direction = "s"
	East  Direction = "e"
	West  Direction = "w"
)

// Neighbor pairs a direction with the id of the adjacent cell.
type Neighbor struct {
	Direction Direction `json:"direction"`
	CellID    int64     `json:"cell_id"`
}

// Neighbors returns the cells sharing an edge with cellID, in N, S, E, W order.
//
// East and west wrap around the antimeridian, so the last column of a row is
// adjacent to its first. Rows above and below have a different column count,
// so the north/south neighbour is the cell of that row containing this cell's
// center longitude. Directions that do not exist are left out: north of the
// top row, south of the bottom row, and east/west in a single-column row.
func (g *Grid) Neighbors(cellID int64) ([]Neighbor, error) {
	cell, err := g.Cell(cellID)
	if err != nil {
		return nil, err
	}
	center, err := g.Center(cellID)
	if err != nil {
		return nil, err
	}

	out := make([]Neighbor, 0, 4)
	if up := cell.Row + 1; up < g.rowCount {
		out = append(out, Neighbor{North, g.rowOffset[up] + g.colOf(up, center.Longitude)})
	}
	if down := cell.Row - 1; down >= 0 {
		out = append(out, Neighbor{South, g.rowOffset[down] + g.colOf(down, center.Longitude)})
	}

	cols := g.ColCount(cell.Row)
	if cols > 1 {
		base := g.rowOffset[cell.Row]
		out = append(out,
			Neighbor{East, base + (cell.Col+1)%cols},
			Neighbor{West, base + (cell.Col-1+cols)%cols},
		)
	}
	return out, nil
}
