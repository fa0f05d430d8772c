package core

// Row is an ephemeral view over a single grid row. It stores no tiles
// itself; every read and write is forwarded to the owning grid, so a Row
// shares the grid's lifetime and always reflects its current bounds.
type Row struct {
	grid *TileGrid
	row  int
}

// Row returns a view over the given row index. A negative index is clamped
// to zero. Constructing the view does not grow the grid; the first Get or
// Set through it does.
func (g *TileGrid) Row(row int) Row {
	if row < 0 {
		row = 0
	}
	return Row{grid: g, row: row}
}

// Index returns the row index the view is fixed to.
func (r Row) Index() int { return r.row }

// Get returns the tile at the given column in this row.
func (r Row) Get(col int) Tile { return r.grid.Get(col, r.row) }

// Set stores t at the given column in this row.
func (r Row) Set(col int, t Tile) { r.grid.Set(col, r.row, t) }

// Len reports the grid's column count as of the call, not as of the view's
// creation. It is -1 while the grid has no bounds.
func (r Row) Len() int { return r.grid.ColumnCount() }

// Each visits the row's tiles left to right over the grid's current column
// count, filling unset cells on the way. Iteration stops early when fn
// returns false.
func (r Row) Each(fn func(col int, t Tile) bool) {
	cols := r.grid.ColumnCount()
	for col := 0; col < cols; col++ {
		if !fn(col, r.grid.Get(col, r.row)) {
			return
		}
	}
}
