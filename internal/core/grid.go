package core

// Factory produces the tile for an unset cell at (col, row).
type Factory func(col, row int) Tile

type cell struct {
	col, row int
}

// TileGrid stores a sparse 2D grid of tiles keyed by (column, row). Bounds
// grow monotonically to cover every index ever touched, read or write, and
// never shrink. Unset cells inside the bounds are filled on demand through
// the missing-cell factory, exactly once per cell.
//
// TileGrid performs no locking; concurrent access must be serialized by the
// caller.
type TileGrid struct {
	tileSize int
	rows     int
	cols     int
	factory  Factory
	cells    map[cell]Tile
}

// New allocates an empty grid whose tiles are tileSize pixels on a side.
// Row and column counts start at -1, meaning no bounds have been
// established yet; this is distinct from an initialized zero-extent grid.
func New(tileSize int) *TileGrid {
	return &TileGrid{
		tileSize: tileSize,
		rows:     -1,
		cols:     -1,
		factory:  func(int, int) Tile { return NewEmpty() },
		cells:    make(map[cell]Tile),
	}
}

// TileSize returns the side length stamped onto stored tiles.
func (g *TileGrid) TileSize() int { return g.tileSize }

// SetTileSize changes the side length for tiles stored or lazily created
// after the call. Tiles already in the grid keep their dimensions.
func (g *TileGrid) SetTileSize(size int) { g.tileSize = size }

// RowCount returns the current row bound, or -1 before any access.
func (g *TileGrid) RowCount() int { return g.rows }

// ColumnCount returns the current column bound, or -1 before any access.
func (g *TileGrid) ColumnCount() int { return g.cols }

// SetFactory replaces the missing-cell factory. A nil factory restores the
// default, which produces empty tiles.
func (g *TileGrid) SetFactory(f Factory) {
	if f == nil {
		f = func(int, int) Tile { return NewEmpty() }
	}
	g.factory = f
}

// Get returns the tile at (col, row). Negative indices are clamped to zero
// and the bounds grow to cover the access. An unset cell is filled by
// invoking the factory and storing its result, so the same tile instance
// is returned on every subsequent read. Get never fails.
func (g *TileGrid) Get(col, row int) Tile {
	col, row = g.grow(col, row)
	return g.fill(col, row)
}

// Set stores t at (col, row) with the same clamping and growth as Get. The
// tile's dimensions are overwritten with the grid's current tile size; any
// prior occupant of the cell is dropped.
func (g *TileGrid) Set(col, row int, t Tile) {
	col, row = g.grow(col, row)
	t.Resize(g.tileSize, g.tileSize)
	g.cells[cell{col, row}] = t
}

// Each visits every cell inside the bounds captured at entry, row 0 left
// to right, then row 1, and so on. Unset cells are filled through the
// factory as they are visited. Iteration stops early when fn returns
// false. Mutating the grid during a walk is undefined and must be avoided
// by the caller.
func (g *TileGrid) Each(fn func(col, row int, t Tile) bool) {
	rows, cols := g.rows, g.cols
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if !fn(col, row, g.fill(col, row)) {
				return
			}
		}
	}
}

// grow clamps negative indices to zero and extends the bounds to cover the
// access. The row bound grows before the column bound so a combined
// row-and-column growth covers the new rows as well.
func (g *TileGrid) grow(col, row int) (int, int) {
	if col < 0 {
		col = 0
	}
	if row < 0 {
		row = 0
	}
	if row >= g.rows {
		g.rows = row + 1
	}
	if col >= g.cols {
		g.cols = col + 1
	}
	return col, row
}

// fill returns the tile at (col, row), invoking the factory and persisting
// its result on the first access to the cell.
func (g *TileGrid) fill(col, row int) Tile {
	key := cell{col, row}
	if t, ok := g.cells[key]; ok {
		return t
	}
	t := g.factory(col, row)
	if t == nil {
		t = NewEmpty()
	}
	t.Resize(g.tileSize, g.tileSize)
	g.cells[key] = t
	return t
}
