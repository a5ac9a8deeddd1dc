package tetris

import "fmt"

// Cell is one playfield cell. Zero means empty, any other value is the color
// identity of the shape that locked there (Shape+1).
type Cell uint8

const CellEmpty Cell = 0

// Grid is one player's playfield. Dimensions are fixed at construction and
// the grid is mutated only through its own operations.
type Grid struct {
	width, height int
	cells         [][]Cell
}

const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

func NewGrid(width, height int) *Grid {
	if width < 4 || height < 4 {
		panic(fmt.Errorf("minimal grid size is 4x4"))
	}
	g := &Grid{width: width, height: height}
	g.cells = make([][]Cell, height)
	for y := range g.cells {
		g.cells[y] = make([]Cell, width)
	}
	return g
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// CellAt reports the cell at a row and column. Out-of-bounds coordinates
// read as empty.
func (g *Grid) CellAt(row, col int) Cell {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return CellEmpty
	}
	return g.cells[row][col]
}

// CanMove reports whether the piece translated by (dCol, dRow) fits: every
// filled cell of its bounding box stays inside the grid and lands on an
// empty cell. The board edge reads as blocked, never as an error.
func (g *Grid) CanMove(p Piece, dCol, dRow int) bool {
	t := p.Matrix()
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if t[y][x] != 1 {
				continue
			}
			col := p.Col + x + dCol
			row := p.Row + y + dRow
			if col < 0 || col >= g.width || row < 0 || row >= g.height {
				return false
			}
			if g.cells[row][col] != CellEmpty {
				return false
			}
		}
	}
	return true
}

// CanRotate reports whether the piece fits at its current anchor using the
// given rotation form. There is no wall-kick search: a rotation that would
// collide is simply rejected.
func (g *Grid) CanRotate(p Piece, form int) bool {
	p.Form = form
	return g.CanMove(p, 0, 0)
}

// CanPlace reports whether the piece fits exactly where it is. A false
// result for a freshly spawned piece is the game-over condition.
func (g *Grid) CanPlace(p Piece) bool {
	return g.CanMove(p, 0, 0)
}

// Lock writes the piece's cells into the grid permanently using its color.
// Cells outside the grid are rejected, not clipped.
func (g *Grid) Lock(p Piece) {
	t := p.Matrix()
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if t[y][x] != 1 {
				continue
			}
			col := p.Col + x
			row := p.Row + y
			if col < 0 || col >= g.width || row < 0 || row >= g.height {
				continue
			}
			g.cells[row][col] = p.Color()
		}
	}
}

// ClearFullLines removes every fully occupied row, compacts the remaining
// rows downward preserving their relative order, fills the vacated rows at
// the top with empty cells, and returns the number of rows cleared.
func (g *Grid) ClearFullLines() int {
	cleared := 0
	for y := g.height - 1; y >= 0; y-- {
		clearedBelow := cleared
		if g.isRowFull(y) {
			cleared++
		}
		if clearedBelow > 0 {
			copy(g.cells[y+clearedBelow], g.cells[y])
		}
	}
	for y := 0; y < cleared; y++ {
		for x := 0; x < g.width; x++ {
			g.cells[y][x] = CellEmpty
		}
	}
	return cleared
}

func (g *Grid) isRowFull(row int) bool {
	for x := 0; x < g.width; x++ {
		if g.cells[row][x] == CellEmpty {
			return false
		}
	}
	return true
}

// Snapshot returns a deep, independent copy of the grid. Move search runs
// against snapshots only, never the live grid.
func (g *Grid) Snapshot() *Grid {
	c := NewGrid(g.width, g.height)
	for y := range g.cells {
		copy(c.cells[y], g.cells[y])
	}
	return c
}

// Reset empties every cell.
func (g *Grid) Reset() {
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x] = CellEmpty
		}
	}
}

// columnTop returns the row index of the topmost occupied cell in a column,
// or the grid height if the column is empty.
func (g *Grid) columnTop(col int) int {
	for y := 0; y < g.height; y++ {
		if g.cells[y][col] != CellEmpty {
			return y
		}
	}
	return g.height
}
