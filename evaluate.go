package tetris

// Heuristic weights. Lower combined score is better; all three metrics
// correlate with bad board states. Tunable constants, not a correctness
// contract.
const (
	weightAggregateHeight = 2.0
	weightHoles           = 3.0
	weightBumpiness       = 1.0
)

// Metrics is the value tuple the evaluator derives from a grid snapshot.
// It is recomputed on demand and never cached across mutations.
type Metrics struct {
	AggregateHeight int
	Holes           int
	Bumpiness       int
}

// Score combines the metrics into the single value move search minimizes.
func (m Metrics) Score() float64 {
	return weightAggregateHeight*float64(m.AggregateHeight) +
		weightHoles*float64(m.Holes) +
		weightBumpiness*float64(m.Bumpiness)
}

// EvaluateGrid computes the heuristic metrics of a grid state:
//
//   - aggregate height: the sum of every column's height, where a column's
//     height is the distance from its topmost occupied cell to the floor;
//   - holes: empty cells with at least one occupied cell above them in the
//     same column;
//   - bumpiness: the sum of absolute height differences between adjacent
//     columns.
//
// The function is pure: it never mutates the grid and is deterministic for
// a given state.
func EvaluateGrid(g *Grid) Metrics {
	var m Metrics
	prevHeight := -1
	for col := 0; col < g.width; col++ {
		top := g.columnTop(col)
		height := g.height - top
		m.AggregateHeight += height
		for row := top + 1; row < g.height; row++ {
			if g.cells[row][col] == CellEmpty {
				m.Holes++
			}
		}
		if prevHeight >= 0 {
			m.Bumpiness += absInt(height - prevHeight)
		}
		prevHeight = height
	}
	return m
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
