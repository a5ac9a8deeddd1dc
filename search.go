package tetris

import (
	"fmt"
	"math"
)

// Placement is one candidate resting position produced by move search: a
// rotation form and anchor column, with the metrics and score of the grid
// that results from hard-dropping the piece there.
type Placement struct {
	Form    int
	Col     int
	Metrics Metrics
	Score   float64
}

// BestPlacement enumerates every legal resting position of the shape on the
// snapshot and returns the one minimizing the heuristic score.
//
// For each distinct rotation form and each anchor column where the piece
// fits at the spawn row, the piece is hard-dropped against the snapshot,
// locked into a scratch copy, full lines are cleared, and the resulting
// state is evaluated. Ties break to the first candidate in iteration order
// (forms ascending, columns left to right), so the result is deterministic
// for a given snapshot.
//
// A legally spawned piece always has at least one resting position; finding
// none means the grid state is corrupted, which panics.
func BestPlacement(snapshot *Grid, shape Shape) Placement {
	best := Placement{Score: math.Inf(1)}
	found := false

	for _, form := range distinctForms[shape] {
		for col := -3; col < snapshot.width; col++ {
			p := Piece{Shape: shape, Form: form, Col: col, Row: 0}
			if !snapshot.CanPlace(p) {
				continue
			}
			for snapshot.CanMove(p, 0, 1) {
				p.Row++
			}

			scratch := snapshot.Snapshot()
			scratch.Lock(p)
			scratch.ClearFullLines()
			m := EvaluateGrid(scratch)

			score := m.Score()
			if !found || score < best.Score {
				best = Placement{Form: form, Col: col, Metrics: m, Score: score}
				found = true
			}
		}
	}

	if !found {
		panic(fmt.Errorf("no legal placement for shape %d: grid state corrupted", shape))
	}
	return best
}
