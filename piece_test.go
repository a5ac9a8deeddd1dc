package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryFormHasFourCells(t *testing.T) {
	for s := Shape(0); s < NumShapes; s++ {
		for form := 0; form < 4; form++ {
			count := 0
			m := Piece{Shape: s, Form: form}.Matrix()
			for y := 0; y < 4; y++ {
				for x := 0; x < 4; x++ {
					count += m[y][x]
				}
			}
			assert.Equal(t, 4, count, "shape %d form %d", s, form)
		}
	}
}

func TestRotationCyclesBack(t *testing.T) {
	for s := Shape(0); s < NumShapes; s++ {
		m := baseForms[s]
		for i := 0; i < 4; i++ {
			m = rotateTetromino(m)
		}
		assert.Equal(t, baseForms[s], m, "shape %d", s)
	}
}

func TestDistinctForms(t *testing.T) {
	tests := []struct {
		shape Shape
		count int
	}{
		{ShapeI, 2},
		{ShapeO, 1},
		{ShapeT, 4},
		{ShapeL, 4},
		{ShapeJ, 4},
		{ShapeS, 2},
		{ShapeZ, 2},
	}
	for _, test := range tests {
		forms := DistinctForms(test.shape)
		assert.Len(t, forms, test.count, "shape %d", test.shape)
		assert.Equal(t, 0, forms[0], "base form is always distinct")
	}
}

func TestSpawnPosition(t *testing.T) {
	p := SpawnPiece(ShapeI, 10)
	assert.Equal(t, 3, p.Col)
	assert.Equal(t, 0, p.Row)
	assert.Equal(t, 0, p.Form)
}

func TestColorsAreDistinctPerShape(t *testing.T) {
	seen := make(map[Cell]bool)
	for s := Shape(0); s < NumShapes; s++ {
		c := Piece{Shape: s}.Color()
		assert.NotEqual(t, CellEmpty, c)
		assert.False(t, seen[c], "shape %d reuses a color", s)
		seen[c] = true
	}
}

func TestQueueGetter(t *testing.T) {
	q := NewQueueGetter()
	q.Push(ShapeZ, ShapeI, ShapeO)
	assert.Equal(t, ShapeZ, q.Next())
	assert.Equal(t, ShapeI, q.Next())
	assert.Equal(t, ShapeO, q.Next())
}

func TestRandomGetterIsSeeded(t *testing.T) {
	a, b := NewRandomGetter(42), NewRandomGetter(42)
	other := NewRandomGetter(43)
	same, differs := true, false
	for i := 0; i < 50; i++ {
		x := a.Next()
		require.True(t, x >= 0 && x < NumShapes)
		if x != b.Next() {
			same = false
		}
		if x != other.Next() {
			differs = true
		}
	}
	assert.True(t, same, "equal seeds produce equal sequences")
	assert.True(t, differs, "different seeds diverge")
}
