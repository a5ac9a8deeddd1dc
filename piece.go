package tetris

import (
	"math/rand"
)

// Shape identifies one of the seven tetromino shapes.
type Shape int

const (
	ShapeI Shape = iota
	ShapeO
	ShapeT
	ShapeL
	ShapeJ
	ShapeS
	ShapeZ
)

const NumShapes = 7

// Tetromino is a 4x4 bounding box of a shape at one rotation form.
type Tetromino [4][4]int

var baseForms = [NumShapes]Tetromino{
	ShapeI: {{0, 0, 0, 0}, {1, 1, 1, 1}, {0, 0, 0, 0}, {0, 0, 0, 0}},
	ShapeO: {{0, 0, 0, 0}, {0, 1, 1, 0}, {0, 1, 1, 0}, {0, 0, 0, 0}},
	ShapeT: {{0, 0, 0, 0}, {1, 1, 1, 0}, {0, 1, 0, 0}, {0, 0, 0, 0}},
	ShapeL: {{0, 0, 0, 0}, {1, 1, 1, 0}, {1, 0, 0, 0}, {0, 0, 0, 0}},
	ShapeJ: {{0, 0, 0, 0}, {1, 1, 1, 0}, {0, 0, 1, 0}, {0, 0, 0, 0}},
	ShapeS: {{0, 0, 0, 0}, {1, 1, 0, 0}, {0, 1, 1, 0}, {0, 0, 0, 0}},
	ShapeZ: {{0, 0, 0, 0}, {0, 1, 1, 0}, {1, 1, 0, 0}, {0, 0, 0, 0}},
}

// shapeForms holds all four rotation forms per shape, precomputed once at
// startup and read-only thereafter.
var shapeForms [NumShapes][4]Tetromino

// distinctForms lists, per shape, the form indexes whose cell layouts are
// unique up to translation. Symmetric shapes collapse: O has one, I/S/Z two,
// T/L/J all four.
var distinctForms [NumShapes][]int

func init() {
	for s := Shape(0); s < NumShapes; s++ {
		t := baseForms[s]
		seen := make(map[[4][2]int]bool)
		for form := 0; form < 4; form++ {
			shapeForms[s][form] = t
			key := normalizedCells(t)
			if !seen[key] {
				seen[key] = true
				distinctForms[s] = append(distinctForms[s], form)
			}
			t = rotateTetromino(t)
		}
	}
}

func rotateTetromino(t Tetromino) Tetromino {
	return Tetromino{
		{t[0][3], t[1][3], t[2][3], t[3][3]},
		{t[0][2], t[1][2], t[2][2], t[3][2]},
		{t[0][1], t[1][1], t[2][1], t[3][1]},
		{t[0][0], t[1][0], t[2][0], t[3][0]},
	}
}

// normalizedCells returns the four filled cells shifted so the top-left of
// their bounding box sits at the origin, in row-major order.
func normalizedCells(t Tetromino) [4][2]int {
	minY, minX := 4, 4
	var cells [4][2]int
	n := 0
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if t[y][x] == 1 {
				if y < minY {
					minY = y
				}
				if x < minX {
					minX = x
				}
				cells[n] = [2]int{y, x}
				n++
			}
		}
	}
	for i := range cells {
		cells[i][0] -= minY
		cells[i][1] -= minX
	}
	return cells
}

// DistinctForms returns the rotation form indexes of a shape that produce
// unique cell layouts. The slice is shared static data and must not be
// modified.
func DistinctForms(s Shape) []int {
	return distinctForms[s]
}

// Piece is an active tetromino: a shape at a rotation form, anchored at a
// grid column and row (the top-left of its 4x4 bounding box).
type Piece struct {
	Shape Shape
	Form  int
	Col   int
	Row   int
}

// SpawnPiece places a shape at its spawn position at the top of a grid of
// the given width, in its base rotation form.
func SpawnPiece(s Shape, gridWidth int) Piece {
	return Piece{Shape: s, Form: 0, Col: gridWidth/2 - 2, Row: 0}
}

// Matrix returns the piece's 4x4 bounding box at its current form.
func (p Piece) Matrix() Tetromino {
	return shapeForms[p.Shape][p.Form%4]
}

// Color returns the cell value the piece leaves behind on lock-in.
func (p Piece) Color() Cell {
	return Cell(p.Shape) + 1
}

// PieceGetter produces the sequence of shapes a board will play. Each player
// owns an independent getter so piece sequences stay uncoupled.
type PieceGetter interface {
	Next() Shape
}

type RandomGetter struct {
	randomizer *rand.Rand
}

func NewRandomGetter(seed int64) *RandomGetter {
	return &RandomGetter{randomizer: rand.New(rand.NewSource(seed))}
}

func (r *RandomGetter) Next() Shape {
	return Shape(r.randomizer.Intn(NumShapes))
}

// QueueGetter serves a fixed sequence of shapes. Useful for deterministic
// tests.
type QueueGetter struct {
	queue []Shape
}

func NewQueueGetter() *QueueGetter {
	return &QueueGetter{queue: make([]Shape, 0)}
}

func (q *QueueGetter) Next() Shape {
	s := q.queue[0]
	q.queue = q.queue[1:]
	return s
}

func (q *QueueGetter) Push(s ...Shape) {
	q.queue = append(q.queue, s...)
}
