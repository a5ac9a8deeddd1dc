package tetris

import (
	"time"
)

// Action is a discrete intent delivered to a board: either by the input
// collaborator for the human player or by the session's plan executor for
// the AI player.
type Action int

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionRotate
	ActionSoftDropOn
	ActionSoftDropOff
	ActionHardDrop
)

// softDropFactor divides the fall interval while soft drop is held.
const softDropFactor = 10

// CompleteHandler is notified with the number of rows cleared every time a
// piece locks in.
type CompleteHandler interface {
	OnCompleted(rows int)
}

type CompleteHandlerFunc func(rows int)

func (f CompleteHandlerFunc) OnCompleted(rows int) {
	f(rows)
}

// Board owns one player's grid and active piece. At most one piece is active
// at any time; lock-in and the next spawn happen inside the same transition.
type Board struct {
	grid    *Grid
	getter  PieceGetter
	handler CompleteHandler

	width, height int
	fallInterval  time.Duration

	current  Piece
	next     Shape
	acc      time.Duration
	softDrop bool
	isOver   bool
	pieces   int

	renderFrame [][]Cell
}

type BoardOption func(*Board)

func WithSize(width, height int) BoardOption {
	return func(b *Board) {
		b.width = width
		b.height = height
	}
}

func WithGetter(getter PieceGetter) BoardOption {
	return func(b *Board) {
		b.getter = getter
	}
}

func WithCompleteHandler(handler CompleteHandler) BoardOption {
	return func(b *Board) {
		b.handler = handler
	}
}

func WithFallInterval(d time.Duration) BoardOption {
	return func(b *Board) {
		b.fallInterval = d
	}
}

func NewBoard(options ...BoardOption) *Board {
	b := &Board{
		getter:       NewRandomGetter(time.Now().UnixNano()),
		width:        DefaultWidth,
		height:       DefaultHeight,
		fallInterval: 300 * time.Millisecond,
	}
	for _, opt := range options {
		opt(b)
	}

	b.grid = NewGrid(b.width, b.height)
	b.current = SpawnPiece(b.getter.Next(), b.width)
	b.next = b.getter.Next()
	b.pieces = 1

	b.renderFrame = make([][]Cell, b.height)
	for y := range b.renderFrame {
		b.renderFrame[y] = make([]Cell, b.width)
	}

	return b
}

func (b *Board) Current() Piece   { return b.current }
func (b *Board) NextShape() Shape { return b.next }
func (b *Board) IsOver() bool     { return b.isOver }
func (b *Board) Width() int       { return b.width }
func (b *Board) Height() int      { return b.height }
func (b *Board) PieceCount() int  { return b.pieces }

// GridSnapshot returns an independent copy of the board's grid, safe for
// move search without aliasing the live state.
func (b *Board) GridSnapshot() *Grid {
	return b.grid.Snapshot()
}

// SetFallInterval adjusts the gravity interval. The session tightens it as
// the game speeds up.
func (b *Board) SetFallInterval(d time.Duration) {
	b.fallInterval = d
}

// Advance accumulates elapsed time against the fall interval and steps the
// active piece down once per elapsed interval, locking it in when the step
// is blocked.
func (b *Board) Advance(dt time.Duration) {
	if b.isOver {
		return
	}
	interval := b.fallInterval
	if b.softDrop {
		interval /= softDropFactor
	}
	b.acc += dt
	for b.acc >= interval && !b.isOver {
		b.acc -= interval
		b.stepDownOrLock()
	}
}

// Apply executes one discrete intent. Blocked moves and rotations are
// rejected no-ops, never errors.
func (b *Board) Apply(action Action) {
	if b.isOver {
		return
	}
	switch action {
	case ActionMoveLeft:
		if b.grid.CanMove(b.current, -1, 0) {
			b.current.Col--
		}
	case ActionMoveRight:
		if b.grid.CanMove(b.current, 1, 0) {
			b.current.Col++
		}
	case ActionRotate:
		form := (b.current.Form + 1) % 4
		if b.grid.CanRotate(b.current, form) {
			b.current.Form = form
		}
	case ActionSoftDropOn:
		b.softDrop = true
	case ActionSoftDropOff:
		b.softDrop = false
	case ActionHardDrop:
		for b.grid.CanMove(b.current, 0, 1) {
			b.current.Row++
		}
		b.lockAndSpawn()
	}
}

func (b *Board) stepDownOrLock() {
	if b.grid.CanMove(b.current, 0, 1) {
		b.current.Row++
		return
	}
	b.lockAndSpawn()
}

func (b *Board) lockAndSpawn() {
	b.grid.Lock(b.current)
	rows := b.grid.ClearFullLines()
	if b.handler != nil {
		b.handler.OnCompleted(rows)
	}

	b.current = SpawnPiece(b.next, b.width)
	b.next = b.getter.Next()
	b.pieces++
	b.acc = 0
	b.softDrop = false

	if !b.grid.CanPlace(b.current) {
		b.isOver = true
	}
}

// Render copies the grid into an internal frame with the active piece
// overlaid, for the rendering collaborator. The returned slices are reused
// across calls.
func (b *Board) Render() [][]Cell {
	for y := 0; y < b.height; y++ {
		copy(b.renderFrame[y], b.grid.cells[y])
	}

	t := b.current.Matrix()
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			col := b.current.Col + x
			row := b.current.Row + y
			if t[y][x] == 1 && col >= 0 && col < b.width && row >= 0 && row < b.height {
				b.renderFrame[row][col] = b.current.Color()
			}
		}
	}

	return b.renderFrame
}
