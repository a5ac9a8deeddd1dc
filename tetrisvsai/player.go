package main

import (
	"fmt"
	"time"

	tetris "github.com/Ammar-HADDAD/TETRIS-VS-AI"
	"github.com/JoelOtter/termloop"
)

// boardSpacing is the horizontal gap between the two rendered boards,
// leaving room for the next-piece panel.
const boardSpacing = 15

var shapeColors = [tetris.NumShapes]termloop.Attr{
	tetris.ShapeI: termloop.ColorCyan,
	tetris.ShapeO: termloop.ColorYellow,
	tetris.ShapeT: termloop.ColorMagenta,
	tetris.ShapeL: termloop.ColorWhite,
	tetris.ShapeJ: termloop.ColorBlue,
	tetris.ShapeS: termloop.ColorGreen,
	tetris.ShapeZ: termloop.ColorRed,
}

func cellColor(c tetris.Cell) termloop.Attr {
	if c == tetris.CellEmpty {
		return termloop.ColorBlack
	}
	return shapeColors[tetris.Shape(c-1)]
}

// gameEntity is the single termloop entity driving and drawing the whole
// session: the human board on the left, the AI board on the right.
type gameEntity struct {
	session  *tetris.Session
	username string
	paused   bool

	human, ai  *boardView
	statusText *termloop.Text
}

func newGameEntity(session *tetris.Session, username string) *gameEntity {
	width := session.HumanBoard().Width()
	height := session.HumanBoard().Height()
	return &gameEntity{
		session:    session,
		username:   username,
		human:      newBoardView(0, 2, session.HumanBoard(), username),
		ai:         newBoardView(width+boardSpacing, 2, session.AIBoard(), "AI"),
		statusText: termloop.NewText(0, height+5, "", termloop.ColorWhite, termloop.ColorDefault),
	}
}

func (g *gameEntity) Tick(ev termloop.Event) {
	if ev.Type != termloop.EventKey {
		return
	}

	switch ev.Ch {
	case 'p':
		g.paused = !g.paused
		return
	case 'r':
		g.paused = false
		g.session.Restart()
		return
	}

	if g.paused {
		return
	}
	switch ev.Key {
	case termloop.KeyArrowLeft:
		g.session.Apply(tetris.ActionMoveLeft)
	case termloop.KeyArrowRight:
		g.session.Apply(tetris.ActionMoveRight)
	case termloop.KeyArrowUp:
		g.session.Apply(tetris.ActionRotate)
	case termloop.KeyArrowDown:
		g.session.Apply(tetris.ActionSoftDropOn)
	case termloop.KeySpace:
		g.session.Apply(tetris.ActionHardDrop)
	}
}

func (g *gameEntity) Draw(s *termloop.Screen) {
	if !g.paused {
		dt := time.Duration(s.TimeDelta() * float64(time.Second))
		g.session.Tick(dt)
	}

	g.human.score = g.session.HumanScore()
	g.ai.score = g.session.AIScore()
	g.human.Draw(s)
	g.ai.Draw(s)

	switch {
	case g.session.IsOver():
		g.statusText.SetText(fmt.Sprintf("GAME OVER - winner: %s - Ctrl+C to exit, r to restart", g.session.Winner()))
	case g.paused:
		g.statusText.SetText("PAUSED - press p to resume")
	default:
		g.statusText.SetText(fmt.Sprintf("SPEED x%.2f | arrows: move/rotate/drop, space: smash, p: pause, r: restart", g.session.SpeedMultiplier()))
	}
	g.statusText.Draw(s)
}

// boardView draws one player's board with its border, score and next-piece
// panel.
type boardView struct {
	board               *tetris.Board
	x, y, width, height int
	score               int

	nameText  *termloop.Text
	scoreText *termloop.Text
}

func newBoardView(x, y int, board *tetris.Board, name string) *boardView {
	return &boardView{
		board:     board,
		x:         x,
		y:         y,
		width:     board.Width(),
		height:    board.Height(),
		nameText:  termloop.NewText(x+1, y-1, name, termloop.ColorWhite, termloop.ColorDefault),
		scoreText: termloop.NewText(x+board.Width()+3, y+7, "0", termloop.ColorWhite, termloop.ColorDefault),
	}
}

func (b *boardView) Draw(s *termloop.Screen) {
	border := &termloop.Cell{Fg: termloop.ColorWhite, Bg: termloop.ColorBlack, Ch: '+'}
	for i := 0; i < b.width+2; i++ {
		s.RenderCell(b.x+i, b.y, border)
		s.RenderCell(b.x+i, b.y+b.height+1, border)
	}
	for i := 0; i < b.height+2; i++ {
		s.RenderCell(b.x, b.y+i, border)
		s.RenderCell(b.x+b.width+1, b.y+i, border)
	}
	for i := 0; i < 6; i++ {
		s.RenderCell(b.x+b.width+3+i, b.y, border)
		s.RenderCell(b.x+b.width+3+i, b.y+5, border)
		s.RenderCell(b.x+b.width+3, b.y+i, border)
		s.RenderCell(b.x+b.width+8, b.y+i, border)
	}

	b.nameText.Draw(s)
	b.scoreText.SetText(fmt.Sprintf("Score: %d", b.score))
	b.scoreText.Draw(s)

	next := b.board.NextShape()
	nextMatrix := tetris.Piece{Shape: next}.Matrix()
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			ch := rune(0)
			if nextMatrix[y][x] == 1 {
				ch = '@'
			}
			s.RenderCell(b.x+b.width+4+x, b.y+1+y, &termloop.Cell{
				Fg: shapeColors[next],
				Bg: termloop.ColorBlack,
				Ch: ch,
			})
		}
	}

	cells := b.board.Render()
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			ch := rune(0)
			if cells[y][x] != tetris.CellEmpty {
				ch = '#'
			}
			s.RenderCell(b.x+1+x, b.y+1+y, &termloop.Cell{
				Fg: cellColor(cells[y][x]),
				Bg: termloop.ColorBlack,
				Ch: ch,
			})
		}
	}
}
