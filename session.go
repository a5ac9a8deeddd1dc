package tetris

import (
	"math/rand"
	"time"
)

// Scoring table for simultaneous line clears, multiplied by the current
// level.
var lineScores = [4]int{40, 100, 300, 1200}

func scoreForLines(lines, level int) int {
	if lines < 1 {
		return 0
	}
	if lines > 4 {
		lines = 4
	}
	return lineScores[lines-1] * level
}

const (
	initialFallInterval = 300 * time.Millisecond
	minFallInterval     = 100 * time.Millisecond
	speedUpEvery        = 10 * time.Second
	speedUpFactor       = 0.9

	// speedBaseline is the fall interval the rendered speed multiplier is
	// measured against.
	speedBaseline = 500 * time.Millisecond
)

const (
	WinnerHuman = "Human"
	WinnerAI    = "AI"
	WinnerDraw  = "Draw"
)

// Result is the final record a finished session emits for the persistence
// collaborator.
type Result struct {
	Winner       string
	HumanScore   int
	AIScore      int
	SurvivalTime time.Duration
}

// Session owns one board per player, drives the fall-speed schedule,
// aggregates scores and decides the winner. The whole session runs inside
// the frame tick; nothing here is safe for concurrent use.
type Session struct {
	randomizer    *rand.Rand
	width, height int

	human, ai *Board

	humanScore, aiScore int
	level               int
	fallInterval        time.Duration
	elapsed             time.Duration

	aiPlan      Placement
	aiPlanPiece int

	isOver bool
	winner string
}

type SessionOption func(*Session)

// WithSeed fixes the randomizer the session draws per-player piece seeds
// from. Both players still get independent sequences.
func WithSeed(seed int64) SessionOption {
	return func(s *Session) {
		s.randomizer = rand.New(rand.NewSource(seed))
	}
}

func WithGridSize(width, height int) SessionOption {
	return func(s *Session) {
		s.width = width
		s.height = height
	}
}

func NewSession(options ...SessionOption) *Session {
	s := &Session{
		randomizer: rand.New(rand.NewSource(time.Now().UnixNano())),
		width:      DefaultWidth,
		height:     DefaultHeight,
	}
	for _, opt := range options {
		opt(s)
	}
	s.initBoards()
	return s
}

func (s *Session) initBoards() {
	s.humanScore = 0
	s.aiScore = 0
	s.level = 1
	s.fallInterval = initialFallInterval
	s.elapsed = 0
	s.aiPlanPiece = 0
	s.isOver = false
	s.winner = ""

	seedHuman, seedAI := s.randomizer.Int63(), s.randomizer.Int63()
	s.human = NewBoard(
		WithSize(s.width, s.height),
		WithGetter(NewRandomGetter(seedHuman)),
		WithFallInterval(s.fallInterval),
		WithCompleteHandler(CompleteHandlerFunc(func(rows int) {
			s.humanScore += scoreForLines(rows, s.level)
		})),
	)
	s.ai = NewBoard(
		WithSize(s.width, s.height),
		WithGetter(NewRandomGetter(seedAI)),
		WithFallInterval(s.fallInterval),
		WithCompleteHandler(CompleteHandlerFunc(func(rows int) {
			s.aiScore += scoreForLines(rows, s.level)
		})),
	)
}

// Restart throws away the current game and starts a fresh one with new
// piece sequences.
func (s *Session) Restart() {
	s.initBoards()
}

// Apply forwards a discrete intent from the input collaborator to the human
// player's board. The AI player receives no external input.
func (s *Session) Apply(action Action) {
	if s.isOver {
		return
	}
	s.human.Apply(action)
}

// Tick advances the whole session by one frame's elapsed time: the speed
// schedule, the AI plan executor and both players' gravity clocks.
func (s *Session) Tick(dt time.Duration) {
	if s.isOver {
		return
	}
	s.elapsed += dt

	if s.elapsed >= time.Duration(s.level)*speedUpEvery {
		next := time.Duration(float64(s.fallInterval) * speedUpFactor)
		if next < minFallInterval {
			next = minFallInterval
		}
		s.fallInterval = next
		s.level++
		s.human.SetFallInterval(next)
		s.ai.SetFallInterval(next)
	}

	s.driveAI()
	s.human.Advance(dt)
	s.ai.Advance(dt)

	if s.human.IsOver() || s.ai.IsOver() {
		s.finish()
	}
}

// driveAI runs move search once per spawned AI piece, then walks the piece
// toward the chosen placement one operation per tick: rotations first, then
// lateral moves, then the hard drop.
func (s *Session) driveAI() {
	if s.ai.IsOver() {
		return
	}

	if s.ai.PieceCount() != s.aiPlanPiece {
		s.aiPlan = BestPlacement(s.ai.GridSnapshot(), s.ai.Current().Shape)
		s.aiPlanPiece = s.ai.PieceCount()
	}

	before := s.ai.Current()
	switch {
	case before.Form != s.aiPlan.Form:
		s.ai.Apply(ActionRotate)
	case before.Col > s.aiPlan.Col:
		s.ai.Apply(ActionMoveLeft)
	case before.Col < s.aiPlan.Col:
		s.ai.Apply(ActionMoveRight)
	default:
		s.ai.Apply(ActionHardDrop)
		return
	}

	// A blocked rotation or move would stall the plan forever; settle the
	// piece where it is instead.
	if s.ai.Current() == before {
		s.ai.Apply(ActionHardDrop)
	}
}

func (s *Session) finish() {
	s.isOver = true
	switch {
	case s.human.IsOver() && s.ai.IsOver():
		switch {
		case s.humanScore > s.aiScore:
			s.winner = WinnerHuman
		case s.aiScore > s.humanScore:
			s.winner = WinnerAI
		default:
			s.winner = WinnerDraw
		}
	case s.human.IsOver():
		s.winner = WinnerAI
	default:
		s.winner = WinnerHuman
	}
}

func (s *Session) HumanBoard() *Board     { return s.human }
func (s *Session) AIBoard() *Board        { return s.ai }
func (s *Session) HumanScore() int        { return s.humanScore }
func (s *Session) AIScore() int           { return s.aiScore }
func (s *Session) Level() int             { return s.level }
func (s *Session) Elapsed() time.Duration { return s.elapsed }
func (s *Session) IsOver() bool           { return s.isOver }
func (s *Session) Winner() string         { return s.winner }

// SpeedMultiplier reports the current fall speed relative to the render
// baseline, for display.
func (s *Session) SpeedMultiplier() float64 {
	return float64(speedBaseline) / float64(s.fallInterval)
}

// Result returns the final session record. Only meaningful once the session
// is over.
func (s *Session) Result() Result {
	return Result{
		Winner:       s.winner,
		HumanScore:   s.humanScore,
		AIScore:      s.aiScore,
		SurvivalTime: s.elapsed,
	}
}
