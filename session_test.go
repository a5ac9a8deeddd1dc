package tetris

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoringTable(t *testing.T) {
	tests := []struct {
		lines, level, want int
	}{
		{0, 1, 0},
		{1, 1, 40},
		{2, 1, 100},
		{3, 1, 300},
		{4, 1, 1200},
		{1, 3, 120},
		{4, 2, 2400},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, scoreForLines(test.lines, test.level),
			"%d lines at level %d", test.lines, test.level)
	}
}

func TestSessionStartsAtLevelOne(t *testing.T) {
	s := NewSession(WithSeed(1))
	assert.Equal(t, 1, s.Level())
	assert.Equal(t, 0, s.HumanScore())
	assert.Equal(t, 0, s.AIScore())
	assert.False(t, s.IsOver())
}

func TestSpeedSchedule(t *testing.T) {
	s := NewSession(WithSeed(1))
	base := s.SpeedMultiplier()

	s.Tick(10 * time.Second)
	assert.Equal(t, 2, s.Level())
	assert.Greater(t, s.SpeedMultiplier(), base)

	s.Tick(10 * time.Second)
	assert.Equal(t, 3, s.Level())
}

func TestApplyForwardsToHumanBoard(t *testing.T) {
	s := NewSession(WithSeed(1))
	start := s.HumanBoard().Current().Col
	s.Apply(ActionMoveLeft)
	assert.Equal(t, start-1, s.HumanBoard().Current().Col)
}

func TestIndependentPieceSequences(t *testing.T) {
	s := NewSession(WithSeed(5))
	humanShapes := make([]Shape, 0)
	aiShapes := make([]Shape, 0)
	for i := 0; i < 3000 && !s.IsOver(); i++ {
		humanShapes = append(humanShapes, s.HumanBoard().Current().Shape)
		aiShapes = append(aiShapes, s.AIBoard().Current().Shape)
		s.Tick(100 * time.Millisecond)
	}
	assert.NotEqual(t, humanShapes, aiShapes, "players draw uncoupled sequences")
}

func TestSessionDeterminism(t *testing.T) {
	a := NewSession(WithSeed(42))
	b := NewSession(WithSeed(42))

	for i := 0; i < 2000; i++ {
		a.Tick(100 * time.Millisecond)
		b.Tick(100 * time.Millisecond)

		require.Equal(t, a.HumanScore(), b.HumanScore(), "tick %d", i)
		require.Equal(t, a.AIScore(), b.AIScore(), "tick %d", i)
		require.Equal(t, a.AIBoard().Current(), b.AIBoard().Current(), "tick %d", i)
		require.Equal(t, a.IsOver(), b.IsOver(), "tick %d", i)
	}
	assert.Equal(t, a.Winner(), b.Winner())
}

// TestAIOutlastsIdleHuman plays a full session with no human input: the
// human stack tops out while the AI keeps clearing, so the AI takes the
// game.
func TestAIOutlastsIdleHuman(t *testing.T) {
	s := NewSession(WithSeed(7))

	for i := 0; i < 100000 && !s.IsOver(); i++ {
		s.Tick(100 * time.Millisecond)
	}

	require.True(t, s.IsOver())
	assert.True(t, s.HumanBoard().IsOver())
	assert.Equal(t, WinnerAI, s.Winner())
	assert.Equal(t, 0, s.HumanScore(), "idle stacking never clears a line")

	result := s.Result()
	assert.Equal(t, WinnerAI, result.Winner)
	assert.Equal(t, s.AIScore(), result.AIScore)
	assert.Equal(t, s.Elapsed(), result.SurvivalTime)
	assert.Greater(t, result.SurvivalTime, time.Duration(0))
}

func TestRestart(t *testing.T) {
	s := NewSession(WithSeed(9))
	for i := 0; i < 100000 && !s.IsOver(); i++ {
		s.Tick(100 * time.Millisecond)
	}
	require.True(t, s.IsOver())

	s.Restart()
	assert.False(t, s.IsOver())
	assert.Equal(t, 0, s.HumanScore())
	assert.Equal(t, 0, s.AIScore())
	assert.Equal(t, 1, s.Level())
	assert.Equal(t, time.Duration(0), s.Elapsed())
	assert.False(t, s.HumanBoard().IsOver())
	assert.False(t, s.AIBoard().IsOver())
}

func TestTickAfterGameOverIsNoOp(t *testing.T) {
	s := NewSession(WithSeed(9))
	for i := 0; i < 100000 && !s.IsOver(); i++ {
		s.Tick(100 * time.Millisecond)
	}
	require.True(t, s.IsOver())

	winner := s.Winner()
	elapsed := s.Elapsed()
	s.Tick(time.Second)
	assert.Equal(t, winner, s.Winner())
	assert.Equal(t, elapsed, s.Elapsed())
}
