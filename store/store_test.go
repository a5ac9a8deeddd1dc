package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "tetris.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestSaveAndQueryScores(t *testing.T) {
	st := openTestStore(t)

	rec, err := st.SaveScore(ScoreRecord{
		Username:     "ammar",
		Score:        340,
		SurvivalTime: 95 * time.Second,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.False(t, rec.CreatedAt.IsZero())

	_, err = st.SaveScore(ScoreRecord{Username: "zoe", Score: 1200, SurvivalTime: 3 * time.Minute})
	require.NoError(t, err)

	scores, err := st.TopScores(10)
	require.NoError(t, err)
	require.Len(t, scores, 2)
	assert.Equal(t, "zoe", scores[0].Username, "ordered by score descending")
	assert.Equal(t, 1200, scores[0].Score)
	assert.Equal(t, "ammar", scores[1].Username)
	assert.Equal(t, 95*time.Second, scores[1].SurvivalTime)
}

func TestTopScoresExcludesAI(t *testing.T) {
	st := openTestStore(t)

	_, err := st.SaveScore(ScoreRecord{Username: AIUsername, Score: 99999})
	require.NoError(t, err)
	_, err = st.SaveScore(ScoreRecord{Username: "ammar", Score: 40})
	require.NoError(t, err)

	scores, err := st.TopScores(10)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, "ammar", scores[0].Username)
}

func TestTopScoresLimit(t *testing.T) {
	st := openTestStore(t)
	for i := 0; i < 15; i++ {
		_, err := st.SaveScore(ScoreRecord{Username: "ammar", Score: i * 40})
		require.NoError(t, err)
	}

	scores, err := st.TopScores(10)
	require.NoError(t, err)
	assert.Len(t, scores, 10)
	assert.Equal(t, 14*40, scores[0].Score)
}

func TestSaveAndQueryHistory(t *testing.T) {
	st := openTestStore(t)

	older := time.Now().Add(-time.Hour)
	_, err := st.SaveHistory(HistoryRecord{
		Username:     "ammar",
		Winner:       "AI",
		HumanScore:   40,
		AIScore:      340,
		SurvivalTime: 2 * time.Minute,
		CreatedAt:    older,
	})
	require.NoError(t, err)

	_, err = st.SaveHistory(HistoryRecord{
		Username:     "ammar",
		Winner:       "Human",
		HumanScore:   500,
		AIScore:      100,
		SurvivalTime: 4 * time.Minute,
	})
	require.NoError(t, err)

	games, err := st.RecentGames(10)
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, "Human", games[0].Winner, "most recent first")
	assert.Equal(t, 500, games[0].HumanScore)
	assert.Equal(t, "AI", games[1].Winner)
	assert.Equal(t, 340, games[1].AIScore)
	assert.Equal(t, 2*time.Minute, games[1].SurvivalTime)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.db")

	st, err := Open(path)
	require.NoError(t, err)
	_, err = st.SaveScore(ScoreRecord{Username: "ammar", Score: 40})
	require.NoError(t, err)
	require.NoError(t, st.Close())

	st, err = Open(path)
	require.NoError(t, err)
	defer st.Close()

	scores, err := st.TopScores(10)
	require.NoError(t, err)
	assert.Len(t, scores, 1, "existing rows survive reopen")
}
