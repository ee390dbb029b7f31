package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/montplusa/reversi-engine/pkg/eval"
	"github.com/montplusa/reversi-engine/pkg/game"
)

var (
	mvB  = game.Move{X: 0, Y: 0} // generated first
	mvA  = game.Move{X: 1, Y: 1}
	mvR1 = game.Move{X: 2, Y: 2}
	mvR2 = game.Move{X: 3, Y: 3}
)

// Both root moves look the same after one ply, but B allows a reply that
// costs 10 while A's worst reply costs 2.
func worstCaseTree() (*treeBoard, map[string]int) {
	tree := map[string][]game.Move{
		"":    {mvB, mvA},
		"0,0": {mvR1, mvR2},
		"1,1": {mvR1, mvR2},
	}
	scores := map[string]int{
		"0,0":     5,
		"1,1":     5,
		"0,0/2,2": -5,
		"0,0/3,3": 6,
		"1,1/2,2": 3,
		"1,1/3,3": 5,
	}
	return &treeBoard{tree: tree}, scores
}

func TestMinimaxPrefersBestWorstCase(t *testing.T) {
	b, scores := worstCaseTree()
	s := NewSearcher(game.Black, 2, leafScores(scores), 1)

	score, mv := s.Search(b)
	require.NotNil(t, mv)
	assert.Equal(t, mvA, *mv)
	assert.Equal(t, 3, score)
	assert.Empty(t, b.path, "search must not touch the root board")
}

func TestMinimaxDepthOneUsesImmediateScore(t *testing.T) {
	b, scores := worstCaseTree()
	scores["1,1"] = 4
	s := NewSearcher(game.Black, 1, leafScores(scores), 1)

	score, mv := s.Search(b)
	require.NotNil(t, mv)
	assert.Equal(t, mvB, *mv)
	assert.Equal(t, 5, score)
}

func TestMinimaxTieKeepsFirstMove(t *testing.T) {
	b, scores := worstCaseTree()
	scores["1,1/2,2"] = -5
	s := NewSearcher(game.Black, 2, leafScores(scores), 1)

	score, mv := s.Search(b)
	require.NotNil(t, mv)
	assert.Equal(t, mvB, *mv)
	assert.Equal(t, -5, score)
}

func TestMinimaxMinimizerKeepsFirstOfEqual(t *testing.T) {
	b, scores := worstCaseTree()
	b.path = []game.Move{mvA}
	scores["1,1/3,3"] = 3
	s := NewSearcher(game.Black, 2, leafScores(scores), 1)

	score, mv := s.Minimax(b, 1, false)
	require.NotNil(t, mv)
	assert.Equal(t, mvR1, *mv)
	assert.Equal(t, 3, score)
}

func TestMinimaxPassIsEvaluatedImmediately(t *testing.T) {
	tree := map[string][]game.Move{
		"":    {mvA},
		"1,1": nil, // opponent cannot reply
	}
	scores := map[string]int{"1,1": 7}
	s := NewSearcher(game.Black, 4, leafScores(scores), 1)

	score, mv := s.Search(&treeBoard{tree: tree})
	require.NotNil(t, mv)
	assert.Equal(t, mvA, *mv)
	assert.Equal(t, 7, score)

	st := s.Stats()
	assert.Equal(t, int64(1), st.Generated)
	assert.Equal(t, int64(2), st.Visited)
	assert.Equal(t, int64(1), st.Evaluated)
}

func TestMinimaxNoMovesAtRoot(t *testing.T) {
	scores := map[string]int{"": -2}
	s := NewSearcher(game.White, 2, leafScores(scores), 1)

	score, mv := s.Search(&treeBoard{tree: map[string][]game.Move{}})
	assert.Nil(t, mv)
	assert.Equal(t, -2, score)
}

func TestMinimaxExpandsEveryBranch(t *testing.T) {
	b, scores := worstCaseTree()
	s := NewSearcher(game.Black, 2, leafScores(scores), 1)
	s.Search(b)

	st := s.Stats()
	assert.Equal(t, int64(6), st.Generated)
	assert.Equal(t, int64(7), st.Visited)
	assert.Equal(t, int64(4), st.Evaluated)

	s.ResetStats()
	assert.Equal(t, Stats{}, s.Stats())
}

func TestParallelSearchMatchesSerial(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	state := game.NewGameState()
	side := game.Black

	for ply := 0; ply < 30; ply++ {
		for _, ev := range []eval.Evaluator{eval.Positional, eval.Material} {
			serial := NewSearcher(side, 2, ev, 1)
			parallel := NewSearcher(side, 2, ev, 4)

			s1, m1 := serial.Search(state)
			s2, m2 := parallel.Search(state)
			assert.Equal(t, s1, s2, "ply %d", ply)
			assert.Equal(t, m1, m2, "ply %d", ply)
			assert.Equal(t, serial.Stats(), parallel.Stats(), "ply %d", ply)
		}

		moves := state.LegalMoves(side)
		if len(moves) > 0 {
			state.Apply(&moves[rng.Intn(len(moves))], side)
		} else if state.IsGameOver() {
			break
		}
		side = side.Other()
	}
}

func TestSearchLeavesBoardUntouched(t *testing.T) {
	state := game.NewGameState()
	before := state.Clone()

	s := NewSearcher(game.Black, 3, eval.Positional, 1)
	_, mv := s.Search(state)
	require.NotNil(t, mv)
	assert.Equal(t, before, state)
	assert.True(t, state.IsLegal(*mv, game.Black))
}
