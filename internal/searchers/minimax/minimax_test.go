package minimax

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/janpfeifer/isolationGo/internal/ai/weighted"
	"github.com/janpfeifer/isolationGo/internal/searchers"
	"github.com/janpfeifer/isolationGo/internal/searchers/searchtest"
	. "github.com/janpfeifer/isolationGo/internal/state"
	"github.com/janpfeifer/isolationGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// textbookTree is the classic 2-ply example: minimax value 3, reached by the first move.
func textbookTree() *searchtest.Tree {
	return searchtest.New(
		searchtest.Branch(searchtest.Leaf(3), searchtest.Leaf(12), searchtest.Leaf(8)),
		searchtest.Branch(searchtest.Leaf(2), searchtest.Leaf(4), searchtest.Leaf(6)),
		searchtest.Branch(searchtest.Leaf(14), searchtest.Leaf(5), searchtest.Leaf(2)),
	)
}

func TestSearchDepth(t *testing.T) {
	tree := textbookTree()
	result, err := New(searchtest.Scorer).SearchDepth(tree.Root, 2, searchers.Unlimited)
	require.NoError(t, err)
	assert.Equal(t, float32(3), result.Score)
	assert.Equal(t, Move{0, 0}, result.Move)
	assert.Equal(t, 2, result.Depth)
	assert.Equal(t, 13, result.Stats.Nodes)
	assert.Equal(t, 9, result.Stats.Evals)
	assert.Equal(t, 12, tree.Forecasts)
	assert.False(t, result.Exhaustive)

	// At depth 1 all branches evaluate to 0: the first one is taken.
	result, err = New(searchtest.Scorer).SearchDepth(tree.Root, 1, searchers.Unlimited)
	require.NoError(t, err)
	assert.Equal(t, float32(0), result.Score)
	assert.Equal(t, Move{0, 0}, result.Move)
}

func TestTieBreak(t *testing.T) {
	for range 10 {
		tree := searchtest.New(searchtest.Leaf(5), searchtest.Leaf(7), searchtest.Leaf(1), searchtest.Leaf(7))
		result, err := New(searchtest.Scorer).SearchDepth(tree.Root, 1, searchers.Unlimited)
		require.NoError(t, err)
		assert.Equal(t, float32(7), result.Score)
		assert.Equal(t, Move{0, 1}, result.Move)
	}

	// Minimizing layer keeps the first minimum as well: the values seen by the root are the
	// same, so the root picks the first branch.
	tree := searchtest.New(
		searchtest.Branch(searchtest.Leaf(4), searchtest.Leaf(2), searchtest.Leaf(2)),
		searchtest.Branch(searchtest.Leaf(2), searchtest.Leaf(9)),
	)
	result, err := New(searchtest.Scorer).SearchDepth(tree.Root, 2, searchers.Unlimited)
	require.NoError(t, err)
	assert.Equal(t, float32(2), result.Score)
	assert.Equal(t, Move{0, 0}, result.Move)
}

func TestNoLegalMoves(t *testing.T) {
	tree := searchtest.New()
	result, err := New(searchtest.Scorer).SearchDepth(tree.Root, 3, searchers.Unlimited)
	require.NoError(t, err)
	assert.True(t, math32.IsInf(result.Score, -1))
	assert.Equal(t, NoMove, result.Move)
	assert.Equal(t, 0, tree.Forecasts)
	assert.Equal(t, 1, result.Stats.Nodes)
	assert.True(t, result.Exhaustive)

	// Opponent without moves below the root: a win for the root player.
	tree = searchtest.New(searchtest.Branch(searchtest.Leaf(1)), searchtest.Branch(), searchtest.Branch(searchtest.Leaf(2)))
	result, err = New(searchtest.Scorer).SearchDepth(tree.Root, 2, searchers.Unlimited)
	require.NoError(t, err)
	assert.True(t, math32.IsInf(result.Score, 1))
	assert.Equal(t, Move{0, 1}, result.Move)
}

func TestSingleMove(t *testing.T) {
	// Scenario: with one legal move, the score at depth 1 is the evaluation of the forecast board.
	tree := searchtest.New(searchtest.Leaf(4.5))
	result, err := New(searchtest.Scorer).SearchDepth(tree.Root, 1, searchers.Unlimited)
	require.NoError(t, err)
	assert.Equal(t, Move{0, 0}, result.Move)
	assert.Equal(t, searchtest.Scorer.Score(tree.Root.Forecast(Move{0, 0}), PlayerFirst), result.Score)

	board := statetest.BuildBoard(statetest.Corridor, PlayerFirst)
	scorer := weighted.New(weighted.Best)
	boardResult, err := New(scorer).SearchDepth(board, 1, searchers.Unlimited)
	require.NoError(t, err)
	assert.Equal(t, Move{1, 2}, boardResult.Move)
	assert.Equal(t, scorer.Score(board.Forecast(Move{1, 2}), PlayerFirst), boardResult.Score)
	assert.True(t, boardResult.Exhaustive)
}

func TestTimeout(t *testing.T) {
	tree := textbookTree()
	_, err := New(searchtest.Scorer).SearchDepth(tree.Root, 2, searchtest.Expired)
	assert.ErrorIs(t, err, searchers.ErrTimeout)
	assert.Equal(t, 0, tree.Forecasts)

	// Timeout in the middle of the search: after 5 nodes.
	clock := &searchtest.Clock{Budget: searchers.DefaultThreshold + 5, Tick: 1}
	result, err := New(searchtest.Scorer).SearchDepth(textbookTree().Root, 2, clock.TimeLeft())
	assert.ErrorIs(t, err, searchers.ErrTimeout)
	assert.Equal(t, 5, result.Stats.Nodes)
	assert.Equal(t, 6, clock.Calls)
}
