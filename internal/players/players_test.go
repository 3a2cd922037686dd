package players_test

import (
	"testing"
	"time"

	"github.com/janpfeifer/isolationGo/internal/parameters"
	"github.com/janpfeifer/isolationGo/internal/players"
	_ "github.com/janpfeifer/isolationGo/internal/players/default"
	"github.com/janpfeifer/isolationGo/internal/searchers"
	. "github.com/janpfeifer/isolationGo/internal/state"
	"github.com/janpfeifer/isolationGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	assert.Equal(t, []string{"improved", "null", "open", "random", "weighted"}, players.ModuleNames())

	for config, want := range map[string]string{
		"":                                 "alphabeta(iterative)+weighted[best]",
		"weighted:mm,iterative=false":      "minimax(depth=3)+weighted[best]",
		"weighted:ab,max_depth=5,w_own=2":  "alphabeta(iterative, max_depth=5)+weighted[own=2/opp=1/dist=1/center=0]",
		"open:method=minimax,max_depth=2":  "minimax(iterative, max_depth=2)+open",
		"improved:iterative=0,max_depth=4": "alphabeta(depth=4)+improved",
		"null:threshold=20":                "alphabeta(iterative)+null",
		"random:seed=3":                    "random",
		"weighted:preset=mobility,ab":      "alphabeta(iterative)+weighted[mobility]",
	} {
		player, err := players.New(config)
		require.NoError(t, err, "config=%q", config)
		assert.Equal(t, want, player.String(), "config=%q", config)
	}

	for _, config := range []string{
		"linear:ab",
		"weighted:ab,mm",
		"weighted:mcts",
		"weighted:method=mcts",
		"weighted:max_depth=-1",
		"weighted:iterative=false,max_depth=0",
		"weighted:threshold=-5ms",
		"weighted:threshold=soon",
		"weighted:preset=unknown",
		"random:seed=x",
		"random:ab",
	} {
		_, err := players.New(config)
		assert.Error(t, err, "config=%q", config)
	}
}

func TestNewSearcherScorerConsumesParams(t *testing.T) {
	params := parameters.NewFromConfigString("mm,iterative=false,max_depth=2,threshold=15ms")
	player, err := players.NewSearcherScorer(nil, params)
	require.NoError(t, err)
	assert.Empty(t, params)
	driver, ok := player.Searcher.(*searchers.Driver[*Board])
	require.True(t, ok)
	assert.False(t, driver.IsIterative())
	assert.Equal(t, 2, driver.MaxDepth())
}

func TestPlay(t *testing.T) {
	board := statetest.BuildBoard(statetest.Corridor, PlayerFirst)
	for _, config := range []string{"weighted:ab", "weighted:mm,iterative=false", "open", "random"} {
		player, err := players.New(config)
		require.NoError(t, err)
		move, _ := player.Play(board, board.LegalMoves(), searchers.NewTurnTimer(time.Second))
		assert.Equal(t, Move{1, 2}, move, "config=%q", config)
		player.Finalize()
	}

	// No legal moves.
	player, err := players.New("weighted")
	require.NoError(t, err)
	lost := board.Forecast(Move{1, 2})
	move, _ := player.Play(lost, lost.LegalMoves(), searchers.NewTurnTimer(time.Second))
	assert.Equal(t, NoMove, move)
}

func TestPlayWithinTime(t *testing.T) {
	// Iterative deepening without a limit must return before the time is over, in an open board.
	player, err := players.New("weighted:ab,threshold=20ms")
	require.NoError(t, err)
	board := statetest.PlayMoves(NewBoard(), Move{3, 3}, Move{0, 0})
	timeLeft := searchers.NewTurnTimer(150 * time.Millisecond)
	move, _ := player.Play(board, board.LegalMoves(), timeLeft)
	assert.True(t, board.IsLegal(move))
	assert.GreaterOrEqual(t, timeLeft(), time.Duration(0))
}
