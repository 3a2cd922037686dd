package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/janpfeifer/isolationGo/internal/match"
	_ "github.com/janpfeifer/isolationGo/internal/players/default"
	"github.com/janpfeifer/isolationGo/internal/searchers"
	. "github.com/janpfeifer/isolationGo/internal/state"
	"github.com/janpfeifer/isolationGo/internal/state/statetest"
	"github.com/janpfeifer/isolationGo/internal/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUI(input string) (*UI, *bytes.Buffer) {
	var out bytes.Buffer
	return NewWithIO(strings.NewReader(input), &out, false, false), &out
}

func TestRenderBoard(t *testing.T) {
	board := statetest.BuildBoard(statetest.Corridor, PlayerFirst)
	ui, _ := newTestUI("")
	want := "" +
		"    0  1  2  3 \n" +
		" 0  1  .  #  . \n" +
		" 1  #  #  *  # \n" +
		" 2  #  2  .  . \n"
	assert.Equal(t, want, ui.RenderBoard(board, board.LegalMoves()))

	colored := NewWithIO(strings.NewReader(""), &bytes.Buffer{}, true, false)
	rendered := colored.RenderBoard(board, nil)
	assert.Equal(t, want, strings.Replace(ansiFilter.ReplaceAllString(rendered, ""), " 1  #  #  .  # ", " 1  #  #  *  # ", 1))
}

func TestReadMove(t *testing.T) {
	board := statetest.BuildBoard(statetest.Corridor, PlayerFirst)

	ui, out := newTestUI("abc\n9 9\n1 2\n")
	move, err := ui.ReadMove(board)
	require.NoError(t, err)
	assert.Equal(t, Move{1, 2}, move)
	assert.Contains(t, out.String(), "Failed to parse your input \"abc\"")
	assert.Contains(t, out.String(), "Moving to (9, 9) is not valid")

	ui, _ = newTestUI("1, 2")
	move, err = ui.ReadMove(board)
	require.NoError(t, err)
	assert.Equal(t, Move{1, 2}, move)

	ui, _ = newTestUI("x\ny\nz\n1 2\n")
	_, err = ui.ReadMove(board)
	assert.ErrorIs(t, err, ErrParsing)

	ui, _ = newTestUI("")
	_, err = ui.ReadMove(board)
	assert.Error(t, err)
}

func TestHuman(t *testing.T) {
	board := statetest.BuildBoard(statetest.Corridor, PlayerFirst)
	ui, out := newTestUI("1 2\n")
	human := ui.NewHuman()
	move, _ := human.Play(board, board.LegalMoves(), searchers.Unlimited)
	assert.Equal(t, Move{1, 2}, move)
	assert.Contains(t, out.String(), "Move #8")
	assert.Contains(t, out.String(), "Turn to play: First Player")

	// Input closed: the human forfeits.
	move, _ = human.Play(board, board.LegalMoves(), searchers.Unlimited)
	assert.Equal(t, NoMove, move)
}

func TestPrintWinner(t *testing.T) {
	ui, out := newTestUI("")
	ui.PrintWinner(match.Outcome{Winner: PlayerSecond, Reason: match.Timeout})
	assert.Contains(t, out.String(), "*** SECOND PLAYER WINS!! (First lost by timeout) ***")
}

func TestRenderResults(t *testing.T) {
	roster, err := tournament.ParseRoster([]byte(`
num_matches: 1
height: 4
width: 4
test: [{name: Student, config: "weighted:ab,iterative=false,max_depth=1"}]
reference: [{name: Random, config: random}, {name: Null, config: "null:ab,iterative=false,max_depth=1"}]
`))
	require.NoError(t, err)
	results, err := tournament.RoundRobin(context.Background(), roster, tournament.Options{Parallelism: 1})
	require.NoError(t, err)

	ui, out := newTestUI("")
	ui.PrintResults(results)
	rendered := out.String()
	for _, s := range []string{"Agent", "Random", "Null", "Win Rate", "Student", "%"} {
		assert.Contains(t, rendered, s)
	}
}
