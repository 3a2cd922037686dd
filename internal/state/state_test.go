package state_test

import (
	"testing"

	. "github.com/janpfeifer/isolationGo/internal/state"
	. "github.com/janpfeifer/isolationGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, DefaultHeight, b.Height())
	assert.Equal(t, DefaultWidth, b.Width())
	assert.Equal(t, PlayerFirst, b.ActivePlayer())
	assert.Equal(t, PlayerSecond, b.InactivePlayer())
	assert.Equal(t, 1, b.MoveNumber())
	_, placed := b.PlayerLocation(PlayerFirst)
	assert.False(t, placed)

	// Unplaced players can go anywhere, enumerated column first.
	moves := b.LegalMoves()
	require.Len(t, moves, DefaultHeight*DefaultWidth)
	assert.Equal(t, Move{0, 0}, moves[0])
	assert.Equal(t, Move{1, 0}, moves[1])
	assert.Equal(t, Move{0, 1}, moves[DefaultHeight])

	_, err := NewBoardWithSize(9, 8)
	assert.Error(t, err)
	_, err = NewBoardWithSize(0, 3)
	assert.Error(t, err)
	_, err = NewBoardWithSize(8, 8)
	assert.NoError(t, err)
}

func TestKnightMoves(t *testing.T) {
	b := NewBoard()
	b = PlayMoves(b, Move{3, 3}, Move{0, 0})
	assert.Equal(t, PlayerFirst, b.ActivePlayer())
	want := []Move{{1, 2}, {1, 4}, {2, 1}, {2, 5}, {4, 1}, {4, 5}, {5, 2}, {5, 4}}
	assert.Equal(t, want, b.LegalMoves())

	// Second player in the corner, (1, 2) is still available to it.
	assert.Equal(t, []Move{{1, 2}, {2, 1}}, b.PlayerLegalMoves(PlayerSecond))

	// Blocked cells are not available: first player takes (1, 2).
	b = b.Forecast(Move{1, 2})
	assert.Equal(t, []Move{{2, 1}}, b.LegalMoves())
	assert.Equal(t, PlayerSecond, b.ActivePlayer())
	assert.Equal(t, 4, b.MoveNumber())
}

func TestForecastIsImmutable(t *testing.T) {
	b := NewBoard()
	before := b.String()
	next := b.Forecast(Move{2, 2})
	assert.Equal(t, before, b.String())
	assert.NotEqual(t, before, next.String())
	assert.True(t, b.IsBlank(Move{2, 2}))
	assert.False(t, next.IsBlank(Move{2, 2}))
	loc, placed := next.PlayerLocation(PlayerFirst)
	assert.True(t, placed)
	assert.Equal(t, Move{2, 2}, loc)

	// Sibling forecasts don't interfere with each other.
	a1, a2 := next.Forecast(Move{0, 0}), next.Forecast(Move{6, 6})
	assert.True(t, a1.IsBlank(Move{6, 6}))
	assert.True(t, a2.IsBlank(Move{0, 0}))
}

func TestForecastIllegalPanics(t *testing.T) {
	b := PlayMoves(NewBoard(), Move{3, 3}, Move{0, 0})
	assert.Panics(t, func() { b.Forecast(Move{3, 4}) })  // Not a knight move.
	assert.Panics(t, func() { b.Forecast(Move{-1, 2}) }) // Out of the board.
	assert.Panics(t, func() { b.Forecast(NoMove) })
	assert.NotPanics(t, func() { b.Forecast(Move{5, 4}) })
}

func TestWinnerLoser(t *testing.T) {
	b := BuildBoard(Corridor, PlayerFirst)
	assert.Equal(t, []Move{{1, 2}}, b.LegalMoves())
	assert.False(t, b.IsFinished())
	assert.Equal(t, PlayerInvalid, b.Winner())
	assert.False(t, b.IsLoser(PlayerFirst))
	assert.False(t, b.IsWinner(PlayerFirst))

	b = b.Forecast(Move{1, 2})
	assert.Empty(t, b.LegalMoves())
	assert.True(t, b.IsFinished())
	assert.True(t, b.IsLoser(PlayerSecond))
	assert.True(t, b.IsWinner(PlayerFirst))
	assert.False(t, b.IsLoser(PlayerFirst))
	assert.False(t, b.IsWinner(PlayerSecond))
	assert.Equal(t, PlayerFirst, b.Winner())
}

func TestParseBoard(t *testing.T) {
	b := BuildBoard(Corridor, PlayerSecond)
	assert.Equal(t, 3, b.Height())
	assert.Equal(t, 4, b.Width())
	assert.Equal(t, PlayerSecond, b.ActivePlayer())
	assert.Equal(t, "1.#.\n##.#\n#2..\n", b.String())
	assert.Equal(t, 8, b.MoveNumber())
	assert.Equal(t, []Move{{0, 1}, {1, 2}, {2, 2}, {0, 3}, {2, 3}}, b.BlankCells())

	_, err := ParseBoard("1.\n...", PlayerFirst)
	assert.Error(t, err, "rows of different widths")
	_, err = ParseBoard("1.1", PlayerFirst)
	assert.Error(t, err, "player placed twice")
	_, err = ParseBoard("1x.", PlayerFirst)
	assert.Error(t, err, "invalid cell")
	_, err = ParseBoard("", PlayerFirst)
	assert.Error(t, err, "empty layout")
	_, err = ParseBoard("1.", PlayerInvalid)
	assert.Error(t, err, "invalid player")
}

func TestPlayerNum(t *testing.T) {
	assert.Equal(t, PlayerSecond, PlayerFirst.Opponent())
	assert.Equal(t, PlayerFirst, PlayerSecond.Opponent())
	assert.Equal(t, "First", PlayerFirst.String())
	assert.Panics(t, func() { PlayerInvalid.Opponent() })
	assert.Equal(t, "(no move)", NoMove.String())
	assert.Equal(t, "(1, 2)", Move{1, 2}.String())
}

func BenchmarkLegalMoves(b *testing.B) {
	board := PlayMoves(NewBoard(), Move{3, 3}, Move{0, 0}, Move{1, 2})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, m := range board.LegalMoves() {
			board.Forecast(m)
		}
	}
}
