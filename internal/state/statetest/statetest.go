// Package statetest provides helper functions to create tests using Isolation state.
package statetest

import (
	. "github.com/janpfeifer/isolationGo/internal/state"
)

// BuildBoard from a text layout (see state.ParseBoard). It panics if the layout is invalid.
func BuildBoard(layout string, active PlayerNum) *Board {
	b, err := ParseBoard(layout, active)
	if err != nil {
		panic(err)
	}
	return b
}

// PlayMoves applies the moves in order, alternating players, and returns the final board.
func PlayMoves(b *Board, moves ...Move) *Board {
	for _, m := range moves {
		b = b.Forecast(m)
	}
	return b
}

// Corridor is a 3x4 position used in tests: the first player is to move and has a single
// legal move, (1, 2), after which the second player has no moves left.
const Corridor = `
	1.#.
	##.#
	#2..
`
