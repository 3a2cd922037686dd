// Package ai (Artificial Intelligence) defines standard interfaces that evaluation functions
// for the game have to implement.
package ai

import (
	"github.com/chewxy/math32"
	. "github.com/janpfeifer/isolationGo/internal/state"
)

var (
	// WinScore is the score of a won match, for the winning side.
	WinScore = math32.Inf(1)

	// LossScore is the score of a lost match, for the losing side.
	LossScore = math32.Inf(-1)
)

// Scorer (aka. evaluation function) returns a heuristic score for a board, from the point of view of
// the given player: higher is better for player.
//
// Terminal positions must score WinScore or LossScore. Scorers must be pure functions of
// board and player: they are called concurrently on different matches.
//
// G is the type of the board, typically *state.Board.
type Scorer[G any] interface {
	Score(board G, player PlayerNum) float32
	String() string
}

// ScorerFunc adapts a function to a Scorer.
type ScorerFunc[G any] struct {
	Name string
	Fn   func(board G, player PlayerNum) float32
}

// Score implements Scorer.
func (f ScorerFunc[G]) Score(board G, player PlayerNum) float32 { return f.Fn(board, player) }

// String implements Scorer.
func (f ScorerFunc[G]) String() string { return f.Name }

// IsEndGameAndScore returns whether the match is finished, and if so the hard-coded score from
// the point of view of player: WinScore or LossScore.
// If isEnd is false, the score should be ignored.
func IsEndGameAndScore(b *Board, player PlayerNum) (isEnd bool, score float32) {
	if b.IsLoser(player) {
		return true, LossScore
	}
	if b.IsWinner(player) {
		return true, WinScore
	}
	return false, 0
}
