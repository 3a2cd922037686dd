// Package minimax implements the plain minimax search algorithm, a searchers.Engine.
//
// It explores the full game tree up to the given depth, and it is mostly useful as a
// reference for the alphabeta engine, which returns the same values faster.
//
// See: wikipedia.org/wiki/Minimax
package minimax

import (
	"time"

	"github.com/janpfeifer/isolationGo/internal/ai"
	"github.com/janpfeifer/isolationGo/internal/searchers"
	. "github.com/janpfeifer/isolationGo/internal/state"
)

// Engine implements searchers.Engine with plain minimax.
// It holds no state across searches, and it can be used concurrently.
type Engine[G searchers.Game[G]] struct {
	scorer    ai.Scorer[G]
	threshold time.Duration
}

// Assert that Engine implements searchers.Engine.
var _ searchers.Engine[*Board] = (*Engine[*Board])(nil)

// New returns a minimax engine that scores the positions at the depth limit with scorer.
func New[G searchers.Game[G]](scorer ai.Scorer[G]) *Engine[G] {
	return &Engine[G]{scorer: scorer, threshold: searchers.DefaultThreshold}
}

// WithThreshold sets the safety margin: the search is aborted with searchers.ErrTimeout as soon as the
// time left drops below it. Default is searchers.DefaultThreshold.
func (e *Engine[G]) WithThreshold(threshold time.Duration) *Engine[G] {
	e.threshold = threshold
	return e
}

// String implements searchers.Engine.
func (e *Engine[G]) String() string { return "minimax" }

// search holds the state of one call to SearchDepth.
type search[G searchers.Game[G]] struct {
	*Engine[G]
	player   PlayerNum
	timeLeft searchers.TimeLeft
	stats    searchers.Stats
}

// SearchDepth implements searchers.Engine.
//
// Scores are from the point of view of the player to move at the root, who maximizes.
// Among moves with the same score, the first one enumerated is selected.
func (e *Engine[G]) SearchDepth(board G, depth int, timeLeft searchers.TimeLeft) (result searchers.Result, err error) {
	s := &search[G]{Engine: e, player: board.ActivePlayer(), timeLeft: timeLeft}
	result.Depth = depth
	result.Score, result.Move, err = s.recursion(board, depth, true)
	result.Stats = s.stats
	result.Exhaustive = err == nil && s.stats.Cutoffs == 0
	return
}

// recursion of minimax with depthLeft plies to go.
func (s *search[G]) recursion(board G, depthLeft int, maximizing bool) (bestScore float32, bestMove Move, err error) {
	bestMove = NoMove
	if s.timeLeft.Expired(s.threshold) {
		return 0, NoMove, searchers.ErrTimeout
	}
	s.stats.Nodes++

	if depthLeft <= 0 {
		return s.evaluate(board), NoMove, nil
	}
	moves := board.LegalMoves()
	if len(moves) == 0 {
		// The player to move lost.
		s.stats.Terminals++
		if maximizing {
			return ai.LossScore, NoMove, nil
		}
		return ai.WinScore, NoMove, nil
	}

	for ii, move := range moves {
		score, _, err := s.recursion(board.Forecast(move), depthLeft-1, !maximizing)
		if err != nil {
			return 0, NoMove, err
		}
		if ii == 0 || (maximizing && score > bestScore) || (!maximizing && score < bestScore) {
			bestScore, bestMove = score, move
		}
	}
	return
}

// evaluate the board at the depth limit.
func (s *search[G]) evaluate(board G) float32 {
	score := s.scorer.Score(board, s.player)
	s.stats.Evals++
	if !searchers.IsProven(score) {
		s.stats.Cutoffs++
	}
	return score
}
