// Package alphabeta implements minimax with alpha-beta pruning, a searchers.Engine.
//
// See: wikipedia.org/wiki/Alpha-beta_pruning
package alphabeta

import (
	"time"

	"github.com/janpfeifer/isolationGo/internal/ai"
	"github.com/janpfeifer/isolationGo/internal/searchers"
	. "github.com/janpfeifer/isolationGo/internal/state"
)

// Engine implements searchers.Engine with alpha-beta pruning.
// It is used by players.SearcherScorer, through a searchers.Driver, to implement an AI player.
//
// It holds no state across searches, and it can be used concurrently.
type Engine[G searchers.Game[G]] struct {
	scorer    ai.Scorer[G]
	threshold time.Duration
}

// Assert that Engine implements searchers.Engine.
var _ searchers.Engine[*Board] = (*Engine[*Board])(nil)

// New returns an Alpha-Beta Pruning engine that scores the positions at the depth limit with scorer.
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
func (e *Engine[G]) String() string { return "alphabeta" }

// search holds the state of one call to SearchDepth.
type search[G searchers.Game[G]] struct {
	*Engine[G]
	player   PlayerNum
	timeLeft searchers.TimeLeft
	stats    searchers.Stats
}

// SearchDepth implements searchers.Engine.
//
// It returns the same score and move as minimax would for the same depth: moves are explored
// in the order enumerated by the board, and the first move reaching the best score is kept.
//
// The root is handled here rather than in maxValue, since it has to keep track of the best move
// and not only of the score.
func (e *Engine[G]) SearchDepth(board G, depth int, timeLeft searchers.TimeLeft) (result searchers.Result, err error) {
	s := &search[G]{Engine: e, player: board.ActivePlayer(), timeLeft: timeLeft}
	result.Depth = depth
	defer func() {
		result.Stats = s.stats
		result.Exhaustive = err == nil && s.stats.Cutoffs == 0
	}()

	if s.timeLeft.Expired(s.threshold) {
		return result, searchers.ErrTimeout
	}
	s.stats.Nodes++
	result.Move = NoMove
	if depth <= 0 {
		result.Score = s.evaluate(board)
		return
	}
	moves := board.LegalMoves()
	if len(moves) == 0 {
		s.stats.Terminals++
		result.Score = ai.LossScore
		return
	}

	// If every move loses, the first one is returned.
	bestScore, bestMove := ai.LossScore, moves[0]
	beta := ai.WinScore
	for _, move := range moves {
		// The best score so far is the alpha of the opponent's replies.
		var score float32
		score, err = s.minValue(board.Forecast(move), depth-1, bestScore, beta)
		if err != nil {
			return
		}
		if score > bestScore {
			bestScore, bestMove = score, move
		}
	}
	result.Score, result.Move = bestScore, bestMove
	return
}

// maxValue returns the value of a board where the root player is to move.
func (s *search[G]) maxValue(board G, depthLeft int, alpha, beta float32) (float32, error) {
	if s.timeLeft.Expired(s.threshold) {
		return 0, searchers.ErrTimeout
	}
	s.stats.Nodes++
	if depthLeft <= 0 {
		return s.evaluate(board), nil
	}
	moves := board.LegalMoves()
	if len(moves) == 0 {
		s.stats.Terminals++
		return ai.LossScore, nil
	}

	value := ai.LossScore
	for _, move := range moves {
		score, err := s.minValue(board.Forecast(move), depthLeft-1, alpha, beta)
		if err != nil {
			return 0, err
		}
		value = max(value, score)
		if value >= beta {
			// The minimizing player will never let the game get here.
			s.stats.Prunes++
			return value, nil
		}
		alpha = max(alpha, value)
	}
	return value, nil
}

// minValue returns the value of a board where the root player's opponent is to move.
func (s *search[G]) minValue(board G, depthLeft int, alpha, beta float32) (float32, error) {
	if s.timeLeft.Expired(s.threshold) {
		return 0, searchers.ErrTimeout
	}
	s.stats.Nodes++
	if depthLeft <= 0 {
		return s.evaluate(board), nil
	}
	moves := board.LegalMoves()
	if len(moves) == 0 {
		s.stats.Terminals++
		return ai.WinScore, nil
	}

	value := ai.WinScore
	for _, move := range moves {
		score, err := s.maxValue(board.Forecast(move), depthLeft-1, alpha, beta)
		if err != nil {
			return 0, err
		}
		value = min(value, score)
		if value <= alpha {
			// The maximizing player already has a better alternative.
			s.stats.Prunes++
			return value, nil
		}
		beta = min(beta, value)
	}
	return value, nil
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
