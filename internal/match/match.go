// Package match runs games of Isolation between two players, enforcing the time limit of each turn.
//
// A player loses the match if it has no legal moves on its turn, if it returns after its time
// is over, if it returns an illegal move, or if it panics.
package match

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/isolationGo/internal/players"
	"github.com/janpfeifer/isolationGo/internal/searchers"
	. "github.com/janpfeifer/isolationGo/internal/state"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// DefaultTimeLimit for each turn.
const DefaultTimeLimit = 150 * time.Millisecond

// Reason why a match ended.
type Reason int

const (
	// NoMoves means the loser had no legal moves left on its turn.
	NoMoves Reason = iota

	// Timeout means the loser returned its move after the time limit of the turn.
	Timeout

	// IllegalMove means the loser returned a move that was not legal.
	IllegalMove

	// Panic means the loser panicked during its turn.
	Panic
)

var reasonNames = []string{"no moves", "timeout", "illegal move", "panic"}

// String implements fmt.Stringer.
func (r Reason) String() string {
	if r < 0 || int(r) >= len(reasonNames) {
		return fmt.Sprintf("Reason(%d)", int(r))
	}
	return reasonNames[r]
}

// Outcome of a match.
type Outcome struct {
	Winner PlayerNum
	Reason Reason

	// Moves played, including the opening. The move of a forfeited turn is not included.
	Moves []Move

	// Board at the end of the match.
	Board *Board
}

// Loser of the match.
func (o Outcome) Loser() PlayerNum { return o.Winner.Opponent() }

// String implements fmt.Stringer.
func (o Outcome) String() string {
	return fmt.Sprintf("%s won after %d moves (%s lost by %s)", o.Winner, len(o.Moves), o.Loser(), o.Reason)
}

// Options of a match.
type Options struct {
	// TimeLimit of each turn. Defaults to DefaultTimeLimit if 0.
	TimeLimit time.Duration

	// PlayerTimeLimits overrides TimeLimit for a player, if > 0. Used to give human players more time.
	PlayerTimeLimits [NumPlayers]time.Duration

	// Opening moves, played before the players take over.
	Opening []Move

	// OnMove is called, if set, after each move, with the board before the move.
	OnMove func(board *Board, move Move, elapsed time.Duration)
}

// Play a match between the two players, starting from board, where players[0] plays as the
// first player.
//
// It returns an error only if the opening is not legal or if ctx is cancelled: problems with the
// players are reported as forfeits in the Outcome. The players are finalized at the end of the match.
func Play(ctx context.Context, board *Board, matchPlayers [2]players.Player, opts Options) (outcome Outcome, err error) {
	if opts.TimeLimit <= 0 {
		opts.TimeLimit = DefaultTimeLimit
	}
	defer func() {
		for _, player := range matchPlayers {
			player.Finalize()
		}
	}()

	for _, move := range opts.Opening {
		if !board.IsLegal(move) {
			return outcome, errors.Errorf("illegal opening move %s for %s on move #%d", move, board.ActivePlayer(), board.MoveNumber())
		}
		outcome.Moves = append(outcome.Moves, move)
		board = board.Forecast(move)
	}

	for {
		if ctx.Err() != nil {
			return outcome, errors.WithMessagef(ctx.Err(), "match interrupted at move #%d", board.MoveNumber())
		}
		active := board.ActivePlayer()
		legalMoves := board.LegalMoves()
		if len(legalMoves) == 0 {
			return finish(outcome, board, active, NoMoves), nil
		}

		start := time.Now()
		timeLimit := opts.TimeLimit
		if opts.PlayerTimeLimits[active] > 0 {
			timeLimit = opts.PlayerTimeLimits[active]
		}
		timeLeft := searchers.NewTurnTimer(timeLimit)
		move, reason, forfeit := playTurn(matchPlayers[active], board, legalMoves, timeLeft)
		if forfeit {
			return finish(outcome, board, active, reason), nil
		}
		if opts.OnMove != nil {
			opts.OnMove(board, move, time.Since(start))
		}
		outcome.Moves = append(outcome.Moves, move)
		board = board.Forecast(move)
	}
}

// playTurn asks player for its move, and checks it returned a legal move in time.
func playTurn(player players.Player, board *Board, legalMoves []Move, timeLeft searchers.TimeLeft) (move Move, reason Reason, forfeit bool) {
	exception := exceptions.TryCatch[any](func() {
		move, _ = player.Play(board, legalMoves, timeLeft)
	})
	if exception != nil {
		klog.Errorf("Player %s (%s) panicked on move #%d: %v", board.ActivePlayer(), player, board.MoveNumber(), exception)
		return NoMove, Panic, true
	}
	if timeLeft() < 0 {
		klog.V(1).Infof("Player %s (%s) timed out on move #%d: %s over the limit",
			board.ActivePlayer(), player, board.MoveNumber(), -timeLeft())
		return move, Timeout, true
	}
	if !board.IsLegal(move) {
		klog.V(1).Infof("Player %s (%s) played illegal move %s on move #%d", board.ActivePlayer(), player, move, board.MoveNumber())
		return move, IllegalMove, true
	}
	return move, 0, false
}

func finish(outcome Outcome, board *Board, loser PlayerNum, reason Reason) Outcome {
	outcome.Winner = loser.Opponent()
	outcome.Reason = reason
	outcome.Board = board
	if klog.V(1).Enabled() {
		klog.Infof("Match finished: %s", outcome)
	}
	return outcome
}

// RandomOpening returns numMoves random legal moves from board, alternating players.
// It stops early if a player runs out of moves.
func RandomOpening(board *Board, numMoves int, rng *rand.Rand) []Move {
	var opening []Move
	for range numMoves {
		legalMoves := board.LegalMoves()
		if len(legalMoves) == 0 {
			break
		}
		move := legalMoves[rng.IntN(len(legalMoves))]
		opening = append(opening, move)
		board = board.Forecast(move)
	}
	return opening
}
