// Package searchers defines the interfaces of the game-tree search algorithms, and the Driver that
// runs them under a per-move time budget, with iterative deepening.
//
// The search algorithms themselves are in the sub-packages minimax and alphabeta.
package searchers

import (
	"fmt"
	"strings"

	"github.com/janpfeifer/isolationGo/internal/ai"
	. "github.com/janpfeifer/isolationGo/internal/state"
	"github.com/pkg/errors"
)

// Game is the view of a game state needed by the searchers. *state.Board implements Game[*state.Board].
//
// Forecast must return a new state, leaving the receiver untouched: searchers share states
// among sibling branches.
type Game[G any] interface {
	// ActivePlayer is the player to move.
	ActivePlayer() PlayerNum

	// LegalMoves of the active player, always enumerated in the same order for the same state.
	LegalMoves() []Move

	// Forecast returns the state after the active player makes the move.
	Forecast(move Move) G
}

// Assert *state.Board is a Game.
var _ Game[*Board] = (*Board)(nil)

// ErrTimeout is returned by the search engines when the time left drops below their safety threshold.
// The result of the search that returns it must be discarded.
var ErrTimeout = errors.New("search timeout")

// Result of a search.
type Result struct {
	// Score of the position from the point of view of the player to move at the root.
	Score float32

	// Move selected: it is NoMove only if there are no legal moves.
	Move Move

	// Depth of the search, in plies, that produced this result. A depth of 0 means no
	// search was completed, and Move was chosen without searching.
	Depth int

	// Exhaustive is true if the search reached only end-of-game positions: searching deeper
	// would not change the result.
	Exhaustive bool

	// Stats collected during the search.
	Stats Stats
}

// String implements fmt.Stringer.
func (r Result) String() string {
	return fmt.Sprintf("move=%s, score=%.3f, depth=%d, exhaustive=%v", r.Move, r.Score, r.Depth, r.Exhaustive)
}

// Stats stores running stats collected during the search: for benchmarking, monitoring and debugging purposes.
type Stats struct {
	// Nodes visited: each visit corresponds to one check of the time left.
	Nodes int

	// Evals is the number of positions evaluated with the scorer, at the depth limit.
	Evals int

	// Cutoffs is the number of Evals that were not end-of-game positions.
	Cutoffs int

	// Terminals is the number of positions found without legal moves before the depth limit.
	Terminals int

	// Prunes is the number of times alpha-beta pruning skipped the remaining moves of a node.
	Prunes int
}

// Add accumulates the stats of other into s.
func (s *Stats) Add(other Stats) {
	s.Nodes += other.Nodes
	s.Evals += other.Evals
	s.Cutoffs += other.Cutoffs
	s.Terminals += other.Terminals
	s.Prunes += other.Prunes
}

// Searcher is the interface that any of the move selection algorithms must adhere to.
type Searcher[G any] interface {
	// Search returns the move to take on the given board, selected among legalMoves.
	//
	// timeLeft is sampled during the search, and Search returns before it reports the
	// searcher's safety threshold was crossed. If legalMoves is empty it returns NoMove.
	Search(board G, legalMoves []Move, timeLeft TimeLeft) Result

	String() string
}

// Engine is a depth-limited search algorithm.
type Engine[G any] interface {
	// SearchDepth searches the game tree rooted at board up to depth plies.
	//
	// It returns ErrTimeout if timeLeft dropped below the engine's threshold during the search:
	// in which case the Result is incomplete and only its Stats are meaningful.
	SearchDepth(board G, depth int, timeLeft TimeLeft) (Result, error)

	String() string
}

// Method enumerates the search algorithms.
type Method int

const (
	Minimax Method = iota
	AlphaBeta
)

var methodNames = []string{"minimax", "alphabeta"}

// String returns the canonical name of the method.
func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", int(m))
	}
	return methodNames[m]
}

// ParseMethod converts a method name ("minimax" or "mm", "alphabeta" or "ab") to a Method.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(name) {
	case "minimax", "mm":
		return Minimax, nil
	case "alphabeta", "alpha_beta", "ab":
		return AlphaBeta, nil
	}
	return 0, errors.Errorf("unknown search method %q, valid values are \"minimax\" (\"mm\") or \"alphabeta\" (\"ab\")", name)
}

// IsProven returns whether the score is a proven win or loss (infinite).
func IsProven(score float32) bool {
	return score == ai.WinScore || score == ai.LossScore
}
