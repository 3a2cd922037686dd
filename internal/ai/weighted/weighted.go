// Package weighted implements the positional evaluation function used by the search players:
// a weighted combination of normalized mobility and distance features.
package weighted

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/janpfeifer/isolationGo/internal/ai"
	. "github.com/janpfeifer/isolationGo/internal/state"
)

// Weights of each of the normalized features. Each feature is in [0, 1].
//
// The score is Own*ownMobility - Opponent*opponentMobility - Distance*distanceToOpponent - Center*distanceToCenter.
type Weights struct {
	Own, Opponent, Distance, Center float32
}

// String returns the weights in the order used by the configuration strings.
func (w Weights) String() string {
	return fmt.Sprintf("own=%g/opp=%g/dist=%g/center=%g", w.Own, w.Opponent, w.Distance, w.Center)
}

// Features holds the normalized features of a board for a player, before weighting.
type Features struct {
	OwnMobility, OpponentMobility, Distance, CenterDistance float32
}

// Scorer implements ai.Scorer with a fixed set of Weights.
// It is immutable and safe for concurrent use.
type Scorer struct {
	name    string
	weights Weights
}

// Assert Scorer is an ai.Scorer.
var _ ai.Scorer[*Board] = (*Scorer)(nil)

// New creates a Scorer with the given weights.
func New(weights Weights) *Scorer {
	return &Scorer{weights: weights}
}

// WithName sets the name of the scorer, used when printing it. It returns itself.
func (s *Scorer) WithName(name string) *Scorer {
	s.name = name
	return s
}

// Weights returns the weights used by the scorer.
func (s *Scorer) Weights() Weights { return s.weights }

// String implements ai.Scorer.
func (s *Scorer) String() string {
	if s.name != "" {
		return fmt.Sprintf("weighted[%s]", s.name)
	}
	return fmt.Sprintf("weighted[%s]", s.weights)
}

// Score implements ai.Scorer.
func (s *Scorer) Score(board *Board, player PlayerNum) float32 {
	if isEnd, score := ai.IsEndGameAndScore(board, player); isEnd {
		return score
	}
	f := ExtractFeatures(board, player)
	w := s.weights
	return f.OwnMobility*w.Own - f.OpponentMobility*w.Opponent - f.Distance*w.Distance - f.CenterDistance*w.Center
}

// ExtractFeatures returns the normalized features for the board from the point of view of player.
//
// Mobility is normalized by the maximum number of moves of a cell (Board.MaxMoves): a player
// not yet placed may have more moves than that, and hence a mobility above 1.
// Distances are euclidean, normalized by the board diagonal (distance between the players) or
// half-diagonal (distance to the center). If either player is not placed, the distances are 0.
func ExtractFeatures(board *Board, player PlayerNum) (f Features) {
	opponent := board.GetOpponent(player)
	maxMoves := float32(board.MaxMoves())
	f.OwnMobility = float32(len(board.PlayerLegalMoves(player))) / maxMoves
	f.OpponentMobility = float32(len(board.PlayerLegalMoves(opponent))) / maxMoves

	ownPos, ownPlaced := board.PlayerLocation(player)
	oppPos, oppPlaced := board.PlayerLocation(opponent)
	maxRow, maxCol := float32(board.Height()-1), float32(board.Width()-1)
	diagonal := math32.Hypot(maxRow, maxCol)
	if diagonal == 0 {
		// Single cell board.
		return
	}
	if ownPlaced && oppPlaced {
		f.Distance = math32.Hypot(float32(ownPos.Row()-oppPos.Row()), float32(ownPos.Col()-oppPos.Col())) / diagonal
	}
	if ownPlaced {
		f.CenterDistance = math32.Hypot(float32(ownPos.Row())-maxRow/2, float32(ownPos.Col())-maxCol/2) / (diagonal / 2)
	}
	return
}
