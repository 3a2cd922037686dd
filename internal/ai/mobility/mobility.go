// Package mobility implements simple baseline evaluation functions, based only on the number
// of moves available to each player. They are used as reference opponents when comparing
// players.
package mobility

import (
	"github.com/janpfeifer/isolationGo/internal/ai"
	. "github.com/janpfeifer/isolationGo/internal/state"
)

var (
	// Null scores every non-terminal position as 0: the search only sees wins and losses.
	Null ai.Scorer[*Board] = ai.ScorerFunc[*Board]{Name: "null", Fn: nullScore}

	// Open scores a position by the number of moves available to the player.
	Open ai.Scorer[*Board] = ai.ScorerFunc[*Board]{Name: "open", Fn: openScore}

	// Improved scores a position by the difference of moves available to the player and to its opponent.
	Improved ai.Scorer[*Board] = ai.ScorerFunc[*Board]{Name: "improved", Fn: improvedScore}

	// ByName indexes the scorers by their names.
	ByName = map[string]ai.Scorer[*Board]{
		"null":     Null,
		"open":     Open,
		"improved": Improved,
	}
)

func nullScore(b *Board, player PlayerNum) float32 {
	if isEnd, score := ai.IsEndGameAndScore(b, player); isEnd {
		return score
	}
	return 0
}

func openScore(b *Board, player PlayerNum) float32 {
	if isEnd, score := ai.IsEndGameAndScore(b, player); isEnd {
		return score
	}
	return float32(len(b.PlayerLegalMoves(player)))
}

func improvedScore(b *Board, player PlayerNum) float32 {
	if isEnd, score := ai.IsEndGameAndScore(b, player); isEnd {
		return score
	}
	own := len(b.PlayerLegalMoves(player))
	opp := len(b.PlayerLegalMoves(b.GetOpponent(player)))
	return float32(own - opp)
}
