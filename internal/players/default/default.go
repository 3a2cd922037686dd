// Package _default registers the default players that can be included in any
// front-end for isolationGo.
//
// Currently, it includes the weighted evaluation function, the mobility baselines ("open",
// "improved" and "null"), all searched with minimax or alpha-beta pruning, and a "random" player.
package _default

import (
	"github.com/janpfeifer/isolationGo/internal/ai"
	"github.com/janpfeifer/isolationGo/internal/ai/mobility"
	"github.com/janpfeifer/isolationGo/internal/ai/weighted"
	"github.com/janpfeifer/isolationGo/internal/parameters"
	"github.com/janpfeifer/isolationGo/internal/players"
	"github.com/janpfeifer/isolationGo/internal/searchers"
	"github.com/janpfeifer/isolationGo/internal/state"
)

func init() {
	players.RegisterModule("weighted", ScorerModule(func(params parameters.Params) (ai.Scorer[*state.Board], error) {
		return weighted.NewFromParams(params)
	}))
	for name, scorer := range mobility.ByName {
		players.RegisterModule(name, ScorerModule(func(parameters.Params) (ai.Scorer[*state.Board], error) {
			return scorer, nil
		}))
	}
	players.RegisterModule("random", &Random{})
}

// ScorerModule implements players.Module for a scorer searched by a players.SearcherScorer.
// The function builds the scorer, consuming its own parameters.
type ScorerModule func(params parameters.Params) (ai.Scorer[*state.Board], error)

// Assert ScorerModule implements Module.
var _ players.Module = ScorerModule(nil)

// NewPlayer implements players.Module.
func (fn ScorerModule) NewPlayer(params parameters.Params) (players.Player, error) {
	scorer, err := fn(params)
	if err != nil {
		return nil, err
	}
	return players.NewSearcherScorer(scorer, params)
}

// Random implements players.Module for a player that moves at random.
//
// It takes an optional "seed" (int) parameter, for reproducible matches.
type Random struct{}

// Assert Random implements Module.
var _ players.Module = (*Random)(nil)

// NewPlayer implements players.Module.
func (r *Random) NewPlayer(params parameters.Params) (players.Player, error) {
	seed, err := parameters.PopParamOr(params, "seed", -1)
	if err != nil {
		return nil, err
	}
	if err := params.CheckAllConsumed(); err != nil {
		return nil, err
	}
	searcher := searchers.NewRandom[*state.Board]()
	if seed >= 0 {
		searcher = searchers.NewRandomWithSeed[*state.Board](uint64(seed))
	}
	return &players.SearcherScorer{Searcher: searcher}, nil
}
