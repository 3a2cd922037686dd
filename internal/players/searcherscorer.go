package players

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/janpfeifer/isolationGo/internal/ai"
	"github.com/janpfeifer/isolationGo/internal/parameters"
	"github.com/janpfeifer/isolationGo/internal/searchers"
	"github.com/janpfeifer/isolationGo/internal/searchers/alphabeta"
	"github.com/janpfeifer/isolationGo/internal/searchers/minimax"
	. "github.com/janpfeifer/isolationGo/internal/state"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"k8s.io/klog/v2"
)

// SearcherScorer is a standard set up for an AI: a searcher and a scorer.
// It implements the Player interface.
type SearcherScorer struct {
	Searcher searchers.Searcher[*Board]

	// Scorer used by the Searcher, if any.
	Scorer ai.Scorer[*Board]
}

// Assert that SearcherScorer is a Player.
var _ Player = &SearcherScorer{}

// methodKeys maps the configuration keys that select the search method.
var methodKeys = map[string]searchers.Method{
	"minimax":   searchers.Minimax,
	"mm":        searchers.Minimax,
	"alphabeta": searchers.AlphaBeta,
	"ab":        searchers.AlphaBeta,
}

// NewSearcherScorer creates a player that searches with the given scorer, configured by params.
// It consumes the parameters it uses, and returns an error if any parameter is left unused.
//
// Parameters:
//
//   - minimax (or mm), alphabeta (or ab): search method. Default is alphabeta.
//     Alternatively "method=<name>".
//   - iterative (bool): use iterative deepening until the time runs out. Default is true.
//   - max_depth (int): depth of the search in fixed-depth mode (default 3), or the maximum depth
//     of the iterative deepening if > 0 (default 0, no limit).
//   - threshold (time.Duration): safety margin of time to return a move. Plain numbers are
//     taken as milliseconds. Default is 10ms.
func NewSearcherScorer(scorer ai.Scorer[*Board], params parameters.Params) (*SearcherScorer, error) {
	method, err := popMethod(params)
	if err != nil {
		return nil, err
	}
	iterative, err := parameters.PopParamOr(params, "iterative", true)
	if err != nil {
		return nil, err
	}
	defaultDepth := 0
	if !iterative {
		defaultDepth = searchers.DefaultFixedDepth
	}
	maxDepth, err := parameters.PopParamOr(params, "max_depth", defaultDepth)
	if err != nil {
		return nil, err
	}
	if maxDepth < 0 || (!iterative && maxDepth == 0) {
		return nil, errors.Errorf("invalid max_depth=%d for %s search", maxDepth, lo.Ternary(iterative, "iterative", "fixed-depth"))
	}
	threshold, err := popThreshold(params)
	if err != nil {
		return nil, err
	}
	if err := params.CheckAllConsumed(); err != nil {
		return nil, err
	}

	var engine searchers.Engine[*Board]
	switch method {
	case searchers.Minimax:
		engine = minimax.New(scorer).WithThreshold(threshold)
	case searchers.AlphaBeta:
		engine = alphabeta.New(scorer).WithThreshold(threshold)
	default:
		return nil, errors.Errorf("search method %s not supported", method)
	}
	driver := searchers.NewDriver(engine)
	if iterative {
		driver.WithIterative(maxDepth)
	} else {
		driver.WithFixedDepth(maxDepth)
	}
	player := &SearcherScorer{Searcher: driver, Scorer: scorer}
	klog.V(1).Infof("New player %s", player)
	return player, nil
}

// popMethod consumes the method selection keys from params.
func popMethod(params parameters.Params) (searchers.Method, error) {
	var found []string
	method := searchers.AlphaBeta
	for key, m := range methodKeys {
		if params.Has(key) {
			found = append(found, key)
			method = m
			delete(params, key)
		}
	}
	if params.Has("method") {
		m, err := searchers.ParseMethod(params["method"])
		if err != nil {
			return method, err
		}
		found = append(found, "method")
		method = m
		delete(params, "method")
	}
	if len(found) > 1 {
		sort.Strings(found)
		return method, errors.Errorf("more than one search method selected: %q", found)
	}
	return method, nil
}

// popThreshold consumes the "threshold" parameter, a duration or a number of milliseconds.
func popThreshold(params parameters.Params) (time.Duration, error) {
	if value := params["threshold"]; value != "" {
		if ms, err := strconv.ParseFloat(value, 64); err == nil {
			params["threshold"] = time.Duration(ms * float64(time.Millisecond)).String()
		}
	}
	threshold, err := parameters.PopParamOr(params, "threshold", searchers.DefaultThreshold)
	if err != nil {
		return 0, err
	}
	if threshold <= 0 {
		return 0, errors.Errorf("threshold must be positive, got %s", threshold)
	}
	return threshold, nil
}

// String implements Player.
func (s *SearcherScorer) String() string {
	if s.Scorer == nil {
		return s.Searcher.String()
	}
	return fmt.Sprintf("%s+%s", s.Searcher, s.Scorer)
}

// Play implements the Player interface: it chooses a move given a Board.
func (s *SearcherScorer) Play(b *Board, legalMoves []Move, timeLeft searchers.TimeLeft) (Move, float32) {
	start := time.Now()
	result := s.Searcher.Search(b, legalMoves, timeLeft)
	if klog.V(2).Enabled() {
		klog.Infof("Move #%d: AI (%s) playing %s, score=%.3f, depth=%d, in %s",
			b.MoveNumber(), s, result.Move, result.Score, result.Depth, time.Since(start))
	}
	if klog.V(3).Enabled() {
		klog.Infof("  search stats: %+v", result.Stats)
	}
	return result.Move, result.Score
}

// Finalize is called at the end of a match.
func (s *SearcherScorer) Finalize() {
	if klog.V(1).Enabled() {
		klog.Infof("Player %s finalized", s)
	}
}
