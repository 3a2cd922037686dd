package searchers

import (
	"math/rand/v2"
	"sync"

	. "github.com/janpfeifer/isolationGo/internal/state"
	"k8s.io/klog/v2"
)

// Random is a Searcher that picks one of the legal moves at random, without searching.
// It is used as a reference opponent, and to randomize the openings of a match.
type Random[G any] struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// Assert Random is a Searcher.
var _ Searcher[*Board] = (*Random[*Board])(nil)

// NewRandom returns a Random searcher using the global random number generator.
func NewRandom[G any]() *Random[G] {
	return &Random[G]{}
}

// NewRandomWithSeed returns a Random searcher with its own generator, for reproducible matches.
func NewRandomWithSeed[G any](seed uint64) *Random[G] {
	return &Random[G]{rng: rand.New(rand.NewPCG(seed, 0))}
}

// String implements Searcher.
func (r *Random[G]) String() string { return "random" }

// Search implements Searcher.
func (r *Random[G]) Search(_ G, legalMoves []Move, _ TimeLeft) Result {
	if len(legalMoves) == 0 {
		return Result{Move: NoMove, Exhaustive: true}
	}
	idx := r.intN(len(legalMoves))
	if klog.V(3).Enabled() {
		klog.Infof("random: selected %s out of %d moves", legalMoves[idx], len(legalMoves))
	}
	return Result{Move: legalMoves[idx]}
}

func (r *Random[G]) intN(n int) int {
	if r.rng == nil {
		return rand.IntN(n)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(n)
}
