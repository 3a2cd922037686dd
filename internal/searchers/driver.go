package searchers

import (
	"fmt"

	"github.com/janpfeifer/isolationGo/internal/ai"
	. "github.com/janpfeifer/isolationGo/internal/state"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// DefaultFixedDepth is the search depth used in fixed-depth mode, if none is given.
const DefaultFixedDepth = 3

// Driver implements Searcher using an Engine, either with a fixed depth, or with iterative
// deepening until the time runs out.
//
// It is stateless across searches, and can be used concurrently if the Engine can.
type Driver[G any] struct {
	engine    Engine[G]
	iterative bool

	// maxDepth is the depth used in fixed-depth mode. In iterative mode it is a cap on the depth, if > 0.
	maxDepth int
}

// Assert Driver is a Searcher.
var _ Searcher[*Board] = (*Driver[*Board])(nil)

// NewDriver returns a Driver for the engine. By default, it does iterative deepening without
// a depth limit. See Driver.WithFixedDepth and Driver.WithIterative.
func NewDriver[G any](engine Engine[G]) *Driver[G] {
	return &Driver[G]{engine: engine, iterative: true}
}

// WithFixedDepth configures the driver to search once at the given depth, in plies.
// Depths < 1 are searched as 1.
func (d *Driver[G]) WithFixedDepth(depth int) *Driver[G] {
	d.iterative = false
	d.maxDepth = depth
	return d
}

// WithIterative configures the driver to search with iterative deepening, increasing the depth
// by one ply at a time until time runs out, the search is exhaustive or maxDepth is reached.
// Set maxDepth to 0 for no limit.
func (d *Driver[G]) WithIterative(maxDepth int) *Driver[G] {
	d.iterative = true
	d.maxDepth = maxDepth
	return d
}

// IsIterative returns whether the driver uses iterative deepening.
func (d *Driver[G]) IsIterative() bool { return d.iterative }

// MaxDepth returns the fixed depth, or the iterative deepening cap (0 if there is none).
func (d *Driver[G]) MaxDepth() int { return d.maxDepth }

// String implements Searcher.
func (d *Driver[G]) String() string {
	if d.iterative {
		if d.maxDepth > 0 {
			return fmt.Sprintf("%s(iterative, max_depth=%d)", d.engine, d.maxDepth)
		}
		return fmt.Sprintf("%s(iterative)", d.engine)
	}
	return fmt.Sprintf("%s(depth=%d)", d.engine, d.maxDepth)
}

// Search implements Searcher.
//
// If no search completes before the time runs out, it returns the first of the legalMoves,
// with Depth 0.
func (d *Driver[G]) Search(board G, legalMoves []Move, timeLeft TimeLeft) Result {
	if len(legalMoves) == 0 {
		return Result{Move: NoMove, Score: ai.LossScore, Exhaustive: true}
	}
	fallback := Result{Move: legalMoves[0]}
	if !d.iterative {
		result, err := d.engine.SearchDepth(board, max(d.maxDepth, 1), timeLeft)
		if err != nil {
			d.checkTimeout(err)
			klog.V(2).Infof("%s: timeout, falling back to first legal move %s", d, fallback.Move)
			fallback.Stats = result.Stats
			return fallback
		}
		return result
	}

	best := fallback
	var total Stats
	for depth := 1; d.maxDepth <= 0 || depth <= d.maxDepth; depth++ {
		result, err := d.engine.SearchDepth(board, depth, timeLeft)
		total.Add(result.Stats)
		if err != nil {
			d.checkTimeout(err)
			klog.V(2).Infof("%s: timeout at depth %d, using result of depth %d", d, depth, best.Depth)
			break
		}
		best = result
		if klog.V(2).Enabled() {
			klog.Infof("%s: depth %d completed, %s, nodes=%d", d, depth, best, total.Nodes)
		}
		if best.Exhaustive {
			// Horizon reached: deeper searches would only revisit the same end-of-game positions.
			break
		}
	}
	best.Stats = total
	return best
}

// checkTimeout panics if err is anything other than ErrTimeout: engines only fail by timing out.
func (d *Driver[G]) checkTimeout(err error) {
	if !errors.Is(err, ErrTimeout) {
		panic(errors.WithMessagef(err, "%s failed", d))
	}
}
