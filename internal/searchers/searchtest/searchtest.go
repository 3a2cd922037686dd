// Package searchtest provides an explicit game tree and a fake clock, to test the searchers
// with precise control over the move ordering, the values of the positions and the time left.
package searchtest

import (
	"fmt"
	"time"

	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/isolationGo/internal/ai"
	"github.com/janpfeifer/isolationGo/internal/searchers"
	. "github.com/janpfeifer/isolationGo/internal/state"
)

// Node of an explicit game tree. It implements searchers.Game[*Node].
//
// The moves of a node are Move{0, i}, for i indexing its children.
type Node struct {
	tree     *Tree
	active   PlayerNum
	children []*Node

	// value of the node from the point of view of the PlayerFirst, if it is evaluated.
	value float32
}

// Tree holds the root and the counters of a game tree.
type Tree struct {
	Root *Node

	// Forecasts counts the calls to Node.Forecast in any node of the tree.
	Forecasts int
}

// Leaf returns a node that evaluates to value, from the point of view of the first player.
// If searched below the depth limit, a leaf is an end-of-game position: the player to move loses.
func Leaf(value float32) *Node {
	return &Node{value: value}
}

// Branch returns a node with the given children.
func Branch(children ...*Node) *Node {
	return &Node{children: children}
}

// New creates a Tree whose root has the given children, with the first player to move at the root.
func New(children ...*Node) *Tree {
	t := &Tree{Root: Branch(children...)}
	t.setup(t.Root, PlayerFirst)
	return t
}

func (t *Tree) setup(n *Node, active PlayerNum) {
	n.tree = t
	n.active = active
	for _, child := range n.children {
		t.setup(child, active.Opponent())
	}
}

// Assert Node is a searchers.Game.
var _ searchers.Game[*Node] = (*Node)(nil)

// ActivePlayer implements searchers.Game.
func (n *Node) ActivePlayer() PlayerNum { return n.active }

// LegalMoves implements searchers.Game.
func (n *Node) LegalMoves() []Move {
	moves := make([]Move, len(n.children))
	for ii := range moves {
		moves[ii] = Move{0, int8(ii)}
	}
	return moves
}

// Forecast implements searchers.Game.
func (n *Node) Forecast(m Move) *Node {
	if m[0] != 0 || m[1] < 0 || int(m[1]) >= len(n.children) {
		exceptions.Panicf("illegal move %s in node with %d children", m, len(n.children))
	}
	n.tree.Forecasts++
	return n.children[m[1]]
}

// String implements fmt.Stringer.
func (n *Node) String() string {
	if len(n.children) == 0 {
		return fmt.Sprintf("Leaf(%g)", n.value)
	}
	return fmt.Sprintf("Branch(%d children)", len(n.children))
}

// Scorer returns the leaf values, negated for the second player.
var Scorer ai.Scorer[*Node] = ai.ScorerFunc[*Node]{
	Name: "searchtest",
	Fn: func(n *Node, player PlayerNum) float32 {
		if player == PlayerFirst {
			return n.value
		}
		return -n.value
	},
}

// Clock is a fake clock: the time left decreases by Tick at each call.
type Clock struct {
	Budget, Tick time.Duration
	Calls        int
}

// TimeLeft returns the searchers.TimeLeft of the clock.
func (c *Clock) TimeLeft() searchers.TimeLeft {
	return func() time.Duration {
		c.Calls++
		return c.Budget - time.Duration(c.Calls)*c.Tick
	}
}

// Expired is a searchers.TimeLeft that reports the time is already over.
func Expired() time.Duration { return -time.Millisecond }
