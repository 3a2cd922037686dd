package cli

import (
	"github.com/janpfeifer/isolationGo/internal/players"
	"github.com/janpfeifer/isolationGo/internal/searchers"
	. "github.com/janpfeifer/isolationGo/internal/state"
	"k8s.io/klog/v2"
)

// Human is a players.Player that reads its moves from the UI.
type Human struct {
	ui *UI
}

// Assert Human is a players.Player.
var _ players.Player = (*Human)(nil)

// NewHuman returns a player that shows the board and reads the moves through ui.
func (ui *UI) NewHuman() *Human {
	return &Human{ui: ui}
}

// Play implements players.Player. If the move can't be read, it returns NoMove, which forfeits the match.
func (h *Human) Play(board *Board, legalMoves []Move, _ searchers.TimeLeft) (Move, float32) {
	if len(legalMoves) == 0 {
		return NoMove, 0
	}
	h.ui.Print(board, true)
	move, err := h.ui.ReadMove(board)
	if err != nil {
		klog.Errorf("Human player: %v", err)
		return NoMove, 0
	}
	return move, 0
}

// Finalize implements players.Player.
func (h *Human) Finalize() {}

// String implements players.Player.
func (h *Human) String() string { return "human" }
