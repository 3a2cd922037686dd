// Package state holds the Isolation game state.
//
// Isolation is played on a small rectangular grid: each player occupies one cell and
// moves like a chess knight. Every cell ever occupied stays blocked until the end of
// the match, and the player that has no legal move on its turn loses.
package state

import (
	"fmt"
	"iter"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

const (
	// NumPlayers currently limited to 2.
	NumPlayers = 2

	// DefaultHeight and DefaultWidth of the board.
	DefaultHeight = 7
	DefaultWidth  = 7

	// MaxCells is the limit of cells a board can have: the blocked cells are encoded in an uint64.
	MaxCells = 64

	// NumKnightMoves is the maximum number of moves available from any one cell.
	NumKnightMoves = 8
)

// PlayerNum is the either 0 or 1 corresponding to the first player to move or the second player to move.
type PlayerNum uint8

const (
	PlayerFirst PlayerNum = iota
	PlayerSecond

	// PlayerInvalid represents an invalid PlayerNum. It is also used as the Winner of an unfinished match.
	PlayerInvalid
)

var playerNames = [3]string{"First", "Second", "Invalid"}

// String returns the player name.
func (p PlayerNum) String() string {
	if p > PlayerInvalid {
		return fmt.Sprintf("PlayerNum(%d)", p)
	}
	return playerNames[p]
}

// Opponent returns the other player.
func (p PlayerNum) Opponent() PlayerNum {
	if p >= PlayerInvalid {
		exceptions.Panicf("Opponent() of invalid player %d", p)
	}
	return 1 - p
}

// Move packages row, column of a cell. It is also used to represent the location of a player.
type Move [2]int8

// NoMove is returned when there are no legal moves available. It is also the location of a
// player that hasn't been placed on the board yet.
var NoMove = Move{-1, -1}

// Row of the move.
func (m Move) Row() int8 { return m[0] }

// Col is the column of the move.
func (m Move) Col() int8 { return m[1] }

// IsNoMove returns whether m is the NoMove sentinel.
func (m Move) IsNoMove() bool { return m == NoMove }

// String returns a text representation of Move.
func (m Move) String() string {
	if m.IsNoMove() {
		return "(no move)"
	}
	return fmt.Sprintf("(%d, %d)", m[0], m[1])
}

// knightDeltas lists the relative knight moves, in the order the legal moves are enumerated.
var knightDeltas = [NumKnightMoves]Move{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

// Board represents the state of a match. It is never modified after it is built: Forecast
// returns a new Board, so boards can be freely shared across a search tree.
type Board struct {
	height, width int8

	// blocked has one bit per cell (row*width+col) set if the cell was ever occupied.
	blocked uint64

	// locations of each player, NoMove if the player hasn't been placed yet.
	locations [NumPlayers]Move

	active     PlayerNum
	moveNumber int
}

// NewBoard creates a new empty board of DefaultHeight x DefaultWidth.
func NewBoard() *Board {
	b, err := NewBoardWithSize(DefaultHeight, DefaultWidth)
	if err != nil {
		panic(err)
	}
	return b
}

// NewBoardWithSize creates a new empty board with the given dimensions.
// It returns an error if the board would have more than MaxCells cells.
func NewBoardWithSize(height, width int) (*Board, error) {
	if height < 1 || width < 1 {
		return nil, errors.Errorf("invalid board dimensions %dx%d", height, width)
	}
	if height*width > MaxCells {
		return nil, errors.Errorf("board %dx%d has %d cells, at most %d are supported",
			height, width, height*width, MaxCells)
	}
	return &Board{
		height:     int8(height),
		width:      int8(width),
		locations:  [NumPlayers]Move{NoMove, NoMove},
		active:     PlayerFirst,
		moveNumber: 1,
	}, nil
}

// Height of the board, in rows.
func (b *Board) Height() int { return int(b.height) }

// Width of the board, in columns.
func (b *Board) Width() int { return int(b.width) }

// MaxMoves is the maximum number of legal moves a placed player can have.
func (b *Board) MaxMoves() int { return NumKnightMoves }

// ActivePlayer is the player to move.
func (b *Board) ActivePlayer() PlayerNum { return b.active }

// InactivePlayer is the player that just moved.
func (b *Board) InactivePlayer() PlayerNum { return b.active.Opponent() }

// GetOpponent returns the opponent of the given player.
func (b *Board) GetOpponent(player PlayerNum) PlayerNum { return player.Opponent() }

// MoveNumber starts at 1 and is incremented after each move (ply).
func (b *Board) MoveNumber() int { return b.moveNumber }

// InBounds returns whether the move is within the board limits.
func (b *Board) InBounds(m Move) bool {
	return m[0] >= 0 && m[0] < b.height && m[1] >= 0 && m[1] < b.width
}

func (b *Board) cellBit(m Move) uint64 {
	return 1 << (uint(m[0])*uint(b.width) + uint(m[1]))
}

// IsBlank returns whether the cell is in the board and was never occupied.
func (b *Board) IsBlank(m Move) bool {
	return b.InBounds(m) && b.blocked&b.cellBit(m) == 0
}

// PlayerLocation returns the current location of player, and false if the player hasn't been placed yet.
func (b *Board) PlayerLocation(player PlayerNum) (Move, bool) {
	loc := b.locations[player]
	return loc, !loc.IsNoMove()
}

// BlankCellsIter iterates over the blank cells in column-major order.
func (b *Board) BlankCellsIter() iter.Seq[Move] {
	return func(yield func(Move) bool) {
		for col := int8(0); col < b.width; col++ {
			for row := int8(0); row < b.height; row++ {
				m := Move{row, col}
				if b.blocked&b.cellBit(m) != 0 {
					continue
				}
				if !yield(m) {
					return
				}
			}
		}
	}
}

// BlankCells returns the blank cells in column-major order.
func (b *Board) BlankCells() (cells []Move) {
	for m := range b.BlankCellsIter() {
		cells = append(cells, m)
	}
	return
}

// KnightMovesIter iterates over the blank cells reachable by a knight move from pos.
func (b *Board) KnightMovesIter(pos Move) iter.Seq[Move] {
	return func(yield func(Move) bool) {
		for _, delta := range knightDeltas {
			m := Move{pos[0] + delta[0], pos[1] + delta[1]}
			if !b.IsBlank(m) {
				continue
			}
			if !yield(m) {
				return
			}
		}
	}
}

// PlayerLegalMoves returns the moves the given player could make, whether it is the active player or not.
//
// A player not yet placed can move to any blank cell.
func (b *Board) PlayerLegalMoves(player PlayerNum) (moves []Move) {
	loc, placed := b.PlayerLocation(player)
	if !placed {
		return b.BlankCells()
	}
	moves = make([]Move, 0, NumKnightMoves)
	for m := range b.KnightMovesIter(loc) {
		moves = append(moves, m)
	}
	return
}

// LegalMoves returns the moves available to the active player.
func (b *Board) LegalMoves() []Move {
	return b.PlayerLegalMoves(b.active)
}

// IsLegal returns whether the active player can make the given move.
func (b *Board) IsLegal(m Move) bool {
	if !b.IsBlank(m) {
		return false
	}
	loc, placed := b.PlayerLocation(b.active)
	if !placed {
		return true
	}
	for _, delta := range knightDeltas {
		if m[0]-loc[0] == delta[0] && m[1]-loc[1] == delta[1] {
			return true
		}
	}
	return false
}

// Forecast returns a new board with the move applied by the active player and the turn passed to the opponent.
// The receiver is not modified.
//
// It panics if the move is not legal: callers are expected to only forecast moves from LegalMoves.
func (b *Board) Forecast(m Move) *Board {
	if !b.IsLegal(m) {
		exceptions.Panicf("illegal move %s for player %s at move #%d", m, b.active, b.moveNumber)
	}
	newB := &Board{}
	*newB = *b
	newB.blocked |= b.cellBit(m)
	newB.locations[b.active] = m
	newB.active = b.active.Opponent()
	newB.moveNumber++
	return newB
}

// IsLoser returns whether the player is to move and has no legal moves.
func (b *Board) IsLoser(player PlayerNum) bool {
	return player == b.active && len(b.LegalMoves()) == 0
}

// IsWinner returns whether the player just moved and its opponent has no legal moves.
func (b *Board) IsWinner(player PlayerNum) bool {
	return player == b.InactivePlayer() && len(b.LegalMoves()) == 0
}

// IsFinished returns whether the match is over.
func (b *Board) IsFinished() bool {
	return len(b.LegalMoves()) == 0
}

// Winner returns the winner of the match, or PlayerInvalid if the match is not finished.
func (b *Board) Winner() PlayerNum {
	if !b.IsFinished() {
		return PlayerInvalid
	}
	return b.InactivePlayer()
}

// String returns a compact text representation of the board, one line per row:
// "." blank, "#" blocked, "1"/"2" the players.
func (b *Board) String() string {
	buf := make([]byte, 0, int(b.height)*(int(b.width)+1))
	for row := int8(0); row < b.height; row++ {
		for col := int8(0); col < b.width; col++ {
			m := Move{row, col}
			switch {
			case b.locations[PlayerFirst] == m:
				buf = append(buf, '1')
			case b.locations[PlayerSecond] == m:
				buf = append(buf, '2')
			case b.blocked&b.cellBit(m) != 0:
				buf = append(buf, '#')
			default:
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
