package state

import (
	"strings"

	"github.com/pkg/errors"
)

// ParseBoard creates a board from its text layout, in the same format generated by Board.String:
// one line per row, with "." for blank cells, "#" for blocked cells and "1" and "2" for the
// first and second player locations. Empty lines and surrounding spaces are ignored.
//
// active is the player to move next. The move number is set to the number of blocked cells plus 1.
func ParseBoard(layout string, active PlayerNum) (*Board, error) {
	if active >= PlayerInvalid {
		return nil, errors.Errorf("invalid active player %d", active)
	}
	var rows []string
	for _, line := range strings.Split(layout, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) == 0 {
		return nil, errors.New("empty board layout")
	}
	width := len(rows[0])
	b, err := NewBoardWithSize(len(rows), width)
	if err != nil {
		return nil, err
	}
	numBlocked := 0
	for row, line := range rows {
		if len(line) != width {
			return nil, errors.Errorf("row %d has %d columns, expected %d", row, len(line), width)
		}
		for col, c := range []byte(line) {
			m := Move{int8(row), int8(col)}
			switch c {
			case '.':
				continue
			case '#':
			case '1', '2':
				player := PlayerNum(c - '1')
				if !b.locations[player].IsNoMove() {
					return nil, errors.Errorf("player %c placed twice, in %s and %s", c, b.locations[player], m)
				}
				b.locations[player] = m
			default:
				return nil, errors.Errorf("invalid cell %q in row %d, column %d", c, row, col)
			}
			b.blocked |= b.cellBit(m)
			numBlocked++
		}
	}
	b.active = active
	b.moveNumber = numBlocked + 1
	return b, nil
}
