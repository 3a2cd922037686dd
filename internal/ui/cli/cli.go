// Package cli implements a command-line UI for the game.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/janpfeifer/isolationGo/internal/match"
	. "github.com/janpfeifer/isolationGo/internal/state"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// CharsPerColumn is the width of each cell of the board.
const CharsPerColumn = 3

var ansiFilter = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// displayWidth of s removes its color/control sequences and returns the length of what is left.
func displayWidth(s string) int {
	return len([]rune(ansiFilter.ReplaceAllString(s, "")))
}

// terminalWidth returns the width of the terminal, or 0 if the output is not a terminal.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

func (ui *UI) printCentered(block string) {
	lines := strings.Split(strings.TrimRight(block, "\n"), "\n")
	blockWidth := 0
	for _, line := range lines {
		blockWidth = max(blockWidth, displayWidth(line))
	}
	indent := max((terminalWidth(ui.out)-blockWidth)/2, 0)
	for _, line := range lines {
		if len(line) == 0 {
			fmt.Fprintln(ui.out)
			continue
		}
		fmt.Fprintf(ui.out, "%s%s\n", strings.Repeat(" ", indent), line)
	}
}

func centerString(s string, fit int) string {
	width := displayWidth(s)
	if width >= fit {
		return s
	}
	marginLeft := (fit - width) / 2
	marginRight := fit - width - marginLeft
	return strings.Repeat(" ", marginLeft) + s + strings.Repeat(" ", marginRight)
}

// UI renders boards and reads the moves of human players from the terminal.
type UI struct {
	color, clearScreen bool
	reader             *bufio.Reader
	out                io.Writer
}

var (
	moveParser = regexp.MustCompile(`^\s*(-?\d+)[\s,]+(-?\d+)\s*$`)

	// ErrParsing is returned by ReadMove after too many failed attempts to read a move.
	ErrParsing = errors.New("failed to read move 3 times")
)

// New returns a UI on the standard input and output.
func New(color bool, clearScreen bool) *UI {
	return NewWithIO(os.Stdin, os.Stdout, color, clearScreen)
}

// NewWithIO returns a UI reading from in and writing to out.
func NewWithIO(in io.Reader, out io.Writer, color bool, clearScreen bool) *UI {
	return &UI{
		color:       color,
		clearScreen: clearScreen,
		reader:      bufio.NewReader(in),
		out:         out,
	}
}

var (
	playerColors = [NumPlayers]lipgloss.Color{"12", "9"}
	blockedColor = lipgloss.Color("8")
	legalColor   = lipgloss.Color("10")
)

func (ui *UI) style(s string, fg lipgloss.Color, bold bool) string {
	if !ui.color {
		return s
	}
	return lipgloss.NewStyle().Foreground(fg).Bold(bold).Render(s)
}

// PlayerName returns the colored name of the player.
func (ui *UI) PlayerName(player PlayerNum) string {
	return ui.style(player.String()+" Player", playerColors[player], true)
}

// RenderBoard returns the board drawn as text, with the row and column numbers. The cells in
// highlight, typically the legal moves, are marked with "*".
func (ui *UI) RenderBoard(board *Board, highlight []Move) string {
	var sb strings.Builder
	marks := make(map[Move]bool, len(highlight))
	for _, m := range highlight {
		marks[m] = true
	}

	sb.WriteString(strings.Repeat(" ", CharsPerColumn))
	for col := range board.Width() {
		sb.WriteString(centerString(strconv.Itoa(col), CharsPerColumn))
	}
	sb.WriteString("\n")

	locations := [NumPlayers]Move{}
	for player := range PlayerNum(NumPlayers) {
		locations[player], _ = board.PlayerLocation(player)
	}
	for row := range board.Height() {
		sb.WriteString(centerString(strconv.Itoa(row), CharsPerColumn))
		for col := range board.Width() {
			m := Move{int8(row), int8(col)}
			var cell string
			switch {
			case m == locations[PlayerFirst]:
				cell = ui.style("1", playerColors[PlayerFirst], true)
			case m == locations[PlayerSecond]:
				cell = ui.style("2", playerColors[PlayerSecond], true)
			case marks[m]:
				cell = ui.style("*", legalColor, false)
			case !board.IsBlank(m):
				cell = ui.style("#", blockedColor, false)
			default:
				cell = "."
			}
			sb.WriteString(centerString(cell, CharsPerColumn))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Print the board, with the move number and the player to play. If showMoves, the legal
// moves of the player to play are highlighted.
func (ui *UI) Print(board *Board, showMoves bool) {
	if ui.clearScreen {
		fmt.Fprint(ui.out, "\033c")
	}
	fmt.Fprintf(ui.out, "\n%s\n\n", ui.style(fmt.Sprintf("Move #%d", board.MoveNumber()), lipgloss.Color("7"), true))
	var highlight []Move
	if showMoves {
		highlight = board.LegalMoves()
	}
	ui.printCentered(ui.RenderBoard(board, highlight))
	fmt.Fprintln(ui.out)
	if !board.IsFinished() {
		fmt.Fprintf(ui.out, "\tTurn to play: %s\n", ui.PlayerName(board.ActivePlayer()))
	}
}

// ReadMove reads a move, given as "row col" or "row,col", for the player to play.
// It asks again if the input is invalid, up to 3 times, after which it returns ErrParsing.
func (ui *UI) ReadMove(board *Board) (move Move, err error) {
	for range 3 {
		fmt.Fprintf(ui.out, "    %s move (row col) > ", ui.PlayerName(board.ActivePlayer()))
		var text string
		text, err = ui.reader.ReadString('\n')
		if err != nil && (err != io.EOF || text == "") {
			return NoMove, errors.Wrap(err, "failed to read move")
		}
		text = strings.TrimSpace(text)
		matches := moveParser.FindStringSubmatch(text)
		if len(matches) != 3 {
			fmt.Fprintf(ui.out, "    * Failed to parse your input %q, please try again.\n", text)
			continue
		}
		failed := false
		for ii := range 2 {
			i64, parseErr := strconv.ParseInt(matches[1+ii], 10, 8)
			if parseErr != nil {
				fmt.Fprintf(ui.out, "    * Failed to parse location %q in %q\n", matches[1+ii], text)
				failed = true
				break
			}
			move[ii] = int8(i64)
		}
		if failed {
			continue
		}
		if !board.IsLegal(move) {
			fmt.Fprintf(ui.out, "    * Moving to %s is not valid.\n", move)
			continue
		}
		return move, nil
	}
	return NoMove, ErrParsing
}

// PrintWinner prints a banner with the winner of the match.
func (ui *UI) PrintWinner(outcome match.Outcome) {
	fmt.Fprintln(ui.out)
	banner := fmt.Sprintf("*** %s WINS!! (%s lost by %s) ***",
		strings.ToUpper(outcome.Winner.String()+" Player"), outcome.Loser(), outcome.Reason)
	if ui.color {
		banner = lipgloss.NewStyle().
			Background(playerColors[outcome.Winner]).
			Foreground(lipgloss.Color("0")).
			Padding(1, 2).
			Render(banner)
	}
	ui.printCentered(banner)
	fmt.Fprintln(ui.out)
}
