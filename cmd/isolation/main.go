// isolation plays a match of Isolation in the terminal: human vs AI, human vs human (-hotseat),
// or AI vs AI (-watch).
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/isolationGo/internal/match"
	"github.com/janpfeifer/isolationGo/internal/players"
	_ "github.com/janpfeifer/isolationGo/internal/players/default"
	"github.com/janpfeifer/isolationGo/internal/searchers"
	. "github.com/janpfeifer/isolationGo/internal/state"
	"github.com/janpfeifer/isolationGo/internal/ui/cli"
	"github.com/janpfeifer/isolationGo/internal/ui/spinning"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
)

var (
	flagHotseat   = flag.Bool("hotseat", false, "Hotseat match: human vs human")
	flagWatch     = flag.Bool("watch", false, "Watch mode: AI vs AI playing")
	flagFirst     = flag.String("first", "", "Who plays first: human or ai. Default is random.")
	flagAIConfig  = flag.String("config", "weighted:ab,iterative", "AI configuration against which to play")
	flagAIConfig2 = flag.String("config2", "improved:ab,iterative", "Second AI configuration, if playing AI vs AI with --watch")
	flagTimeLimit = flag.Duration("time_limit", match.DefaultTimeLimit, "Time limit of each AI move.")
	flagHeight    = flag.Int("height", DefaultHeight, "Number of rows of the board.")
	flagWidth     = flag.Int("width", DefaultWidth, "Number of columns of the board.")
	flagOpening   = flag.Int("opening", 0, "Number of random moves to start the match with.")
	flagColor     = flag.Bool("color", true, "Use colors in the terminal.")
	flagQuiet     = flag.Bool("quiet", false, "Quiet mode for when watching AI play, only the moves and the last board position is printed.")

	globalCtx = context.Background()
)

// humanTimeLimit is large enough to never be a concern.
const humanTimeLimit = 24 * time.Hour

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	// Capture Control+C
	var cancel func()
	globalCtx, cancel = context.WithCancel(context.Background())
	spinning.SafeInterrupt(cancel, 3*time.Second)
	defer cancel()

	ui := cli.New(*flagColor, false)
	matchPlayers, isHuman := createPlayers(ui)
	board := must.M1(NewBoardWithSize(*flagHeight, *flagWidth))

	opts := match.Options{
		TimeLimit: *flagTimeLimit,
		Opening:   match.RandomOpening(board, *flagOpening, rand.New(rand.NewPCG(rand.Uint64(), 0))),
	}
	for playerNum := range PlayerNum(NumPlayers) {
		if isHuman[playerNum] {
			opts.PlayerTimeLimits[playerNum] = humanTimeLimit
			continue
		}
		matchPlayers[playerNum] = &watched{Player: matchPlayers[playerNum], ui: ui}
	}

	outcome, err := match.Play(globalCtx, board, matchPlayers, opts)
	if err != nil {
		klog.Exitf("Failed to run match: %+v", err)
	}
	ui.Print(outcome.Board, false)
	ui.PrintWinner(outcome)
}

// watched wraps an AI player to display the board and a spinner while it thinks.
type watched struct {
	players.Player
	ui *cli.UI
}

func (w *watched) Play(board *Board, legalMoves []Move, timeLeft searchers.TimeLeft) (Move, float32) {
	if *flagWatch && !*flagQuiet {
		w.ui.Print(board, false)
		fmt.Printf("\t%s move: ", w.Player)
	} else {
		fmt.Printf("AI (%s) %s: ", w.Player, w.ui.PlayerName(board.ActivePlayer()))
	}
	s := spinning.New(globalCtx)
	move, score := w.Player.Play(board, legalMoves, timeLeft)
	elapsed := s.Done()
	fmt.Printf(" %s (score=%.3f, %s)\n", move, score, elapsed.Round(time.Millisecond))
	fmt.Println()
	return move, score
}

// createPlayers for the match: isHuman tells which of the players are humans.
func createPlayers(ui *cli.UI) (matchPlayers [NumPlayers]players.Player, isHuman [NumPlayers]bool) {
	if *flagHotseat && *flagWatch {
		klog.Fatalf("--hotseat and --watch cannot be used together")
	}
	human := ui.NewHuman()
	if *flagHotseat {
		// Both players are human.
		return [NumPlayers]players.Player{human, human}, [NumPlayers]bool{true, true}
	}

	// Create AI player:
	var aiPlayerNum PlayerNum
	if *flagWatch {
		aiPlayerNum = PlayerFirst
	} else {
		switch strings.ToLower(*flagFirst) {
		case "human":
			aiPlayerNum = PlayerSecond
		case "ai":
			aiPlayerNum = PlayerFirst
		case "":
			aiPlayerNum = PlayerNum(rand.IntN(NumPlayers))
		default:
			exceptions.Panicf("invalid --first=%q, only valid values are \"human\" or \"ai\"", *flagFirst)
		}
	}
	matchPlayers[aiPlayerNum] = must.M1(players.New(*flagAIConfig))
	otherPlayerNum := aiPlayerNum.Opponent()
	if !*flagWatch {
		matchPlayers[otherPlayerNum] = human
		isHuman[otherPlayerNum] = true
		return
	}

	// Create second AI
	matchPlayers[otherPlayerNum] = must.M1(players.New(*flagAIConfig2))
	return
}
