// compare plays AI players against each other and reports their win rates.
//
// Either two configurations head-to-head (-ai1 and -ai2), a roster of test and reference agents
// given in a YAML file (-roster), the default roster (-default_roster), or a sweep of the
// weighted evaluation function weights against the default reference agents (-sweep).
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/janpfeifer/isolationGo/internal/ai/weighted"
	"github.com/janpfeifer/isolationGo/internal/match"
	_ "github.com/janpfeifer/isolationGo/internal/players/default"
	"github.com/janpfeifer/isolationGo/internal/profilers"
	"github.com/janpfeifer/isolationGo/internal/tournament"
	"github.com/janpfeifer/isolationGo/internal/ui/cli"
	"github.com/janpfeifer/isolationGo/internal/ui/spinning"
	"github.com/janpfeifer/must"
	"github.com/samber/lo"
	"k8s.io/klog/v2"
)

var (
	flagPlayer1Config = flag.String("ai1", "", "1st player configuration.")
	flagPlayer2Config = flag.String("ai2", "", "2nd player configuration.")
	flagRoster        = flag.String("roster", "", "YAML file with the test and reference agents to compare.")
	flagDefaultRoster = flag.Bool("default_roster", false, "Compare the default test agents to the default reference agents.")
	flagSweep         = flag.Bool("sweep", false, "Compare all the combinations of weights of the sweep grid of the weighted "+
		"evaluation function against the default reference agents. It takes a long time.")
	flagNumMatches = flag.Int("num_matches", 0, "Number of matches (each one is 2 games) per pair of agents. "+
		"If 0, the roster value or its default is used.")
	flagTimeLimit   = flag.Duration("time_limit", 0, "Time limit per move. If 0, the roster value or its default is used.")
	flagParallelism = flag.Int("parallelism", 0, "If > 0 ignore GOMAXPROCS and play "+
		"these many games simultaneously.")
	flagColor = flag.Bool("color", true, "Use colors in the terminal.")
)

// Globals
var (
	// globalCtx used everywhere. It is cancelled when the program is about to exit either by
	// an interrupt (ctrl+C) or by reaching the end.
	globalCtx = context.Background()
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	// Capture Control+C
	var globalCancel func()
	globalCtx, globalCancel = context.WithCancel(context.Background())
	spinning.SafeInterrupt(globalCancel, 5*time.Second)
	defer globalCancel()

	// Profilers: HTTP profiler server and CPU profile.
	profiler := must.M1(profilers.Setup(globalCtx))
	defer func() { must.M(profiler.Stop()) }()

	roster := must.M1(createRoster())
	ui := cli.New(*flagColor, false)
	fmt.Printf("Comparing %d agents against %d reference agents, %d matches each, %s per move\n",
		len(roster.Test), len(roster.Reference), roster.NumMatches, roster.TimeLimit)
	results, err := tournament.RoundRobin(globalCtx, roster, tournament.Options{
		Parallelism: *flagParallelism,
		OnGame: func(results *tournament.Results, _, _ tournament.Agent, _ bool, _ match.Outcome) {
			fmt.Printf("\r%s\033[0K", results)
		},
	})
	fmt.Println()
	if err != nil && globalCtx.Err() != nil {
		fmt.Printf("Interrupted: %s\n", globalCtx.Err())
	} else {
		must.M(err)
	}
	if results != nil {
		ui.PrintResults(results)
	}
}

// createRoster from the flags.
func createRoster() (*tournament.Roster, error) {
	var roster *tournament.Roster
	switch {
	case *flagRoster != "":
		var err error
		roster, err = tournament.LoadRoster(*flagRoster)
		if err != nil {
			return nil, err
		}
	case *flagDefaultRoster:
		roster = tournament.DefaultRoster()
	case *flagSweep:
		roster = tournament.DefaultRoster()
		roster.Test = lo.Map(weighted.SweepCombinations(), func(w weighted.Weights, _ int) tournament.Agent {
			return tournament.Agent{
				Name: w.String(),
				Config: fmt.Sprintf("weighted:ab,iterative,w_own=%g,w_opp=%g,w_dist=%g,w_center=%g",
					w.Own, w.Opponent, w.Distance, w.Center),
			}
		})
	default:
		if *flagPlayer1Config == "" || *flagPlayer2Config == "" {
			klog.Fatal("You must configure both players to compare with flags -ai1 and -ai2, or use -roster, -default_roster or -sweep")
		}
		roster = tournament.DefaultRoster()
		roster.Test = []tournament.Agent{{Name: "AI-1", Config: *flagPlayer1Config}}
		roster.Reference = []tournament.Agent{{Name: "AI-2", Config: *flagPlayer2Config}}
	}
	if *flagNumMatches > 0 {
		roster.NumMatches = *flagNumMatches
	}
	if *flagTimeLimit > 0 {
		roster.TimeLimit = *flagTimeLimit
	}
	return roster, roster.Validate()
}
