package tournament

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/janpfeifer/isolationGo/internal/match"
	"github.com/janpfeifer/isolationGo/internal/players"
	. "github.com/janpfeifer/isolationGo/internal/state"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
)

// Score of a test agent against a reference agent.
type Score struct {
	Wins, Losses int

	// Forfeits lost by the test agent, by reason. It doesn't include losses by match.NoMoves.
	Forfeits map[match.Reason]int
}

// Games played.
func (s Score) Games() int { return s.Wins + s.Losses }

// Results of a tournament. It is safe for concurrent use.
type Results struct {
	mu     sync.Mutex
	roster *Roster
	scores map[[2]string]*Score
	start  time.Time
	played int
}

func newResults(roster *Roster) *Results {
	r := &Results{roster: roster, scores: make(map[[2]string]*Score), start: time.Now()}
	for _, test := range roster.Test {
		for _, ref := range roster.Reference {
			r.scores[[2]string{test.Name, ref.Name}] = &Score{Forfeits: make(map[match.Reason]int)}
		}
	}
	return r
}

// record the outcome of a game between test and ref.
func (r *Results) record(test, ref string, testWon bool, reason match.Reason) {
	r.mu.Lock()
	defer r.mu.Unlock()
	score := r.scores[[2]string{test, ref}]
	if testWon {
		score.Wins++
	} else {
		score.Losses++
		if reason != match.NoMoves {
			score.Forfeits[reason]++
		}
	}
	r.played++
}

// Roster of the tournament.
func (r *Results) Roster() *Roster { return r.roster }

// Played returns the number of games played so far, and the total number of games of the tournament.
func (r *Results) Played() (played, total int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.played, len(r.roster.Test) * len(r.roster.Reference) * r.roster.NumMatches * 2
}

// Score returns a copy of the score of test against ref.
func (r *Results) Score(test, ref string) Score {
	r.mu.Lock()
	defer r.mu.Unlock()
	score, found := r.scores[[2]string{test, ref}]
	if !found {
		return Score{}
	}
	c := *score
	c.Forfeits = lo.Assign(score.Forfeits)
	return c
}

// WinRate of the test agent over all its games, from 0 to 1.
func (r *Results) WinRate(test string) float64 {
	var wins, games int
	for _, ref := range r.roster.Reference {
		score := r.Score(test, ref.Name)
		wins += score.Wins
		games += score.Games()
	}
	if games == 0 {
		return 0
	}
	return float64(wins) / float64(games)
}

// String implements fmt.Stringer: a one-line summary of the progress.
func (r *Results) String() string {
	played, total := r.Played()
	parts := []string{fmt.Sprintf("Played %d of %d", played, total)}
	for _, test := range r.roster.Test {
		parts = append(parts, fmt.Sprintf("%s: %.1f%%", test.Name, 100*r.WinRate(test.Name)))
	}
	parts = append(parts, time.Since(r.start).Round(time.Millisecond).String())
	return strings.Join(parts, " - ")
}

// Options to run a tournament.
type Options struct {
	// Parallelism is the number of games played simultaneously. Defaults to GOMAXPROCS if <= 0.
	Parallelism int

	// OnGame is called, if set, after each game. Calls are serialized.
	OnGame func(results *Results, test, ref Agent, testFirst bool, outcome match.Outcome)
}

// RoundRobin plays every test agent against every reference agent, as configured by the roster.
//
// If ctx is cancelled, it returns the results collected so far along with the error.
func RoundRobin(ctx context.Context, roster *Roster, opts Options) (*Results, error) {
	results := newResults(roster)
	parallelism := opts.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}
	board, err := roster.NewBoard()
	if err != nil {
		return nil, err
	}

	// Openings are drawn upfront, so they don't depend on the order the games are played.
	rng := rand.New(rand.NewPCG(roster.Seed, 0x15))
	openings := make([][]Move, roster.NumMatches)
	for matchIdx := range openings {
		openings[matchIdx] = match.RandomOpening(board, roster.OpeningMoves, rng)
	}

	var muOnGame sync.Mutex
	wg, ctx := errgroup.WithContext(ctx)
	wg.SetLimit(parallelism)
	for _, test := range roster.Test {
		for _, ref := range roster.Reference {
			for matchIdx, opening := range openings {
				for _, testFirst := range []bool{true, false} {
					wg.Go(func() error {
						outcome, err := playGame(ctx, roster, board, opening, test, ref, testFirst)
						if err != nil {
							return errors.WithMessagef(err, "%s vs %s, match #%d", test.Name, ref.Name, matchIdx)
						}
						testPlayer := lo.Ternary(testFirst, PlayerFirst, PlayerSecond)
						results.record(test.Name, ref.Name, outcome.Winner == testPlayer, outcome.Reason)
						if opts.OnGame != nil {
							muOnGame.Lock()
							opts.OnGame(results, test, ref, testFirst, outcome)
							muOnGame.Unlock()
						}
						return nil
					})
				}
			}
		}
	}
	err = wg.Wait()
	if klog.V(1).Enabled() {
		klog.Infof("Tournament finished: %s", results)
	}
	return results, err
}

// playGame creates new players for test and ref and plays one game.
func playGame(ctx context.Context, roster *Roster, board *Board, opening []Move, test, ref Agent, testFirst bool) (match.Outcome, error) {
	var matchPlayers [2]players.Player
	for idx, agent := range []Agent{test, ref} {
		player, err := players.New(agent.Config)
		if err != nil {
			return match.Outcome{}, errors.WithMessagef(err, "agent %q", agent.Name)
		}
		matchPlayers[idx] = player
	}
	if !testFirst {
		matchPlayers[0], matchPlayers[1] = matchPlayers[1], matchPlayers[0]
	}
	return match.Play(ctx, board, matchPlayers, match.Options{TimeLimit: roster.TimeLimit, Opening: opening})
}
