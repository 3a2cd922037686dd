// Package tournament evaluates AI players by playing them against a set of reference players.
//
// Each test agent plays every reference agent NumMatches times. Each match is played as a pair
// of games, from the same random opening, with each agent playing first once.
package tournament

import (
	"os"
	"time"

	"github.com/janpfeifer/isolationGo/internal/match"
	"github.com/janpfeifer/isolationGo/internal/players"
	"github.com/janpfeifer/isolationGo/internal/state"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Agent is a named player configuration, see players.New.
type Agent struct {
	Name   string `yaml:"name"`
	Config string `yaml:"config"`
}

// Roster describes a tournament. It can be loaded from a YAML file, e.g.:
//
//	num_matches: 5
//	time_limit: 150ms
//	test:
//	  - name: ID_Improved
//	    config: "improved:ab,iterative"
//	  - name: Student
//	    config: "weighted:ab,iterative,preset=best"
//	reference:
//	  - name: Random
//	    config: random
//	  - name: MM_Open
//	    config: "open:mm,iterative=false,max_depth=3"
type Roster struct {
	Test      []Agent `yaml:"test"`
	Reference []Agent `yaml:"reference"`

	// NumMatches between each test agent and each reference agent. Each match is 2 games.
	NumMatches int `yaml:"num_matches"`

	// TimeLimit per turn.
	TimeLimit time.Duration `yaml:"time_limit"`

	// OpeningMoves is the number of random moves played at the start of each match.
	OpeningMoves int `yaml:"opening_moves"`

	// Height and Width of the board.
	Height int `yaml:"height"`
	Width  int `yaml:"width"`

	// Seed for the random openings.
	Seed uint64 `yaml:"seed"`
}

const (
	DefaultNumMatches   = 5
	DefaultOpeningMoves = 2
)

// DefaultRoster has the classic reference agents, and the weighted evaluation function compared
// to the "improved" baseline, both with iterative deepening.
func DefaultRoster() *Roster {
	r := &Roster{
		Test: []Agent{
			{Name: "ID_Improved", Config: "improved:ab,iterative"},
			{Name: "Student", Config: "weighted:ab,iterative,preset=best"},
		},
		Reference: []Agent{
			{Name: "Random", Config: "random"},
			{Name: "MM_Null", Config: "null:mm,iterative=false,max_depth=3"},
			{Name: "MM_Open", Config: "open:mm,iterative=false,max_depth=3"},
			{Name: "MM_Improved", Config: "improved:mm,iterative=false,max_depth=3"},
			{Name: "AB_Null", Config: "null:ab,iterative=false,max_depth=5"},
			{Name: "AB_Open", Config: "open:ab,iterative=false,max_depth=5"},
			{Name: "AB_Improved", Config: "improved:ab,iterative=false,max_depth=5"},
		},
	}
	r.setDefaults()
	return r
}

// LoadRoster reads a roster from a YAML file, and validates it.
func LoadRoster(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read roster from %q", path)
	}
	r, err := ParseRoster(data)
	if err != nil {
		return nil, errors.WithMessagef(err, "roster in %q", path)
	}
	return r, nil
}

// ParseRoster parses a YAML roster, fills in the defaults and validates it.
func ParseRoster(data []byte) (*Roster, error) {
	r := &Roster{}
	if err := yaml.Unmarshal(data, r); err != nil {
		return nil, errors.Wrap(err, "failed to parse roster")
	}
	r.setDefaults()
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Roster) setDefaults() {
	if r.NumMatches == 0 {
		r.NumMatches = DefaultNumMatches
	}
	if r.TimeLimit == 0 {
		r.TimeLimit = match.DefaultTimeLimit
	}
	if r.OpeningMoves == 0 {
		r.OpeningMoves = DefaultOpeningMoves
	}
	if r.Height == 0 {
		r.Height = state.DefaultHeight
	}
	if r.Width == 0 {
		r.Width = state.DefaultWidth
	}
}

// Validate checks that the roster is complete, that names are unique and that all agents can be created.
func (r *Roster) Validate() error {
	if len(r.Test) == 0 || len(r.Reference) == 0 {
		return errors.Errorf("roster needs at least one test and one reference agent, got %d and %d",
			len(r.Test), len(r.Reference))
	}
	if r.NumMatches < 0 || r.OpeningMoves < 0 || r.TimeLimit < 0 {
		return errors.Errorf("invalid num_matches=%d, opening_moves=%d or time_limit=%s",
			r.NumMatches, r.OpeningMoves, r.TimeLimit)
	}
	if _, err := r.NewBoard(); err != nil {
		return err
	}
	names := make(map[string]bool)
	for _, agent := range append(append([]Agent{}, r.Test...), r.Reference...) {
		if agent.Name == "" {
			return errors.Errorf("agent with config %q has no name", agent.Config)
		}
		if names[agent.Name] {
			return errors.Errorf("agent name %q used more than once", agent.Name)
		}
		names[agent.Name] = true
		player, err := players.New(agent.Config)
		if err != nil {
			return errors.WithMessagef(err, "agent %q", agent.Name)
		}
		player.Finalize()
	}
	return nil
}

// NewBoard returns an empty board of the roster's dimensions.
func (r *Roster) NewBoard() (*state.Board, error) {
	return state.NewBoardWithSize(r.Height, r.Width)
}
