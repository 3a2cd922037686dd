// Package players provides a factory of AI players from configuration strings.
// It also allows player providers to register themselves.
package players

import (
	"sort"
	"strings"

	"github.com/janpfeifer/isolationGo/internal/parameters"
	"github.com/janpfeifer/isolationGo/internal/searchers"
	. "github.com/janpfeifer/isolationGo/internal/state"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Player is anything that is able to play the game.
type Player interface {
	// Play returns the move chosen among legalMoves, and the score the player predicts for the
	// position (from its point of view), if it has one.
	//
	// It must return before timeLeft becomes negative, otherwise the player forfeits the match.
	// If legalMoves is empty it returns NoMove.
	Play(board *Board, legalMoves []Move, timeLeft searchers.TimeLeft) (move Move, score float32)

	// Finalize is called at the end of a match.
	Finalize()

	String() string
}

// Module creates new players, configured by params.
//
// NewPlayer must consume (pop) the parameters it uses, and return an error if any is left.
type Module interface {
	NewPlayer(params parameters.Params) (Player, error)
}

var (
	// Registered modules, by name.
	keywordToModules = make(map[string]Module)
)

// RegisterModule so it can be used by any of the front-ends to play Isolation.
func RegisterModule(name string, module Module) {
	keywordToModules[name] = module
}

// ModuleNames returns the names of the registered modules, sorted.
func ModuleNames() []string {
	names := lo.Keys(keywordToModules)
	sort.Strings(names)
	return names
}

var (
	// DefaultPlayerConfig is used if no configuration was given to the AI. The value may be changed by the
	// UI built.
	DefaultPlayerConfig = "weighted:ab,iterative"
)

// New creates a new AI player given the configuration string.
//
// Args:
//
//	config: the module name followed by a colon (":"), followed by a comma-separated list of optional
//		parameters with optional values associated. E.g.: "weighted:ab,max_depth=5,w_own=2".
//		If empty, the default is given by DefaultPlayerConfig.
//
// More details on the config are dependent on the module used. See NewSearcherScorer for the
// parameters of the search.
func New(config string) (Player, error) {
	if config == "" {
		config = DefaultPlayerConfig
	}

	// Find moduleName.
	moduleName, params := config, ""
	if moduleSplit := strings.Index(config, ":"); moduleSplit != -1 {
		moduleName, params = config[:moduleSplit], config[moduleSplit+1:]
	}
	module, ok := keywordToModules[moduleName]
	if !ok {
		if len(keywordToModules) == 0 {
			return nil, errors.Errorf("unknown AI player %q: no modules registered, perhaps you need to "+
				"import _ \"github.com/janpfeifer/isolationGo/internal/players/default\" in your binary?", moduleName)
		}
		return nil, errors.Errorf("unknown AI player %q, registered players are %q", moduleName, ModuleNames())
	}

	player, err := module.NewPlayer(parameters.NewFromConfigString(params))
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to create AI player %q", config)
	}
	return player, nil
}
