package weighted

import (
	"github.com/janpfeifer/isolationGo/internal/parameters"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Presets of weights.

var (
	// Best weights, selected by cross-validation over SweepGrid: mostly own mobility, with
	// some pressure on the opponent mobility and staying close to it.
	Best = Weights{Own: 3, Opponent: 1, Distance: 1, Center: 0}

	// Mobility only counts the player's own moves.
	Mobility = Weights{Own: 1}

	// Aggressive weighs the opponent moves as much as its own.
	Aggressive = Weights{Own: 1, Opponent: 1}

	// Presets by name, as used in the configuration "preset=<name>".
	Presets = map[string]Weights{
		"best":       Best,
		"mobility":   Mobility,
		"aggressive": Aggressive,
	}
)

// SweepGrid holds the values of each weight that were considered when selecting Best. The
// cartesian product of the values, 192 combinations, were compared in tournaments.
var SweepGrid = struct {
	Own, Opponent, Distance, Center []float32
}{
	Own:      []float32{3, 2, 1},
	Opponent: []float32{1, .8, .6, 0},
	Distance: []float32{1, .6, .2, 0},
	Center:   []float32{1, .6, .2, 0},
}

// SweepCombinations enumerates all the Weights of SweepGrid.
func SweepCombinations() (all []Weights) {
	for _, own := range SweepGrid.Own {
		for _, opp := range SweepGrid.Opponent {
			for _, dist := range SweepGrid.Distance {
				for _, center := range SweepGrid.Center {
					all = append(all, Weights{Own: own, Opponent: opp, Distance: dist, Center: center})
				}
			}
		}
	}
	return
}

// NewFromParams creates a Scorer from the parameters, consuming the ones it uses:
//
//   - preset (string): name of one of the Presets. Default is "best".
//   - w_own, w_opp, w_dist, w_center (float): override individual weights of the preset.
func NewFromParams(params parameters.Params) (*Scorer, error) {
	presetName, err := parameters.PopParamOr(params, "preset", "best")
	if err != nil {
		return nil, err
	}
	w, found := Presets[presetName]
	if !found {
		return nil, errors.Errorf("unknown weights preset %q", presetName)
	}
	name := presetName
	for _, field := range []struct {
		key    string
		weight *float32
	}{
		{"w_own", &w.Own},
		{"w_opp", &w.Opponent},
		{"w_dist", &w.Distance},
		{"w_center", &w.Center},
	} {
		if !params.Has(field.key) {
			continue
		}
		*field.weight, err = parameters.PopParamOr(params, field.key, *field.weight)
		if err != nil {
			return nil, err
		}
		name = ""
	}
	s := New(w)
	if name != "" {
		s.WithName(name)
	}
	klog.V(1).Infof("Weighted scorer %s, weights %s", s, w)
	return s, nil
}
