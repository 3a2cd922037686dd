package mobility

import (
	"testing"

	"github.com/chewxy/math32"
	. "github.com/janpfeifer/isolationGo/internal/state"
	. "github.com/janpfeifer/isolationGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
)

func TestBaselines(t *testing.T) {
	b := PlayMoves(NewBoard(), Move{3, 3}, Move{0, 0})
	assert.Equal(t, float32(0), Null.Score(b, PlayerFirst))
	assert.Equal(t, float32(8), Open.Score(b, PlayerFirst))
	assert.Equal(t, float32(2), Open.Score(b, PlayerSecond))
	assert.Equal(t, float32(6), Improved.Score(b, PlayerFirst))
	assert.Equal(t, float32(-6), Improved.Score(b, PlayerSecond))
	assert.Equal(t, "improved", Improved.String())

	// Terminal positions.
	b = BuildBoard(Corridor, PlayerFirst).Forecast(Move{1, 2})
	for name, scorer := range ByName {
		assert.Truef(t, math32.IsInf(scorer.Score(b, PlayerFirst), 1), "scorer %s", name)
		assert.Truef(t, math32.IsInf(scorer.Score(b, PlayerSecond), -1), "scorer %s", name)
	}
}
