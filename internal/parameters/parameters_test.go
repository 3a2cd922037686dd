package parameters

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromConfigString(t *testing.T) {
	params := NewFromConfigString("ab, iterative,threshold=15ms,w_own=2.5,max_depth=3,expr=a=b")
	assert.Equal(t, Params{
		"ab": "", "iterative": "", "threshold": "15ms", "w_own": "2.5", "max_depth": "3", "expr": "a=b",
	}, params)
	assert.Empty(t, NewFromConfigString(""))
	assert.Empty(t, NewFromConfigString(" , "))
}

func TestPopParamOr(t *testing.T) {
	params := NewFromConfigString("ab,iterative=false,threshold=15ms,w_own=2.5,max_depth=3,name=x")

	ab, err := PopParamOr(params, "ab", false)
	require.NoError(t, err)
	assert.True(t, ab)

	iterative, err := PopParamOr(params, "iterative", true)
	require.NoError(t, err)
	assert.False(t, iterative)

	threshold, err := PopParamOr(params, "threshold", 10*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, 15*time.Millisecond, threshold)

	wOwn, err := PopParamOr(params, "w_own", float32(1))
	require.NoError(t, err)
	assert.Equal(t, float32(2.5), wOwn)

	depth, err := PopParamOr(params, "max_depth", 1)
	require.NoError(t, err)
	assert.Equal(t, 3, depth)

	// Missing keys return the default and leave params untouched.
	missing, err := PopParamOr(params, "missing", 0.5)
	require.NoError(t, err)
	assert.Equal(t, 0.5, missing)

	assert.Error(t, params.CheckAllConsumed())
	assert.Equal(t, []string{"name"}, params.SortedKeys())
	name, err := PopParamOr(params, "name", "")
	require.NoError(t, err)
	assert.Equal(t, "x", name)
	assert.NoError(t, params.CheckAllConsumed())
}

func TestParseErrors(t *testing.T) {
	params := NewFromConfigString("max_depth=three,threshold=soon,iterative=maybe,w=x")
	_, err := GetParamOr(params, "max_depth", 1)
	assert.Error(t, err)
	_, err = GetParamOr(params, "threshold", time.Second)
	assert.Error(t, err)
	_, err = GetParamOr(params, "iterative", false)
	assert.Error(t, err)
	_, err = PopParamOr(params, "w", float32(0))
	assert.Error(t, err)
	assert.True(t, params.Has("w"), "failed parsing should not consume the parameter")
}
