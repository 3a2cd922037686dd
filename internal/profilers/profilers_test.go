package profilers

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	dir := t.TempDir()
	*flagCPUProfile = filepath.Join(dir, "cpu.prof")
	*flagMemProfile = filepath.Join(dir, "mem.prof")
	defer func() { *flagCPUProfile, *flagMemProfile = "", "" }()

	p, err := Setup(context.Background())
	require.NoError(t, err)
	require.NoError(t, p.Stop())
	for _, path := range []string{*flagCPUProfile, *flagMemProfile} {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size(), path)
	}

	*flagCPUProfile = filepath.Join(dir, "missing", "cpu.prof")
	_, err = Setup(context.Background())
	assert.Error(t, err)
}
