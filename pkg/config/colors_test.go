package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTeamColors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colors.yml")
	require.NoError(t, os.WriteFile(path,
		[]byte("Hypercar X: \"#123456\"\nFerrari: \"#FF0000\"\n"), 0o644))

	require.NoError(t, LoadTeamColors(path))
	assert.Equal(t, "#123456", TeamColors["Hypercar X"])
	assert.Equal(t, "#FF0000", TeamColors["Ferrari"], "existing entries are overridden")
}

func TestLoadTeamColors_MissingFile(t *testing.T) {
	assert.Error(t, LoadTeamColors(filepath.Join(t.TempDir(), "nope.yml")))
}
