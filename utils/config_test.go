package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	require.Equal(t, 40, config.Rows)
	require.Equal(t, 80, config.Cols)
	require.Equal(t, 250*time.Millisecond, config.FrameRate)
	require.Equal(t, 0.5, config.RandomDensity)
	require.True(t, config.AutoRestart)
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	require.Equal(t, DefaultConfig(), config)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"rows": 12, "cols": 34, "random_density": 0.25}`), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 12, config.Rows)
	require.Equal(t, 34, config.Cols)
	require.Equal(t, 0.25, config.RandomDensity)
	// untouched fields keep their defaults
	require.Equal(t, DefaultConfig().FrameRate, config.FrameRate)
}

func TestLoadConfigMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"rows": `), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
}
