package simulation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/wallview/internal/player"
	"chosenoffset.com/wallview/internal/projection"
)

func TestDefaults(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, projection.DefaultViewport(), cfg.Viewport())
	assert.Equal(t, player.DefaultTuning(), cfg.Tuning())
	assert.Equal(t, player.Start(), cfg.StartState())
	assert.Equal(t, 4, cfg.Display.Scale)
	assert.Equal(t, 20, cfg.Display.TPS)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	// Missing file and empty path
	{
		cfg, err := LoadConfig(filepath.Join(dir, "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)

		cfg, err = LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	}

	// Partial override keeps the other defaults
	{
		path := filepath.Join(dir, "config.yaml")
		err := os.WriteFile(path, []byte(`
display:
  scale: 2
movement:
  step: 5
start:
  heading: -4
`), 0644)
		require.NoError(t, err)

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 2, cfg.Display.Scale)
		assert.Equal(t, 160, cfg.Display.Width)
		assert.Equal(t, 5.0, cfg.Tuning().Step)
		assert.Equal(t, 4, cfg.Tuning().TurnDegrees)
		assert.Equal(t, 356, cfg.StartState().Heading)
	}

	// Invalid values
	{
		path := filepath.Join(dir, "bad.yaml")
		err := os.WriteFile(path, []byte(`
display:
  width: 0
projection:
  focal: -1
`), 0644)
		require.NoError(t, err)

		_, err = LoadConfig(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "display size")
		assert.Contains(t, err.Error(), "focal")
	}

	// Malformed YAML
	{
		path := filepath.Join(dir, "broken.yaml")
		err := os.WriteFile(path, []byte("display: [1, 2"), 0644)
		require.NoError(t, err)

		_, err = LoadConfig(path)
		require.Error(t, err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := DefaultConfig().Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "turn_degrees: 4")

	path := filepath.Join(t.TempDir(), "default.yaml")
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
