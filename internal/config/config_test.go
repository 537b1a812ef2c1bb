package config

import (
	"os"
	"path/filepath"
	"testing"

	"tripmap/internal/processor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "output: trips\non_error: abort\n"))
		require.NoError(t, err)
		assert.Equal(t, "trips", cfg.Output)
		assert.Equal(t, processor.PolicyAbort, cfg.Policy())
	})

	t.Run("empty config keeps legacy policy", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, ""))
		require.NoError(t, err)
		assert.Empty(t, cfg.Output)
		assert.Equal(t, processor.PolicyLegacy, cfg.Policy())
	})

	t.Run("invalid on_error", func(t *testing.T) {
		_, err := Load(writeConfig(t, "on_error: explode\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "on_error")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("bad yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "output: [unclosed\n"))
		assert.Error(t, err)
	})
}
