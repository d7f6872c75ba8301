package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("missing config file returns defaults", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), ConfigFile))
		require.NoError(t, err)

		assert.Equal(t, DefaultStrategy, cfg.Strategy)
		assert.Equal(t, DefaultRequireClean, cfg.RequireClean)
		assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	})

	t.Run("full config file loads all values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ConfigFile)
		configContent := `strategy: section
require_clean: false
log_level: debug
`
		require.NoError(t, os.WriteFile(path, []byte(configContent), 0644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, "section", cfg.Strategy)
		assert.False(t, cfg.RequireClean)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("partial config file merges with defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ConfigFile)
		require.NoError(t, os.WriteFile(path, []byte("log_level: warn\n"), 0644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, DefaultStrategy, cfg.Strategy)
		assert.Equal(t, DefaultRequireClean, cfg.RequireClean)
	})

	t.Run("invalid YAML returns error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ConfigFile)
		require.NoError(t, os.WriteFile(path, []byte("strategy: [\n"), 0644))

		_, err := LoadConfig(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse")
	})

	t.Run("environment overrides file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ConfigFile)
		require.NoError(t, os.WriteFile(path, []byte("strategy: section\n"), 0644))
		t.Setenv("SLNSTART_STRATEGY", "first-project")
		t.Setenv("SLNSTART_REQUIRE_CLEAN", "false")

		cfg, err := LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, "first-project", cfg.Strategy)
		assert.False(t, cfg.RequireClean)
		assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	})

	t.Run("invalid environment value returns error", func(t *testing.T) {
		t.Setenv("SLNSTART_REQUIRE_CLEAN", "maybe")

		_, err := LoadConfig(filepath.Join(t.TempDir(), ConfigFile))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "environment overrides")
	})
}

func TestConfigPathFor(t *testing.T) {
	got := ConfigPathFor(filepath.Join("src", "App.sln"))
	assert.Equal(t, filepath.Join("src", ConfigFile), got)
}
