package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testSection struct {
	MaxResults int           `mapstructure:"max_results" default:"100"`
	Timeout    time.Duration `mapstructure:"timeout" default:"15s"`
	Enabled    bool          `mapstructure:"enabled" default:"true"`
}

type testConfig struct {
	App     App         `mapstructure:"app"`
	API     API         `mapstructure:"api"`
	Section testSection `mapstructure:"news_source"`
}

func TestLoadEnvironmentWithoutFile(t *testing.T) {
	t.Setenv("NEWS_SOURCE_MAX_RESULTS", "40")
	t.Setenv("NEWS_SOURCE_TIMEOUT", "3s")
	t.Setenv("NEWS_SOURCE_ENABLED", "false")
	t.Setenv("API_PORT", "9090")

	var cfg testConfig
	require.NoError(t, Load(filepath.Join(t.TempDir(), "missing.yaml"), &cfg))

	assert.Equal(t, 40, cfg.Section.MaxResults)
	assert.Equal(t, 3*time.Second, cfg.Section.Timeout)
	assert.False(t, cfg.Section.Enabled)
	assert.Equal(t, 9090, cfg.API.Port)
	// unset variables keep their defaults
	assert.Equal(t, 10*time.Second, cfg.API.ShutdownTimeout)
	assert.Equal(t, "news-volatility-dashboard", cfg.App.Name)
}

func TestLoadFileThenEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("news_source:\n  max_results: 20\napi:\n  port: 7000\n"), 0o600))
	t.Setenv("API_PORT", "7001")

	var cfg testConfig
	require.NoError(t, Load(path, &cfg))

	assert.Equal(t, 20, cfg.Section.MaxResults)
	assert.Equal(t, 7001, cfg.API.Port)
	assert.Equal(t, 15*time.Second, cfg.Section.Timeout)
}
