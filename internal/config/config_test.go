package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := DefaultConfig()
	cfg.Worker.Name = "custom-worker"
	cfg.Transport.Kind = "redis"
	cfg.Transport.URL = "redis://localhost:6379"
	cfg.Generator.Enabled = true

	require.NoError(t, Save(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"worker":{"name":"only-name"}}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "only-name", cfg.Worker.Name)
	// Untouched sections keep their defaults.
	assert.Equal(t, DefaultConfig().Bridge, cfg.Bridge)
	assert.Equal(t, "simulated", cfg.Transport.Kind)
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0644))

	cfg, err := Load(path)
	assert.Error(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "simulated", cfg.Transport.Kind)
	assert.Greater(t, cfg.Worker.QueueSize, 0)
	assert.Greater(t, cfg.Worker.PollTimeoutMS, 0)
	assert.Greater(t, cfg.Bridge.QueueSize, 0)
	assert.False(t, cfg.Generator.Enabled)
}
