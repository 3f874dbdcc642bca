package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(DefaultFile)
	require.NoError(t, err)
	assert.Equal(t, DefaultProvider, cfg.Provider)
	assert.Equal(t, DefaultGIFSpeedFactor, cfg.GIFSpeedFactor)
	assert.Equal(t, DefaultAddr, cfg.Addr)
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "browseruse.yaml")
	require.NoError(t, os.WriteFile(path, []byte("provider: openai\ngif_speed_factor: 4\nstrict_errors: true\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, 4, cfg.GIFSpeedFactor)
	assert.True(t, cfg.StrictErrors)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "browseruse.yaml")
	require.NoError(t, os.WriteFile(path, []byte("provider: openai\n"), 0644))
	t.Setenv("LLM_TYPE", "gemini")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsBadSpeedFactor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "browseruse.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gif_speed_factor: -1\n"), 0644))
	_, err := Load(path)
	assert.Error(t, err)
}
