package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, DefaultAPIURL, cfg.Ollama.APIURL)
	assert.Equal(t, DefaultModel, cfg.Ollama.Model)
	assert.Equal(t, DefaultTimeoutMS, cfg.Ollama.TimeoutMS)
	assert.Equal(t, 15*time.Second, cfg.Ollama.Timeout())
	assert.Equal(t, "", cfg.Logging.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("OLLAMA_API_URL", "http://ollama.lan:11434/api/generate")
	t.Setenv("OLLAMA_MODEL", "mistral")
	t.Setenv("OLLAMA_TIMEOUT_MS", "3000")
	t.Setenv("GUARDIAN_LOG_LEVEL", "debug")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "http://ollama.lan:11434/api/generate", cfg.Ollama.APIURL)
	assert.Equal(t, "mistral", cfg.Ollama.Model)
	assert.Equal(t, 3*time.Second, cfg.Ollama.Timeout())
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_EmptyEnvFallsBackToDefaults(t *testing.T) {
	t.Setenv("OLLAMA_API_URL", "")
	t.Setenv("OLLAMA_MODEL", "")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, DefaultAPIURL, cfg.Ollama.APIURL)
	assert.Equal(t, DefaultModel, cfg.Ollama.Model)
}

func TestLoad_NonPositiveTimeoutFallsBack(t *testing.T) {
	t.Setenv("OLLAMA_TIMEOUT_MS", "0")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, DefaultTimeoutMS, cfg.Ollama.TimeoutMS)
}
