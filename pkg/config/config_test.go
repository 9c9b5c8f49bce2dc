package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NeuralTrust/CommentGuard/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, "https://api.groq.com/openai/v1/chat/completions", cfg.API.Endpoint)
	assert.Equal(t, "llama3-70b-8192", cfg.API.Model)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout())
	assert.InDelta(t, 0.2, cfg.API.Temperature, 1e-9)
	assert.Equal(t, 500*time.Millisecond, cfg.Moderation.Pacing())
}

func TestLoad_CredentialFromEnv(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "secret-key")

	cfg, err := config.Load(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, "secret-key", cfg.API.Key)
}

func TestLoad_ConfigFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	yaml := "api:\n  model: llama3-8b-8192\n  timeout_seconds: 30\nmoderation:\n  pacing_ms: 100\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "commentguard.yaml"), []byte(yaml), 0600))

	cfg, err := config.Load(dir)

	require.NoError(t, err)
	assert.Equal(t, "llama3-8b-8192", cfg.API.Model)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout())
	assert.Equal(t, 100*time.Millisecond, cfg.Moderation.Pacing())
	// Untouched fields keep their defaults.
	assert.Equal(t, "https://api.groq.com/openai/v1/chat/completions", cfg.API.Endpoint)
}
