package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_ENV", "nonexistent")

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "release", cfg.Mode)
	assert.Equal(t, 5001, cfg.Port)
	assert.Equal(t, int64(32768), cfg.ReadLimit)
	assert.Equal(t, 54*time.Second, cfg.PingPeriod)
	assert.Equal(t, "http://localhost:5000/translate", cfg.Translator.URL)
	assert.Equal(t, 5*time.Second, cfg.Translator.Timeout)
}

func TestLoad_MalformedConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.MkdirAll("config", 0o755))
	require.NoError(t, os.WriteFile("config/config.bad.yaml", []byte("ping_period: not-a-duration\n"), 0o644))
	t.Setenv("CONFIG_ENV", "bad")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg, "callers must not use a config that failed to parse")
}
