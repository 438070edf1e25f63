package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DISTRESS_DATA_DIR", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8001, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.DevMode)
	assert.Empty(t, cfg.ArtifactBucket)
	assert.Equal(t, "models", cfg.ArtifactPrefix)
	assert.Equal(t, "me-south-1", cfg.AWSRegion)
	assert.True(t, filepath.IsAbs(cfg.DataDir))
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DISTRESS_DATA_DIR", t.TempDir())
	t.Setenv("GO_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DEV_MODE", "true")
	t.Setenv("ARTIFACT_BUCKET", "distress-models")
	t.Setenv("ARTIFACT_PREFIX", "prod")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.DevMode)
	assert.Equal(t, "distress-models", cfg.ArtifactBucket)
	assert.Equal(t, "prod", cfg.ArtifactPrefix)
}

func TestLoadInvalidIntFallsBack(t *testing.T) {
	t.Setenv("DISTRESS_DATA_DIR", t.TempDir())
	t.Setenv("GO_PORT", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8001, cfg.Port)
}

func TestArtifactCacheDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DISTRESS_DATA_DIR", dir)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cfg.DataDir, "artifacts"), cfg.ArtifactCacheDir())
}

func TestValidateRejectsBadPort(t *testing.T) {
	cfg := &Config{Port: -1}
	assert.Error(t, cfg.Validate())
}
