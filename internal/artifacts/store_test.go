package artifacts

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_LocalOverrideWinsOverCache(t *testing.T) {
	localDir := t.TempDir()
	cacheDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(localDir, ScalerFile), []byte("override"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(cacheDir, ScalerFile), []byte("cached"), 0o644))

	store, err := NewStore(context.Background(), StoreConfig{LocalDir: localDir, CacheDir: cacheDir}, zerolog.Nop())
	require.NoError(t, err)

	path, err := store.Resolve(context.Background(), ScalerFile)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(localDir, ScalerFile), path)
}

func TestStore_FallsBackToCache(t *testing.T) {
	cacheDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(cacheDir, ModelFile), []byte("cached"), 0o644))

	store, err := NewStore(context.Background(), StoreConfig{LocalDir: t.TempDir(), CacheDir: cacheDir}, zerolog.Nop())
	require.NoError(t, err)

	path, err := store.Resolve(context.Background(), ModelFile)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cacheDir, ModelFile), path)
}

func TestStore_MissingWithoutBucket(t *testing.T) {
	store, err := NewStore(context.Background(), StoreConfig{CacheDir: t.TempDir()}, zerolog.Nop())
	require.NoError(t, err)

	_, err = store.Resolve(context.Background(), FairnessFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no bucket configured")
}

func TestStore_RefreshWithoutBucketIsNoOp(t *testing.T) {
	store, err := NewStore(context.Background(), StoreConfig{CacheDir: t.TempDir()}, zerolog.Nop())
	require.NoError(t, err)

	assert.NoError(t, store.Refresh(context.Background(), ScalerFile, ModelFile))
}

func TestStore_CreatesCacheDir(t *testing.T) {
	cacheDir := filepath.Join(t.TempDir(), "nested", "cache")

	_, err := NewStore(context.Background(), StoreConfig{CacheDir: cacheDir}, zerolog.Nop())
	require.NoError(t, err)

	info, err := os.Stat(cacheDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
