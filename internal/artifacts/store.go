package artifacts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// StoreConfig describes where artifacts live.
type StoreConfig struct {
	// Bucket and Prefix locate artifacts in S3. Empty bucket disables
	// remote downloads.
	Bucket string
	Prefix string
	Region string
	// LocalDir is checked first so an operator can drop a file next to
	// the deployment as an override.
	LocalDir string
	// CacheDir receives downloaded artifacts.
	CacheDir string
}

// Store resolves artifact files with a local override, then the cache,
// then a bucket download.
type Store struct {
	downloader *manager.Downloader
	cfg        StoreConfig
	logger     zerolog.Logger
}

// NewStore creates a Store. AWS credentials are only loaded when a
// bucket is configured.
func NewStore(ctx context.Context, cfg StoreConfig, logger zerolog.Logger) (*Store, error) {
	store := &Store{
		cfg:    cfg,
		logger: logger.With().Str("component", "artifact_store").Logger(),
	}

	if cfg.CacheDir != "" {
		if err := os.MkdirAll(cfg.CacheDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating artifact cache dir: %w", err)
		}
	}

	if cfg.Bucket != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
		if err != nil {
			return nil, fmt.Errorf("loading AWS configuration: %w", err)
		}
		store.downloader = manager.NewDownloader(s3.NewFromConfig(awsCfg))
	}

	return store, nil
}

// Resolve returns a local path for the named artifact, downloading it
// from the bucket when neither the override nor the cache has it.
func (s *Store) Resolve(ctx context.Context, name string) (string, error) {
	if s.cfg.LocalDir != "" {
		override := filepath.Join(s.cfg.LocalDir, name)
		if fileExists(override) {
			s.logger.Debug().Str("artifact", name).Str("path", override).Msg("using local override")
			return override, nil
		}
	}

	cached := filepath.Join(s.cfg.CacheDir, name)
	if fileExists(cached) {
		return cached, nil
	}

	if s.downloader == nil {
		return "", fmt.Errorf("artifact %s not found locally and no bucket configured", name)
	}
	if err := s.download(ctx, name, cached); err != nil {
		return "", err
	}
	return cached, nil
}

// Refresh re-downloads the named artifacts, replacing cached copies.
// Artifacts with a local override are left alone.
func (s *Store) Refresh(ctx context.Context, names ...string) error {
	if s.downloader == nil {
		return nil
	}
	for _, name := range names {
		if s.cfg.LocalDir != "" && fileExists(filepath.Join(s.cfg.LocalDir, name)) {
			continue
		}
		if err := s.download(ctx, name, filepath.Join(s.cfg.CacheDir, name)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) download(ctx context.Context, name, dest string) error {
	tmp, err := os.CreateTemp(s.cfg.CacheDir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())

	key := name
	if s.cfg.Prefix != "" {
		key = s.cfg.Prefix + "/" + name
	}

	n, err := s.downloader.Download(ctx, tmp, &s3.GetObjectInput{
		Bucket: &s.cfg.Bucket,
		Key:    &key,
	})
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("downloading s3://%s/%s: %w", s.cfg.Bucket, key, err)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return fmt.Errorf("installing artifact %s: %w", name, err)
	}

	s.logger.Info().Str("artifact", name).Int64("bytes", n).Msg("artifact downloaded")
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
