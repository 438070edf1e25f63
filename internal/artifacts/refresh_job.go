package artifacts

import (
	"context"

	"github.com/rs/zerolog"
)

// RefreshJob periodically re-downloads the model artifacts so a bundle
// published to the bucket is picked up without a restart.
type RefreshJob struct {
	store *Store
	names []string
	log   zerolog.Logger
}

// NewRefreshJob creates a refresh job for the named artifacts.
func NewRefreshJob(store *Store, names []string, log zerolog.Logger) *RefreshJob {
	return &RefreshJob{
		store: store,
		names: names,
		log:   log.With().Str("job", "artifact_refresh").Logger(),
	}
}

// Run re-downloads every artifact. Local overrides are left untouched.
func (j *RefreshJob) Run() error {
	if err := j.store.Refresh(context.Background(), j.names...); err != nil {
		return err
	}
	j.log.Info().Int("count", len(j.names)).Msg("Artifacts refreshed")
	return nil
}

// Name returns the job name for scheduler logs.
func (j *RefreshJob) Name() string {
	return "artifact_refresh"
}
