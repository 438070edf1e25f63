package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewSetsLevel(t *testing.T) {
	New(Config{Level: "debug"})
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	New(Config{Level: "warn"})
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestNewUnknownLevelDefaultsToInfo(t *testing.T) {
	New(Config{Level: "chatty"})
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestNewPrettyLoggerWrites(t *testing.T) {
	log := New(Config{Level: "info", Pretty: true})
	// Must not panic with console output configured.
	log.Info().Str("k", "v").Msg("pretty output")
}
