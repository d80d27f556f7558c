package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_FileWriter(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "storewalk.log")

	logger, file, err := NewLogger(LoggingConfig{Level: "debug", File: logPath}, true)
	require.NoError(t, err)
	require.NotNil(t, file)
	defer func() { _ = file.Close() }()

	logger.Info().Str("component", "test").Msg("hello")

	data, err := os.ReadFile(logPath) //nolint:gosec // test-owned temp path
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
	assert.Contains(t, string(data), `"component":"test"`)
}

func TestNewLogger_QuietWithoutFileIsNop(t *testing.T) {
	logger, file, err := NewLogger(LoggingConfig{Level: "info"}, true)
	require.NoError(t, err)
	assert.Nil(t, file)

	// Must not panic, just drop the event.
	logger.Info().Msg("dropped")
}

func TestNewLogger_BadLevelFallsBackToInfo(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "storewalk.log")

	logger, file, err := NewLogger(LoggingConfig{Level: "shouting", File: logPath}, true)
	require.NoError(t, err)
	require.NotNil(t, file)
	defer func() { _ = file.Close() }()

	logger.Debug().Msg("filtered")
	logger.Info().Msg("kept")

	data, err := os.ReadFile(logPath) //nolint:gosec // test-owned temp path
	require.NoError(t, err)
	assert.NotContains(t, string(data), "filtered")
	assert.Contains(t, string(data), "kept")
}
