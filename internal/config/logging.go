package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the process logger from the logging section.
//
// Console output goes to stderr in human-readable form (or raw JSON when
// Format is "json"); when File is set, a second raw JSON writer appends to
// it. quietConsole suppresses the stderr writer entirely, used by the
// interactive TUI so log events never corrupt the alternate screen.
//
// The returned file handle is non-nil when file logging is active; the
// caller owns closing it.
func NewLogger(lc LoggingConfig, quietConsole bool) (zerolog.Logger, *os.File, error) {
	level, err := zerolog.ParseLevel(lc.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var writers []io.Writer
	if !quietConsole {
		if strings.EqualFold(lc.Format, "json") {
			writers = append(writers, os.Stderr)
		} else {
			writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
		}
	}

	var logFile *os.File
	if lc.File != "" {
		if dirErr := os.MkdirAll(filepath.Dir(lc.File), 0750); dirErr != nil {
			return zerolog.Nop(), nil, fmt.Errorf("creating log directory: %w", dirErr)
		}
		logFile, err = os.OpenFile(lc.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("opening log file: %w", err)
		}
		writers = append(writers, logFile)
	}

	if len(writers) == 0 {
		return zerolog.Nop().Level(level), nil, nil
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()

	return logger, logFile, nil
}
