package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger creates a console logger writing to w, at the given level name.
// Writes are serialized as queries log from concurrent goroutines.
func NewLogger(w io.Writer, levelName string) (*zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(levelName))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %s: %w", levelName, err)
	}
	if level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: zerolog.SyncWriter(w), TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &logger, nil
}
