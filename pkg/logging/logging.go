package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// The logging package builds the structured logger shared by the CLI and the command bridge.
// Logs always go to the writer the caller chooses (stderr for the CLI) so they never mix
// with command output on stdout.

// =============================================================================
// Constants
// =============================================================================

const (
	FormatText = "text"
	FormatJSON = "json"
)

// =============================================================================
// Public Functions
// =============================================================================

// NewLogger returns a slog.Logger writing to w at level in the given format.
func NewLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatText:
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unsupported log format %q", format)
	}
}

// ParseLevel maps debug, info, warn (or warning), and error to their slog levels.
// An empty level is info.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unsupported log level %q", level)
	}
}
