package cli

import (
	"fmt"
	"io"
	"log/slog"
)

// newLogger returns a text logger on w. Diagnostics for the user go to the
// console output; the logger carries operational events only.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// parseLevel accepts debug, info, warn, or error. Empty means warn.
func parseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelWarn, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return l, nil
}
