package cli

import (
	"io"
	"log/slog"
	"strings"
)

// NewLogger builds the text logger used by the commands. Unknown levels fall
// back to warn.
func NewLogger(w io.Writer, level string) *slog.Logger {
	levels := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	slogLevel, ok := levels[strings.ToLower(level)]
	if !ok {
		slogLevel = slog.LevelWarn
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slogLevel})
	return slog.New(handler)
}
