package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// newLogger builds the application logger. The terminal belongs to the TUI,
// so logs go to path (appended) or nowhere. Timestamps are formatted as
// "HH:MM:SS.ms".
func newLogger(path string, verbose bool) (*log.Logger, func(), error) {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}

	var (
		w       io.Writer = io.Discard
		closeFn           = func() {}
	)
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "reel",
	})
	return logger, closeFn, nil
}
