package cmd

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
)

// SetupLogging configures slog with charmbracelet/log for colorful output.
// Unknown levels fall back to info.
func SetupLogging(w io.Writer, levelStr string) {
	level, err := log.ParseLevel(levelStr)
	if err != nil {
		level = log.InfoLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})

	slog.SetDefault(slog.New(logger))
}
