package internal

import (
	"io"
	"log/slog"
	"os"
)

// LogParams contains the parameters for logging console output and errors.
// These will vary depending on whether the portfolio runs in print or tui mode.
// # Print mode
// - console output goes to stdout
// - error logs go to stderr
// # TUI mode
// - console output is discarded, the terminal belongs to the TUI
// - error logs go to the debug log file if one is configured, otherwise they are discarded
// .
type LogParams struct {
	ConsoleOut io.Writer
	ErrorOut   io.Writer
}

// PrintLogParams returns the writers for print mode.
func PrintLogParams() LogParams {
	return LogParams{ConsoleOut: os.Stdout, ErrorOut: os.Stderr}
}

// TUILogParams returns the writers for tui mode. debugLog may be nil.
func TUILogParams(debugLog io.Writer) LogParams {
	if debugLog == nil {
		debugLog = io.Discard
	}
	return LogParams{ConsoleOut: io.Discard, ErrorOut: debugLog}
}

// ErrorLogger creates the structured logger for the error output.
func (lp LogParams) ErrorLogger() *slog.Logger {
	out := lp.ErrorOut
	if out == nil {
		out = io.Discard
	}
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
