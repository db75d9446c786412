// Package logging builds the structured logger shared by the commands.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// New creates a logger writing to w at the given level and format
// ("text", "logfmt" or "json").
func New(w io.Writer, level, format string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	var formatter log.Formatter
	switch format {
	case "", "text":
		formatter = log.TextFormatter
	case "logfmt":
		formatter = log.LogfmtFormatter
	case "json":
		formatter = log.JSONFormatter
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Formatter:       formatter,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	}), nil
}

// NewFile creates a logger that appends to path. An empty path discards output.
// The returned close function is never nil.
func NewFile(path, level, format string) (*log.Logger, func() error, error) {
	if path == "" {
		logger, err := New(io.Discard, level, format)
		return logger, func() error { return nil }, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, func() error { return nil }, fmt.Errorf("opening log file: %w", err)
	}
	logger, err := New(f, level, format)
	if err != nil {
		f.Close()
		return nil, func() error { return nil }, err
	}
	return logger, f.Close, nil
}
