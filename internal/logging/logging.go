// Package logging builds the application logger. The terminal belongs to the
// UI, so output goes to a file unless a writer is given explicitly.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Options configures the logger.
type Options struct {
	Level  string    // logrus level name, defaults to "info"
	File   string    // log file path, used when Output is nil
	Output io.Writer // overrides File
}

// New returns a configured logger and a function closing its output.
func New(opts Options) (*logrus.Logger, func() error, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		DisableColors:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})

	level := logrus.InfoLevel
	if opts.Level != "" {
		parsed, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = parsed
	}
	logger.SetLevel(level)

	closer := func() error { return nil }
	switch {
	case opts.Output != nil:
		logger.SetOutput(opts.Output)
	case opts.File != "":
		if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		logger.SetOutput(f)
		closer = f.Close
	default:
		logger.SetOutput(io.Discard)
	}

	return logger, closer, nil
}
