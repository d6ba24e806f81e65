// Package logging builds the zap logger. The terminal belongs to the UI, so
// logs only ever go to a file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultFileName is used beside the data file when verbose logging is
// requested without an explicit file.
const DefaultFileName = "homework.log"

// Options select the log destination and level.
type Options struct {
	Level   string
	File    string
	Verbose bool // forces debug level
	DataDir string
}

// New returns a file logger, or a no-op logger when no file is configured
// and Verbose is off.
func New(opt Options) (*zap.Logger, error) {
	file := opt.File
	if file == "" {
		if !opt.Verbose {
			return zap.NewNop(), nil
		}
		file = filepath.Join(opt.DataDir, DefaultFileName)
	}

	level := zapcore.InfoLevel
	if opt.Level != "" {
		l, err := zapcore.ParseLevel(opt.Level)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		level = l
	}
	if opt.Verbose {
		level = zapcore.DebugLevel
	}

	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return nil, fmt.Errorf("log dir: %w", err)
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.OutputPaths = []string{file}
	config.ErrorOutputPaths = []string{file}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
