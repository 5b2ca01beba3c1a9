// Package log configures the process-wide logger. It keeps the
// library packages decoupled from logging policy: they accept a
// *zap.Logger, and this package decides level, encoding, and rotation
// for the binaries.
package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures logger construction.
type Options struct {
	// Level is one of debug, info, warn, error. Defaults to info.
	Level string

	// File is the log file path. Empty logs to stderr.
	File string

	// MaxSizeMB caps a log file before rotation.
	MaxSizeMB int

	// MaxBackups caps the number of rotated files kept.
	MaxBackups int
}

// DefaultOptions returns the default logging configuration.
func DefaultOptions() Options {
	return Options{
		Level:      "info",
		MaxSizeMB:  10,
		MaxBackups: 3,
	}
}

// New builds a logger from the options. An unknown level falls back to
// info rather than failing: logging config must never prevent startup.
func New(opts Options) *zap.Logger {
	level := ParseLevel(opts.Level)

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var sink zapcore.WriteSyncer
	if opts.File != "" {
		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
		})
	} else {
		sink = zapcore.Lock(os.Stderr)
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), sink, level)
	return zap.New(core)
}

// ParseLevel parses a level string, defaulting to info.
func ParseLevel(s string) zapcore.Level {
	switch s {
	case "debug", "DEBUG":
		return zapcore.DebugLevel
	case "info", "INFO", "":
		return zapcore.InfoLevel
	case "warn", "WARN", "warning", "WARNING":
		return zapcore.WarnLevel
	case "error", "ERROR":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
