// Package logging builds the zap logger used by syncreplay.
package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/justinricheson/collectionsynchronizer/internal/config"
)

// Options configures the logger.
type Options struct {
	// Level is a zap level name ("debug", "info", ...). Empty means info.
	Level string
	// Format is config.FormatConsole or config.FormatJSON.
	Format string
	// Output defaults to os.Stderr.
	Output io.Writer
}

// FromConfig derives Options from the loaded configuration.
func FromConfig(cfg config.Config) Options {
	return Options{Level: cfg.LogLevel, Format: cfg.LogFormat}
}

// New creates a logger writing to opts.Output.
func New(opts Options) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	if opts.Output == nil {
		opts.Output = os.Stderr
	}

	var enc zapcore.Encoder
	if opts.Format == config.FormatJSON {
		ec := zap.NewProductionEncoderConfig()
		ec.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewJSONEncoder(ec)
	} else {
		ec := zap.NewDevelopmentEncoderConfig()
		ec.TimeKey = ""
		enc = zapcore.NewConsoleEncoder(ec)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(opts.Output), level)
	return zap.New(core), nil
}
