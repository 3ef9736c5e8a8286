// Package cli provides the syncreplay command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/justinricheson/collectionsynchronizer/internal/config"
	"github.com/justinricheson/collectionsynchronizer/internal/logging"
)

type loggerKey struct{}

// Run executes the syncreplay command line.
func Run(ctx context.Context, args []string) error {
	return newApp(os.Stdout).Run(ctx, args)
}

func newApp(w io.Writer) *cli.Command {
	return &cli.Command{
		Name:   "syncreplay",
		Usage:  "Replay scripted mutations through a synchronized collection pair",
		Writer: w,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error); overrides SYNCREPLAY_LOG_LEVEL",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "Log format (console, json); overrides SYNCREPLAY_LOG_FORMAT",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Trace every relay (debug level logging)",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
		},
		Before: configure,
		Commands: []*cli.Command{
			runCommand(),
			validateCommand(),
			modesCommand(),
		},
	}
}

// configure merges environment configuration with flags and installs the
// logger into the context.
func configure(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var cfg config.Config
	if err := config.ParseEnv(&cfg); err != nil {
		return ctx, err
	}
	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		cfg.LogFormat = cmd.String("log-format")
	}
	if cmd.Bool("verbose") {
		cfg.LogLevel = "debug"
	}
	if cmd.Bool("no-color") {
		cfg.NoColor = true
	}
	if err := cfg.Validate(); err != nil {
		return ctx, err
	}
	if cfg.NoColor {
		disableColors()
	}

	opts := logging.FromConfig(cfg)
	opts.Output = cmd.Root().ErrWriter
	logger, err := logging.New(opts)
	if err != nil {
		return ctx, fmt.Errorf("logging: %w", err)
	}
	return context.WithValue(ctx, loggerKey{}, logger), nil
}

func loggerFrom(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok {
		return l
	}
	return zap.NewNop()
}
