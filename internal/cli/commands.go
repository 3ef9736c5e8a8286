package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/justinricheson/collectionsynchronizer/internal/scenario"
	"github.com/justinricheson/collectionsynchronizer/synchronizer"
)

func runCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "Replay a scenario and print both collections after every step",
		UsageText: "syncreplay run [options] <scenario.yaml|scenario.toml>",
		Description: `Replay the steps of a scenario file against a synchronized pair.

   The command fails when a step returns an error or misses one of its
   expect_source / expect_target values.

   Examples:
     syncreplay run testdata/basic.yaml
     syncreplay run --mode one-way-to-target --digest basic.toml`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "mode",
				Usage: "Override the scenario mode (two-way, one-way-to-target, one-way-to-source)",
			},
			&cli.BoolFlag{
				Name:  "digest",
				Usage: "Print a BLAKE2b digest of the final collections",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Only print failing steps",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			sc, err := loadArg(cmd)
			if err != nil {
				return err
			}
			opts := scenario.Options{Logger: loggerFrom(ctx)}
			if cmd.IsSet("mode") {
				m, err := synchronizer.ParseMode(cmd.String("mode"))
				if err != nil {
					return err
				}
				opts.Mode = &m
			}
			res, err := scenario.Run(sc, opts)
			if err != nil {
				return err
			}

			w := cmd.Root().Writer
			printResult(w, res, cmd.Bool("quiet"))
			if cmd.Bool("digest") {
				fmt.Fprintf(w, "digest: %s\n", res.Digest())
			}

			failed := 0
			for _, st := range res.Steps {
				if st.Failed() {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d steps failed", failed, len(res.Steps))
			}
			return nil
		},
	}
}

func validateCommand() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "Check a scenario file without replaying it",
		UsageText: "syncreplay validate <scenario.yaml|scenario.toml>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			sc, err := loadArg(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.Root().Writer, "%s %s: %d steps\n", success(symbolOK), sc.Name, len(sc.Steps))
			return nil
		},
	}
}

func modesCommand() *cli.Command {
	return &cli.Command{
		Name:  "modes",
		Usage: "List synchronization modes",
		Action: func(_ context.Context, cmd *cli.Command) error {
			w := cmd.Root().Writer
			for _, m := range []synchronizer.Mode{synchronizer.TwoWay, synchronizer.OneWayToTarget, synchronizer.OneWayToSource} {
				var dirs []string
				if m.WatchesSource() {
					dirs = append(dirs, synchronizer.ToTarget.String())
				}
				if m.WatchesTarget() {
					dirs = append(dirs, synchronizer.ToSource.String())
				}
				fmt.Fprintf(w, "%-18s %s\n", m, dim(strings.Join(dirs, ", ")))
			}
			return nil
		},
	}
}

func loadArg(cmd *cli.Command) (*scenario.Scenario, error) {
	if cmd.Args().Len() != 1 {
		return nil, errors.New("exactly one scenario file is required")
	}
	return scenario.Load(cmd.Args().First())
}

func printResult(w io.Writer, res *scenario.Result, quiet bool) {
	fmt.Fprintf(w, "%s %s\n", bold(res.Name), info("("+res.Mode.String()+")"))
	for _, st := range res.Steps {
		if quiet && !st.Failed() {
			continue
		}
		mark := success(symbolOK)
		if st.Failed() {
			mark = failure(symbolFail)
		}
		fmt.Fprintf(w, "  %s %2d %-28s source=%v target=%v\n", mark, st.Number, st.Step, st.Source, st.Target)
		if st.Err != nil {
			fmt.Fprintf(w, "       %s %v\n", failure("error:"), st.Err)
		}
		for _, m := range st.Mismatches {
			fmt.Fprintf(w, "       %s %s\n", failure("mismatch:"), m)
		}
	}
}
