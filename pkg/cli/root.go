/*
Copyright © 2025 nutmix authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/nutmix/nutmix/pkg/logging"
)

const (
	name           = "mix"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// rootCmd builds the base command. Invoked without a subcommand it runs the
// mix search over the target and ingredient file arguments.
func rootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Propose an ingredient mix matching a macro-ratio target",
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		ArgsUsage:             "<target-file> <ingredient-file>...",
		Description: `Read a target file and one or more ingredient files, then greedily build a
mix that reaches the target calories while tracking the target macro ratio
as closely as possible.

The target file defines the calorie goal, the carb:fat:protein ratio, and
optional per-ingredient gram constraints (exact, at_least, at_most). Each
ingredient file describes one ingredient: total grams plus the calories,
carbs, fat, and protein that mass carries.

Files are TOML by default; .json and .yaml extensions switch the decoder.

# Examples

Propose a mix and print it as YAML:
  mix target.toml quark.toml banana.toml oats.toml

Write the proposal as JSON, with the per-step decision log:
  mix --trace -t json -o proposal.json target.toml quark.toml banana.toml

Coarser search with 5 g steps:
  mix --step 5 target.toml quark.toml banana.toml`,
		Flags: []cli.Flag{
			stepFlag,
			parallelFlag,
			traceFlag,
			outputFlag,
			formatFlag,
			logLevelFlag,
		},
		Commands: []*cli.Command{
			catalogCmd(),
		},
		Before: func(_ context.Context, cmd *cli.Command) (context.Context, error) {
			initLogger(cmd.String("log-level"))
			return nil, nil
		},
		Action: mixAction,
	}
}

// Execute runs the CLI. It is called by main.main() and only returns after
// the command completes or is interrupted.
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initLogger configures slog after flags are parsed so --log-level takes
// effect before any command executes.
func initLogger(logLevel string) {
	logging.SetDefaultStructuredLoggerWithLevel(name, version, logLevel)
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"logLevel", logLevel)
}
