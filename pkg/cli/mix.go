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

	"github.com/urfave/cli/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nutmix/nutmix/pkg/constraint"
	"github.com/nutmix/nutmix/pkg/mixer"
	"github.com/nutmix/nutmix/pkg/serializer"
	"github.com/nutmix/nutmix/pkg/target"
)

// mixAction implements the root command: load the target and ingredient
// files, run the greedy search, and serialize the proposal.
func mixAction(ctx context.Context, cmd *cli.Command) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}
	step, err := parseStep(cmd)
	if err != nil {
		return err
	}

	args := cmd.Args().Slice()
	if len(args) < 2 {
		return fmt.Errorf("usage: %s <target-file> <ingredient-file>...", name)
	}

	targetFilePath := args[0]
	slog.Info("loading target", "uri", targetFilePath)

	tgt, err := serializer.FromFile[target.Target](targetFilePath)
	if err != nil {
		return fmt.Errorf("failed to load target from %q: %w", targetFilePath, err)
	}

	cat, err := loadCatalog(args[1:])
	if err != nil {
		return err
	}

	set, err := constraint.NewSet(tgt, cat)
	if err != nil {
		return err
	}

	slog.Info("searching",
		"targetKcal", tgt.Kcal,
		"ingredients", cat.Len(),
		"stepGrams", step,
		"parallel", cmd.Bool("parallel"))

	eng := mixer.New(
		mixer.WithVersion(version),
		mixer.WithStepGrams(step),
		mixer.WithParallel(cmd.Bool("parallel")),
	)

	res, searchErr := eng.Search(ctx, cat, tgt, set)
	if searchErr != nil && res == nil {
		return searchErr
	}

	if !cmd.Bool("trace") {
		res.Decisions = nil
	}

	ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
	defer func() {
		if err := ser.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	if err := ser.Serialize(ctx, res); err != nil {
		return fmt.Errorf("failed to serialize proposal: %w", err)
	}

	printSummary(res)

	// An infeasible search still produced a partial proposal above; surface
	// the error so the process exits non-zero.
	if searchErr != nil {
		slog.Warn("target not reached", "kcal", res.Totals.Kcal, "targetKcal", res.TargetKcal)
		return searchErr
	}
	return nil
}

// printSummary writes a one-line human-readable recap to stderr so it never
// mixes with serialized output on stdout.
func printSummary(res *mixer.Result) {
	p := message.NewPrinter(language.English)
	status := "reached"
	if res.Totals.Kcal < res.TargetKcal {
		status = "missed"
	}
	p.Fprintf(os.Stderr, "%s %.0f kcal target in %d steps: %.0f kcal, %.0f:%.0f:%.0f carb:fat:protein\n",
		status, res.TargetKcal, res.Steps,
		res.Totals.Kcal, res.Totals.CarbPct, res.Totals.FatPct, res.Totals.ProteinPct)
}
