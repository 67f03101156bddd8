/*
Copyright © 2025 nutmix authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/nutmix/nutmix/pkg/catalog"
	"github.com/nutmix/nutmix/pkg/serializer"
)

// Flags shared across commands.
var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   "yaml",
		Usage:   "output format (json, yaml, table)",
	}

	logLevelFlag = &cli.StringFlag{
		Name:    "log-level",
		Value:   "info",
		Sources: cli.EnvVars("LOG_LEVEL"),
		Usage:   "log level (debug, info, warn, error)",
	}

	stepFlag = &cli.StringFlag{
		Name:  "step",
		Value: "1",
		Usage: "gram increment per search step",
	}

	parallelFlag = &cli.BoolFlag{
		Name:  "parallel",
		Usage: "evaluate per-ingredient trial costs concurrently",
	}

	traceFlag = &cli.BoolFlag{
		Name:  "trace",
		Usage: "include the per-step decision log in the output",
	}
)

// parseOutputFormat reads and validates the format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q (supported: %v)",
			outFormat, serializer.SupportedFormats())
	}
	return outFormat, nil
}

// parseStep reads and validates the step flag.
func parseStep(cmd *cli.Command) (float64, error) {
	raw := cmd.String("step")
	step, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid --step value %q: %w", raw, err)
	}
	if step <= 0 {
		return 0, fmt.Errorf("invalid --step value %q: must be positive", raw)
	}
	return step, nil
}

// loadCatalog reads one ingredient file per path and builds the catalog,
// logging each ingredient's normalized densities as it goes.
func loadCatalog(paths []string) (*catalog.Catalog, error) {
	cat := catalog.New()
	for _, path := range paths {
		ing, err := serializer.FromFile[catalog.Ingredient](path)
		if err != nil {
			return nil, fmt.Errorf("failed to load ingredient from %q: %w", path, err)
		}
		if err := cat.Add(*ing); err != nil {
			return nil, fmt.Errorf("failed to add ingredient from %q: %w", path, err)
		}

		d, _ := cat.Density(ing.Name)
		slog.Info("ingredient",
			"name", ing.Name,
			"source", path,
			"carbPerGram", d.Carb,
			"fatPerGram", d.Fat,
			"proteinPerGram", d.Protein,
			"kcalPerGram", d.KcalPerGram)
	}
	return cat, nil
}
