/*
Copyright © 2025 nutmix authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/nutmix/nutmix/pkg/catalog"
	"github.com/nutmix/nutmix/pkg/header"
	"github.com/nutmix/nutmix/pkg/mixer"
	"github.com/nutmix/nutmix/pkg/serializer"
)

// catalogEntry pairs an ingredient's raw record with its per-gram densities.
type catalogEntry struct {
	Ingredient catalog.Ingredient `json:"ingredient" yaml:"ingredient"`
	Density    catalog.Density    `json:"density" yaml:"density"`
}

// catalogResult is the serialized output of the catalog command.
type catalogResult struct {
	header.Header `json:",inline" yaml:",inline"`

	Ingredients []catalogEntry `json:"ingredients" yaml:"ingredients"`
}

func catalogCmd() *cli.Command {
	return &cli.Command{
		Name:                  "catalog",
		EnableShellCompletion: true,
		Usage:                 "Print the normalized ingredient catalog",
		ArgsUsage:             "<ingredient-file>...",
		Description: `Load ingredient files and print each ingredient alongside its normalized
per-gram densities, without running a search. Useful for checking inputs
before writing a target file.

# Examples

Inspect ingredients as a table:
  mix catalog -t table quark.toml banana.toml oats.toml`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			args := cmd.Args().Slice()
			if len(args) == 0 {
				return fmt.Errorf("usage: %s catalog <ingredient-file>...", name)
			}

			cat, err := loadCatalog(args)
			if err != nil {
				return err
			}

			res := &catalogResult{
				Ingredients: make([]catalogEntry, 0, cat.Len()),
			}
			res.Init(header.KindCatalog, mixer.APIVersion, version)

			for _, ingName := range cat.Names() {
				raw, _ := cat.Raw(ingName)
				density, _ := cat.Density(ingName)
				res.Ingredients = append(res.Ingredients, catalogEntry{
					Ingredient: raw,
					Density:    density,
				})
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(ctx, res)
		},
	}
}
