/*
Copyright © 2025 nutmix authors
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/nutmix/nutmix/pkg/serializer"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		wantFormat serializer.Format
		wantErr    bool
	}{
		{
			name:       "valid yaml format",
			format:     "yaml",
			wantFormat: serializer.FormatYAML,
			wantErr:    false,
		},
		{
			name:       "valid json format",
			format:     "json",
			wantFormat: serializer.FormatJSON,
			wantErr:    false,
		},
		{
			name:       "valid table format",
			format:     "table",
			wantFormat: serializer.FormatTable,
			wantErr:    false,
		},
		{
			name:       "invalid format xml",
			format:     "xml",
			wantFormat: "",
			wantErr:    true,
		},
		{
			name:       "invalid format csv",
			format:     "csv",
			wantFormat: "",
			wantErr:    true,
		},
		{
			name:       "empty format",
			format:     "",
			wantFormat: "",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create a minimal CLI command with the format flag
			cmd := &cli.Command{
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Value: tt.format,
					},
				},
				Action: func(_ context.Context, c *cli.Command) error {
					got, err := parseOutputFormat(c)
					if (err != nil) != tt.wantErr {
						t.Errorf("parseOutputFormat() error = %v, wantErr %v", err, tt.wantErr)
						return nil
					}
					if !tt.wantErr && got != tt.wantFormat {
						t.Errorf("parseOutputFormat() = %v, want %v", got, tt.wantFormat)
					}
					return nil
				},
			}

			if err := cmd.Run(context.Background(), []string{"test"}); err != nil {
				t.Fatalf("failed to run command: %v", err)
			}
		})
	}
}

func TestParseStep(t *testing.T) {
	tests := []struct {
		name     string
		step     string
		wantStep float64
		wantErr  bool
	}{
		{
			name:     "default one gram",
			step:     "1",
			wantStep: 1,
			wantErr:  false,
		},
		{
			name:     "fractional step",
			step:     "0.5",
			wantStep: 0.5,
			wantErr:  false,
		},
		{
			name:     "coarse step",
			step:     "25",
			wantStep: 25,
			wantErr:  false,
		},
		{
			name:    "zero step",
			step:    "0",
			wantErr: true,
		},
		{
			name:    "negative step",
			step:    "-2",
			wantErr: true,
		},
		{
			name:    "not a number",
			step:    "lots",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cli.Command{
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "step",
						Value: tt.step,
					},
				},
				Action: func(_ context.Context, c *cli.Command) error {
					got, err := parseStep(c)
					if (err != nil) != tt.wantErr {
						t.Errorf("parseStep() error = %v, wantErr %v", err, tt.wantErr)
						return nil
					}
					if !tt.wantErr && got != tt.wantStep {
						t.Errorf("parseStep() = %v, want %v", got, tt.wantStep)
					}
					return nil
				},
			}

			if err := cmd.Run(context.Background(), []string{"test"}); err != nil {
				t.Fatalf("failed to run command: %v", err)
			}
		})
	}
}
