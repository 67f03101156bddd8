/*
Copyright © 2025 nutmix authors
SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the command-line interface for the mix tool.
//
// # Overview
//
// The mix CLI proposes ingredient mixes: given a calorie target, a
// carb:fat:protein ratio, and a set of ingredient files, it greedily builds
// an allocation that reaches the calories while tracking the ratio.
//
// # Commands
//
// The root command runs the search:
//
//	mix [--step N] [--trace] [--output FILE] [--format yaml|json|table] <target-file> <ingredient-file>...
//
// catalog - inspect inputs without searching:
//
//	mix catalog [--output FILE] [--format yaml|json|table] <ingredient-file>...
//
// # Global Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
//	--step         Gram increment per search step (default: 1)
//	--parallel     Evaluate trial costs concurrently (same output either way)
//	--trace        Include the per-step decision log in the output
//	--log-level    Log verbosity: debug, info, warn, error (default: info)
//
// # Exit Codes
//
//	0  Success
//	1  Error (invalid input, unreachable target, execution failure)
//
// An unreachable target still serializes the best partial proposal before
// the command exits non-zero.
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/catalog - ingredient records and per-gram normalization
//   - pkg/target - target records and ratio normalization
//   - pkg/constraint - per-ingredient gram bounds
//   - pkg/mixer - the greedy search engine
//   - pkg/serializer - input decoding and output formatting
//   - pkg/logging - structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/nutmix/nutmix/pkg/cli.version=1.0.0'"
package cli
