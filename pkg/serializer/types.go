/*
Copyright © 2025 nutmix authors
SPDX-License-Identifier: Apache-2.0
*/

// Package serializer provides utilities for reading and writing mix data in
// various formats.
//
// Output supports three formats:
//   - JSON: machine-readable structured data with indentation
//   - YAML: human-readable configuration format (default)
//   - Table: flattened key/value rows for terminal viewing
//
// Input supports TOML (the native format of target and ingredient files),
// JSON, and YAML, selected by file extension.
//
// Usage:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, result); err != nil {
//	    return err
//	}
//
//	target, err := serializer.FromFile[target.RawTarget]("target.toml")
package serializer

import "context"

// Serializer is an interface for serializing result data. Implementations
// can write to stdout, files, or any other sink in a given format.
//
// The context parameter is accepted for interface symmetry with I/O-bound
// implementations; file and stdout writes are fast and blocking.
type Serializer interface {
	Serialize(ctx context.Context, data any) error

	// Close releases any resources held by the serializer. Safe to call
	// multiple times; a no-op for stdout-backed serializers.
	Close() error
}
