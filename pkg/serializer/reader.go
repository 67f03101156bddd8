/*
Copyright © 2025 nutmix authors
SPDX-License-Identifier: Apache-2.0
*/

package serializer

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// InputFormat represents a supported input file encoding.
type InputFormat string

const (
	// InputTOML is the native encoding of target and ingredient files.
	InputTOML InputFormat = "toml"
	// InputJSON is a JSON-encoded input file.
	InputJSON InputFormat = "json"
	// InputYAML is a YAML-encoded input file.
	InputYAML InputFormat = "yaml"
)

// InputFormatFromPath determines the input encoding based on file extension.
// Supported extensions:
//   - .toml → InputTOML
//   - .json → InputJSON
//   - .yaml, .yml → InputYAML
//
// Unknown extensions default to TOML, the native encoding of target and
// ingredient files. Matching is case-insensitive.
func InputFormatFromPath(path string) InputFormat {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".json"):
		return InputJSON
	case strings.HasSuffix(lower, ".yaml"), strings.HasSuffix(lower, ".yml"):
		return InputYAML
	default:
		return InputTOML
	}
}

// FromFile reads and decodes a typed record from the given file path,
// selecting the decoder by file extension.
func FromFile[T any](path string) (*T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", path, err)
	}
	return FromBytes[T](InputFormatFromPath(path), data)
}

// FromBytes decodes a typed record from raw bytes in the given encoding.
func FromBytes[T any](format InputFormat, data []byte) (*T, error) {
	var out T
	switch format {
	case InputTOML:
		if err := toml.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("failed to decode TOML: %w", err)
		}
	case InputJSON:
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("failed to decode JSON: %w", err)
		}
	case InputYAML:
		if err := yaml.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("failed to decode YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported input format: %s", format)
	}
	return &out, nil
}
