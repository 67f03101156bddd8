/*
Copyright © 2025 nutmix authors
SPDX-License-Identifier: Apache-2.0
*/

package header

import (
	"time"

	"github.com/google/uuid"
)

// Kind represents the type of mix resource.
type Kind string

// Valid Kind constants for all mix resource types.
const (
	KindProposal Kind = "Proposal"
	KindCatalog  Kind = "Catalog"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the Kind is one of the recognized kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindProposal, KindCatalog:
		return true
	default:
		return false
	}
}

// Header contains metadata and versioning information for mix resources.
// It follows Kubernetes-style resource conventions with Kind, APIVersion,
// and Metadata fields so serialized results are self-describing.
type Header struct {
	// Kind is the type of the resource.
	Kind Kind `json:"kind,omitempty" yaml:"kind,omitempty"`

	// APIVersion is the schema version of the resource.
	APIVersion string `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`

	// Metadata contains key-value pairs with metadata about the resource.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Init initializes the Header with the given kind, apiVersion, and tool
// version. Metadata is populated with a UTC timestamp, the tool version,
// and a unique run id so independent runs can be told apart.
func (h *Header) Init(kind Kind, apiVersion, version string) {
	h.Kind = kind
	h.APIVersion = apiVersion
	h.Metadata = map[string]string{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"runId":     uuid.NewString(),
	}
	if version != "" {
		h.Metadata["version"] = version
	}
}

// GetMetadata returns the Metadata map of the Header.
func (h *Header) GetMetadata() map[string]string {
	return h.Metadata
}
