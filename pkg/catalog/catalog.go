/*
Copyright © 2025 nutmix authors
SPDX-License-Identifier: Apache-2.0
*/

package catalog

import (
	"github.com/nutmix/nutmix/pkg/errors"
)

// entry pairs a raw ingredient with its derived density, computed once.
type entry struct {
	raw     Ingredient
	density Density
}

// Catalog holds the ingredients available for one run, in insertion order.
// The order is load-bearing: the search engine iterates ingredients in
// catalog order for stable cost summation and deterministic tie-breaks.
type Catalog struct {
	names   []string
	entries map[string]entry
}

// New creates an empty Catalog.
func New() *Catalog {
	return &Catalog{
		entries: make(map[string]entry),
	}
}

// Add normalizes the raw ingredient and stores it. Duplicate names and
// ingredients that fail normalization are rejected.
func (c *Catalog) Add(raw Ingredient) error {
	if raw.Name == "" {
		return errors.New(errors.ErrCodeInvalidRequest, "ingredient name cannot be empty")
	}
	if _, exists := c.entries[raw.Name]; exists {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"duplicate ingredient name",
			map[string]any{"ingredient": raw.Name})
	}

	density, err := raw.Normalize()
	if err != nil {
		return err
	}

	c.names = append(c.names, raw.Name)
	c.entries[raw.Name] = entry{raw: raw, density: density}
	return nil
}

// Names returns the ingredient names in insertion order. The returned slice
// is shared; callers must not mutate it.
func (c *Catalog) Names() []string {
	return c.names
}

// Len returns the number of ingredients in the catalog.
func (c *Catalog) Len() int {
	return len(c.names)
}

// Contains reports whether the catalog holds an ingredient with this name.
func (c *Catalog) Contains(name string) bool {
	_, ok := c.entries[name]
	return ok
}

// Density returns the normalized per-gram density for the named ingredient.
func (c *Catalog) Density(name string) (Density, bool) {
	e, ok := c.entries[name]
	return e.density, ok
}

// Raw returns the raw ingredient record for the named ingredient.
func (c *Catalog) Raw(name string) (Ingredient, bool) {
	e, ok := c.entries[name]
	return e.raw, ok
}
