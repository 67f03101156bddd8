/*
Copyright © 2025 nutmix authors
SPDX-License-Identifier: Apache-2.0
*/

package constraint

import (
	"math"

	"github.com/nutmix/nutmix/pkg/catalog"
	"github.com/nutmix/nutmix/pkg/errors"
	"github.com/nutmix/nutmix/pkg/target"
)

// Set is a queryable view of the per-ingredient constraints declared by a
// target: exact pins, lower bounds, and upper bounds, all in grams.
// A Set is validated on construction and immutable afterwards.
type Set struct {
	exact map[string]float64
	lower map[string]float64
	upper map[string]float64
}

// NewSet builds a Set from the target's constraint lists and validates it
// against the catalog.
//
// Validation failures:
//   - UNKNOWN_INGREDIENT: a constraint names an ingredient not in the catalog
//   - CONFLICTING_CONSTRAINT: an exact value outside its own [lower, upper]
//     bounds, or a lower bound above an upper bound for the same name
//   - INVALID_REQUEST: a negative gram amount
func NewSet(t *target.Target, cat *catalog.Catalog) (*Set, error) {
	s := &Set{
		exact: make(map[string]float64),
		lower: make(map[string]float64),
		upper: make(map[string]float64),
	}

	for _, group := range []struct {
		list []target.Constraint
		dest map[string]float64
	}{
		{t.ConstraintExact, s.exact},
		{t.ConstraintAtLeast, s.lower},
		{t.ConstraintAtMost, s.upper},
	} {
		for _, c := range group.list {
			if !cat.Contains(c.Name) {
				return nil, errors.NewWithContext(errors.ErrCodeUnknownIngredient,
					"constraint references ingredient missing from catalog",
					map[string]any{"ingredient": c.Name})
			}
			if c.G < 0 {
				return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
					"constraint grams cannot be negative",
					map[string]any{"ingredient": c.Name, "g": c.G})
			}
			group.dest[c.Name] = c.G
		}
	}

	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// validate cross-checks the three constraint groups per ingredient name.
func (s *Set) validate() error {
	for name, lo := range s.lower {
		if hi, ok := s.upper[name]; ok && lo > hi {
			return errors.NewWithContext(errors.ErrCodeConflictingConstraint,
				"lower bound exceeds upper bound",
				map[string]any{"ingredient": name, "atLeast": lo, "atMost": hi})
		}
	}

	for name, exact := range s.exact {
		if lo, ok := s.lower[name]; ok && exact < lo {
			return errors.NewWithContext(errors.ErrCodeConflictingConstraint,
				"exact constraint below its lower bound",
				map[string]any{"ingredient": name, "exact": exact, "atLeast": lo})
		}
		if hi, ok := s.upper[name]; ok && exact > hi {
			return errors.NewWithContext(errors.ErrCodeConflictingConstraint,
				"exact constraint above its upper bound",
				map[string]any{"ingredient": name, "exact": exact, "atMost": hi})
		}
	}
	return nil
}

// Exact returns the pinned gram amount for the named ingredient, if any.
func (s *Set) Exact(name string) (float64, bool) {
	g, ok := s.exact[name]
	return g, ok
}

// Pinned reports whether the named ingredient has an exact constraint.
func (s *Set) Pinned(name string) bool {
	_, ok := s.exact[name]
	return ok
}

// LowerBound returns the minimum final grams for the named ingredient.
// Defaults to 0 when no at-least constraint exists.
func (s *Set) LowerBound(name string) float64 {
	return s.lower[name]
}

// UpperBound returns the maximum final grams for the named ingredient.
// Defaults to +Inf when no at-most constraint exists.
func (s *Set) UpperBound(name string) float64 {
	if g, ok := s.upper[name]; ok {
		return g
	}
	return math.Inf(1)
}

// Initial returns the starting allocation grams for the named ingredient:
// its exact pin if present, else its lower bound, else 0.
func (s *Set) Initial(name string) float64 {
	if g, ok := s.exact[name]; ok {
		return g
	}
	return s.lower[name]
}
