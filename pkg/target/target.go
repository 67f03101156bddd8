/*
Copyright © 2025 nutmix authors
SPDX-License-Identifier: Apache-2.0
*/

package target

import (
	"github.com/nutmix/nutmix/pkg/errors"
)

// Constraint bounds the final gram amount of one named ingredient.
type Constraint struct {
	// Name references an ingredient in the loaded catalog.
	Name string `toml:"name" json:"name" yaml:"name"`

	// G is the gram amount of the bound.
	G float64 `toml:"g" json:"g" yaml:"g"`
}

// Target is a raw target record as loaded from a target file: an absolute
// calorie goal, a carb:fat:protein ratio, and optional per-ingredient
// constraints. The ratio components are proportions only; they need not sum
// to 1 or 100.
type Target struct {
	// Kcal is the total calorie goal for the mix.
	Kcal float64 `toml:"kcal" json:"kcal" yaml:"kcal"`

	// Carb is the carbohydrate component of the desired ratio.
	Carb float64 `toml:"carb" json:"carb" yaml:"carb"`

	// Fat is the fat component of the desired ratio.
	Fat float64 `toml:"fat" json:"fat" yaml:"fat"`

	// Protein is the protein component of the desired ratio.
	Protein float64 `toml:"protein" json:"protein" yaml:"protein"`

	// ConstraintExact pins ingredients to exactly the given grams.
	ConstraintExact []Constraint `toml:"constraint_exact,omitempty" json:"constraint_exact,omitempty" yaml:"constraint_exact,omitempty"`

	// ConstraintAtLeast sets lower bounds in grams.
	ConstraintAtLeast []Constraint `toml:"constraint_at_least,omitempty" json:"constraint_at_least,omitempty" yaml:"constraint_at_least,omitempty"`

	// ConstraintAtMost sets upper bounds in grams.
	ConstraintAtMost []Constraint `toml:"constraint_at_most,omitempty" json:"constraint_at_most,omitempty" yaml:"constraint_at_most,omitempty"`
}

// Ratio is a normalized macro ratio: the three components sum to 1.0.
type Ratio struct {
	// Carb is the carbohydrate share of the ratio, in [0, 1].
	Carb float64 `json:"carb" yaml:"carb"`

	// Fat is the fat share of the ratio, in [0, 1].
	Fat float64 `json:"fat" yaml:"fat"`

	// Protein is the protein share of the ratio, in [0, 1].
	Protein float64 `json:"protein" yaml:"protein"`
}

// Normalize scales the target ratio components so they sum to 1.0.
// Fails with a DEGENERATE_TARGET error when the components sum to zero or
// less, since a zero-sum ratio cannot be normalized.
func (t *Target) Normalize() (Ratio, error) {
	if t.Carb < 0 || t.Fat < 0 || t.Protein < 0 {
		return Ratio{}, errors.NewWithContext(errors.ErrCodeDegenerateTarget,
			"ratio components cannot be negative",
			map[string]any{"carb": t.Carb, "fat": t.Fat, "protein": t.Protein})
	}

	sum := t.Carb + t.Fat + t.Protein
	if sum <= 0 {
		return Ratio{}, errors.NewWithContext(errors.ErrCodeDegenerateTarget,
			"ratio components sum to zero, cannot normalize",
			map[string]any{"carb": t.Carb, "fat": t.Fat, "protein": t.Protein})
	}

	return Ratio{
		Carb:    t.Carb / sum,
		Fat:     t.Fat / sum,
		Protein: t.Protein / sum,
	}, nil
}

// Validate checks the parts of the target that normalization does not cover.
func (t *Target) Validate() error {
	if t.Kcal <= 0 {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"calorie goal must be positive",
			map[string]any{"kcal": t.Kcal})
	}
	return nil
}
