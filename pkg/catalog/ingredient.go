/*
Copyright © 2025 nutmix authors
SPDX-License-Identifier: Apache-2.0
*/

package catalog

import (
	"github.com/nutmix/nutmix/pkg/errors"
)

// Ingredient is a raw ingredient record as loaded from an ingredient file.
// All macro amounts are grams for the declared total mass G. Kcal is an
// independent input and is never recomputed from the macros; carb, fat and
// protein need not sum to G (the rest may be water, fiber, or ash).
type Ingredient struct {
	// Name uniquely identifies the ingredient within a run.
	Name string `toml:"name" json:"name" yaml:"name"`

	// G is the total mass in grams the remaining fields refer to.
	G float64 `toml:"g" json:"g" yaml:"g"`

	// Kcal is the energy content of G grams of the ingredient.
	Kcal float64 `toml:"kcal" json:"kcal" yaml:"kcal"`

	// Carb is the carbohydrate content in grams.
	Carb float64 `toml:"carb" json:"carb" yaml:"carb"`

	// Fat is the fat content in grams.
	Fat float64 `toml:"fat" json:"fat" yaml:"fat"`

	// Protein is the protein content in grams.
	Protein float64 `toml:"protein" json:"protein" yaml:"protein"`
}

// Density is the normalized per-gram nutrient density of an ingredient:
// grams of each macro, and kcal, per gram of ingredient mass. Each macro
// fraction is in [0, 1]; the fractions need not sum to 1.
type Density struct {
	// Carb is grams of carbohydrate per gram of ingredient mass.
	Carb float64 `json:"carb" yaml:"carb"`

	// Fat is grams of fat per gram of ingredient mass.
	Fat float64 `json:"fat" yaml:"fat"`

	// Protein is grams of protein per gram of ingredient mass.
	Protein float64 `json:"protein" yaml:"protein"`

	// KcalPerGram is the energy density of the ingredient.
	KcalPerGram float64 `json:"kcalPerGram" yaml:"kcalPerGram"`
}

// Normalize derives the per-gram Density of the ingredient.
// Fails with a DIVISION error when the total mass is zero or negative, and
// with an INVALID_REQUEST error when any field would put a fraction outside
// [0, 1] (negative macros or macros exceeding the total mass).
func (i *Ingredient) Normalize() (Density, error) {
	if i.G <= 0 {
		return Density{}, errors.NewWithContext(errors.ErrCodeDivision,
			"ingredient total mass must be positive",
			map[string]any{"ingredient": i.Name, "g": i.G})
	}

	if i.Kcal < 0 || i.Carb < 0 || i.Fat < 0 || i.Protein < 0 {
		return Density{}, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"ingredient amounts cannot be negative",
			map[string]any{"ingredient": i.Name})
	}

	if i.Carb > i.G || i.Fat > i.G || i.Protein > i.G {
		return Density{}, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"macro mass cannot exceed total ingredient mass",
			map[string]any{"ingredient": i.Name, "g": i.G})
	}

	return Density{
		Carb:        i.Carb / i.G,
		Fat:         i.Fat / i.G,
		Protein:     i.Protein / i.G,
		KcalPerGram: i.Kcal / i.G,
	}, nil
}
