/*
Copyright © 2025 nutmix authors
SPDX-License-Identifier: Apache-2.0
*/

package mixer

import (
	"github.com/nutmix/nutmix/pkg/catalog"
	"github.com/nutmix/nutmix/pkg/constraint"
)

// Allocation maps ingredient name to grams. It holds one entry per catalog
// ingredient (zero grams allowed) and is mutated only by the search driver;
// trial evaluation works on derived totals, never on the map itself.
type Allocation map[string]float64

// NewAllocation builds the starting allocation for a search: each ingredient
// begins at its exact pin if present, else its lower bound, else zero.
func NewAllocation(cat *catalog.Catalog, set *constraint.Set) Allocation {
	alloc := make(Allocation, cat.Len())
	for _, name := range cat.Names() {
		alloc[name] = set.Initial(name)
	}
	return alloc
}

// Clone returns an independent copy of the allocation.
func (a Allocation) Clone() Allocation {
	out := make(Allocation, len(a))
	for name, g := range a {
		out[name] = g
	}
	return out
}

// Totals are the derived summary of an allocation: total macro grams, total
// kcal, and the resulting macro ratio expressed as percentages.
type Totals struct {
	// Carb is the total carbohydrate mass of the mix in grams.
	Carb float64 `json:"carbGrams" yaml:"carbGrams"`

	// Fat is the total fat mass of the mix in grams.
	Fat float64 `json:"fatGrams" yaml:"fatGrams"`

	// Protein is the total protein mass of the mix in grams.
	Protein float64 `json:"proteinGrams" yaml:"proteinGrams"`

	// Kcal is the total energy of the mix.
	Kcal float64 `json:"kcal" yaml:"kcal"`

	// CarbPct, FatPct and ProteinPct are the resulting macro ratio as
	// percentages of total macro mass. All zero when the mix carries no
	// macro mass at all.
	CarbPct    float64 `json:"carbPct" yaml:"carbPct"`
	FatPct     float64 `json:"fatPct" yaml:"fatPct"`
	ProteinPct float64 `json:"proteinPct" yaml:"proteinPct"`
}

// ComputeTotals derives the totals of an allocation. Ingredients are summed
// in catalog order so repeated computations accumulate identically.
func ComputeTotals(alloc Allocation, cat *catalog.Catalog) Totals {
	var t Totals
	for _, name := range cat.Names() {
		g := alloc[name]
		if g == 0 {
			continue
		}
		d, ok := cat.Density(name)
		if !ok {
			continue
		}
		t.Carb += g * d.Carb
		t.Fat += g * d.Fat
		t.Protein += g * d.Protein
		t.Kcal += g * d.KcalPerGram
	}

	if sum := t.Carb + t.Fat + t.Protein; sum > 0 {
		t.CarbPct = 100 * t.Carb / sum
		t.FatPct = 100 * t.Fat / sum
		t.ProteinPct = 100 * t.Protein / sum
	}
	return t
}
