/*
Copyright © 2025 nutmix authors
SPDX-License-Identifier: Apache-2.0
*/

package mixer

import (
	"math"

	"github.com/nutmix/nutmix/pkg/catalog"
	"github.com/nutmix/nutmix/pkg/target"
)

// EmptyMixCost is the cost assigned to an allocation with zero total macro
// mass. Using a fixed large sentinel instead of NaN keeps the very first
// trial comparison well ordered.
const EmptyMixCost = math.MaxFloat64

// Cost scores an allocation against the normalized target ratio: the
// squared-error sum over the three macro ratio components. Lower is better;
// zero is a perfect ratio match. The function is ratio-only: total mass and
// calories are the stopping condition's concern, not the cost's.
func Cost(alloc Allocation, cat *catalog.Catalog, ratio target.Ratio) float64 {
	t := ComputeTotals(alloc, cat)
	return macroCost(t.Carb, t.Fat, t.Protein, ratio)
}

// macroCost computes the squared ratio distance from raw macro gram totals.
func macroCost(carb, fat, protein float64, ratio target.Ratio) float64 {
	sum := carb + fat + protein
	if sum <= 0 {
		return EmptyMixCost
	}
	return square(carb/sum-ratio.Carb) +
		square(fat/sum-ratio.Fat) +
		square(protein/sum-ratio.Protein)
}

func square(x float64) float64 {
	return x * x
}
