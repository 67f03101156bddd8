/*
Copyright © 2025 nutmix authors
SPDX-License-Identifier: Apache-2.0
*/

package mixer

import (
	"github.com/nutmix/nutmix/pkg/header"
)

// Decision records one committed search step: which ingredient received the
// step, the cost of the allocation after committing it, and the running
// kcal total. The slice of decisions replaces in-loop printing; callers
// decide whether to surface it.
type Decision struct {
	// Ingredient is the name of the ingredient the step was committed to.
	Ingredient string `json:"ingredient" yaml:"ingredient"`

	// Cost is the ratio cost of the allocation after this step.
	Cost float64 `json:"cost" yaml:"cost"`

	// TotalKcal is the total energy of the allocation after this step.
	TotalKcal float64 `json:"totalKcal" yaml:"totalKcal"`
}

// Result is the terminal output of a search: the final proposal (grams per
// ingredient), its derived totals, and the decision trace. On an infeasible
// run the Result still carries the best allocation achieved before the
// search ran out of eligible ingredients.
type Result struct {
	header.Header `json:",inline" yaml:",inline"`

	// Proposal maps each catalog ingredient to its final gram amount.
	Proposal map[string]float64 `json:"proposal" yaml:"proposal"`

	// Totals are the derived summary of the proposal.
	Totals Totals `json:"totals" yaml:"totals"`

	// Cost is the final ratio cost of the proposal.
	Cost float64 `json:"cost" yaml:"cost"`

	// TargetKcal is the calorie goal the search ran against.
	TargetKcal float64 `json:"targetKcal" yaml:"targetKcal"`

	// Steps is the number of committed search steps.
	Steps int `json:"steps" yaml:"steps"`

	// Decisions is the per-step decision trace, in commit order.
	Decisions []Decision `json:"decisions,omitempty" yaml:"decisions,omitempty"`
}
