/*
Copyright © 2025 nutmix authors
SPDX-License-Identifier: Apache-2.0
*/

// Package mixer implements the greedy meal-mix search.
//
// An Engine repeatedly adds a fixed gram step of whichever ingredient
// brings the running macro ratio closest to the target, until the mix
// reaches the calorie goal or no ingredient remains eligible under the
// constraints. The search is deterministic: identical inputs produce
// identical proposals.
package mixer
