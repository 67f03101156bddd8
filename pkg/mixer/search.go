/*
Copyright © 2025 nutmix authors
SPDX-License-Identifier: Apache-2.0
*/

package mixer

import (
	"context"
	"log/slog"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nutmix/nutmix/pkg/catalog"
	"github.com/nutmix/nutmix/pkg/constraint"
	"github.com/nutmix/nutmix/pkg/errors"
	"github.com/nutmix/nutmix/pkg/header"
	"github.com/nutmix/nutmix/pkg/target"
)

const (
	// APIVersion is the schema version for search results.
	APIVersion = "mix.nutmix.dev/v1"

	// DefaultStepGrams is the gram increment considered per search step.
	DefaultStepGrams = 1.0
)

// Engine runs the greedy search. The zero value is not usable; create
// instances with New.
type Engine struct {
	// Version is the engine version (typically the CLI version).
	Version string

	// StepGrams is the gram increment per search step.
	StepGrams float64

	// Parallel enables concurrent trial-cost evaluation. The winning step
	// is always chosen by a deterministic scan over catalog order, so the
	// output is identical with and without it.
	Parallel bool
}

// Option is a functional option for configuring Engine instances.
type Option func(*Engine)

// WithVersion returns an Option that sets the Engine version string.
func WithVersion(version string) Option {
	return func(e *Engine) {
		e.Version = version
	}
}

// WithStepGrams returns an Option that sets the gram step size.
func WithStepGrams(g float64) Option {
	return func(e *Engine) {
		e.StepGrams = g
	}
}

// WithParallel returns an Option that toggles parallel trial evaluation.
func WithParallel(parallel bool) Option {
	return func(e *Engine) {
		e.Parallel = parallel
	}
}

// New creates a new Engine with the provided options.
func New(opts ...Option) *Engine {
	e := &Engine{
		StepGrams: DefaultStepGrams,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Plan is the package's one-call entry point: it builds a catalog from the
// raw ingredients, validates the target and its constraints, and runs the
// search.
func Plan(ctx context.Context, tgt *target.Target, ingredients []catalog.Ingredient, opts ...Option) (*Result, error) {
	cat := catalog.New()
	for _, ing := range ingredients {
		if err := cat.Add(ing); err != nil {
			return nil, err
		}
	}

	set, err := constraint.NewSet(tgt, cat)
	if err != nil {
		return nil, err
	}

	return New(opts...).Search(ctx, cat, tgt, set)
}

// Search runs the greedy allocation loop until the calorie target is
// reached or no ingredient can be incremented further.
//
// Starting from each ingredient's exact pin, lower bound, or zero, every
// iteration evaluates the cost of adding one step to each eligible
// ingredient alone and commits the cheapest trial; ties go to the first
// eligible ingredient in catalog order. Runs are therefore reproducible for
// identical inputs and step size.
//
// When the target is unreachable the returned error carries the INFEASIBLE
// code and the Result still holds the best allocation achieved, so callers
// can inspect how far the search got. A fully exact-pinned catalog performs
// zero steps and reports the pinned totals as-is, even when they miss the
// target; that outcome is not an error.
func (e *Engine) Search(ctx context.Context, cat *catalog.Catalog, tgt *target.Target, set *constraint.Set) (*Result, error) {
	if cat == nil || cat.Len() == 0 {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "catalog cannot be empty")
	}
	if tgt == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "target cannot be nil")
	}
	if set == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "constraint set cannot be nil")
	}
	if e.StepGrams <= 0 {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"step size must be positive", map[string]any{"stepGrams": e.StepGrams})
	}
	if err := tgt.Validate(); err != nil {
		return nil, err
	}
	ratio, err := tgt.Normalize()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	defer func() {
		searchDuration.Observe(time.Since(start).Seconds())
	}()

	alloc := NewAllocation(cat, set)
	totals := ComputeTotals(alloc, cat)

	if e.allPinned(cat, set) {
		// Nothing to search: the constraints fully determine the mix.
		slog.Debug("all ingredients exact-pinned, reporting pinned totals",
			"kcal", totals.Kcal, "targetKcal", tgt.Kcal)
		searchesTotal.WithLabelValues("success").Inc()
		return e.newResult(alloc, totals, nil, ratio, cat, tgt.Kcal), nil
	}

	maxSteps := e.stepBudget(cat, totals.Kcal, tgt.Kcal)
	var decisions []Decision

	for totals.Kcal < tgt.Kcal {
		name, cost, ok, err := e.Step(ctx, alloc, cat, ratio, set)
		if err != nil {
			searchesTotal.WithLabelValues("error").Inc()
			return nil, err
		}
		if !ok {
			searchesTotal.WithLabelValues("infeasible").Inc()
			res := e.newResult(alloc, totals, decisions, ratio, cat, tgt.Kcal)
			return res, errors.NewWithContext(errors.ErrCodeInfeasible,
				"calorie target unreachable under the given constraints",
				map[string]any{"kcal": totals.Kcal, "targetKcal": tgt.Kcal})
		}

		alloc[name] += e.StepGrams
		totals = ComputeTotals(alloc, cat)
		decisions = append(decisions, Decision{
			Ingredient: name,
			Cost:       cost,
			TotalKcal:  totals.Kcal,
		})

		if len(decisions) > maxSteps {
			// Every committed step adds positive kcal, so the budget can
			// only be exceeded if that invariant broke.
			searchesTotal.WithLabelValues("error").Inc()
			return nil, errors.NewWithContext(errors.ErrCodeInternal,
				"search exceeded its step budget without reaching the target",
				map[string]any{"steps": len(decisions), "kcal": totals.Kcal})
		}
	}

	searchesTotal.WithLabelValues("success").Inc()
	searchStepsTotal.Add(float64(len(decisions)))
	return e.newResult(alloc, totals, decisions, ratio, cat, tgt.Kcal), nil
}

// Step evaluates one search iteration without mutating the allocation:
// it returns the ingredient whose single-step increment yields the lowest
// cost, along with that cost. ok is false when no ingredient is eligible.
//
// Eligibility: not exact-pinned, another step still fits under the upper
// bound, and positive energy density (an ingredient that adds no kcal can
// never advance the stopping condition).
func (e *Engine) Step(ctx context.Context, alloc Allocation, cat *catalog.Catalog, ratio target.Ratio, set *constraint.Set) (string, float64, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, false, err
	}

	base := ComputeTotals(alloc, cat)

	type trial struct {
		name    string
		density catalog.Density
		cost    float64
	}

	// Collect eligible ingredients in catalog order; the index later doubles
	// as the deterministic tie-break.
	var trials []trial
	for _, name := range cat.Names() {
		if set.Pinned(name) {
			continue
		}
		d, _ := cat.Density(name)
		if d.KcalPerGram <= 0 {
			continue
		}
		if alloc[name]+e.StepGrams > set.UpperBound(name) {
			continue
		}
		trials = append(trials, trial{name: name, density: d})
	}
	if len(trials) == 0 {
		return "", 0, false, nil
	}

	eval := func(i int) {
		trials[i].cost = macroCost(
			base.Carb+e.StepGrams*trials[i].density.Carb,
			base.Fat+e.StepGrams*trials[i].density.Fat,
			base.Protein+e.StepGrams*trials[i].density.Protein,
			ratio,
		)
	}

	if e.Parallel && len(trials) > 1 {
		g, _ := errgroup.WithContext(ctx)
		for i := range trials {
			i := i
			g.Go(func() error {
				eval(i)
				return nil
			})
		}
		// Trial evaluation never fails; Wait only synchronizes the fan-in.
		_ = g.Wait()
	} else {
		for i := range trials {
			eval(i)
		}
	}

	// Deterministic fan-in: strict less-than keeps the first-seen winner
	// on ties regardless of evaluation order.
	best := 0
	for i := 1; i < len(trials); i++ {
		if trials[i].cost < trials[best].cost {
			best = i
		}
	}
	return trials[best].name, trials[best].cost, true, nil
}

// allPinned reports whether every catalog ingredient carries an exact
// constraint.
func (e *Engine) allPinned(cat *catalog.Catalog, set *constraint.Set) bool {
	for _, name := range cat.Names() {
		if !set.Pinned(name) {
			return false
		}
	}
	return true
}

// stepBudget bounds the iteration count: each committed step adds at least
// step × (smallest positive kcal density) energy, so the number of steps
// needed to close the calorie gap is provably finite.
func (e *Engine) stepBudget(cat *catalog.Catalog, startKcal, targetKcal float64) int {
	minDensity := math.Inf(1)
	for _, name := range cat.Names() {
		if d, ok := cat.Density(name); ok && d.KcalPerGram > 0 && d.KcalPerGram < minDensity {
			minDensity = d.KcalPerGram
		}
	}
	if math.IsInf(minDensity, 1) {
		// No ingredient can add energy; the first step reports infeasible.
		return cat.Len()
	}

	gap := targetKcal - startKcal
	if gap <= 0 {
		return cat.Len()
	}
	return int(math.Ceil(gap/(e.StepGrams*minDensity))) + cat.Len()
}

func (e *Engine) newResult(alloc Allocation, totals Totals, decisions []Decision, ratio target.Ratio, cat *catalog.Catalog, targetKcal float64) *Result {
	res := &Result{
		Proposal:   alloc.Clone(),
		Totals:     totals,
		Cost:       macroCost(totals.Carb, totals.Fat, totals.Protein, ratio),
		TargetKcal: targetKcal,
		Steps:      len(decisions),
		Decisions:  decisions,
	}
	res.Init(header.KindProposal, APIVersion, e.Version)
	return res
}
