// Package catalog implements the ingredient model for the mix optimizer.
//
// An Ingredient is a raw record loaded from a file: a total mass in grams
// plus the kcal and macro content of that mass. Normalize derives a Density,
// the per-gram nutrient density the search engine works with. Densities are
// computed once when an ingredient is added to a Catalog and cached for the
// run.
//
// The Catalog preserves insertion order. Everything downstream that iterates
// ingredients (cost summation, trial evaluation, tie-breaking) does so in
// catalog order, which is what makes runs reproducible.
package catalog
