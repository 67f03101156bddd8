// Package constraint turns a target's constraint lists into a queryable,
// validated Set of per-ingredient gram bounds.
//
// Three kinds of bounds exist: exact (the ingredient must end at precisely
// this amount), at-least (a lower bound, default 0), and at-most (an upper
// bound, default unbounded). Validation happens once, before any search
// runs: constraints must reference catalog ingredients, and an exact pin
// must itself satisfy any lower/upper bound declared for the same name.
package constraint
