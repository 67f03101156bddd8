// Package errors provides structured error types for the mix optimizer.
//
// All domain failures are classified by an ErrorCode so callers can branch on
// the kind of failure without string matching:
//
//   - DIVISION: an ingredient declared zero or negative total mass
//   - DEGENERATE_TARGET: the target ratio components sum to zero or less
//   - UNKNOWN_INGREDIENT: a constraint names an ingredient not in the catalog
//   - CONFLICTING_CONSTRAINT: an exact constraint violates its own bounds
//   - INFEASIBLE: the calorie target cannot be reached given the constraints
//   - INVALID_REQUEST / INTERNAL: ambient input and system failures
//
// StructuredError supports errors.Is/errors.As through Unwrap, carries an
// optional cause and a free-form context map for debugging. All errors are
// terminal for a run; nothing is retried.
//
// Usage:
//
//	if err := run(); errors.IsCode(err, errors.ErrCodeInfeasible) {
//	    // the partial proposal is still available on the mixer result
//	}
package errors
