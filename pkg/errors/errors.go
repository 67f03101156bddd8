/*
Copyright © 2025 nutmix authors
SPDX-License-Identifier: Apache-2.0
*/

package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a structured error classification.
type ErrorCode string

const (
	// ErrCodeDivision indicates an ingredient with non-positive total mass,
	// which makes per-gram density normalization impossible.
	ErrCodeDivision ErrorCode = "DIVISION"
	// ErrCodeDegenerateTarget indicates a target whose ratio components sum
	// to zero or less and therefore cannot be normalized.
	ErrCodeDegenerateTarget ErrorCode = "DEGENERATE_TARGET"
	// ErrCodeUnknownIngredient indicates a constraint referencing an
	// ingredient that is not present in the loaded catalog.
	ErrCodeUnknownIngredient ErrorCode = "UNKNOWN_INGREDIENT"
	// ErrCodeConflictingConstraint indicates an exact constraint that
	// violates a lower or upper bound declared for the same ingredient.
	ErrCodeConflictingConstraint ErrorCode = "CONFLICTING_CONSTRAINT"
	// ErrCodeInfeasible indicates the search terminated before reaching the
	// calorie target because no ingredient could be incremented further.
	ErrCodeInfeasible ErrorCode = "INFEASIBLE"
	// ErrCodeInvalidRequest indicates malformed or invalid input.
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	// ErrCodeInternal indicates an internal system error.
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// StructuredError provides structured error information for better observability.
// It includes an error code for programmatic handling, a human-readable message,
// the underlying cause, and optional context for debugging.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// New creates a new StructuredError with the given code and message.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
	}
}

// NewWithContext creates a new StructuredError with context information.
func NewWithContext(code ErrorCode, message string, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Context: context,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapWithContext wraps an error with additional context information.
func WrapWithContext(code ErrorCode, message string, cause error, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// CodeOf returns the ErrorCode carried by err if it is (or wraps) a
// StructuredError, and an empty code otherwise.
func CodeOf(err error) ErrorCode {
	var se *StructuredError
	if stderrors.As(err, &se) {
		return se.Code
	}
	return ""
}

// IsCode reports whether err carries the given ErrorCode.
func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}
