// Package target implements the target model for the mix optimizer:
// the raw target record (calorie goal, macro ratio, optional constraints)
// and its normalized Ratio.
//
// Ratio components are treated as proportions. A target of 40:30:30 and one
// of 4:3:3 normalize identically; only the relative weights matter. A target
// whose components sum to zero cannot be normalized and is rejected as
// degenerate.
package target
